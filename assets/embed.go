package assets

import (
	"embed"
	"io/fs"
)

//go:embed banco_palavras.json web
var files embed.FS

// BankJSON returns the word bank shipped with the binary.
func BankJSON() []byte {
	b, err := files.ReadFile("banco_palavras.json")
	if err != nil {
		// The file is embedded at build time; a miss means a broken build.
		panic(err)
	}
	return b
}

// Web returns the static browser front-end rooted at web/.
func Web() fs.FS {
	sub, err := fs.Sub(files, "web")
	if err != nil {
		panic(err)
	}
	return sub
}
