// Command gerabanco regenerates the curated word bank.
//
// Usage:
//
//	gerabanco [-out banco_palavras.json] [-sqlite banco.db]
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/forca/internal/bankgen"
	"github.com/robalobadob/forca/internal/config"
	"github.com/robalobadob/forca/internal/words"
)

func main() {
	out := flag.String("out", "banco_palavras.json", "JSON output path")
	sqlitePath := flag.String("sqlite", "", "also write the bank to this SQLite file")
	flag.Parse()

	config.SetupLogging("info", os.Stderr, true)

	doc, err := bankgen.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("build bank")
	}
	log.Info().Int("total", len(doc.Words)).Interface("themes", bankgen.Counts(doc)).Msg("bank built")

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal().Err(err).Msg("create output")
	}
	if err := bankgen.Write(f, doc); err != nil {
		f.Close()
		log.Fatal().Err(err).Msg("write json")
	}
	if err := f.Close(); err != nil {
		log.Fatal().Err(err).Msg("close output")
	}
	log.Info().Str("path", *out).Msg("json saved")

	if *sqlitePath != "" {
		if err := words.SaveSQLite(*sqlitePath, doc); err != nil {
			log.Fatal().Err(err).Msg("write sqlite")
		}
		log.Info().Str("path", *sqlitePath).Msg("sqlite saved")
	}
}
