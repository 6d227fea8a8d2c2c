// Command forca is the text version of the game.
//
// Usage:
//
//	forca [-bank banco_palavras.json|banco.db] [-config config.yaml] [-log warn]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/forca/internal/config"
	"github.com/robalobadob/forca/internal/console"
	"github.com/robalobadob/forca/internal/selection"
	"github.com/robalobadob/forca/internal/words"
)

func main() {
	bankPath := flag.String("bank", "", "word bank file (.json or .db); defaults to the embedded bank")
	cfgPath := flag.String("config", "", "path to config.yaml")
	logLevel := flag.String("log", "warn", "log level")
	flag.Parse()

	config.SetupLogging(*logLevel, os.Stderr, true)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *bankPath != "" {
		cfg.BankFile = *bankPath
	}

	bank, err := words.LoadOrEmbedded(cfg.BankFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERRO] Não foi possível carregar o banco de palavras: %v\n", err)
		log.Fatal().Err(err).Str("bank", cfg.BankFile).Msg("failed to load word bank")
	}
	themes, records := bank.Stats()
	log.Debug().Int("themes", themes).Int("records", records).Msg("word bank loaded")

	if err := console.New(os.Stdin, os.Stdout, bank, selection.NewPicker()).Run(); err != nil {
		log.Fatal().Err(err).Msg("console session failed")
	}
}
