// Command forca-web serves the browser version of the game.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/forca/internal/config"
	"github.com/robalobadob/forca/internal/httpserver"
	"github.com/robalobadob/forca/internal/selection"
	"github.com/robalobadob/forca/internal/store"
	"github.com/robalobadob/forca/internal/words"
)

func main() {
	cfgPath := flag.String("config", "", "path to config.yaml")
	pretty := flag.Bool("pretty", false, "human-readable logs")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	config.SetupLogging(cfg.LogLevel, os.Stderr, *pretty)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	bank, err := words.LoadOrEmbedded(cfg.BankFile)
	if err != nil {
		log.Fatal().Err(err).Str("bank", cfg.BankFile).Msg("failed to load word bank")
	}
	themes, records := bank.Stats()
	log.Info().Int("themes", themes).Int("records", records).Msg("word bank loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mem := store.NewMemoryStore()
	srv := httpserver.New(bank, mem, selection.NewPicker(), cfg)
	go srv.SweepLoop(ctx, 10*time.Minute)

	hs := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting forca-web")
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server exited")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
