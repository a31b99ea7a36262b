package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sergeii/practikum-go-bankconsole/cmd/bankconsole/bootstrap"
	"github.com/sergeii/practikum-go-bankconsole/internal/adapters/console"
)

func main() {
	cfg, err := bootstrap.Config(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		panic(err)
	}

	logger, err := bootstrap.Logging(cfg)
	if err != nil {
		panic(err)
	}
	log.Logger = logger.With().Str("session", uuid.NewString()).Logger()

	app := bootstrap.App(cfg)
	log.Info().Str("currency", cfg.Currency).Bool("pause", cfg.Pause).Msg("Starting console session")

	if err := console.New(app).Run(context.Background()); err != nil {
		if errors.Is(err, console.ErrInputClosed) {
			log.Info().Msg("Input closed before exit was chosen")
			return
		}
		log.Error().Err(err).Msg("Console session failed")
		os.Exit(1)
	}
}
