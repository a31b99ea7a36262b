package bootstrap

import (
	"flag"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/practikum-go-bankconsole/cmd/bankconsole/config"
)

// Config reads the configuration from the environment.
// Command line flags take precedence over environment variables
func Config(args []string) (config.Config, error) {
	cfg := config.Config{}

	if err := env.Parse(&cfg); err != nil {
		return config.Config{}, err
	}

	flags := flag.NewFlagSet("bankconsole", flag.ContinueOnError)
	flags.StringVar(&cfg.Currency, "currency", cfg.Currency, "Currency symbol printed in front of amounts")
	flags.BoolVar(
		&cfg.Pause, "pause", cfg.Pause,
		"Wait for Enter after every action before showing the menu again",
	)
	flags.StringVar(
		&cfg.LogLevel, "log.level", cfg.LogLevel,
		"Only log messages with the given severity or above.\n"+
			"For example: debug, info, warn, error and other levels supported by zerolog",
	)
	flags.StringVar(
		&cfg.LogOutput, "log.output", cfg.LogOutput,
		"Output format of log messages written to stderr. Available options: console, stderr, json",
	)

	if err := flags.Parse(args); err != nil {
		return config.Config{}, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
