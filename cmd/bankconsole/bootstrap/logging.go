package bootstrap

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/sergeii/practikum-go-bankconsole/cmd/bankconsole/config"
	"github.com/sergeii/practikum-go-bankconsole/pkg/logutils"
)

var (
	ErrLoggingInvalidLogOutput = errors.New("unknown logging output format")
	ErrLoggingInvalidLogLevel  = errors.New("unknown logging level")
)

// Logging configures a logger that writes to stderr,
// so that stdout is left to the console session alone
func Logging(cfg config.Config) (zerolog.Logger, error) {
	return loggingTo(cfg, os.Stderr)
}

func loggingTo(cfg config.Config, w io.Writer) (zerolog.Logger, error) {
	var output io.Writer
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMicro
	zerolog.DurationFieldUnit = time.Second
	zerolog.CallerMarshalFunc = logutils.ShortCallerFormatter

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, ErrLoggingInvalidLogLevel
	}
	zerolog.SetGlobalLevel(lvl)

	switch cfg.LogOutput {
	case "console":
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	case "stderr":
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	case "json":
		output = w
	default:
		return zerolog.Logger{}, ErrLoggingInvalidLogOutput
	}

	return zerolog.New(output).With().Timestamp().Caller().Logger(), nil
}
