package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the application logger. Development gets human-readable
// console output; production gets JSON on stdout.
func New(env string) zerolog.Logger {
	if env == "production" {
		return zerolog.New(os.Stdout).With().Timestamp().Str("service", "snadaily").Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
