package logx

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger: JSON to stderr in production, a console
// writer with debug level everywhere else.
func New(environment, service string) zerolog.Logger {
	if environment == "production" {
		return zerolog.New(os.Stderr).With().
			Timestamp().Str("service", service).Logger().
			Level(zerolog.InfoLevel)
	}
	return zerolog.New(zerolog.NewConsoleWriter()).With().
		Timestamp().Str("service", service).Logger().
		Level(zerolog.DebugLevel)
}
