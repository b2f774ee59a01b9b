// Package logging configures the global zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup sets the global level and output. Console output is human readable,
// otherwise one JSON object per line is written. An unknown level falls back
// to info.
func Setup(out io.Writer, level string, console bool) zerolog.Level {
	if out == nil {
		out = os.Stderr
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)

	if console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	if err != nil {
		log.Warn().Str("invalid_level", level).Msg("Invalid log level, using info")
	}
	return parsed
}
