// Package logger builds the zerolog loggers shared across the app.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger tagged with the given component name.
func New(component string) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).With().Timestamp().Str("component", component).Logger()
}

// Nop returns a disabled logger, useful in tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
