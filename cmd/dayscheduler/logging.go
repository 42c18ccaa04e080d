package main

import (
	"io"

	"github.com/rs/zerolog"
)

// setupLogging writes human readable logs to w, so stdout stays free for results.
func setupLogging(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		With().
		Timestamp().
		Logger().
		Level(level)
}
