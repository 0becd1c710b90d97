package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console logger writing human-readable, timestamped status
// lines to out. Verbosity raises the level: 0 info, 1 debug, 2+ trace.
func New(out io.Writer, verbosity int) zerolog.Logger {
	var level zerolog.Level
	switch verbosity {
	case 0:
		level = zerolog.InfoLevel
	case 1:
		level = zerolog.DebugLevel
	default:
		level = zerolog.TraceLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// Discard returns a logger that drops everything; used in tests.
func Discard() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}
