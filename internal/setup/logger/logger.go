// Package logger builds the process-wide zerolog logger. Output goes to
// stderr so stdout stays free for transports that own it (MCP stdio).
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stderr).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
}
