// Package logging builds the zerolog logger shared by lex commands.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Level names accepted by ParseLevel.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Options configures New.
type Options struct {
	Out     io.Writer // defaults to os.Stderr
	Level   string    // defaults to warn
	Verbose bool      // forces debug
	NoColor bool
}

// ParseLevel maps a level name to a zerolog level. Unknown names map to warn.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// New creates a console logger. Diagnostics go to stderr so stdout stays
// reserved for rendered output.
func New(opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	level := ParseLevel(opts.Level)
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    opts.NoColor,
	}

	return zerolog.New(console).Level(level).With().
		Timestamp().
		Str("app", "lex").
		Logger()
}
