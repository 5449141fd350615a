// Package logging wires the CLI's verbosity flag to log/slog. The
// formic library package itself never logs: logging is an ambient
// concern of the command-line front end only.
package logging

import (
	"io"
	"log/slog"
)

// VerbosityLevel defines the logging verbosity.
type VerbosityLevel int

const (
	Verbose VerbosityLevel = iota
	Info
	Warning
	Error
	Off
)

func (v VerbosityLevel) String() string {
	switch v {
	case Verbose:
		return "verbose"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Off:
		return "off"
	default:
		return "unknown"
	}
}

// slogLevel maps a VerbosityLevel to the slog.Level that admits it.
func (v VerbosityLevel) slogLevel() slog.Level {
	switch v {
	case Verbose:
		return slog.LevelDebug
	case Info:
		return slog.LevelInfo
	case Warning:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default:
		// Off: set a level above Error so nothing is ever enabled.
		return slog.LevelError + 1
	}
}

// New builds a text-handler *slog.Logger writing to w, enabled at v's
// level. The CLI builds one for each search it runs.
func New(w io.Writer, v VerbosityLevel) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: v.slogLevel()})
	return slog.New(h)
}

// ParseVerbosity maps the CLI's --verbosity flag values onto a
// VerbosityLevel, defaulting to Info for anything unrecognized.
func ParseVerbosity(s string) VerbosityLevel {
	switch s {
	case "verbose", "debug":
		return Verbose
	case "info":
		return Info
	case "warning", "warn":
		return Warning
	case "error":
		return Error
	case "off", "none", "quiet":
		return Off
	default:
		return Info
	}
}
