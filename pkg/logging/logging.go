// Package logging builds the slog logger shared by the storefront server and
// CLI. Every record carries the service name.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Service is attached to every record produced by New.
const Service = "storefront"

// Level is a configured record level.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var levels = map[Level]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

func (l Level) validate() error {
	if _, ok := levels[l]; !ok {
		return fmt.Errorf("unknown level %q (debug, info, warn or error)", l)
	}
	return nil
}

// slog maps l to its slog level. Unknown levels map to INFO.
func (l Level) slog() slog.Level {
	if lvl, ok := levels[l]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// Format selects the record encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func (f Format) validate() error {
	if f != FormatText && f != FormatJSON {
		return fmt.Errorf("unknown format %q (text or json)", f)
	}
	return nil
}

// New creates a logger writing to w, or to stdout when w is nil.
func New(cfg *Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     cfg.Level.slog(),
		AddSource: cfg.Source,
	}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.Format == FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	}

	return slog.New(h).With("service", Service)
}
