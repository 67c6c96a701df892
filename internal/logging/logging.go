// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Builds the slog logger used by the numconv command.

// Package logging picks and configures the slog handler for the
// numconv command. Output to a terminal goes through a charmbracelet
// text handler, everything else is JSON.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Format selects the handler used for log output.
type Format string

// Contains the supported formats.
const (
	// FormatAuto uses FormatText for terminals and FormatJSON otherwise.
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// stringLevel is a map of string to slog.Level.
var stringLevel = map[string]slog.Level{
	slog.LevelDebug.String(): slog.LevelDebug,
	slog.LevelInfo.String():  slog.LevelInfo,
	slog.LevelWarn.String():  slog.LevelWarn,
	slog.LevelError.String(): slog.LevelError,
}

// charmLevel maps slog levels to their charmbracelet counterparts.
var charmLevel = map[slog.Level]charmlog.Level{
	slog.LevelDebug: charmlog.DebugLevel,
	slog.LevelInfo:  charmlog.InfoLevel,
	slog.LevelWarn:  charmlog.WarnLevel,
	slog.LevelError: charmlog.ErrorLevel,
}

// Options configures New.
type Options struct {
	// Level is one of DEBUG, INFO, WARN or ERROR, case insensitive.
	// Empty means INFO.
	Level string

	// Format defaults to FormatAuto.
	Format Format

	// Out defaults to os.Stderr.
	Out io.Writer
}

// ParseLevel returns the slog level named by s.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	l, ok := stringLevel[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return 0, errors.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// New returns a logger writing to opts.Out.
func New(opts Options) (*slog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	format := opts.Format
	if format == "" || format == FormatAuto {
		format = detectFormat(out)
	}

	switch format {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), nil
	case FormatText:
		return slog.New(charmlog.NewWithOptions(out, charmlog.Options{
			Level: charmLevel[level],
		})), nil
	default:
		return nil, errors.Errorf("unknown log format %q", format)
	}
}

// detectFormat returns FormatText when out is a terminal.
func detectFormat(out io.Writer) Format {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return FormatText
	}
	return FormatJSON
}
