// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Implements the numconv command line interface.

// Package cmd implements the numconv command: it owns all I/O and
// calls into pkg/number and pkg/codec for the conversions themselves.
package cmd

import (
	"io"
	"log/slog"

	"github.com/getoutreach/safenum/internal/logging"
	"github.com/getoutreach/safenum/pkg/codec"
	"github.com/urfave/cli/v2"
)

// ExitConversionFailed is the exit code used when at least one value
// could not be converted exactly.
const ExitConversionFailed = 3

// runner carries the state shared by every command.
type runner struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	json   codec.JSON
	log    *slog.Logger
}

// New returns the numconv app reading from in and writing results to
// out and logs to errOut. Errors are returned from Run rather than
// exiting the process; use cli.ExitCoder to find the exit code.
func New(in io.Reader, out, errOut io.Writer) *cli.App {
	r := &runner{in: in, out: out, errOut: errOut}

	return &cli.App{
		Name:      "numconv",
		Usage:     "lossless conversion between integers and doubles",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "one of debug, info, warn or error",
				Value:   "info",
				EnvVars: []string{"NUMCONV_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "one of auto, text or json",
				Value:   string(logging.FormatAuto),
				EnvVars: []string{"NUMCONV_LOG_FORMAT"},
			},
		},
		Before: r.before,
		Commands: []*cli.Command{
			r.rangeCommand(),
			r.castCommand(),
			r.checkCommand(),
		},
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func (r *runner) before(c *cli.Context) error {
	log, err := logging.New(logging.Options{
		Level:  c.String("log-level"),
		Format: logging.Format(c.String("log-format")),
		Out:    r.errOut,
	})
	if err != nil {
		return err
	}
	r.log = log
	return nil
}

// emit writes v to the output as a single JSON line.
func (r *runner) emit(v interface{}) error {
	return r.json.NewEncoder(r.out).Encode(v)
}
