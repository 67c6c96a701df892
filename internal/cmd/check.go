// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Implements the check command.

package cmd

import (
	"io"
	"os"

	"github.com/getoutreach/safenum/pkg/codec"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func (r *runner) checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "validate the numeric fields of a JSON document against a schema",
		ArgsUsage: "[document.json|-]",
		Description: "The schema is a YAML mapping of dotted field paths to type names. Every " +
			"field must be present and convert exactly to its type.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "schema",
				Aliases:  []string{"s"},
				Usage:    "path to the YAML schema",
				Required: true,
				EnvVars:  []string{"NUMCONV_SCHEMA"},
			},
		},
		Action: r.checkAction,
	}
}

func (r *runner) checkAction(c *cli.Context) error {
	schema, err := codec.LoadSchema(c.String("schema"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	doc, err := r.readDocument(c.Args().First())
	if err != nil {
		r.logFailure("document unreadable", err)
		return cli.Exit(err.Error(), 2)
	}

	errs := schema.Validate(doc)
	for _, err := range errs {
		r.logFailure("field rejected", err)
	}
	if len(errs) > 0 {
		return cli.Exit(errors.Errorf("%d of %d fields rejected", len(errs), len(schema)), ExitConversionFailed)
	}

	r.log.Info("document accepted", "fields", len(schema))
	return nil
}

// readDocument decodes the document at path, or standard input for ""
// and "-".
func (r *runner) readDocument(path string) (interface{}, error) {
	in := r.in
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open document")
		}
		defer f.Close()
		in = f
	}

	var doc interface{}
	if err := r.json.NewDecoder(in).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	return doc, nil
}
