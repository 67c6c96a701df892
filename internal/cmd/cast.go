// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Implements the cast command.

package cmd

import (
	"strings"

	"github.com/getoutreach/safenum/pkg/codec"
	"github.com/getoutreach/safenum/pkg/number"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func (r *runner) castCommand() *cli.Command {
	return &cli.Command{
		Name:      "cast",
		Usage:     "convert JSON numbers to a native type without loss",
		ArgsUsage: "<json-number>...",
		Description: "Every argument is decoded as a JSON document, so it reaches the engine " +
			"as a double exactly like a value coming from a JSON or scripting layer.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "to", Usage: "target type name, e.g. int64", Required: true},
		},
		Action: r.castAction,
	}
}

func (r *runner) castAction(c *cli.Context) error {
	k, err := number.ParseKind(c.String("to"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if c.NArg() == 0 {
		return cli.Exit("cast: at least one value is required", 2)
	}

	failed := 0
	for _, arg := range c.Args().Slice() {
		v, err := r.castOne(arg, k)
		if err != nil {
			failed++
			r.logFailure("conversion failed", err, "input", arg, "type", k.String())
			continue
		}

		if err := r.emit(map[string]interface{}{
			"input": arg,
			"type":  k.String(),
			"value": v.Interface(),
		}); err != nil {
			return err
		}
	}

	if failed > 0 {
		return cli.Exit(errors.Errorf("%d of %d values could not be converted", failed, c.NArg()), ExitConversionFailed)
	}
	return nil
}

func (r *runner) castOne(arg string, k number.Kind) (number.Value, error) {
	var doc interface{}
	if err := r.json.NewDecoder(strings.NewReader(arg)).Decode(&doc); err != nil {
		return number.Value{}, err
	}
	return codec.FieldValue(doc, k)
}

// logFailure logs err, expanding a wrapped *number.ConversionError or
// *codec.DecodeError into its structured fields.
func (r *runner) logFailure(msg string, err error, args ...interface{}) {
	var ce *number.ConversionError
	if errors.As(err, &ce) {
		args = append(args, "conversion", ce)
	}
	var de *codec.DecodeError
	if errors.As(err, &de) {
		args = append(args, "decode", de)
	}
	args = append(args, "error", err.Error())
	r.log.Error(msg, args...)
}
