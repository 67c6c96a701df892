// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Implements the range command.

package cmd

import (
	"github.com/getoutreach/safenum/pkg/number"
	"github.com/urfave/cli/v2"
)

func (r *runner) rangeCommand() *cli.Command {
	return &cli.Command{
		Name:  "range",
		Usage: "print the range of integers a type holds exactly",
		Description: "For integer types this is the native [min, max]. For float types it is " +
			"[-2^P, 2^P], P being the mantissa precision.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "numeric type name, e.g. int8", Required: true},
		},
		Action: r.rangeAction,
	}
}

func (r *runner) rangeAction(c *cli.Context) error {
	k, err := number.ParseKind(c.String("type"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	lo, hi := kindRange(k)
	r.log.Debug("computed range", "type", k.String(), "min", lo.String(), "max", hi.String())

	// Bounds are printed as strings: uint64's maximum has no exact
	// double representation.
	return r.emit(map[string]interface{}{
		"type": k.String(),
		"min":  lo.String(),
		"max":  hi.String(),
	})
}

//nolint:gocyclo // Why: one case per kind.
func kindRange(k number.Kind) (lo, hi number.Value) {
	switch k {
	case number.Float64:
		b := number.ExactDoubleIntegerRange()
		return number.ValueOf(int64(b.Min)), number.ValueOf(int64(b.Max))
	case number.Float32:
		b := number.ExactFloat32IntegerRange()
		return number.ValueOf(int64(b.Min)), number.ValueOf(int64(b.Max))
	case number.Int8:
		return boundValues(number.IntegerTypeRange[int8]())
	case number.Int16:
		return boundValues(number.IntegerTypeRange[int16]())
	case number.Int32:
		return boundValues(number.IntegerTypeRange[int32]())
	case number.Int64:
		return boundValues(number.IntegerTypeRange[int64]())
	case number.Int:
		return boundValues(number.IntegerTypeRange[int]())
	case number.Uint8:
		return boundValues(number.IntegerTypeRange[uint8]())
	case number.Uint16:
		return boundValues(number.IntegerTypeRange[uint16]())
	case number.Uint32:
		return boundValues(number.IntegerTypeRange[uint32]())
	case number.Uint64:
		return boundValues(number.IntegerTypeRange[uint64]())
	case number.Uint:
		return boundValues(number.IntegerTypeRange[uint]())
	default:
		return boundValues(number.IntegerTypeRange[uintptr]())
	}
}

func boundValues[T number.Integer](b number.Bound[T]) (lo, hi number.Value) {
	return number.ValueOf(b.Min), number.ValueOf(b.Max)
}
