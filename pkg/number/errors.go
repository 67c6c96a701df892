// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Implements the structured error returned by failed
// conversions.

package number

import (
	"fmt"
	"log/slog"
)

// ErrorKind classifies why a conversion failed. It implements error so
// it can be used as the target of errors.Is:
//
//	if errors.Is(err, number.OutsideTypeRange) { ... }
type ErrorKind int

const (
	// OutsideExactRange means a float lies outside the range in which
	// it maps to an integer without possible precision loss. NaN and
	// infinities always fall in this category.
	OutsideExactRange ErrorKind = iota + 1

	// OutsideTypeRange means a value exceeds the min/max of the
	// specific target type.
	OutsideTypeRange

	// OutsideDoubleExactRange means an integer cannot be represented as
	// a float without precision loss.
	OutsideDoubleExactRange

	// PrecisionLoss means a value inside the target's range would
	// still have to be rounded, e.g. a fractional float converted to an
	// integer.
	PrecisionLoss
)

// Error implements the err interface.
func (k ErrorKind) Error() string {
	switch k {
	case OutsideExactRange:
		return "outside exact integer representation range"
	case OutsideTypeRange:
		return "outside type range"
	case OutsideDoubleExactRange:
		return "outside exact floating-point range"
	case PrecisionLoss:
		return "precision loss"
	default:
		return fmt.Sprintf("unknown conversion error kind %d", int(k))
	}
}

// ConversionError is returned by every cast that cannot produce an
// exact result. It carries everything needed to render a diagnostic
// without re-deriving the bound.
type ConversionError struct {
	// Kind is the category of the failure.
	Kind ErrorKind

	// Value is the offending input, in its source representation.
	Value Value

	// Min and Max are the violated inclusive bound, in the domain the
	// comparison was performed in.
	Min Value
	Max Value

	// Target is the representation the caller asked for.
	Target Kind
}

// Error implements the err interface.
func (e *ConversionError) Error() string {
	switch e.Kind {
	case OutsideExactRange:
		return fmt.Sprintf("the real value is outside the exact integer representation range: %s not in [%s; %s]",
			e.Value, e.Min, e.Max)
	case OutsideTypeRange:
		return fmt.Sprintf("the value is outside the range of type %q: %s not in [%s; %s] range",
			e.Target, e.Value, e.Min, e.Max)
	case OutsideDoubleExactRange:
		return fmt.Sprintf("the integer %s cannot be converted into a %s value without loss of precision: "+
			"it is outside [%s; %s] range", e.Value, e.Target, e.Min, e.Max)
	case PrecisionLoss:
		return fmt.Sprintf("the value %s cannot be converted into %s without loss of precision", e.Value, e.Target)
	default:
		return fmt.Sprintf("unable to convert %s to %s", e.Value, e.Target)
	}
}

// Is matches an ErrorKind of the same category.
func (e *ConversionError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// MarshalLog adds the error fields to a log entry.
func (e *ConversionError) MarshalLog(addField func(field string, value interface{})) {
	addField("conversion.error", e.Kind.Error())
	addField("conversion.value", e.Value.String())
	addField("conversion.source", e.Value.Kind().String())
	addField("conversion.target", e.Target.String())
	addField("conversion.min", e.Min.String())
	addField("conversion.max", e.Max.String())
}

// LogValue implements slog.LogValuer.
func (e *ConversionError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 6)
	e.MarshalLog(func(field string, value interface{}) {
		attrs = append(attrs, slog.Any(field, value))
	})
	return slog.GroupValue(attrs...)
}

func newError(kind ErrorKind, v Value, lo, hi Value, target Kind) error {
	return &ConversionError{Kind: kind, Value: v, Min: lo, Max: hi, Target: target}
}
