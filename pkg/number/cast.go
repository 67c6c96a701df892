// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Implements the bounds-checked conversion engine.

package number

import (
	"math"

	"github.com/pkg/errors"
)

// Cast converts v to T. It returns the mathematically exact result or
// a *ConversionError; it never truncates, wraps or rounds.
//
// Every pair of integer and float kinds is supported:
//   - integer to integer fails with OutsideTypeRange when v does not
//     fit T.
//   - integer to float fails with OutsideDoubleExactRange when |v|
//     exceeds 2^P, P being the precision of T.
//   - float to integer fails with OutsideExactRange for NaN, infinities
//     and values beyond 2^P of the source precision, with PrecisionLoss
//     for fractional values and with OutsideTypeRange when the integer
//     does not fit T.
//   - float64 to float32 fails with OutsideTypeRange beyond
//     math.MaxFloat32 and with PrecisionLoss when rounding would occur.
func Cast[T, S Number](v S) (T, error) {
	out, err := Convert(ValueOf(v), KindOf[T]())
	if err != nil {
		return 0, err
	}
	return valueAs[T](out), nil
}

// CastDoubleToInt64 converts a float64 holding an integer in
// [-2^53, 2^53] to an int64.
func CastDoubleToInt64(value float64) (int64, error) {
	return CastDoubleToInteger[int64](value)
}

// CastDoubleToInteger converts a float64 holding an integer in
// [-2^53, 2^53] to the integer type T, failing with OutsideTypeRange if
// T is narrower than that.
func CastDoubleToInteger[T Integer](value float64) (T, error) {
	return Cast[T](value)
}

// CastIntegerToType converts between integer types, failing with
// OutsideTypeRange when value does not fit T:
//
//	b, err := number.CastIntegerToType[int8](n)
func CastIntegerToType[T, S Integer](value S) (T, error) {
	return Cast[T](value)
}

// CastIntegerToDouble converts an integer in [-2^53, 2^53] to a float64.
func CastIntegerToDouble[S Integer](value S) (float64, error) {
	return Cast[float64](value)
}

// CastIntegerToFloat32 converts an integer in [-2^24, 2^24] to a float32.
func CastIntegerToFloat32[S Integer](value S) (float32, error) {
	return Cast[float32](value)
}

// Convert is the engine behind Cast for callers that only know the
// target kind at run time. The returned Value is tagged with target.
func Convert(v Value, target Kind) (Value, error) {
	switch {
	case !v.kind.IsFloat() && !v.kind.IsInteger(), !target.IsFloat() && !target.IsInteger():
		return Value{}, errors.Errorf("unable to convert %s (%s) to %s", v, v.kind, target)
	case v.kind.IsFloat() && target.IsFloat():
		return floatToFloat(v, target)
	case v.kind.IsFloat():
		return floatToInteger(v, target)
	case target.IsFloat():
		return integerToFloat(v, target)
	default:
		return integerToInteger(v, target)
	}
}

// exactRange is the float-domain bound [-2^P, 2^P] of a float kind,
// widened to float64 for comparison.
func exactRange(k Kind) Bound[float64] {
	if k == Float32 {
		b := ExactFloat32IntegerRange()
		return Bound[float64]{Min: float64(b.Min), Max: float64(b.Max)}
	}
	return ExactDoubleIntegerRange()
}

func floatToInteger(v Value, target Kind) (Value, error) {
	f := v.Float64()
	bound := exactRange(v.kind)
	if !bound.Contains(f) {
		return Value{}, newError(OutsideExactRange, v,
			floatValue(v.kind, bound.Min), floatValue(v.kind, bound.Max), target)
	}
	if f != math.Trunc(f) {
		return Value{}, newError(PrecisionLoss, v,
			floatValue(v.kind, bound.Min), floatValue(v.kind, bound.Max), target)
	}

	i := int64(f)
	if invariantsEnabled {
		assertInvariant(bound.Contains(float64(i)) && float64(i) == f,
			"%v converted to %d outside [%v; %v]", f, i, bound.Min, bound.Max)
	}

	// int64 holds the whole exact range; narrower targets need the
	// type range as well.
	if !inIntegerRange(intValue(Int64, i), target) {
		lo, hi := typeRange(target)
		return Value{}, newError(OutsideTypeRange, v, lo, hi, target)
	}
	if target.Signed() {
		return intValue(target, i), nil
	}
	return uintValue(target, uint64(i)), nil
}

func integerToInteger(v Value, target Kind) (Value, error) {
	if !inIntegerRange(v, target) {
		lo, hi := typeRange(target)
		return Value{}, newError(OutsideTypeRange, v, lo, hi, target)
	}
	if target.Signed() {
		return intValue(target, v.Int64()), nil
	}
	return uintValue(target, v.Uint64()), nil
}

func integerToFloat(v Value, target Kind) (Value, error) {
	if !inExactFloatRange(v, target) {
		limit := exactIntegerLimit(target)
		return Value{}, newError(OutsideDoubleExactRange, v,
			intValue(Int64, -limit), intValue(Int64, limit), target)
	}
	return floatValue(target, v.Float64()), nil
}

func floatToFloat(v Value, target Kind) (Value, error) {
	f := v.Float64()
	if target == Float64 || v.kind == target {
		return floatValue(target, f), nil
	}

	// float64 to float32 from here on.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return floatValue(target, float64(float32(f))), nil
	}
	if math.Abs(f) > math.MaxFloat32 {
		return Value{}, newError(OutsideTypeRange, v,
			floatValue(Float64, -math.MaxFloat32), floatValue(Float64, math.MaxFloat32), target)
	}
	if float64(float32(f)) != f {
		return Value{}, newError(PrecisionLoss, v,
			floatValue(Float64, -math.MaxFloat32), floatValue(Float64, math.MaxFloat32), target)
	}
	return floatValue(target, f), nil
}

// typeRange returns the native range of an integer kind as Values of
// that kind.
func typeRange(k Kind) (lo, hi Value) {
	low, high := integerLimits(k)
	if k.Signed() {
		return intValue(k, low), intValue(k, int64(high))
	}
	return uintValue(k, 0), uintValue(k, high)
}

// valueAs unwraps a Value whose kind is KindOf[T].
func valueAs[T Number](v Value) T {
	switch {
	case v.kind.IsFloat():
		return T(v.Float64())
	case v.kind.Signed():
		return T(v.Int64())
	default:
		return T(v.Uint64())
	}
}
