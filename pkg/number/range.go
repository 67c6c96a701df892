// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Computes the inclusive bounds a value must lie in to be
// exactly representable in a target kind.

package number

import "math"

// Bound is an inclusive [Min, Max] range expressed in the domain used
// for comparison. Both ends are exactly representable in T.
type Bound[T Number] struct {
	Min T
	Max T
}

// Contains reports whether Min <= v <= Max. NaN is never contained.
func (b Bound[T]) Contains(v T) bool {
	return b.Min <= v && v <= b.Max
}

// exactIntegerLimit returns 2^P for a float kind with P bits of
// precision. Every integer of magnitude up to and including 2^P is
// exactly representable in that kind.
func exactIntegerLimit(k Kind) int64 {
	return 1 << k.MantissaBits()
}

// ExactDoubleIntegerRange returns [-2^53, 2^53], the range within
// which every integer is exactly representable as a float64.
func ExactDoubleIntegerRange() Bound[float64] {
	limit := float64(exactIntegerLimit(Float64))
	return Bound[float64]{Min: -limit, Max: limit}
}

// ExactFloat32IntegerRange returns [-2^24, 2^24], the range within
// which every integer is exactly representable as a float32.
func ExactFloat32IntegerRange() Bound[float32] {
	limit := float32(exactIntegerLimit(Float32))
	return Bound[float32]{Min: -limit, Max: limit}
}

// IntegerTypeRange returns the native minimum and maximum of T.
func IntegerTypeRange[T Integer]() Bound[T] {
	lo, hi := integerLimits(KindOf[T]())
	return Bound[T]{Min: T(lo), Max: T(hi)}
}

// integerLimits returns the native range of an integer kind. The
// minimum is held as an int64 and the maximum as a uint64 so that every
// kind fits without wrapping.
func integerLimits(k Kind) (lo int64, hi uint64) {
	bits := k.Bits()
	if k.Signed() {
		return -1 << (bits - 1), 1<<(bits-1) - 1
	}
	if bits == 64 {
		return 0, math.MaxUint64
	}
	return 0, 1<<bits - 1
}

// inIntegerRange reports whether the integer value v fits in the
// integer kind k.
func inIntegerRange(v Value, k Kind) bool {
	lo, hi := integerLimits(k)
	if v.isNegative() {
		return v.Int64() >= lo
	}
	return v.Uint64() <= hi
}

// inExactFloatRange reports whether the integer value v lies within
// [-2^P, 2^P] for the float kind k, compared in the integer domain.
func inExactFloatRange(v Value, k Kind) bool {
	limit := exactIntegerLimit(k)
	if v.isNegative() {
		return v.Int64() >= -limit
	}
	return v.Uint64() <= uint64(limit)
}
