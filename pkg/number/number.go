// Copyright 2025 Outreach Corporation. All Rights Reserved.
// Description: Numeric conversion utilities.

// Package number provides lossless, validated conversion between
// fixed-width integers and IEEE-754 floating point.
//
// It is meant for the boundary between a strongly-typed native domain
// and a weakly-typed one, such as a JSON or scripting layer where every
// number is a double. A conversion either produces the mathematically
// exact result or fails with a *ConversionError describing the input,
// the violated [min, max] bound and the target type. Nothing is ever
// truncated, wrapped or rounded.
//
// The key boundary is the exact double-integer range [-2^53, 2^53]:
// every integer inside it has an exact float64 representation, and no
// float64 outside it can be trusted to be the integer the sender meant.
//
// All functions are pure and safe for concurrent use.
package number

import (
	"github.com/getoutreach/safenum/pkg/pointer"
	"golang.org/x/exp/constraints"
)

// Number can hold any numeric data.
type Number interface {
	constraints.Integer | constraints.Float
}

// Integer is any fixed-width integer type.
type Integer interface {
	constraints.Integer
}

// Float is any IEEE-754 floating point type.
type Float interface {
	constraints.Float
}

// ToInt64Value converts pointer to a numeric value to an int64. A nil
// pointer converts to 0.
func ToInt64Value[T Number](ptr *T) (int64, error) {
	return ToInt64(pointer.ToValue(ptr))
}

// ToInt64 converts a numeric value to an int64.
func ToInt64[T Number](value T) (int64, error) {
	return Cast[int64](value)
}

// ToUInt64Value converts pointer to a numeric value to an uint64. A nil
// pointer converts to 0.
func ToUInt64Value[T Number](ptr *T) (uint64, error) {
	return ToUInt64(pointer.ToValue(ptr))
}

// ToUInt64 converts a numeric value to an uint64.
func ToUInt64[T Number](value T) (uint64, error) {
	return Cast[uint64](value)
}

// ToInt32Value converts pointer to a numeric value to an int32. A nil
// pointer converts to 0.
func ToInt32Value[T Number](ptr *T) (int32, error) {
	return ToInt32(pointer.ToValue(ptr))
}

// ToInt32 converts a numeric value to an int32.
func ToInt32[T Number](value T) (int32, error) {
	return Cast[int32](value)
}

// ToUInt32Value converts pointer to a numeric value to an uint32. A nil
// pointer converts to 0.
func ToUInt32Value[T Number](ptr *T) (uint32, error) {
	return ToUInt32(pointer.ToValue(ptr))
}

// ToUInt32 converts a numeric value to an uint32.
func ToUInt32[T Number](value T) (uint32, error) {
	return Cast[uint32](value)
}
