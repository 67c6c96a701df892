// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Implements Value, a number tagged with its representation.

package number

import (
	"math"
	"strconv"
)

// Value is an immutable number tagged with the kind it is represented
// in. The zero Value has the Invalid kind.
type Value struct {
	kind Kind

	// bits holds the payload: the two's complement pattern for signed
	// kinds, the value for unsigned kinds and the float64 bit pattern
	// for float kinds (float32 values are widened, which is exact).
	bits uint64
}

// ValueOf tags v with the kind of T.
func ValueOf[T Number](v T) Value {
	k := KindOf[T]()
	switch {
	case k.IsFloat():
		return floatValue(k, float64(v))
	case k.Signed():
		return intValue(k, int64(v))
	default:
		return uintValue(k, uint64(v))
	}
}

func intValue(k Kind, v int64) Value {
	return Value{kind: k, bits: uint64(v)}
}

func uintValue(k Kind, v uint64) Value {
	return Value{kind: k, bits: v}
}

func floatValue(k Kind, v float64) Value {
	return Value{kind: k, bits: math.Float64bits(v)}
}

// Kind returns the representation v is tagged with.
func (v Value) Kind() Kind {
	return v.kind
}

// Int64 returns v as an int64. It is exact for signed integer kinds.
func (v Value) Int64() int64 {
	switch {
	case v.kind.IsFloat():
		return int64(v.Float64())
	default:
		return int64(v.bits)
	}
}

// Uint64 returns v as a uint64. It is exact for unsigned integer kinds.
func (v Value) Uint64() uint64 {
	switch {
	case v.kind.IsFloat():
		return uint64(v.Float64())
	default:
		return v.bits
	}
}

// Float64 returns v as a float64. It is exact for float kinds and for
// integers inside the exact double range.
func (v Value) Float64() float64 {
	switch {
	case v.kind.IsFloat():
		return math.Float64frombits(v.bits)
	case v.kind.Signed():
		return float64(int64(v.bits))
	default:
		return float64(v.bits)
	}
}

// isNegative reports whether an integer value is below zero.
func (v Value) isNegative() bool {
	return v.kind.Signed() && int64(v.bits) < 0
}

// Interface returns v as a value of the native Go type named by its
// kind, e.g. an int8 for Int8. It returns nil for the zero Value.
//
//nolint:gocyclo // Why: one case per kind.
func (v Value) Interface() interface{} {
	switch v.kind {
	case Int8:
		return int8(v.bits)
	case Int16:
		return int16(v.bits)
	case Int32:
		return int32(v.bits)
	case Int64:
		return int64(v.bits)
	case Int:
		return int(v.bits)
	case Uint8:
		return uint8(v.bits)
	case Uint16:
		return uint16(v.bits)
	case Uint32:
		return uint32(v.bits)
	case Uint64:
		return v.bits
	case Uint:
		return uint(v.bits)
	case Uintptr:
		return uintptr(v.bits)
	case Float32:
		return float32(v.Float64())
	case Float64:
		return v.Float64()
	default:
		return nil
	}
}

// String formats v in its own domain. Floats use the shortest
// representation that round-trips for their width.
func (v Value) String() string {
	switch {
	case v.kind == Invalid:
		return "<invalid>"
	case v.kind.IsFloat():
		return strconv.FormatFloat(v.Float64(), 'g', -1, v.kind.Bits())
	case v.kind.Signed():
		return strconv.FormatInt(int64(v.bits), 10)
	default:
		return strconv.FormatUint(v.bits, 10)
	}
}
