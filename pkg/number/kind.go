// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Describes the closed set of numeric representations
// the conversion engine supports.

package number

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies a concrete numeric representation.
type Kind uint8

// The supported kinds. The zero value is not a valid kind.
const (
	Invalid Kind = iota
	Int8
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Uintptr
	Float32
	Float64
)

// kindInfo is the descriptor the range calculator is parameterized over.
type kindInfo struct {
	name     string
	bits     int
	signed   bool
	float    bool
	mantissa int
}

// intBits is the width of int, uint and uintptr on this platform.
const intBits = 32 << (^uint(0) >> 63)

var kinds = [...]kindInfo{
	Invalid: {name: "invalid"},
	Int8:    {name: "int8", bits: 8, signed: true},
	Int16:   {name: "int16", bits: 16, signed: true},
	Int32:   {name: "int32", bits: 32, signed: true},
	Int64:   {name: "int64", bits: 64, signed: true},
	Int:     {name: "int", bits: intBits, signed: true},
	Uint8:   {name: "uint8", bits: 8},
	Uint16:  {name: "uint16", bits: 16},
	Uint32:  {name: "uint32", bits: 32},
	Uint64:  {name: "uint64", bits: 64},
	Uint:    {name: "uint", bits: intBits},
	Uintptr: {name: "uintptr", bits: intBits},
	Float32: {name: "float32", bits: 32, signed: true, float: true, mantissa: 24},
	Float64: {name: "float64", bits: 64, signed: true, float: true, mantissa: 53},
}

func (k Kind) info() kindInfo {
	if int(k) >= len(kinds) {
		return kinds[Invalid]
	}
	return kinds[k]
}

// String returns the Go type name of the kind.
func (k Kind) String() string {
	return k.info().name
}

// Bits returns the storage width of the kind.
func (k Kind) Bits() int {
	return k.info().bits
}

// Signed reports whether the kind can hold negative values.
func (k Kind) Signed() bool {
	return k.info().signed
}

// IsFloat reports whether the kind is an IEEE-754 floating point type.
func (k Kind) IsFloat() bool {
	return k.info().float
}

// IsInteger reports whether the kind is a fixed-width integer type.
func (k Kind) IsInteger() bool {
	return k != Invalid && int(k) < len(kinds) && !k.IsFloat()
}

// MantissaBits returns the precision of a floating point kind,
// including the implicit leading bit. It is 0 for integer kinds.
func (k Kind) MantissaBits() int {
	return k.info().mantissa
}

// aliases are accepted by ParseKind in addition to the canonical names.
var aliases = map[string]Kind{
	"byte":   Uint8,
	"rune":   Int32,
	"double": Float64,
	"float":  Float32,
}

// ParseKind returns the kind named by a Go type name such as "int8"
// or "float64".
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := Int8; k <= Float64; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	if k, ok := aliases[name]; ok {
		return k, nil
	}
	return Invalid, errors.Errorf("unknown numeric type %q", name)
}

// KindOf returns the kind of T. Named types resolve to the kind of
// their underlying type.
func KindOf[T Number]() Kind {
	return KindFor(reflect.TypeOf((*T)(nil)).Elem())
}

// KindFor returns the kind of a reflected type, or Invalid if t is not
// a supported numeric type.
//
//nolint:gocyclo // Why: one case per kind.
func KindFor(t reflect.Type) Kind {
	if t == nil {
		return Invalid
	}
	switch t.Kind() {
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Int:
		return Int
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Uint:
		return Uint
	case reflect.Uintptr:
		return Uintptr
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	default:
		return Invalid
	}
}
