// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Lowers native Go values into the double-only domain.

package codec

import (
	"reflect"
	"strconv"

	"github.com/getoutreach/safenum/pkg/number"
	"github.com/pkg/errors"
)

// Lower converts a tree of native values into the form a decoder would
// produce: maps with string keys become map[string]interface{},
// slices and arrays become []interface{} and every number becomes a
// float64. Integers outside [-2^53, 2^53] fail with
// number.OutsideDoubleExactRange, annotated with their path.
func Lower(v interface{}) (interface{}, error) {
	return lower(reflect.ValueOf(v), nil)
}

//nolint:gocyclo // Why: one case per reflect kind.
func lower(v reflect.Value, path []string) (interface{}, error) {
	if !v.IsValid() {
		return nil, nil
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nil, nil
		}
		return lower(v.Elem(), path)
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return lowerNumber(number.ValueOf(v.Int()), v.Type(), path)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return lowerNumber(number.ValueOf(v.Uint()), v.Type(), path)
	case reflect.Float32, reflect.Float64:
		return lowerNumber(number.ValueOf(v.Float()), v.Type(), path)
	case reflect.Slice:
		if v.IsNil() {
			return nil, nil
		}
		return lowerList(v, path)
	case reflect.Array:
		return lowerList(v, path)
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, errors.Errorf("field %q: map keys must be strings, got %s", JoinPath(path), v.Type().Key())
		}
		if v.IsNil() {
			return nil, nil
		}
		out := make(map[string]interface{}, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			elem, err := lower(iter.Value(), appendPath(path, key))
			if err != nil {
				return nil, err
			}
			out[key] = elem
		}
		return out, nil
	default:
		return nil, errors.Errorf("field %q: unsupported type %s", JoinPath(path), v.Type())
	}
}

func lowerList(v reflect.Value, path []string) (interface{}, error) {
	out := make([]interface{}, v.Len())
	for i := range out {
		elem, err := lower(v.Index(i), appendPath(path, strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		out[i] = elem
	}
	return out, nil
}

// lowerNumber retags wide, the 64-bit reading of a number of type t,
// with t's own kind and converts it to float64.
func lowerNumber(wide number.Value, t reflect.Type, path []string) (interface{}, error) {
	src, err := number.Convert(wide, number.KindFor(t))
	if err != nil {
		return nil, errors.Wrapf(err, "field %q", JoinPath(path))
	}

	out, err := number.Convert(src, number.Float64)
	if err != nil {
		return nil, errors.Wrapf(err, "field %q", JoinPath(path))
	}
	return out.Float64(), nil
}

// appendPath returns path+elem without sharing path's backing array.
func appendPath(path []string, elem string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, elem)
}
