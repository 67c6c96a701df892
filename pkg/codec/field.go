// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Reads numbers out of decoded documents as native types.

package codec

import (
	"strconv"
	"strings"

	"github.com/getoutreach/safenum/pkg/number"
	"github.com/pkg/errors"
)

// SplitPath splits a dotted path such as "limits.0.max" into its
// elements. Array elements are addressed by their decimal index.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// JoinPath is the inverse of SplitPath.
func JoinPath(path []string) string {
	return strings.Join(path, ".")
}

// Field walks doc along path and converts the number found there to T.
//
// Conversion failures are *number.ConversionError values wrapped with
// the path, so errors.As and errors.Is keep working.
func Field[T number.Number](doc interface{}, path ...string) (T, error) {
	f, err := numberAt(doc, path)
	if err != nil {
		return 0, err
	}

	v, err := number.Cast[T](f)
	if err != nil {
		return 0, errors.Wrapf(err, "field %q", JoinPath(path))
	}
	return v, nil
}

// FieldValue is Field for callers that only know the target kind at
// run time.
func FieldValue(doc interface{}, kind number.Kind, path ...string) (number.Value, error) {
	f, err := numberAt(doc, path)
	if err != nil {
		return number.Value{}, err
	}

	v, err := number.Convert(number.ValueOf(f), kind)
	if err != nil {
		return number.Value{}, errors.Wrapf(err, "field %q", JoinPath(path))
	}
	return v, nil
}

// numberAt returns the float64 stored at path.
func numberAt(doc interface{}, path []string) (float64, error) {
	node, err := lookup(doc, path)
	if err != nil {
		return 0, err
	}

	f, ok := node.(float64)
	if !ok {
		return 0, errors.Errorf("field %q: expected a number, got %s", JoinPath(path), describe(node))
	}
	return f, nil
}

func lookup(doc interface{}, path []string) (interface{}, error) {
	node := doc
	for i, elem := range path {
		switch n := node.(type) {
		case map[string]interface{}:
			child, ok := n[elem]
			if !ok {
				return nil, errors.Errorf("field %q: not found", JoinPath(path[:i+1]))
			}
			node = child
		case []interface{}:
			idx, err := strconv.Atoi(elem)
			if err != nil || idx < 0 || idx >= len(n) {
				return nil, errors.Errorf("field %q: no element %q in array of length %d",
					JoinPath(path[:i+1]), elem, len(n))
			}
			node = n[idx]
		default:
			return nil, errors.Errorf("field %q: cannot descend into %s", JoinPath(path[:i+1]), describe(node))
		}
	}
	return node, nil
}

// describe names the JSON type of a decoded value.
func describe(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64:
		return "number"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return "unknown"
	}
}
