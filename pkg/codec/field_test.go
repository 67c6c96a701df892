package codec_test

import (
	"errors"
	"testing"

	"github.com/getoutreach/safenum/pkg/codec"
	"github.com/getoutreach/safenum/pkg/number"
	"gotest.tools/v3/assert"
)

func document() interface{} {
	return map[string]interface{}{
		"name":    "reader",
		"retries": 3.0,
		"ratio":   0.25,
		"limits": []interface{}{
			map[string]interface{}{"max": 65535.0},
			map[string]interface{}{"max": 65536.0},
		},
		"big": 1e300,
	}
}

func TestField(t *testing.T) {
	retries, err := codec.Field[int8](document(), "retries")
	assert.NilError(t, err)
	assert.Equal(t, retries, int8(3))

	limit, err := codec.Field[uint16](document(), codec.SplitPath("limits.0.max")...)
	assert.NilError(t, err)
	assert.Equal(t, limit, uint16(65535))

	ratio, err := codec.Field[float32](document(), "ratio")
	assert.NilError(t, err)
	assert.Equal(t, ratio, float32(0.25))
}

func TestFieldConversionErrors(t *testing.T) {
	_, err := codec.Field[uint16](document(), codec.SplitPath("limits.1.max")...)
	assert.ErrorIs(t, err, number.OutsideTypeRange)
	assert.ErrorContains(t, err, `field "limits.1.max"`)

	var ce *number.ConversionError
	assert.Assert(t, errors.As(err, &ce))
	assert.Equal(t, ce.Target, number.Uint16)
	assert.Equal(t, ce.Value.Float64(), 65536.0)

	_, err = codec.Field[int64](document(), "big")
	assert.ErrorIs(t, err, number.OutsideExactRange)

	_, err = codec.Field[int64](document(), "ratio")
	assert.ErrorIs(t, err, number.PrecisionLoss)
}

func TestFieldLookupErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing key", "timeout", `field "timeout": not found`},
		{"not a number", "name", `field "name": expected a number, got string`},
		{"bad index", "limits.x.max", `field "limits.x": no element "x" in array of length 2`},
		{"index out of range", "limits.2", `field "limits.2": no element "2" in array of length 2`},
		{"descend into scalar", "retries.value", `field "retries.value": cannot descend into number`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Field[int64](document(), codec.SplitPath(tt.path)...)
			assert.Error(t, err, tt.want)
		})
	}
}

func TestFieldValue(t *testing.T) {
	v, err := codec.FieldValue(document(), number.Uint8, "retries")
	assert.NilError(t, err)
	assert.Equal(t, v.Kind(), number.Uint8)
	assert.Equal(t, v.Interface(), uint8(3))
}

func TestPaths(t *testing.T) {
	assert.Assert(t, codec.SplitPath("") == nil)
	assert.DeepEqual(t, codec.SplitPath("a.0.b"), []string{"a", "0", "b"})
	assert.Equal(t, codec.JoinPath([]string{"a", "0", "b"}), "a.0.b")
}
