package number_test

import (
	"testing"

	"github.com/getoutreach/safenum/pkg/number"
	"gotest.tools/v3/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, number.KindOf[int8](), number.Int8)
	assert.Equal(t, number.KindOf[uint64](), number.Uint64)
	assert.Equal(t, number.KindOf[uintptr](), number.Uintptr)
	assert.Equal(t, number.KindOf[float32](), number.Float32)
	assert.Equal(t, number.KindOf[float64](), number.Float64)
	assert.Equal(t, number.KindOf[port](), number.Uint16)
}

func TestKindDescriptor(t *testing.T) {
	tests := []struct {
		kind     number.Kind
		bits     int
		signed   bool
		float    bool
		mantissa int
	}{
		{number.Int8, 8, true, false, 0},
		{number.Uint16, 16, false, false, 0},
		{number.Int32, 32, true, false, 0},
		{number.Uint64, 64, false, false, 0},
		{number.Float32, 32, true, true, 24},
		{number.Float64, 64, true, true, 53},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind.Bits(), tt.bits)
			assert.Equal(t, tt.kind.Signed(), tt.signed)
			assert.Equal(t, tt.kind.IsFloat(), tt.float)
			assert.Equal(t, tt.kind.IsInteger(), !tt.float)
			assert.Equal(t, tt.kind.MantissaBits(), tt.mantissa)
		})
	}

	assert.Assert(t, !number.Invalid.IsInteger())
	assert.Assert(t, !number.Invalid.IsFloat())
	assert.Equal(t, number.Kind(200).String(), "invalid")
	assert.Assert(t, !number.Kind(99).IsInteger())
	assert.Assert(t, !number.Kind(99).IsFloat())
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"int8", "INT8", " int8 "} {
		k, err := number.ParseKind(name)
		assert.NilError(t, err)
		assert.Equal(t, k, number.Int8)
	}

	k, err := number.ParseKind("double")
	assert.NilError(t, err)
	assert.Equal(t, k, number.Float64)

	k, err = number.ParseKind("byte")
	assert.NilError(t, err)
	assert.Equal(t, k, number.Uint8)

	_, err = number.ParseKind("int128")
	assert.Error(t, err, `unknown numeric type "int128"`)
}
