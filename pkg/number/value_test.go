package number_test

import (
	"math"
	"testing"

	"github.com/getoutreach/safenum/pkg/number"
	"gotest.tools/v3/assert"
)

func TestValueOf(t *testing.T) {
	v := number.ValueOf(int8(-5))
	assert.Equal(t, v.Kind(), number.Int8)
	assert.Equal(t, v.Int64(), int64(-5))
	assert.Equal(t, v.Float64(), -5.0)
	assert.Equal(t, v.String(), "-5")
	assert.Equal(t, v.Interface(), int8(-5))

	v = number.ValueOf(uint64(math.MaxUint64))
	assert.Equal(t, v.Kind(), number.Uint64)
	assert.Equal(t, v.Uint64(), uint64(math.MaxUint64))
	assert.Equal(t, v.String(), "18446744073709551615")

	v = number.ValueOf(float32(0.1))
	assert.Equal(t, v.Kind(), number.Float32)
	assert.Equal(t, v.String(), "0.1")
	assert.Equal(t, v.Interface(), float32(0.1))

	v = number.ValueOf(math.Inf(-1))
	assert.Equal(t, v.String(), "-Inf")

	assert.Equal(t, number.Value{}.String(), "<invalid>")
	assert.Assert(t, number.Value{}.Interface() == nil)
}
