package number_test

import (
	"math"
	"testing"

	"github.com/getoutreach/safenum/pkg/number"
	"gotest.tools/v3/assert"
)

func TestExactDoubleIntegerRange(t *testing.T) {
	b := number.ExactDoubleIntegerRange()
	assert.Equal(t, b.Min, -9007199254740992.0)
	assert.Equal(t, b.Max, 9007199254740992.0)
	assert.Assert(t, b.Min <= b.Max)

	// Both ends are integers that survive a round trip through int64.
	assert.Equal(t, float64(int64(b.Min)), b.Min)
	assert.Equal(t, float64(int64(b.Max)), b.Max)

	assert.Assert(t, b.Contains(b.Max))
	assert.Assert(t, b.Contains(b.Min))
	assert.Assert(t, !b.Contains(math.NaN()))
	assert.Assert(t, !b.Contains(math.Inf(1)))
}

func TestExactFloat32IntegerRange(t *testing.T) {
	b := number.ExactFloat32IntegerRange()
	assert.Equal(t, b.Min, float32(-16777216))
	assert.Equal(t, b.Max, float32(16777216))
}

func TestIntegerTypeRange(t *testing.T) {
	assert.Equal(t, number.IntegerTypeRange[int8](), number.Bound[int8]{Min: math.MinInt8, Max: math.MaxInt8})
	assert.Equal(t, number.IntegerTypeRange[int16](), number.Bound[int16]{Min: math.MinInt16, Max: math.MaxInt16})
	assert.Equal(t, number.IntegerTypeRange[int32](), number.Bound[int32]{Min: math.MinInt32, Max: math.MaxInt32})
	assert.Equal(t, number.IntegerTypeRange[int64](), number.Bound[int64]{Min: math.MinInt64, Max: math.MaxInt64})
	assert.Equal(t, number.IntegerTypeRange[int](), number.Bound[int]{Min: math.MinInt, Max: math.MaxInt})
	assert.Equal(t, number.IntegerTypeRange[uint8](), number.Bound[uint8]{Min: 0, Max: math.MaxUint8})
	assert.Equal(t, number.IntegerTypeRange[uint16](), number.Bound[uint16]{Min: 0, Max: math.MaxUint16})
	assert.Equal(t, number.IntegerTypeRange[uint32](), number.Bound[uint32]{Min: 0, Max: math.MaxUint32})
	assert.Equal(t, number.IntegerTypeRange[uint64](), number.Bound[uint64]{Min: 0, Max: math.MaxUint64})
	assert.Equal(t, number.IntegerTypeRange[uint](), number.Bound[uint]{Min: 0, Max: math.MaxUint})
	assert.Equal(t, number.IntegerTypeRange[uintptr](), number.Bound[uintptr]{Min: 0, Max: ^uintptr(0)})
}

func TestIntegerTypeRangeContainsExactDoubleRange(t *testing.T) {
	// The double-to-int64 path relies on int64 holding every exact
	// double integer.
	i := number.IntegerTypeRange[int64]()
	d := number.ExactDoubleIntegerRange()
	assert.Assert(t, i.Min < int64(d.Min))
	assert.Assert(t, i.Max > int64(d.Max))
}
