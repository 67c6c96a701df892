// Copyright 2025 Outreach Corporation. All Rights Reserved.

//go:build or_dev || or_test
// +build or_dev or_test

package number

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestAssertInvariant(t *testing.T) {
	assert.Assert(t, invariantsEnabled)

	assertInvariant(true, "never reported")

	defer func() {
		r := recover()
		assert.Assert(t, r != nil)
		assert.ErrorContains(t, r.(error), "number: invariant violated: 1 != 2")
	}()
	assertInvariant(1 == 2, "%d != %d", 1, 2)
}

func TestFloatToIntegerHoldsInvariantAtBoundaries(t *testing.T) {
	for _, f := range []float64{-1 << 53, 1 << 53, 0} {
		_, err := floatToInteger(floatValue(Float64, f), Int64)
		assert.NilError(t, err)
	}
}
