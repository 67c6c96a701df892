// Copyright 2025 Outreach Corporation. All Rights Reserved.

//go:build or_dev || or_test
// +build or_dev or_test

// Description: Enables internal invariant checks in dev and test builds.

package number

import "github.com/pkg/errors"

// invariantsEnabled reports whether assertInvariant is compiled in.
const invariantsEnabled = true

// assertInvariant panics when cond is false. A failure means the range
// calculator or a converter is wrong; it is never caused by input.
func assertInvariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(errors.Errorf("number: invariant violated: "+format, args...))
	}
}
