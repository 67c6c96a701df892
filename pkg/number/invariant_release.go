// Copyright 2025 Outreach Corporation. All Rights Reserved.

//go:build !or_dev && !or_test
// +build !or_dev,!or_test

// Description: Compiles internal invariant checks out of release builds.

package number

const invariantsEnabled = false

func assertInvariant(bool, string, ...interface{}) {}
