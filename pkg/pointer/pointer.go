// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Implements the pointer package.

// Package pointer provides generic helpers to move between values and
// pointers, replacing patterns like `v := 42; return &v` and explicit
// nil checks before a dereference.
package pointer

// ToPtr returns a pointer to a copy of object.
func ToPtr[T any](object T) *T {
	return &object
}

// ToValue dereferences ptr, returning the zero value of T for nil.
func ToValue[T any](ptr *T) (res T) {
	if ptr == nil {
		return res
	}
	return *ptr
}
