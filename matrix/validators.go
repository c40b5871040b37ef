// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape, index and length checks.
//  - Every mutating operation validates through these helpers BEFORE touching
//    storage, which is what makes each call all-or-nothing.
//
// Determinism & Performance:
//  - All checks are pure and O(1); only the error path allocates.

package matrix

import (
	"fmt"
	"math"
	"unsafe"
)

// cellsFit reports whether a width×height buffer of Cell[T] has a byte size
// representable as an int. Dimensions are assumed non-negative.
// Complexity: O(1).
func cellsFit[T comparable](width, height int) bool {
	if width == 0 || height == 0 {
		return true
	}
	size := int(unsafe.Sizeof(Cell[T]{})) // >= 1: Cell carries a bool

	return height <= math.MaxInt/width/size
}

// validateShape rejects negative dimensions and shapes whose buffer size
// overflows int.
// Complexity: O(1).
func validateShape[T comparable](op string, width, height int) error {
	if width < 0 || height < 0 || !cellsFit[T](width, height) {
		return fmt.Errorf("%s(%d,%d): %w", op, width, height, ErrInvalidDimensions)
	}

	return nil
}

// validateGrowth verifies that adding one line along axis keeps the shape
// addressable: the grown dimension must not pass math.MaxInt and the new
// buffer size must fit in an int.
// Complexity: O(1).
func validateGrowth[T comparable](op string, axis Axis, width, height int) error {
	grown := height
	if axis == AxisCol {
		grown = width
	}
	if grown == math.MaxInt {
		return fmt.Errorf("Dense.%s: %s count %d cannot grow: %w", op, axis, grown, ErrInvalidDimensions)
	}
	if axis == AxisRow {
		height++
	} else {
		width++
	}
	if !cellsFit[T](width, height) {
		return fmt.Errorf("Dense.%s: %dx%d cells overflow int: %w", op, width, height, ErrInvalidDimensions)
	}

	return nil
}

// checkIndex verifies 0 ≤ idx < limit and reports an *IndexError otherwise.
// Insert operations pass limit = dimension+1 so appending is legal.
// Complexity: O(1).
func checkIndex(op string, axis Axis, idx, limit int) error {
	if idx < 0 || idx >= limit {
		return &IndexError{Op: op, Axis: axis, Index: idx, Limit: limit}
	}

	return nil
}

// validateLen verifies that a supplied line carries exactly want values.
// Complexity: O(1).
func validateLen(op string, axis Axis, got, want int) error {
	if got != want {
		return fmt.Errorf("Dense.%s: %s needs %d values, got %d: %w", op, axis, want, got, ErrSizeMismatch)
	}

	return nil
}
