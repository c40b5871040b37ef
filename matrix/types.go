// SPDX-License-Identifier: MIT

// Package matrix: domain types. This file contains ONLY the per-slot Cell
// wrapper; the Matrix contract lives in matrix.go, errors in errors.go and
// options in options.go.
package matrix

import "fmt"

// unsetGlyph is how String renders a slot that holds no value.
const unsetGlyph = "_"

// Cell is one matrix slot: either a stored value or the "unset" sentinel.
// The zero Cell is unset, so a freshly allocated []Cell[T] is all-unset.
//
// Unset is a first-class state: reading an unset slot is never an error.
type Cell[T comparable] struct {
	v  T    // stored value; zero when !ok
	ok bool // true once a value has been stored
}

// Some returns a set Cell holding v.
func Some[T comparable](v T) Cell[T] { return Cell[T]{v: v, ok: true} }

// None returns the unset Cell.
func None[T comparable]() Cell[T] { return Cell[T]{} }

// Value returns the stored value and whether the cell is set.
// For an unset cell it returns the zero value of T and false.
func (c Cell[T]) Value() (T, bool) { return c.v, c.ok }

// IsSet reports whether the cell holds a value.
func (c Cell[T]) IsSet() bool { return c.ok }

// Or returns the stored value, or fallback when the cell is unset.
func (c Cell[T]) Or(fallback T) T {
	if !c.ok {
		return fallback
	}

	return c.v
}

// Equal reports whether both cells are unset, or both are set with == values.
func (c Cell[T]) Equal(o Cell[T]) bool {
	if c.ok != o.ok {
		return false
	}

	return !c.ok || c.v == o.v
}

// String renders the value with %v, or "_" when unset.
func (c Cell[T]) String() string {
	if !c.ok {
		return unsetGlyph
	}

	return fmt.Sprintf("%v", c.v)
}
