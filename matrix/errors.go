// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the bounds-violation error type.
// All operations MUST return these sentinels (directly or wrapped with %w) and
// tests MUST check them via errors.Is / errors.As. No operation panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with "Dense.<Op>..." context.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> index -> value count -> step.

var (
	// ErrInvalidDimensions indicates that a requested width or height is negative.
	// Zero is a legal dimension (empty matrix).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column argument is outside the
	// valid range of the operation. Returned wrapped in an *IndexError.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSizeMismatch indicates that a supplied value sequence does not match
	// the opposite dimension (row values vs width, column values vs height),
	// or that row literals passed to NewFromRows are ragged.
	ErrSizeMismatch = errors.New("matrix: value count does not match dimension")

	// ErrZeroStep indicates a FillLine walk with deltaRow == deltaCol == 0,
	// which would never reach its end bounds.
	ErrZeroStep = errors.New("matrix: line step must be non-zero")
)

// Axis names the dimension an index refers to.
type Axis int

const (
	// AxisRow marks a row index (bounded by Height).
	AxisRow Axis = iota
	// AxisCol marks a column index (bounded by Width).
	AxisCol
)

// String returns "row" or "col".
func (a Axis) String() string {
	if a == AxisRow {
		return "row"
	}

	return "col"
}

// IndexError reports an index outside [0, Limit) for operation Op.
// It unwraps to ErrOutOfRange.
type IndexError struct {
	Op    string // method name, e.g. "Get", "InsertRow"
	Axis  Axis   // which dimension was violated
	Index int    // offending index
	Limit int    // exclusive upper bound that applied to the call
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("Dense.%s: %s %d not in [0,%d): %v", e.Op, e.Axis, e.Index, e.Limit, ErrOutOfRange)
}

// Unwrap exposes ErrOutOfRange to errors.Is.
func (e *IndexError) Unwrap() error { return ErrOutOfRange }
