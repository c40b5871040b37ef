// SPDX-License-Identifier: MIT

// Package matrix defines the Matrix capability contract.
//
// What & Why:
//
//	Matrix is the full public surface other code depends on: element access,
//	structural row/column editing, bulk fills and value semantics. *Dense is
//	the implementation shipped by this package; the interface lets callers
//	wrap or substitute it (Equal accepts any Matrix of the same element type).
//
// Complexity:
//
//	Width/Height/Get/At/Set/Clear run in O(1).
//	Insert*/Delete* rebuild the backing store in O(width*height).
//	FillRegion is O(area); FillLine is O(steps).
//	Clone, Equal and Hash are O(width*height).
package matrix

// Matrix is a height×width grid of Cell[T] slots.
// Rows are indexed by row ∈ [0, Height()), columns by col ∈ [0, Width()).
type Matrix[T comparable] interface {
	// Width returns the number of columns. Complexity: O(1).
	Width() int

	// Height returns the number of rows. Complexity: O(1).
	Height() int

	// Get returns the slot at (row, col), which may be unset.
	// Returns an *IndexError (ErrOutOfRange) on invalid indices.
	Get(row, col int) (Cell[T], error)

	// At returns the value at (row, col), or the zero value of T when unset.
	At(row, col int) (T, error)

	// Set stores v at (row, col).
	Set(row, col int, v T) error

	// Clear resets (row, col) to the unset state.
	Clear(row, col int) error

	// InsertRow inserts a default-filled row at row ∈ [0, Height()].
	InsertRow(row int) error

	// InsertRowValues inserts vals as a new row; len(vals) must equal Width().
	InsertRowValues(row int, vals []T) error

	// InsertCol inserts a default-filled column at col ∈ [0, Width()].
	InsertCol(col int) error

	// InsertColValues inserts vals as a new column; len(vals) must equal Height().
	InsertColValues(col int, vals []T) error

	// DeleteRow removes row ∈ [0, Height()).
	DeleteRow(row int) error

	// DeleteCol removes col ∈ [0, Width()).
	DeleteCol(col int) error

	// FillRegion sets every cell in [startRow,endRow)×[startCol,endCol) to v.
	FillRegion(startRow, startCol, endRow, endCol int, v T) error

	// FillLine sets every cell visited by a fixed-step walk to v.
	FillLine(startRow, startCol, deltaRow, deltaCol, endRow, endCol int, v T) error

	// Clone returns an independent copy (elements are copied shallowly).
	Clone() Matrix[T]

	// Equal reports equal shape and cell-wise equal contents.
	Equal(other Matrix[T]) bool

	// Hash returns a hash consistent with Equal for matrices sharing a hasher.
	Hash() uint64
}
