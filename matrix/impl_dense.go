// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of Cell[T] with the explicit index formula i*width + j.
//   - Guarantee safety at the public surface: Get/At/Set return errors instead of panicking.
//   - Keep traversal deterministic (fixed row-major loop orders).
//
// Complexity quicksheet:
//   - New/NewFilled: O(w*h); Get/At/Set/Clear: O(1); Clone: O(w*h); String/Do: O(w*h).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew         = "New"
	ctxNewFilled   = "NewFilled"
	ctxNewFromRows = "NewFromRows"
	ctxGet         = "Get"
	ctxAt          = "At"
	ctxSet         = "Set"
	ctxClear       = "Clear"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix of Cell[T].
//   - width, height hold dimensions (>= 0; zero is a legal empty matrix).
//   - data is a flat buffer of length width*height (offset = row*width + col).
//   - def is the cell written into every slot created by construction or growth.
//   - hasher hashes set elements for Hash (see WithHasher).
//
// A Dense owns its storage exclusively; it is not safe for concurrent mutation.
type Dense[T comparable] struct {
	width, height int            // column and row counts
	data          []Cell[T]      // contiguous row-major storage (len == width*height)
	def           Cell[T]        // growth fill value (None for New)
	hasher        func(T) uint64 // element hasher (defaultHasher unless WithHasher)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[int]  = (*Dense[int])(nil)
	_ fmt.Stringer = (*Dense[int])(nil)
)

// New creates a width×height matrix whose cells are all unset.
// MAIN DESCRIPTION:
//   - Public constructor with the "no value yet" default. Reading an unset
//     cell returns the None sentinel (Get) or the zero value (At), never an error.
//
// Implementation:
//   - Stage 1: validate width>=0 && height>=0 and that the width*height buffer size fits in int; else ErrInvalidDimensions.
//   - Stage 2: resolve options (hasher).
//   - Stage 3: allocate the buffer; make() zero-fills it, and the zero Cell is unset.
//
// Errors:
//   - ErrInvalidDimensions (negative width or height, or the width*height buffer overflows int).
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
//
// AI-Hints:
//   - The element type usually cannot be inferred without options: New[int](w, h).
func New[T comparable](width, height int, opts ...Option[T]) (*Dense[T], error) {
	return newDense(ctxNew, width, height, None[T](), opts)
}

// NewFilled creates a width×height matrix with every cell set to def.
// def is also used for every cell created later by InsertRow/InsertCol.
//
// Errors:
//   - ErrInvalidDimensions (negative width or height, or the width*height buffer overflows int).
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func NewFilled[T comparable](width, height int, def T, opts ...Option[T]) (*Dense[T], error) {
	return newDense(ctxNewFilled, width, height, Some(def), opts)
}

// NewFromRows builds a matrix from row literals: rows[i][j] lands at (i, j).
// The default cell is unset, as with New.
//
// Behavior highlights:
//   - An empty input yields a 0×0 matrix.
//   - Rows are copied; later edits to the input do not reach the matrix.
//
// Errors:
//   - ErrSizeMismatch when rows are ragged.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func NewFromRows[T comparable](rows [][]T, opts ...Option[T]) (*Dense[T], error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxNewFromRows, i, len(r), width, ErrSizeMismatch)
		}
	}

	m, err := newDense(ctxNewFromRows, width, height, None[T](), opts)
	if err != nil {
		return nil, err
	}
	var base int
	for i, r := range rows {
		base = i * width
		for j, v := range r {
			m.data[base+j] = Some(v)
		}
	}

	return m, nil
}

// newDense is the single allocation path shared by all constructors.
func newDense[T comparable](op string, width, height int, def Cell[T], opts []Option[T]) (*Dense[T], error) {
	if err := validateShape[T](op, width, height); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	buf := make([]Cell[T], width*height)
	if def.ok {
		for i := range buf {
			buf[i] = def
		}
	}

	return &Dense[T]{
		width:  width,
		height: height,
		data:   buf,
		def:    def,
		hasher: o.hasher,
	}, nil
}

// Width returns the column count. Complexity: O(1).
func (m *Dense[T]) Width() int { return m.width }

// Height returns the row count. Complexity: O(1).
func (m *Dense[T]) Height() int { return m.height }

// Shape packs Height() and Width() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.height, m.width }

// Default returns the cell used to fill slots created by growth.
func (m *Dense[T]) Default() Cell[T] { return m.def }

// offset computes the row-major offset or returns an *IndexError.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Behavior highlights:
//   - The row is checked before the column; the first violation is reported.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) offset(op string, row, col int) (int, error) {
	if err := checkIndex(op, AxisRow, row, m.height); err != nil {
		return 0, err
	}
	if err := checkIndex(op, AxisCol, col, m.width); err != nil {
		return 0, err
	}

	return row*m.width + col, nil
}

// Get returns the cell at (row, col).
// MAIN DESCRIPTION:
//   - Safe slot read; an unset slot is returned as None, not as an error.
//
// Errors:
//   - *IndexError wrapping ErrOutOfRange when out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Get(row, col int) (Cell[T], error) {
	off, err := m.offset(ctxGet, row, col)
	if err != nil {
		return Cell[T]{}, err
	}

	return m.data[off], nil
}

// At returns the value at (row, col), or the zero value of T when the cell is unset.
// Use Get when the caller must distinguish "unset" from a stored zero.
//
// Errors:
//   - *IndexError wrapping ErrOutOfRange when out of bounds.
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.offset(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[off].v, nil
}

// Set stores v at (row, col). No other cell changes.
//
// Errors:
//   - *IndexError wrapping ErrOutOfRange when out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.offset(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[off] = Some(v)

	return nil
}

// Clear resets (row, col) to the unset state.
func (m *Dense[T]) Clear(row, col int) error {
	off, err := m.offset(ctxClear, row, col)
	if err != nil {
		return err
	}
	m.data[off] = Cell[T]{}

	return nil
}

// Clone returns an independent copy (new buffer, same default and hasher).
// MAIN DESCRIPTION:
//   - Storage independence: Set/Insert/Delete on either side never affect the other.
//   - Element copy is shallow: pointer-like T values still alias the same targets.
//
// Returns:
//   - Matrix[T]: dynamic type *Dense[T].
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func (m *Dense[T]) Clone() Matrix[T] {
	cp := make([]Cell[T], len(m.data))
	copy(cp, m.data)

	return &Dense[T]{
		width:  m.width,
		height: m.height,
		data:   cp,
		def:    m.def,
		hasher: m.hasher,
	}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write cells into strings.Builder; unset cells render as "_".
//
// Complexity:
//   - Time O(w*h), Space O(w*h) for formatting.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.height; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.width
		for j = 0; j < m.width; j++ {
			b.WriteString(m.data[base+j].String())
			if j+1 < m.width {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each cell in row-major order and calls f(row, col, cell).
// It stops early when f returns false. f must not mutate the matrix shape.
// Complexity: O(w*h), no allocations.
func (m *Dense[T]) Do(f func(row, col int, c Cell[T]) bool) {
	var i, j, base int
	for i = 0; i < m.height; i++ {
		base = i * m.width
		for j = 0; j < m.width; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}
