// SPDX-License-Identifier: MIT

// Package matrix: structural mutation of Dense (insert/delete rows and columns).
//
// Every operation here is a full rebuild:
//   - Stage 1 (Validate): growth, then index range, then value count; nothing is touched yet.
//   - Stage 2 (Prepare): allocate a buffer of the new shape.
//   - Stage 3 (Execute): copy the old contents with the shift applied.
//   - Stage 4 (Finalize): swap the buffer and the dimension.
//
// A failed call therefore leaves the matrix exactly as it was, and no
// partially shifted state is observable after a completed call.
package matrix

// Operation name constants for unified error wrapping.
const (
	opInsertRow       = "InsertRow"
	opInsertRowValues = "InsertRowValues"
	opInsertCol       = "InsertCol"
	opInsertColValues = "InsertColValues"
	opDeleteRow       = "DeleteRow"
	opDeleteCol       = "DeleteCol"
)

// InsertRow inserts a row of default cells at index row; rows at >= row shift down.
// row == Height() appends.
//
// Errors:
//   - *IndexError (ErrOutOfRange) unless 0 ≤ row ≤ Height().
//   - ErrInvalidDimensions when the grown shape would overflow int.
//
// Complexity: Time O(w*h), Space O(w*h).
func (m *Dense[T]) InsertRow(row int) error {
	if err := validateGrowth[T](opInsertRow, AxisRow, m.width, m.height); err != nil {
		return err
	}
	if err := checkIndex(opInsertRow, AxisRow, row, m.height+1); err != nil {
		return err
	}
	m.insertRow(row, m.line(m.width, nil))

	return nil
}

// InsertRowValues inserts vals as a new row at index row.
//
// Errors:
//   - *IndexError (ErrOutOfRange) unless 0 ≤ row ≤ Height().
//   - ErrInvalidDimensions when the grown shape would overflow int.
//   - ErrSizeMismatch when len(vals) != Width().
//
// Complexity: Time O(w*h), Space O(w*h).
func (m *Dense[T]) InsertRowValues(row int, vals []T) error {
	if err := validateGrowth[T](opInsertRowValues, AxisRow, m.width, m.height); err != nil {
		return err
	}
	if err := checkIndex(opInsertRowValues, AxisRow, row, m.height+1); err != nil {
		return err
	}
	if err := validateLen(opInsertRowValues, AxisRow, len(vals), m.width); err != nil {
		return err
	}
	m.insertRow(row, m.line(m.width, vals))

	return nil
}

// InsertCol inserts a column of default cells at index col; columns at >= col shift right.
// col == Width() appends.
//
// Errors:
//   - *IndexError (ErrOutOfRange) unless 0 ≤ col ≤ Width().
//   - ErrInvalidDimensions when the grown shape would overflow int.
//
// Complexity: Time O(w*h), Space O(w*h).
func (m *Dense[T]) InsertCol(col int) error {
	if err := validateGrowth[T](opInsertCol, AxisCol, m.width, m.height); err != nil {
		return err
	}
	if err := checkIndex(opInsertCol, AxisCol, col, m.width+1); err != nil {
		return err
	}
	m.insertCol(col, m.line(m.height, nil))

	return nil
}

// InsertColValues inserts vals as a new column at index col; vals[i] lands in row i.
//
// Errors:
//   - *IndexError (ErrOutOfRange) unless 0 ≤ col ≤ Width().
//   - ErrInvalidDimensions when the grown shape would overflow int.
//   - ErrSizeMismatch when len(vals) != Height().
//
// Complexity: Time O(w*h), Space O(w*h).
func (m *Dense[T]) InsertColValues(col int, vals []T) error {
	if err := validateGrowth[T](opInsertColValues, AxisCol, m.width, m.height); err != nil {
		return err
	}
	if err := checkIndex(opInsertColValues, AxisCol, col, m.width+1); err != nil {
		return err
	}
	if err := validateLen(opInsertColValues, AxisCol, len(vals), m.height); err != nil {
		return err
	}
	m.insertCol(col, m.line(m.height, vals))

	return nil
}

// DeleteRow removes row; rows below shift up.
//
// Errors:
//   - *IndexError (ErrOutOfRange) unless 0 ≤ row < Height() (always on a zero-height matrix).
//
// Complexity: Time O(w*h), Space O(w*h).
func (m *Dense[T]) DeleteRow(row int) error {
	if err := checkIndex(opDeleteRow, AxisRow, row, m.height); err != nil {
		return err
	}
	w := m.width
	next := make([]Cell[T], w*(m.height-1))
	copy(next, m.data[:row*w])
	copy(next[row*w:], m.data[(row+1)*w:])

	m.data = next
	m.height--

	return nil
}

// DeleteCol removes col; columns to the right shift left.
//
// Errors:
//   - *IndexError (ErrOutOfRange) unless 0 ≤ col < Width() (always on a zero-width matrix).
//
// Complexity: Time O(w*h), Space O(w*h).
func (m *Dense[T]) DeleteCol(col int) error {
	if err := checkIndex(opDeleteCol, AxisCol, col, m.width); err != nil {
		return err
	}
	w, nw := m.width, m.width-1
	next := make([]Cell[T], nw*m.height)
	var src, dst []Cell[T]
	for i := 0; i < m.height; i++ {
		src = m.data[i*w : (i+1)*w]
		dst = next[i*nw : (i+1)*nw]
		copy(dst, src[:col])
		copy(dst[col:], src[col+1:])
	}

	m.data = next
	m.width = nw

	return nil
}

// line materializes the n cells of a new row or column: Some(vals[k]) when
// vals is given, the default cell otherwise. Callers validate len(vals).
func (m *Dense[T]) line(n int, vals []T) []Cell[T] {
	out := make([]Cell[T], n)
	if vals == nil {
		for k := range out {
			out[k] = m.def
		}

		return out
	}
	for k, v := range vals {
		out[k] = Some(v)
	}

	return out
}

// insertRow splices fresh (len == width) in at row. Indices are pre-validated.
func (m *Dense[T]) insertRow(row int, fresh []Cell[T]) {
	w := m.width
	next := make([]Cell[T], w*(m.height+1))
	copy(next, m.data[:row*w])
	copy(next[row*w:], fresh)
	copy(next[(row+1)*w:], m.data[row*w:])

	m.data = next
	m.height++
}

// insertCol splices fresh (len == height) in at col. Indices are pre-validated.
func (m *Dense[T]) insertCol(col int, fresh []Cell[T]) {
	w, nw := m.width, m.width+1
	next := make([]Cell[T], nw*m.height)
	var src, dst []Cell[T]
	for i := 0; i < m.height; i++ {
		src = m.data[i*w : (i+1)*w]
		dst = next[i*nw : (i+1)*nw]
		copy(dst, src[:col])
		dst[col] = fresh[i]
		copy(dst[col+1:], src[col:])
	}

	m.data = next
	m.width = nw
}
