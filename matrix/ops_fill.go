// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bulk writes of a single value: FillRegion (rectangle) and FillLine (walk).
//   - Both validate every target before the first write (all-or-nothing).
//
// Determinism & Performance:
//   - FillRegion writes in row-major order with one bounds check per corner.
//   - FillLine plans the walk into an offset list, then writes; O(steps) time and space.

package matrix

import "fmt"

const (
	opFillRegion = "FillRegion"
	opFillLine   = "FillLine"
)

// FillRegion sets every cell with row ∈ [startRow, endRow) and col ∈ [startCol, endCol) to v.
//
// Behavior highlights:
//   - An empty region (startRow ≥ endRow or startCol ≥ endCol) is a no-op and
//     is not bounds-checked.
//   - A non-empty region must lie inside the matrix; checking its two corners
//     covers every cell in between.
//
// Errors:
//   - *IndexError (ErrOutOfRange) naming the first offending corner index.
//
// Complexity: Time O(area), Space O(1).
func (m *Dense[T]) FillRegion(startRow, startCol, endRow, endCol int, v T) error {
	if startRow >= endRow || startCol >= endCol {
		return nil
	}
	if err := checkIndex(opFillRegion, AxisRow, startRow, m.height); err != nil {
		return err
	}
	if err := checkIndex(opFillRegion, AxisRow, endRow-1, m.height); err != nil {
		return err
	}
	if err := checkIndex(opFillRegion, AxisCol, startCol, m.width); err != nil {
		return err
	}
	if err := checkIndex(opFillRegion, AxisCol, endCol-1, m.width); err != nil {
		return err
	}

	cell := Some(v)
	var i, j, base int
	for i = startRow; i < endRow; i++ {
		base = i * m.width
		for j = startCol; j < endCol; j++ {
			m.data[base+j] = cell
		}
	}

	return nil
}

// FillLine walks from (startRow, startCol) in steps of (deltaRow, deltaCol) and
// sets each visited cell to v. The walk continues only while BOTH
// row < endRow AND col < endCol hold; whichever bound is reached first ends it.
//
// Behavior highlights:
//   - Horizontal: deltaRow=0; vertical: deltaCol=0; diagonal: |deltaRow|=|deltaCol|=1.
//   - The bound on an axis that does not advance never stops the walk, so pass
//     a "don't care" value there, e.g. FillLine(0, c, 1, 0, Height(), math.MaxInt, v)
//     for column c. A tight bound like c+1 also works; c would visit nothing.
//   - Negative deltas are allowed; the walk then ends by leaving the matrix,
//     which is reported as ErrOutOfRange.
//
// Errors:
//   - *IndexError (ErrOutOfRange) when any visited cell is outside the matrix;
//     nothing is written in that case.
//   - ErrZeroStep when both deltas are 0 and the start satisfies the bounds.
//
// Complexity: Time O(steps), Space O(steps).
func (m *Dense[T]) FillLine(startRow, startCol, deltaRow, deltaCol, endRow, endCol int, v T) error {
	offs, err := m.planLine(startRow, startCol, deltaRow, deltaCol, endRow, endCol)
	if err != nil {
		return err
	}

	cell := Some(v)
	for _, off := range offs {
		m.data[off] = cell
	}

	return nil
}

// planLine resolves the walk into row-major offsets without writing.
// Every non-zero step either approaches an end bound or leaves the matrix,
// so the loop runs at most max(height, width)+1 times before returning.
func (m *Dense[T]) planLine(row, col, deltaRow, deltaCol, endRow, endCol int) ([]int, error) {
	if deltaRow == 0 && deltaCol == 0 && row < endRow && col < endCol {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", opFillLine, row, col, ErrZeroStep)
	}

	var offs []int
	for row < endRow && col < endCol {
		off, err := m.offset(opFillLine, row, col)
		if err != nil {
			return nil, err
		}
		offs = append(offs, off)
		row += deltaRow
		col += deltaCol
	}

	return offs, nil
}
