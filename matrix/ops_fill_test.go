// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestFillRegion_Whole(t *testing.T) {
	h, w := 4, 6
	m := mustNew(t, w, h)
	require.NoError(t, m.FillRegion(0, 0, h, w, 3))

	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			require.Equal(t, 3, mustAt(t, m, i, j))
		}
	}
}

func TestFillRegion_InteriorOnly(t *testing.T) {
	m := sumGrid(t, sumSide)
	require.NoError(t, m.FillRegion(0, 0, 5, 5, 1000))

	for i := 0; i < sumSide; i++ {
		for j := 0; j < sumSide; j++ {
			want := i + j
			if i < 5 && j < 5 {
				want = 1000
			}
			require.Equal(t, want, mustAt(t, m, i, j), "cell (%d,%d)", i, j)
		}
	}
}

func TestFillRegion_EmptyIsNoop(t *testing.T) {
	m := sumGrid(t, 3)
	before := m.Clone()

	require.NoError(t, m.FillRegion(2, 0, 2, 3, 9))   // startRow == endRow
	require.NoError(t, m.FillRegion(0, 2, 3, 1, 9))   // startCol > endCol
	require.NoError(t, m.FillRegion(50, 50, 0, 0, 9)) // empty wins over bounds
	require.True(t, m.Equal(before))
}

func TestFillRegion_OutOfRangeIsAtomic(t *testing.T) {
	m := sumGrid(t, 3)
	before := m.Clone()

	require.ErrorIs(t, m.FillRegion(0, 0, 4, 3, 9), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.FillRegion(-1, 0, 2, 2, 9), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.FillRegion(0, 1, 2, 5, 9), matrix.ErrOutOfRange)
	require.True(t, m.Equal(before)) // no partial writes
}

func TestFillLine_Vertical(t *testing.T) {
	m := sumGrid(t, sumSide)
	require.NoError(t, m.FillLine(0, 0, 1, 0, sumSide, 1, 1))

	for i := 0; i < sumSide; i++ {
		require.Equal(t, 1, mustAt(t, m, i, 0))
		require.Equal(t, i+1, mustAt(t, m, i, 1)) // neighbor column untouched
	}
}

func TestFillLine_VerticalDontCareBound(t *testing.T) {
	m := mustNew(t, 3, 3)
	require.NoError(t, m.FillLine(0, 2, 1, 0, 3, math.MaxInt, 7))

	require.Equal(t, "[_, _, 7]\n[_, _, 7]\n[_, _, 7]\n", m.String())
}

func TestFillLine_Horizontal(t *testing.T) {
	m := mustNew(t, 4, 2)
	require.NoError(t, m.FillLine(1, 1, 0, 1, math.MaxInt, 4, 5))

	require.Equal(t, "[_, _, _, _]\n[_, 5, 5, 5]\n", m.String())
}

func TestFillLine_DiagonalStopsAtFirstBound(t *testing.T) {
	m := mustNew(t, 4, 4)
	// endCol=2 is reached before endRow=4
	require.NoError(t, m.FillLine(0, 0, 1, 1, 4, 2, 8))
	require.Equal(t, "[8, _, _, _]\n[_, 8, _, _]\n[_, _, _, _]\n[_, _, _, _]\n", m.String())

	// full diagonal
	require.NoError(t, m.FillLine(0, 0, 1, 1, 4, 4, 1))
	for k := 0; k < 4; k++ {
		require.Equal(t, 1, mustAt(t, m, k, k))
	}
}

func TestFillLine_TightBoundOnStillAxis(t *testing.T) {
	m := mustNew(t, 2, 2)
	// endCol == startCol: the AND condition fails at once, nothing is visited
	require.NoError(t, m.FillLine(0, 1, 1, 0, 2, 1, 3))
	require.Equal(t, "[_, _]\n[_, _]\n", m.String())
}

func TestFillLine_OutOfRangeIsAtomic(t *testing.T) {
	m := sumGrid(t, 3)
	before := m.Clone()

	// walks past the last row while row < endRow still holds
	err := m.FillLine(0, 0, 1, 0, 10, 1, 9)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	// negative step leaves the grid upwards
	require.ErrorIs(t, m.FillLine(2, 0, -1, 0, 3, 1, 9), matrix.ErrOutOfRange)
	require.True(t, m.Equal(before))
}

func TestFillLine_ZeroStep(t *testing.T) {
	m := sumGrid(t, 3)

	require.ErrorIs(t, m.FillLine(1, 1, 0, 0, 3, 3, 9), matrix.ErrZeroStep)
	// a zero step that visits nothing is a no-op
	require.NoError(t, m.FillLine(3, 3, 0, 0, 3, 3, 9))
}
