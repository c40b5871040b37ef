package matrix_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridmat/matrix"
)

// ExampleDense_editing shows structural edits on a small grid.
func ExampleDense_editing() {
	m, _ := matrix.NewFilled(3, 2, 0)
	_ = m.Set(0, 0, 1)
	_ = m.InsertRowValues(1, []int{7, 8, 9})
	_ = m.DeleteCol(2)
	fmt.Print(m)

	// Output:
	// [1, 0]
	// [7, 8]
	// [0, 0]
}

// ExampleDense_FillLine fills one column; the column bound is a "don't care".
func ExampleDense_FillLine() {
	m, _ := matrix.New[string](3, 3)
	_ = m.FillLine(0, 1, 1, 0, m.Height(), math.MaxInt, "x")
	_ = m.FillLine(0, 0, 1, 1, 3, 3, "d")
	fmt.Print(m)

	// Output:
	// [d, x, _]
	// [_, d, _]
	// [_, x, d]
}

// ExampleIndexError shows how to inspect a bounds violation.
func ExampleIndexError() {
	m, _ := matrix.New[int](2, 2)
	err := m.DeleteRow(5)

	var ie *matrix.IndexError
	if errors.As(err, &ie) {
		fmt.Println(ie.Op, ie.Axis, ie.Index, ie.Limit)
	}
	fmt.Println(errors.Is(err, matrix.ErrOutOfRange))

	// Output:
	// DeleteRow row 5 2
	// true
}
