// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense tests.
//   • Keep fixture construction fatal-on-error so test bodies stay linear.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gridmat/matrix"
)

// sumSide is the side of the canonical sumGrid fixture.
const sumSide = 10

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Used to force the non-*Dense fallback path in Equal.
type hide[T comparable] struct{ matrix.Matrix[T] }

// mustNew ALLOCATES a w×h all-unset *Dense[int] or fails the test.
func mustNew(t testing.TB, w, h int) *matrix.Dense[int] {
	t.Helper()
	m, err := matrix.New[int](w, h)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", w, h, err)
	}

	return m
}

// mustFilled ALLOCATES a w×h *Dense[int] with default def or fails the test.
func mustFilled(t testing.TB, w, h, def int) *matrix.Dense[int] {
	t.Helper()
	m, err := matrix.NewFilled(w, h, def)
	if err != nil {
		t.Fatalf("NewFilled(%d,%d,%d): %v", w, h, def, err)
	}

	return m
}

// sumGrid RETURNS an n×n matrix with (i,j) = i+j and an unset default.
func sumGrid(t testing.TB, n int) *matrix.Dense[int] {
	t.Helper()
	m := mustNew(t, n, n)
	fillSum(t, m)

	return m
}

// fillSum writes (i,j) = i+j over the current shape of m.
func fillSum(t testing.TB, m *matrix.Dense[int]) {
	t.Helper()
	for i := 0; i < m.Height(); i++ {
		for j := 0; j < m.Width(); j++ {
			if err := m.Set(i, j, i+j); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// snapshot COPIES m into [][]matrix.Cell[int] for before/after comparisons.
func snapshot(t testing.TB, m matrix.Matrix[int]) [][]matrix.Cell[int] {
	t.Helper()
	out := make([][]matrix.Cell[int], m.Height())
	for i := range out {
		out[i] = make([]matrix.Cell[int], m.Width())
		for j := range out[i] {
			c, err := m.Get(i, j)
			if err != nil {
				t.Fatalf("Get(%d,%d): %v", i, j, err)
			}
			out[i][j] = c
		}
	}

	return out
}

// mustAt READS (i,j) or fails the test.
func mustAt(t testing.TB, m matrix.Matrix[int], i, j int) int {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}
