// Package matrix offers a generic two-dimensional container with structural
// editing.
//
// The matrix package provides:
//
//   - Dense[T], a row-major grid of Cell[T] slots with O(1) bounds-checked
//     Get/At/Set and an explicit "unset" state per slot.
//   - Structural mutation: InsertRow/InsertCol (default-filled or with supplied
//     values) and DeleteRow/DeleteCol, each rebuilding the backing store so a
//     failed call never leaves a partially shifted grid behind.
//   - Bulk writes: FillRegion over a half-open rectangle and FillLine over a
//     fixed-step walk (horizontal, vertical or diagonal).
//   - Value semantics: Clone, Equal and Hash over width, height and cells.
//
// Errors are sentinels (ErrOutOfRange, ErrSizeMismatch, ...) matched with
// errors.Is; bounds violations also carry an *IndexError for errors.As.
//
// A Dense is not safe for concurrent mutation. Guard it with a mutex at the
// call site when it is shared.
//
// See the examples in this package for usage patterns.
package matrix
