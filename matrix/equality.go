// SPDX-License-Identifier: MIT

// Package matrix: value semantics of Dense (Equal, Hash).
//
// Hash is a function of exactly the state Equal compares: width, height and
// the row-major sequence of set cells. Hence Equal(a, b) implies
// a.Hash() == b.Hash() whenever both use the same element hasher and that
// hasher is itself consistent with == on T.
package matrix

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether other has the same width and height and equal cells
// at every coordinate. Unset cells equal only unset cells; set cells compare
// with ==. The default cell and hasher are not part of equality.
//
// Implementation:
//   - Stage 1: nil and shape short-circuit (no element comparison).
//   - Stage 2: *Dense fast-path over both flat buffers.
//   - Stage 3: fallback through other.Get for any other Matrix.
//
// Complexity: Time O(w*h), Space O(1).
func (m *Dense[T]) Equal(other Matrix[T]) bool {
	if other == nil {
		return false
	}
	if d, ok := other.(*Dense[T]); ok {
		if d == nil {
			return false
		}
		if m.width != d.width || m.height != d.height {
			return false
		}
		for k := range m.data {
			if !m.data[k].Equal(d.data[k]) {
				return false
			}
		}

		return true
	}

	if m.width != other.Width() || m.height != other.Height() {
		return false
	}
	var i, j, base int
	for i = 0; i < m.height; i++ {
		base = i * m.width
		for j = 0; j < m.width; j++ {
			c, err := other.Get(i, j)
			if err != nil || !m.data[base+j].Equal(c) {
				return false
			}
		}
	}

	return true
}

// Hash combines width, height and the hashes of set elements in row-major
// order through an xxhash digest. Unset cells contribute nothing.
//
// Notes:
//   - With the default hasher the result is stable within a process only.
//     Supply WithHasher for hashes that must survive a restart.
//
// Complexity: Time O(w*h), Space O(1).
func (m *Dense[T]) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(x uint64) {
		binary.LittleEndian.PutUint64(buf[:], x)
		_, _ = d.Write(buf[:]) // Digest.Write never fails
	}

	put(uint64(m.width))
	put(uint64(m.height))
	for _, c := range m.data {
		if c.ok {
			put(m.hasher(c.v))
		}
	}

	return d.Sum64()
}
