// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / options (functional options with internal state),
//   - the documented default element hasher,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - options fields are unexported; public constructors consume ...Option[T].
package matrix

import (
	"encoding/binary"
	"hash/maphash"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilHasher = "matrix: WithHasher: hasher must be non-nil"
)

// hashSeed keys defaultHasher for composite element types only (structs,
// arrays, pointers, interfaces, named scalars). It is drawn once per process,
// so those hashes are stable within a run but not across runs; pass
// WithHasher when a composite T needs reproducible hashes.
var hashSeed = maphash.MakeSeed()

// defaultHasher hashes any comparable value consistently with ==.
// MAIN DESCRIPTION:
//   - Predeclared scalar types (bool, integers, floats, string) hash with
//     unseeded xxhash, so Hash is reproducible across processes for them.
//   - Floats are normalized so -0 and +0 hash alike (they compare equal).
//   - Everything else falls back to maphash.Comparable under hashSeed.
//
// Complexity: O(size of v).
func defaultHasher[T comparable](v T) uint64 {
	switch x := any(v).(type) {
	case string:
		return xxhash.Sum64String(x)
	case bool:
		if x {
			return hashWord(1)
		}
		return hashWord(0)
	case int:
		return hashWord(uint64(x))
	case int8:
		return hashWord(uint64(x))
	case int16:
		return hashWord(uint64(x))
	case int32:
		return hashWord(uint64(x))
	case int64:
		return hashWord(uint64(x))
	case uint:
		return hashWord(uint64(x))
	case uint8:
		return hashWord(uint64(x))
	case uint16:
		return hashWord(uint64(x))
	case uint32:
		return hashWord(uint64(x))
	case uint64:
		return hashWord(x)
	case uintptr:
		return hashWord(uint64(x))
	case float32:
		return hashFloat(float64(x))
	case float64:
		return hashFloat(x)
	}

	return maphash.Comparable(hashSeed, v)
}

// hashWord hashes the little-endian encoding of w.
func hashWord(w uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], w)

	return xxhash.Sum64(buf[:])
}

// hashFloat folds -0 onto +0 before hashing the IEEE-754 bits.
// NaN never equals itself, so its hash is irrelevant to Equal.
func hashFloat(f float64) uint64 {
	if f == 0 {
		f = 0
	}

	return hashWord(math.Float64bits(f))
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option[T comparable] func(*options[T])

// options stores the effective configuration after applying Option setters.
type options[T comparable] struct {
	hasher func(T) uint64 // element hash used by Dense.Hash; defaultHasher
}

// WithHasher sets the element hash function used by Hash.
//
// Contract:
//   - h MUST be consistent with ==: a == b implies h(a) == h(b).
//     The container cannot verify this; violating it breaks Hash/Equal coupling.
//   - Use it for stable cross-process hashes of composite T (defaultHasher
//     seeds those per run; predeclared scalars are already stable).
//
// Panics when h is nil.
func WithHasher[T comparable](h func(T) uint64) Option[T] {
	if h == nil {
		panic(panicNilHasher)
	}

	return func(o *options[T]) { o.hasher = h }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
// Complexity: O(len(opts)).
func gatherOptions[T comparable](opts ...Option[T]) options[T] {
	o := options[T]{hasher: defaultHasher[T]}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
