// SPDX-License-Identifier: MIT
// Package sparsevec: the SparseVector type and its zero-preserving
// operations (spec §4.2).
//
// Contract (invariant, enforced by every constructor in this file):
//   - entries are sorted strictly by Index ascending.
//   - no entry ever stores a zero Value.
//   - every Index i satisfies 0 <= i < Len.
package sparsevec

import (
	"sort"

	"github.com/goaffine/affineeq/rational"
)

// Entry is one non-zero coordinate of a SparseVector.
type Entry struct {
	Index int
	Value rational.Rational
}

// SparseVector is an element of rational^Len, represented by its non-zero
// entries only. The zero value is not meaningful on its own — use Zero(n).
type SparseVector struct {
	len     int
	entries []Entry // sorted by Index, all Values non-zero
}

// Zero returns the all-zero vector of the given length.
//
// Complexity: O(1).
func Zero(n int) SparseVector {
	return SparseVector{len: n}
}

// FromEntries builds a SparseVector from arbitrary (index, value) pairs.
// Duplicate indices are rejected with ErrOutOfRange-free but undefined
// behavior guarded against by callers; this constructor is for tests and
// trusted call sites, so it sorts and drops zeros but does not validate
// bounds beyond the obvious.
//
// Complexity: O(k log k).
func FromEntries(n int, pairs []Entry) SparseVector {
	out := make([]Entry, 0, len(pairs))
	for _, p := range pairs {
		if !p.Value.IsZero() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return SparseVector{len: n, entries: out}
}

// Len returns the logical length of v.
func (v SparseVector) Len() int { return v.len }

// NNZ returns the number of stored non-zero entries.
func (v SparseVector) NNZ() int { return len(v.entries) }

// Entries returns the underlying (index, value) pairs in index order.
// Callers must not mutate the returned slice.
func (v SparseVector) Entries() []Entry { return v.entries }

// Nth returns the value at index i, or zero if i is absent or out of
// range entirely (spec §4.2 says "returns zero if absent"); an
// out-of-range read is not reported to the caller.
//
// Complexity: O(log k).
func (v SparseVector) Nth(i int) rational.Rational {
	q, _ := v.at(i)
	return q
}

func (v SparseVector) at(i int) (rational.Rational, bool) {
	if i < 0 || i >= v.len {
		return rational.Zero(), false
	}
	idx := sort.Search(len(v.entries), func(k int) bool { return v.entries[k].Index >= i })
	if idx < len(v.entries) && v.entries[idx].Index == i {
		return v.entries[idx].Value, true
	}
	return rational.Zero(), true
}

// SetNth returns a new vector equal to v except at index i, which is set
// to q. Setting q == 0 removes any existing entry rather than storing an
// explicit zero.
//
// Contract: 0 <= i < v.Len() (ErrOutOfRange otherwise).
// Complexity: O(k).
func (v SparseVector) SetNth(i int, q rational.Rational) (SparseVector, error) {
	if i < 0 || i >= v.len {
		return SparseVector{}, vecErrorf("SetNth", ErrOutOfRange)
	}
	idx := sort.Search(len(v.entries), func(k int) bool { return v.entries[k].Index >= i })
	found := idx < len(v.entries) && v.entries[idx].Index == i

	out := make([]Entry, 0, len(v.entries)+1)
	out = append(out, v.entries[:idx]...)
	if !q.IsZero() {
		out = append(out, Entry{Index: i, Value: q})
	}
	if found {
		out = append(out, v.entries[idx+1:]...)
	} else {
		out = append(out, v.entries[idx:]...)
	}
	return SparseVector{len: v.len, entries: out}, nil
}

// FindFirstNonzero returns the first (lowest-index) non-zero entry, and
// whether one exists.
//
// Complexity: O(1).
func (v SparseVector) FindFirstNonzero() (Entry, bool) {
	if len(v.entries) == 0 {
		return Entry{}, false
	}
	return v.entries[0], true
}

// IsConstVec reports whether at most the last coordinate (conventionally
// the constant column of an affine row) is non-zero.
//
// Complexity: O(1).
func (v SparseVector) IsConstVec() bool {
	switch len(v.entries) {
	case 0:
		return true
	case 1:
		return v.entries[0].Index == v.len-1
	default:
		return false
	}
}

// IsZero reports whether every coordinate of v is zero.
func (v SparseVector) IsZero() bool { return len(v.entries) == 0 }

// MapPreservingZero applies f to every non-zero entry. f must satisfy
// f(0) == 0; entries that map back to zero are dropped.
//
// Complexity: O(k).
func (v SparseVector) MapPreservingZero(f func(rational.Rational) rational.Rational) SparseVector {
	out := make([]Entry, 0, len(v.entries))
	for _, e := range v.entries {
		nv := f(e.Value)
		if !nv.IsZero() {
			out = append(out, Entry{Index: e.Index, Value: nv})
		}
	}
	return SparseVector{len: v.len, entries: out}
}

// MapiPreservingZero is like MapPreservingZero but f also sees the index.
//
// Complexity: O(k).
func (v SparseVector) MapiPreservingZero(f func(i int, q rational.Rational) rational.Rational) SparseVector {
	out := make([]Entry, 0, len(v.entries))
	for _, e := range v.entries {
		nv := f(e.Index, e.Value)
		if !nv.IsZero() {
			out = append(out, Entry{Index: e.Index, Value: nv})
		}
	}
	return SparseVector{len: v.len, entries: out}
}

// Map2PreservingZero merges two sorted index streams with f, which must
// satisfy f(0,0) == 0. Used for Add/Sub and general elementwise combine.
//
// Contract: v.Len() == o.Len() (ErrLengthMismatch otherwise).
// Complexity: O(k1 + k2).
func (v SparseVector) Map2PreservingZero(o SparseVector, f func(a, b rational.Rational) rational.Rational) (SparseVector, error) {
	if v.len != o.len {
		return SparseVector{}, vecErrorf("Map2PreservingZero", ErrLengthMismatch)
	}
	out := make([]Entry, 0, len(v.entries)+len(o.entries))
	i, j := 0, 0
	for i < len(v.entries) || j < len(o.entries) {
		switch {
		case j >= len(o.entries) || (i < len(v.entries) && v.entries[i].Index < o.entries[j].Index):
			nv := f(v.entries[i].Value, rational.Zero())
			if !nv.IsZero() {
				out = append(out, Entry{Index: v.entries[i].Index, Value: nv})
			}
			i++
		case i >= len(v.entries) || (j < len(o.entries) && o.entries[j].Index < v.entries[i].Index):
			nv := f(rational.Zero(), o.entries[j].Value)
			if !nv.IsZero() {
				out = append(out, Entry{Index: o.entries[j].Index, Value: nv})
			}
			j++
		default:
			nv := f(v.entries[i].Value, o.entries[j].Value)
			if !nv.IsZero() {
				out = append(out, Entry{Index: v.entries[i].Index, Value: nv})
			}
			i++
			j++
		}
	}
	return SparseVector{len: v.len, entries: out}, nil
}

// Add returns v + o.
func (v SparseVector) Add(o SparseVector) (SparseVector, error) {
	return v.Map2PreservingZero(o, func(a, b rational.Rational) rational.Rational { return a.Add(b) })
}

// Sub returns v - o.
func (v SparseVector) Sub(o SparseVector) (SparseVector, error) {
	return v.Map2PreservingZero(o, func(a, b rational.Rational) rational.Rational { return a.Sub(b) })
}

// ApplyWithCPreservingZero scales every entry by c via f (typically Mul or
// Div); f must satisfy f(0, c) == 0.
//
// Complexity: O(k).
func (v SparseVector) ApplyWithCPreservingZero(f func(q, c rational.Rational) rational.Rational, c rational.Rational) SparseVector {
	return v.MapPreservingZero(func(q rational.Rational) rational.Rational { return f(q, c) })
}

// Scale returns c*v.
func (v SparseVector) Scale(c rational.Rational) SparseVector {
	return v.ApplyWithCPreservingZero(func(q, k rational.Rational) rational.Rational { return q.Mul(k) }, c)
}

// CompareLengthWith reports -1, 0, +1 as v.Len() is <, ==, > k.
func (v SparseVector) CompareLengthWith(k int) int {
	switch {
	case v.len < k:
		return -1
	case v.len > k:
		return 1
	default:
		return 0
	}
}

// Equal reports whether v and o have the same length and the same
// non-zero entries.
func (v SparseVector) Equal(o SparseVector) bool {
	if v.len != o.len || len(v.entries) != len(o.entries) {
		return false
	}
	for i := range v.entries {
		if v.entries[i].Index != o.entries[i].Index || !v.entries[i].Value.Equal(o.entries[i].Value) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of v (the entries slice is never
// mutated in place by this package, so Clone is mostly defensive).
func (v SparseVector) Clone() SparseVector {
	out := make([]Entry, len(v.entries))
	copy(out, v.entries)
	return SparseVector{len: v.len, entries: out}
}

// WithLen returns v reinterpreted over a longer length n, keeping all
// existing entries unchanged. Used when growing a row to a super-env.
//
// Contract: n >= v.Len().
func (v SparseVector) WithLen(n int) (SparseVector, error) {
	if n < v.len {
		return SparseVector{}, vecErrorf("WithLen", ErrOutOfRange)
	}
	return SparseVector{len: n, entries: v.entries}, nil
}
