// SPDX-License-Identifier: MIT
// Package sparsemat: the Matrix type and the column/row editing
// primitives used by the environment adapter when variables are added,
// removed, or forgotten (spec §4.3, §4.4).
package sparsemat

import (
	"github.com/goaffine/affineeq/rational"
	"github.com/goaffine/affineeq/sparsevec"
)

// Matrix is an ordered sequence of SparseVector rows sharing a column
// count. It makes no claim to be in RREF on its own — that invariant is
// upheld by the functions in rref.go, which are the only ones allowed to
// hand back a Matrix callers may treat as normalized.
type Matrix struct {
	cols int
	rows []sparsevec.SparseVector
}

// New returns the empty (zero-row) Matrix with the given column count.
//
// Contract: cols > 0 (ErrBadShape otherwise).
func New(cols int) (Matrix, error) {
	if cols <= 0 {
		return Matrix{}, matErrorf("New", ErrBadShape)
	}
	return Matrix{cols: cols}, nil
}

// FromRows builds a Matrix from pre-built rows, validating that every
// row has exactly cols columns.
func FromRows(cols int, rows []sparsevec.SparseVector) (Matrix, error) {
	if cols <= 0 {
		return Matrix{}, matErrorf("FromRows", ErrBadShape)
	}
	for _, r := range rows {
		if r.Len() != cols {
			return Matrix{}, matErrorf("FromRows", ErrColumnMismatch)
		}
	}
	out := make([]sparsevec.SparseVector, len(rows))
	copy(out, rows)
	return Matrix{cols: cols, rows: out}, nil
}

// NumRows returns the number of rows (equalities).
func (m Matrix) NumRows() int { return len(m.rows) }

// NumCols returns the total column count, including the constant column.
func (m Matrix) NumCols() int { return m.cols }

// NumVars returns the number of variable columns (NumCols - 1).
func (m Matrix) NumVars() int { return m.cols - 1 }

// IsEmpty reports whether m has zero rows (the "top" shape for a given
// column count).
func (m Matrix) IsEmpty() bool { return len(m.rows) == 0 }

// GetRow returns row i.
//
// Contract: 0 <= i < NumRows() (ErrOutOfRange otherwise).
func (m Matrix) GetRow(i int) (sparsevec.SparseVector, error) {
	if i < 0 || i >= len(m.rows) {
		return sparsevec.SparseVector{}, matErrorf("GetRow", ErrOutOfRange)
	}
	return m.rows[i], nil
}

// Rows returns the underlying rows. Callers must not mutate the slice.
func (m Matrix) Rows() []sparsevec.SparseVector { return m.rows }

// Clone returns an independent copy of m.
func (m Matrix) Clone() Matrix {
	out := make([]sparsevec.SparseVector, len(m.rows))
	copy(out, m.rows)
	return Matrix{cols: m.cols, rows: out}
}

// Equal reports whether m and o have the same column count and the same
// rows in the same order. Two matrices representing the same affine
// subspace but listed in a different row order are NOT Equal — callers
// that need subspace equality should compare via mutual IsCoveredBy.
func (m Matrix) Equal(o Matrix) bool {
	if m.cols != o.cols || len(m.rows) != len(o.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}
	return true
}

// pivotColumn returns the index of the first non-zero entry of row,
// i.e. its pivot column under the RREF invariant, and whether the row
// has one at all (an all-zero row has none).
func pivotColumn(row sparsevec.SparseVector) (int, bool) {
	e, ok := row.FindFirstNonzero()
	if !ok {
		return 0, false
	}
	return e.Index, true
}

// GetColUpperTriangular returns the pivot row index for column j under
// the RREF invariant: in a normalized matrix, a pivot column is non-zero
// only in its pivot row, so "the column viewed through the triangular
// shape" collapses to that single row index. For a column that is not a
// pivot column it reports false, even if some rows are non-zero there.
//
// Contract: m must be in RREF (the result is meaningless otherwise).
// Complexity: O(r).
func (m Matrix) GetColUpperTriangular(j int) (int, bool) {
	for i, row := range m.rows {
		pc, ok := pivotColumn(row)
		if !ok {
			continue
		}
		if pc == j {
			return i, true
		}
		if pc > j {
			break // rows are pivot-sorted ascending; no later row can pivot on j
		}
	}
	return 0, false
}

// AddEmptyColumns returns a new Matrix with a fresh all-zero column
// inserted at each position in idxs (positions are given in terms of
// the NEW, post-insertion column layout and must be sorted ascending).
// Existing entries are re-indexed to the new layout; no row changes
// shape in value, only in column position.
//
// Complexity: O(r * c).
func (m Matrix) AddEmptyColumns(idxs []int) (Matrix, error) {
	newCols := m.cols + len(idxs)
	inserted := make(map[int]bool, len(idxs))
	for _, idx := range idxs {
		if idx < 0 || idx >= newCols {
			return Matrix{}, matErrorf("AddEmptyColumns", ErrOutOfRange)
		}
		inserted[idx] = true
	}
	oldToNew := make([]int, m.cols)
	oldC := 0
	for newPos := 0; newPos < newCols; newPos++ {
		if inserted[newPos] {
			continue
		}
		if oldC >= m.cols {
			return Matrix{}, matErrorf("AddEmptyColumns", ErrOutOfRange)
		}
		oldToNew[oldC] = newPos
		oldC++
	}
	if oldC != m.cols {
		return Matrix{}, matErrorf("AddEmptyColumns", ErrOutOfRange)
	}

	newRows := make([]sparsevec.SparseVector, len(m.rows))
	for i, row := range m.rows {
		entries := make([]sparsevec.Entry, 0, row.NNZ())
		for _, e := range row.Entries() {
			entries = append(entries, sparsevec.Entry{Index: oldToNew[e.Index], Value: e.Value})
		}
		newRows[i] = sparsevec.FromEntries(newCols, entries)
	}
	return Matrix{cols: newCols, rows: newRows}, nil
}

// DelCols returns a new Matrix with the given (old-layout) column
// indices removed. Rows whose only non-zero entries were in deleted
// columns become zero rows; call RemoveZeroRows afterwards to drop them.
//
// Complexity: O(r * c).
func (m Matrix) DelCols(idxs []int) (Matrix, error) {
	removed := make(map[int]bool, len(idxs))
	for _, idx := range idxs {
		if idx < 0 || idx >= m.cols {
			return Matrix{}, matErrorf("DelCols", ErrOutOfRange)
		}
		removed[idx] = true
	}
	newCols := m.cols - len(removed)
	if newCols <= 0 {
		return Matrix{}, matErrorf("DelCols", ErrBadShape)
	}
	oldToNew := make([]int, m.cols)
	newPos := 0
	for c := 0; c < m.cols; c++ {
		if removed[c] {
			oldToNew[c] = -1
			continue
		}
		oldToNew[c] = newPos
		newPos++
	}

	newRows := make([]sparsevec.SparseVector, len(m.rows))
	for i, row := range m.rows {
		entries := make([]sparsevec.Entry, 0, row.NNZ())
		for _, e := range row.Entries() {
			if np := oldToNew[e.Index]; np >= 0 {
				entries = append(entries, sparsevec.Entry{Index: np, Value: e.Value})
			}
		}
		newRows[i] = sparsevec.FromEntries(newCols, entries)
	}
	return Matrix{cols: newCols, rows: newRows}, nil
}

// RemoveZeroRows returns m with every all-zero row (a trivial 0=0
// equality) dropped.
//
// Complexity: O(r).
func (m Matrix) RemoveZeroRows() Matrix {
	out := make([]sparsevec.SparseVector, 0, len(m.rows))
	for _, row := range m.rows {
		if !row.IsZero() {
			out = append(out, row)
		}
	}
	return Matrix{cols: m.cols, rows: out}
}

// ReduceCol eliminates column j from every row by pivoting on one row
// that has a non-zero entry in column j, then dropping that row. If no
// row has a non-zero entry in column j, m is returned unchanged (there
// is nothing to eliminate — the variable is already unconstrained).
//
// This is the "forget a variable while keeping every equality that
// didn't mention it" primitive (spec §4.3/§4.7): callers follow this
// with RemoveZeroRows.
//
// Complexity: O(r * c).
func (m Matrix) ReduceCol(j int) (Matrix, error) {
	if j < 0 || j >= m.cols {
		return Matrix{}, matErrorf("ReduceCol", ErrOutOfRange)
	}
	pivotIdx := -1
	for i, row := range m.rows {
		if !row.Nth(j).IsZero() {
			pivotIdx = i
			break
		}
	}
	if pivotIdx == -1 {
		return m.Clone(), nil
	}
	pivotRow := m.rows[pivotIdx]
	pivotVal := pivotRow.Nth(j)

	out := make([]sparsevec.SparseVector, 0, len(m.rows)-1)
	for i, row := range m.rows {
		if i == pivotIdx {
			continue
		}
		factor := row.Nth(j)
		if factor.IsZero() {
			out = append(out, row)
			continue
		}
		ratio, err := factor.Div(pivotVal)
		if err != nil {
			return Matrix{}, matErrorf("ReduceCol", err)
		}
		scaled := pivotRow.Scale(ratio)
		newRow, err := row.Sub(scaled)
		if err != nil {
			return Matrix{}, matErrorf("ReduceCol", err)
		}
		out = append(out, newRow)
	}
	return Matrix{cols: m.cols, rows: out}, nil
}

// variablePart extracts columns [0, n) of row as a fresh length-n vector,
// dropping the constant column.
func variablePart(row sparsevec.SparseVector, n int) sparsevec.SparseVector {
	entries := make([]sparsevec.Entry, 0, row.NNZ())
	for _, e := range row.Entries() {
		if e.Index < n {
			entries = append(entries, e)
		}
	}
	return sparsevec.FromEntries(n, entries)
}

// dot returns the dot product of two vectors of the same length.
func dot(a, b sparsevec.SparseVector) rational.Rational {
	sum := rational.Zero()
	ae, be := a.Entries(), b.Entries()
	i, j := 0, 0
	for i < len(ae) && j < len(be) {
		switch {
		case ae[i].Index < be[j].Index:
			i++
		case be[j].Index < ae[i].Index:
			j++
		default:
			sum = sum.Add(ae[i].Value.Mul(be[j].Value))
			i++
			j++
		}
	}
	return sum
}
