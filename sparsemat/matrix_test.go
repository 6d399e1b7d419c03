// Package sparsemat_test exercises the RREF invariant and the lattice
// primitives built on top of it.
package sparsemat_test

import (
	"testing"

	"github.com/goaffine/affineeq/rational"
	"github.com/goaffine/affineeq/sparsemat"
	"github.com/goaffine/affineeq/sparsevec"
	"github.com/stretchr/testify/require"
)

func q(n int64) rational.Rational { return rational.FromInt64(n) }

// row builds a row of length cols with coefficient c at variable column
// idx and constant k at the last column.
func row(cols, idx int, c int64, k int64) sparsevec.SparseVector {
	entries := []sparsevec.Entry{{Index: idx, Value: q(c)}}
	if k != 0 {
		entries = append(entries, sparsevec.Entry{Index: cols - 1, Value: q(k)})
	}
	return sparsevec.FromEntries(cols, entries)
}

func TestNormalizeSimpleSystem(t *testing.T) {
	// x - y = 0 and x = 1, over env {x, y}; cols = 3 (x, y, const).
	r1, _ := sparsevec.Zero(3).SetNth(0, q(1))
	r1, _ = r1.SetNth(1, q(-1))
	r2 := row(3, 0, 1, -1) // x - 1 = 0 => x = 1

	m, ok := sparsemat.Normalize([]sparsevec.SparseVector{r1, r2}, 3)
	require.True(t, ok)
	require.Equal(t, 2, m.NumRows())
	// Expect pivot rows for x and y, both forced to 1.
	ri, _ := m.GetRow(0)
	require.Equal(t, 0, mustPivot(t, ri))
	rj, _ := m.GetRow(1)
	require.Equal(t, 1, mustPivot(t, rj))
}

func mustPivot(t *testing.T, v sparsevec.SparseVector) int {
	t.Helper()
	e, ok := v.FindFirstNonzero()
	require.True(t, ok)
	return e.Index
}

func TestNormalizeInconsistent(t *testing.T) {
	// x = 0 and x = 1 simultaneously.
	r1 := row(2, 0, 1, 0)
	r2 := row(2, 0, 1, -1)
	_, ok := sparsemat.Normalize([]sparsevec.SparseVector{r1, r2}, 2)
	require.False(t, ok)
}

func TestNormalizeDropsTrivialZeroRow(t *testing.T) {
	r1 := row(2, 0, 1, -1)
	zero := sparsevec.Zero(2)
	m, ok := sparsemat.Normalize([]sparsevec.SparseVector{r1, zero}, 2)
	require.True(t, ok)
	require.Equal(t, 1, m.NumRows())
}

func TestRREFVecAddsEquality(t *testing.T) {
	base, ok := sparsemat.Normalize(nil, 2)
	require.True(t, ok)
	m, ok, err := sparsemat.RREFVec(base, row(2, 0, 1, -5))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, m.NumRows())
}

func TestRREFVecInconsistent(t *testing.T) {
	m, ok := sparsemat.Normalize([]sparsevec.SparseVector{row(2, 0, 1, 0)}, 2) // x = 0
	require.True(t, ok)
	_, ok2, err := sparsemat.RREFVec(m, row(2, 0, 1, -1)) // x = 1, contradicts x = 0
	require.NoError(t, err)
	require.False(t, ok2)
}

func TestRREFMatrixConjoinsAndDetectsInconsistency(t *testing.T) {
	m1, ok := sparsemat.Normalize([]sparsevec.SparseVector{row(2, 0, 1, 0)}, 2) // x = 0
	require.True(t, ok)
	m2, ok := sparsemat.Normalize([]sparsevec.SparseVector{row(2, 0, 1, -1)}, 2) // x = 1
	require.True(t, ok)

	_, ok2, err := sparsemat.RREFMatrix(m1, m2)
	require.NoError(t, err)
	require.False(t, ok2)
}

func TestLinearDisjunctDropsInfo(t *testing.T) {
	// a = {x = 1}, b = {x = 2}; join must be top (no rows).
	a, ok := sparsemat.Normalize([]sparsevec.SparseVector{row(2, 0, 1, -1)}, 2)
	require.True(t, ok)
	b, ok := sparsemat.Normalize([]sparsevec.SparseVector{row(2, 0, 1, -2)}, 2)
	require.True(t, ok)

	joined, err := sparsemat.LinearDisjunct(a, b)
	require.NoError(t, err)
	require.True(t, joined.IsEmpty(), "join of two distinct constant assignments must be top")
}

func TestLinearDisjunctKeepsSharedEquality(t *testing.T) {
	// a = {x = 1, y = 5}, b = {x = 2, y = 5}; join must keep y = 5, drop x.
	a, ok := sparsemat.Normalize([]sparsevec.SparseVector{row(3, 0, 1, -1), row(3, 1, 1, -5)}, 3)
	require.True(t, ok)
	b, ok := sparsemat.Normalize([]sparsevec.SparseVector{row(3, 0, 1, -2), row(3, 1, 1, -5)}, 3)
	require.True(t, ok)

	joined, err := sparsemat.LinearDisjunct(a, b)
	require.NoError(t, err)
	require.Equal(t, 1, joined.NumRows())
	ri, _ := joined.GetRow(0)
	require.Equal(t, 1, mustPivot(t, ri)) // pivots on y
	require.True(t, ri.Nth(2).Equal(q(-5)))
}

func TestIsCoveredBy(t *testing.T) {
	// super: x = 1, y = 5.  sub: y = 5 (implied), then x = 9 (not implied).
	super, ok := sparsemat.Normalize([]sparsevec.SparseVector{row(3, 0, 1, -1), row(3, 1, 1, -5)}, 3)
	require.True(t, ok)

	ySub, _ := sparsevec.Zero(3).SetNth(1, q(1))
	ySub, _ = ySub.SetNth(2, q(-5))
	ySubM, err := sparsemat.FromRows(3, []sparsevec.SparseVector{ySub})
	require.NoError(t, err)
	covered, err := sparsemat.IsCoveredBy(ySubM, super)
	require.NoError(t, err)
	require.True(t, covered)

	notImplied, _ := sparsevec.Zero(3).SetNth(0, q(1))
	notImplied, _ = notImplied.SetNth(2, q(-9)) // x = 9, false
	notImpliedM, err := sparsemat.FromRows(3, []sparsevec.SparseVector{notImplied})
	require.NoError(t, err)
	notCovered, err := sparsemat.IsCoveredBy(notImpliedM, super)
	require.NoError(t, err)
	require.False(t, notCovered)
}

func TestReduceColDropsPivotRow(t *testing.T) {
	// x = y (col0 - col1 = 0), cols = {x,y,const}=3
	eq, _ := sparsevec.Zero(3).SetNth(0, q(1))
	eq, _ = eq.SetNth(1, q(-1))
	m, ok := sparsemat.Normalize([]sparsevec.SparseVector{eq}, 3)
	require.True(t, ok)

	reduced, err := m.ReduceCol(0)
	require.NoError(t, err)
	require.Equal(t, 0, reduced.NumRows(), "the only row mentioning x must be dropped")
}

func TestReduceColNoPivotIsNoop(t *testing.T) {
	m, ok := sparsemat.Normalize([]sparsevec.SparseVector{row(3, 1, 1, -5)}, 3) // y = 5
	require.True(t, ok)
	reduced, err := m.ReduceCol(0) // x never appears
	require.NoError(t, err)
	require.Equal(t, 1, reduced.NumRows())
}

func TestAddEmptyColumnsThenDelCols(t *testing.T) {
	m, ok := sparsemat.Normalize([]sparsevec.SparseVector{row(2, 0, 1, -5)}, 2) // x = 5, cols=[x, const]
	require.True(t, ok)

	grown, err := m.AddEmptyColumns([]int{1}) // insert y before const column
	require.NoError(t, err)
	require.Equal(t, 3, grown.NumCols())
	gr, _ := grown.GetRow(0)
	require.True(t, gr.Nth(0).Equal(q(1)))
	require.True(t, gr.Nth(1).IsZero())
	require.True(t, gr.Nth(2).Equal(q(-5)))

	shrunk, err := grown.DelCols([]int{1})
	require.NoError(t, err)
	require.True(t, shrunk.Equal(m))
}

func TestGetColUpperTriangular(t *testing.T) {
	m, ok := sparsemat.Normalize([]sparsevec.SparseVector{row(3, 0, 1, -1), row(3, 1, 1, -5)}, 3)
	require.True(t, ok)
	idx, found := m.GetColUpperTriangular(1)
	require.True(t, found)
	r, _ := m.GetRow(idx)
	require.Equal(t, 1, mustPivot(t, r))

	_, found = m.GetColUpperTriangular(5)
	require.False(t, found)
}
