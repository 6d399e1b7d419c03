// SPDX-License-Identifier: MIT
// Package sparsemat: reduced row-echelon normalization, the "add an
// equality" and "conjoin two systems" primitives, join via the
// generator/constraint duality, and row-span inclusion (spec §4.3).
package sparsemat

import (
	"github.com/goaffine/affineeq/rational"
	"github.com/goaffine/affineeq/sparsevec"
)

// Normalize reduces rows (all of length cols) to reduced row-echelon
// form: unit pivots, strictly increasing pivot columns down the rows,
// zeros elsewhere in each pivot column, no all-zero rows.
//
// Returns ok == false iff the system is inconsistent — some linear
// combination forced a row to read 0 = nonzero. Callers map that to
// bottom (spec §4.3/§7's Inconsistent taxon).
//
// Complexity: O(r^2 * c) worst case.
func Normalize(rows []sparsevec.SparseVector, cols int) (Matrix, bool) {
	work := make([]sparsevec.SparseVector, len(rows))
	copy(work, rows)
	numVarCols := cols - 1
	pivotRow := 0

	for col := 0; col < numVarCols && pivotRow < len(work); col++ {
		sel := -1
		for r := pivotRow; r < len(work); r++ {
			if !work[r].Nth(col).IsZero() {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		work[pivotRow], work[sel] = work[sel], work[pivotRow]

		pivotVal := work[pivotRow].Nth(col)
		inv, err := pivotVal.Inv()
		if err != nil {
			// pivotVal is non-zero by construction of sel; unreachable.
			return Matrix{}, false
		}
		work[pivotRow] = work[pivotRow].Scale(inv)

		for r := 0; r < len(work); r++ {
			if r == pivotRow {
				continue
			}
			factor := work[r].Nth(col)
			if factor.IsZero() {
				continue
			}
			scaled := work[pivotRow].Scale(factor)
			newRow, err := work[r].Sub(scaled)
			if err != nil {
				return Matrix{}, false
			}
			work[r] = newRow
		}
		pivotRow++
	}

	result := make([]sparsevec.SparseVector, 0, len(work))
	for _, row := range work {
		allVarZero := true
		for _, e := range row.Entries() {
			if e.Index < numVarCols {
				allVarZero = false
				break
			}
		}
		if allVarZero {
			if !row.Nth(cols - 1).IsZero() {
				return Matrix{}, false // 0 = nonzero: inconsistent
			}
			continue // trivial 0 = 0, drop
		}
		result = append(result, row)
	}
	return Matrix{cols: cols, rows: result}, true
}

// RREFVec adds a single equality v to an already-normalized matrix m and
// re-normalizes. Returns ok == false on inconsistency.
//
// Contract: v.Len() == m.NumCols().
func RREFVec(m Matrix, v sparsevec.SparseVector) (Matrix, bool, error) {
	if v.Len() != m.cols {
		return Matrix{}, false, matErrorf("RREFVec", ErrColumnMismatch)
	}
	rows := make([]sparsevec.SparseVector, 0, len(m.rows)+1)
	rows = append(rows, m.rows...)
	rows = append(rows, v)
	result, ok := Normalize(rows, m.cols)
	return result, ok, nil
}

// RREFMatrix conjoins two normalized systems and re-normalizes: the
// basis of meet. Returns ok == false on inconsistency.
//
// Contract: m1.NumCols() == m2.NumCols().
func RREFMatrix(m1, m2 Matrix) (Matrix, bool, error) {
	if m1.cols != m2.cols {
		return Matrix{}, false, matErrorf("RREFMatrix", ErrColumnMismatch)
	}
	rows := make([]sparsevec.SparseVector, 0, len(m1.rows)+len(m2.rows))
	rows = append(rows, m1.rows...)
	rows = append(rows, m2.rows...)
	result, ok := Normalize(rows, m1.cols)
	return result, ok, nil
}

// nullSpaceBasis returns a basis of {v in Q^n : row . v = 0 for every
// row in rows}, computed from the RREF of rows: one basis vector per
// free (non-pivot) column, in ascending column order.
func nullSpaceBasis(rows []sparsevec.SparseVector, n int) []sparsevec.SparseVector {
	// Normalize expects a constant column; reinterpret each row over an
	// implicit all-zero constant column so the homogeneous system
	// (row . v = 0) is what gets reduced. This reuses one elimination
	// routine for both the constraint normal form and this purely
	// linear helper.
	padded := make([]sparsevec.SparseVector, len(rows))
	for i, r := range rows {
		grown, _ := r.WithLen(n + 1)
		padded[i] = grown
	}
	reduced, _ := Normalize(padded, n+1)

	pivotCols := make([]int, reduced.NumRows())
	isPivot := make([]bool, n)
	for i, row := range reduced.Rows() {
		pc, _ := pivotColumn(row)
		pivotCols[i] = pc
		if pc < n {
			isPivot[pc] = true
		}
	}

	var basis []sparsevec.SparseVector
	for f := 0; f < n; f++ {
		if isPivot[f] {
			continue
		}
		entries := []sparsevec.Entry{{Index: f, Value: rational.One()}}
		for i, row := range reduced.Rows() {
			p := pivotCols[i]
			if p >= n {
				continue
			}
			coeff := row.Nth(f)
			if !coeff.IsZero() {
				entries = append(entries, sparsevec.Entry{Index: p, Value: coeff.Neg()})
			}
		}
		basis = append(basis, sparsevec.FromEntries(n, entries))
	}
	return basis
}

// generators returns a particular solution p and a basis v of the
// homogeneous directions of the affine subspace {x : m x = 0} (using the
// constant-column sign convention c.x + k = 0), i.e. the subspace equals
// p + span(v).
func generators(m Matrix) (sparsevec.SparseVector, []sparsevec.SparseVector) {
	n := m.NumVars()
	pEntries := make([]sparsevec.Entry, 0, m.NumRows())
	varRows := make([]sparsevec.SparseVector, m.NumRows())
	for i, row := range m.Rows() {
		pc, ok := pivotColumn(row)
		if ok && pc < n {
			k := row.Nth(m.cols - 1)
			if !k.IsZero() {
				pEntries = append(pEntries, sparsevec.Entry{Index: pc, Value: k.Neg()})
			}
		}
		varRows[i] = variablePart(row, n)
	}
	p := sparsevec.FromEntries(n, pEntries)
	v := nullSpaceBasis(varRows, n)
	return p, v
}

// LinearDisjunct computes the smallest affine subspace containing the
// union of the subspaces represented by m1 and m2 (spec §4.3's join
// primitive): the affine hull of S1 u S2.
//
// Implementation note: rather than literally row-reducing a doubled
// system, this uses the equivalent generator/constraint duality — a
// particular point p1 and direction basis V1 for m1 (resp. p2, V2 for
// m2), spanning p1 + span(V1 u V2 u {p2-p1}) — and converts that back to
// constraint form via the null space of the direction set. This is the
// same mathematics Karr's construction performs; see DESIGN.md.
//
// Contract: m1.NumCols() == m2.NumCols().
func LinearDisjunct(m1, m2 Matrix) (Matrix, error) {
	if m1.cols != m2.cols {
		return Matrix{}, matErrorf("LinearDisjunct", ErrColumnMismatch)
	}
	if m1.Equal(m2) {
		return m1, nil
	}
	n := m1.NumVars()
	p1, v1 := generators(m1)
	p2, v2 := generators(m2)
	diff, err := p2.Sub(p1)
	if err != nil {
		return Matrix{}, matErrorf("LinearDisjunct", err)
	}

	w := make([]sparsevec.SparseVector, 0, len(v1)+len(v2)+1)
	w = append(w, v1...)
	w = append(w, v2...)
	w = append(w, diff)

	basis := nullSpaceBasis(w, n)
	rows := make([]sparsevec.SparseVector, 0, len(basis))
	for _, c := range basis {
		k := dot(c, p1).Neg()
		entries := append([]sparsevec.Entry{}, c.Entries()...)
		if !k.IsZero() {
			entries = append(entries, sparsevec.Entry{Index: n, Value: k})
		}
		rows = append(rows, sparsevec.FromEntries(n+1, entries))
	}

	result, ok := Normalize(rows, n+1)
	if !ok {
		// p1 always satisfies every constraint built above by
		// construction (k = -(c . p1)); Normalize failing here would
		// indicate a bug in this package, not a caller error.
		return Matrix{}, matErrorf("LinearDisjunct", ErrInconsistent)
	}
	return result, nil
}

// IsCoveredBy reports whether every row of sub — read as an individual
// linear equality — lies in the row span of super. super must be in
// RREF; sub need not be. This is the primitive behind <= (spec §4.3's
// is_covered_by, used by leq).
//
// Contract: sub.NumCols() == super.NumCols().
func IsCoveredBy(sub, super Matrix) (bool, error) {
	if sub.cols != super.cols {
		return false, matErrorf("IsCoveredBy", ErrColumnMismatch)
	}
	for _, row := range sub.rows {
		reduced := row
		for _, pivotRow := range super.rows {
			pc, ok := pivotColumn(pivotRow)
			if !ok {
				continue
			}
			coeff := reduced.Nth(pc)
			if coeff.IsZero() {
				continue
			}
			scaled := pivotRow.Scale(coeff)
			var err error
			reduced, err = reduced.Sub(scaled)
			if err != nil {
				return false, matErrorf("IsCoveredBy", err)
			}
		}
		if !reduced.IsZero() {
			return false, nil
		}
	}
	return true, nil
}
