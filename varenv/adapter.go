// SPDX-License-Identifier: MIT
package varenv

import "github.com/goaffine/affineeq/sparsemat"

// AddVars returns env extended with fresh variables, and m grown with a
// fresh all-zero column per new variable — spec §4.4's add_vars. The
// new variables are appended after env's existing ones.
//
// Contract: m.NumVars() == env.Size(); no name in vars already present
// (ErrDuplicateVar) and no empty name (ErrEmptyName).
func AddVars(env Environment, m sparsemat.Matrix, vars []Variable) (Environment, sparsemat.Matrix, error) {
	if m.NumVars() != env.Size() {
		return Environment{}, sparsemat.Matrix{}, envErrorf("AddVars", ErrColumnMismatch)
	}
	merged := make([]Variable, 0, len(env.vars)+len(vars))
	merged = append(merged, env.vars...)
	merged = append(merged, vars...)
	newEnv, err := New(merged)
	if err != nil {
		return Environment{}, sparsemat.Matrix{}, envErrorf("AddVars", err)
	}
	idxs := make([]int, len(vars))
	for i := range vars {
		idxs[i] = env.Size() + i
	}
	grown, err := m.AddEmptyColumns(idxs)
	if err != nil {
		return Environment{}, sparsemat.Matrix{}, envErrorf("AddVars", err)
	}
	return newEnv, grown, nil
}

// RemoveVars returns env with the named variables dropped, and m with
// the corresponding columns eliminated — spec §4.4's remove_vars. Each
// targeted column is first fed through ReduceCol (preserving every
// equality that did not mention it) before the column itself is
// deleted, then trivial zero rows are swept.
//
// Contract: every name in names must be present in env (ErrUnknownVar
// otherwise); m.NumVars() == env.Size().
func RemoveVars(env Environment, m sparsemat.Matrix, names []string) (Environment, sparsemat.Matrix, error) {
	if m.NumVars() != env.Size() {
		return Environment{}, sparsemat.Matrix{}, envErrorf("RemoveVars", ErrColumnMismatch)
	}
	remove := make(map[string]bool, len(names))
	idxs := make([]int, 0, len(names))
	for _, name := range names {
		i, ok := env.DimOfVar(name)
		if !ok {
			return Environment{}, sparsemat.Matrix{}, envErrorf("RemoveVars", ErrUnknownVar)
		}
		if !remove[name] {
			remove[name] = true
			idxs = append(idxs, i)
		}
	}

	work := m
	for _, j := range idxs {
		var err error
		work, err = work.ReduceCol(j)
		if err != nil {
			return Environment{}, sparsemat.Matrix{}, envErrorf("RemoveVars", err)
		}
	}
	work, err := work.DelCols(idxs)
	if err != nil {
		return Environment{}, sparsemat.Matrix{}, envErrorf("RemoveVars", err)
	}
	work = work.RemoveZeroRows()

	// As in ForgetVars, ReduceCol-ing a free variable out of two or more
	// rows before deleting its column can leave the survivors sharing a
	// pivot with a non-unit leading coefficient: re-normalize so the
	// result is RREF, which every caller (Leq/IsCoveredBy in particular)
	// assumes.
	normalized, ok := sparsemat.Normalize(work.Rows(), work.NumCols())
	if !ok {
		return Environment{}, sparsemat.Matrix{}, envErrorf("RemoveVars", sparsemat.ErrInconsistent)
	}
	work = normalized

	kept := make([]Variable, 0, len(env.vars)-len(idxs))
	for _, v := range env.vars {
		if !remove[v.Name] {
			kept = append(kept, v)
		}
	}
	newEnv, err := New(kept)
	if err != nil {
		return Environment{}, sparsemat.Matrix{}, envErrorf("RemoveVars", err)
	}
	return newEnv, work, nil
}

// DimChange2Add grows m, shaped for sub, into the column layout of
// super — spec §4.4's dimchange2_add. sub must embed into super as an
// order-preserving column subsequence (IsSubEnvOf).
//
// Contract: m.NumVars() == sub.Size() (ErrColumnMismatch otherwise);
// sub must be a sub-environment of super (ErrNotSubEnv / ErrEnvIncompatible).
func DimChange2Add(sub Environment, m sparsemat.Matrix, super Environment) (sparsemat.Matrix, error) {
	if m.NumVars() != sub.Size() {
		return sparsemat.Matrix{}, envErrorf("DimChange2Add", ErrColumnMismatch)
	}
	idxs, err := insertionIndices(sub, super)
	if err != nil {
		return sparsemat.Matrix{}, envErrorf("DimChange2Add", err)
	}
	grown, err := m.AddEmptyColumns(idxs)
	if err != nil {
		return sparsemat.Matrix{}, envErrorf("DimChange2Add", err)
	}
	return grown, nil
}
