package varenv_test

import (
	"testing"

	"github.com/goaffine/affineeq/rational"
	"github.com/goaffine/affineeq/sparsemat"
	"github.com/goaffine/affineeq/sparsevec"
	"github.com/goaffine/affineeq/varenv"
	"github.com/stretchr/testify/require"
)

func vars(names ...string) []varenv.Variable {
	out := make([]varenv.Variable, len(names))
	for i, n := range names {
		out[i] = varenv.Variable{Name: n, Kind: varenv.KindInt}
	}
	return out
}

func TestNewRejectsDuplicatesAndEmptyNames(t *testing.T) {
	_, err := varenv.New(vars("x", "x"))
	require.ErrorIs(t, err, varenv.ErrDuplicateVar)

	_, err = varenv.New([]varenv.Variable{{Name: ""}})
	require.ErrorIs(t, err, varenv.ErrEmptyName)
}

func TestDimOfVarAndVariableAt(t *testing.T) {
	env, err := varenv.New(vars("x", "y", "z"))
	require.NoError(t, err)
	require.Equal(t, 3, env.Size())

	i, ok := env.DimOfVar("y")
	require.True(t, ok)
	require.Equal(t, 1, i)

	v, ok := env.VariableAt(2)
	require.True(t, ok)
	require.Equal(t, "z", v.Name)

	_, ok = env.DimOfVar("w")
	require.False(t, ok)
}

func TestCompatibleDetectsKindClash(t *testing.T) {
	a, _ := varenv.New([]varenv.Variable{{Name: "x", Kind: varenv.KindInt}})
	b, _ := varenv.New([]varenv.Variable{{Name: "x", Kind: varenv.KindRational}})
	require.False(t, a.Compatible(b))
}

func TestLCEAppendsExclusiveVars(t *testing.T) {
	a, _ := varenv.New(vars("x", "y"))
	b, _ := varenv.New(vars("x", "z"))
	lce, err := varenv.LCE(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, lce.Size())
	require.True(t, a.IsSubEnvOf(lce))
	require.True(t, b.IsSubEnvOf(lce))
}

func TestLCERejectsIncompatibleKinds(t *testing.T) {
	a, _ := varenv.New([]varenv.Variable{{Name: "x", Kind: varenv.KindInt}})
	b, _ := varenv.New([]varenv.Variable{{Name: "x", Kind: varenv.KindRational}})
	_, err := varenv.LCE(a, b)
	require.ErrorIs(t, err, varenv.ErrEnvIncompatible)
}

func TestIsSubEnvOfRejectsOutOfOrder(t *testing.T) {
	sub, _ := varenv.New(vars("y", "x"))
	super, _ := varenv.New(vars("x", "y"))
	require.False(t, sub.IsSubEnvOf(super))
}

func q(n int64) rational.Rational { return rational.FromInt64(n) }

func xEqOne(cols int) sparsevec.SparseVector {
	v := sparsevec.Zero(cols)
	v, _ = v.SetNth(0, q(1))
	v, _ = v.SetNth(cols-1, q(-1))
	return v
}

func TestAddVarsGrowsColumns(t *testing.T) {
	env, _ := varenv.New(vars("x"))
	m, ok := sparsemat.Normalize([]sparsevec.SparseVector{xEqOne(2)}, 2)
	require.True(t, ok)

	newEnv, grown, err := varenv.AddVars(env, m, vars("y"))
	require.NoError(t, err)
	require.Equal(t, 2, newEnv.Size())
	require.Equal(t, 3, grown.NumCols())

	row, _ := grown.GetRow(0)
	require.True(t, row.Nth(0).Equal(q(1)))
	require.True(t, row.Nth(1).IsZero())
	require.True(t, row.Nth(2).Equal(q(-1)))
}

func TestRemoveVarsDropsColumnAndRow(t *testing.T) {
	env, _ := varenv.New(vars("x", "y"))
	// x = 1, y = 5
	r1 := xEqOne(3)
	r2 := sparsevec.Zero(3)
	r2, _ = r2.SetNth(1, q(1))
	r2, _ = r2.SetNth(2, q(-5))
	m, ok := sparsemat.Normalize([]sparsevec.SparseVector{r1, r2}, 3)
	require.True(t, ok)

	newEnv, reduced, err := varenv.RemoveVars(env, m, []string{"x"})
	require.NoError(t, err)
	require.Equal(t, 1, newEnv.Size())
	require.Equal(t, 2, reduced.NumCols())
	require.Equal(t, 1, reduced.NumRows())
	row, _ := reduced.GetRow(0)
	require.True(t, row.Nth(0).Equal(q(1))) // y = 5, y now at column 0
	require.True(t, row.Nth(1).Equal(q(-5)))
}

func TestRemoveVarsUnknownName(t *testing.T) {
	env, _ := varenv.New(vars("x"))
	m, _ := sparsemat.New(2)
	_, _, err := varenv.RemoveVars(env, m, []string{"nope"})
	require.ErrorIs(t, err, varenv.ErrUnknownVar)
}

func TestDimChange2AddGrowsToSuperEnv(t *testing.T) {
	sub, _ := varenv.New(vars("x"))
	super, _ := varenv.New(vars("x", "y"))
	m, ok := sparsemat.Normalize([]sparsevec.SparseVector{xEqOne(2)}, 2)
	require.True(t, ok)

	grown, err := varenv.DimChange2Add(sub, m, super)
	require.NoError(t, err)
	require.Equal(t, 3, grown.NumCols())
	row, _ := grown.GetRow(0)
	require.True(t, row.Nth(0).Equal(q(1)))
	require.True(t, row.Nth(1).IsZero())
	require.True(t, row.Nth(2).Equal(q(-1)))
}

func TestDimChange2AddRejectsNonSubEnv(t *testing.T) {
	sub, _ := varenv.New(vars("x", "z"))
	super, _ := varenv.New(vars("x", "y"))
	m, _ := sparsemat.New(3)
	_, err := varenv.DimChange2Add(sub, m, super)
	require.Error(t, err)
}
