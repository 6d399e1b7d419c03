// Package sparsevec_test exercises the zero-preserving invariant of SparseVector.
package sparsevec_test

import (
	"testing"

	"github.com/goaffine/affineeq/rational"
	"github.com/goaffine/affineeq/sparsevec"
	"github.com/stretchr/testify/require"
)

func q(n int64) rational.Rational { return rational.FromInt64(n) }

func TestZeroVec(t *testing.T) {
	v := sparsevec.Zero(5)
	require.Equal(t, 5, v.Len())
	require.Equal(t, 0, v.NNZ())
	for i := 0; i < 5; i++ {
		require.True(t, v.Nth(i).IsZero())
	}
}

func TestSetNthNeverMaterializesZero(t *testing.T) {
	v := sparsevec.Zero(3)
	v, err := v.SetNth(1, q(5))
	require.NoError(t, err)
	require.Equal(t, 1, v.NNZ())

	v, err = v.SetNth(1, rational.Zero())
	require.NoError(t, err)
	require.Equal(t, 0, v.NNZ(), "setting back to zero must remove the entry")
}

func TestSetNthOutOfRange(t *testing.T) {
	v := sparsevec.Zero(2)
	_, err := v.SetNth(5, q(1))
	require.ErrorIs(t, err, sparsevec.ErrOutOfRange)
}

func TestFindFirstNonzero(t *testing.T) {
	v := sparsevec.FromEntries(4, []sparsevec.Entry{{Index: 2, Value: q(3)}, {Index: 3, Value: q(1)}})
	e, ok := v.FindFirstNonzero()
	require.True(t, ok)
	require.Equal(t, 2, e.Index)

	empty := sparsevec.Zero(4)
	_, ok = empty.FindFirstNonzero()
	require.False(t, ok)
}

func TestIsConstVec(t *testing.T) {
	// only the last coordinate (constant column) set
	v := sparsevec.FromEntries(3, []sparsevec.Entry{{Index: 2, Value: q(7)}})
	require.True(t, v.IsConstVec())

	v2 := sparsevec.FromEntries(3, []sparsevec.Entry{{Index: 0, Value: q(1)}, {Index: 2, Value: q(7)}})
	require.False(t, v2.IsConstVec())

	require.True(t, sparsevec.Zero(3).IsConstVec())
}

func TestMapPreservingZeroDropsZeroResults(t *testing.T) {
	v := sparsevec.FromEntries(3, []sparsevec.Entry{{Index: 0, Value: q(5)}, {Index: 1, Value: q(2)}})
	out := v.MapPreservingZero(func(x rational.Rational) rational.Rational { return x.Sub(q(5)) })
	// index 0 maps to 0 and must disappear; index 1 maps to -3 and survives.
	require.Equal(t, 1, out.NNZ())
	require.True(t, out.Nth(0).IsZero())
	require.True(t, out.Nth(1).Equal(q(-3)))
}

func TestMap2PreservingZeroAddSub(t *testing.T) {
	a := sparsevec.FromEntries(4, []sparsevec.Entry{{Index: 0, Value: q(1)}, {Index: 2, Value: q(4)}})
	b := sparsevec.FromEntries(4, []sparsevec.Entry{{Index: 0, Value: q(-1)}, {Index: 1, Value: q(2)}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, 2, sum.NNZ()) // index 0 cancels to zero and vanishes
	require.True(t, sum.Nth(0).IsZero())
	require.True(t, sum.Nth(1).Equal(q(2)))
	require.True(t, sum.Nth(2).Equal(q(4)))

	_, err = a.Add(sparsevec.Zero(3))
	require.ErrorIs(t, err, sparsevec.ErrLengthMismatch)
}

func TestScale(t *testing.T) {
	v := sparsevec.FromEntries(2, []sparsevec.Entry{{Index: 0, Value: q(3)}})
	out := v.Scale(q(0))
	require.Equal(t, 0, out.NNZ(), "scaling by zero must clear all entries")

	out2 := v.Scale(q(2))
	require.True(t, out2.Nth(0).Equal(q(6)))
}

func TestCompareLengthWith(t *testing.T) {
	v := sparsevec.Zero(3)
	require.Equal(t, 0, v.CompareLengthWith(3))
	require.Equal(t, -1, v.CompareLengthWith(4))
	require.Equal(t, 1, v.CompareLengthWith(2))
}

func TestEqual(t *testing.T) {
	a := sparsevec.FromEntries(3, []sparsevec.Entry{{Index: 1, Value: q(2)}})
	b := sparsevec.FromEntries(3, []sparsevec.Entry{{Index: 1, Value: q(2)}})
	c := sparsevec.FromEntries(4, []sparsevec.Entry{{Index: 1, Value: q(2)}})
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c), "vectors of different length are never equal")
}

func TestWithLen(t *testing.T) {
	v := sparsevec.FromEntries(2, []sparsevec.Entry{{Index: 0, Value: q(9)}})
	grown, err := v.WithLen(4)
	require.NoError(t, err)
	require.Equal(t, 4, grown.Len())
	require.True(t, grown.Nth(0).Equal(q(9)))

	_, err = v.WithLen(1)
	require.ErrorIs(t, err, sparsevec.ErrOutOfRange)
}
