package multiset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnion(t *testing.T) {
	a := New(1, 1, 2)
	b := New(1, 2, 2)

	u := a.Union(b)
	require.True(t, u.Equal(New(1, 1, 2, 2)))

	// Operands untouched, result independent.
	require.True(t, a.Equal(New(1, 1, 2)))
	require.True(t, b.Equal(New(1, 2, 2)))
	u.Add(9)
	require.False(t, a.Contains(9))
}

func TestSum(t *testing.T) {
	a := New(1, 1, 2)
	b := New(1, 2, 2)

	require.True(t, a.Sum(b).Equal(New(1, 1, 1, 2, 2, 2)))
	require.True(t, a.Equal(New(1, 1, 2)))
}

func TestIntersection(t *testing.T) {
	a := New(1, 1, 2, 3)
	b := New(1, 2, 2)

	require.True(t, a.Intersection(b).Equal(New(1, 2)))
	require.True(t, a.Intersection(New()).Equal(New()))
}

func TestDifference(t *testing.T) {
	a := New(1, 1, 1, 2)
	b := New(1, 3)

	require.True(t, a.Difference(b).Equal(New(1, 1, 2)))

	// Left-associative over several operands, floored at zero each step.
	c := New(1, 1)
	require.True(t, a.Difference(b, c).Equal(New(2)))
	require.True(t, a.Difference(a).Equal(New()))
}

func TestSymmetricDifference(t *testing.T) {
	a := New(1, 1, 2)
	b := New(1, 2, 2, 3)

	d := a.SymmetricDifference(b)
	require.True(t, d.Equal(New(1, 2, 3)))

	// Symmetric both ways.
	require.True(t, b.SymmetricDifference(a).Equal(d))
	require.True(t, a.SymmetricDifference(a).Equal(New()))
}

func TestAlgebra_CountContracts(t *testing.T) {
	a := New(1, 1, 2, 4)
	b := New(1, 2, 2, 3)

	for _, x := range []int{1, 2, 3, 4, 5} {
		require.Equal(t, max(a.Count(x), b.Count(x)), a.Union(b).Count(x), "union of %d", x)
		require.Equal(t, min(a.Count(x), b.Count(x)), a.Intersection(b).Count(x), "intersection of %d", x)
		require.Equal(t, max(0, a.Count(x)-b.Count(x)), a.Difference(b).Count(x), "difference of %d", x)
		require.Equal(t, a.Count(x)+b.Count(x), a.Sum(b).Count(x), "sum of %d", x)
	}
}

func TestAlgebra_Idempotence(t *testing.T) {
	a := New(1, 1, 2)

	require.True(t, a.Union(a).Equal(a))
	require.True(t, a.Intersection(a).Equal(a))
	require.Equal(t, 0, a.Difference(a).Len())
}

func TestAlgebra_ManyOperands(t *testing.T) {
	a := New(1, 1, 1, 2, 3)
	b := New(1, 2)
	c := New(1, 1, 4)

	require.True(t, a.Union(b, c).Equal(New(1, 1, 1, 2, 3, 4)))
	require.True(t, a.Intersection(b, c).Equal(New(1)))
	require.True(t, a.Difference(b, c).Equal(New(3)))
}

func TestUpdate(t *testing.T) {
	a := New(1, 1, 2)
	a.Update(New(2, 3))
	require.True(t, a.Equal(New(1, 1, 2, 3)))
}

func TestIntersectionUpdate(t *testing.T) {
	a := New(1, 1, 2, 3)
	a.IntersectionUpdate(New(1, 2, 2))
	require.True(t, a.Equal(New(1, 2)))
}

func TestDifferenceUpdate(t *testing.T) {
	a := New(1, 1, 1, 2)
	a.DifferenceUpdate(New(1), New(1))
	require.True(t, a.Equal(New(1, 2)))
}

func TestSymmetricDifferenceUpdate(t *testing.T) {
	a := New(1, 1, 2)
	a.SymmetricDifferenceUpdate(New(1, 2, 2, 3))
	require.True(t, a.Equal(New(1, 2, 3)))

	// Self-application empties the set.
	b := New(5, 5, 6)
	b.SymmetricDifferenceUpdate(b.Clone())
	require.Equal(t, 0, b.Len())
}

func TestUpdate_MatchesFreshResult(t *testing.T) {
	// In-place variants reach exactly the multiplicities of the fresh-copy
	// operations.
	mk := func() (*Multiset, *Multiset) { return New(1, 1, 2, 3, 3), New(1, 2, 2, 3) }

	a, b := mk()
	want := a.Union(b)
	a.Update(b)
	require.True(t, a.Equal(want))

	a, b = mk()
	want = a.Intersection(b)
	a.IntersectionUpdate(b)
	require.True(t, a.Equal(want))

	a, b = mk()
	want = a.Difference(b)
	a.DifferenceUpdate(b)
	require.True(t, a.Equal(want))

	a, b = mk()
	want = a.SymmetricDifference(b)
	a.SymmetricDifferenceUpdate(b)
	require.True(t, a.Equal(want))
}

func TestSubsetSuperset(t *testing.T) {
	a := New(1, 2)
	b := New(1, 1, 2, 3)

	require.True(t, a.IsSubset(b))
	require.False(t, b.IsSubset(a))
	require.True(t, b.IsSuperset(a))
	require.True(t, a.IsSubset(a))
	require.True(t, New().IsSubset(a))

	// Multiplicity matters: {1,1} is not a subset of {1,2}.
	require.False(t, New(1, 1).IsSubset(New(1, 2)))
}

func TestSubset_PartialOrder(t *testing.T) {
	// {1,1} and {1,2} are incomparable.
	a := New(1, 1)
	b := New(1, 2)

	require.False(t, a.IsSubset(b))
	require.False(t, b.IsSubset(a))
	require.False(t, a.Equal(b))
}

func TestSubset_UnionCharacterization(t *testing.T) {
	// A.IsSubset(B) iff A.Union(B).Equal(B).
	sets := []*Multiset{New(), New(1), New(1, 1), New(1, 2), New(1, 1, 2), New(2, 3)}
	for _, a := range sets {
		for _, b := range sets {
			require.Equal(t, a.Union(b).Equal(b), a.IsSubset(b), "%v vs %v", a, b)
		}
	}
}

func TestIsDisjoint(t *testing.T) {
	require.True(t, New(1, 2).IsDisjoint(New(3, 4)))
	require.False(t, New(1, 2).IsDisjoint(New(2, 3)))
	require.True(t, New().IsDisjoint(New()))
}

func TestEqual(t *testing.T) {
	require.True(t, New(1, 1, 2).Equal(New(2, 1, 1)))
	require.False(t, New(1, 2).Equal(New(1, 1, 2)))
	require.False(t, New(1).Equal(New(2)))
	require.True(t, New().Equal(New()))
}

func TestAlgebra_HeterogeneousOperands(t *testing.T) {
	a := New(1, "x", Tuple{1, 2})
	b := New("x", "x", Tuple{1, 2}, 2)

	require.True(t, a.Intersection(b).Equal(New("x", Tuple{1, 2})))
	require.True(t, a.Difference(b).Equal(New(1)))
	require.Equal(t, 5, a.Union(b).Len())
}
