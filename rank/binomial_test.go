package rank

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k int
		want int64
	}{
		{0, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
		{5, 2, 10},
		{10, 5, 252},
		{52, 5, 2598960},
		{5, 6, 0},
		{-1, 0, 0},
		{3, -1, 0},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Binomial(tt.n, tt.k).Int64(), "C(%d, %d)", tt.n, tt.k)
	}
}

func TestBinomial_PascalIdentity(t *testing.T) {
	for n := 1; n <= 20; n++ {
		for k := 1; k <= n; k++ {
			sum := new(big.Int).Add(Binomial(n-1, k-1), Binomial(n-1, k))
			require.Zero(t, sum.Cmp(Binomial(n, k)), "C(%d, %d)", n, k)
		}
	}
}

func TestBinomial_CachedValueIsCopy(t *testing.T) {
	a := Binomial(10, 5)
	a.SetInt64(-999)
	require.Equal(t, int64(252), Binomial(10, 5).Int64())
}

func TestMulticomb(t *testing.T) {
	tests := []struct {
		n, k int
		want int64
	}{
		{1, 0, 1},
		{1, 5, 1},
		{6, 0, 1},
		{6, 1, 6},
		{6, 2, 21},
		{6, 3, 56},
		{3, 4, 15},
		{0, 0, 1},
		{0, 3, 0},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Multicomb(tt.n, tt.k).Int64(), "multicomb(%d, %d)", tt.n, tt.k)
	}
}

func TestBigBinomial_MatchesSmall(t *testing.T) {
	for n := 0; n <= 30; n++ {
		for k := 0; k <= n+2; k++ {
			require.Zero(t, bigBinomial(big.NewInt(int64(n)), k).Cmp(Binomial(n, k)),
				"C(%d, %d)", n, k)
		}
	}
}

func TestBigBinomial_Huge(t *testing.T) {
	// C(10^30, 2) = m*(m-1)/2, exercised well past int64.
	m, ok := new(big.Int).SetString("1000000000000000000000000000000", 10)
	require.True(t, ok)

	want := new(big.Int).Sub(m, big.NewInt(1))
	want.Mul(want, m)
	want.Quo(want, big.NewInt(2))

	require.Zero(t, bigBinomial(m, 2).Cmp(want))
}
