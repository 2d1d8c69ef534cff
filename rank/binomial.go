package rank

import (
	"math/big"

	lru "github.com/hashicorp/golang-lru/v2"
)

type binomialKey struct {
	n, k int
}

// The CNS decode loop and the epoch walks re-evaluate the same
// small-argument coefficients constantly, so a bounded memo pays for itself
// immediately. lru.New only fails on a non-positive size.
var binomialCache, _ = lru.New[binomialKey, *big.Int](4096)

// smallBinomialLimit bounds the n for which coefficients are memoized;
// larger arguments are computed directly to keep cache entries small.
const smallBinomialLimit = 1 << 16

// Binomial returns C(n, k), the number of k-element subsets of an n-element
// set. Out-of-range arguments (negative, or k > n) yield zero.
func Binomial(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}

	key := binomialKey{n: n, k: k}
	if cached, ok := binomialCache.Get(key); ok {
		return new(big.Int).Set(cached)
	}

	value := new(big.Int).Binomial(int64(n), int64(k))
	if n <= smallBinomialLimit {
		binomialCache.Add(key, value)
	}

	return new(big.Int).Set(value)
}

// Multicomb returns the number of distinct size-k multisets drawable from an
// n-element alphabet: C(n+k-1, k).
func Multicomb(n, k int) *big.Int {
	if n < 0 || k < 0 {
		return new(big.Int)
	}
	if k == 0 {
		// One empty multiset, even over an empty alphabet.
		return big.NewInt(1)
	}
	if n == 0 {
		return new(big.Int)
	}

	return Binomial(n+k-1, k)
}

// bigBinomial returns C(m, k) for an arbitrary-precision upper argument and
// a machine-integer lower one, as needed by the CNS place values.
func bigBinomial(m *big.Int, k int) *big.Int {
	if k < 0 || m.Sign() < 0 {
		return new(big.Int)
	}
	if m.IsInt64() {
		if n := m.Int64(); n <= smallBinomialLimit {
			return Binomial(int(n), k)
		}
	}
	if m.Cmp(big.NewInt(int64(k))) < 0 {
		return new(big.Int)
	}

	// C(m, k) = prod_{t=1..k} (m - k + t) / t, exact at every step.
	result := big.NewInt(1)
	factor := new(big.Int)
	for t := int64(1); t <= int64(k); t++ {
		factor.Sub(m, big.NewInt(int64(k)-t))
		result.Mul(result, factor)
		result.Quo(result, big.NewInt(t))
	}

	return result
}
