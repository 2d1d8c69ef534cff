package rank

import (
	"fmt"
	"math/big"

	"github.com/bagcodec/bagcodec/epoch"
	"github.com/bagcodec/bagcodec/multiset"
)

// IntegerToMultiset returns the size-k multiset of non-negative integers
// ranked i: the CNS decode composed with the combination-to-multiset shift.
func IntegerToMultiset(i *big.Int, k int) (*multiset.Multiset, error) {
	s, err := IntegerToCombination(i, k)
	if err != nil {
		return nil, err
	}

	return CombinationToMultiset(s)
}

// MultisetToInteger returns the rank of a fixed-size multiset of
// non-negative integers. Inverse of IntegerToMultiset at equal size.
func MultisetToInteger(ms *multiset.Multiset) (*big.Int, error) {
	s, err := MultisetToCombination(ms)
	if err != nil {
		return nil, err
	}

	return CombinationToInteger(s)
}

// IntegerToVarMultiset returns the multiset over alphabet indices [0, n)
// ranked i, with the multiset's size recovered from i itself.
//
// The non-negative integers are partitioned into epochs of size
// Multicomb(n, k) for k = 0, 1, 2, ...; i's epoch determines the size k and
// the within-epoch offset determines which size-k multiset.
//
// Parameters:
//   - i: non-negative rank
//   - n: alphabet size, n >= 1
//
// Returns:
//   - *multiset.Multiset: multiset of *big.Int indices in [0, n)
//   - error: precondition violation on i < 0 or n < 1
func IntegerToVarMultiset(i *big.Int, n int) (*multiset.Multiset, error) {
	if n < 1 {
		return nil, fmt.Errorf("alphabet size %d must be positive", n)
	}

	k, offset, err := epoch.Fit(i, func(k int) *big.Int {
		return Multicomb(n, k)
	})
	if err != nil {
		return nil, err
	}

	return IntegerToMultiset(new(big.Int).Sub(i, offset), k)
}

// VarMultisetToInteger returns the rank of a multiset of any size over
// alphabet indices [0, n). Exact inverse of IntegerToVarMultiset.
//
// Every element must be an integer in [0, n); anything else is a range
// error (a mismatched alphabet size on the consumer side).
func VarMultisetToInteger(ms *multiset.Multiset, n int) (*big.Int, error) {
	if n < 1 {
		return nil, fmt.Errorf("alphabet size %d must be positive", n)
	}

	bound := big.NewInt(int64(n))
	for elem := range ms.All() {
		value, err := toBigInt(elem)
		if err != nil {
			return nil, err
		}
		if value.Sign() < 0 || value.Cmp(bound) >= 0 {
			return nil, fmt.Errorf("element %s out of alphabet range [0, %d)", value, n)
		}
	}

	k := ms.Len()
	offset := new(big.Int)
	for j := 0; j < k; j++ {
		offset.Add(offset, Multicomb(n, j))
	}

	rank, err := MultisetToInteger(ms)
	if err != nil {
		return nil, err
	}

	return rank.Add(rank, offset), nil
}

// IntegerToVarCombination returns the combination of distinct indices in
// [0, n) ranked i, with the combination's size recovered from i itself by
// epoch-fitting over C(n, k) for k = 0..n.
//
// The rank space is finite: the total across all sizes is 2^n, and ranks at
// or beyond it are an exhaustion error.
func IntegerToVarCombination(i *big.Int, n int) ([]*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("alphabet size %d must be non-negative", n)
	}

	k, offset, err := epoch.Fit(i, func(k int) *big.Int {
		if k > n {
			return nil
		}
		return Binomial(n, k)
	})
	if err != nil {
		return nil, err
	}

	return IntegerToCombination(new(big.Int).Sub(i, offset), k)
}

// VarCombinationToInteger returns the rank of a combination of any size
// over indices [0, n). Exact inverse of IntegerToVarCombination.
func VarCombinationToInteger(s []*big.Int, n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("alphabet size %d must be non-negative", n)
	}
	if len(s) > n {
		return nil, fmt.Errorf("combination size %d exceeds alphabet size %d", len(s), n)
	}

	bound := big.NewInt(int64(n))
	for _, elem := range s {
		if elem.Sign() < 0 || elem.Cmp(bound) >= 0 {
			return nil, fmt.Errorf("element %s out of alphabet range [0, %d)", elem, n)
		}
	}

	offset := new(big.Int)
	for j := 0; j < len(s); j++ {
		offset.Add(offset, Binomial(n, j))
	}

	rank, err := CombinationToInteger(s)
	if err != nil {
		return nil, err
	}

	return rank.Add(rank, offset), nil
}
