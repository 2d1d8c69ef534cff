package rank

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/bagcodec/bagcodec/search"
)

// IntegerToCombination returns the unique size-k combination (k distinct
// non-negative integers, ascending) whose combinatorial-number-system rank
// is i.
//
// For j from k down to 1, the greatest m with C(m, j) <= remainder is found
// by monotone search (there is no closed-form inverse), taken as a digit,
// and its place value subtracted.
//
// Preconditions: i >= 0 and k >= 0, with k >= 1 whenever i > 0.
// IntegerToCombination(0, k) is the minimal combination {0, 1, ..., k-1}.
//
// Returns:
//   - []*big.Int: the combination, sorted ascending
//   - error: precondition violation, or an internal-consistency fault if the
//     remainder is not exhausted after k digits
func IntegerToCombination(i *big.Int, k int) ([]*big.Int, error) {
	if i.Sign() < 0 {
		return nil, fmt.Errorf("cannot represent %s as a %d-combination (negative integer)", i, k)
	}
	if k < 0 {
		return nil, fmt.Errorf("combination size %d is negative", k)
	}
	if k < 1 && i.Sign() > 0 {
		return nil, fmt.Errorf("cannot represent %s as a %d-combination (size too small)", i, k)
	}

	remainder := new(big.Int).Set(i)
	result := make([]*big.Int, 0, k)
	for j := k; j >= 1; j-- {
		elem, err := search.MaxSatisfying(func(m *big.Int) bool {
			return bigBinomial(m, j).Cmp(remainder) <= 0
		}, big.NewInt(0))
		if err != nil {
			return nil, fmt.Errorf("searching digit %d: %w", j, err)
		}
		result = append(result, elem)
		remainder.Sub(remainder, bigBinomial(elem, j))
	}
	if remainder.Sign() != 0 {
		return nil, fmt.Errorf("internal fault: remainder %s left after decoding %s as a %d-combination", remainder, i, k)
	}

	// Digits come out most-significant-first, i.e. descending.
	slices.Reverse(result)
	for idx := 1; idx < len(result); idx++ {
		if result[idx-1].Cmp(result[idx]) >= 0 {
			return nil, fmt.Errorf("internal fault: non-distinct digits decoding %s as a %d-combination", i, k)
		}
	}

	return result, nil
}

// CombinationToInteger returns the combinatorial-number-system rank of the
// given combination: the sum of C(element, position) over 1-based positions
// in ascending element order.
//
// The input need not be sorted; it must hold distinct non-negative integers.
func CombinationToInteger(s []*big.Int) (*big.Int, error) {
	sorted := slices.Clone(s)
	slices.SortFunc(sorted, (*big.Int).Cmp)

	total := new(big.Int)
	for idx, elem := range sorted {
		if elem.Sign() < 0 {
			return nil, fmt.Errorf("combination element %s is negative", elem)
		}
		if idx > 0 && elem.Cmp(sorted[idx-1]) == 0 {
			return nil, fmt.Errorf("combination element %s is duplicated", elem)
		}
		total.Add(total, bigBinomial(elem, idx+1))
	}

	return total, nil
}
