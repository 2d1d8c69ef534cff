package rank

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/bagcodec/bagcodec/multiset"
)

// toBigInt coerces any integer-typed multiset element to *big.Int.
func toBigInt(v any) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		return n, nil
	case int:
		return big.NewInt(int64(n)), nil
	case int8:
		return big.NewInt(int64(n)), nil
	case int16:
		return big.NewInt(int64(n)), nil
	case int32:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case uint:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint8:
		return big.NewInt(int64(n)), nil
	case uint16:
		return big.NewInt(int64(n)), nil
	case uint32:
		return big.NewInt(int64(n)), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	default:
		return nil, fmt.Errorf("element %v (%T) is not an integer", v, v)
	}
}

// CombinationToMultiset converts a combination into a size-k multiset by
// subtracting each element's 0-based sorted rank from its value. Runs of
// consecutive integers in the combination collapse into repeated elements.
func CombinationToMultiset(s []*big.Int) (*multiset.Multiset, error) {
	sorted := slices.Clone(s)
	slices.SortFunc(sorted, (*big.Int).Cmp)

	ms := multiset.New()
	for offset, elem := range sorted {
		if elem.Sign() < 0 {
			return nil, fmt.Errorf("combination element %s is negative", elem)
		}
		if offset > 0 && elem.Cmp(sorted[offset-1]) == 0 {
			return nil, fmt.Errorf("combination element %s is duplicated", elem)
		}
		shifted := new(big.Int).Sub(elem, big.NewInt(int64(offset)))
		ms.Add(shifted)
	}

	return ms, nil
}

// MultisetToCombination converts a size-k multiset of non-negative integers
// back into a combination by adding each element's 0-based rank in canonical
// order, re-separating repeats into distinct values. Exact inverse of
// CombinationToMultiset at equal size.
func MultisetToCombination(ms *multiset.Multiset) ([]*big.Int, error) {
	result := make([]*big.Int, 0, ms.Len())
	offset := 0
	for elem := range ms.All() {
		value, err := toBigInt(elem)
		if err != nil {
			return nil, err
		}
		if value.Sign() < 0 {
			return nil, fmt.Errorf("multiset element %s is negative", value)
		}
		result = append(result, new(big.Int).Add(value, big.NewInt(int64(offset))))
		offset++
	}

	return result, nil
}
