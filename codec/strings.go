package codec

import (
	"fmt"
	"math/big"

	"github.com/bagcodec/bagcodec/epoch"
)

// Rank maps a variable-length string of base-k symbols to its unique integer
// representative. Strings are ordered by length first, then numerically, so
// the empty string ranks 0, the k length-1 strings rank 1..k, and so on.
//
// Returns a range error if k < 1 or any symbol falls outside [0, k).
func Rank(symbols []int, k int) (*big.Int, error) {
	if k < 1 {
		return nil, fmt.Errorf("alphabet size %d must be positive", k)
	}

	base := big.NewInt(int64(k))
	value := new(big.Int)
	offset := new(big.Int)
	pow := big.NewInt(1)
	for pos, c := range symbols {
		if c < 0 || c >= k {
			return nil, fmt.Errorf("symbol %d at position %d out of range [0, %d)", c, pos, k)
		}
		value.Mul(value, base)
		value.Add(value, big.NewInt(int64(c)))

		// Skip past all strings shorter than this one.
		offset.Add(offset, pow)
		pow.Mul(pow, base)
	}

	return value.Add(value, offset), nil
}

// Unrank recovers the base-k symbol string ranked i. Exact inverse of Rank.
//
// The string's length is the epoch that i falls into when the non-negative
// integers are partitioned into ranges of size k^l for l = 0, 1, 2, ...
func Unrank(i *big.Int, k int) ([]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("alphabet size %d must be positive", k)
	}

	base := big.NewInt(int64(k))
	length, offset, err := epoch.Fit(i, func(l int) *big.Int {
		return new(big.Int).Exp(base, big.NewInt(int64(l)), nil)
	})
	if err != nil {
		return nil, err
	}

	symbols := make([]int, length)
	quotient := new(big.Int).Sub(i, offset)
	remainder := new(big.Int)
	for pos := length - 1; pos >= 0; pos-- {
		quotient.QuoRem(quotient, base, remainder)
		symbols[pos] = int(remainder.Int64())
	}
	if quotient.Sign() != 0 {
		return nil, fmt.Errorf("internal fault: quotient %s left unranking %s in base %d", quotient, i, k)
	}

	return symbols, nil
}
