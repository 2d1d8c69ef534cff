// Package epoch partitions the non-negative integers into consecutive ranges
// ("epochs") of caller-defined sizes and locates which range an index falls
// into.
//
// Epoch sizes are supplied as an index-to-size function, so unbounded
// sequences (for example k -> multicomb(n, k)) work as long as the prefix
// relevant to any given query is finite.
package epoch

import (
	"fmt"
	"math/big"
)

// Sizes maps an epoch index to that epoch's size. Returning nil marks the
// end of a finite sequence; an unbounded sequence simply never returns nil.
// Sizes must be non-negative.
type Sizes func(index int) *big.Int

// FromSlice adapts a finite slice of epoch sizes to a Sizes function.
func FromSlice(sizes []*big.Int) Sizes {
	return func(index int) *big.Int {
		if index < 0 || index >= len(sizes) {
			return nil
		}

		return sizes[index]
	}
}

// FromInts adapts a finite slice of machine-integer epoch sizes to a Sizes
// function.
func FromInts(sizes []int64) Sizes {
	return func(index int) *big.Int {
		if index < 0 || index >= len(sizes) {
			return nil
		}

		return big.NewInt(sizes[index])
	}
}

// Fit locates the epoch that index i falls into.
//
// It walks the sizes in order, accumulating, and returns the first epoch
// whose cumulative range contains i: offset <= i < offset + sizes(epoch),
// where offset is the total size of all prior epochs.
//
// Parameters:
//   - i: non-negative index to place
//   - sizes: epoch size sequence
//
// Returns:
//   - int: epoch index
//   - *big.Int: cumulative offset of all prior epochs
//   - error: negative index, negative epoch size, or exhaustion when a
//     finite sequence's total never accumulates past i
func Fit(i *big.Int, sizes Sizes) (int, *big.Int, error) {
	if i.Sign() < 0 {
		return 0, nil, fmt.Errorf("cannot fit negative index %s", i)
	}

	offset := new(big.Int)
	next := new(big.Int)
	for index := 0; ; index++ {
		size := sizes(index)
		if size == nil {
			return 0, nil, fmt.Errorf("exhausted epochs without fitting %s", i)
		}
		if size.Sign() < 0 {
			return 0, nil, fmt.Errorf("epoch %d has negative size %s", index, size)
		}

		next.Add(offset, size)
		if i.Cmp(next) < 0 {
			return index, offset, nil
		}
		offset.Set(next)
	}
}
