// Package mixedradix models positional numeral systems where every digit
// position has its own radix.
//
// A Base is declared most-significant-first: the digit for the first
// declared radix carries the most weight. Consumers use it to pack several
// independent sub-choices (each with its own cardinality) into one alphabet
// index and back.
package mixedradix

import (
	"fmt"
	"math/big"
	"slices"
)

// Base is an immutable mixed-radix vector.
type Base struct {
	radixes []int
	order   *big.Int
}

// New creates a Base from per-position radixes, most significant first.
// Every radix must be at least 1.
func New(radixes ...int) (*Base, error) {
	order := big.NewInt(1)
	for pos, b := range radixes {
		if b < 1 {
			return nil, fmt.Errorf("radix %d at position %d is not positive", b, pos)
		}
		order.Mul(order, big.NewInt(int64(b)))
	}

	return &Base{radixes: slices.Clone(radixes), order: order}, nil
}

// Len returns the number of digit positions.
func (b *Base) Len() int {
	return len(b.radixes)
}

// Radixes returns a copy of the radix vector, most significant first.
func (b *Base) Radixes() []int {
	return slices.Clone(b.radixes)
}

// Order returns the number of representable values, the product of all
// radixes. Valid integers are [0, Order).
func (b *Base) Order() *big.Int {
	return new(big.Int).Set(b.order)
}

// Max returns the greatest representable integer, Order - 1.
func (b *Base) Max() *big.Int {
	return new(big.Int).Sub(b.order, big.NewInt(1))
}

// ToInt folds a digit tuple into its integer value, most significant digit
// first: acc = acc*radix + digit per declared position.
//
// Returns a range error if the tuple length does not match or any digit
// falls outside [0, radix) for its position.
func (b *Base) ToInt(digits []int) (*big.Int, error) {
	if len(digits) != len(b.radixes) {
		return nil, fmt.Errorf("got %d digits for %d radix positions", len(digits), len(b.radixes))
	}

	value := new(big.Int)
	for pos, radix := range b.radixes {
		digit := digits[pos]
		if digit < 0 || digit >= radix {
			return nil, fmt.Errorf("digit %d at position %d out of range [0, %d)", digit, pos, radix)
		}
		value.Mul(value, big.NewInt(int64(radix)))
		value.Add(value, big.NewInt(int64(digit)))
	}

	return value, nil
}

// FromInt expands an integer into its digit tuple, inverse of ToInt.
//
// Remainders are extracted least-significant radix first (the last declared
// position) and reversed into declared order. Returns a range error if i is
// negative or at least Order (a non-zero quotient would be left over after
// all positions are consumed).
func (b *Base) FromInt(i *big.Int) ([]int, error) {
	if i.Sign() < 0 {
		return nil, fmt.Errorf("integer %s out of range [0, %s)", i, b.order)
	}

	digits := make([]int, len(b.radixes))
	quotient := new(big.Int).Set(i)
	remainder := new(big.Int)
	for pos := len(b.radixes) - 1; pos >= 0; pos-- {
		quotient.QuoRem(quotient, big.NewInt(int64(b.radixes[pos])), remainder)
		digits[pos] = int(remainder.Int64())
	}
	if quotient.Sign() != 0 {
		return nil, fmt.Errorf("integer %s out of range [0, %s)", i, b.order)
	}

	return digits, nil
}
