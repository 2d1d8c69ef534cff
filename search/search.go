// Package search provides a monotone threshold search over the integers.
//
// It finds the greatest integer satisfying a predicate that is true on a
// prefix of the integers and false everywhere after: once the predicate turns
// false it never turns true again. The combinatorial number system decode
// relies on this because "largest m with C(m, j) <= r" has no closed form.
package search

import (
	"fmt"
	"math/big"

	"github.com/bagcodec/bagcodec/internal/options"
)

// Predicate reports whether a candidate integer qualifies. It must be
// non-increasing: true on some prefix of its domain, false afterwards.
type Predicate func(n *big.Int) bool

// GrowthFunc produces the next bracket upper bound from the current one.
// It must return a value strictly greater than its argument.
type GrowthFunc func(n *big.Int) *big.Int

type searcher struct {
	grow GrowthFunc
}

// Option configures a search.
type Option = options.Option[*searcher]

// WithGrowth replaces the default doubling step used while establishing the
// upper bracket. Aggressive growth trades extra predicate evaluations in the
// binary-search phase for fewer in the bracketing phase.
func WithGrowth(grow GrowthFunc) Option {
	return options.New(func(s *searcher) error {
		if grow == nil {
			return fmt.Errorf("growth function must not be nil")
		}
		s.grow = grow

		return nil
	})
}

func defaultGrow(n *big.Int) *big.Int {
	return new(big.Int).Lsh(n, 1)
}

// MaxSatisfying returns the greatest integer n >= initial for which pred(n)
// is true.
//
// Preconditions: pred(initial) must hold, and pred must be false for all
// sufficiently large inputs. The result r satisfies pred(r) && !pred(r+1).
//
// A negative initial bound is handled by searching a shifted predicate over
// the non-negative integers and undoing the shift on the result.
//
// Parameters:
//   - pred: non-increasing predicate to maximize over
//   - initial: lower bound known to satisfy pred
//
// Returns:
//   - *big.Int: greatest satisfying integer
//   - error: precondition violation if pred(initial) is false, or growth
//     function misuse
func MaxSatisfying(pred Predicate, initial *big.Int, opts ...Option) (*big.Int, error) {
	s := &searcher{grow: defaultGrow}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	if initial.Sign() < 0 {
		// Shift the domain so the bracketing arithmetic stays non-negative.
		offset := new(big.Int).Neg(initial)
		shifted := func(guess *big.Int) bool {
			return pred(new(big.Int).Sub(guess, offset))
		}
		result, err := MaxSatisfying(shifted, big.NewInt(0), opts...)
		if err != nil {
			return nil, err
		}

		return result.Sub(result, offset), nil
	}

	lower := new(big.Int).Set(initial)
	if !pred(lower) {
		return nil, fmt.Errorf("initial guess %s does not satisfy predicate", initial)
	}
	upper := new(big.Int).Add(lower, big.NewInt(1))

	// Phase 1: exponential bracketing. Grow the upper bound until the
	// predicate first fails there.
	for pred(upper) {
		next := s.grow(upper)
		if next.Cmp(upper) <= 0 {
			return nil, fmt.Errorf("growth function did not increase bound %s", upper)
		}
		lower, upper = upper, next
	}

	// Phase 2: binary search the bracket down to the exact threshold.
	// Invariant: pred(lower) && !pred(upper).
	one := big.NewInt(1)
	gap := new(big.Int)
	for gap.Sub(upper, lower).Cmp(one) > 0 {
		mid := new(big.Int).Rsh(gap, 1)
		mid.Add(lower, mid)
		if pred(mid) {
			lower = mid
		} else {
			upper = mid
		}
	}

	return lower, nil
}

// MaxSatisfyingInt is a convenience wrapper over MaxSatisfying for predicates
// naturally expressed on machine integers.
func MaxSatisfyingInt(pred func(n int64) bool, initial int64, opts ...Option) (int64, error) {
	result, err := MaxSatisfying(func(n *big.Int) bool {
		return n.IsInt64() && pred(n.Int64())
	}, big.NewInt(initial), opts...)
	if err != nil {
		return 0, err
	}

	return result.Int64(), nil
}
