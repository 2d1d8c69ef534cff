package multiset

import (
	"cmp"
	"math"
	"math/big"
	"strings"

	"github.com/bagcodec/bagcodec/internal/hash"
)

// Tuple is an immutable ordered sequence element. Tuples order after all
// numeric values and before all opaque values, lexicographically by the
// universal key of their items, so arbitrarily nested tuples are fully
// ordered without any caller-supplied comparison.
type Tuple []any

// Universal-key categories. Numbers sort first, tuples second, everything
// else last.
const (
	categoryNumeric = iota
	categoryTuple
	categoryOpaque
)

func category(v any) int {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, *big.Int:
		return categoryNumeric
	case float32:
		if isFinite(float64(n)) {
			return categoryNumeric
		}
		return categoryOpaque
	case float64:
		if isFinite(n) {
			return categoryNumeric
		}
		return categoryOpaque
	case Tuple:
		return categoryTuple
	default:
		return categoryOpaque
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Compare is the universal key: a total order over arbitrary values.
//
// Numeric values (all Go integer and finite float kinds, plus *big.Int)
// order first, by numeric value regardless of Go type; Tuples order second,
// lexicographically by recursive application of this same order; all other
// values order last, by a stable discriminator with no meaning beyond
// consistency within one process.
//
// Returns -1, 0, or +1 as a sorts before, equal to, or after b. Values
// comparing equal are the same multiset element: Compare(int(3),
// big.NewInt(3)) == 0.
func Compare(a, b any) int {
	ca, cb := category(a), category(b)
	if ca != cb {
		return cmp.Compare(ca, cb)
	}

	switch ca {
	case categoryNumeric:
		return compareNumeric(a, b)
	case categoryTuple:
		return compareTuple(a.(Tuple), b.(Tuple))
	default:
		return compareOpaque(a, b)
	}
}

func compareNumeric(a, b any) int {
	// Fast paths for the dominant element types.
	switch av := a.(type) {
	case int:
		if bv, ok := b.(int); ok {
			return cmp.Compare(av, bv)
		}
	case *big.Int:
		if bv, ok := b.(*big.Int); ok {
			return av.Cmp(bv)
		}
	}

	return toRat(a).Cmp(toRat(b))
}

// toRat widens any numeric element to an exact rational. Only called for
// values already classified as numeric.
func toRat(v any) *big.Rat {
	r := new(big.Rat)
	switch n := v.(type) {
	case int:
		r.SetInt64(int64(n))
	case int8:
		r.SetInt64(int64(n))
	case int16:
		r.SetInt64(int64(n))
	case int32:
		r.SetInt64(int64(n))
	case int64:
		r.SetInt64(n)
	case uint:
		r.SetUint64(uint64(n))
	case uint8:
		r.SetUint64(uint64(n))
	case uint16:
		r.SetUint64(uint64(n))
	case uint32:
		r.SetUint64(uint64(n))
	case uint64:
		r.SetUint64(n)
	case float32:
		r.SetFloat64(float64(n))
	case float64:
		r.SetFloat64(n)
	case *big.Int:
		r.SetInt(n)
	}

	return r
}

func compareTuple(a, b Tuple) int {
	for i := range min(len(a), len(b)) {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

func compareOpaque(a, b any) int {
	ha, hb := hash.Opaque(a), hash.Opaque(b)
	if ha != hb {
		return cmp.Compare(ha, hb)
	}

	// Hash tie: fall back to the renderings themselves so distinct values
	// still order deterministically.
	return strings.Compare(hash.Render(a), hash.Render(b))
}
