package multiset

import (
	"github.com/bagcodec/bagcodec/internal/pool"
)

// The set operations all run over a simultaneous merge walk of their
// operands: every distinct element is visited once, in universal-key order,
// together with its multiplicity in each operand. Each operation is then a
// pure function of that multiplicity tuple. The walk streams over the sorted
// element runs, so no counter maps are materialized.

// groupCounts walks all operands in canonical order and calls visit once per
// distinct element with the per-operand multiplicities. The counts slice is
// reused between calls; visit must not retain it.
func groupCounts(sets []*Multiset, visit func(elem any, counts []int) bool) {
	pos := make([]int, len(sets))
	counts := make([]int, len(sets))

	for {
		// Least current element across all operands.
		var cur any
		found := false
		for si, s := range sets {
			if pos[si] >= len(s.elems) {
				continue
			}
			head := s.elems[pos[si]]
			if !found || Compare(head, cur) < 0 {
				cur = head
				found = true
			}
		}
		if !found {
			return
		}

		// Consume the equal run from every operand.
		for si, s := range sets {
			n := 0
			for pos[si] < len(s.elems) && Compare(s.elems[pos[si]], cur) == 0 {
				pos[si]++
				n++
			}
			counts[si] = n
		}

		if !visit(cur, counts) {
			return
		}
	}
}

func operands(m *Multiset, others []*Multiset) []*Multiset {
	sets := make([]*Multiset, 0, len(others)+1)
	sets = append(sets, m)
	for _, o := range others {
		if o == nil {
			o = &Multiset{}
		}
		sets = append(sets, o)
	}

	return sets
}

// combine builds a fresh multiset whose per-element multiplicity is
// per(counts). The walk yields elements in canonical order, so the result's
// storage can be appended directly.
func combine(sets []*Multiset, per func(counts []int) int) *Multiset {
	result := &Multiset{}
	groupCounts(sets, func(elem any, counts []int) bool {
		for range per(counts) {
			result.elems = append(result.elems, elem)
		}

		return true
	})

	return result
}

func maxOf(counts []int) int {
	best := counts[0]
	for _, c := range counts[1:] {
		best = max(best, c)
	}

	return best
}

func minOf(counts []int) int {
	least := counts[0]
	for _, c := range counts[1:] {
		least = min(least, c)
	}

	return least
}

// flooredDiff subtracts each later count from the first, flooring at zero
// after every step (left-associative).
func flooredDiff(counts []int) int {
	remaining := counts[0]
	for _, c := range counts[1:] {
		remaining = max(0, remaining-c)
	}

	return remaining
}

func absDiff(counts []int) int {
	d := counts[0] - counts[1]
	if d < 0 {
		return -d
	}

	return d
}

// Union returns a new multiset where each element's multiplicity is the
// maximum over m and all others. Note that New(1, 1, 2).Union(New(2)) equals
// New(1, 1, 2); for multiplicity addition use Sum or Extend.
func (m *Multiset) Union(others ...*Multiset) *Multiset {
	return combine(operands(m, others), maxOf)
}

// Intersection returns a new multiset where each element's multiplicity is
// the minimum over m and all others.
func (m *Multiset) Intersection(others ...*Multiset) *Multiset {
	return combine(operands(m, others), minOf)
}

// Difference returns a new multiset holding m's multiplicities with each
// other's subtracted in turn, flooring at zero after every subtraction.
func (m *Multiset) Difference(others ...*Multiset) *Multiset {
	return combine(operands(m, others), flooredDiff)
}

// SymmetricDifference returns a new multiset where each element's
// multiplicity is the absolute difference between the two operands.
func (m *Multiset) SymmetricDifference(other *Multiset) *Multiset {
	return combine(operands(m, []*Multiset{other}), absDiff)
}

// Sum returns a new multiset where each element's multiplicity is the total
// over m and all others (true multiplicity addition, unlike Union).
func (m *Multiset) Sum(others ...*Multiset) *Multiset {
	result := m.Clone()
	for _, o := range others {
		if o == nil {
			continue
		}
		result.Extend(o.elems...)
	}

	return result
}

// applyPer mutates m so that each element's multiplicity becomes
// per(counts), applying the minimal add/remove delta rather than rebuilding.
func (m *Multiset) applyPer(others []*Multiset, per func(counts []int) int) {
	elems, cleanupElems := pool.GetAnySlice(len(m.elems))
	defer cleanupElems()
	deltas, cleanupDeltas := pool.GetIntSlice(len(m.elems))
	defer cleanupDeltas()

	groupCounts(operands(m, others), func(elem any, counts []int) bool {
		if d := per(counts) - counts[0]; d != 0 {
			elems = append(elems, elem)
			deltas = append(deltas, d)
		}

		return true
	})

	for i, elem := range elems {
		if d := deltas[i]; d > 0 {
			m.addQuantity(elem, d)
		} else {
			m.removeQuantity(elem, -d)
		}
	}
}

// Update raises m's multiplicities to the union with all others.
func (m *Multiset) Update(others ...*Multiset) {
	m.applyPer(others, maxOf)
}

// IntersectionUpdate lowers m's multiplicities to the intersection with all
// others.
func (m *Multiset) IntersectionUpdate(others ...*Multiset) {
	m.applyPer(others, minOf)
}

// DifferenceUpdate subtracts each other's multiplicities from m in turn,
// flooring at zero after every subtraction.
func (m *Multiset) DifferenceUpdate(others ...*Multiset) {
	m.applyPer(others, flooredDiff)
}

// SymmetricDifferenceUpdate replaces m's multiplicities with the absolute
// difference against other.
func (m *Multiset) SymmetricDifferenceUpdate(other *Multiset) {
	m.applyPer([]*Multiset{other}, absDiff)
}

// IsSubset reports whether every element's multiplicity in m is at most its
// multiplicity in other.
func (m *Multiset) IsSubset(other *Multiset) bool {
	ok := true
	groupCounts(operands(m, []*Multiset{other}), func(_ any, counts []int) bool {
		if counts[0] > counts[1] {
			ok = false
		}

		return ok
	})

	return ok
}

// IsSuperset reports whether every element's multiplicity in other is at
// most its multiplicity in m.
func (m *Multiset) IsSuperset(other *Multiset) bool {
	if other == nil {
		return true
	}

	return other.IsSubset(m)
}

// IsDisjoint reports whether no element has positive multiplicity in both m
// and other.
func (m *Multiset) IsDisjoint(other *Multiset) bool {
	ok := true
	groupCounts(operands(m, []*Multiset{other}), func(_ any, counts []int) bool {
		if minOf(counts) > 0 {
			ok = false
		}

		return ok
	})

	return ok
}

// Equal reports whether every element has identical multiplicity in m and
// other. Subset comparisons form a partial order; Equal with IsSubset gives
// proper-subset tests.
func (m *Multiset) Equal(other *Multiset) bool {
	if other == nil {
		return len(m.elems) == 0
	}
	if len(m.elems) != len(other.elems) {
		return false
	}

	eq := true
	groupCounts([]*Multiset{m, other}, func(_ any, counts []int) bool {
		if counts[0] != counts[1] {
			eq = false
		}

		return eq
	})

	return eq
}
