package multiset

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"
)

var (
	// ErrNotFound reports a removal of an element with zero multiplicity.
	ErrNotFound = errors.New("element not found in multiset")
	// ErrEmpty reports a pop from an empty multiset.
	ErrEmpty = errors.New("multiset is empty")
)

// Multiset is a mutable multiset over arbitrary elements.
//
// Elements are kept in the canonical order defined by Compare, so two
// multisets with identical contents always enumerate identically regardless
// of insertion order. Elements must be structurally comparable under Compare
// and must not change identity-relevant value while stored.
//
// Element lookup is comparison-based: values that compare equal under the
// universal key are the same element, even across Go types (int(3) and
// big.NewInt(3) share one multiplicity).
//
// A Multiset is an ordinary mutable container; it is not safe for concurrent
// mutation.
type Multiset struct {
	elems []any // sorted by Compare
}

// Count pairs an element with a multiplicity.
type Count struct {
	Elem any
	N    int
}

// New creates a multiset holding the given items.
func New(items ...any) *Multiset {
	m := &Multiset{}
	m.Extend(items...)

	return m
}

// FromCounts creates a multiset from (element, multiplicity) pairs.
// Multiplicities must be non-negative; zero entries are dropped.
func FromCounts(counts []Count) (*Multiset, error) {
	m := &Multiset{}
	for _, c := range counts {
		if c.N < 0 {
			return nil, fmt.Errorf("negative multiplicity %d for element %v", c.N, c.Elem)
		}
		m.addQuantity(c.Elem, c.N)
	}

	return m, nil
}

// Len returns the total number of elements, counting repeats.
func (m *Multiset) Len() int {
	return len(m.elems)
}

// Distinct returns the number of distinct elements (the support size).
func (m *Multiset) Distinct() int {
	n := 0
	for i := range m.elems {
		if i == 0 || Compare(m.elems[i-1], m.elems[i]) != 0 {
			n++
		}
	}

	return n
}

// lowerBound returns the index of the first stored element that is not less
// than elem.
func (m *Multiset) lowerBound(elem any) int {
	return sort.Search(len(m.elems), func(i int) bool {
		return Compare(m.elems[i], elem) >= 0
	})
}

// run returns the half-open index range of stored elements equal to elem.
func (m *Multiset) run(elem any) (int, int) {
	start := m.lowerBound(elem)
	end := start
	for end < len(m.elems) && Compare(m.elems[end], elem) == 0 {
		end++
	}

	return start, end
}

// Add increases the multiplicity of elem by one.
func (m *Multiset) Add(elem any) {
	m.elems = slices.Insert(m.elems, m.lowerBound(elem), elem)
}

// Extend increases the multiplicity of each item by its number of
// occurrences in items.
func (m *Multiset) Extend(items ...any) {
	for _, item := range items {
		m.Add(item)
	}
}

func (m *Multiset) addQuantity(elem any, n int) {
	if n <= 0 {
		return
	}
	at := m.lowerBound(elem)
	repeats := make([]any, n)
	for i := range repeats {
		repeats[i] = elem
	}
	m.elems = slices.Insert(m.elems, at, repeats...)
}

// removeQuantity removes exactly n occurrences of elem. Callers must have
// established that at least n are present.
func (m *Multiset) removeQuantity(elem any, n int) {
	if n <= 0 {
		return
	}
	start, _ := m.run(elem)
	m.elems = slices.Delete(m.elems, start, start+n)
}

// Remove decreases the multiplicity of elem by exactly one.
// Returns an error wrapping ErrNotFound if elem has zero multiplicity.
func (m *Multiset) Remove(elem any) error {
	start, end := m.run(elem)
	if start == end {
		return fmt.Errorf("%w: %v", ErrNotFound, elem)
	}
	m.elems = slices.Delete(m.elems, start, start+1)

	return nil
}

// Discard sets the multiplicity of elem to zero. Unlike Remove it is not an
// error if elem is already absent.
func (m *Multiset) Discard(elem any) {
	start, end := m.run(elem)
	m.elems = slices.Delete(m.elems, start, end)
}

// Pop removes and returns the least element under the universal key.
// Returns an error wrapping ErrEmpty if the multiset is empty.
func (m *Multiset) Pop() (any, error) {
	if len(m.elems) == 0 {
		return nil, fmt.Errorf("pop: %w", ErrEmpty)
	}
	least := m.elems[0]
	m.elems = slices.Delete(m.elems, 0, 1)

	return least, nil
}

// Clear removes all elements.
func (m *Multiset) Clear() {
	m.elems = m.elems[:0]
}

// Count returns the multiplicity of elem, zero if absent.
func (m *Multiset) Count(elem any) int {
	start, end := m.run(elem)

	return end - start
}

// Contains reports whether elem has positive multiplicity.
func (m *Multiset) Contains(elem any) bool {
	start := m.lowerBound(elem)

	return start < len(m.elems) && Compare(m.elems[start], elem) == 0
}

// Clone returns an independent copy. The copy shares no storage with m.
func (m *Multiset) Clone() *Multiset {
	return &Multiset{elems: slices.Clone(m.elems)}
}

// All iterates every element, repeats included, in canonical order.
func (m *Multiset) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, elem := range m.elems {
			if !yield(elem) {
				return
			}
		}
	}
}

// Counts iterates each distinct element with its multiplicity, in canonical
// order.
func (m *Multiset) Counts() iter.Seq2[any, int] {
	return func(yield func(any, int) bool) {
		i := 0
		for i < len(m.elems) {
			j := i + 1
			for j < len(m.elems) && Compare(m.elems[i], m.elems[j]) == 0 {
				j++
			}
			if !yield(m.elems[i], j-i) {
				return
			}
			i = j
		}
	}
}

// Elements returns all elements, repeats included, in canonical order.
// The returned slice is a copy.
func (m *Multiset) Elements() []any {
	return slices.Clone(m.elems)
}

func (m *Multiset) String() string {
	var sb strings.Builder
	sb.WriteString("Multiset[")
	for i, elem := range m.elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", elem)
	}
	sb.WriteByte(']')

	return sb.String()
}
