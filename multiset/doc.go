// Package multiset provides a mutable multiset over arbitrary elements with
// multiplicity-aware set algebra.
//
// A multiset is a mapping from element to non-negative multiplicity: repeats
// are permitted and distinguishable only by count, never by identity or
// insertion order. Iteration always follows one canonical total order (the
// universal key implemented by Compare), so equal multisets enumerate
// identically however they were built.
//
// # Universal key
//
// Compare orders genuinely heterogeneous elements without any caller-defined
// comparison: numeric values first (by value, across Go numeric types),
// Tuple sequences second (lexicographically, recursively), and everything
// else last (by a stable xxHash64 discriminator). Non-finite floats have no
// numeric value to order by and fall into the opaque category.
//
// # Algebra
//
// All operations use multiset semantics over multiplicity tuples:
//
//	Union                max(a, b)
//	Intersection         min(a, b)
//	Difference           max(0, a-b), left-associative over several operands
//	SymmetricDifference  |a - b|
//	Sum                  a + b
//
// Note the Union/Sum distinction: Union caps at the larger multiplicity,
// Sum adds. The in-place variants (Update, IntersectionUpdate,
// DifferenceUpdate, SymmetricDifferenceUpdate) reach the same target
// multiplicities by applying minimal deltas instead of rebuilding.
//
// Subset comparison is a partial order: New(1, 1) and New(1, 2) are neither
// subset nor superset of each other.
//
// A Multiset is an ordinary mutable container with single-owner storage.
// Algebra results are always freshly allocated and never alias an operand.
// Callers sharing a Multiset across goroutines must serialize access.
package multiset
