// Package rank implements bijections between arbitrary-precision integers
// and combinatorial objects: fixed-size combinations (via the combinatorial
// number system), fixed-size multisets (via a rank-offset shift), and
// variable-size multisets and combinations over a finite alphabet (via epoch
// fitting over per-size object counts).
//
// Every pair of functions here is an exact inverse over its valid domain:
//
//	CombinationToInteger(IntegerToCombination(i, k)) == i
//	VarMultisetToInteger(IntegerToVarMultiset(i, n), n) == i
//
// and likewise object-first. The variable-size forms are self-delimiting:
// the object's size is recovered from the integer itself, so no length needs
// to be carried alongside.
//
// Combinations are represented as ascending []*big.Int with distinct
// non-negative elements; multisets use the multiset package with elements
// stored as *big.Int.
package rank
