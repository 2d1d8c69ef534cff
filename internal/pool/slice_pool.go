package pool

import "sync"

// Scratch-slice pools for the multiset algebra paths. The delta computations
// materialize per-element work lists before mutating a set; pooling keeps the
// repeated walks from allocating on every operation.
var (
	anySlicePool = sync.Pool{
		New: func() any { return &[]any{} },
	}
	intSlicePool = sync.Pool{
		New: func() any { return &[]int{} },
	}
)

// GetAnySlice retrieves an empty []any with at least the given capacity from
// the pool.
//
// The caller must call the returned cleanup function (typically with defer)
// to return the slice to the pool, and must not retain the slice afterwards.
func GetAnySlice(capacity int) ([]any, func()) {
	ptr, _ := anySlicePool.Get().(*[]any)
	slice := (*ptr)[:0]

	if cap(slice) < capacity {
		slice = make([]any, 0, capacity)
	}
	*ptr = slice

	return slice, func() {
		// Drop references so pooled memory does not pin caller values.
		clear((*ptr)[:cap(*ptr)])
		anySlicePool.Put(ptr)
	}
}

// GetIntSlice retrieves an empty []int with at least the given capacity from
// the pool.
//
// The caller must call the returned cleanup function (typically with defer)
// to return the slice to the pool, and must not retain the slice afterwards.
func GetIntSlice(capacity int) ([]int, func()) {
	ptr, _ := intSlicePool.Get().(*[]int)
	slice := (*ptr)[:0]

	if cap(slice) < capacity {
		slice = make([]int, 0, capacity)
	}
	*ptr = slice

	return slice, func() { intSlicePool.Put(ptr) }
}
