// Package arena implements a fixed-shape slab allocator ([Arena]) and a
// variable-length-struct allocator built on top of it ([VArena]).
//
// # Overview
//
// [Arena] hands out chunks of one fixed (alignment, size) pair, backed by
// slabs allocated from the Go heap and doubling in element count as the
// arena grows. Freed chunks are recycled through an intrusive LIFO free
// list; slabs themselves are only released on [Arena.Destroy].
//
// [VArena] generalizes this to flexible structs — a fixed header followed
// by a caller-chosen number of trailing elements — by maintaining a bank of
// [Arena] values, one per power-of-two size class, and routing each
// allocation to the smallest class that fits.
//
// # Thread Safety
//
// Neither type is safe for concurrent use. Callers needing concurrent
// access must provide their own external synchronization; cross-goroutine
// sharing is out of scope for this package.
//
// # Example
//
//	a := arena.NewArena(unsafe.Alignof(uintptr(0)), unsafe.Sizeof(myStruct{}))
//	defer a.Destroy()
//	p := a.Alloc()
//	// ... use p ...
//	a.Free(p)
package arena
