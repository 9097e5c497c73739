package arena

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestArena_AllocAlignedAndDisjoint(t *testing.T) {
	for _, align := range []uintptr{1, 2, 4, 8, 16, 64} {
		for _, size := range []uintptr{1, 3, 17, 256} {
			a := NewArena(align, size)
			seen := make(map[uintptr]bool)
			var ptrs []unsafe.Pointer
			for i := 0; i < 50; i++ {
				p := a.Alloc()
				require.NotNil(t, p)
				addr := uintptr(p)
				require.Zero(t, addr%a.align, "align=%d size=%d", align, size)
				require.False(t, seen[addr], "duplicate live address")
				seen[addr] = true
				ptrs = append(ptrs, p)
			}
			for _, p := range ptrs {
				a.Free(p)
			}
			require.Equal(t, 0, a.Stats().LiveChunks)
			a.Destroy()
		}
	}
}

// TestArena_RecycleLIFO inits an Arena(8,32), allocs 1000 chunks, frees
// the last 500 in reverse, allocs 500 more, and expects each to reuse one
// of the freed addresses in LIFO order.
func TestArena_RecycleLIFO(t *testing.T) {
	a := NewArena(8, 32)
	defer a.Destroy()

	ptrs := make([]unsafe.Pointer, 1000)
	for i := range ptrs {
		ptrs[i] = a.Alloc()
		require.NotNil(t, ptrs[i])
	}

	freed := ptrs[500:1000]
	for i := len(freed) - 1; i >= 0; i-- {
		a.Free(freed[i])
	}

	freedSet := make(map[unsafe.Pointer]bool, len(freed))
	for _, p := range freed {
		freedSet[p] = true
	}

	for i := 0; i < 500; i++ {
		p := a.Alloc()
		require.NotNil(t, p)
		require.True(t, freedSet[p], "reallocated pointer must come from the freed set")
		require.Equal(t, freed[i], p, "last freed chunk must be reused first")
	}
}

func TestArena_DestroyThenAllocReturnsNil(t *testing.T) {
	a := NewArena(8, 32)
	p := a.Alloc()
	require.NotNil(t, p)
	a.Destroy()
	require.Nil(t, a.Alloc())
}

func TestArena_GrowthDoubles(t *testing.T) {
	a := NewArena(8, 8)
	a.Alloc()
	afterFirstSlab := a.Stats()
	require.Equal(t, 1, afterFirstSlab.Slabs)

	for i := 0; i < afterFirstSlab.Capacity; i++ {
		a.Alloc()
	}
	afterSecondSlab := a.Stats()
	require.Equal(t, 2, afterSecondSlab.Slabs)
	require.Greater(t, afterSecondSlab.Capacity, afterFirstSlab.Capacity)
}
