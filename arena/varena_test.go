package arena

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// TestVArena_ClassBoundary checks the worked example: with
// A=8, min=24, off=16, esz=8, shift is 0; alloc(1) and alloc(2) share a
// class, alloc(3) does not.
func TestVArena_ClassBoundary(t *testing.T) {
	v := NewVArena(8, 24, 16, 8)
	require.Equal(t, uintptr(0), v.shift)

	k1, _, overflow1 := v.classIndex(1)
	require.False(t, overflow1)
	k2, _, overflow2 := v.classIndex(2)
	require.False(t, overflow2)
	k3, _, overflow3 := v.classIndex(3)
	require.False(t, overflow3)

	require.Equal(t, k1, k2)
	require.NotEqual(t, k2, k3)
}

func TestVArena_ClassIndexDeterministic(t *testing.T) {
	v := NewVArena(8, 24, 16, 8)
	for n := uintptr(0); n < 200; n++ {
		k1, s1, o1 := v.classIndex(n)
		k2, s2, o2 := v.classIndex(n)
		require.Equal(t, k1, k2)
		require.Equal(t, s1, s2)
		require.Equal(t, o1, o2)
	}
}

func TestVArena_AllocFreeRoundTrip(t *testing.T) {
	v := NewVArena(8, 24, 16, 8)
	defer v.Destroy()

	for n := uintptr(0); n < 64; n++ {
		p := v.Alloc(n)
		require.NotNil(t, p)
		v.Free(p, n)
	}
}

// TestVArena_ReallocSameClassNoOp checks that Realloc(p, n, n) is a no-op
// that preserves content.
func TestVArena_ReallocSameClassNoOp(t *testing.T) {
	v := NewVArena(8, 24, 16, 8)
	defer v.Destroy()

	p := v.Alloc(4)
	require.NotNil(t, p)
	b := unsafe.Slice((*byte)(p), 8+16)
	b[0] = 0xAB

	p2 := v.Realloc(p, 4, 4)
	require.NotNil(t, p2)
	b2 := unsafe.Slice((*byte)(p2), 8+16)
	require.Equal(t, byte(0xAB), b2[0])
}

func TestVArena_ReallocGrowsAndCopies(t *testing.T) {
	v := NewVArena(8, 24, 16, 8)
	defer v.Destroy()

	p := v.Alloc(1)
	require.NotNil(t, p)
	oldBytes := FlexSize(8, 24, 16, 8, 1)
	b := unsafe.Slice((*byte)(p), oldBytes)
	for i := range b {
		b[i] = byte(i + 1)
	}
	want := append([]byte(nil), b...)

	grown := v.Realloc(p, 1, 10)
	require.NotNil(t, grown)

	// p itself may have been recycled as part of Realloc (it mapped to a
	// different size class than n=10), so only the copy survives.
	gb := unsafe.Slice((*byte)(grown), oldBytes)
	require.Equal(t, want, gb)

	v.Free(grown, 10)
}

func TestVArena_Stats(t *testing.T) {
	v := NewVArena(8, 24, 16, 8)
	defer v.Destroy()

	for n := uintptr(0); n < 10; n++ {
		v.Alloc(n)
	}
	st := v.Stats()
	require.Greater(t, st.Classes, 0)
	require.Greater(t, st.LiveChunks, 0)
}
