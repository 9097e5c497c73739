package arena

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestArraySize_Saturates checks that on a 64-bit system, ArraySize(8, 16,
// MaxUint) returns the 8-aligned sentinel rather than wrapping.
func TestArraySize_Saturates(t *testing.T) {
	got := ArraySize(8, 16, math.MaxUint64)
	require.Equal(t, maxAlignedSentinel(8), got)
}

func TestArraySize_Exact(t *testing.T) {
	require.Equal(t, uintptr(160), ArraySize(8, 16, 10))
	require.Equal(t, uintptr(0), ArraySize(8, 16, 0))
}

// TestArraySize_NeverBetween checks that ArraySize either equals
// elemSize*n exactly, or equals the saturating sentinel — nothing in
// between.
func TestArraySize_NeverBetween(t *testing.T) {
	const align, elemSize = 8, 3
	sentinel := maxAlignedSentinel(align)
	for _, n := range []uintptr{0, 1, 2, 100, 1 << 20, math.MaxUint64, math.MaxUint64 / 2} {
		got := ArraySize(align, elemSize, n)
		if got == sentinel {
			continue
		}
		require.Equal(t, elemSize*n, got)
	}
}

func TestFlexSize_MonotonicAndFloor(t *testing.T) {
	const align, min, off, esz = 8, 24, 16, 8

	// FlexSize(..., 0) must still cover at least the header's minimum size.
	require.GreaterOrEqual(t, FlexSize(align, min, off, esz, 0), uintptr(min))

	var prev uintptr
	for n := uintptr(0); n <= 64; n++ {
		got := FlexSize(align, min, off, esz, n)
		require.Zero(t, got%align, "n=%d not aligned", n)
		require.GreaterOrEqual(t, got, prev, "n=%d not monotonic", n)
		prev = got
	}
}

func TestFlexSize_NoExtraPaddingBelowMin(t *testing.T) {
	// min <= align_ceil(A, off): no clamping should occur beyond normal
	// alignment, so no clamping beyond that should occur.
	const align, min, off, esz = 8, 8, 16, 8
	got := FlexSize(align, min, off, esz, 0)
	require.Equal(t, uintptr(16), got) // off alone, already >= min
}
