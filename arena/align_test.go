package arena

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlignFloorCeil(t *testing.T) {
	cases := []struct {
		align, x, floor, ceil uintptr
	}{
		{8, 0, 0, 0},
		{8, 1, 0, 8},
		{8, 8, 8, 8},
		{8, 9, 8, 16},
		{64, 100, 64, 128},
		{1, 7, 7, 7},
	}
	for _, c := range cases {
		require.Equal(t, c.floor, AlignFloor(c.align, c.x))
		require.Equal(t, c.ceil, AlignCeil(c.align, c.x))
	}
}

func TestAlignCeilSaturates(t *testing.T) {
	const align = 8
	got := AlignCeil(align, math.MaxUint64-2)
	require.Equal(t, maxAlignedSentinel(align), got)
}

func TestIsPow2(t *testing.T) {
	require.True(t, isPow2(1))
	require.True(t, isPow2(2))
	require.True(t, isPow2(1024))
	require.False(t, isPow2(0))
	require.False(t, isPow2(3))
	require.False(t, isPow2(6))
}
