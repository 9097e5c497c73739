package arena

import "math/bits"

// ArraySize returns elemSize*n, saturating at the largest align-aligned
// uintptr value (^(align-1)) instead of wrapping if the multiplication
// would overflow. align must be a power of two.
//
// On a 64-bit system, ArraySize(8, 16, maxUint) returns 0xFFFF...F8.
func ArraySize(align, elemSize, n uintptr) uintptr {
	hi, lo := bits.Mul(uint(elemSize), uint(n))
	if hi != 0 {
		return maxAlignedSentinel(align)
	}
	return uintptr(lo)
}

// FlexSize computes the total size of a flexible struct: a header of at
// least min bytes (with the trailing array beginning at byte offset
// offset), followed by n elements of size elemSize, aligned to align.
//
// Algorithm:
//  1. compute elemSize*n + offset, saturating at every step;
//  2. floor-align the result to align;
//  3. if min exceeds align-ceil(offset) — i.e. the declared struct has
//     trailing padding beyond what alignment alone would require — clamp
//     the result up to min, so FlexSize(align, min, offset, elemSize, 0)
//     returns at least min in that case. When min does not exceed
//     align-ceil(offset), no clamp applies, and a result floored below an
//     unaligned offset can be smaller than min.
func FlexSize(align, min, offset, elemSize, n uintptr) uintptr {
	arr := ArraySize(align, elemSize, n)
	sentinel := maxAlignedSentinel(align)
	if arr == sentinel {
		return sentinel
	}

	sum, carry := bits.Add(uint(arr), uint(offset), 0)
	if carry != 0 {
		return sentinel
	}

	total := AlignFloor(align, uintptr(sum))

	if min > AlignCeil(align, offset) && total < min {
		total = min
	}
	return total
}
