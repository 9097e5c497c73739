package arena

import (
	"math/bits"
	"unsafe"
)

// log2Ceil returns ⌈log2(x)⌉ for x >= 1.
func log2Ceil(x uintptr) uintptr {
	if x <= 1 {
		return 0
	}
	return uintptr(bits.Len(uint(x - 1)))
}

// VArena is a bank of [Arena] values, one per power-of-two size class,
// serving allocations of a flexible struct: a fixed header of at least min
// bytes (whose trailing array begins at byte offset offset) followed by a
// caller-chosen count of elemSize-byte elements.
//
// Not safe for concurrent use; see the package doc.
type VArena struct {
	align, min, offset, elemSize uintptr
	shift                        uintptr // see classIndex

	classes []*Arena // sparse; classes[k] is nil until first needed
}

// NewVArena creates an empty VArena for the given header/element shape.
// align must be a power of two.
func NewVArena(align, min, offset, elemSize uintptr) *VArena {
	if !isPow2(align) {
		panic("arena: align must be a power of two")
	}
	v := &VArena{align: align, min: min, offset: offset, elemSize: elemSize}
	v.shift = v.baseShift()
	return v
}

// baseShift computes shift = ceil(log2(ceil((min-offset)/elemSize))), or 0
// when min <= offset or elemSize is 0. classIndex uses it as the smallest
// log2 chunk size; classIndex's own clamp to min is what keeps every chunk
// at least min bytes.
func (v *VArena) baseShift() uintptr {
	if v.min <= v.offset || v.elemSize == 0 {
		return log2Ceil(1)
	}
	need := v.min - v.offset
	count := (need + v.elemSize - 1) / v.elemSize // ceil division
	return log2Ceil(count)
}

// classIndex maps an element count n to (a) the array index k identifying
// its size class and (b) that class's chunk size in bytes. It is the single
// function consulted by both Alloc and Free, so the two can never disagree
// about which class a given n maps to.
func (v *VArena) classIndex(n uintptr) (k, chunkBytes uintptr, overflow bool) {
	need := ArraySize(v.align, v.elemSize, n)
	sentinel := maxAlignedSentinel(v.align)
	if need == sentinel {
		return 0, 0, true
	}
	sum, carry := bits.Add(uint(need), uint(v.offset), 0)
	if carry != 0 {
		return 0, 0, true
	}
	need = uintptr(sum)
	if need < v.min {
		need = v.min
	}
	if need == 0 {
		need = 1
	}

	lg := log2Ceil(need)
	if lg < v.shift {
		lg = v.shift
	}
	if lg >= uintptr(bits.UintSize)-1 {
		return 0, 0, true
	}
	return lg - v.shift, uintptr(1) << lg, false
}

// ensureClass returns the Arena for class k, creating it (and growing the
// classes slice) if this is the first time k is needed.
func (v *VArena) ensureClass(k, chunkBytes uintptr) *Arena {
	if uintptr(len(v.classes)) <= k {
		grown := make([]*Arena, k+1)
		copy(grown, v.classes)
		v.classes = grown
	}
	if v.classes[k] == nil {
		v.classes[k] = NewArena(v.align, chunkBytes)
	}
	return v.classes[k]
}

// Alloc returns a pointer to a flexible struct sized for n trailing
// elements, or nil if the requested size saturates (see arena.ArraySize).
func (v *VArena) Alloc(n uintptr) unsafe.Pointer {
	k, chunkBytes, overflow := v.classIndex(n)
	if overflow {
		return nil
	}
	return v.ensureClass(k, chunkBytes).Alloc()
}

// Free returns p, previously allocated (or last reallocated) for n
// elements, to the arena. n must equal the count used at Alloc/Realloc
// time; a mismatched count is a contract violation and is undefined
// behavior, exactly as in C.
func (v *VArena) Free(p unsafe.Pointer, n uintptr) {
	if p == nil {
		return
	}
	k, _, overflow := v.classIndex(n)
	if overflow || uintptr(len(v.classes)) <= k || v.classes[k] == nil {
		panic("arena: varena free with invalid count")
	}
	v.classes[k].Free(p)
}

// Realloc resizes p from oldN to newN trailing elements. If oldN and newN
// map to the same size class, Realloc is a no-op and returns p unchanged.
// Otherwise it allocates a new chunk, copies
// min(oldN,newN)*elemSize+offset bytes, frees the original, and returns the
// new pointer. On allocation failure the original p remains valid and nil
// is returned.
func (v *VArena) Realloc(p unsafe.Pointer, oldN, newN uintptr) unsafe.Pointer {
	kOld, _, oldOverflow := v.classIndex(oldN)
	kNew, newBytes, newOverflow := v.classIndex(newN)
	if newOverflow {
		return nil
	}
	if !oldOverflow && kOld == kNew {
		return p
	}

	np := v.ensureClass(kNew, newBytes).Alloc()
	if np == nil {
		return nil
	}

	if p != nil {
		copyN := oldN
		if newN < copyN {
			copyN = newN
		}
		copyBytes := ArraySize(v.align, v.elemSize, copyN)
		if sum, carry := bits.Add(uint(copyBytes), uint(v.offset), 0); carry == 0 {
			copyBytes = uintptr(sum)
			src := unsafe.Slice((*byte)(p), copyBytes)
			dst := unsafe.Slice((*byte)(np), copyBytes)
			copy(dst, src)
		}
		v.Free(p, oldN)
	}
	return np
}

// Destroy releases every size class's slabs. The VArena must not be used
// afterward.
func (v *VArena) Destroy() {
	for _, a := range v.classes {
		if a != nil {
			a.Destroy()
		}
	}
	v.classes = nil
}

// VStats reports point-in-time bookkeeping about a VArena's size classes.
type VStats struct {
	Classes    int
	LiveChunks int
	Capacity   int
}

// Stats returns a snapshot aggregated across all active size classes.
func (v *VArena) Stats() VStats {
	var st VStats
	for _, a := range v.classes {
		if a == nil {
			continue
		}
		st.Classes++
		s := a.Stats()
		st.LiveChunks += s.LiveChunks
		st.Capacity += s.Capacity
	}
	return st
}
