package arena

import "unsafe"

const (
	// minSlabBytes is the target size of the first slab; arenas whose
	// chunks are larger than this still get at least one chunk per slab.
	minSlabBytes = 4096

	// growthFactor is the multiplier applied to the chunk count of each
	// successive slab generation.
	growthFactor = 2
)

var pointerSize = unsafe.Sizeof(uintptr(0))
var pointerAlign = unsafe.Alignof(uintptr(0))

// Arena is a free-list-recycling slab allocator for one (align, size)
// pair. It is not safe for concurrent use; see the package doc.
type Arena struct { // betteralign:ignore
	align uintptr
	size  uintptr

	free unsafe.Pointer // head of the intrusive free list, or nil

	// slabCounts records the chunk count of every slab grown so far, for
	// Stats' Capacity figure. The slabs themselves are not referenced
	// here: each one is kept alive by the chunks from it still reachable
	// through the free list or held by a caller, since the garbage
	// collector tracks liveness per allocation rather than per byte.
	slabCounts []uintptr

	nextSlabChunks uintptr // chunk count to use for the next slab grown
	live           int     // outstanding (caller-owned) chunk count, for Stats
}

// NewArena creates an empty Arena for chunks of the given alignment and
// size. align is rounded up to at least the platform pointer alignment and
// size up to at least the platform pointer size, since a free chunk's first
// word doubles as the free-list link.
func NewArena(align, size uintptr) *Arena {
	if align < pointerAlign {
		align = pointerAlign
	}
	if !isPow2(align) {
		panic("arena: align must be a power of two")
	}
	size = AlignCeil(align, size)
	if size < pointerSize {
		size = AlignCeil(align, pointerSize)
	}

	baseChunks := minSlabBytes / size
	if baseChunks == 0 {
		baseChunks = 1
	}

	return &Arena{
		align:          align,
		size:           size,
		nextSlabChunks: baseChunks,
	}
}

// Alloc returns an uninitialized, size-byte, align-aligned chunk, or nil if
// the arena has been destroyed. Go's allocator does not expose OOM as a
// recoverable condition (see DESIGN.md), so nil is otherwise only returned
// here, never for transient pressure.
func (a *Arena) Alloc() unsafe.Pointer {
	if a.slabCounts == nil && a.free == nil && a.nextSlabChunks == 0 {
		// Destroyed: nextSlabChunks is zeroed by Destroy, slabCounts/free are nil.
		return nil
	}
	if a.free == nil {
		a.grow()
	}
	p := a.free
	a.free = chunkNext(p)
	a.live++
	return p
}

// Free returns p to the arena's free list. p must have been obtained from
// this Arena via Alloc and not already freed; violating either is a
// contract violation and is undefined behavior here, exactly as in C: a
// double-free silently corrupts the free list.
func (a *Arena) Free(p unsafe.Pointer) {
	if p == nil || a.nextSlabChunks == 0 {
		// nextSlabChunks is zero only after Destroy.
		return
	}
	setChunkNext(p, a.free)
	a.free = p
	a.live--
}

// Destroy releases every slab. The Arena must not be used afterward;
// Alloc on a destroyed Arena returns nil rather than panicking (see
// DESIGN.md's Open Question on allocation-failure semantics), and Free is a
// no-op once slabs are gone.
func (a *Arena) Destroy() {
	a.slabCounts = nil
	a.free = nil
	a.nextSlabChunks = 0
	a.live = 0
}

// Stats reports point-in-time bookkeeping about the arena.
type Stats struct {
	Align      uintptr
	Size       uintptr
	Slabs      int
	LiveChunks int
	Capacity   int // total chunks across all slabs allocated so far
}

// Stats returns a snapshot of the arena's current bookkeeping.
func (a *Arena) Stats() Stats {
	cap := 0
	for _, n := range a.slabCounts {
		cap += int(n)
	}
	return Stats{
		Align:      a.align,
		Size:       a.size,
		Slabs:      len(a.slabCounts),
		LiveChunks: a.live,
		Capacity:   cap,
	}
}

// grow allocates a new slab, sized for the arena's current nextSlabChunks,
// and threads every chunk in it onto the free list in reverse address
// order, so that the subsequent Alloc calls hand chunks out in ascending
// address order.
func (a *Arena) grow() {
	count := a.nextSlabChunks
	total := ArraySize(a.align, a.size, count)
	if total == maxAlignedSentinel(a.align) {
		// Overflow: fall back to a single chunk, which by construction
		// cannot overflow (size itself is a valid, previously-computed value).
		count = 1
		total = a.size
	}

	base := alloc(a.align, total)
	a.slabCounts = append(a.slabCounts, count)

	for i := count; i > 0; i-- {
		p := unsafe.Add(base, (i-1)*a.size)
		setChunkNext(p, a.free)
		a.free = p
	}

	a.nextSlabChunks = count * growthFactor
}

// chunkNext reads the free-list link stored in a free chunk's first word.
func chunkNext(p unsafe.Pointer) unsafe.Pointer {
	return *(*unsafe.Pointer)(p)
}

// setChunkNext writes the free-list link into a free chunk's first word.
func setChunkNext(p, next unsafe.Pointer) {
	*(*unsafe.Pointer)(p) = next
}
