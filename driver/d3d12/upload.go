// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

// alignUp rounds x up to the next multiple of a.
// a must be a power of two.
func alignUp(x, a int64) int64 { return (x + a - 1) &^ (a - 1) }

// pageMeta is the CPU-side bookkeeping of one upload page.
// The native resource and its mapping live alongside it in
// the pool.
type pageMeta struct {
	len int64
	off int64
	// Generation the page was last allocated from.
	lastGen uint64
	// Oversized pages are created for single allocations
	// larger than uploadPageLen and are never pooled.
	oversized bool
}

// alloc bumps the page's offset by size, aligned to align,
// and returns the allocation's offset. It reports whether
// the request fits.
func (p *pageMeta) alloc(size, align int64) (off int64, ok bool) {
	off = alignUp(p.off, align)
	if off+size > p.len {
		return 0, false
	}
	p.off = off + size
	return off, true
}

// pageExpired returns whether a page last used at lastGen
// should return to the free list at generation gen.
func pageExpired(lastGen, gen uint64) bool {
	return gen > lastGen+pageRetireAge
}

// pageStale returns whether a free page last used at
// lastGen should be destroyed at generation gen.
func pageStale(lastGen, gen uint64) bool {
	return gen > lastGen+pageRetireAge+pageUnusedAge
}
