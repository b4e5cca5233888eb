// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

// ringAlloc is the cursor of a ring descriptor heap.
// Allocation is a bump pointer that wraps to zero when the
// request does not fit in the remaining space. Callers must
// size the ring to hold at least one frame's worth of
// allocations, since wrapped space is reused without
// further synchronization.
type ringAlloc struct {
	len int
	cur int
}

// alloc reserves n contiguous slots and returns the offset
// of the first one. It panics if n exceeds the ring's
// length.
func (r *ringAlloc) alloc(n int) int {
	if n > r.len {
		panic("d3d12: ring allocation too large")
	}
	if r.cur+n > r.len {
		r.cur = 0
	}
	off := r.cur
	r.cur += n
	return off
}

// reset rewinds the cursor.
func (r *ringAlloc) reset() { r.cur = 0 }
