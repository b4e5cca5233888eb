// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"errors"
	"sync"
	"unsafe"

	"gviegas/arke/driver"
	"gviegas/arke/internal/d3d"
)

var errQueryFull = errors.New("d3d12: too many queries in flight")

// queryHeap wraps a native query heap and the readback
// buffer its batches resolve into.
// Slots are handed out in batches that resolve together;
// one resolve per frame in the common case, plus mid-frame
// resolves when the heap fills up.
type queryHeap struct {
	d       *Driver
	typ     d3d.QUERY_TYPE
	heap    *d3d.ID3D12QueryHeap
	rb      *d3d.ID3D12Resource
	ptr     unsafe.Pointer
	mu      sync.Mutex
	batches batchList
	// Closed batches whose resolve has been recorded but
	// whose submission has not been assigned a fence
	// value yet.
	pending []int
}

func newQueryHeap(d *Driver, heapTyp d3d.QUERY_HEAP_TYPE, typ d3d.QUERY_TYPE) (*queryHeap, error) {
	desc := d3d.QUERY_HEAP_DESC{
		Type:  heapTyp,
		Count: queryHeapLen,
	}
	heap, err := d.dev.CreateQueryHeap(&desc)
	if err != nil {
		return nil, err
	}
	props := d3d.HEAP_PROPERTIES{Type: d3d.HEAP_TYPE_READBACK}
	rdesc := d3d.RESOURCE_DESC{
		Dimension:        d3d.RESOURCE_DIMENSION_BUFFER,
		Width:            queryHeapLen * 8,
		Height:           1,
		DepthOrArraySize: 1,
		MipLevels:        1,
		SampleDesc:       d3d.SAMPLE_DESC{Count: 1},
		Layout:           d3d.TEXTURE_LAYOUT_ROW_MAJOR,
	}
	rb, err := d.dev.CreateCommittedResource(&props, d3d.HEAP_FLAG_NONE, &rdesc, d3d.RESOURCE_STATE_COPY_DEST)
	if err != nil {
		heap.Release()
		return nil, err
	}
	ptr, err := rb.Map(0, nil)
	if err != nil {
		rb.Release()
		heap.Release()
		return nil, err
	}
	return &queryHeap{
		d:       d,
		typ:     typ,
		heap:    heap,
		rb:      rb,
		ptr:     ptr,
		batches: newBatchList(queryHeapLen),
	}, nil
}

// allocSlots reserves n contiguous slots, resolving the open
// batch mid-frame when it cannot grow any further.
func (h *queryHeap) allocSlots(list *d3d.ID3D12GraphicsCommandList, n int) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if slot, ok := h.batches.alloc(n); ok {
		return slot, nil
	}
	h.resolveLocked(list)
	slot, ok := h.batches.alloc(n)
	if !ok {
		return 0, errQueryFull
	}
	return slot, nil
}

// resolve closes the open batch and records its resolve into
// the readback buffer. Call once before submitting the list,
// then sync with the submission's fence value.
func (h *queryHeap) resolve(list *d3d.ID3D12GraphicsCommandList) {
	h.mu.Lock()
	h.resolveLocked(list)
	h.mu.Unlock()
}

func (h *queryHeap) resolveLocked(list *d3d.ID3D12GraphicsCommandList) {
	var freq uint64
	if h.typ == d3d.QUERY_TYPE_TIMESTAMP {
		freq = h.d.qu.timestampFrequency()
	}
	closed, ok := h.batches.end(0, freq)
	if !ok {
		return
	}
	// Resolved data overwrites whatever previous batches
	// left in the same slots.
	for i := len(h.batches.done) - 2; i >= 0; i-- {
		b := h.batches.done[i]
		if b.start < closed.start+closed.n && closed.start < b.start+b.n {
			h.batches.remove(i)
			for j, p := range h.pending {
				if p == i {
					h.pending = append(h.pending[:j], h.pending[j+1:]...)
					break
				} else if p > i {
					h.pending[j]--
				}
			}
		}
	}
	list.ResolveQueryData(h.heap, h.typ, uint32(closed.start), uint32(closed.n), h.rb, uint64(closed.start)*8)
	h.pending = append(h.pending, len(h.batches.done)-1)
}

// sync assigns the submission's fence value to every batch
// resolved since the last sync.
func (h *queryHeap) sync(fence uint64) {
	h.mu.Lock()
	for _, i := range h.pending {
		h.batches.done[i].fence = fence
	}
	h.pending = h.pending[:0]
	h.mu.Unlock()
}

// lookup returns the sync-point and frequency guarding the
// slot's resolved data. It reports failure while the slot is
// still in the open batch or pending a fence value.
func (h *queryHeap) lookup(slot int) (fence, freq uint64, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	i := h.batches.find(slot)
	if i < 0 || h.batches.done[i].fence == 0 {
		return 0, 0, false
	}
	return h.batches.done[i].fence, h.batches.done[i].freq, true
}

// read returns the resolved 64-bit value of a slot.
func (h *queryHeap) read(slot int) uint64 {
	return *(*uint64)(unsafe.Add(h.ptr, slot*8))
}

func (h *queryHeap) destroy() {
	if h == nil {
		return
	}
	if h.rb != nil {
		h.rb.Unmap(0, &d3d.RANGE{})
		h.rb.Release()
	}
	if h.heap != nil {
		h.heap.Release()
	}
	*h = queryHeap{}
}

// timerQuery implements driver.TimerQuery.
// Each measurement takes a pair of timestamp slots.
type timerQuery struct {
	d      *Driver
	slot   int
	active bool
	cached bool
	val    float64
}

// begin allocates a fresh slot pair and stamps the first.
func (q *timerQuery) begin(list *d3d.ID3D12GraphicsCommandList) error {
	slot, err := q.d.tsHeap.allocSlots(list, 2)
	if err != nil {
		return err
	}
	q.slot = slot
	q.active = true
	q.cached = false
	list.EndQuery(q.d.tsHeap.heap, d3d.QUERY_TYPE_TIMESTAMP, uint32(slot))
	return nil
}

// end stamps the second slot.
func (q *timerQuery) end(list *d3d.ID3D12GraphicsCommandList) {
	list.EndQuery(q.d.tsHeap.heap, d3d.QUERY_TYPE_TIMESTAMP, uint32(q.slot+1))
}

// Ready implements driver.TimerQuery.
func (q *timerQuery) Ready() bool {
	if q.cached {
		return true
	}
	if !q.active {
		return false
	}
	fence, _, ok := q.d.tsHeap.lookup(q.slot)
	return ok && q.d.qu.fen.isComplete(fence)
}

// Microseconds implements driver.TimerQuery.
func (q *timerQuery) Microseconds(wait bool) (float64, error) {
	if q.cached {
		return q.val, nil
	}
	if !q.active {
		return 0, driver.ErrNotReady
	}
	fence, freq, ok := q.d.tsHeap.lookup(q.slot)
	if !ok {
		if !wait {
			return 0, driver.ErrNotReady
		}
		// The measurement's batch is still open or has no
		// fence value yet. Submit what has been recorded so
		// far to create the sync-point.
		if err := q.d.ctx.flush(false); err != nil {
			return 0, err
		}
		if fence, freq, ok = q.d.tsHeap.lookup(q.slot); !ok {
			return 0, driver.ErrNotReady
		}
	}
	if !q.d.qu.fen.isComplete(fence) {
		if !wait {
			return 0, driver.ErrNotReady
		}
		if err := q.d.qu.waitForFence(fence); err != nil {
			return 0, err
		}
	}
	start := q.d.tsHeap.read(q.slot)
	end := q.d.tsHeap.read(q.slot + 1)
	q.val = timerMicros(start, end, freq)
	q.cached = true
	q.active = false
	return q.val, nil
}

// Destroy implements driver.Destroyer.
func (q *timerQuery) Destroy() {
	if q == nil {
		return
	}
	*q = timerQuery{}
}

// occlusionQuery implements driver.OcclusionQuery.
type occlusionQuery struct {
	d      *Driver
	slot   int
	active bool
	cached bool
	val    uint64
}

// begin allocates a fresh slot and opens the query there.
func (q *occlusionQuery) begin(list *d3d.ID3D12GraphicsCommandList) error {
	slot, err := q.d.occHeap.allocSlots(list, 1)
	if err != nil {
		return err
	}
	q.slot = slot
	q.active = true
	q.cached = false
	list.BeginQuery(q.d.occHeap.heap, d3d.QUERY_TYPE_OCCLUSION, uint32(slot))
	return nil
}

func (q *occlusionQuery) end(list *d3d.ID3D12GraphicsCommandList) {
	list.EndQuery(q.d.occHeap.heap, d3d.QUERY_TYPE_OCCLUSION, uint32(q.slot))
}

// Ready implements driver.OcclusionQuery.
func (q *occlusionQuery) Ready() bool {
	if q.cached {
		return true
	}
	if !q.active {
		return false
	}
	fence, _, ok := q.d.occHeap.lookup(q.slot)
	return ok && q.d.qu.fen.isComplete(fence)
}

// Samples implements driver.OcclusionQuery.
func (q *occlusionQuery) Samples(wait bool) (uint64, error) {
	if q.cached {
		return q.val, nil
	}
	if !q.active {
		return 0, driver.ErrNotReady
	}
	fence, _, ok := q.d.occHeap.lookup(q.slot)
	if !ok {
		if !wait {
			return 0, driver.ErrNotReady
		}
		if err := q.d.ctx.flush(false); err != nil {
			return 0, err
		}
		if fence, _, ok = q.d.occHeap.lookup(q.slot); !ok {
			return 0, driver.ErrNotReady
		}
	}
	if !q.d.qu.fen.isComplete(fence) {
		if !wait {
			return 0, driver.ErrNotReady
		}
		if err := q.d.qu.waitForFence(fence); err != nil {
			return 0, err
		}
	}
	q.val = q.d.occHeap.read(q.slot)
	q.cached = true
	q.active = false
	return q.val, nil
}

// Destroy implements driver.Destroyer.
func (q *occlusionQuery) Destroy() {
	if q == nil {
		return
	}
	*q = occlusionQuery{}
}
