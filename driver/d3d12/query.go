// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

// queryBatch is a contiguous run of query heap slots that
// resolve together against a single sync-point.
type queryBatch struct {
	start int
	n     int
	// Fence value of the submission that resolves the
	// batch's data into the readback buffer.
	fence uint64
	// Timestamp frequency captured when the batch was
	// closed. Meaningful for timer heaps only.
	freq uint64
}

// contains returns whether the batch covers the given slot.
func (q queryBatch) contains(slot int) bool {
	return slot >= q.start && slot < q.start+q.n
}

// batchList tracks the open batch and the closed,
// unconsumed batches of one query heap.
type batchList struct {
	len  int
	open queryBatch
	done []queryBatch
}

// newBatchList creates a batch list over a heap of the
// given number of slots.
func newBatchList(len int) batchList {
	return batchList{len: len}
}

// alloc reserves n consecutive slots in the open batch and
// returns the first one. It reports whether the open batch
// had room; on failure the caller must close the batch and
// retry.
func (b *batchList) alloc(n int) (int, bool) {
	slot := b.open.start + b.open.n
	if slot+n > b.len {
		return 0, false
	}
	b.open.n += n
	return slot, true
}

// end closes the open batch, tagging it with the given
// sync-point and frequency, and opens a fresh batch at the
// following slot, wrapped to zero past the end of the heap.
// It reports whether there was anything to close.
func (b *batchList) end(fence, freq uint64) (closed queryBatch, ok bool) {
	if b.open.n == 0 {
		return queryBatch{}, false
	}
	closed = b.open
	closed.fence = fence
	closed.freq = freq
	b.done = append(b.done, closed)
	next := closed.start + closed.n
	if next >= b.len {
		next = 0
	}
	b.open = queryBatch{start: next}
	return closed, true
}

// inOpen returns whether the slot belongs to the still-open
// batch.
func (b *batchList) inOpen(slot int) bool {
	return b.open.contains(slot)
}

// find returns the index in done of the closed batch that
// covers the slot, or -1.
func (b *batchList) find(slot int) int {
	for i := range b.done {
		if b.done[i].contains(slot) {
			return i
		}
	}
	return -1
}

// remove discards the i-th closed batch.
func (b *batchList) remove(i int) {
	b.done = append(b.done[:i], b.done[i+1:]...)
}

// timerMicros converts a pair of timestamps into an
// interval in microseconds, clamped to zero when the end
// precedes the start.
func timerMicros(start, end, freq uint64) float64 {
	if end <= start || freq == 0 {
		return 0
	}
	return float64(end-start) * 1e6 / float64(freq)
}
