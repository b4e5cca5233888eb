// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"sync"

	"golang.org/x/sys/windows"

	"gviegas/arke/internal/d3d"
)

// fence wraps a native fence with a monotonic value and a
// waitable event for CPU-side blocking.
type fence struct {
	mu            sync.Mutex
	f             *d3d.ID3D12Fence
	event         windows.Handle
	cur           uint64
	lastSignaled  uint64
	lastCompleted uint64
}

func newFence(dev *d3d.ID3D12Device) (*fence, error) {
	f, err := dev.CreateFence(0)
	if err != nil {
		return nil, err
	}
	ev, err := windows.CreateEvent(nil, 0, 0, nil)
	if err != nil {
		f.Release()
		return nil, err
	}
	return &fence{f: f, event: ev}, nil
}

// signal advances the fence value and emits the signal onto
// the queue. It returns the signaled value.
func (f *fence) signal(q *d3d.ID3D12CommandQueue) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cur++
	if err := q.Signal(f.f, f.cur); err != nil {
		f.cur--
		return 0, err
	}
	f.lastSignaled = f.cur
	return f.cur, nil
}

// signaled returns the last value signaled onto a queue.
func (f *fence) signaled() uint64 {
	f.mu.Lock()
	v := f.lastSignaled
	f.mu.Unlock()
	return v
}

// completed refreshes and returns the last completed value.
func (f *fence) completed() uint64 {
	v := f.f.GetCompletedValue()
	f.mu.Lock()
	if v > f.lastCompleted {
		f.lastCompleted = v
	}
	v = f.lastCompleted
	f.mu.Unlock()
	return v
}

// isComplete returns whether the given value has been
// reached, refreshing the cached completion on demand.
func (f *fence) isComplete(v uint64) bool {
	f.mu.Lock()
	done := v <= f.lastCompleted
	f.mu.Unlock()
	if done {
		return true
	}
	return v <= f.completed()
}

// wait blocks until the given value completes.
func (f *fence) wait(v uint64) error {
	if f.isComplete(v) {
		return nil
	}
	if err := f.f.SetEventOnCompletion(v, f.event); err != nil {
		return err
	}
	// Re-wait on spurious wakeups.
	for !f.isComplete(v) {
		if _, err := windows.WaitForSingleObject(f.event, windows.INFINITE); err != nil {
			return err
		}
	}
	return nil
}

func (f *fence) destroy() {
	if f == nil {
		return
	}
	if f.event != 0 {
		windows.CloseHandle(f.event)
	}
	if f.f != nil {
		f.f.Release()
	}
	*f = fence{}
}

// allocPool hands out reusable command allocators gated by
// fence completion.
type allocPool struct {
	free []allocEntry
}

type allocEntry struct {
	a *d3d.ID3D12CommandAllocator
	// Fence value at which the allocator becomes
	// reusable.
	reusable uint64
}

// request returns a reusable allocator, creating a new one
// when none has been retired yet. Entries are kept in
// discard order, so the front one is always the oldest.
func (p *allocPool) request(dev *d3d.ID3D12Device, fen *fence) (*d3d.ID3D12CommandAllocator, error) {
	if len(p.free) > 0 && fen.isComplete(p.free[0].reusable) {
		a := p.free[0].a
		p.free = p.free[1:]
		if err := a.Reset(); err != nil {
			a.Release()
			return nil, err
		}
		return a, nil
	}
	return dev.CreateCommandAllocator(d3d.COMMAND_LIST_TYPE_DIRECT)
}

// discard returns an allocator to the pool, tagged with the
// fence value of the submission that last used it.
func (p *allocPool) discard(a *d3d.ID3D12CommandAllocator, reusable uint64) {
	p.free = append(p.free, allocEntry{a, reusable})
}

func (p *allocPool) destroy() {
	for i := range p.free {
		p.free[i].a.Release()
	}
	p.free = nil
}

// cmdQueue wraps the primary direct queue, its fence and
// its allocator pool.
type cmdQueue struct {
	q      *d3d.ID3D12CommandQueue
	fen    *fence
	allocs allocPool
}

func newCmdQueue(dev *d3d.ID3D12Device) (*cmdQueue, error) {
	desc := d3d.COMMAND_QUEUE_DESC{
		Type: d3d.COMMAND_LIST_TYPE_DIRECT,
	}
	q, err := dev.CreateCommandQueue(&desc)
	if err != nil {
		return nil, err
	}
	fen, err := newFence(dev)
	if err != nil {
		q.Release()
		return nil, err
	}
	return &cmdQueue{q: q, fen: fen}, nil
}

// execute closes and submits the command list, then signals
// the fence. It returns the submission's fence value.
func (q *cmdQueue) execute(list *d3d.ID3D12GraphicsCommandList) (uint64, error) {
	if err := list.Close(); err != nil {
		return 0, err
	}
	q.q.ExecuteCommandLists([]*d3d.ID3D12GraphicsCommandList{list})
	return q.fen.signal(q.q)
}

// waitForFence blocks the CPU until the given submission
// completes.
func (q *cmdQueue) waitForFence(v uint64) error { return q.fen.wait(v) }

// waitIdle blocks until every prior submission completes.
func (q *cmdQueue) waitIdle() error {
	v, err := q.fen.signal(q.q)
	if err != nil {
		return err
	}
	return q.fen.wait(v)
}

// timestampFrequency returns the queue's timestamp
// frequency in ticks per second.
func (q *cmdQueue) timestampFrequency() uint64 {
	freq, err := q.q.GetTimestampFrequency()
	if err != nil {
		return 0
	}
	return freq
}

func (q *cmdQueue) destroy() {
	if q == nil {
		return
	}
	q.allocs.destroy()
	q.fen.destroy()
	if q.q != nil {
		q.q.Release()
	}
	*q = cmdQueue{}
}
