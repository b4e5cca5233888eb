// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"sync"

	"gviegas/arke/internal/bitarr"
	"gviegas/arke/internal/d3d"
)

// descPool is a CPU-only descriptor slot pool.
// Slots are handed out from fixed-size native heaps, with a
// bit array per heap as the free list. The pool grows by one
// heap whenever every slot is taken.
type descPool struct {
	mu    sync.Mutex
	dev   *d3d.ID3D12Device
	typ   d3d.DESCRIPTOR_HEAP_TYPE
	incr  uint32
	heaps []descPoolHeap
}

type descPoolHeap struct {
	heap *d3d.ID3D12DescriptorHeap
	used *bitarr.A
	base d3d.CPU_DESCRIPTOR_HANDLE
}

// descSlot locates one descriptor within a pool.
// The zero value is not a valid slot; track validity
// separately.
type descSlot struct {
	heap  int
	index int
}

func newDescPool(dev *d3d.ID3D12Device, typ d3d.DESCRIPTOR_HEAP_TYPE) *descPool {
	return &descPool{
		dev:  dev,
		typ:  typ,
		incr: dev.GetDescriptorHandleIncrementSize(typ),
	}
}

// alloc reserves one slot.
func (p *descPool) alloc() (descSlot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.heaps {
		if idx, ok := p.heaps[i].used.Search(); ok {
			p.heaps[i].used.Set(idx)
			return descSlot{i, idx}, nil
		}
	}
	desc := d3d.DESCRIPTOR_HEAP_DESC{
		Type:           p.typ,
		NumDescriptors: descHeapLen,
	}
	heap, err := p.dev.CreateDescriptorHeap(&desc)
	if err != nil {
		return descSlot{}, err
	}
	p.heaps = append(p.heaps, descPoolHeap{
		heap: heap,
		used: bitarr.New(descHeapLen),
		base: heap.GetCPUDescriptorHandleForHeapStart(),
	})
	i := len(p.heaps) - 1
	p.heaps[i].used.Set(0)
	return descSlot{i, 0}, nil
}

// free returns a slot to the pool.
func (p *descPool) free(s descSlot) {
	p.mu.Lock()
	p.heaps[s.heap].used.Unset(s.index)
	p.mu.Unlock()
}

// cpu returns the slot's CPU handle.
func (p *descPool) cpu(s descSlot) d3d.CPU_DESCRIPTOR_HANDLE {
	p.mu.Lock()
	h := p.heaps[s.heap].base.Offset(s.index, p.incr)
	p.mu.Unlock()
	return h
}

func (p *descPool) destroy() {
	if p == nil {
		return
	}
	for i := range p.heaps {
		p.heaps[i].heap.Release()
	}
	*p = descPool{}
}

// descRing is a shader-visible descriptor ring.
// Descriptors are copied in from pool slots right before a
// draw or dispatch and referenced by root descriptor tables.
// The ring must be large enough that a frame in flight never
// wraps onto descriptors the GPU still reads.
type descRing struct {
	dev  *d3d.ID3D12Device
	heap *d3d.ID3D12DescriptorHeap
	typ  d3d.DESCRIPTOR_HEAP_TYPE
	incr uint32
	cpu  d3d.CPU_DESCRIPTOR_HANDLE
	gpu  d3d.GPU_DESCRIPTOR_HANDLE
	ring ringAlloc
}

func newDescRing(dev *d3d.ID3D12Device, typ d3d.DESCRIPTOR_HEAP_TYPE, n int) (*descRing, error) {
	desc := d3d.DESCRIPTOR_HEAP_DESC{
		Type:           typ,
		NumDescriptors: uint32(n),
		Flags:          d3d.DESCRIPTOR_HEAP_FLAG_SHADER_VISIBLE,
	}
	heap, err := dev.CreateDescriptorHeap(&desc)
	if err != nil {
		return nil, err
	}
	return &descRing{
		dev:  dev,
		heap: heap,
		typ:  typ,
		incr: dev.GetDescriptorHandleIncrementSize(typ),
		cpu:  heap.GetCPUDescriptorHandleForHeapStart(),
		gpu:  heap.GetGPUDescriptorHandleForHeapStart(),
		ring: ringAlloc{len: n},
	}, nil
}

// alloc reserves n contiguous descriptors and returns the
// CPU handle of the first one, for copying, and the GPU
// handle, for table binding.
func (r *descRing) alloc(n int) (d3d.CPU_DESCRIPTOR_HANDLE, d3d.GPU_DESCRIPTOR_HANDLE) {
	off := r.ring.alloc(n)
	return r.cpu.Offset(off, r.incr), r.gpu.Offset(off, r.incr)
}

// stage copies n descriptors from src into a fresh ring
// range and returns the range's GPU handle.
func (r *descRing) stage(n int, src d3d.CPU_DESCRIPTOR_HANDLE) d3d.GPU_DESCRIPTOR_HANDLE {
	cpu, gpu := r.alloc(n)
	r.dev.CopyDescriptorsSimple(uint32(n), cpu, src, r.typ)
	return gpu
}

func (r *descRing) destroy() {
	if r == nil {
		return
	}
	if r.heap != nil {
		r.heap.Release()
	}
	*r = descRing{}
}
