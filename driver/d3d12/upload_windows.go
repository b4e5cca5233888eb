// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"sync"
	"unsafe"

	"gviegas/arke/internal/d3d"
)

// uploadPage is one persistently mapped upload heap
// resource.
type uploadPage struct {
	pageMeta
	res  *d3d.ID3D12Resource
	ptr  unsafe.Pointer
	addr uint64
}

func newUploadPage(dev *d3d.ID3D12Device, size int64, oversized bool) (*uploadPage, error) {
	props := d3d.HEAP_PROPERTIES{Type: d3d.HEAP_TYPE_UPLOAD}
	desc := d3d.RESOURCE_DESC{
		Dimension:        d3d.RESOURCE_DIMENSION_BUFFER,
		Width:            uint64(size),
		Height:           1,
		DepthOrArraySize: 1,
		MipLevels:        1,
		SampleDesc:       d3d.SAMPLE_DESC{Count: 1},
		Layout:           d3d.TEXTURE_LAYOUT_ROW_MAJOR,
	}
	res, err := dev.CreateCommittedResource(&props, d3d.HEAP_FLAG_NONE, &desc, d3d.RESOURCE_STATE_GENERIC_READ)
	if err != nil {
		return nil, err
	}
	ptr, err := res.Map(0, &d3d.RANGE{})
	if err != nil {
		res.Release()
		return nil, err
	}
	return &uploadPage{
		pageMeta: pageMeta{len: size, oversized: oversized},
		res:      res,
		ptr:      ptr,
		addr:     res.GetGPUVirtualAddress(),
	}, nil
}

func (p *uploadPage) destroy() {
	if p.res != nil {
		p.res.Unmap(0, nil)
		p.res.Release()
	}
	*p = uploadPage{}
}

// uploadAlloc is one transient allocation within an upload
// page. cpu points at the allocation's first byte; data
// written there is visible to GPU copies from res at off.
type uploadAlloc struct {
	res  *d3d.ID3D12Resource
	off  int64
	cpu  unsafe.Pointer
	addr uint64
}

// bytes returns the allocation's mapped range.
func (a *uploadAlloc) bytes(n int64) []byte {
	return unsafe.Slice((*byte)(a.cpu), n)
}

// uploadPool hands out transient upload memory in
// generations. A generation corresponds to one frame;
// pages allocated from stay active until enough generations
// pass that the GPU cannot be reading them anymore.
type uploadPool struct {
	mu     sync.Mutex
	dev    *d3d.ID3D12Device
	gen    uint64
	active []*uploadPage
	free   []*uploadPage
}

func (u *uploadPool) init(dev *d3d.ID3D12Device) {
	u.dev = dev
	u.gen = 1
}

// beginGeneration retires pages whose last use is old enough
// and destroys free pages that stayed unused for too long.
// Oversized pages are destroyed instead of pooled.
func (u *uploadPool) beginGeneration(gen uint64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.gen = gen
	kept := u.active[:0]
	for _, p := range u.active {
		switch {
		case !pageExpired(p.lastGen, gen):
			kept = append(kept, p)
		case p.oversized:
			p.destroy()
		default:
			p.off = 0
			u.free = append(u.free, p)
		}
	}
	u.active = kept
	live := u.free[:0]
	for _, p := range u.free {
		if pageStale(p.lastGen, gen) {
			p.destroy()
		} else {
			live = append(live, p)
		}
	}
	u.free = live
}

// alloc reserves size bytes aligned to align.
// The allocation stays valid until its page is retired.
func (u *uploadPool) alloc(size, align int64) (uploadAlloc, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, p := range u.active {
		if p.oversized {
			continue
		}
		if off, ok := p.pageMeta.alloc(size, align); ok {
			p.lastGen = u.gen
			return u.sub(p, off), nil
		}
	}
	if size <= uploadPageLen {
		for i, p := range u.free {
			if p.len >= size {
				u.free = append(u.free[:i], u.free[i+1:]...)
				off, _ := p.pageMeta.alloc(size, align)
				p.lastGen = u.gen
				u.active = append(u.active, p)
				return u.sub(p, off), nil
			}
		}
	}
	pageLen := int64(uploadPageLen)
	oversized := false
	if size > pageLen {
		pageLen = alignUp(size, d3d.TEXTURE_DATA_PLACEMENT_ALIGNMENT)
		oversized = true
	}
	p, err := newUploadPage(u.dev, pageLen, oversized)
	if err != nil {
		return uploadAlloc{}, err
	}
	off, _ := p.pageMeta.alloc(size, align)
	p.lastGen = u.gen
	u.active = append(u.active, p)
	return u.sub(p, off), nil
}

func (u *uploadPool) sub(p *uploadPage, off int64) uploadAlloc {
	return uploadAlloc{
		res:  p.res,
		off:  off,
		cpu:  unsafe.Add(p.ptr, off),
		addr: p.addr + uint64(off),
	}
}

func (u *uploadPool) destroy() {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, p := range u.active {
		p.destroy()
	}
	for _, p := range u.free {
		p.destroy()
	}
	u.active = nil
	u.free = nil
}
