// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"unsafe"

	"gviegas/arke/driver"
	"gviegas/arke/internal/d3d"
)

// buffer implements driver.Buffer.
type buffer struct {
	d       *Driver
	res     *d3d.ID3D12Resource
	state   resState
	cap     int64
	usg     driver.Usage
	visible bool
	ptr     unsafe.Pointer
	addr    uint64
	// Hidden append/consume counter of structured views.
	counter      *d3d.ID3D12Resource
	counterState resState
	// Upload-staged constant data set by Context.UpdateCB.
	// Valid while stagedFrame is the current frame.
	stagedAddr  uint64
	stagedFrame uint64
}

// NewBuffer creates a new buffer.
func (d *Driver) NewBuffer(size int64, visible bool, usg driver.Usage) (driver.Buffer, error) {
	if size <= 0 {
		return nil, errInvalidParam
	}
	// Constant buffer bindings require 256-byte alignment,
	// so round the capacity up to keep whole-buffer CBVs
	// valid.
	cap := alignUp(size, d3d.CONSTANT_BUFFER_DATA_PLACEMENT_ALIGNMENT)
	props := d3d.HEAP_PROPERTIES{Type: d3d.HEAP_TYPE_DEFAULT}
	state := d3d.RESOURCE_STATE_COMMON
	if visible {
		props.Type = d3d.HEAP_TYPE_UPLOAD
		state = d3d.RESOURCE_STATE_GENERIC_READ
	}
	var flags d3d.RESOURCE_FLAGS
	if usg&driver.UShaderWrite != 0 {
		flags |= d3d.RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS
	}
	desc := d3d.RESOURCE_DESC{
		Dimension:        d3d.RESOURCE_DIMENSION_BUFFER,
		Width:            uint64(cap),
		Height:           1,
		DepthOrArraySize: 1,
		MipLevels:        1,
		SampleDesc:       d3d.SAMPLE_DESC{Count: 1},
		Layout:           d3d.TEXTURE_LAYOUT_ROW_MAJOR,
		Flags:            flags,
	}
	res, err := d.dev.CreateCommittedResource(&props, d3d.HEAP_FLAG_NONE, &desc, state)
	if err != nil {
		return nil, resourceErr(err)
	}
	if Debug {
		res.SetName("arke buffer")
	}
	b := &buffer{
		d:       d,
		res:     res,
		state:   newResState(1, state),
		cap:     cap,
		usg:     usg,
		visible: visible,
		addr:    res.GetGPUVirtualAddress(),
	}
	if visible {
		ptr, err := res.Map(0, &d3d.RANGE{})
		if err != nil {
			res.Release()
			return nil, resourceErr(err)
		}
		b.ptr = ptr
	}
	if usg&driver.UCounter != 0 && usg&driver.UShaderWrite != 0 {
		ctr, err := newCounterBuffer(d.dev)
		if err != nil {
			b.Destroy()
			return nil, err
		}
		b.counter = ctr
		b.counterState = newResState(1, d3d.RESOURCE_STATE_COMMON)
	}
	return b, nil
}

// Visible implements driver.Buffer.
func (b *buffer) Visible() bool { return b.visible }

// Bytes implements driver.Buffer.
func (b *buffer) Bytes() []byte {
	if b.ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(b.ptr), b.cap)
}

// Cap implements driver.Buffer.
func (b *buffer) Cap() int64 { return b.cap }

// NewView implements driver.Buffer.
func (b *buffer) NewView(off, size, stride int64) (driver.BufView, error) {
	switch {
	case off < 0 || size <= 0 || stride < 0:
		return nil, errInvalidParam
	case off+size > b.cap:
		return nil, errInvalidParam
	case stride > 0 && size%stride != 0:
		return nil, errInvalidParam
	case stride == 0 && (off%4 != 0 || size%4 != 0):
		// Raw views address the buffer as 32-bit words.
		return nil, errInvalidParam
	}
	v := &bufView{b: b, off: off, size: size, stride: stride}
	if b.usg&driver.UShaderRead != 0 {
		slot, err := b.d.viewPool.alloc()
		if err != nil {
			return nil, err
		}
		desc := d3d.SHADER_RESOURCE_VIEW_DESC{
			ViewDimension:           d3d.SRV_DIMENSION_BUFFER,
			Shader4ComponentMapping: d3d.DEFAULT_SHADER_4_COMPONENT_MAPPING,
		}
		if stride > 0 {
			desc.SetBuffer(d3d.BUFFER_SRV{
				FirstElement:        uint64(off / stride),
				NumElements:         uint32(size / stride),
				StructureByteStride: uint32(stride),
			})
		} else {
			desc.Format = d3d.FORMAT_R32_TYPELESS
			desc.SetBuffer(d3d.BUFFER_SRV{
				FirstElement: uint64(off / 4),
				NumElements:  uint32(size / 4),
				Flags:        d3d.BUFFER_SRV_FLAG_RAW,
			})
		}
		b.d.dev.CreateShaderResourceView(b.res, &desc, b.d.viewPool.cpu(slot))
		v.srv = slot
		v.hasSRV = true
	}
	if b.usg&driver.UShaderWrite != 0 {
		slot, err := b.d.viewPool.alloc()
		if err != nil {
			v.Destroy()
			return nil, err
		}
		desc := d3d.UNORDERED_ACCESS_VIEW_DESC{
			ViewDimension: d3d.UAV_DIMENSION_BUFFER,
		}
		if stride > 0 {
			desc.SetBuffer(d3d.BUFFER_UAV{
				FirstElement:        uint64(off / stride),
				NumElements:         uint32(size / stride),
				StructureByteStride: uint32(stride),
			})
		} else {
			desc.Format = d3d.FORMAT_R32_TYPELESS
			desc.SetBuffer(d3d.BUFFER_UAV{
				FirstElement: uint64(off / 4),
				NumElements:  uint32(size / 4),
				Flags:        d3d.BUFFER_UAV_FLAG_RAW,
			})
		}
		var counter *d3d.ID3D12Resource
		if stride > 0 {
			counter = b.counter
		}
		b.d.dev.CreateUnorderedAccessView(b.res, counter, &desc, b.d.viewPool.cpu(slot))
		v.uav = slot
		v.hasUAV = true
	}
	return v, nil
}

// Destroy implements driver.Destroyer.
func (b *buffer) Destroy() {
	if b == nil {
		return
	}
	if b.counter != nil {
		b.d.release(b.counter)
	}
	if b.res != nil {
		if b.ptr != nil {
			b.res.Unmap(0, nil)
		}
		b.d.release(b.res)
	}
	*b = buffer{}
}

// newCounterBuffer creates the hidden append/consume
// counter resource of a structured view.
func newCounterBuffer(dev *d3d.ID3D12Device) (*d3d.ID3D12Resource, error) {
	props := d3d.HEAP_PROPERTIES{Type: d3d.HEAP_TYPE_DEFAULT}
	desc := d3d.RESOURCE_DESC{
		Dimension:        d3d.RESOURCE_DIMENSION_BUFFER,
		Width:            4,
		Height:           1,
		DepthOrArraySize: 1,
		MipLevels:        1,
		SampleDesc:       d3d.SAMPLE_DESC{Count: 1},
		Layout:           d3d.TEXTURE_LAYOUT_ROW_MAJOR,
		Flags:            d3d.RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS,
	}
	res, err := dev.CreateCommittedResource(&props, d3d.HEAP_FLAG_NONE, &desc, d3d.RESOURCE_STATE_COMMON)
	if err != nil {
		return nil, resourceErr(err)
	}
	return res, nil
}

// bufView implements driver.BufView.
type bufView struct {
	b      *buffer
	off    int64
	size   int64
	stride int64
	srv    descSlot
	uav    descSlot
	hasSRV bool
	hasUAV bool
}

// Buffer implements driver.BufView.
func (v *bufView) Buffer() driver.Buffer { return v.b }

// Destroy implements driver.Destroyer.
func (v *bufView) Destroy() {
	if v == nil {
		return
	}
	if v.hasSRV {
		v.b.d.viewPool.free(v.srv)
	}
	if v.hasUAV {
		v.b.d.viewPool.free(v.uav)
	}
	*v = bufView{}
}
