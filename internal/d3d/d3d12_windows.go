// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Wrappers are provided only for the vtable slots actually used
// (the slot declarations themselves live in iface.go).

func (o *ID3D12Device) ptr() uintptr { return uintptr(unsafe.Pointer(o)) }

func (o *ID3D12Device) Release() uint32 { return uint32(call(o.vtbl.Release, o.ptr())) }

func (o *ID3D12Device) SetName(name string) {
	if p, err := windows.UTF16PtrFromString(name); err == nil {
		call(o.vtbl.SetName, o.ptr(), uintptr(unsafe.Pointer(p)))
	}
}

// SetStablePowerState wraps ID3D12Device::SetStablePowerState.
// It fails unless developer mode is enabled.
func (o *ID3D12Device) SetStablePowerState(on bool) error {
	var v uintptr
	if on {
		v = 1
	}
	hr := call(o.vtbl.SetStablePowerState, o.ptr(), v)
	return hrErr("ID3D12Device::SetStablePowerState", hr)
}

func (o *ID3D12Device) CreateCommandQueue(desc *COMMAND_QUEUE_DESC) (*ID3D12CommandQueue, error) {
	var q *ID3D12CommandQueue
	hr := call(o.vtbl.CreateCommandQueue, o.ptr(),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12CommandQueue)),
		uintptr(unsafe.Pointer(&q)))
	return q, hrErr("ID3D12Device::CreateCommandQueue", hr)
}

func (o *ID3D12Device) CreateCommandAllocator(typ COMMAND_LIST_TYPE) (*ID3D12CommandAllocator, error) {
	var a *ID3D12CommandAllocator
	hr := call(o.vtbl.CreateCommandAllocator, o.ptr(),
		uintptr(typ),
		uintptr(unsafe.Pointer(&IID_ID3D12CommandAllocator)),
		uintptr(unsafe.Pointer(&a)))
	return a, hrErr("ID3D12Device::CreateCommandAllocator", hr)
}

func (o *ID3D12Device) CreateCommandList(typ COMMAND_LIST_TYPE, alloc *ID3D12CommandAllocator, initial *ID3D12PipelineState) (*ID3D12GraphicsCommandList, error) {
	var cl *ID3D12GraphicsCommandList
	hr := call(o.vtbl.CreateCommandList, o.ptr(),
		0, // node mask
		uintptr(typ),
		uintptr(unsafe.Pointer(alloc)),
		uintptr(unsafe.Pointer(initial)),
		uintptr(unsafe.Pointer(&IID_ID3D12GraphicsCommandList)),
		uintptr(unsafe.Pointer(&cl)))
	return cl, hrErr("ID3D12Device::CreateCommandList", hr)
}

func (o *ID3D12Device) CreateGraphicsPipelineState(desc *GRAPHICS_PIPELINE_STATE_DESC) (*ID3D12PipelineState, error) {
	var ps *ID3D12PipelineState
	hr := call(o.vtbl.CreateGraphicsPipelineState, o.ptr(),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12PipelineState)),
		uintptr(unsafe.Pointer(&ps)))
	return ps, hrErr("ID3D12Device::CreateGraphicsPipelineState", hr)
}

func (o *ID3D12Device) CreateComputePipelineState(desc *COMPUTE_PIPELINE_STATE_DESC) (*ID3D12PipelineState, error) {
	var ps *ID3D12PipelineState
	hr := call(o.vtbl.CreateComputePipelineState, o.ptr(),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12PipelineState)),
		uintptr(unsafe.Pointer(&ps)))
	return ps, hrErr("ID3D12Device::CreateComputePipelineState", hr)
}

func (o *ID3D12Device) CheckFeatureSupport(feature uint32, data unsafe.Pointer, size uint32) error {
	hr := call(o.vtbl.CheckFeatureSupport, o.ptr(),
		uintptr(feature), uintptr(data), uintptr(size))
	return hrErr("ID3D12Device::CheckFeatureSupport", hr)
}

func (o *ID3D12Device) CreateDescriptorHeap(desc *DESCRIPTOR_HEAP_DESC) (*ID3D12DescriptorHeap, error) {
	var h *ID3D12DescriptorHeap
	hr := call(o.vtbl.CreateDescriptorHeap, o.ptr(),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12DescriptorHeap)),
		uintptr(unsafe.Pointer(&h)))
	return h, hrErr("ID3D12Device::CreateDescriptorHeap", hr)
}

func (o *ID3D12Device) GetDescriptorHandleIncrementSize(typ DESCRIPTOR_HEAP_TYPE) uint32 {
	return uint32(call(o.vtbl.GetDescriptorHandleIncrementSize, o.ptr(), uintptr(typ)))
}

func (o *ID3D12Device) CreateRootSignature(blob []byte) (*ID3D12RootSignature, error) {
	var rs *ID3D12RootSignature
	hr := call(o.vtbl.CreateRootSignature, o.ptr(),
		0, // node mask
		uintptr(unsafe.Pointer(&blob[0])),
		uintptr(len(blob)),
		uintptr(unsafe.Pointer(&IID_ID3D12RootSignature)),
		uintptr(unsafe.Pointer(&rs)))
	return rs, hrErr("ID3D12Device::CreateRootSignature", hr)
}

func (o *ID3D12Device) CreateConstantBufferView(desc *CONSTANT_BUFFER_VIEW_DESC, dst CPU_DESCRIPTOR_HANDLE) {
	call(o.vtbl.CreateConstantBufferView, o.ptr(),
		uintptr(unsafe.Pointer(desc)), dst.Ptr)
}

func (o *ID3D12Device) CreateShaderResourceView(res *ID3D12Resource, desc *SHADER_RESOURCE_VIEW_DESC, dst CPU_DESCRIPTOR_HANDLE) {
	call(o.vtbl.CreateShaderResourceView, o.ptr(),
		uintptr(unsafe.Pointer(res)),
		uintptr(unsafe.Pointer(desc)), dst.Ptr)
}

func (o *ID3D12Device) CreateUnorderedAccessView(res, counter *ID3D12Resource, desc *UNORDERED_ACCESS_VIEW_DESC, dst CPU_DESCRIPTOR_HANDLE) {
	call(o.vtbl.CreateUnorderedAccessView, o.ptr(),
		uintptr(unsafe.Pointer(res)),
		uintptr(unsafe.Pointer(counter)),
		uintptr(unsafe.Pointer(desc)), dst.Ptr)
}

func (o *ID3D12Device) CreateRenderTargetView(res *ID3D12Resource, desc *RENDER_TARGET_VIEW_DESC, dst CPU_DESCRIPTOR_HANDLE) {
	call(o.vtbl.CreateRenderTargetView, o.ptr(),
		uintptr(unsafe.Pointer(res)),
		uintptr(unsafe.Pointer(desc)), dst.Ptr)
}

func (o *ID3D12Device) CreateDepthStencilView(res *ID3D12Resource, desc *DEPTH_STENCIL_VIEW_DESC, dst CPU_DESCRIPTOR_HANDLE) {
	call(o.vtbl.CreateDepthStencilView, o.ptr(),
		uintptr(unsafe.Pointer(res)),
		uintptr(unsafe.Pointer(desc)), dst.Ptr)
}

func (o *ID3D12Device) CreateSampler(desc *SAMPLER_DESC, dst CPU_DESCRIPTOR_HANDLE) {
	call(o.vtbl.CreateSampler, o.ptr(),
		uintptr(unsafe.Pointer(desc)), dst.Ptr)
}

func (o *ID3D12Device) CopyDescriptorsSimple(n uint32, dst, src CPU_DESCRIPTOR_HANDLE, typ DESCRIPTOR_HEAP_TYPE) {
	call(o.vtbl.CopyDescriptorsSimple, o.ptr(),
		uintptr(n), dst.Ptr, src.Ptr, uintptr(typ))
}

func (o *ID3D12Device) CreateCommittedResource(props *HEAP_PROPERTIES, heapFlags uint32, desc *RESOURCE_DESC, initial RESOURCE_STATES) (*ID3D12Resource, error) {
	var res *ID3D12Resource
	hr := call(o.vtbl.CreateCommittedResource, o.ptr(),
		uintptr(unsafe.Pointer(props)),
		uintptr(heapFlags),
		uintptr(unsafe.Pointer(desc)),
		uintptr(initial),
		0, // no optimized clear value
		uintptr(unsafe.Pointer(&IID_ID3D12Resource)),
		uintptr(unsafe.Pointer(&res)))
	return res, hrErr("ID3D12Device::CreateCommittedResource", hr)
}

func (o *ID3D12Device) CreateFence(initial uint64) (*ID3D12Fence, error) {
	var f *ID3D12Fence
	hr := call(o.vtbl.CreateFence, o.ptr(),
		uintptr(initial),
		FENCE_FLAG_NONE,
		uintptr(unsafe.Pointer(&IID_ID3D12Fence)),
		uintptr(unsafe.Pointer(&f)))
	return f, hrErr("ID3D12Device::CreateFence", hr)
}

func (o *ID3D12Device) GetDeviceRemovedReason() uint32 {
	return uint32(call(o.vtbl.GetDeviceRemovedReason, o.ptr()))
}

// GetCopyableFootprints computes the placed footprints of n
// subresources starting at first, for a copy placed at baseOffset
// in an upload buffer. Any of the output slices may be nil.
func (o *ID3D12Device) GetCopyableFootprints(desc *RESOURCE_DESC, first, n uint32, baseOffset uint64, layouts []PLACED_SUBRESOURCE_FOOTPRINT, numRows []uint32, rowSizes []uint64) (total uint64) {
	var pl, pn, pr uintptr
	if layouts != nil {
		pl = uintptr(unsafe.Pointer(&layouts[0]))
	}
	if numRows != nil {
		pn = uintptr(unsafe.Pointer(&numRows[0]))
	}
	if rowSizes != nil {
		pr = uintptr(unsafe.Pointer(&rowSizes[0]))
	}
	call(o.vtbl.GetCopyableFootprints, o.ptr(),
		uintptr(unsafe.Pointer(desc)),
		uintptr(first), uintptr(n),
		uintptr(baseOffset),
		pl, pn, pr,
		uintptr(unsafe.Pointer(&total)))
	return
}

func (o *ID3D12Device) CreateQueryHeap(desc *QUERY_HEAP_DESC) (*ID3D12QueryHeap, error) {
	var h *ID3D12QueryHeap
	hr := call(o.vtbl.CreateQueryHeap, o.ptr(),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12QueryHeap)),
		uintptr(unsafe.Pointer(&h)))
	return h, hrErr("ID3D12Device::CreateQueryHeap", hr)
}

func (o *ID3D12Device) CreateCommandSignature(desc *COMMAND_SIGNATURE_DESC, rootSig *ID3D12RootSignature) (*ID3D12CommandSignature, error) {
	var cs *ID3D12CommandSignature
	hr := call(o.vtbl.CreateCommandSignature, o.ptr(),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(rootSig)),
		uintptr(unsafe.Pointer(&IID_ID3D12CommandSignature)),
		uintptr(unsafe.Pointer(&cs)))
	return cs, hrErr("ID3D12Device::CreateCommandSignature", hr)
}

func (o *ID3D12CommandQueue) ptr() uintptr { return uintptr(unsafe.Pointer(o)) }

func (o *ID3D12CommandQueue) Release() uint32 { return uint32(call(o.vtbl.Release, o.ptr())) }

func (o *ID3D12CommandQueue) ExecuteCommandLists(lists []*ID3D12GraphicsCommandList) {
	call(o.vtbl.ExecuteCommandLists, o.ptr(),
		uintptr(len(lists)),
		uintptr(unsafe.Pointer(&lists[0])))
}

func (o *ID3D12CommandQueue) Signal(fence *ID3D12Fence, value uint64) error {
	hr := call(o.vtbl.Signal, o.ptr(),
		uintptr(unsafe.Pointer(fence)), uintptr(value))
	return hrErr("ID3D12CommandQueue::Signal", hr)
}

func (o *ID3D12CommandQueue) Wait(fence *ID3D12Fence, value uint64) error {
	hr := call(o.vtbl.Wait, o.ptr(),
		uintptr(unsafe.Pointer(fence)), uintptr(value))
	return hrErr("ID3D12CommandQueue::Wait", hr)
}

func (o *ID3D12CommandQueue) GetTimestampFrequency() (uint64, error) {
	var freq uint64
	hr := call(o.vtbl.GetTimestampFrequency, o.ptr(),
		uintptr(unsafe.Pointer(&freq)))
	return freq, hrErr("ID3D12CommandQueue::GetTimestampFrequency", hr)
}

func (o *ID3D12CommandAllocator) ptr() uintptr { return uintptr(unsafe.Pointer(o)) }

func (o *ID3D12CommandAllocator) Release() uint32 { return uint32(call(o.vtbl.Release, o.ptr())) }

func (o *ID3D12CommandAllocator) Reset() error {
	return hrErr("ID3D12CommandAllocator::Reset", call(o.vtbl.Reset, o.ptr()))
}

func (o *ID3D12Fence) ptr() uintptr { return uintptr(unsafe.Pointer(o)) }

func (o *ID3D12Fence) Release() uint32 { return uint32(call(o.vtbl.Release, o.ptr())) }

func (o *ID3D12Fence) GetCompletedValue() uint64 {
	return uint64(call(o.vtbl.GetCompletedValue, o.ptr()))
}

func (o *ID3D12Fence) SetEventOnCompletion(value uint64, event windows.Handle) error {
	hr := call(o.vtbl.SetEventOnCompletion, o.ptr(),
		uintptr(value), uintptr(event))
	return hrErr("ID3D12Fence::SetEventOnCompletion", hr)
}

func (o *ID3D12Fence) Signal(value uint64) error {
	return hrErr("ID3D12Fence::Signal", call(o.vtbl.Signal, o.ptr(), uintptr(value)))
}

func (o *ID3D12Resource) ptr() uintptr { return uintptr(unsafe.Pointer(o)) }

func (o *ID3D12Resource) Release() uint32 { return uint32(call(o.vtbl.Release, o.ptr())) }

func (o *ID3D12Resource) SetName(name string) {
	if p, err := windows.UTF16PtrFromString(name); err == nil {
		call(o.vtbl.SetName, o.ptr(), uintptr(unsafe.Pointer(p)))
	}
}

// Map maps the given subresource and returns a pointer to its
// memory. readRange may be nil to indicate the CPU will read the
// whole subresource; an empty range means write-only access.
func (o *ID3D12Resource) Map(subresource uint32, readRange *RANGE) (unsafe.Pointer, error) {
	var p unsafe.Pointer
	hr := call(o.vtbl.Map, o.ptr(),
		uintptr(subresource),
		uintptr(unsafe.Pointer(readRange)),
		uintptr(unsafe.Pointer(&p)))
	return p, hrErr("ID3D12Resource::Map", hr)
}

func (o *ID3D12Resource) Unmap(subresource uint32, writtenRange *RANGE) {
	call(o.vtbl.Unmap, o.ptr(),
		uintptr(subresource),
		uintptr(unsafe.Pointer(writtenRange)))
}

func (o *ID3D12Resource) GetDesc() RESOURCE_DESC {
	var desc RESOURCE_DESC
	call(o.vtbl.GetDesc, o.ptr(), uintptr(unsafe.Pointer(&desc)))
	return desc
}

func (o *ID3D12Resource) GetGPUVirtualAddress() uint64 {
	return uint64(call(o.vtbl.GetGPUVirtualAddress, o.ptr()))
}

func (o *ID3D12DescriptorHeap) ptr() uintptr { return uintptr(unsafe.Pointer(o)) }

func (o *ID3D12DescriptorHeap) Release() uint32 { return uint32(call(o.vtbl.Release, o.ptr())) }

// Handle-returning methods use the hidden return buffer of the
// x64 calling convention for member functions.

func (o *ID3D12DescriptorHeap) GetCPUDescriptorHandleForHeapStart() CPU_DESCRIPTOR_HANDLE {
	var h CPU_DESCRIPTOR_HANDLE
	call(o.vtbl.GetCPUDescriptorHandleForHeapStart, o.ptr(),
		uintptr(unsafe.Pointer(&h)))
	return h
}

func (o *ID3D12DescriptorHeap) GetGPUDescriptorHandleForHeapStart() GPU_DESCRIPTOR_HANDLE {
	var h GPU_DESCRIPTOR_HANDLE
	call(o.vtbl.GetGPUDescriptorHandleForHeapStart, o.ptr(),
		uintptr(unsafe.Pointer(&h)))
	return h
}

func (o *ID3D12QueryHeap) ptr() uintptr { return uintptr(unsafe.Pointer(o)) }

func (o *ID3D12QueryHeap) Release() uint32 { return uint32(call(o.vtbl.Release, o.ptr())) }

func (o *ID3D12PipelineState) ptr() uintptr { return uintptr(unsafe.Pointer(o)) }

func (o *ID3D12PipelineState) Release() uint32 { return uint32(call(o.vtbl.Release, o.ptr())) }

func (o *ID3D12PipelineState) SetName(name string) {
	if p, err := windows.UTF16PtrFromString(name); err == nil {
		call(o.vtbl.SetName, o.ptr(), uintptr(unsafe.Pointer(p)))
	}
}

func (o *ID3D12RootSignature) ptr() uintptr { return uintptr(unsafe.Pointer(o)) }

func (o *ID3D12RootSignature) Release() uint32 { return uint32(call(o.vtbl.Release, o.ptr())) }

func (o *ID3D12CommandSignature) ptr() uintptr { return uintptr(unsafe.Pointer(o)) }

func (o *ID3D12CommandSignature) Release() uint32 { return uint32(call(o.vtbl.Release, o.ptr())) }

func (o *ID3D12GraphicsCommandList) ptr() uintptr { return uintptr(unsafe.Pointer(o)) }

func (o *ID3D12GraphicsCommandList) Release() uint32 { return uint32(call(o.vtbl.Release, o.ptr())) }

func (o *ID3D12GraphicsCommandList) Close() error {
	return hrErr("ID3D12GraphicsCommandList::Close", call(o.vtbl.Close, o.ptr()))
}

func (o *ID3D12GraphicsCommandList) Reset(alloc *ID3D12CommandAllocator, initial *ID3D12PipelineState) error {
	hr := call(o.vtbl.Reset, o.ptr(),
		uintptr(unsafe.Pointer(alloc)),
		uintptr(unsafe.Pointer(initial)))
	return hrErr("ID3D12GraphicsCommandList::Reset", hr)
}

func (o *ID3D12GraphicsCommandList) DrawInstanced(vtxCount, instCount, firstVtx, firstInst uint32) {
	call(o.vtbl.DrawInstanced, o.ptr(),
		uintptr(vtxCount), uintptr(instCount),
		uintptr(firstVtx), uintptr(firstInst))
}

func (o *ID3D12GraphicsCommandList) DrawIndexedInstanced(idxCount, instCount, firstIdx uint32, vtxOff int32, firstInst uint32) {
	call(o.vtbl.DrawIndexedInstanced, o.ptr(),
		uintptr(idxCount), uintptr(instCount),
		uintptr(firstIdx), uintptr(vtxOff), uintptr(firstInst))
}

func (o *ID3D12GraphicsCommandList) Dispatch(x, y, z uint32) {
	call(o.vtbl.Dispatch, o.ptr(), uintptr(x), uintptr(y), uintptr(z))
}

func (o *ID3D12GraphicsCommandList) CopyBufferRegion(dst *ID3D12Resource, dstOff uint64, src *ID3D12Resource, srcOff, size uint64) {
	call(o.vtbl.CopyBufferRegion, o.ptr(),
		uintptr(unsafe.Pointer(dst)), uintptr(dstOff),
		uintptr(unsafe.Pointer(src)), uintptr(srcOff),
		uintptr(size))
}

// CopyTextureRegion takes pointers to either copy location arm.
func (o *ID3D12GraphicsCommandList) CopyTextureRegion(dst unsafe.Pointer, x, y, z uint32, src unsafe.Pointer, box *BOX) {
	call(o.vtbl.CopyTextureRegion, o.ptr(),
		uintptr(dst),
		uintptr(x), uintptr(y), uintptr(z),
		uintptr(src),
		uintptr(unsafe.Pointer(box)))
}

func (o *ID3D12GraphicsCommandList) CopyResource(dst, src *ID3D12Resource) {
	call(o.vtbl.CopyResource, o.ptr(),
		uintptr(unsafe.Pointer(dst)),
		uintptr(unsafe.Pointer(src)))
}

func (o *ID3D12GraphicsCommandList) ResolveSubresource(dst *ID3D12Resource, dstSub uint32, src *ID3D12Resource, srcSub uint32, format FORMAT) {
	call(o.vtbl.ResolveSubresource, o.ptr(),
		uintptr(unsafe.Pointer(dst)), uintptr(dstSub),
		uintptr(unsafe.Pointer(src)), uintptr(srcSub),
		uintptr(format))
}

func (o *ID3D12GraphicsCommandList) IASetPrimitiveTopology(topology uint32) {
	call(o.vtbl.IASetPrimitiveTopology, o.ptr(), uintptr(topology))
}

func (o *ID3D12GraphicsCommandList) RSSetViewports(viewports []VIEWPORT) {
	call(o.vtbl.RSSetViewports, o.ptr(),
		uintptr(len(viewports)),
		uintptr(unsafe.Pointer(&viewports[0])))
}

func (o *ID3D12GraphicsCommandList) RSSetScissorRects(rects []RECT) {
	call(o.vtbl.RSSetScissorRects, o.ptr(),
		uintptr(len(rects)),
		uintptr(unsafe.Pointer(&rects[0])))
}

func (o *ID3D12GraphicsCommandList) OMSetBlendFactor(factor *[4]float32) {
	call(o.vtbl.OMSetBlendFactor, o.ptr(), uintptr(unsafe.Pointer(factor)))
}

func (o *ID3D12GraphicsCommandList) OMSetStencilRef(ref uint32) {
	call(o.vtbl.OMSetStencilRef, o.ptr(), uintptr(ref))
}

func (o *ID3D12GraphicsCommandList) SetPipelineState(ps *ID3D12PipelineState) {
	call(o.vtbl.SetPipelineState, o.ptr(), uintptr(unsafe.Pointer(ps)))
}

func (o *ID3D12GraphicsCommandList) ResourceBarrier(barriers []RESOURCE_BARRIER) {
	call(o.vtbl.ResourceBarrier, o.ptr(),
		uintptr(len(barriers)),
		uintptr(unsafe.Pointer(&barriers[0])))
}

func (o *ID3D12GraphicsCommandList) SetDescriptorHeaps(heaps []*ID3D12DescriptorHeap) {
	call(o.vtbl.SetDescriptorHeaps, o.ptr(),
		uintptr(len(heaps)),
		uintptr(unsafe.Pointer(&heaps[0])))
}

func (o *ID3D12GraphicsCommandList) SetComputeRootSignature(rs *ID3D12RootSignature) {
	call(o.vtbl.SetComputeRootSignature, o.ptr(), uintptr(unsafe.Pointer(rs)))
}

func (o *ID3D12GraphicsCommandList) SetGraphicsRootSignature(rs *ID3D12RootSignature) {
	call(o.vtbl.SetGraphicsRootSignature, o.ptr(), uintptr(unsafe.Pointer(rs)))
}

func (o *ID3D12GraphicsCommandList) SetComputeRootDescriptorTable(param uint32, base GPU_DESCRIPTOR_HANDLE) {
	call(o.vtbl.SetComputeRootDescriptorTable, o.ptr(),
		uintptr(param), uintptr(base.Ptr))
}

func (o *ID3D12GraphicsCommandList) SetGraphicsRootDescriptorTable(param uint32, base GPU_DESCRIPTOR_HANDLE) {
	call(o.vtbl.SetGraphicsRootDescriptorTable, o.ptr(),
		uintptr(param), uintptr(base.Ptr))
}

func (o *ID3D12GraphicsCommandList) SetComputeRootConstantBufferView(param uint32, addr uint64) {
	call(o.vtbl.SetComputeRootConstantBufferView, o.ptr(),
		uintptr(param), uintptr(addr))
}

func (o *ID3D12GraphicsCommandList) SetGraphicsRootConstantBufferView(param uint32, addr uint64) {
	call(o.vtbl.SetGraphicsRootConstantBufferView, o.ptr(),
		uintptr(param), uintptr(addr))
}

func (o *ID3D12GraphicsCommandList) IASetIndexBuffer(view *INDEX_BUFFER_VIEW) {
	call(o.vtbl.IASetIndexBuffer, o.ptr(), uintptr(unsafe.Pointer(view)))
}

func (o *ID3D12GraphicsCommandList) IASetVertexBuffers(first uint32, views []VERTEX_BUFFER_VIEW) {
	call(o.vtbl.IASetVertexBuffers, o.ptr(),
		uintptr(first),
		uintptr(len(views)),
		uintptr(unsafe.Pointer(&views[0])))
}

func (o *ID3D12GraphicsCommandList) OMSetRenderTargets(rtvs []CPU_DESCRIPTOR_HANDLE, dsv *CPU_DESCRIPTOR_HANDLE) {
	var p uintptr
	if len(rtvs) > 0 {
		p = uintptr(unsafe.Pointer(&rtvs[0]))
	}
	call(o.vtbl.OMSetRenderTargets, o.ptr(),
		uintptr(len(rtvs)), p,
		0, // handles are not consecutive
		uintptr(unsafe.Pointer(dsv)))
}

func (o *ID3D12GraphicsCommandList) ClearDepthStencilView(dsv CPU_DESCRIPTOR_HANDLE, flags uint32, depth float32, stencil uint8) {
	call(o.vtbl.ClearDepthStencilView, o.ptr(),
		dsv.Ptr, uintptr(flags),
		uintptr(f32bits(depth)), uintptr(stencil),
		0, 0) // no rects
}

func (o *ID3D12GraphicsCommandList) ClearRenderTargetView(rtv CPU_DESCRIPTOR_HANDLE, color *[4]float32) {
	call(o.vtbl.ClearRenderTargetView, o.ptr(),
		rtv.Ptr, uintptr(unsafe.Pointer(color)),
		0, 0) // no rects
}

func (o *ID3D12GraphicsCommandList) ClearUnorderedAccessViewUint(gpu GPU_DESCRIPTOR_HANDLE, cpu CPU_DESCRIPTOR_HANDLE, res *ID3D12Resource, values *[4]uint32) {
	call(o.vtbl.ClearUnorderedAccessViewUint, o.ptr(),
		uintptr(gpu.Ptr), cpu.Ptr,
		uintptr(unsafe.Pointer(res)),
		uintptr(unsafe.Pointer(values)),
		0, 0) // no rects
}

func (o *ID3D12GraphicsCommandList) BeginQuery(heap *ID3D12QueryHeap, typ QUERY_TYPE, index uint32) {
	call(o.vtbl.BeginQuery, o.ptr(),
		uintptr(unsafe.Pointer(heap)), uintptr(typ), uintptr(index))
}

func (o *ID3D12GraphicsCommandList) EndQuery(heap *ID3D12QueryHeap, typ QUERY_TYPE, index uint32) {
	call(o.vtbl.EndQuery, o.ptr(),
		uintptr(unsafe.Pointer(heap)), uintptr(typ), uintptr(index))
}

func (o *ID3D12GraphicsCommandList) ResolveQueryData(heap *ID3D12QueryHeap, typ QUERY_TYPE, first, n uint32, dst *ID3D12Resource, dstOff uint64) {
	call(o.vtbl.ResolveQueryData, o.ptr(),
		uintptr(unsafe.Pointer(heap)), uintptr(typ),
		uintptr(first), uintptr(n),
		uintptr(unsafe.Pointer(dst)), uintptr(dstOff))
}

func (o *ID3D12GraphicsCommandList) SetPredication(res *ID3D12Resource, off uint64, op uint32) {
	call(o.vtbl.SetPredication, o.ptr(),
		uintptr(unsafe.Pointer(res)), uintptr(off), uintptr(op))
}

func (o *ID3D12GraphicsCommandList) ExecuteIndirect(sig *ID3D12CommandSignature, maxCount uint32, args *ID3D12Resource, argsOff uint64, count *ID3D12Resource, countOff uint64) {
	call(o.vtbl.ExecuteIndirect, o.ptr(),
		uintptr(unsafe.Pointer(sig)),
		uintptr(maxCount),
		uintptr(unsafe.Pointer(args)), uintptr(argsOff),
		uintptr(unsafe.Pointer(count)), uintptr(countOff))
}

func (o *ID3D12Debug) Release() uint32 {
	return uint32(call(o.vtbl.Release, uintptr(unsafe.Pointer(o))))
}

func (o *ID3D12Debug) EnableDebugLayer() {
	call(o.vtbl.EnableDebugLayer, uintptr(unsafe.Pointer(o)))
}

func (o *ID3D12DeviceRemovedExtendedDataSettings) Release() uint32 {
	return uint32(call(o.vtbl.Release, uintptr(unsafe.Pointer(o))))
}

const dredEnablementForcedOn = 1

func (o *ID3D12DeviceRemovedExtendedDataSettings) SetAutoBreadcrumbsEnablement(on bool) {
	var v uintptr
	if on {
		v = dredEnablementForcedOn
	}
	call(o.vtbl.SetAutoBreadcrumbsEnablement, uintptr(unsafe.Pointer(o)), v)
}

func (o *ID3D12DeviceRemovedExtendedDataSettings) SetPageFaultEnablement(on bool) {
	var v uintptr
	if on {
		v = dredEnablementForcedOn
	}
	call(o.vtbl.SetPageFaultEnablement, uintptr(unsafe.Pointer(o)), v)
}

func f32bits(f float32) uint32 { return *(*uint32)(unsafe.Pointer(&f)) }
