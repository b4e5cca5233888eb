// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func (o *IDXGIFactory4) ptr() uintptr { return uintptr(unsafe.Pointer(o)) }

func (o *IDXGIFactory4) Release() uint32 { return uint32(call(o.vtbl.Release, o.ptr())) }

// EnumAdapters1 returns the adapter at the given ordinal, or nil
// when the enumeration is exhausted.
func (o *IDXGIFactory4) EnumAdapters1(index uint32) (*IDXGIAdapter1, error) {
	var a *IDXGIAdapter1
	hr := call(o.vtbl.EnumAdapters1, o.ptr(),
		uintptr(index), uintptr(unsafe.Pointer(&a)))
	if uint32(hr) == DXGI_ERROR_NOT_FOUND {
		return nil, nil
	}
	return a, hrErr("IDXGIFactory4::EnumAdapters1", hr)
}

// EnumWarpAdapter returns the software rasterizer adapter.
func (o *IDXGIFactory4) EnumWarpAdapter() (*IDXGIAdapter1, error) {
	var a *IDXGIAdapter1
	hr := call(o.vtbl.EnumWarpAdapter, o.ptr(),
		uintptr(unsafe.Pointer(&IID_IDXGIAdapter1)),
		uintptr(unsafe.Pointer(&a)))
	return a, hrErr("IDXGIFactory4::EnumWarpAdapter", hr)
}

func (o *IDXGIFactory4) MakeWindowAssociation(hwnd windows.HWND, flags uint32) error {
	hr := call(o.vtbl.MakeWindowAssociation, o.ptr(),
		uintptr(hwnd), uintptr(flags))
	return hrErr("IDXGIFactory4::MakeWindowAssociation", hr)
}

// CreateSwapChainForHwnd creates a flip-model swap chain over a
// command queue.
func (o *IDXGIFactory4) CreateSwapChainForHwnd(queue *ID3D12CommandQueue, hwnd windows.HWND, desc *SWAP_CHAIN_DESC1) (*IDXGISwapChain3, error) {
	var sc *IDXGISwapChain3
	hr := call(o.vtbl.CreateSwapChainForHwnd, o.ptr(),
		uintptr(unsafe.Pointer(queue)),
		uintptr(hwnd),
		uintptr(unsafe.Pointer(desc)),
		0, // no fullscreen desc
		0, // no output restriction
		uintptr(unsafe.Pointer(&sc)))
	if err := hrErr("IDXGIFactory4::CreateSwapChainForHwnd", hr); err != nil {
		return nil, err
	}
	// The returned interface is IDXGISwapChain1; query the one
	// the driver needs.
	var sc3 *IDXGISwapChain3
	u := (*IUnknown)(unsafe.Pointer(sc))
	if err := u.QueryInterface(&IID_IDXGISwapChain3, unsafe.Pointer(&sc3)); err != nil {
		u.Release()
		return nil, err
	}
	u.Release()
	return sc3, nil
}

// SupportsTearing reports whether tearing presents are available.
// It requires IDXGIFactory5.
func (o *IDXGIFactory4) SupportsTearing() bool {
	var f5 *IDXGIFactory5
	u := (*IUnknown)(unsafe.Pointer(o))
	if err := u.QueryInterface(&IID_IDXGIFactory5, unsafe.Pointer(&f5)); err != nil {
		return false
	}
	var allow uint32
	hr := call(f5.vtbl.CheckFeatureSupport, uintptr(unsafe.Pointer(f5)),
		FEATURE_PRESENT_ALLOW_TEARING,
		uintptr(unsafe.Pointer(&allow)),
		unsafe.Sizeof(allow))
	f5.Release()
	return !FAILED(uint32(hr)) && allow != 0
}

// EnumAdapterByGpuPreference returns the adapter at the given
// ordinal under the given preference, or nil when exhausted.
// It requires IDXGIFactory6; callers must handle a failed query
// on older systems.
func (o *IDXGIFactory4) EnumAdapterByGpuPreference(index, preference uint32) (*IDXGIAdapter1, error) {
	var f6 *IDXGIFactory6
	u := (*IUnknown)(unsafe.Pointer(o))
	if err := u.QueryInterface(&IID_IDXGIFactory6, unsafe.Pointer(&f6)); err != nil {
		return nil, err
	}
	defer f6.Release()
	var a *IDXGIAdapter1
	hr := call(f6.vtbl.EnumAdapterByGpuPreference, uintptr(unsafe.Pointer(f6)),
		uintptr(index), uintptr(preference),
		uintptr(unsafe.Pointer(&IID_IDXGIAdapter1)),
		uintptr(unsafe.Pointer(&a)))
	if uint32(hr) == DXGI_ERROR_NOT_FOUND {
		return nil, nil
	}
	return a, hrErr("IDXGIFactory6::EnumAdapterByGpuPreference", hr)
}

func (o *IDXGIFactory5) Release() uint32 {
	return uint32(call(o.vtbl.Release, uintptr(unsafe.Pointer(o))))
}

func (o *IDXGIFactory6) Release() uint32 {
	return uint32(call(o.vtbl.Release, uintptr(unsafe.Pointer(o))))
}

func (o *IDXGIAdapter1) ptr() uintptr { return uintptr(unsafe.Pointer(o)) }

func (o *IDXGIAdapter1) Release() uint32 { return uint32(call(o.vtbl.Release, o.ptr())) }

func (o *IDXGIAdapter1) GetDesc1() (ADAPTER_DESC1, error) {
	var desc ADAPTER_DESC1
	hr := call(o.vtbl.GetDesc1, o.ptr(), uintptr(unsafe.Pointer(&desc)))
	return desc, hrErr("IDXGIAdapter1::GetDesc1", hr)
}

// QueryVideoMemoryInfo returns the local memory budget of the
// adapter. It requires IDXGIAdapter3.
func (o *IDXGIAdapter1) QueryVideoMemoryInfo() (QUERY_VIDEO_MEMORY_INFO, error) {
	var a3 *IDXGIAdapter3
	u := (*IUnknown)(unsafe.Pointer(o))
	if err := u.QueryInterface(&IID_IDXGIAdapter3, unsafe.Pointer(&a3)); err != nil {
		return QUERY_VIDEO_MEMORY_INFO{}, err
	}
	defer a3.Release()
	var info QUERY_VIDEO_MEMORY_INFO
	hr := call(a3.vtbl.QueryVideoMemoryInfo, uintptr(unsafe.Pointer(a3)),
		0, // node
		0, // local memory segment
		uintptr(unsafe.Pointer(&info)))
	return info, hrErr("IDXGIAdapter3::QueryVideoMemoryInfo", hr)
}

func (o *IDXGIAdapter3) Release() uint32 {
	return uint32(call(o.vtbl.Release, uintptr(unsafe.Pointer(o))))
}

func (o *IDXGISwapChain3) ptr() uintptr { return uintptr(unsafe.Pointer(o)) }

func (o *IDXGISwapChain3) Release() uint32 { return uint32(call(o.vtbl.Release, o.ptr())) }

func (o *IDXGISwapChain3) Present(syncInterval, flags uint32) error {
	hr := call(o.vtbl.Present, o.ptr(),
		uintptr(syncInterval), uintptr(flags))
	return hrErr("IDXGISwapChain3::Present", hr)
}

func (o *IDXGISwapChain3) GetBuffer(index uint32) (*ID3D12Resource, error) {
	var res *ID3D12Resource
	hr := call(o.vtbl.GetBuffer, o.ptr(),
		uintptr(index),
		uintptr(unsafe.Pointer(&IID_ID3D12Resource)),
		uintptr(unsafe.Pointer(&res)))
	return res, hrErr("IDXGISwapChain3::GetBuffer", hr)
}

// ResizeBuffers keeps the current format and buffer count when
// the respective arguments are zero.
func (o *IDXGISwapChain3) ResizeBuffers(bufferCount, width, height uint32, format FORMAT, flags uint32) error {
	hr := call(o.vtbl.ResizeBuffers, o.ptr(),
		uintptr(bufferCount),
		uintptr(width), uintptr(height),
		uintptr(format), uintptr(flags))
	return hrErr("IDXGISwapChain3::ResizeBuffers", hr)
}

func (o *IDXGISwapChain3) SetFullscreenState(fullscreen bool) error {
	var f uintptr
	if fullscreen {
		f = 1
	}
	hr := call(o.vtbl.SetFullscreenState, o.ptr(),
		f,
		0) // default output
	return hrErr("IDXGISwapChain3::SetFullscreenState", hr)
}

func (o *IDXGISwapChain3) GetCurrentBackBufferIndex() uint32 {
	return uint32(call(o.vtbl.GetCurrentBackBufferIndex, o.ptr()))
}
