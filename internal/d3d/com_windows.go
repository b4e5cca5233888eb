// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	d3d12DLL = windows.NewLazySystemDLL("d3d12.dll")
	dxgiDLL  = windows.NewLazySystemDLL("dxgi.dll")

	procD3D12CreateDevice           = d3d12DLL.NewProc("D3D12CreateDevice")
	procD3D12GetDebugInterface      = d3d12DLL.NewProc("D3D12GetDebugInterface")
	procD3D12SerializeRootSignature = d3d12DLL.NewProc("D3D12SerializeRootSignature")
	procCreateDXGIFactory2          = dxgiDLL.NewProc("CreateDXGIFactory2")
)

// IIDs of the interfaces the driver may query.
var (
	IID_ID3D12Device            = GUID{0x189819f1, 0x1db6, 0x4b57, [8]byte{0xbe, 0x54, 0x18, 0x21, 0x33, 0x9b, 0x85, 0xf7}}
	IID_ID3D12CommandQueue      = GUID{0x0ec870a6, 0x5d7e, 0x4c22, [8]byte{0x8c, 0xfc, 0x5b, 0xaa, 0xe0, 0x76, 0x16, 0xed}}
	IID_ID3D12CommandAllocator  = GUID{0x6102dee4, 0xaf59, 0x4b09, [8]byte{0xb9, 0x99, 0xb4, 0x4d, 0x73, 0xf0, 0x9b, 0x24}}
	IID_ID3D12GraphicsCommandList = GUID{0x5b160d0f, 0xac1b, 0x4185, [8]byte{0x8b, 0xa8, 0xb3, 0xae, 0x42, 0xa5, 0xa4, 0x55}}
	IID_ID3D12Fence             = GUID{0x0a753dcf, 0xc4d8, 0x4b91, [8]byte{0xad, 0xf6, 0xbe, 0x5a, 0x60, 0xd9, 0x5a, 0x76}}
	IID_ID3D12Resource          = GUID{0x696442be, 0xa72e, 0x4059, [8]byte{0xbc, 0x79, 0x5b, 0x5c, 0x98, 0x04, 0x0f, 0xad}}
	IID_ID3D12DescriptorHeap    = GUID{0x8efb471d, 0x616c, 0x4f49, [8]byte{0x90, 0xf7, 0x12, 0x7b, 0xb7, 0x63, 0xfa, 0x51}}
	IID_ID3D12QueryHeap         = GUID{0x0d9658ae, 0xed45, 0x469e, [8]byte{0xa6, 0x1d, 0x97, 0x0e, 0xc5, 0x83, 0xca, 0xb4}}
	IID_ID3D12PipelineState     = GUID{0x765a30f3, 0xf624, 0x4c6f, [8]byte{0xa8, 0x28, 0xac, 0xe9, 0x48, 0x62, 0x24, 0x45}}
	IID_ID3D12RootSignature     = GUID{0xc54a6b66, 0x72df, 0x4ee8, [8]byte{0x8b, 0xe5, 0xa9, 0x46, 0xa1, 0x42, 0x92, 0x14}}
	IID_ID3D12CommandSignature  = GUID{0xc36a797c, 0xec80, 0x4f0a, [8]byte{0x89, 0x85, 0xa7, 0xb2, 0x47, 0x50, 0x82, 0xd1}}
	IID_ID3D12Debug             = GUID{0x344488b7, 0x6846, 0x474b, [8]byte{0xb9, 0x89, 0xf0, 0x27, 0x44, 0x82, 0x45, 0xe0}}
	IID_ID3D12DeviceRemovedExtendedDataSettings = GUID{0x82bc481c, 0x6b9b, 0x4030, [8]byte{0xae, 0xdb, 0x7e, 0xe3, 0xd1, 0xdf, 0x1e, 0x63}}

	IID_IDXGIFactory4   = GUID{0x1bc6ea02, 0xef36, 0x464f, [8]byte{0xbf, 0x0c, 0x21, 0xca, 0x39, 0xe5, 0x16, 0x8a}}
	IID_IDXGIFactory5   = GUID{0x7632e1f5, 0xee65, 0x4dca, [8]byte{0x87, 0xfd, 0x84, 0xcd, 0x75, 0xf8, 0x83, 0x8d}}
	IID_IDXGIFactory6   = GUID{0xc1b6694f, 0xff09, 0x44a9, [8]byte{0xb0, 0x3c, 0x77, 0x90, 0x0a, 0x0a, 0x1d, 0x17}}
	IID_IDXGIAdapter1   = GUID{0x29038f61, 0x3839, 0x4626, [8]byte{0x91, 0xfd, 0x08, 0x68, 0x79, 0x01, 0x1a, 0x05}}
	IID_IDXGIAdapter3   = GUID{0x645967a4, 0x1392, 0x4310, [8]byte{0xa7, 0x98, 0x80, 0x53, 0xce, 0x3e, 0x93, 0xfd}}
	IID_IDXGISwapChain3 = GUID{0x94d99bdb, 0xf1f8, 0x4ab0, [8]byte{0xb2, 0x36, 0x7d, 0xa0, 0x17, 0x0e, 0xda, 0xb1}}
)

// call invokes a method at the given vtable slot.
func call(fn, this uintptr, args ...uintptr) uintptr {
	a := make([]uintptr, 0, 1+len(args))
	a = append(a, this)
	a = append(a, args...)
	r, _, _ := syscall.SyscallN(fn, a...)
	return r
}

func hrErr(op string, hr uintptr) error {
	if FAILED(uint32(hr)) {
		return &Error{Op: op, Code: uint32(hr)}
	}
	return nil
}

func (o *IUnknown) QueryInterface(iid *GUID, out unsafe.Pointer) error {
	hr := call(o.vtbl.QueryInterface, uintptr(unsafe.Pointer(o)),
		uintptr(unsafe.Pointer(iid)), uintptr(out))
	return hrErr("IUnknown::QueryInterface", hr)
}

func (o *IUnknown) AddRef() uint32 {
	return uint32(call(o.vtbl.AddRef, uintptr(unsafe.Pointer(o))))
}

func (o *IUnknown) Release() uint32 {
	return uint32(call(o.vtbl.Release, uintptr(unsafe.Pointer(o))))
}

func (o *ID3DBlob) Release() uint32 {
	return uint32(call(o.vtbl.Release, uintptr(unsafe.Pointer(o))))
}

// Bytes returns the blob's contents.
// The slice aliases native memory and is invalidated by Release.
func (o *ID3DBlob) Bytes() []byte {
	p := call(o.vtbl.GetBufferPointer, uintptr(unsafe.Pointer(o)))
	n := call(o.vtbl.GetBufferSize, uintptr(unsafe.Pointer(o)))
	if p == 0 || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

// Available reports whether the system libraries needed by
// the driver are present.
func Available() error {
	if err := d3d12DLL.Load(); err != nil {
		return err
	}
	return dxgiDLL.Load()
}

// CreateDevice wraps D3D12CreateDevice.
// A nil adapter selects the default one.
func CreateDevice(adapter *IDXGIAdapter1, minFeatureLevel uint32) (*ID3D12Device, error) {
	var dev *ID3D12Device
	hr, _, _ := procD3D12CreateDevice.Call(
		uintptr(unsafe.Pointer(adapter)),
		uintptr(minFeatureLevel),
		uintptr(unsafe.Pointer(&IID_ID3D12Device)),
		uintptr(unsafe.Pointer(&dev)))
	if err := hrErr("D3D12CreateDevice", hr); err != nil {
		return nil, err
	}
	return dev, nil
}

// SupportsDevice reports whether D3D12CreateDevice would succeed
// for the given adapter and feature level, without creating the
// device.
func SupportsDevice(adapter *IDXGIAdapter1, minFeatureLevel uint32) bool {
	hr, _, _ := procD3D12CreateDevice.Call(
		uintptr(unsafe.Pointer(adapter)),
		uintptr(minFeatureLevel),
		uintptr(unsafe.Pointer(&IID_ID3D12Device)),
		0)
	return hr == S_FALSE || hr == S_OK
}

// GetDebugInterface wraps D3D12GetDebugInterface for ID3D12Debug.
func GetDebugInterface() (*ID3D12Debug, error) {
	var dbg *ID3D12Debug
	hr, _, _ := procD3D12GetDebugInterface.Call(
		uintptr(unsafe.Pointer(&IID_ID3D12Debug)),
		uintptr(unsafe.Pointer(&dbg)))
	if err := hrErr("D3D12GetDebugInterface", hr); err != nil {
		return nil, err
	}
	return dbg, nil
}

// GetDREDSettings wraps D3D12GetDebugInterface for
// ID3D12DeviceRemovedExtendedDataSettings.
func GetDREDSettings() (*ID3D12DeviceRemovedExtendedDataSettings, error) {
	var dred *ID3D12DeviceRemovedExtendedDataSettings
	hr, _, _ := procD3D12GetDebugInterface.Call(
		uintptr(unsafe.Pointer(&IID_ID3D12DeviceRemovedExtendedDataSettings)),
		uintptr(unsafe.Pointer(&dred)))
	if err := hrErr("D3D12GetDebugInterface", hr); err != nil {
		return nil, err
	}
	return dred, nil
}

// SerializeRootSignature wraps D3D12SerializeRootSignature.
// It returns the serialized blob on success and the error blob's
// message, if any, on failure.
func SerializeRootSignature(desc *ROOT_SIGNATURE_DESC) (*ID3DBlob, string, error) {
	var blob, errBlob *ID3DBlob
	hr, _, _ := procD3D12SerializeRootSignature.Call(
		uintptr(unsafe.Pointer(desc)),
		ROOT_SIGNATURE_VERSION_1,
		uintptr(unsafe.Pointer(&blob)),
		uintptr(unsafe.Pointer(&errBlob)))
	if err := hrErr("D3D12SerializeRootSignature", hr); err != nil {
		var msg string
		if errBlob != nil {
			msg = string(errBlob.Bytes())
			errBlob.Release()
		}
		return nil, msg, err
	}
	if errBlob != nil {
		errBlob.Release()
	}
	return blob, "", nil
}

// CreateFactory2 wraps CreateDXGIFactory2.
func CreateFactory2(flags uint32) (*IDXGIFactory4, error) {
	var fac *IDXGIFactory4
	hr, _, _ := procCreateDXGIFactory2.Call(
		uintptr(flags),
		uintptr(unsafe.Pointer(&IID_IDXGIFactory4)),
		uintptr(unsafe.Pointer(&fac)))
	if err := hrErr("CreateDXGIFactory2", hr); err != nil {
		return nil, err
	}
	return fac, nil
}
