// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d

import "unsafe"

// Interface wrappers and their vtable layouts.
// The declarations are unconditionally compiled so portable
// code can store typed interface pointers; every method that
// calls into the native libraries lives in a *_windows.go
// file. Vtable structs declare every slot of the native
// interface so the offsets of the methods the driver calls
// are correct.

// IUnknownVtbl is the vtable prefix common to every COM
// interface.
type IUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

// IUnknown is a generic COM interface pointer.
type IUnknown struct {
	vtbl *IUnknownVtbl
}

// ID3DBlobVtbl is the vtable of ID3D10Blob.
type ID3DBlobVtbl struct {
	IUnknownVtbl
	GetBufferPointer uintptr
	GetBufferSize    uintptr
}

// ID3DBlob holds serialized data returned by the runtime.
type ID3DBlob struct {
	vtbl *ID3DBlobVtbl
}

// ID3D12ObjectVtbl is the vtable prefix of ID3D12Object.
type ID3D12ObjectVtbl struct {
	IUnknownVtbl
	GetPrivateData          uintptr
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	SetName                 uintptr
}

// ID3D12DeviceChildVtbl is the vtable prefix of
// ID3D12DeviceChild.
type ID3D12DeviceChildVtbl struct {
	ID3D12ObjectVtbl
	GetDevice uintptr
}

// ID3D12DeviceVtbl is the vtable of ID3D12Device.
type ID3D12DeviceVtbl struct {
	ID3D12ObjectVtbl
	GetNodeCount                     uintptr
	CreateCommandQueue               uintptr
	CreateCommandAllocator           uintptr
	CreateGraphicsPipelineState      uintptr
	CreateComputePipelineState       uintptr
	CreateCommandList                uintptr
	CheckFeatureSupport              uintptr
	CreateDescriptorHeap             uintptr
	GetDescriptorHandleIncrementSize uintptr
	CreateRootSignature              uintptr
	CreateConstantBufferView         uintptr
	CreateShaderResourceView         uintptr
	CreateUnorderedAccessView        uintptr
	CreateRenderTargetView           uintptr
	CreateDepthStencilView           uintptr
	CreateSampler                    uintptr
	CopyDescriptors                  uintptr
	CopyDescriptorsSimple            uintptr
	GetResourceAllocationInfo        uintptr
	GetCustomHeapProperties          uintptr
	CreateCommittedResource          uintptr
	CreateHeap                       uintptr
	CreatePlacedResource             uintptr
	CreateReservedResource           uintptr
	CreateSharedHandle               uintptr
	OpenSharedHandle                 uintptr
	OpenSharedHandleByName           uintptr
	MakeResident                     uintptr
	Evict                            uintptr
	CreateFence                      uintptr
	GetDeviceRemovedReason           uintptr
	GetCopyableFootprints            uintptr
	CreateQueryHeap                  uintptr
	SetStablePowerState              uintptr
	CreateCommandSignature           uintptr
	GetResourceTiling                uintptr
	GetAdapterLuid                   uintptr
}

// ID3D12Device wraps the native device interface.
type ID3D12Device struct {
	vtbl *ID3D12DeviceVtbl
}

// ID3D12CommandQueueVtbl is the vtable of ID3D12CommandQueue.
type ID3D12CommandQueueVtbl struct {
	ID3D12DeviceChildVtbl
	UpdateTileMappings    uintptr
	CopyTileMappings      uintptr
	ExecuteCommandLists   uintptr
	SetMarker             uintptr
	BeginEvent            uintptr
	EndEvent              uintptr
	Signal                uintptr
	Wait                  uintptr
	GetTimestampFrequency uintptr
	GetClockCalibration   uintptr
	GetDesc               uintptr
}

// ID3D12CommandQueue wraps the native command queue interface.
type ID3D12CommandQueue struct {
	vtbl *ID3D12CommandQueueVtbl
}

// ID3D12CommandAllocatorVtbl is the vtable of
// ID3D12CommandAllocator.
type ID3D12CommandAllocatorVtbl struct {
	ID3D12DeviceChildVtbl
	Reset uintptr
}

// ID3D12CommandAllocator wraps the native command allocator.
type ID3D12CommandAllocator struct {
	vtbl *ID3D12CommandAllocatorVtbl
}

// ID3D12FenceVtbl is the vtable of ID3D12Fence.
type ID3D12FenceVtbl struct {
	ID3D12DeviceChildVtbl
	GetCompletedValue    uintptr
	SetEventOnCompletion uintptr
	Signal               uintptr
}

// ID3D12Fence wraps the native fence interface.
type ID3D12Fence struct {
	vtbl *ID3D12FenceVtbl
}

// ID3D12ResourceVtbl is the vtable of ID3D12Resource.
type ID3D12ResourceVtbl struct {
	ID3D12DeviceChildVtbl
	Map                  uintptr
	Unmap                uintptr
	GetDesc              uintptr
	GetGPUVirtualAddress uintptr
	WriteToSubresource   uintptr
	ReadFromSubresource  uintptr
	GetHeapProperties    uintptr
}

// ID3D12Resource wraps the native resource interface.
type ID3D12Resource struct {
	vtbl *ID3D12ResourceVtbl
}

// ID3D12DescriptorHeapVtbl is the vtable of
// ID3D12DescriptorHeap.
type ID3D12DescriptorHeapVtbl struct {
	ID3D12DeviceChildVtbl
	GetDesc                            uintptr
	GetCPUDescriptorHandleForHeapStart uintptr
	GetGPUDescriptorHandleForHeapStart uintptr
}

// ID3D12DescriptorHeap wraps the native descriptor heap.
type ID3D12DescriptorHeap struct {
	vtbl *ID3D12DescriptorHeapVtbl
}

// ID3D12QueryHeapVtbl is the vtable of ID3D12QueryHeap.
type ID3D12QueryHeapVtbl struct {
	ID3D12DeviceChildVtbl
}

// ID3D12QueryHeap wraps the native query heap.
type ID3D12QueryHeap struct {
	vtbl *ID3D12QueryHeapVtbl
}

// ID3D12PipelineStateVtbl is the vtable of
// ID3D12PipelineState.
type ID3D12PipelineStateVtbl struct {
	ID3D12DeviceChildVtbl
	GetCachedBlob uintptr
}

// ID3D12PipelineState wraps the native pipeline state object.
type ID3D12PipelineState struct {
	vtbl *ID3D12PipelineStateVtbl
}

// ID3D12RootSignatureVtbl is the vtable of
// ID3D12RootSignature.
type ID3D12RootSignatureVtbl struct {
	ID3D12DeviceChildVtbl
}

// ID3D12RootSignature wraps the native root signature.
type ID3D12RootSignature struct {
	vtbl *ID3D12RootSignatureVtbl
}

// ID3D12CommandSignatureVtbl is the vtable of
// ID3D12CommandSignature.
type ID3D12CommandSignatureVtbl struct {
	ID3D12DeviceChildVtbl
}

// ID3D12CommandSignature wraps the native command signature.
type ID3D12CommandSignature struct {
	vtbl *ID3D12CommandSignatureVtbl
}

// ID3D12GraphicsCommandListVtbl is the vtable of
// ID3D12GraphicsCommandList.
type ID3D12GraphicsCommandListVtbl struct {
	ID3D12DeviceChildVtbl
	GetType                            uintptr
	Close                              uintptr
	Reset                              uintptr
	ClearState                         uintptr
	DrawInstanced                      uintptr
	DrawIndexedInstanced               uintptr
	Dispatch                           uintptr
	CopyBufferRegion                   uintptr
	CopyTextureRegion                  uintptr
	CopyResource                       uintptr
	CopyTiles                          uintptr
	ResolveSubresource                 uintptr
	IASetPrimitiveTopology             uintptr
	RSSetViewports                     uintptr
	RSSetScissorRects                  uintptr
	OMSetBlendFactor                   uintptr
	OMSetStencilRef                    uintptr
	SetPipelineState                   uintptr
	ResourceBarrier                    uintptr
	ExecuteBundle                      uintptr
	SetDescriptorHeaps                 uintptr
	SetComputeRootSignature            uintptr
	SetGraphicsRootSignature           uintptr
	SetComputeRootDescriptorTable      uintptr
	SetGraphicsRootDescriptorTable     uintptr
	SetComputeRoot32BitConstant        uintptr
	SetGraphicsRoot32BitConstant       uintptr
	SetComputeRoot32BitConstants       uintptr
	SetGraphicsRoot32BitConstants      uintptr
	SetComputeRootConstantBufferView   uintptr
	SetGraphicsRootConstantBufferView  uintptr
	SetComputeRootShaderResourceView   uintptr
	SetGraphicsRootShaderResourceView  uintptr
	SetComputeRootUnorderedAccessView  uintptr
	SetGraphicsRootUnorderedAccessView uintptr
	IASetIndexBuffer                   uintptr
	IASetVertexBuffers                 uintptr
	SOSetTargets                       uintptr
	OMSetRenderTargets                 uintptr
	ClearDepthStencilView              uintptr
	ClearRenderTargetView              uintptr
	ClearUnorderedAccessViewUint       uintptr
	ClearUnorderedAccessViewFloat      uintptr
	DiscardResource                    uintptr
	BeginQuery                         uintptr
	EndQuery                           uintptr
	ResolveQueryData                   uintptr
	SetPredication                     uintptr
	SetMarker                          uintptr
	BeginEvent                         uintptr
	EndEvent                           uintptr
	ExecuteIndirect                    uintptr
}

// ID3D12GraphicsCommandList wraps the native command list.
type ID3D12GraphicsCommandList struct {
	vtbl *ID3D12GraphicsCommandListVtbl
}

// ID3D12DebugVtbl is the vtable of ID3D12Debug.
type ID3D12DebugVtbl struct {
	IUnknownVtbl
	EnableDebugLayer uintptr
}

// ID3D12Debug wraps the debug layer controller.
type ID3D12Debug struct {
	vtbl *ID3D12DebugVtbl
}

// ID3D12DeviceRemovedExtendedDataSettingsVtbl is the vtable
// of ID3D12DeviceRemovedExtendedDataSettings.
type ID3D12DeviceRemovedExtendedDataSettingsVtbl struct {
	IUnknownVtbl
	SetAutoBreadcrumbsEnablement uintptr
	SetPageFaultEnablement       uintptr
	SetWatsonDumpEnablement      uintptr
}

// ID3D12DeviceRemovedExtendedDataSettings controls DRED.
type ID3D12DeviceRemovedExtendedDataSettings struct {
	vtbl *ID3D12DeviceRemovedExtendedDataSettingsVtbl
}

// IDXGIObjectVtbl is the vtable prefix of IDXGIObject.
type IDXGIObjectVtbl struct {
	IUnknownVtbl
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	GetPrivateData          uintptr
	GetParent               uintptr
}

// IDXGIFactory4Vtbl is the vtable of IDXGIFactory4.
type IDXGIFactory4Vtbl struct {
	IDXGIObjectVtbl
	// IDXGIFactory.
	EnumAdapters          uintptr
	MakeWindowAssociation uintptr
	GetWindowAssociation  uintptr
	CreateSwapChain       uintptr
	CreateSoftwareAdapter uintptr
	// IDXGIFactory1.
	EnumAdapters1 uintptr
	IsCurrent     uintptr
	// IDXGIFactory2.
	IsWindowedStereoEnabled       uintptr
	CreateSwapChainForHwnd        uintptr
	CreateSwapChainForCoreWindow  uintptr
	GetSharedResourceAdapterLuid  uintptr
	RegisterStereoStatusWindow    uintptr
	RegisterStereoStatusEvent     uintptr
	UnregisterStereoStatus        uintptr
	RegisterOcclusionStatusWindow uintptr
	RegisterOcclusionStatusEvent  uintptr
	UnregisterOcclusionStatus     uintptr
	CreateSwapChainForComposition uintptr
	// IDXGIFactory3.
	GetCreationFlags uintptr
	// IDXGIFactory4.
	EnumAdapterByLuid uintptr
	EnumWarpAdapter   uintptr
}

// IDXGIFactory4 wraps the native factory interface.
type IDXGIFactory4 struct {
	vtbl *IDXGIFactory4Vtbl
}

// IDXGIFactory5Vtbl is the vtable of IDXGIFactory5.
type IDXGIFactory5Vtbl struct {
	IDXGIFactory4Vtbl
	CheckFeatureSupport uintptr
}

// IDXGIFactory5 adds feature queries to IDXGIFactory4.
type IDXGIFactory5 struct {
	vtbl *IDXGIFactory5Vtbl
}

// IDXGIFactory6Vtbl is the vtable of IDXGIFactory6.
type IDXGIFactory6Vtbl struct {
	IDXGIFactory5Vtbl
	EnumAdapterByGpuPreference uintptr
}

// IDXGIFactory6 adds GPU preference enumeration.
type IDXGIFactory6 struct {
	vtbl *IDXGIFactory6Vtbl
}

// IDXGIAdapter1Vtbl is the vtable of IDXGIAdapter1.
type IDXGIAdapter1Vtbl struct {
	IDXGIObjectVtbl
	EnumOutputs           uintptr
	GetDesc               uintptr
	CheckInterfaceSupport uintptr
	GetDesc1              uintptr
}

// IDXGIAdapter1 wraps the native adapter interface.
type IDXGIAdapter1 struct {
	vtbl *IDXGIAdapter1Vtbl
}

// IDXGIAdapter3Vtbl is the vtable of IDXGIAdapter3.
type IDXGIAdapter3Vtbl struct {
	IDXGIAdapter1Vtbl
	// IDXGIAdapter2.
	GetDesc2 uintptr
	// IDXGIAdapter3.
	RegisterHardwareContentProtectionTeardownStatusEvent uintptr
	UnregisterHardwareContentProtectionTeardownStatus    uintptr
	QueryVideoMemoryInfo                                 uintptr
	SetVideoMemoryReservation                            uintptr
	RegisterVideoMemoryBudgetChangeNotificationEvent     uintptr
	UnregisterVideoMemoryBudgetChangeNotification        uintptr
}

// IDXGIAdapter3 adds memory budget queries.
type IDXGIAdapter3 struct {
	vtbl *IDXGIAdapter3Vtbl
}

// IDXGISwapChain3Vtbl is the vtable of IDXGISwapChain3.
type IDXGISwapChain3Vtbl struct {
	IDXGIObjectVtbl
	// IDXGIDeviceSubObject.
	GetDevice uintptr
	// IDXGISwapChain.
	Present             uintptr
	GetBuffer           uintptr
	SetFullscreenState  uintptr
	GetFullscreenState  uintptr
	GetDesc             uintptr
	ResizeBuffers       uintptr
	ResizeTarget        uintptr
	GetContainingOutput uintptr
	GetFrameStatistics  uintptr
	GetLastPresentCount uintptr
	// IDXGISwapChain1.
	GetDesc1                 uintptr
	GetFullscreenDesc        uintptr
	GetHwnd                  uintptr
	GetCoreWindow            uintptr
	Present1                 uintptr
	IsTemporaryMonoSupported uintptr
	GetRestrictToOutput      uintptr
	SetBackgroundColor       uintptr
	GetBackgroundColor       uintptr
	SetRotation              uintptr
	GetRotation              uintptr
	// IDXGISwapChain2.
	SetSourceSize                 uintptr
	GetSourceSize                 uintptr
	SetMaximumFrameLatency        uintptr
	GetMaximumFrameLatency        uintptr
	GetFrameLatencyWaitableObject uintptr
	SetMatrixTransform            uintptr
	GetMatrixTransform            uintptr
	// IDXGISwapChain3.
	GetCurrentBackBufferIndex uintptr
	CheckColorSpaceSupport    uintptr
	SetColorSpace1            uintptr
	ResizeBuffers1            uintptr
}

// IDXGISwapChain3 wraps the native swap chain interface.
type IDXGISwapChain3 struct {
	vtbl *IDXGISwapChain3Vtbl
}

// Ptr returns the raw interface pointer for use in barriers
// and copy locations.
func (o *ID3D12Resource) Ptr() uintptr { return uintptr(unsafe.Pointer(o)) }

// Ptr returns the raw interface pointer for pipeline state
// descs.
func (o *ID3D12RootSignature) Ptr() uintptr { return uintptr(unsafe.Pointer(o)) }
