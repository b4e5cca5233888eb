// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d

import "unsafe"

// Structs in this file mirror the memory layout of their SDK
// counterparts on 64-bit Windows. Unions are stored as raw words
// sized/aligned like the C union, with accessors for the arms
// the driver uses.

// COMMAND_QUEUE_DESC is D3D12_COMMAND_QUEUE_DESC.
type COMMAND_QUEUE_DESC struct {
	Type     COMMAND_LIST_TYPE
	Priority int32
	Flags    uint32
	NodeMask uint32
}

// DESCRIPTOR_HEAP_DESC is D3D12_DESCRIPTOR_HEAP_DESC.
type DESCRIPTOR_HEAP_DESC struct {
	Type           DESCRIPTOR_HEAP_TYPE
	NumDescriptors uint32
	Flags          uint32
	NodeMask       uint32
}

// CPU_DESCRIPTOR_HANDLE is D3D12_CPU_DESCRIPTOR_HANDLE.
type CPU_DESCRIPTOR_HANDLE struct {
	Ptr uintptr
}

// Offset returns the handle advanced by n descriptors of the
// given increment size.
func (h CPU_DESCRIPTOR_HANDLE) Offset(n int, incrSize uint32) CPU_DESCRIPTOR_HANDLE {
	return CPU_DESCRIPTOR_HANDLE{Ptr: h.Ptr + uintptr(n)*uintptr(incrSize)}
}

// GPU_DESCRIPTOR_HANDLE is D3D12_GPU_DESCRIPTOR_HANDLE.
type GPU_DESCRIPTOR_HANDLE struct {
	Ptr uint64
}

// Offset returns the handle advanced by n descriptors of the
// given increment size.
func (h GPU_DESCRIPTOR_HANDLE) Offset(n int, incrSize uint32) GPU_DESCRIPTOR_HANDLE {
	return GPU_DESCRIPTOR_HANDLE{Ptr: h.Ptr + uint64(n)*uint64(incrSize)}
}

// HEAP_PROPERTIES is D3D12_HEAP_PROPERTIES.
type HEAP_PROPERTIES struct {
	Type                 HEAP_TYPE
	CPUPageProperty      uint32
	MemoryPoolPreference uint32
	CreationNodeMask     uint32
	VisibleNodeMask      uint32
}

// SAMPLE_DESC is DXGI_SAMPLE_DESC.
type SAMPLE_DESC struct {
	Count   uint32
	Quality uint32
}

// RESOURCE_DESC is D3D12_RESOURCE_DESC.
type RESOURCE_DESC struct {
	Dimension        RESOURCE_DIMENSION
	Alignment        uint64
	Width            uint64
	Height           uint32
	DepthOrArraySize uint16
	MipLevels        uint16
	Format           FORMAT
	SampleDesc       SAMPLE_DESC
	Layout           uint32
	Flags            RESOURCE_FLAGS
}

// RANGE is D3D12_RANGE.
type RANGE struct {
	Begin uintptr
	End   uintptr
}

// BOX is D3D12_BOX.
type BOX struct {
	Left   uint32
	Top    uint32
	Front  uint32
	Right  uint32
	Bottom uint32
	Back   uint32
}

// VIEWPORT is D3D12_VIEWPORT.
type VIEWPORT struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

// RECT is the Windows RECT.
type RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// RESOURCE_BARRIER is a D3D12_RESOURCE_BARRIER laid out with the
// transition arm. The UAV and aliasing arms are smaller, so this
// layout covers all three.
type RESOURCE_BARRIER struct {
	Type        uint32
	Flags       uint32
	PResource   uintptr
	Subresource uint32
	StateBefore RESOURCE_STATES
	StateAfter  RESOURCE_STATES
	_           uint32
}

// TransitionBarrier fills b as a transition of one subresource
// (or all of them, with RESOURCE_BARRIER_ALL_SUBRESOURCES).
func TransitionBarrier(res uintptr, subresource uint32, before, after RESOURCE_STATES) RESOURCE_BARRIER {
	return RESOURCE_BARRIER{
		Type:        RESOURCE_BARRIER_TYPE_TRANSITION,
		PResource:   res,
		Subresource: subresource,
		StateBefore: before,
		StateAfter:  after,
	}
}

// UAVBarrier fills b as an unordered access barrier.
// A zero res means every UAV resource.
func UAVBarrier(res uintptr) RESOURCE_BARRIER {
	return RESOURCE_BARRIER{
		Type:      RESOURCE_BARRIER_TYPE_UAV,
		PResource: res,
	}
}

// CONSTANT_BUFFER_VIEW_DESC is D3D12_CONSTANT_BUFFER_VIEW_DESC.
type CONSTANT_BUFFER_VIEW_DESC struct {
	BufferLocation uint64
	SizeInBytes    uint32
	_              uint32
}

// SHADER_RESOURCE_VIEW_DESC is D3D12_SHADER_RESOURCE_VIEW_DESC.
// Use the Set* methods to fill the union arm named by
// ViewDimension.
type SHADER_RESOURCE_VIEW_DESC struct {
	Format                  FORMAT
	ViewDimension           SRV_DIMENSION
	Shader4ComponentMapping uint32
	_                       uint32
	raw                     [3]uint64
}

// BUFFER_SRV is D3D12_BUFFER_SRV.
type BUFFER_SRV struct {
	FirstElement        uint64
	NumElements         uint32
	StructureByteStride uint32
	Flags               uint32
}

// TEX1D_SRV is D3D12_TEX1D_SRV.
type TEX1D_SRV struct {
	MostDetailedMip     uint32
	MipLevels           uint32
	ResourceMinLODClamp float32
}

// TEX1D_ARRAY_SRV is D3D12_TEX1D_ARRAY_SRV.
type TEX1D_ARRAY_SRV struct {
	MostDetailedMip     uint32
	MipLevels           uint32
	FirstArraySlice     uint32
	ArraySize           uint32
	ResourceMinLODClamp float32
}

// TEX2DMS_SRV is D3D12_TEX2DMS_SRV.
type TEX2DMS_SRV struct {
	UnusedField uint32
}

// TEX2D_SRV is D3D12_TEX2D_SRV.
type TEX2D_SRV struct {
	MostDetailedMip     uint32
	MipLevels           uint32
	PlaneSlice          uint32
	ResourceMinLODClamp float32
}

// TEX2D_ARRAY_SRV is D3D12_TEX2D_ARRAY_SRV.
type TEX2D_ARRAY_SRV struct {
	MostDetailedMip     uint32
	MipLevels           uint32
	FirstArraySlice     uint32
	ArraySize           uint32
	PlaneSlice          uint32
	ResourceMinLODClamp float32
}

// TEX3D_SRV is D3D12_TEX3D_SRV.
type TEX3D_SRV struct {
	MostDetailedMip     uint32
	MipLevels           uint32
	ResourceMinLODClamp float32
}

// TEXCUBE_SRV is D3D12_TEXCUBE_SRV.
type TEXCUBE_SRV struct {
	MostDetailedMip     uint32
	MipLevels           uint32
	ResourceMinLODClamp float32
}

// TEXCUBE_ARRAY_SRV is D3D12_TEXCUBE_ARRAY_SRV.
type TEXCUBE_ARRAY_SRV struct {
	MostDetailedMip     uint32
	MipLevels           uint32
	First2DArrayFace    uint32
	NumCubes            uint32
	ResourceMinLODClamp float32
}

// TEX2DMS_ARRAY_SRV is D3D12_TEX2DMS_ARRAY_SRV.
type TEX2DMS_ARRAY_SRV struct {
	FirstArraySlice uint32
	ArraySize       uint32
}

func (d *SHADER_RESOURCE_VIEW_DESC) SetBuffer(x BUFFER_SRV) {
	*(*BUFFER_SRV)(unsafe.Pointer(&d.raw)) = x
}
func (d *SHADER_RESOURCE_VIEW_DESC) SetTexture1D(x TEX1D_SRV) {
	*(*TEX1D_SRV)(unsafe.Pointer(&d.raw)) = x
}
func (d *SHADER_RESOURCE_VIEW_DESC) SetTexture1DArray(x TEX1D_ARRAY_SRV) {
	*(*TEX1D_ARRAY_SRV)(unsafe.Pointer(&d.raw)) = x
}
func (d *SHADER_RESOURCE_VIEW_DESC) SetTexture2DMS(x TEX2DMS_SRV) {
	*(*TEX2DMS_SRV)(unsafe.Pointer(&d.raw)) = x
}
func (d *SHADER_RESOURCE_VIEW_DESC) SetTexture2D(x TEX2D_SRV) {
	*(*TEX2D_SRV)(unsafe.Pointer(&d.raw)) = x
}
func (d *SHADER_RESOURCE_VIEW_DESC) SetTexture2DArray(x TEX2D_ARRAY_SRV) {
	*(*TEX2D_ARRAY_SRV)(unsafe.Pointer(&d.raw)) = x
}
func (d *SHADER_RESOURCE_VIEW_DESC) SetTexture3D(x TEX3D_SRV) {
	*(*TEX3D_SRV)(unsafe.Pointer(&d.raw)) = x
}
func (d *SHADER_RESOURCE_VIEW_DESC) SetTextureCube(x TEXCUBE_SRV) {
	*(*TEXCUBE_SRV)(unsafe.Pointer(&d.raw)) = x
}
func (d *SHADER_RESOURCE_VIEW_DESC) SetTextureCubeArray(x TEXCUBE_ARRAY_SRV) {
	*(*TEXCUBE_ARRAY_SRV)(unsafe.Pointer(&d.raw)) = x
}
func (d *SHADER_RESOURCE_VIEW_DESC) SetTexture2DMSArray(x TEX2DMS_ARRAY_SRV) {
	*(*TEX2DMS_ARRAY_SRV)(unsafe.Pointer(&d.raw)) = x
}

// UNORDERED_ACCESS_VIEW_DESC is D3D12_UNORDERED_ACCESS_VIEW_DESC.
type UNORDERED_ACCESS_VIEW_DESC struct {
	Format        FORMAT
	ViewDimension UAV_DIMENSION
	raw           [4]uint64
}

// BUFFER_UAV is D3D12_BUFFER_UAV.
type BUFFER_UAV struct {
	FirstElement         uint64
	NumElements          uint32
	StructureByteStride  uint32
	CounterOffsetInBytes uint64
	Flags                uint32
	_                    uint32
}

// TEX1D_UAV is D3D12_TEX1D_UAV.
type TEX1D_UAV struct {
	MipSlice uint32
}

// TEX1D_ARRAY_UAV is D3D12_TEX1D_ARRAY_UAV.
type TEX1D_ARRAY_UAV struct {
	MipSlice        uint32
	FirstArraySlice uint32
	ArraySize       uint32
}

// TEX2D_UAV is D3D12_TEX2D_UAV.
type TEX2D_UAV struct {
	MipSlice   uint32
	PlaneSlice uint32
}

// TEX2D_ARRAY_UAV is D3D12_TEX2D_ARRAY_UAV.
type TEX2D_ARRAY_UAV struct {
	MipSlice        uint32
	FirstArraySlice uint32
	ArraySize       uint32
	PlaneSlice      uint32
}

// TEX3D_UAV is D3D12_TEX3D_UAV.
type TEX3D_UAV struct {
	MipSlice    uint32
	FirstWSlice uint32
	WSize       uint32
}

func (d *UNORDERED_ACCESS_VIEW_DESC) SetBuffer(x BUFFER_UAV) {
	*(*BUFFER_UAV)(unsafe.Pointer(&d.raw)) = x
}
func (d *UNORDERED_ACCESS_VIEW_DESC) SetTexture1D(x TEX1D_UAV) {
	*(*TEX1D_UAV)(unsafe.Pointer(&d.raw)) = x
}
func (d *UNORDERED_ACCESS_VIEW_DESC) SetTexture1DArray(x TEX1D_ARRAY_UAV) {
	*(*TEX1D_ARRAY_UAV)(unsafe.Pointer(&d.raw)) = x
}
func (d *UNORDERED_ACCESS_VIEW_DESC) SetTexture2D(x TEX2D_UAV) {
	*(*TEX2D_UAV)(unsafe.Pointer(&d.raw)) = x
}
func (d *UNORDERED_ACCESS_VIEW_DESC) SetTexture2DArray(x TEX2D_ARRAY_UAV) {
	*(*TEX2D_ARRAY_UAV)(unsafe.Pointer(&d.raw)) = x
}
func (d *UNORDERED_ACCESS_VIEW_DESC) SetTexture3D(x TEX3D_UAV) {
	*(*TEX3D_UAV)(unsafe.Pointer(&d.raw)) = x
}

// RENDER_TARGET_VIEW_DESC is D3D12_RENDER_TARGET_VIEW_DESC.
type RENDER_TARGET_VIEW_DESC struct {
	Format        FORMAT
	ViewDimension RTV_DIMENSION
	raw           [2]uint64
}

// TEX1D_RTV is D3D12_TEX1D_RTV.
type TEX1D_RTV struct {
	MipSlice uint32
}

// TEX1D_ARRAY_RTV is D3D12_TEX1D_ARRAY_RTV.
type TEX1D_ARRAY_RTV struct {
	MipSlice        uint32
	FirstArraySlice uint32
	ArraySize       uint32
}

// TEX2DMS_ARRAY_RTV is D3D12_TEX2DMS_ARRAY_RTV.
type TEX2DMS_ARRAY_RTV struct {
	FirstArraySlice uint32
	ArraySize       uint32
}

// TEX2D_RTV is D3D12_TEX2D_RTV.
type TEX2D_RTV struct {
	MipSlice   uint32
	PlaneSlice uint32
}

// TEX2D_ARRAY_RTV is D3D12_TEX2D_ARRAY_RTV.
type TEX2D_ARRAY_RTV struct {
	MipSlice        uint32
	FirstArraySlice uint32
	ArraySize       uint32
	PlaneSlice      uint32
}

// TEX2DMS_RTV is D3D12_TEX2DMS_RTV.
type TEX2DMS_RTV struct {
	UnusedField uint32
}

// TEX3D_RTV is D3D12_TEX3D_RTV.
type TEX3D_RTV struct {
	MipSlice    uint32
	FirstWSlice uint32
	WSize       uint32
}

func (d *RENDER_TARGET_VIEW_DESC) SetTexture1D(x TEX1D_RTV) {
	*(*TEX1D_RTV)(unsafe.Pointer(&d.raw)) = x
}
func (d *RENDER_TARGET_VIEW_DESC) SetTexture1DArray(x TEX1D_ARRAY_RTV) {
	*(*TEX1D_ARRAY_RTV)(unsafe.Pointer(&d.raw)) = x
}
func (d *RENDER_TARGET_VIEW_DESC) SetTexture2DMSArray(x TEX2DMS_ARRAY_RTV) {
	*(*TEX2DMS_ARRAY_RTV)(unsafe.Pointer(&d.raw)) = x
}
func (d *RENDER_TARGET_VIEW_DESC) SetTexture2D(x TEX2D_RTV) {
	*(*TEX2D_RTV)(unsafe.Pointer(&d.raw)) = x
}
func (d *RENDER_TARGET_VIEW_DESC) SetTexture2DArray(x TEX2D_ARRAY_RTV) {
	*(*TEX2D_ARRAY_RTV)(unsafe.Pointer(&d.raw)) = x
}
func (d *RENDER_TARGET_VIEW_DESC) SetTexture2DMS(x TEX2DMS_RTV) {
	*(*TEX2DMS_RTV)(unsafe.Pointer(&d.raw)) = x
}
func (d *RENDER_TARGET_VIEW_DESC) SetTexture3D(x TEX3D_RTV) {
	*(*TEX3D_RTV)(unsafe.Pointer(&d.raw)) = x
}

// DEPTH_STENCIL_VIEW_DESC is D3D12_DEPTH_STENCIL_VIEW_DESC.
type DEPTH_STENCIL_VIEW_DESC struct {
	Format        FORMAT
	ViewDimension DSV_DIMENSION
	Flags         uint32
	raw           [3]uint32
}

// TEX1D_DSV is D3D12_TEX1D_DSV.
type TEX1D_DSV struct {
	MipSlice uint32
}

// TEX1D_ARRAY_DSV is D3D12_TEX1D_ARRAY_DSV.
type TEX1D_ARRAY_DSV struct {
	MipSlice        uint32
	FirstArraySlice uint32
	ArraySize       uint32
}

// TEX2D_DSV is D3D12_TEX2D_DSV.
type TEX2D_DSV struct {
	MipSlice uint32
}

// TEX2D_ARRAY_DSV is D3D12_TEX2D_ARRAY_DSV.
type TEX2D_ARRAY_DSV struct {
	MipSlice        uint32
	FirstArraySlice uint32
	ArraySize       uint32
}

// TEX2DMS_ARRAY_DSV is D3D12_TEX2DMS_ARRAY_DSV.
type TEX2DMS_ARRAY_DSV struct {
	FirstArraySlice uint32
	ArraySize       uint32
}

func (d *DEPTH_STENCIL_VIEW_DESC) SetTexture1D(x TEX1D_DSV) {
	*(*TEX1D_DSV)(unsafe.Pointer(&d.raw)) = x
}
func (d *DEPTH_STENCIL_VIEW_DESC) SetTexture1DArray(x TEX1D_ARRAY_DSV) {
	*(*TEX1D_ARRAY_DSV)(unsafe.Pointer(&d.raw)) = x
}
func (d *DEPTH_STENCIL_VIEW_DESC) SetTexture2D(x TEX2D_DSV) {
	*(*TEX2D_DSV)(unsafe.Pointer(&d.raw)) = x
}
func (d *DEPTH_STENCIL_VIEW_DESC) SetTexture2DArray(x TEX2D_ARRAY_DSV) {
	*(*TEX2D_ARRAY_DSV)(unsafe.Pointer(&d.raw)) = x
}
func (d *DEPTH_STENCIL_VIEW_DESC) SetTexture2DMSArray(x TEX2DMS_ARRAY_DSV) {
	*(*TEX2DMS_ARRAY_DSV)(unsafe.Pointer(&d.raw)) = x
}

// SAMPLER_DESC is D3D12_SAMPLER_DESC.
type SAMPLER_DESC struct {
	Filter         uint32
	AddressU       uint32
	AddressV       uint32
	AddressW       uint32
	MipLODBias     float32
	MaxAnisotropy  uint32
	ComparisonFunc uint32
	BorderColor    [4]float32
	MinLOD         float32
	MaxLOD         float32
}

// STATIC_SAMPLER_DESC is D3D12_STATIC_SAMPLER_DESC.
type STATIC_SAMPLER_DESC struct {
	Filter           uint32
	AddressU         uint32
	AddressV         uint32
	AddressW         uint32
	MipLODBias       float32
	MaxAnisotropy    uint32
	ComparisonFunc   uint32
	BorderColor      uint32
	MinLOD           float32
	MaxLOD           float32
	ShaderRegister   uint32
	RegisterSpace    uint32
	ShaderVisibility SHADER_VISIBILITY
}

// DESCRIPTOR_RANGE is D3D12_DESCRIPTOR_RANGE.
type DESCRIPTOR_RANGE struct {
	RangeType                         DESCRIPTOR_RANGE_TYPE
	NumDescriptors                    uint32
	BaseShaderRegister                uint32
	RegisterSpace                     uint32
	OffsetInDescriptorsFromTableStart uint32
}

// ROOT_PARAMETER is D3D12_ROOT_PARAMETER (version 1.0).
type ROOT_PARAMETER struct {
	ParameterType    ROOT_PARAMETER_TYPE
	_                uint32
	raw              [2]uint64
	ShaderVisibility SHADER_VISIBILITY
	_                uint32
}

// ROOT_DESCRIPTOR_TABLE is D3D12_ROOT_DESCRIPTOR_TABLE.
type ROOT_DESCRIPTOR_TABLE struct {
	NumDescriptorRanges uint32
	_                   uint32
	PDescriptorRanges   *DESCRIPTOR_RANGE
}

// ROOT_CONSTANTS is D3D12_ROOT_CONSTANTS.
type ROOT_CONSTANTS struct {
	ShaderRegister  uint32
	RegisterSpace   uint32
	Num32BitValues  uint32
}

// ROOT_DESCRIPTOR is D3D12_ROOT_DESCRIPTOR.
type ROOT_DESCRIPTOR struct {
	ShaderRegister uint32
	RegisterSpace  uint32
}

func (p *ROOT_PARAMETER) SetDescriptorTable(x ROOT_DESCRIPTOR_TABLE) {
	*(*ROOT_DESCRIPTOR_TABLE)(unsafe.Pointer(&p.raw)) = x
}
func (p *ROOT_PARAMETER) SetConstants(x ROOT_CONSTANTS) {
	*(*ROOT_CONSTANTS)(unsafe.Pointer(&p.raw)) = x
}
func (p *ROOT_PARAMETER) SetDescriptor(x ROOT_DESCRIPTOR) {
	*(*ROOT_DESCRIPTOR)(unsafe.Pointer(&p.raw)) = x
}

// ROOT_SIGNATURE_DESC is D3D12_ROOT_SIGNATURE_DESC.
type ROOT_SIGNATURE_DESC struct {
	NumParameters     uint32
	_                 uint32
	PParameters       *ROOT_PARAMETER
	NumStaticSamplers uint32
	_                 uint32
	PStaticSamplers   *STATIC_SAMPLER_DESC
	Flags             uint32
	_                 uint32
}

// SHADER_BYTECODE is D3D12_SHADER_BYTECODE.
type SHADER_BYTECODE struct {
	PShaderBytecode *byte
	BytecodeLength  uintptr
}

// STREAM_OUTPUT_DESC is D3D12_STREAM_OUTPUT_DESC.
type STREAM_OUTPUT_DESC struct {
	PSODeclaration   uintptr
	NumEntries       uint32
	_                uint32
	PBufferStrides   uintptr
	NumStrides       uint32
	RasterizedStream uint32
}

// RENDER_TARGET_BLEND_DESC is D3D12_RENDER_TARGET_BLEND_DESC.
type RENDER_TARGET_BLEND_DESC struct {
	BlendEnable           uint32
	LogicOpEnable         uint32
	SrcBlend              uint32
	DestBlend             uint32
	BlendOp               uint32
	SrcBlendAlpha         uint32
	DestBlendAlpha        uint32
	BlendOpAlpha          uint32
	LogicOp               uint32
	RenderTargetWriteMask uint8
	_                     [3]byte
}

// BLEND_DESC is D3D12_BLEND_DESC.
type BLEND_DESC struct {
	AlphaToCoverageEnable  uint32
	IndependentBlendEnable uint32
	RenderTarget           [8]RENDER_TARGET_BLEND_DESC
}

// RASTERIZER_DESC is D3D12_RASTERIZER_DESC.
type RASTERIZER_DESC struct {
	FillMode              uint32
	CullMode              uint32
	FrontCounterClockwise uint32
	DepthBias             int32
	DepthBiasClamp        float32
	SlopeScaledDepthBias  float32
	DepthClipEnable       uint32
	MultisampleEnable     uint32
	AntialiasedLineEnable uint32
	ForcedSampleCount     uint32
	ConservativeRaster    uint32
}

// DEPTH_STENCILOP_DESC is D3D12_DEPTH_STENCILOP_DESC.
type DEPTH_STENCILOP_DESC struct {
	StencilFailOp      uint32
	StencilDepthFailOp uint32
	StencilPassOp      uint32
	StencilFunc        uint32
}

// DEPTH_STENCIL_DESC is D3D12_DEPTH_STENCIL_DESC.
type DEPTH_STENCIL_DESC struct {
	DepthEnable      uint32
	DepthWriteMask   uint32
	DepthFunc        uint32
	StencilEnable    uint32
	StencilReadMask  uint8
	StencilWriteMask uint8
	_                [2]byte
	FrontFace        DEPTH_STENCILOP_DESC
	BackFace         DEPTH_STENCILOP_DESC
}

// INPUT_ELEMENT_DESC is D3D12_INPUT_ELEMENT_DESC.
type INPUT_ELEMENT_DESC struct {
	SemanticName         *byte
	SemanticIndex        uint32
	Format               FORMAT
	InputSlot            uint32
	AlignedByteOffset    uint32
	InputSlotClass       uint32
	InstanceDataStepRate uint32
}

// INPUT_LAYOUT_DESC is D3D12_INPUT_LAYOUT_DESC.
type INPUT_LAYOUT_DESC struct {
	PInputElementDescs *INPUT_ELEMENT_DESC
	NumElements        uint32
	_                  uint32
}

// CACHED_PIPELINE_STATE is D3D12_CACHED_PIPELINE_STATE.
type CACHED_PIPELINE_STATE struct {
	PCachedBlob           uintptr
	CachedBlobSizeInBytes uintptr
}

// GRAPHICS_PIPELINE_STATE_DESC is D3D12_GRAPHICS_PIPELINE_STATE_DESC.
type GRAPHICS_PIPELINE_STATE_DESC struct {
	PRootSignature        uintptr
	VS                    SHADER_BYTECODE
	PS                    SHADER_BYTECODE
	DS                    SHADER_BYTECODE
	HS                    SHADER_BYTECODE
	GS                    SHADER_BYTECODE
	StreamOutput          STREAM_OUTPUT_DESC
	BlendState            BLEND_DESC
	SampleMask            uint32
	RasterizerState       RASTERIZER_DESC
	DepthStencilState     DEPTH_STENCIL_DESC
	InputLayout           INPUT_LAYOUT_DESC
	IBStripCutValue       uint32
	PrimitiveTopologyType uint32
	NumRenderTargets      uint32
	RTVFormats            [8]FORMAT
	DSVFormat             FORMAT
	SampleDesc            SAMPLE_DESC
	NodeMask              uint32
	CachedPSO             CACHED_PIPELINE_STATE
	Flags                 uint32
	_                     uint32
}

// COMPUTE_PIPELINE_STATE_DESC is D3D12_COMPUTE_PIPELINE_STATE_DESC.
type COMPUTE_PIPELINE_STATE_DESC struct {
	PRootSignature uintptr
	CS             SHADER_BYTECODE
	NodeMask       uint32
	_              uint32
	CachedPSO      CACHED_PIPELINE_STATE
	Flags          uint32
	_              uint32
}

// VERTEX_BUFFER_VIEW is D3D12_VERTEX_BUFFER_VIEW.
type VERTEX_BUFFER_VIEW struct {
	BufferLocation uint64
	SizeInBytes    uint32
	StrideInBytes  uint32
}

// INDEX_BUFFER_VIEW is D3D12_INDEX_BUFFER_VIEW.
type INDEX_BUFFER_VIEW struct {
	BufferLocation uint64
	SizeInBytes    uint32
	Format         FORMAT
}

// SUBRESOURCE_FOOTPRINT is D3D12_SUBRESOURCE_FOOTPRINT.
type SUBRESOURCE_FOOTPRINT struct {
	Format   FORMAT
	Width    uint32
	Height   uint32
	Depth    uint32
	RowPitch uint32
}

// PLACED_SUBRESOURCE_FOOTPRINT is D3D12_PLACED_SUBRESOURCE_FOOTPRINT.
type PLACED_SUBRESOURCE_FOOTPRINT struct {
	Offset    uint64
	Footprint SUBRESOURCE_FOOTPRINT
	_         uint32
}

// TEXTURE_COPY_LOCATION_SUBRESOURCE is a D3D12_TEXTURE_COPY_LOCATION
// using the SubresourceIndex arm.
type TEXTURE_COPY_LOCATION_SUBRESOURCE struct {
	PResource        uintptr
	Type             uint32
	_                uint32
	SubresourceIndex uint32
	_                [7]uint32
}

// TEXTURE_COPY_LOCATION_FOOTPRINT is a D3D12_TEXTURE_COPY_LOCATION
// using the PlacedFootprint arm.
type TEXTURE_COPY_LOCATION_FOOTPRINT struct {
	PResource       uintptr
	Type            uint32
	_               uint32
	PlacedFootprint PLACED_SUBRESOURCE_FOOTPRINT
}

// QUERY_HEAP_DESC is D3D12_QUERY_HEAP_DESC.
type QUERY_HEAP_DESC struct {
	Type     QUERY_HEAP_TYPE
	Count    uint32
	NodeMask uint32
}

// INDIRECT_ARGUMENT_DESC is D3D12_INDIRECT_ARGUMENT_DESC.
type INDIRECT_ARGUMENT_DESC struct {
	Type uint32
	raw  [3]uint32
}

// COMMAND_SIGNATURE_DESC is D3D12_COMMAND_SIGNATURE_DESC.
type COMMAND_SIGNATURE_DESC struct {
	ByteStride       uint32
	NumArgumentDescs uint32
	PArgumentDescs   *INDIRECT_ARGUMENT_DESC
	NodeMask         uint32
	_                uint32
}

// SWAP_CHAIN_DESC1 is DXGI_SWAP_CHAIN_DESC1.
type SWAP_CHAIN_DESC1 struct {
	Width       uint32
	Height      uint32
	Format      FORMAT
	Stereo      uint32
	SampleDesc  SAMPLE_DESC
	BufferUsage uint32
	BufferCount uint32
	Scaling     uint32
	SwapEffect  uint32
	AlphaMode   uint32
	Flags       uint32
}

// LUID is the Windows LUID.
type LUID struct {
	LowPart  uint32
	HighPart int32
}

// ADAPTER_DESC1 is DXGI_ADAPTER_DESC1.
type ADAPTER_DESC1 struct {
	Description           [128]uint16
	VendorID              uint32
	DeviceID              uint32
	SubSysID              uint32
	Revision              uint32
	DedicatedVideoMemory  uintptr
	DedicatedSystemMemory uintptr
	SharedSystemMemory    uintptr
	AdapterLuid           LUID
	Flags                 uint32
	_                     uint32
}

// QUERY_VIDEO_MEMORY_INFO is DXGI_QUERY_VIDEO_MEMORY_INFO.
type QUERY_VIDEO_MEMORY_INFO struct {
	Budget                  uint64
	CurrentUsage            uint64
	AvailableForReservation uint64
	CurrentReservation      uint64
}
