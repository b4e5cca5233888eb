// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package d3d provides a minimal, dependency-free projection of the
// D3D12 and DXGI COM interfaces used by the d3d12 driver.
// Names mirror the Windows SDK with the D3D12_/DXGI_ prefixes dropped,
// so the SDK documentation applies directly.
//
// Only data definitions live in this file; everything that touches the
// native libraries is restricted to the *_windows.go files.
package d3d

import "fmt"

// GUID is a Windows GUID/IID.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// Error wraps a failed HRESULT from a native call.
type Error struct {
	Op   string
	Code uint32
}

func (e *Error) Error() string {
	return fmt.Sprintf("d3d: %s failed: %#08x", e.Op, e.Code)
}

// Common HRESULT values.
const (
	S_OK          = 0x00000000
	S_FALSE       = 0x00000001
	E_FAIL        = 0x80004005
	E_INVALIDARG  = 0x80070057
	E_OUTOFMEMORY = 0x8007000e
	E_NOINTERFACE = 0x80004002

	DXGI_ERROR_NOT_FOUND          = 0x887a0002
	DXGI_ERROR_DEVICE_HUNG        = 0x887a0006
	DXGI_ERROR_DEVICE_REMOVED     = 0x887a0005
	DXGI_ERROR_DEVICE_RESET       = 0x887a0007
	DXGI_ERROR_DRIVER_ERROR       = 0x887a0020
	DXGI_ERROR_INVALID_CALL       = 0x887a0001
	DXGI_ERROR_UNSUPPORTED        = 0x887a0004
	DXGI_ERROR_WAS_STILL_DRAWING  = 0x887a000a
	DXGI_ERROR_NOT_CURRENT        = 0x887a002e
	DXGI_STATUS_OCCLUDED          = 0x087a0001
	D3D12_ERROR_ADAPTER_NOT_FOUND = 0x887e0001
)

// FAILED reports whether hr indicates failure.
func FAILED(hr uint32) bool { return hr&0x80000000 != 0 }

// FORMAT is DXGI_FORMAT.
type FORMAT uint32

// Pixel formats used by the driver.
const (
	FORMAT_UNKNOWN               FORMAT = 0
	FORMAT_R32G32B32A32_FLOAT    FORMAT = 2
	FORMAT_R32G32B32A32_UINT    FORMAT = 3
	FORMAT_R32G32B32A32_SINT     FORMAT = 4
	FORMAT_R32G32B32_FLOAT       FORMAT = 6
	FORMAT_R32G32B32_UINT        FORMAT = 7
	FORMAT_R32G32B32_SINT        FORMAT = 8
	FORMAT_R16G16B16A16_FLOAT    FORMAT = 10
	FORMAT_R16G16B16A16_UNORM    FORMAT = 11
	FORMAT_R16G16B16A16_UINT     FORMAT = 12
	FORMAT_R16G16B16A16_SNORM    FORMAT = 13
	FORMAT_R16G16B16A16_SINT     FORMAT = 14
	FORMAT_R32G32_FLOAT          FORMAT = 16
	FORMAT_R32G32_UINT           FORMAT = 17
	FORMAT_R32G32_SINT           FORMAT = 18
	FORMAT_R32G8X24_TYPELESS     FORMAT = 19
	FORMAT_D32_FLOAT_S8X24_UINT  FORMAT = 20
	FORMAT_R32_FLOAT_X8X24_TYPELESS FORMAT = 21
	FORMAT_R10G10B10A2_UNORM     FORMAT = 24
	FORMAT_R11G11B10_FLOAT       FORMAT = 26
	FORMAT_R8G8B8A8_TYPELESS     FORMAT = 27
	FORMAT_R8G8B8A8_UNORM        FORMAT = 28
	FORMAT_R8G8B8A8_UNORM_SRGB   FORMAT = 29
	FORMAT_R8G8B8A8_UINT         FORMAT = 30
	FORMAT_R8G8B8A8_SNORM        FORMAT = 31
	FORMAT_R8G8B8A8_SINT         FORMAT = 32
	FORMAT_R16G16_FLOAT          FORMAT = 34
	FORMAT_R16G16_UNORM          FORMAT = 35
	FORMAT_R16G16_UINT           FORMAT = 36
	FORMAT_R16G16_SNORM          FORMAT = 37
	FORMAT_R16G16_SINT           FORMAT = 38
	FORMAT_R32_TYPELESS          FORMAT = 39
	FORMAT_D32_FLOAT             FORMAT = 40
	FORMAT_R32_FLOAT             FORMAT = 41
	FORMAT_R32_UINT              FORMAT = 42
	FORMAT_R32_SINT              FORMAT = 43
	FORMAT_R24G8_TYPELESS        FORMAT = 44
	FORMAT_D24_UNORM_S8_UINT     FORMAT = 45
	FORMAT_R24_UNORM_X8_TYPELESS FORMAT = 46
	FORMAT_R8G8_UNORM            FORMAT = 49
	FORMAT_R8G8_UINT             FORMAT = 50
	FORMAT_R8G8_SNORM            FORMAT = 51
	FORMAT_R8G8_SINT             FORMAT = 52
	FORMAT_R16_TYPELESS          FORMAT = 53
	FORMAT_R16_FLOAT             FORMAT = 54
	FORMAT_D16_UNORM             FORMAT = 55
	FORMAT_R16_UNORM             FORMAT = 56
	FORMAT_R16_UINT              FORMAT = 57
	FORMAT_R16_SNORM             FORMAT = 58
	FORMAT_R16_SINT              FORMAT = 59
	FORMAT_R8_TYPELESS           FORMAT = 60
	FORMAT_R8_UNORM              FORMAT = 61
	FORMAT_R8_UINT               FORMAT = 62
	FORMAT_R8_SNORM              FORMAT = 63
	FORMAT_R8_SINT               FORMAT = 64
	FORMAT_B8G8R8A8_UNORM        FORMAT = 87
	FORMAT_B8G8R8A8_TYPELESS     FORMAT = 90
	FORMAT_B8G8R8A8_UNORM_SRGB   FORMAT = 91
)

// RESOURCE_STATES is D3D12_RESOURCE_STATES.
type RESOURCE_STATES uint32

// Resource states.
const (
	RESOURCE_STATE_COMMON                     RESOURCE_STATES = 0
	RESOURCE_STATE_VERTEX_AND_CONSTANT_BUFFER RESOURCE_STATES = 0x1
	RESOURCE_STATE_INDEX_BUFFER               RESOURCE_STATES = 0x2
	RESOURCE_STATE_RENDER_TARGET              RESOURCE_STATES = 0x4
	RESOURCE_STATE_UNORDERED_ACCESS           RESOURCE_STATES = 0x8
	RESOURCE_STATE_DEPTH_WRITE                RESOURCE_STATES = 0x10
	RESOURCE_STATE_DEPTH_READ                 RESOURCE_STATES = 0x20
	RESOURCE_STATE_NON_PIXEL_SHADER_RESOURCE  RESOURCE_STATES = 0x40
	RESOURCE_STATE_PIXEL_SHADER_RESOURCE      RESOURCE_STATES = 0x80
	RESOURCE_STATE_STREAM_OUT                 RESOURCE_STATES = 0x100
	RESOURCE_STATE_INDIRECT_ARGUMENT          RESOURCE_STATES = 0x200
	RESOURCE_STATE_COPY_DEST                  RESOURCE_STATES = 0x400
	RESOURCE_STATE_COPY_SOURCE                RESOURCE_STATES = 0x800
	RESOURCE_STATE_RESOLVE_DEST               RESOURCE_STATES = 0x1000
	RESOURCE_STATE_RESOLVE_SOURCE             RESOURCE_STATES = 0x2000
	RESOURCE_STATE_GENERIC_READ               RESOURCE_STATES = 0x1 | 0x2 | 0x40 | 0x80 | 0x200 | 0x800
	RESOURCE_STATE_PRESENT                    RESOURCE_STATES = 0
	RESOURCE_STATE_PREDICATION                RESOURCE_STATES = 0x200
)

// RESOURCE_BARRIER_ALL_SUBRESOURCES selects every subresource
// in a transition barrier.
const RESOURCE_BARRIER_ALL_SUBRESOURCES = 0xffffffff

// Command list types.
type COMMAND_LIST_TYPE uint32

const (
	COMMAND_LIST_TYPE_DIRECT  COMMAND_LIST_TYPE = 0
	COMMAND_LIST_TYPE_BUNDLE  COMMAND_LIST_TYPE = 1
	COMMAND_LIST_TYPE_COMPUTE COMMAND_LIST_TYPE = 2
	COMMAND_LIST_TYPE_COPY    COMMAND_LIST_TYPE = 3
)

// Command queue flags/priority.
const (
	COMMAND_QUEUE_FLAG_NONE                = 0
	COMMAND_QUEUE_FLAG_DISABLE_GPU_TIMEOUT = 0x1
	COMMAND_QUEUE_PRIORITY_NORMAL          = 0
	COMMAND_QUEUE_PRIORITY_HIGH            = 100
)

// Fence flags.
const FENCE_FLAG_NONE = 0

// Descriptor heap types.
type DESCRIPTOR_HEAP_TYPE uint32

const (
	DESCRIPTOR_HEAP_TYPE_CBV_SRV_UAV DESCRIPTOR_HEAP_TYPE = 0
	DESCRIPTOR_HEAP_TYPE_SAMPLER     DESCRIPTOR_HEAP_TYPE = 1
	DESCRIPTOR_HEAP_TYPE_RTV         DESCRIPTOR_HEAP_TYPE = 2
	DESCRIPTOR_HEAP_TYPE_DSV         DESCRIPTOR_HEAP_TYPE = 3
	DESCRIPTOR_HEAP_TYPE_NUM_TYPES                        = 4
)

// Descriptor heap flags.
const (
	DESCRIPTOR_HEAP_FLAG_NONE           = 0
	DESCRIPTOR_HEAP_FLAG_SHADER_VISIBLE = 0x1
)

// Heap types/flags.
type HEAP_TYPE uint32

const (
	HEAP_TYPE_DEFAULT  HEAP_TYPE = 1
	HEAP_TYPE_UPLOAD   HEAP_TYPE = 2
	HEAP_TYPE_READBACK HEAP_TYPE = 3
	HEAP_TYPE_CUSTOM   HEAP_TYPE = 4
)

const (
	HEAP_FLAG_NONE = 0

	CPU_PAGE_PROPERTY_UNKNOWN = 0
	MEMORY_POOL_UNKNOWN       = 0
)

// Resource dimensions/layouts/flags.
type RESOURCE_DIMENSION uint32

const (
	RESOURCE_DIMENSION_UNKNOWN   RESOURCE_DIMENSION = 0
	RESOURCE_DIMENSION_BUFFER    RESOURCE_DIMENSION = 1
	RESOURCE_DIMENSION_TEXTURE1D RESOURCE_DIMENSION = 2
	RESOURCE_DIMENSION_TEXTURE2D RESOURCE_DIMENSION = 3
	RESOURCE_DIMENSION_TEXTURE3D RESOURCE_DIMENSION = 4
)

const (
	TEXTURE_LAYOUT_UNKNOWN   = 0
	TEXTURE_LAYOUT_ROW_MAJOR = 1
)

type RESOURCE_FLAGS uint32

const (
	RESOURCE_FLAG_NONE                      RESOURCE_FLAGS = 0
	RESOURCE_FLAG_ALLOW_RENDER_TARGET       RESOURCE_FLAGS = 0x1
	RESOURCE_FLAG_ALLOW_DEPTH_STENCIL       RESOURCE_FLAGS = 0x2
	RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS    RESOURCE_FLAGS = 0x4
	RESOURCE_FLAG_DENY_SHADER_RESOURCE      RESOURCE_FLAGS = 0x8
	RESOURCE_FLAG_ALLOW_CROSS_ADAPTER       RESOURCE_FLAGS = 0x10
	RESOURCE_FLAG_ALLOW_SIMULTANEOUS_ACCESS RESOURCE_FLAGS = 0x20
)

// Alignment constants.
const (
	TEXTURE_DATA_PITCH_ALIGNMENT     = 256
	TEXTURE_DATA_PLACEMENT_ALIGNMENT = 512
	CONSTANT_BUFFER_DATA_PLACEMENT_ALIGNMENT = 256
	DEFAULT_RESOURCE_PLACEMENT_ALIGNMENT     = 65536
	REQ_TEXTURE2D_U_OR_V_DIMENSION           = 16384
	REQ_TEXTURE3D_U_V_OR_W_DIMENSION         = 2048
	REQ_TEXTURE1D_U_DIMENSION                = 16384
	REQ_TEXTURE2D_ARRAY_AXIS_DIMENSION       = 2048
	REQ_MIP_LEVELS                           = 15
	SIMULTANEOUS_RENDER_TARGET_COUNT         = 8
	IA_VERTEX_INPUT_RESOURCE_SLOT_COUNT      = 32
	DEFAULT_DEPTH_BIAS                       = 0
	DEFAULT_STENCIL_READ_MASK                = 0xff
	DEFAULT_STENCIL_WRITE_MASK               = 0xff
	APPEND_ALIGNED_ELEMENT                   = 0xffffffff
	DEFAULT_SHADER_4_COMPONENT_MAPPING       = 0x1688
	FLOAT32_MAX                              = 3.402823466e+38
	MIN_DEPTH                                = 0.0
	MAX_DEPTH                                = 1.0
)

// Barrier types/flags.
const (
	RESOURCE_BARRIER_TYPE_TRANSITION = 0
	RESOURCE_BARRIER_TYPE_ALIASING   = 1
	RESOURCE_BARRIER_TYPE_UAV        = 2
	RESOURCE_BARRIER_FLAG_NONE       = 0
)

// View dimensions.
type SRV_DIMENSION uint32

const (
	SRV_DIMENSION_UNKNOWN          SRV_DIMENSION = 0
	SRV_DIMENSION_BUFFER           SRV_DIMENSION = 1
	SRV_DIMENSION_TEXTURE1D        SRV_DIMENSION = 2
	SRV_DIMENSION_TEXTURE1DARRAY   SRV_DIMENSION = 3
	SRV_DIMENSION_TEXTURE2D        SRV_DIMENSION = 4
	SRV_DIMENSION_TEXTURE2DARRAY   SRV_DIMENSION = 5
	SRV_DIMENSION_TEXTURE2DMS      SRV_DIMENSION = 6
	SRV_DIMENSION_TEXTURE2DMSARRAY SRV_DIMENSION = 7
	SRV_DIMENSION_TEXTURE3D        SRV_DIMENSION = 8
	SRV_DIMENSION_TEXTURECUBE      SRV_DIMENSION = 9
	SRV_DIMENSION_TEXTURECUBEARRAY SRV_DIMENSION = 10
)

type UAV_DIMENSION uint32

const (
	UAV_DIMENSION_UNKNOWN        UAV_DIMENSION = 0
	UAV_DIMENSION_BUFFER         UAV_DIMENSION = 1
	UAV_DIMENSION_TEXTURE1D      UAV_DIMENSION = 2
	UAV_DIMENSION_TEXTURE1DARRAY UAV_DIMENSION = 3
	UAV_DIMENSION_TEXTURE2D      UAV_DIMENSION = 4
	UAV_DIMENSION_TEXTURE2DARRAY UAV_DIMENSION = 5
	UAV_DIMENSION_TEXTURE3D      UAV_DIMENSION = 8
)

type RTV_DIMENSION uint32

const (
	RTV_DIMENSION_UNKNOWN          RTV_DIMENSION = 0
	RTV_DIMENSION_BUFFER           RTV_DIMENSION = 1
	RTV_DIMENSION_TEXTURE1D        RTV_DIMENSION = 2
	RTV_DIMENSION_TEXTURE1DARRAY   RTV_DIMENSION = 3
	RTV_DIMENSION_TEXTURE2D        RTV_DIMENSION = 4
	RTV_DIMENSION_TEXTURE2DARRAY   RTV_DIMENSION = 5
	RTV_DIMENSION_TEXTURE2DMS      RTV_DIMENSION = 6
	RTV_DIMENSION_TEXTURE2DMSARRAY RTV_DIMENSION = 7
	RTV_DIMENSION_TEXTURE3D        RTV_DIMENSION = 8
)

type DSV_DIMENSION uint32

const (
	DSV_DIMENSION_UNKNOWN          DSV_DIMENSION = 0
	DSV_DIMENSION_TEXTURE1D        DSV_DIMENSION = 1
	DSV_DIMENSION_TEXTURE1DARRAY   DSV_DIMENSION = 2
	DSV_DIMENSION_TEXTURE2D        DSV_DIMENSION = 3
	DSV_DIMENSION_TEXTURE2DARRAY   DSV_DIMENSION = 4
	DSV_DIMENSION_TEXTURE2DMS      DSV_DIMENSION = 5
	DSV_DIMENSION_TEXTURE2DMSARRAY DSV_DIMENSION = 6
)

const (
	DSV_FLAG_NONE               = 0
	DSV_FLAG_READ_ONLY_DEPTH    = 0x1
	DSV_FLAG_READ_ONLY_STENCIL  = 0x2
	BUFFER_SRV_FLAG_RAW         = 0x1
	BUFFER_UAV_FLAG_RAW         = 0x1
	CLEAR_FLAG_DEPTH            = 0x1
	CLEAR_FLAG_STENCIL          = 0x2
)

// Root signature.
type ROOT_PARAMETER_TYPE uint32

const (
	ROOT_PARAMETER_TYPE_DESCRIPTOR_TABLE ROOT_PARAMETER_TYPE = 0
	ROOT_PARAMETER_TYPE_32BIT_CONSTANTS  ROOT_PARAMETER_TYPE = 1
	ROOT_PARAMETER_TYPE_CBV              ROOT_PARAMETER_TYPE = 2
	ROOT_PARAMETER_TYPE_SRV              ROOT_PARAMETER_TYPE = 3
	ROOT_PARAMETER_TYPE_UAV              ROOT_PARAMETER_TYPE = 4
)

type DESCRIPTOR_RANGE_TYPE uint32

const (
	DESCRIPTOR_RANGE_TYPE_SRV     DESCRIPTOR_RANGE_TYPE = 0
	DESCRIPTOR_RANGE_TYPE_UAV     DESCRIPTOR_RANGE_TYPE = 1
	DESCRIPTOR_RANGE_TYPE_CBV     DESCRIPTOR_RANGE_TYPE = 2
	DESCRIPTOR_RANGE_TYPE_SAMPLER DESCRIPTOR_RANGE_TYPE = 3
)

type SHADER_VISIBILITY uint32

const (
	SHADER_VISIBILITY_ALL      SHADER_VISIBILITY = 0
	SHADER_VISIBILITY_VERTEX   SHADER_VISIBILITY = 1
	SHADER_VISIBILITY_HULL     SHADER_VISIBILITY = 2
	SHADER_VISIBILITY_DOMAIN   SHADER_VISIBILITY = 3
	SHADER_VISIBILITY_GEOMETRY SHADER_VISIBILITY = 4
	SHADER_VISIBILITY_PIXEL    SHADER_VISIBILITY = 5
)

const (
	ROOT_SIGNATURE_FLAG_NONE                               = 0
	ROOT_SIGNATURE_FLAG_ALLOW_INPUT_ASSEMBLER_INPUT_LAYOUT = 0x1
	ROOT_SIGNATURE_VERSION_1                               = 1
)

// Filters and address modes for samplers.
const (
	FILTER_MIN_MAG_MIP_POINT                = 0
	FILTER_MIN_MAG_POINT_MIP_LINEAR         = 0x1
	FILTER_MIN_MAG_LINEAR_MIP_POINT         = 0x14
	FILTER_MIN_MAG_MIP_LINEAR               = 0x15
	FILTER_ANISOTROPIC                      = 0x55
	FILTER_COMPARISON_MIN_MAG_MIP_POINT     = 0x80
	FILTER_COMPARISON_MIN_MAG_MIP_LINEAR    = 0x95
	FILTER_COMPARISON_ANISOTROPIC           = 0xd5

	TEXTURE_ADDRESS_MODE_WRAP   = 1
	TEXTURE_ADDRESS_MODE_MIRROR = 2
	TEXTURE_ADDRESS_MODE_CLAMP  = 3
	TEXTURE_ADDRESS_MODE_BORDER = 4

	STATIC_BORDER_COLOR_TRANSPARENT_BLACK = 0
	STATIC_BORDER_COLOR_OPAQUE_BLACK      = 1
	STATIC_BORDER_COLOR_OPAQUE_WHITE      = 2
)

// Comparison functions.
const (
	COMPARISON_FUNC_NEVER         = 1
	COMPARISON_FUNC_LESS          = 2
	COMPARISON_FUNC_EQUAL         = 3
	COMPARISON_FUNC_LESS_EQUAL    = 4
	COMPARISON_FUNC_GREATER       = 5
	COMPARISON_FUNC_NOT_EQUAL     = 6
	COMPARISON_FUNC_GREATER_EQUAL = 7
	COMPARISON_FUNC_ALWAYS        = 8
)

// Rasterizer state.
const (
	FILL_MODE_WIREFRAME = 2
	FILL_MODE_SOLID     = 3
	CULL_MODE_NONE      = 1
	CULL_MODE_FRONT     = 2
	CULL_MODE_BACK      = 3
	CONSERVATIVE_RASTERIZATION_MODE_OFF = 0
)

// Depth/stencil state.
const (
	DEPTH_WRITE_MASK_ZERO = 0
	DEPTH_WRITE_MASK_ALL  = 1

	STENCIL_OP_KEEP     = 1
	STENCIL_OP_ZERO     = 2
	STENCIL_OP_REPLACE  = 3
	STENCIL_OP_INCR_SAT = 4
	STENCIL_OP_DECR_SAT = 5
	STENCIL_OP_INVERT   = 6
	STENCIL_OP_INCR     = 7
	STENCIL_OP_DECR     = 8
)

// Blend state.
const (
	BLEND_ZERO             = 1
	BLEND_ONE              = 2
	BLEND_SRC_COLOR        = 3
	BLEND_INV_SRC_COLOR    = 4
	BLEND_SRC_ALPHA        = 5
	BLEND_INV_SRC_ALPHA    = 6
	BLEND_DEST_ALPHA       = 7
	BLEND_INV_DEST_ALPHA   = 8
	BLEND_DEST_COLOR       = 9
	BLEND_INV_DEST_COLOR   = 10
	BLEND_SRC_ALPHA_SAT    = 11
	BLEND_BLEND_FACTOR     = 14
	BLEND_INV_BLEND_FACTOR = 15

	BLEND_OP_ADD          = 1
	BLEND_OP_SUBTRACT     = 2
	BLEND_OP_REV_SUBTRACT = 3
	BLEND_OP_MIN          = 4
	BLEND_OP_MAX          = 5

	LOGIC_OP_NOOP = 5

	COLOR_WRITE_ENABLE_RED   = 1
	COLOR_WRITE_ENABLE_GREEN = 2
	COLOR_WRITE_ENABLE_BLUE  = 4
	COLOR_WRITE_ENABLE_ALPHA = 8
	COLOR_WRITE_ENABLE_ALL   = 0xf
)

// Input assembler.
const (
	INPUT_CLASSIFICATION_PER_VERTEX_DATA   = 0
	INPUT_CLASSIFICATION_PER_INSTANCE_DATA = 1

	INDEX_BUFFER_STRIP_CUT_VALUE_DISABLED = 0

	PRIMITIVE_TOPOLOGY_TYPE_UNDEFINED = 0
	PRIMITIVE_TOPOLOGY_TYPE_POINT     = 1
	PRIMITIVE_TOPOLOGY_TYPE_LINE      = 2
	PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE  = 3

	PRIMITIVE_TOPOLOGY_POINTLIST     = 1
	PRIMITIVE_TOPOLOGY_LINELIST      = 2
	PRIMITIVE_TOPOLOGY_LINESTRIP     = 3
	PRIMITIVE_TOPOLOGY_TRIANGLELIST  = 4
	PRIMITIVE_TOPOLOGY_TRIANGLESTRIP = 5
)

// Queries.
type QUERY_HEAP_TYPE uint32

const (
	QUERY_HEAP_TYPE_OCCLUSION QUERY_HEAP_TYPE = 0
	QUERY_HEAP_TYPE_TIMESTAMP QUERY_HEAP_TYPE = 1
)

type QUERY_TYPE uint32

const (
	QUERY_TYPE_OCCLUSION        QUERY_TYPE = 0
	QUERY_TYPE_BINARY_OCCLUSION QUERY_TYPE = 1
	QUERY_TYPE_TIMESTAMP        QUERY_TYPE = 2
)

// Indirect arguments.
const (
	INDIRECT_ARGUMENT_TYPE_DRAW         = 0
	INDIRECT_ARGUMENT_TYPE_DRAW_INDEXED = 1
	INDIRECT_ARGUMENT_TYPE_DISPATCH     = 2
)

// Texture copy types.
const (
	TEXTURE_COPY_TYPE_SUBRESOURCE_INDEX = 0
	TEXTURE_COPY_TYPE_PLACED_FOOTPRINT  = 1
)

// Feature levels.
const (
	FEATURE_LEVEL_11_0 = 0xb000
	FEATURE_LEVEL_11_1 = 0xb100
	FEATURE_LEVEL_12_0 = 0xc000
)

// DXGI swap chain values.
const (
	USAGE_RENDER_TARGET_OUTPUT = 1 << (1 + 4)
	USAGE_SHADER_INPUT         = 1 << (0 + 4)

	SWAP_EFFECT_FLIP_SEQUENTIAL = 3
	SWAP_EFFECT_FLIP_DISCARD    = 4

	SCALING_STRETCH = 0
	SCALING_NONE    = 1

	ALPHA_MODE_UNSPECIFIED = 0
	ALPHA_MODE_IGNORE      = 3

	SWAP_CHAIN_FLAG_ALLOW_MODE_SWITCH = 0x4
	SWAP_CHAIN_FLAG_ALLOW_TEARING     = 0x800

	PRESENT_ALLOW_TEARING = 0x200

	MWA_NO_ALT_ENTER = 0x2

	ADAPTER_FLAG_SOFTWARE = 0x2

	FEATURE_PRESENT_ALLOW_TEARING = 3

	GPU_PREFERENCE_UNSPECIFIED      = 0
	GPU_PREFERENCE_MINIMUM_POWER    = 1
	GPU_PREFERENCE_HIGH_PERFORMANCE = 2

	CREATE_FACTORY_DEBUG = 0x1
)

// PCI vendor IDs reported in ADAPTER_DESC1.
const (
	VENDOR_AMD       = 0x1002
	VENDOR_INTEL     = 0x8086
	VENDOR_NVIDIA    = 0x10de
	VENDOR_MICROSOFT = 0x1414
)
