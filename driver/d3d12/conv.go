// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"gviegas/arke/driver"
	"gviegas/arke/internal/d3d"
)

// convPixelFmt converts a driver.PixelFmt to a d3d.FORMAT.
func convPixelFmt(pf driver.PixelFmt) d3d.FORMAT {
	switch pf {
	case driver.RGBA8un:
		return d3d.FORMAT_R8G8B8A8_UNORM
	case driver.RGBA8n:
		return d3d.FORMAT_R8G8B8A8_SNORM
	case driver.RGBA8sRGB:
		return d3d.FORMAT_R8G8B8A8_UNORM_SRGB
	case driver.BGRA8un:
		return d3d.FORMAT_B8G8R8A8_UNORM
	case driver.BGRA8sRGB:
		return d3d.FORMAT_B8G8R8A8_UNORM_SRGB
	case driver.RG8un:
		return d3d.FORMAT_R8G8_UNORM
	case driver.RG8n:
		return d3d.FORMAT_R8G8_SNORM
	case driver.R8un:
		return d3d.FORMAT_R8_UNORM
	case driver.R8n:
		return d3d.FORMAT_R8_SNORM
	case driver.RGBA16f:
		return d3d.FORMAT_R16G16B16A16_FLOAT
	case driver.RG16f:
		return d3d.FORMAT_R16G16_FLOAT
	case driver.R16f:
		return d3d.FORMAT_R16_FLOAT
	case driver.RGBA32f:
		return d3d.FORMAT_R32G32B32A32_FLOAT
	case driver.RG32f:
		return d3d.FORMAT_R32G32_FLOAT
	case driver.R32f:
		return d3d.FORMAT_R32_FLOAT
	case driver.RGB10A2un:
		return d3d.FORMAT_R10G10B10A2_UNORM
	case driver.RG11B10f:
		return d3d.FORMAT_R11G11B10_FLOAT
	case driver.D16un:
		return d3d.FORMAT_D16_UNORM
	case driver.D32f:
		return d3d.FORMAT_D32_FLOAT
	case driver.S8ui, driver.D24unS8ui:
		// There is no stencil-only format; both use the
		// combined depth/stencil layout.
		return d3d.FORMAT_D24_UNORM_S8_UINT
	case driver.D32fS8ui:
		return d3d.FORMAT_D32_FLOAT_S8X24_UINT
	}
	return d3d.FORMAT_UNKNOWN
}

// aspectDepth returns whether pf has a depth aspect.
func aspectDepth(pf driver.PixelFmt) bool {
	switch pf {
	case driver.D16un, driver.D32f, driver.D24unS8ui, driver.D32fS8ui:
		return true
	}
	return false
}

// aspectStencil returns whether pf has a stencil aspect.
func aspectStencil(pf driver.PixelFmt) bool {
	switch pf {
	case driver.S8ui, driver.D24unS8ui, driver.D32fS8ui:
		return true
	}
	return false
}

// typelessFmt returns the typeless format to use as the
// resource format of a depth/stencil texture that is also
// sampled in shaders. For other formats it is the identity.
func typelessFmt(pf driver.PixelFmt) d3d.FORMAT {
	switch pf {
	case driver.D16un:
		return d3d.FORMAT_R16_TYPELESS
	case driver.D32f:
		return d3d.FORMAT_R32_TYPELESS
	case driver.S8ui, driver.D24unS8ui:
		return d3d.FORMAT_R24G8_TYPELESS
	case driver.D32fS8ui:
		return d3d.FORMAT_R32G8X24_TYPELESS
	}
	return convPixelFmt(pf)
}

// depthSRVFmt returns the format used to sample the depth
// aspect of pf in shaders.
func depthSRVFmt(pf driver.PixelFmt) d3d.FORMAT {
	switch pf {
	case driver.D16un:
		return d3d.FORMAT_R16_UNORM
	case driver.D32f:
		return d3d.FORMAT_R32_FLOAT
	case driver.S8ui, driver.D24unS8ui:
		return d3d.FORMAT_R24_UNORM_X8_TYPELESS
	case driver.D32fS8ui:
		return d3d.FORMAT_R32_FLOAT_X8X24_TYPELESS
	}
	return convPixelFmt(pf)
}

// texelSize returns the size in bytes of one pf texel.
func texelSize(pf driver.PixelFmt) int {
	switch pf {
	case driver.R8un, driver.R8n:
		return 1
	case driver.RG8un, driver.RG8n, driver.R16f, driver.D16un:
		return 2
	case driver.RGBA8un, driver.RGBA8n, driver.RGBA8sRGB, driver.BGRA8un, driver.BGRA8sRGB,
		driver.RG16f, driver.R32f, driver.RGB10A2un, driver.RG11B10f,
		driver.D32f, driver.S8ui, driver.D24unS8ui:
		return 4
	case driver.RGBA16f, driver.RG32f, driver.D32fS8ui:
		return 8
	case driver.RGBA32f:
		return 16
	}
	return 0
}

// convVertexFmt converts a driver.VertexFmt to a d3d.FORMAT
// and its size in bytes.
// Three-component 8- and 16-bit formats have no DXGI
// equivalent and convert to FORMAT_UNKNOWN.
func convVertexFmt(vf driver.VertexFmt) (f d3d.FORMAT, size int) {
	switch vf {
	case driver.Int8:
		return d3d.FORMAT_R8_SINT, 1
	case driver.Int8x2:
		return d3d.FORMAT_R8G8_SINT, 2
	case driver.Int8x4:
		return d3d.FORMAT_R8G8B8A8_SINT, 4
	case driver.Int16:
		return d3d.FORMAT_R16_SINT, 2
	case driver.Int16x2:
		return d3d.FORMAT_R16G16_SINT, 4
	case driver.Int16x4:
		return d3d.FORMAT_R16G16B16A16_SINT, 8
	case driver.Int32:
		return d3d.FORMAT_R32_SINT, 4
	case driver.Int32x2:
		return d3d.FORMAT_R32G32_SINT, 8
	case driver.Int32x3:
		return d3d.FORMAT_R32G32B32_SINT, 12
	case driver.Int32x4:
		return d3d.FORMAT_R32G32B32A32_SINT, 16
	case driver.UInt8:
		return d3d.FORMAT_R8_UINT, 1
	case driver.UInt8x2:
		return d3d.FORMAT_R8G8_UINT, 2
	case driver.UInt8x4:
		return d3d.FORMAT_R8G8B8A8_UINT, 4
	case driver.UInt16:
		return d3d.FORMAT_R16_UINT, 2
	case driver.UInt16x2:
		return d3d.FORMAT_R16G16_UINT, 4
	case driver.UInt16x4:
		return d3d.FORMAT_R16G16B16A16_UINT, 8
	case driver.UInt32:
		return d3d.FORMAT_R32_UINT, 4
	case driver.UInt32x2:
		return d3d.FORMAT_R32G32_UINT, 8
	case driver.UInt32x3:
		return d3d.FORMAT_R32G32B32_UINT, 12
	case driver.UInt32x4:
		return d3d.FORMAT_R32G32B32A32_UINT, 16
	case driver.Float32:
		return d3d.FORMAT_R32_FLOAT, 4
	case driver.Float32x2:
		return d3d.FORMAT_R32G32_FLOAT, 8
	case driver.Float32x3:
		return d3d.FORMAT_R32G32B32_FLOAT, 12
	case driver.Float32x4:
		return d3d.FORMAT_R32G32B32A32_FLOAT, 16
	}
	return d3d.FORMAT_UNKNOWN, 0
}

// convTopology converts a driver.Topology to the primitive
// topology set on the command list and the topology type
// baked into pipeline state.
func convTopology(t driver.Topology) (topo, typ uint32) {
	switch t {
	case driver.TPoint:
		return d3d.PRIMITIVE_TOPOLOGY_POINTLIST, d3d.PRIMITIVE_TOPOLOGY_TYPE_POINT
	case driver.TLine:
		return d3d.PRIMITIVE_TOPOLOGY_LINELIST, d3d.PRIMITIVE_TOPOLOGY_TYPE_LINE
	case driver.TLnStrip:
		return d3d.PRIMITIVE_TOPOLOGY_LINESTRIP, d3d.PRIMITIVE_TOPOLOGY_TYPE_LINE
	case driver.TTriangle:
		return d3d.PRIMITIVE_TOPOLOGY_TRIANGLELIST, d3d.PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE
	case driver.TTriStrip:
		return d3d.PRIMITIVE_TOPOLOGY_TRIANGLESTRIP, d3d.PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE
	}
	return d3d.PRIMITIVE_TOPOLOGY_TRIANGLELIST, d3d.PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE
}

// convIndexFmt converts a driver.IndexFmt to a d3d.FORMAT.
func convIndexFmt(f driver.IndexFmt) d3d.FORMAT {
	if f == driver.Index16 {
		return d3d.FORMAT_R16_UINT
	}
	return d3d.FORMAT_R32_UINT
}

// convCmpFunc converts a driver.CmpFunc to a
// D3D12_COMPARISON_FUNC value.
func convCmpFunc(f driver.CmpFunc) uint32 {
	switch f {
	case driver.CNever:
		return d3d.COMPARISON_FUNC_NEVER
	case driver.CLess:
		return d3d.COMPARISON_FUNC_LESS
	case driver.CEqual:
		return d3d.COMPARISON_FUNC_EQUAL
	case driver.CLessEqual:
		return d3d.COMPARISON_FUNC_LESS_EQUAL
	case driver.CGreater:
		return d3d.COMPARISON_FUNC_GREATER
	case driver.CNotEqual:
		return d3d.COMPARISON_FUNC_NOT_EQUAL
	case driver.CGreaterEqual:
		return d3d.COMPARISON_FUNC_GREATER_EQUAL
	case driver.CAlways:
		return d3d.COMPARISON_FUNC_ALWAYS
	}
	return d3d.COMPARISON_FUNC_NEVER
}

// convStencilOp converts a driver.StencilOp to a
// D3D12_STENCIL_OP value.
func convStencilOp(op driver.StencilOp) uint32 {
	switch op {
	case driver.SKeep:
		return d3d.STENCIL_OP_KEEP
	case driver.SZero:
		return d3d.STENCIL_OP_ZERO
	case driver.SReplace:
		return d3d.STENCIL_OP_REPLACE
	case driver.SIncClamp:
		return d3d.STENCIL_OP_INCR_SAT
	case driver.SDecClamp:
		return d3d.STENCIL_OP_DECR_SAT
	case driver.SInvert:
		return d3d.STENCIL_OP_INVERT
	case driver.SIncWrap:
		return d3d.STENCIL_OP_INCR
	case driver.SDecWrap:
		return d3d.STENCIL_OP_DECR
	}
	return d3d.STENCIL_OP_KEEP
}

// convBlendOp converts a driver.BlendOp to a
// D3D12_BLEND_OP value.
func convBlendOp(op driver.BlendOp) uint32 {
	switch op {
	case driver.BAdd:
		return d3d.BLEND_OP_ADD
	case driver.BSubtract:
		return d3d.BLEND_OP_SUBTRACT
	case driver.BRevSubtract:
		return d3d.BLEND_OP_REV_SUBTRACT
	case driver.BMin:
		return d3d.BLEND_OP_MIN
	case driver.BMax:
		return d3d.BLEND_OP_MAX
	}
	return d3d.BLEND_OP_ADD
}

// convBlendFac converts a driver.BlendFac to a
// D3D12_BLEND value.
func convBlendFac(f driver.BlendFac) uint32 {
	switch f {
	case driver.BZero:
		return d3d.BLEND_ZERO
	case driver.BOne:
		return d3d.BLEND_ONE
	case driver.BSrcColor:
		return d3d.BLEND_SRC_COLOR
	case driver.BInvSrcColor:
		return d3d.BLEND_INV_SRC_COLOR
	case driver.BSrcAlpha:
		return d3d.BLEND_SRC_ALPHA
	case driver.BInvSrcAlpha:
		return d3d.BLEND_INV_SRC_ALPHA
	case driver.BDstColor:
		return d3d.BLEND_DEST_COLOR
	case driver.BInvDstColor:
		return d3d.BLEND_INV_DEST_COLOR
	case driver.BDstAlpha:
		return d3d.BLEND_DEST_ALPHA
	case driver.BInvDstAlpha:
		return d3d.BLEND_INV_DEST_ALPHA
	case driver.BSrcAlphaSaturated:
		return d3d.BLEND_SRC_ALPHA_SAT
	case driver.BBlendColor:
		return d3d.BLEND_BLEND_FACTOR
	case driver.BInvBlendColor:
		return d3d.BLEND_INV_BLEND_FACTOR
	}
	return d3d.BLEND_ZERO
}

// convColorMask converts a driver.ColorMask to a
// D3D12 render target write mask.
func convColorMask(m driver.ColorMask) uint8 {
	var w uint8
	if m&driver.CRed != 0 {
		w |= d3d.COLOR_WRITE_ENABLE_RED
	}
	if m&driver.CGreen != 0 {
		w |= d3d.COLOR_WRITE_ENABLE_GREEN
	}
	if m&driver.CBlue != 0 {
		w |= d3d.COLOR_WRITE_ENABLE_BLUE
	}
	if m&driver.CAlpha != 0 {
		w |= d3d.COLOR_WRITE_ENABLE_ALPHA
	}
	return w
}

// convAddrMode converts a driver.AddrMode to a
// D3D12_TEXTURE_ADDRESS_MODE value.
func convAddrMode(m driver.AddrMode) uint32 {
	switch m {
	case driver.AWrap:
		return d3d.TEXTURE_ADDRESS_MODE_WRAP
	case driver.AMirror:
		return d3d.TEXTURE_ADDRESS_MODE_MIRROR
	case driver.AClamp:
		return d3d.TEXTURE_ADDRESS_MODE_CLAMP
	}
	return d3d.TEXTURE_ADDRESS_MODE_WRAP
}

// convFilter converts sampler filters to a D3D12_FILTER
// value. Anisotropic filtering takes precedence when
// requested; a comparison function selects the comparison
// filter variants.
func convFilter(spln *driver.Sampling) uint32 {
	cmp := spln.Cmp != driver.CNever
	if spln.MaxAniso > 1 {
		if cmp {
			return d3d.FILTER_COMPARISON_ANISOTROPIC
		}
		return d3d.FILTER_ANISOTROPIC
	}
	// The filter encoding packs mip, mag and min bits.
	var f uint32
	if spln.Mipmap == driver.FLinear {
		f |= 0x1
	}
	if spln.Mag == driver.FLinear {
		f |= 0x4
	}
	if spln.Min == driver.FLinear {
		f |= 0x10
	}
	if cmp {
		f |= 0x80
	}
	return f
}
