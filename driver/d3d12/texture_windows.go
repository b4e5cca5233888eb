// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"gviegas/arke/driver"
	"gviegas/arke/internal/d3d"
)

// texture implements driver.Texture.
// sc is set on swapchain back-buffer wrappers, which own a
// buffer of the swapchain instead of a committed resource.
type texture struct {
	d       *Driver
	res     *d3d.ID3D12Resource
	sc      *swapchain
	state   resState
	pf      driver.PixelFmt
	size    driver.Dim3D
	layers  int
	levels  int
	samples int
	usg     driver.Usage
}

// NewTexture creates a new texture.
func (d *Driver) NewTexture(pf driver.PixelFmt, size driver.Dim3D, layers, levels, samples int, usg driver.Usage) (driver.Texture, error) {
	if size.Width < 1 || layers < 1 || levels < 1 || samples < 1 {
		return nil, errInvalidParam
	}
	if samples&(samples-1) != 0 {
		return nil, errInvalidParam
	}
	depth := aspectDepth(pf) || aspectStencil(pf)
	desc := d3d.RESOURCE_DESC{
		Width:            uint64(size.Width),
		Height:           1,
		DepthOrArraySize: uint16(layers),
		MipLevels:        uint16(levels),
		Format:           convPixelFmt(pf),
		SampleDesc:       d3d.SAMPLE_DESC{Count: uint32(samples)},
	}
	switch {
	case size.Depth >= 1:
		if layers != 1 {
			return nil, errInvalidParam
		}
		desc.Dimension = d3d.RESOURCE_DIMENSION_TEXTURE3D
		desc.Height = uint32(size.Height)
		desc.DepthOrArraySize = uint16(size.Depth)
	case size.Height >= 1:
		desc.Dimension = d3d.RESOURCE_DIMENSION_TEXTURE2D
		desc.Height = uint32(size.Height)
	default:
		desc.Dimension = d3d.RESOURCE_DIMENSION_TEXTURE1D
	}
	if usg&driver.UShaderWrite != 0 {
		desc.Flags |= d3d.RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS
	}
	if usg&driver.URenderTarget != 0 {
		if depth {
			desc.Flags |= d3d.RESOURCE_FLAG_ALLOW_DEPTH_STENCIL
		} else {
			desc.Flags |= d3d.RESOURCE_FLAG_ALLOW_RENDER_TARGET
		}
	}
	if desc.Flags == 0 && usg&(driver.UShaderRead|driver.UShaderSample) == 0 {
		// The texture would be useless.
		panic("cannot create texture without a valid usage")
	}
	if depth && usg&driver.UShaderSample != 0 {
		// Sampling a depth texture requires a typeless
		// resource so depth and shader views can disagree
		// on the format.
		desc.Format = typelessFmt(pf)
	}
	props := d3d.HEAP_PROPERTIES{Type: d3d.HEAP_TYPE_DEFAULT}
	res, err := d.dev.CreateCommittedResource(&props, d3d.HEAP_FLAG_NONE, &desc, d3d.RESOURCE_STATE_COMMON)
	if err != nil {
		return nil, resourceErr(err)
	}
	if Debug {
		res.SetName("arke texture")
	}
	nsub := layers * levels
	if size.Depth >= 1 {
		nsub = levels
	}
	return &texture{
		d:       d,
		res:     res,
		state:   newResState(nsub, d3d.RESOURCE_STATE_COMMON),
		pf:      pf,
		size:    size,
		layers:  layers,
		levels:  levels,
		samples: samples,
		usg:     usg,
	}, nil
}

// resource returns the native resource.
func (t *texture) resource() *d3d.ID3D12Resource {
	return t.res
}

// subIndex returns the subresource index of a layer/level
// pair.
func (t *texture) subIndex(layer, level int) int {
	return level + layer*t.levels
}

// PixelFmt implements driver.Texture.
func (t *texture) PixelFmt() driver.PixelFmt { return t.pf }

// Size implements driver.Texture.
func (t *texture) Size() driver.Dim3D { return t.size }

// Layers implements driver.Texture.
func (t *texture) Layers() int { return t.layers }

// Levels implements driver.Texture.
func (t *texture) Levels() int { return t.levels }

// Samples implements driver.Texture.
func (t *texture) Samples() int { return t.samples }

// NewView implements driver.Texture.
func (t *texture) NewView(typ driver.ViewType, layer, layers, level, levels int) (driver.TexView, error) {
	switch {
	case layer < 0 || layers < 1 || level < 0 || levels < 1:
		return nil, errInvalidParam
	case t.size.Depth < 1 && layer+layers > t.layers:
		return nil, errInvalidParam
	case level+levels > t.levels:
		return nil, errInvalidParam
	}
	switch typ {
	case driver.IView2DMS, driver.IView2DMSArray:
		if t.samples == 1 {
			return nil, errInvalidParam
		}
	case driver.IViewCube, driver.IViewCubeArray:
		if layers%6 != 0 || t.size.Width != t.size.Height {
			return nil, errInvalidParam
		}
	case driver.IView3D:
		if t.size.Depth < 1 {
			return nil, errInvalidParam
		}
	}
	v := &texView{
		t:      t,
		typ:    typ,
		layer:  layer,
		layers: layers,
		level:  level,
		levels: levels,
	}
	var err error
	depth := aspectDepth(t.pf) || aspectStencil(t.pf)
	if t.usg&(driver.UShaderSample|driver.UShaderRead) != 0 {
		if err = v.makeSRV(); err != nil {
			return nil, err
		}
	}
	if t.usg&driver.UShaderWrite != 0 {
		if err = v.makeUAV(); err != nil {
			v.Destroy()
			return nil, err
		}
	}
	if t.usg&driver.URenderTarget != 0 {
		if depth {
			err = v.makeDSV()
		} else {
			err = v.makeRTV()
		}
		if err != nil {
			v.Destroy()
			return nil, err
		}
	}
	return v, nil
}

// Destroy implements driver.Destroyer.
// Swapchain back-buffer wrappers are destroyed through their
// swapchain instead.
func (t *texture) Destroy() {
	if t == nil || t.sc != nil {
		return
	}
	if t.res != nil {
		t.d.release(t.res)
	}
	*t = texture{}
}

// texView implements driver.TexView.
type texView struct {
	t      *texture
	typ    driver.ViewType
	layer  int
	layers int
	level  int
	levels int
	srv    descSlot
	uav    descSlot
	rtv    descSlot
	dsv    descSlot
	// Read-only depth view, bound instead of dsv when the
	// same subresources are sampled during the pass.
	dsvRO  descSlot
	hasSRV bool
	hasUAV bool
	hasRTV bool
	hasDSV bool
}

func (v *texView) makeSRV() error {
	t := v.t
	slot, err := t.d.viewPool.alloc()
	if err != nil {
		return err
	}
	desc := d3d.SHADER_RESOURCE_VIEW_DESC{
		Format:                  depthSRVFmt(t.pf),
		Shader4ComponentMapping: d3d.DEFAULT_SHADER_4_COMPONENT_MAPPING,
	}
	switch v.typ {
	case driver.IView1D:
		desc.ViewDimension = d3d.SRV_DIMENSION_TEXTURE1D
		desc.SetTexture1D(d3d.TEX1D_SRV{
			MostDetailedMip: uint32(v.level),
			MipLevels:       uint32(v.levels),
		})
	case driver.IView1DArray:
		desc.ViewDimension = d3d.SRV_DIMENSION_TEXTURE1DARRAY
		desc.SetTexture1DArray(d3d.TEX1D_ARRAY_SRV{
			MostDetailedMip: uint32(v.level),
			MipLevels:       uint32(v.levels),
			FirstArraySlice: uint32(v.layer),
			ArraySize:       uint32(v.layers),
		})
	case driver.IView2D:
		desc.ViewDimension = d3d.SRV_DIMENSION_TEXTURE2D
		desc.SetTexture2D(d3d.TEX2D_SRV{
			MostDetailedMip: uint32(v.level),
			MipLevels:       uint32(v.levels),
		})
	case driver.IView2DArray:
		desc.ViewDimension = d3d.SRV_DIMENSION_TEXTURE2DARRAY
		desc.SetTexture2DArray(d3d.TEX2D_ARRAY_SRV{
			MostDetailedMip: uint32(v.level),
			MipLevels:       uint32(v.levels),
			FirstArraySlice: uint32(v.layer),
			ArraySize:       uint32(v.layers),
		})
	case driver.IView3D:
		desc.ViewDimension = d3d.SRV_DIMENSION_TEXTURE3D
		desc.SetTexture3D(d3d.TEX3D_SRV{
			MostDetailedMip: uint32(v.level),
			MipLevels:       uint32(v.levels),
		})
	case driver.IViewCube:
		desc.ViewDimension = d3d.SRV_DIMENSION_TEXTURECUBE
		desc.SetTextureCube(d3d.TEXCUBE_SRV{
			MostDetailedMip: uint32(v.level),
			MipLevels:       uint32(v.levels),
		})
	case driver.IViewCubeArray:
		desc.ViewDimension = d3d.SRV_DIMENSION_TEXTURECUBEARRAY
		desc.SetTextureCubeArray(d3d.TEXCUBE_ARRAY_SRV{
			MostDetailedMip:  uint32(v.level),
			MipLevels:        uint32(v.levels),
			First2DArrayFace: uint32(v.layer),
			NumCubes:         uint32(v.layers / 6),
		})
	case driver.IView2DMS:
		desc.ViewDimension = d3d.SRV_DIMENSION_TEXTURE2DMS
		desc.SetTexture2DMS(d3d.TEX2DMS_SRV{})
	case driver.IView2DMSArray:
		desc.ViewDimension = d3d.SRV_DIMENSION_TEXTURE2DMSARRAY
		desc.SetTexture2DMSArray(d3d.TEX2DMS_ARRAY_SRV{
			FirstArraySlice: uint32(v.layer),
			ArraySize:       uint32(v.layers),
		})
	default:
		t.d.viewPool.free(slot)
		return errInvalidParam
	}
	t.d.dev.CreateShaderResourceView(t.resource(), &desc, t.d.viewPool.cpu(slot))
	v.srv = slot
	v.hasSRV = true
	return nil
}

func (v *texView) makeUAV() error {
	t := v.t
	slot, err := t.d.viewPool.alloc()
	if err != nil {
		return err
	}
	desc := d3d.UNORDERED_ACCESS_VIEW_DESC{
		Format: convPixelFmt(t.pf),
	}
	switch v.typ {
	case driver.IView1D:
		desc.ViewDimension = d3d.UAV_DIMENSION_TEXTURE1D
		desc.SetTexture1D(d3d.TEX1D_UAV{MipSlice: uint32(v.level)})
	case driver.IView1DArray:
		desc.ViewDimension = d3d.UAV_DIMENSION_TEXTURE1DARRAY
		desc.SetTexture1DArray(d3d.TEX1D_ARRAY_UAV{
			MipSlice:        uint32(v.level),
			FirstArraySlice: uint32(v.layer),
			ArraySize:       uint32(v.layers),
		})
	case driver.IView2D:
		desc.ViewDimension = d3d.UAV_DIMENSION_TEXTURE2D
		desc.SetTexture2D(d3d.TEX2D_UAV{MipSlice: uint32(v.level)})
	case driver.IView2DArray, driver.IViewCube, driver.IViewCubeArray:
		desc.ViewDimension = d3d.UAV_DIMENSION_TEXTURE2DARRAY
		desc.SetTexture2DArray(d3d.TEX2D_ARRAY_UAV{
			MipSlice:        uint32(v.level),
			FirstArraySlice: uint32(v.layer),
			ArraySize:       uint32(v.layers),
		})
	case driver.IView3D:
		desc.ViewDimension = d3d.UAV_DIMENSION_TEXTURE3D
		desc.SetTexture3D(d3d.TEX3D_UAV{
			MipSlice: uint32(v.level),
			WSize:    uint32(t.size.Depth),
		})
	default:
		// Multisample resources cannot have UAVs.
		t.d.viewPool.free(slot)
		return errInvalidParam
	}
	t.d.dev.CreateUnorderedAccessView(t.resource(), nil, &desc, t.d.viewPool.cpu(slot))
	v.uav = slot
	v.hasUAV = true
	return nil
}

func (v *texView) makeRTV() error {
	t := v.t
	slot, err := t.d.rtvPool.alloc()
	if err != nil {
		return err
	}
	desc := d3d.RENDER_TARGET_VIEW_DESC{
		Format: convPixelFmt(t.pf),
	}
	switch v.typ {
	case driver.IView1D:
		desc.ViewDimension = d3d.RTV_DIMENSION_TEXTURE1D
		desc.SetTexture1D(d3d.TEX1D_RTV{MipSlice: uint32(v.level)})
	case driver.IView1DArray:
		desc.ViewDimension = d3d.RTV_DIMENSION_TEXTURE1DARRAY
		desc.SetTexture1DArray(d3d.TEX1D_ARRAY_RTV{
			MipSlice:        uint32(v.level),
			FirstArraySlice: uint32(v.layer),
			ArraySize:       uint32(v.layers),
		})
	case driver.IView2D:
		desc.ViewDimension = d3d.RTV_DIMENSION_TEXTURE2D
		desc.SetTexture2D(d3d.TEX2D_RTV{MipSlice: uint32(v.level)})
	case driver.IView2DArray, driver.IViewCube, driver.IViewCubeArray:
		desc.ViewDimension = d3d.RTV_DIMENSION_TEXTURE2DARRAY
		desc.SetTexture2DArray(d3d.TEX2D_ARRAY_RTV{
			MipSlice:        uint32(v.level),
			FirstArraySlice: uint32(v.layer),
			ArraySize:       uint32(v.layers),
		})
	case driver.IView3D:
		desc.ViewDimension = d3d.RTV_DIMENSION_TEXTURE3D
		desc.SetTexture3D(d3d.TEX3D_RTV{
			MipSlice: uint32(v.level),
			WSize:    uint32(t.size.Depth),
		})
	case driver.IView2DMS:
		desc.ViewDimension = d3d.RTV_DIMENSION_TEXTURE2DMS
		desc.SetTexture2DMS(d3d.TEX2DMS_RTV{})
	case driver.IView2DMSArray:
		desc.ViewDimension = d3d.RTV_DIMENSION_TEXTURE2DMSARRAY
		desc.SetTexture2DMSArray(d3d.TEX2DMS_ARRAY_RTV{
			FirstArraySlice: uint32(v.layer),
			ArraySize:       uint32(v.layers),
		})
	default:
		t.d.rtvPool.free(slot)
		return errInvalidParam
	}
	t.d.dev.CreateRenderTargetView(t.resource(), &desc, t.d.rtvPool.cpu(slot))
	v.rtv = slot
	v.hasRTV = true
	return nil
}

func (v *texView) makeDSV() error {
	t := v.t
	desc := d3d.DEPTH_STENCIL_VIEW_DESC{
		Format: convPixelFmt(t.pf),
	}
	switch v.typ {
	case driver.IView1D:
		desc.ViewDimension = d3d.DSV_DIMENSION_TEXTURE1D
		desc.SetTexture1D(d3d.TEX1D_DSV{MipSlice: uint32(v.level)})
	case driver.IView1DArray:
		desc.ViewDimension = d3d.DSV_DIMENSION_TEXTURE1DARRAY
		desc.SetTexture1DArray(d3d.TEX1D_ARRAY_DSV{
			MipSlice:        uint32(v.level),
			FirstArraySlice: uint32(v.layer),
			ArraySize:       uint32(v.layers),
		})
	case driver.IView2D:
		desc.ViewDimension = d3d.DSV_DIMENSION_TEXTURE2D
		desc.SetTexture2D(d3d.TEX2D_DSV{MipSlice: uint32(v.level)})
	case driver.IView2DArray:
		desc.ViewDimension = d3d.DSV_DIMENSION_TEXTURE2DARRAY
		desc.SetTexture2DArray(d3d.TEX2D_ARRAY_DSV{
			MipSlice:        uint32(v.level),
			FirstArraySlice: uint32(v.layer),
			ArraySize:       uint32(v.layers),
		})
	case driver.IView2DMS:
		desc.ViewDimension = d3d.DSV_DIMENSION_TEXTURE2DMS
	case driver.IView2DMSArray:
		desc.ViewDimension = d3d.DSV_DIMENSION_TEXTURE2DMSARRAY
		desc.SetTexture2DMSArray(d3d.TEX2DMS_ARRAY_DSV{
			FirstArraySlice: uint32(v.layer),
			ArraySize:       uint32(v.layers),
		})
	default:
		return errInvalidParam
	}
	slot, err := t.d.dsvPool.alloc()
	if err != nil {
		return err
	}
	t.d.dev.CreateDepthStencilView(t.resource(), &desc, t.d.dsvPool.cpu(slot))
	v.dsv = slot
	roSlot, err := t.d.dsvPool.alloc()
	if err != nil {
		t.d.dsvPool.free(slot)
		return err
	}
	desc.Flags = d3d.DSV_FLAG_READ_ONLY_DEPTH
	if aspectStencil(t.pf) {
		desc.Flags |= d3d.DSV_FLAG_READ_ONLY_STENCIL
	}
	t.d.dev.CreateDepthStencilView(t.resource(), &desc, t.d.dsvPool.cpu(roSlot))
	v.dsvRO = roSlot
	v.hasDSV = true
	return nil
}

// Texture implements driver.TexView.
func (v *texView) Texture() driver.Texture { return v.t }

// subRange returns the range of subresource indices the
// view covers.
func (v *texView) subRange() (first, n int) {
	t := v.t
	if t.size.Depth >= 1 {
		return v.level, v.levels
	}
	if v.layers == t.layers && v.levels == t.levels {
		return 0, t.layers * t.levels
	}
	// Non-contiguous in the general case; callers iterate
	// layer by layer.
	return t.subIndex(v.layer, v.level), v.levels
}

// Destroy implements driver.Destroyer.
func (v *texView) Destroy() {
	if v == nil {
		return
	}
	if v.hasSRV {
		v.t.d.viewPool.free(v.srv)
	}
	if v.hasUAV {
		v.t.d.viewPool.free(v.uav)
	}
	if v.hasRTV {
		v.t.d.rtvPool.free(v.rtv)
	}
	if v.hasDSV {
		v.t.d.dsvPool.free(v.dsv)
		v.t.d.dsvPool.free(v.dsvRO)
	}
	*v = texView{}
}
