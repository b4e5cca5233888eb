// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"log"
	"os"
	"sync"

	"golang.org/x/sys/windows"

	"gviegas/arke/driver"
	"gviegas/arke/internal/d3d"
)

// Setting this environment variable to a non-empty value
// turns on the debug layer and device removed extended data.
const debugEnv = "ARKE_DEBUG"

// Knobs read by Open. Set them before the first Open call.
var (
	// Debug enables the debug layer and DRED.
	Debug = os.Getenv(debugEnv) != ""
	// UseWARP skips hardware adapters and selects the
	// software rasterizer.
	UseWARP bool
	// PreferVendor restricts adapter selection to the given
	// PCI vendor ID when a usable match exists.
	PreferVendor uint32
	// StablePowerState asks the device for stable clocks.
	// Meant for profiling; requires developer mode.
	StablePowerState bool
)

func init() {
	driver.Register(&Driver{})
}

// releaser is any native object the late-release queue can
// dispose of.
type releaser interface {
	Release() uint32
}

// lateRelease is a native object waiting for the frames that
// may reference it to leave the GPU.
type lateRelease struct {
	obj   releaser
	frame uint64
}

// nullDesc locates a lazily created descriptor in one of the
// driver's pools.
type nullDesc struct {
	slot descSlot
	ok   bool
}

// Driver implements driver.Driver and driver.GPU.
type Driver struct {
	factory *d3d.IDXGIFactory4
	adapter *d3d.IDXGIAdapter1
	dev     *d3d.ID3D12Device
	qu      *cmdQueue
	ctx     *ctxt

	viewPool *descPool
	splrPool *descPool
	rtvPool  *descPool
	dsvPool  *descPool
	csuRing  *descRing
	smpRing  *descRing
	upload   uploadPool

	rootSig        *d3d.ID3D12RootSignature
	sigDraw        *d3d.ID3D12CommandSignature
	sigDrawIndexed *d3d.ID3D12CommandSignature
	sigDispatch    *d3d.ID3D12CommandSignature

	tsHeap  *queryHeap
	occHeap *queryHeap

	// Swapchains whose back buffers the context must return
	// to the present state when closing a frame.
	scs []*swapchain

	// Monotonic frame counter and the fence values of the
	// two most recent submitted frames.
	frame      uint64
	frameFence [2]uint64

	relMu   sync.Mutex
	pending []lateRelease

	nullMu   sync.Mutex
	nullSRVs [dim2DMSArray + 1]nullDesc
	nullUAVs [dim2DMSArray + 1]nullDesc
	defSplr  nullDesc
}

// Open implements driver.Driver.
func (d *Driver) Open() (driver.GPU, error) {
	if d.dev != nil {
		return d, nil
	}
	if err := d3d.Available(); err != nil {
		return nil, driver.ErrNotInstalled
	}
	var flags uint32
	if Debug {
		if dbg, err := d3d.GetDebugInterface(); err == nil {
			dbg.EnableDebugLayer()
			dbg.Release()
			flags |= d3d.CREATE_FACTORY_DEBUG
		} else {
			log.Printf("[!] d3d12: debug layer unavailable: %v", err)
		}
		if dred, err := d3d.GetDREDSettings(); err == nil {
			dred.SetAutoBreadcrumbsEnablement(true)
			dred.SetPageFaultEnablement(true)
			dred.Release()
		}
	}
	if err := d.open(flags); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

func (d *Driver) open(factoryFlags uint32) (err error) {
	if d.factory, err = d3d.CreateFactory2(factoryFlags); err != nil {
		return err
	}
	if d.adapter, err = d.selectAdapter(); err != nil {
		return err
	}
	if desc, err := d.adapter.GetDesc1(); err == nil {
		log.Printf("d3d12: using adapter '%s'", windows.UTF16ToString(desc.Description[:]))
	}
	if d.dev, err = d3d.CreateDevice(d.adapter, d3d.FEATURE_LEVEL_11_0); err != nil {
		return driver.ErrNoDevice
	}
	if StablePowerState {
		if err := d.dev.SetStablePowerState(true); err != nil {
			log.Printf("[!] d3d12: stable power state: %v", err)
		}
	}
	if d.qu, err = newCmdQueue(d.dev); err != nil {
		return err
	}
	d.viewPool = newDescPool(d.dev, d3d.DESCRIPTOR_HEAP_TYPE_CBV_SRV_UAV)
	d.splrPool = newDescPool(d.dev, d3d.DESCRIPTOR_HEAP_TYPE_SAMPLER)
	d.rtvPool = newDescPool(d.dev, d3d.DESCRIPTOR_HEAP_TYPE_RTV)
	d.dsvPool = newDescPool(d.dev, d3d.DESCRIPTOR_HEAP_TYPE_DSV)
	if d.csuRing, err = newDescRing(d.dev, d3d.DESCRIPTOR_HEAP_TYPE_CBV_SRV_UAV, csuRingLen); err != nil {
		return err
	}
	if d.smpRing, err = newDescRing(d.dev, d3d.DESCRIPTOR_HEAP_TYPE_SAMPLER, samplerRingLen); err != nil {
		return err
	}
	d.upload.init(d.dev)
	if d.rootSig, err = newRootSignature(d.dev); err != nil {
		return err
	}
	if d.sigDraw, d.sigDrawIndexed, d.sigDispatch, err = newCommandSignatures(d.dev); err != nil {
		return err
	}
	if d.tsHeap, err = newQueryHeap(d, d3d.QUERY_HEAP_TYPE_TIMESTAMP, d3d.QUERY_TYPE_TIMESTAMP); err != nil {
		return err
	}
	if d.occHeap, err = newQueryHeap(d, d3d.QUERY_HEAP_TYPE_OCCLUSION, d3d.QUERY_TYPE_OCCLUSION); err != nil {
		return err
	}
	d.ctx, err = newCtxt(d)
	return err
}

// selectAdapter picks the first hardware adapter that can
// reach the minimum feature level, preferring dedicated GPUs
// when the factory supports ordering by preference. WARP is
// the last resort.
func (d *Driver) selectAdapter() (*d3d.IDXGIAdapter1, error) {
	if UseWARP {
		if a, err := d.factory.EnumWarpAdapter(); err == nil {
			return a, nil
		}
		return nil, driver.ErrNoDevice
	}
	if PreferVendor != 0 {
		for i := uint32(0); ; i++ {
			a, err := d.factory.EnumAdapters1(i)
			if err != nil || a == nil {
				break
			}
			if desc, err := a.GetDesc1(); err == nil && desc.VendorID == PreferVendor && adapterUsable(a) {
				return a, nil
			}
			a.Release()
		}
	}
	for i := uint32(0); ; i++ {
		a, err := d.factory.EnumAdapterByGpuPreference(i, d3d.GPU_PREFERENCE_HIGH_PERFORMANCE)
		if err != nil || a == nil {
			break
		}
		if adapterUsable(a) {
			return a, nil
		}
		a.Release()
	}
	for i := uint32(0); ; i++ {
		a, err := d.factory.EnumAdapters1(i)
		if err != nil || a == nil {
			break
		}
		if adapterUsable(a) {
			return a, nil
		}
		a.Release()
	}
	if a, err := d.factory.EnumWarpAdapter(); err == nil {
		if d3d.SupportsDevice(a, d3d.FEATURE_LEVEL_11_0) {
			return a, nil
		}
		a.Release()
	}
	return nil, driver.ErrNoDevice
}

func adapterUsable(a *d3d.IDXGIAdapter1) bool {
	desc, err := a.GetDesc1()
	if err != nil || desc.Flags&d3d.ADAPTER_FLAG_SOFTWARE != 0 {
		return false
	}
	return d3d.SupportsDevice(a, d3d.FEATURE_LEVEL_11_0)
}

// Name implements driver.Driver.
func (d *Driver) Name() string { return driverName }

// Close implements driver.Driver.
func (d *Driver) Close() {
	if d.qu != nil {
		d.qu.waitIdle()
	}
	for len(d.scs) > 0 {
		d.scs[len(d.scs)-1].Destroy()
	}
	d.ctx.destroy()
	d.tsHeap.destroy()
	d.occHeap.destroy()
	if d.rootSig != nil {
		d.rootSig.Release()
	}
	for _, s := range [3]*d3d.ID3D12CommandSignature{d.sigDraw, d.sigDrawIndexed, d.sigDispatch} {
		if s != nil {
			s.Release()
		}
	}
	d.csuRing.destroy()
	d.smpRing.destroy()
	d.viewPool.destroy()
	d.splrPool.destroy()
	d.rtvPool.destroy()
	d.dsvPool.destroy()
	d.flushReleases(true)
	d.upload.destroy()
	if d.qu != nil {
		d.qu.destroy()
	}
	if d.dev != nil {
		d.dev.Release()
	}
	if d.adapter != nil {
		d.adapter.Release()
	}
	if d.factory != nil {
		d.factory.Release()
	}
	*d = Driver{}
}

// release queues a native object for disposal once enough
// frames pass that no in-flight command can reference it.
func (d *Driver) release(obj releaser) {
	if obj == nil {
		return
	}
	d.relMu.Lock()
	d.pending = append(d.pending, lateRelease{obj, d.frame + releaseSafeFrames})
	d.relMu.Unlock()
}

// flushReleases disposes of queued objects whose safe frame
// has been reached, or of everything when all is set.
func (d *Driver) flushReleases(all bool) {
	d.relMu.Lock()
	kept := d.pending[:0]
	for _, r := range d.pending {
		if all || r.frame <= d.frame {
			r.obj.Release()
		} else {
			kept = append(kept, r)
		}
	}
	d.pending = kept
	d.relMu.Unlock()
}

// nullSRV returns a null shader resource descriptor of the
// given reflection dimension. Shaders read zeros from slots
// they declare but the context has nothing bound to.
func (d *Driver) nullSRV(dim uint8) (d3d.CPU_DESCRIPTOR_HANDLE, error) {
	if dim == dimNone || int(dim) >= len(d.nullSRVs) {
		dim = dim2D
	}
	d.nullMu.Lock()
	defer d.nullMu.Unlock()
	if n := &d.nullSRVs[dim]; n.ok {
		return d.viewPool.cpu(n.slot), nil
	}
	slot, err := d.viewPool.alloc()
	if err != nil {
		return d3d.CPU_DESCRIPTOR_HANDLE{}, err
	}
	desc := d3d.SHADER_RESOURCE_VIEW_DESC{
		Format:                  d3d.FORMAT_R8G8B8A8_UNORM,
		ViewDimension:           convSRVDim(dim),
		Shader4ComponentMapping: d3d.DEFAULT_SHADER_4_COMPONENT_MAPPING,
	}
	switch dim {
	case dimBuffer:
		desc.Format = d3d.FORMAT_R32_TYPELESS
		desc.SetBuffer(d3d.BUFFER_SRV{NumElements: 1, Flags: d3d.BUFFER_SRV_FLAG_RAW})
	case dim1D:
		desc.SetTexture1D(d3d.TEX1D_SRV{MipLevels: 1})
	case dim3D:
		desc.SetTexture3D(d3d.TEX3D_SRV{MipLevels: 1})
	case dimCube:
		desc.SetTextureCube(d3d.TEXCUBE_SRV{MipLevels: 1})
	case dim1DArray:
		desc.SetTexture1DArray(d3d.TEX1D_ARRAY_SRV{MipLevels: 1, ArraySize: 1})
	case dim2DArray:
		desc.SetTexture2DArray(d3d.TEX2D_ARRAY_SRV{MipLevels: 1, ArraySize: 1})
	case dimCubeArray:
		desc.SetTextureCubeArray(d3d.TEXCUBE_ARRAY_SRV{MipLevels: 1, NumCubes: 1})
	case dim2DMS:
		desc.SetTexture2DMS(d3d.TEX2DMS_SRV{})
	case dim2DMSArray:
		desc.SetTexture2DMSArray(d3d.TEX2DMS_ARRAY_SRV{ArraySize: 1})
	default:
		desc.SetTexture2D(d3d.TEX2D_SRV{MipLevels: 1})
	}
	d.dev.CreateShaderResourceView(nil, &desc, d.viewPool.cpu(slot))
	d.nullSRVs[dim] = nullDesc{slot, true}
	return d.viewPool.cpu(slot), nil
}

// nullUAV is the unordered access counterpart of nullSRV.
func (d *Driver) nullUAV(dim uint8) (d3d.CPU_DESCRIPTOR_HANDLE, error) {
	if dim == dimNone || int(dim) >= len(d.nullUAVs) {
		dim = dim2D
	}
	d.nullMu.Lock()
	defer d.nullMu.Unlock()
	if n := &d.nullUAVs[dim]; n.ok {
		return d.viewPool.cpu(n.slot), nil
	}
	slot, err := d.viewPool.alloc()
	if err != nil {
		return d3d.CPU_DESCRIPTOR_HANDLE{}, err
	}
	desc := d3d.UNORDERED_ACCESS_VIEW_DESC{
		Format:        d3d.FORMAT_R8G8B8A8_UNORM,
		ViewDimension: convUAVDim(dim),
	}
	switch desc.ViewDimension {
	case d3d.UAV_DIMENSION_BUFFER:
		desc.Format = d3d.FORMAT_R32_TYPELESS
		desc.SetBuffer(d3d.BUFFER_UAV{NumElements: 1, Flags: d3d.BUFFER_UAV_FLAG_RAW})
	case d3d.UAV_DIMENSION_TEXTURE1D:
		desc.SetTexture1D(d3d.TEX1D_UAV{})
	case d3d.UAV_DIMENSION_TEXTURE1DARRAY:
		desc.SetTexture1DArray(d3d.TEX1D_ARRAY_UAV{ArraySize: 1})
	case d3d.UAV_DIMENSION_TEXTURE2DARRAY:
		desc.SetTexture2DArray(d3d.TEX2D_ARRAY_UAV{ArraySize: 1})
	case d3d.UAV_DIMENSION_TEXTURE3D:
		desc.SetTexture3D(d3d.TEX3D_UAV{WSize: 1})
	default:
		desc.SetTexture2D(d3d.TEX2D_UAV{})
	}
	d.dev.CreateUnorderedAccessView(nil, nil, &desc, d.viewPool.cpu(slot))
	d.nullUAVs[dim] = nullDesc{slot, true}
	return d.viewPool.cpu(slot), nil
}

// defaultSampler returns the linear-wrap sampler used to
// fill unbound slots of the dynamic sampler table.
func (d *Driver) defaultSampler() (d3d.CPU_DESCRIPTOR_HANDLE, error) {
	d.nullMu.Lock()
	defer d.nullMu.Unlock()
	if d.defSplr.ok {
		return d.splrPool.cpu(d.defSplr.slot), nil
	}
	slot, err := d.splrPool.alloc()
	if err != nil {
		return d3d.CPU_DESCRIPTOR_HANDLE{}, err
	}
	desc := d3d.SAMPLER_DESC{
		Filter:        d3d.FILTER_MIN_MAG_MIP_LINEAR,
		AddressU:      d3d.TEXTURE_ADDRESS_MODE_WRAP,
		AddressV:      d3d.TEXTURE_ADDRESS_MODE_WRAP,
		AddressW:      d3d.TEXTURE_ADDRESS_MODE_WRAP,
		MaxAnisotropy: 1,
		MaxLOD:        d3d.FLOAT32_MAX,
	}
	d.dev.CreateSampler(&desc, d.splrPool.cpu(slot))
	d.defSplr = nullDesc{slot, true}
	return d.splrPool.cpu(slot), nil
}

// Driver implements driver.GPU.
func (d *Driver) Driver() driver.Driver { return d }

// Context implements driver.GPU.
func (d *Driver) Context() driver.Context { return d.ctx }

// Flush implements driver.GPU.
func (d *Driver) Flush(wait bool) error { return d.ctx.flush(wait) }

// NewTimerQuery implements driver.GPU.
func (d *Driver) NewTimerQuery() (driver.TimerQuery, error) {
	return &timerQuery{d: d}, nil
}

// NewOcclusionQuery implements driver.GPU.
func (d *Driver) NewOcclusionQuery() (driver.OcclusionQuery, error) {
	return &occlusionQuery{d: d}, nil
}

// Limits implements driver.GPU.
func (d *Driver) Limits() driver.Limits {
	return driver.Limits{
		MaxImage1D:   16384,
		MaxImage2D:   16384,
		MaxImageCube: 16384,
		MaxImage3D:   2048,
		MaxLayers:    2048,

		MaxCB:          maxCB,
		MaxSR:          maxSR,
		MaxUA:          maxUA,
		MaxSampler:     maxSampler,
		StaticSamplers: staticSamplers,
		MaxCBRange:     65536,

		MaxColorTargets: maxColorTargets,
		MaxRTSize:       [2]int{16384, 16384},
		MaxVertexIn:     maxVertexIn,

		MaxDispatch: [3]int{65535, 65535, 65535},
	}
}
