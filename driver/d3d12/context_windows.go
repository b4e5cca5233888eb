// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"math/bits"

	"gviegas/arke/driver"
	"gviegas/arke/internal/d3d"
)

// Shader-visible resource states per pipeline kind.
const (
	shaderReadGraph = d3d.RESOURCE_STATE_PIXEL_SHADER_RESOURCE | d3d.RESOURCE_STATE_NON_PIXEL_SHADER_RESOURCE
	shaderReadComp  = d3d.RESOURCE_STATE_NON_PIXEL_SHADER_RESOURCE
)

// ctxt implements driver.Context.
// It shadows every binding and dirty-tracks them so native
// commands are emitted only when a draw, dispatch, clear or
// copy actually needs them.
type ctxt struct {
	d     *Driver
	alloc *d3d.ID3D12CommandAllocator
	list  *d3d.ID3D12GraphicsCommandList

	// Pending barriers, issued in one native call right
	// before the next draw/dispatch/copy.
	rb  [rbBufferSize]d3d.RESOURCE_BARRIER
	nrb int

	gp      *graphPipeline
	cp      *compPipeline
	gpDirty bool
	cpDirty bool

	rt      [maxColorTargets]*texView
	nrt     int
	ds      *texView
	dsRead  bool
	omDirty bool

	cb       [maxCB]*buffer
	cbDirtyG uint32
	cbDirtyC uint32

	sr       [maxSR]driver.View
	ua       [maxUA]driver.View
	srDirtyG bool
	srDirtyC bool
	uaDirtyG bool
	uaDirtyC bool

	splr       [maxSampler]*sampler
	splrDirtyG bool
	splrDirtyC bool

	vb       [maxVertexIn]*buffer
	vbOff    [maxVertexIn]int64
	vbViews  [maxVertexIn]d3d.VERTEX_BUFFER_VIEW
	vbIn     []driver.VertexIn
	vbMerged []driver.VertexIn
	nvb      int
	vbDirty  bool

	ib      *buffer
	ibOff   int64
	ibFmt   driver.IndexFmt
	ibDirty bool

	topo uint32

	vp         driver.Viewport
	sciss      driver.Scissor
	hasVP      bool
	hasSciss   bool
	vpDirty    bool
	scissDirty bool

	blendColor [4]float32
	stencilRef uint32
	blendDirty bool
	sRefDirty  bool

	// First recording failure; reported at FrameEnd.
	err error
}

func newCtxt(d *Driver) (*ctxt, error) {
	a, err := d.qu.allocs.request(d.dev, d.qu.fen)
	if err != nil {
		return nil, err
	}
	list, err := d.dev.CreateCommandList(d3d.COMMAND_LIST_TYPE_DIRECT, a, nil)
	if err != nil {
		a.Release()
		return nil, err
	}
	// Lists are created open; reset reopens per frame.
	if err := list.Close(); err != nil {
		list.Release()
		a.Release()
		return nil, err
	}
	return &ctxt{d: d, alloc: a, list: list}, nil
}

func (c *ctxt) destroy() {
	if c == nil {
		return
	}
	if c.list != nil {
		c.list.Release()
	}
	if c.alloc != nil {
		c.alloc.Release()
	}
	*c = ctxt{}
}

// fail records the first recording failure.
// The context keeps accepting calls so the caller can finish
// the frame; the error surfaces at FrameEnd.
func (c *ctxt) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// reset prepares the command list for a new frame: fresh
// allocator, default shadow state, root signature on both
// bind points and the two shader-visible heaps.
func (c *ctxt) reset() error {
	a, err := c.d.qu.allocs.request(c.d.dev, c.d.qu.fen)
	if err != nil {
		return err
	}
	if c.alloc != nil {
		c.d.qu.allocs.discard(c.alloc, c.d.qu.fen.signaled())
	}
	c.alloc = a
	if err := c.list.Reset(a, nil); err != nil {
		return err
	}
	c.clearShadow()
	c.bindFixed()
	return nil
}

func (c *ctxt) bindFixed() {
	c.list.SetGraphicsRootSignature(c.d.rootSig)
	c.list.SetComputeRootSignature(c.d.rootSig)
	c.list.SetDescriptorHeaps([]*d3d.ID3D12DescriptorHeap{c.d.csuRing.heap, c.d.smpRing.heap})
}

func (c *ctxt) clearShadow() {
	c.nrb = 0
	c.gp = nil
	c.cp = nil
	c.gpDirty = false
	c.cpDirty = false
	c.rt = [maxColorTargets]*texView{}
	c.nrt = 0
	c.ds = nil
	c.dsRead = false
	c.omDirty = false
	c.cb = [maxCB]*buffer{}
	c.cbDirtyG = 0
	c.cbDirtyC = 0
	c.sr = [maxSR]driver.View{}
	c.ua = [maxUA]driver.View{}
	c.srDirtyG = false
	c.srDirtyC = false
	c.uaDirtyG = false
	c.uaDirtyC = false
	c.splr = [maxSampler]*sampler{}
	c.splrDirtyG = false
	c.splrDirtyC = false
	c.vb = [maxVertexIn]*buffer{}
	c.vbIn = nil
	c.vbMerged = nil
	c.nvb = 0
	c.vbDirty = false
	c.ib = nil
	c.ibDirty = false
	c.topo = 0
	c.hasVP = false
	c.hasSciss = false
	c.vpDirty = false
	c.scissDirty = false
	c.blendColor = [4]float32{}
	c.stencilRef = 0
	c.blendDirty = false
	c.sRefDirty = false
}

// redirty marks every shadow binding dirty so the next
// draw/dispatch restores the native state lost to a
// mid-frame list reset.
func (c *ctxt) redirty() {
	c.gpDirty = c.gp != nil
	c.cpDirty = c.cp != nil
	c.omDirty = c.nrt > 0 || c.ds != nil
	for i := range c.cb {
		if c.cb[i] != nil {
			c.cbDirtyG |= 1 << i
			c.cbDirtyC |= 1 << i
		}
	}
	c.srDirtyG = true
	c.srDirtyC = true
	c.uaDirtyG = true
	c.uaDirtyC = true
	c.splrDirtyG = true
	c.splrDirtyC = true
	c.vbDirty = c.nvb > 0
	c.ibDirty = c.ib != nil
	c.topo = 0
	c.vpDirty = c.hasVP
	c.scissDirty = c.hasSciss
	c.blendDirty = true
	c.sRefDirty = true
}

// addBarrier stages a barrier, flushing first when the
// staging array is full.
func (c *ctxt) addBarrier(b d3d.RESOURCE_BARRIER) {
	if c.nrb == rbBufferSize {
		c.flushRBs()
	}
	c.rb[c.nrb] = b
	c.nrb++
}

// flushRBs issues every staged barrier in one native call.
func (c *ctxt) flushRBs() {
	if c.nrb == 0 {
		return
	}
	c.list.ResourceBarrier(c.rb[:c.nrb])
	c.nrb = 0
}

// transition stages the barriers needed to move a resource,
// or one subresource of it when sub is non-negative, into
// the after state, and updates the tracker.
func (c *ctxt) transition(res *d3d.ID3D12Resource, s *resState, after d3d.RESOURCE_STATES, sub int) {
	if sub < 0 || s.nsub == 1 {
		if s.per == nil {
			before := s.all
			if !transitionNeeded(before, after) {
				return
			}
			tgt := transitionTarget(before, after)
			c.addBarrier(d3d.TransitionBarrier(res.Ptr(), d3d.RESOURCE_BARRIER_ALL_SUBRESOURCES, before, tgt))
			s.setAll(tgt)
			return
		}
		for i := range s.per {
			before := s.per[i]
			if !transitionNeeded(before, after) {
				continue
			}
			tgt := transitionTarget(before, after)
			c.addBarrier(d3d.TransitionBarrier(res.Ptr(), uint32(i), before, tgt))
			s.per[i] = tgt
		}
		s.collapse()
		return
	}
	before := s.subState(sub)
	if !transitionNeeded(before, after) {
		return
	}
	tgt := transitionTarget(before, after)
	c.addBarrier(d3d.TransitionBarrier(res.Ptr(), uint32(sub), before, tgt))
	s.setSub(sub, tgt)
	s.collapse()
}

// setBufState transitions a buffer.
// Host-visible buffers live on the upload heap and must stay
// in the generic read state.
func (c *ctxt) setBufState(b *buffer, after d3d.RESOURCE_STATES) {
	if b.visible {
		return
	}
	c.transition(b.res, &b.state, after, -1)
}

// setViewState transitions the subresources a texture view
// covers.
func (c *ctxt) setViewState(v *texView, after d3d.RESOURCE_STATES) {
	t := v.t
	res := t.resource()
	if t.size.Depth >= 1 {
		if v.level == 0 && v.levels == t.levels {
			c.transition(res, &t.state, after, -1)
			return
		}
		for l := v.level; l < v.level+v.levels; l++ {
			c.transition(res, &t.state, after, l)
		}
		return
	}
	if v.layer == 0 && v.layers == t.layers && v.level == 0 && v.levels == t.levels {
		c.transition(res, &t.state, after, -1)
		return
	}
	for a := v.layer; a < v.layer+v.layers; a++ {
		for l := v.level; l < v.level+v.levels; l++ {
			c.transition(res, &t.state, after, t.subIndex(a, l))
		}
	}
}

// srvHandle returns a view's SRV descriptor handle.
func srvHandle(v driver.View) (d3d.CPU_DESCRIPTOR_HANDLE, bool) {
	switch v := v.(type) {
	case *texView:
		if v.hasSRV {
			return v.t.d.viewPool.cpu(v.srv), true
		}
	case *bufView:
		if v.hasSRV {
			return v.b.d.viewPool.cpu(v.srv), true
		}
	}
	return d3d.CPU_DESCRIPTOR_HANDLE{}, false
}

// uavHandle returns a view's UAV descriptor handle.
func uavHandle(v driver.View) (d3d.CPU_DESCRIPTOR_HANDLE, bool) {
	switch v := v.(type) {
	case *texView:
		if v.hasUAV {
			return v.t.d.viewPool.cpu(v.uav), true
		}
	case *bufView:
		if v.hasUAV {
			return v.b.d.viewPool.cpu(v.uav), true
		}
	}
	return d3d.CPU_DESCRIPTOR_HANDLE{}, false
}

// boundAsRT returns whether a texture is bound as one of the
// current color targets.
func (c *ctxt) boundAsRT(t *texture) bool {
	for i := 0; i < c.nrt; i++ {
		if c.rt[i].t == t {
			return true
		}
	}
	return false
}

// promoteShaderReads transitions every bound shader resource
// into a readable state. Resources also bound for output
// this draw are skipped here; the output bind decides their
// state.
func (c *ctxt) promoteShaderReads(read d3d.RESOURCE_STATES, graphics bool) {
	for i := range c.sr {
		switch v := c.sr[i].(type) {
		case *bufView:
			c.setBufState(v.b, read)
		case *texView:
			if graphics && (c.boundAsRT(v.t) || c.ds != nil && c.ds.t == v.t) {
				continue
			}
			after := read
			if aspectDepth(v.t.pf) || aspectStencil(v.t.pf) {
				after |= d3d.RESOURCE_STATE_DEPTH_READ
			}
			c.setViewState(v, after)
		}
	}
}

// promoteShaderWrites transitions every bound unordered
// access view to the unordered access state.
func (c *ctxt) promoteShaderWrites() {
	for i := range c.ua {
		switch v := c.ua[i].(type) {
		case *bufView:
			c.setBufState(v.b, d3d.RESOURCE_STATE_UNORDERED_ACCESS)
			if v.b.counter != nil {
				c.transition(v.b.counter, &v.b.counterState, d3d.RESOURCE_STATE_UNORDERED_ACCESS, -1)
			}
		case *texView:
			c.setViewState(v, d3d.RESOURCE_STATE_UNORDERED_ACCESS)
		}
	}
}

// stageSRVs copies the SRV descriptors the shaders expect
// into the ring heap and binds the resulting table.
// Empty slots whose dimension the shaders declare get the
// typed null descriptor.
func (c *ctxt) stageSRVs(refl *shaderRefl, compute bool) error {
	used := refl.srMask
	if used == 0 {
		return nil
	}
	n := bits.Len32(used)
	cpu, gpu := c.d.csuRing.alloc(n)
	for i := 0; i < n; i++ {
		if used&(1<<i) == 0 {
			continue
		}
		src, ok := srvHandle(c.sr[i])
		if !ok {
			var err error
			if src, err = c.d.nullSRV(refl.srDim[i]); err != nil {
				return err
			}
		}
		c.d.dev.CopyDescriptorsSimple(1, cpu.Offset(i, c.d.csuRing.incr), src, c.d.csuRing.typ)
	}
	if compute {
		c.list.SetComputeRootDescriptorTable(rootParamSRV, gpu)
	} else {
		c.list.SetGraphicsRootDescriptorTable(rootParamSRV, gpu)
	}
	return nil
}

// stageUAVs is the unordered access analogue of stageSRVs.
func (c *ctxt) stageUAVs(refl *shaderRefl, compute bool) error {
	used := refl.uaMask
	if used == 0 {
		return nil
	}
	n := bits.Len32(used)
	cpu, gpu := c.d.csuRing.alloc(n)
	for i := 0; i < n; i++ {
		if used&(1<<i) == 0 {
			continue
		}
		src, ok := uavHandle(c.ua[i])
		if !ok {
			var err error
			if src, err = c.d.nullUAV(refl.uaDim[i]); err != nil {
				return err
			}
		}
		c.d.dev.CopyDescriptorsSimple(1, cpu.Offset(i, c.d.csuRing.incr), src, c.d.csuRing.typ)
	}
	if compute {
		c.list.SetComputeRootDescriptorTable(rootParamUAV, gpu)
	} else {
		c.list.SetGraphicsRootDescriptorTable(rootParamUAV, gpu)
	}
	return nil
}

// stageSamplers copies the full dynamic sampler table into
// the sampler ring. Unbound slots get the default sampler
// so the whole table stays valid.
func (c *ctxt) stageSamplers(compute bool) error {
	def, err := c.d.defaultSampler()
	if err != nil {
		return err
	}
	cpu, gpu := c.d.smpRing.alloc(maxSampler)
	for i := 0; i < maxSampler; i++ {
		src := def
		if s := c.splr[i]; s != nil {
			src = c.d.splrPool.cpu(s.slot)
		}
		c.d.dev.CopyDescriptorsSimple(1, cpu.Offset(i, c.d.smpRing.incr), src, c.d.smpRing.typ)
	}
	if compute {
		c.list.SetComputeRootDescriptorTable(rootParamSampler, gpu)
	} else {
		c.list.SetGraphicsRootDescriptorTable(rootParamSampler, gpu)
	}
	return nil
}

// flushCBs sets one root CBV per dirty constant buffer slot.
// Buffers updated through UpdateCB this frame bind their
// staged upload address instead of their own storage.
func (c *ctxt) flushCBs(compute bool) {
	dirty := &c.cbDirtyG
	if compute {
		dirty = &c.cbDirtyC
	}
	for i := 0; *dirty != 0; i++ {
		if *dirty&(1<<i) == 0 {
			continue
		}
		*dirty &^= 1 << i
		b := c.cb[i]
		if b == nil {
			continue
		}
		addr := b.addr
		if b.stagedFrame == c.d.frame {
			addr = b.stagedAddr
		}
		if compute {
			c.list.SetComputeRootConstantBufferView(uint32(rootParamCB+i), addr)
		} else {
			c.list.SetGraphicsRootConstantBufferView(uint32(rootParamCB+i), addr)
		}
	}
}

// targetExtent returns the extent of the current render
// targets at their view level.
func (c *ctxt) targetExtent() (w, h int, ok bool) {
	v := c.ds
	if c.nrt > 0 {
		v = c.rt[0]
	}
	if v == nil {
		return 0, 0, false
	}
	w = max(1, v.t.size.Width>>v.level)
	h = max(1, v.t.size.Height>>v.level)
	return w, h, true
}

// flushDynamic sets viewport, scissor, blend color and
// stencil reference when dirty.
func (c *ctxt) flushDynamic() {
	if c.vpDirty {
		c.list.RSSetViewports([]d3d.VIEWPORT{{
			TopLeftX: c.vp.X,
			TopLeftY: c.vp.Y,
			Width:    c.vp.Width,
			Height:   c.vp.Height,
			MinDepth: c.vp.Znear,
			MaxDepth: c.vp.Zfar,
		}})
		c.vpDirty = false
	}
	if c.scissDirty {
		c.list.RSSetScissorRects([]d3d.RECT{{
			Left:   int32(c.sciss.X),
			Top:    int32(c.sciss.Y),
			Right:  int32(c.sciss.X + c.sciss.Width),
			Bottom: int32(c.sciss.Y + c.sciss.Height),
		}})
		c.scissDirty = false
	}
	if c.blendDirty {
		c.list.OMSetBlendFactor(&c.blendColor)
		c.blendDirty = false
	}
	if c.sRefDirty {
		c.list.OMSetStencilRef(c.stencilRef)
		c.sRefDirty = false
	}
}

// onDraw flushes every piece of deferred state a draw call
// depends on, in an order that keeps barrier emission and
// descriptor staging coherent.
func (c *ctxt) onDraw(indexed bool) error {
	gp := c.gp
	if gp == nil {
		return errInvalidParam
	}
	if indexed && c.ib == nil {
		return errInvalidParam
	}

	// Input and constant data.
	for i := 0; i < c.nvb; i++ {
		c.setBufState(c.vb[i], d3d.RESOURCE_STATE_VERTEX_AND_CONSTANT_BUFFER)
	}
	if c.ib != nil {
		c.setBufState(c.ib, d3d.RESOURCE_STATE_INDEX_BUFFER)
	}
	for i := range c.cb {
		if c.cb[i] != nil {
			c.setBufState(c.cb[i], d3d.RESOURCE_STATE_VERTEX_AND_CONSTANT_BUFFER)
		}
	}

	// Shader reads and writes.
	c.promoteShaderReads(shaderReadGraph, true)
	c.promoteShaderWrites()

	// Output merger.
	for i := 0; i < c.nrt; i++ {
		c.setViewState(c.rt[i], d3d.RESOURCE_STATE_RENDER_TARGET)
	}
	if c.ds != nil {
		dsRead := false
		for i := range c.sr {
			if tv, ok := c.sr[i].(*texView); ok && tv.t == c.ds.t {
				dsRead = true
				break
			}
		}
		if dsRead != c.dsRead {
			c.dsRead = dsRead
			c.omDirty = true
		}
		after := d3d.RESOURCE_STATE_DEPTH_WRITE
		if dsRead {
			after = d3d.RESOURCE_STATE_DEPTH_READ | shaderReadGraph
		}
		c.setViewState(c.ds, after)
	}

	gpDirty := c.gpDirty

	// Descriptor tables.
	if c.srDirtyG || gpDirty {
		if err := c.stageSRVs(&gp.refl, false); err != nil {
			return err
		}
		c.srDirtyG = false
	}
	if c.omDirty {
		var rtvs [maxColorTargets]d3d.CPU_DESCRIPTOR_HANDLE
		for i := 0; i < c.nrt; i++ {
			rtvs[i] = c.d.rtvPool.cpu(c.rt[i].rtv)
		}
		var dsv *d3d.CPU_DESCRIPTOR_HANDLE
		if c.ds != nil {
			slot := c.ds.dsv
			if c.dsRead {
				slot = c.ds.dsvRO
			}
			h := c.d.dsvPool.cpu(slot)
			dsv = &h
		}
		c.list.OMSetRenderTargets(rtvs[:c.nrt], dsv)
		c.omDirty = false
	}
	if c.uaDirtyG || gpDirty {
		if err := c.stageUAVs(&gp.refl, false); err != nil {
			return err
		}
		c.uaDirtyG = false
	}

	c.flushRBs()

	// Pipeline and input assembly.
	if gpDirty || c.vbDirty {
		c.vbMerged = mergeVertexIn(c.vbIn, gp.input)
	}
	if gpDirty {
		var key psoKey
		key.rtCount = uint8(c.nrt)
		samples := 1
		for i := 0; i < c.nrt; i++ {
			key.rt[i] = convPixelFmt(c.rt[i].t.pf)
			samples = c.rt[i].t.samples
		}
		if c.ds != nil {
			key.depth = convPixelFmt(c.ds.t.pf)
			samples = c.ds.t.samples
		}
		key.msaa = uint8(samples)
		key.layout = layoutID(c.vbMerged)
		ps, err := gp.pso(key, c.vbMerged)
		if err != nil {
			return err
		}
		c.list.SetPipelineState(ps)
		if gp.topo != c.topo {
			c.list.IASetPrimitiveTopology(gp.topo)
			c.topo = gp.topo
		}
		c.gpDirty = false
	}
	if c.vbDirty || gpDirty && c.nvb > 0 {
		for i := 0; i < c.nvb; i++ {
			b := c.vb[i]
			off := c.vbOff[i]
			var stride int
			if i < len(c.vbMerged) {
				stride = c.vbMerged[i].Stride
			}
			c.vbViews[i] = d3d.VERTEX_BUFFER_VIEW{
				BufferLocation: b.addr + uint64(off),
				SizeInBytes:    uint32(b.cap - off),
				StrideInBytes:  uint32(stride),
			}
		}
		c.list.IASetVertexBuffers(0, c.vbViews[:c.nvb])
		c.vbDirty = false
	}
	if c.ibDirty {
		c.list.IASetIndexBuffer(&d3d.INDEX_BUFFER_VIEW{
			BufferLocation: c.ib.addr + uint64(c.ibOff),
			SizeInBytes:    uint32(c.ib.cap - c.ibOff),
			Format:         convIndexFmt(c.ibFmt),
		})
		c.ibDirty = false
	}

	c.flushCBs(false)
	if c.splrDirtyG {
		if err := c.stageSamplers(false); err != nil {
			return err
		}
		c.splrDirtyG = false
	}
	c.flushDynamic()
	return nil
}

// onDispatch is the compute analogue of onDraw.
func (c *ctxt) onDispatch() error {
	cp := c.cp
	if cp == nil {
		return errInvalidParam
	}
	for i := range c.cb {
		if c.cb[i] != nil {
			c.setBufState(c.cb[i], d3d.RESOURCE_STATE_VERTEX_AND_CONSTANT_BUFFER)
		}
	}
	c.promoteShaderReads(shaderReadComp, false)
	c.promoteShaderWrites()

	cpDirty := c.cpDirty
	if c.srDirtyC || cpDirty {
		if err := c.stageSRVs(&cp.refl, true); err != nil {
			return err
		}
		c.srDirtyC = false
	}
	if c.uaDirtyC || cpDirty {
		if err := c.stageUAVs(&cp.refl, true); err != nil {
			return err
		}
		c.uaDirtyC = false
	}

	c.flushRBs()

	if cpDirty {
		ps, err := cp.pso()
		if err != nil {
			return err
		}
		c.list.SetPipelineState(ps)
		c.cpDirty = false
	}
	c.flushCBs(true)
	if c.splrDirtyC {
		if err := c.stageSamplers(true); err != nil {
			return err
		}
		c.splrDirtyC = false
	}
	return nil
}

// FrameBegin implements driver.Context.
// It blocks until the commands submitted two frames back
// complete, so upload pages, ring descriptors and command
// allocators from that frame can be recycled.
func (c *ctxt) FrameBegin() error {
	if err := c.d.qu.waitForFence(c.d.frameFence[1]); err != nil {
		return err
	}
	c.d.frame++
	c.d.upload.beginGeneration(c.d.frame)
	c.d.flushReleases(false)
	return c.reset()
}

// FrameEnd implements driver.Context.
func (c *ctxt) FrameEnd() error {
	if err := c.err; err != nil {
		c.err = nil
		return err
	}
	// Back buffers drawn this frame go back to the present
	// state before submission.
	for _, s := range c.d.scs {
		s.presentPrep(c)
	}
	c.d.tsHeap.resolve(c.list)
	c.d.occHeap.resolve(c.list)
	c.flushRBs()
	v, err := c.d.qu.execute(c.list)
	if err != nil {
		return err
	}
	c.d.qu.allocs.discard(c.alloc, v)
	c.alloc = nil
	c.d.tsHeap.sync(v)
	c.d.occHeap.sync(v)
	c.d.frameFence[1] = c.d.frameFence[0]
	c.d.frameFence[0] = v
	return nil
}

// flush submits the commands recorded so far and reopens the
// list, keeping the shadow state so recording can continue
// mid-frame.
func (c *ctxt) flush(wait bool) error {
	c.d.tsHeap.resolve(c.list)
	c.d.occHeap.resolve(c.list)
	c.flushRBs()
	v, err := c.d.qu.execute(c.list)
	if err != nil {
		return err
	}
	c.d.qu.allocs.discard(c.alloc, v)
	c.alloc = nil
	c.d.tsHeap.sync(v)
	c.d.occHeap.sync(v)
	if wait {
		if err := c.d.qu.waitForFence(v); err != nil {
			return err
		}
	}
	a, err := c.d.qu.allocs.request(c.d.dev, c.d.qu.fen)
	if err != nil {
		return err
	}
	c.alloc = a
	if err := c.list.Reset(a, nil); err != nil {
		return err
	}
	c.bindFixed()
	c.redirty()
	return nil
}

// SetRenderTarget implements driver.Context.
func (c *ctxt) SetRenderTarget(ds driver.TexView, color ...driver.TexView) {
	c.nrt = 0
	for _, v := range color {
		tv, ok := v.(*texView)
		if !ok || !tv.hasRTV || c.nrt == maxColorTargets {
			c.fail(errInvalidParam)
			return
		}
		c.rt[c.nrt] = tv
		c.nrt++
	}
	c.ds = nil
	if ds != nil {
		tv, ok := ds.(*texView)
		if !ok || !tv.hasDSV {
			c.fail(errInvalidParam)
			return
		}
		c.ds = tv
	}
	c.omDirty = true
	c.gpDirty = c.gp != nil
	if !c.hasVP {
		if w, h, ok := c.targetExtent(); ok {
			c.vp = driver.Viewport{Width: float32(w), Height: float32(h), Zfar: 1}
			c.vpDirty = true
		}
	}
	if !c.hasSciss {
		if w, h, ok := c.targetExtent(); ok {
			c.sciss = driver.Scissor{Width: w, Height: h}
			c.scissDirty = true
		}
	}
}

// ResetRenderTarget implements driver.Context.
func (c *ctxt) ResetRenderTarget() {
	c.nrt = 0
	c.rt = [maxColorTargets]*texView{}
	c.ds = nil
	c.omDirty = true
	c.gpDirty = c.gp != nil
}

// BindCB implements driver.Context.
func (c *ctxt) BindCB(slot int, buf driver.Buffer) {
	if slot < 0 || slot >= maxCB {
		c.fail(errInvalidParam)
		return
	}
	var b *buffer
	if buf != nil {
		var ok bool
		if b, ok = buf.(*buffer); !ok {
			c.fail(errInvalidParam)
			return
		}
	}
	c.cb[slot] = b
	c.cbDirtyG |= 1 << slot
	c.cbDirtyC |= 1 << slot
}

// UpdateCB implements driver.Context.
// The data is written to per-frame upload memory and the
// resulting address shadows the buffer's own storage for
// the rest of the frame.
func (c *ctxt) UpdateCB(buf driver.Buffer, data []byte) error {
	b, ok := buf.(*buffer)
	if !ok || int64(len(data)) > b.cap {
		return errInvalidParam
	}
	a, err := c.d.upload.alloc(int64(len(data)), d3d.CONSTANT_BUFFER_DATA_PLACEMENT_ALIGNMENT)
	if err != nil {
		return err
	}
	copy(a.bytes(int64(len(data))), data)
	b.stagedAddr = a.addr
	b.stagedFrame = c.d.frame
	for i := range c.cb {
		if c.cb[i] == b {
			c.cbDirtyG |= 1 << i
			c.cbDirtyC |= 1 << i
		}
	}
	return nil
}

// BindSR implements driver.Context.
func (c *ctxt) BindSR(slot int, v driver.View) {
	if slot < 0 || slot >= maxSR {
		c.fail(errInvalidParam)
		return
	}
	c.sr[slot] = v
	c.srDirtyG = true
	c.srDirtyC = true
}

// BindUA implements driver.Context.
func (c *ctxt) BindUA(slot int, v driver.View) {
	if slot < 0 || slot >= maxUA {
		c.fail(errInvalidParam)
		return
	}
	c.ua[slot] = v
	c.uaDirtyG = true
	c.uaDirtyC = true
}

// BindSampler implements driver.Context.
func (c *ctxt) BindSampler(slot int, splr driver.Sampler) {
	if slot < staticSamplers || slot >= maxSampler {
		c.fail(errInvalidParam)
		return
	}
	var s *sampler
	if splr != nil {
		var ok bool
		if s, ok = splr.(*sampler); !ok {
			c.fail(errInvalidParam)
			return
		}
	}
	c.splr[slot] = s
	c.splrDirtyG = true
	c.splrDirtyC = true
}

// BindVB implements driver.Context.
func (c *ctxt) BindVB(buf []driver.Buffer, off []int64, layout []driver.VertexIn) {
	if len(buf) > maxVertexIn || len(off) != len(buf) {
		c.fail(errInvalidParam)
		return
	}
	for i := range buf {
		b, ok := buf[i].(*buffer)
		if !ok {
			c.fail(errInvalidParam)
			return
		}
		c.vb[i] = b
		c.vbOff[i] = off[i]
	}
	c.nvb = len(buf)
	c.vbIn = layout
	c.vbDirty = true
	if layout != nil {
		// The merged layout is part of the pipeline key.
		c.gpDirty = c.gp != nil
	}
}

// BindIB implements driver.Context.
func (c *ctxt) BindIB(format driver.IndexFmt, buf driver.Buffer, off int64) {
	b, ok := buf.(*buffer)
	if !ok || off%4 != 0 {
		c.fail(errInvalidParam)
		return
	}
	c.ib = b
	c.ibOff = off
	c.ibFmt = format
	c.ibDirty = true
}

// SetState implements driver.Context.
func (c *ctxt) SetState(pl driver.Pipeline) {
	switch p := pl.(type) {
	case *graphPipeline:
		if c.gp != p {
			c.gp = p
			c.gpDirty = true
		}
	case *compPipeline:
		if c.cp != p {
			c.cp = p
			c.cpDirty = true
		}
	default:
		c.fail(errInvalidParam)
	}
}

// ClearState implements driver.Context.
func (c *ctxt) ClearState() { c.clearShadow() }

// SetViewport implements driver.Context.
func (c *ctxt) SetViewport(vp driver.Viewport) {
	c.vp = vp
	c.hasVP = true
	c.vpDirty = true
}

// SetScissor implements driver.Context.
func (c *ctxt) SetScissor(sciss driver.Scissor) {
	c.sciss = sciss
	c.hasSciss = true
	c.scissDirty = true
}

// SetBlendColor implements driver.Context.
func (c *ctxt) SetBlendColor(r, g, b, a float32) {
	c.blendColor = [4]float32{r, g, b, a}
	c.blendDirty = true
}

// SetStencilRef implements driver.Context.
func (c *ctxt) SetStencilRef(value uint32) {
	c.stencilRef = value
	c.sRefDirty = true
}

// Draw implements driver.Context.
func (c *ctxt) Draw(vertCount, instCount, baseVert, baseInst int) {
	if c.err != nil {
		return
	}
	if err := c.onDraw(false); err != nil {
		c.fail(err)
		return
	}
	c.list.DrawInstanced(uint32(vertCount), uint32(instCount), uint32(baseVert), uint32(baseInst))
}

// DrawIndexed implements driver.Context.
func (c *ctxt) DrawIndexed(idxCount, instCount, baseIdx, vertOff, baseInst int) {
	if c.err != nil {
		return
	}
	if err := c.onDraw(true); err != nil {
		c.fail(err)
		return
	}
	c.list.DrawIndexedInstanced(uint32(idxCount), uint32(instCount), uint32(baseIdx), int32(vertOff), uint32(baseInst))
}

// indirectArgs validates and transitions an indirect
// argument buffer.
func (c *ctxt) indirectArgs(buf driver.Buffer, off int64) (*buffer, error) {
	b, ok := buf.(*buffer)
	if !ok || off%4 != 0 || b.usg&driver.UIndirect == 0 {
		return nil, errInvalidParam
	}
	c.setBufState(b, d3d.RESOURCE_STATE_INDIRECT_ARGUMENT)
	return b, nil
}

// DrawIndirect implements driver.Context.
func (c *ctxt) DrawIndirect(buf driver.Buffer, off int64, count int) {
	if c.err != nil {
		return
	}
	b, err := c.indirectArgs(buf, off)
	if err != nil {
		c.fail(err)
		return
	}
	if err := c.onDraw(false); err != nil {
		c.fail(err)
		return
	}
	c.list.ExecuteIndirect(c.d.sigDraw, uint32(count), b.res, uint64(off), nil, 0)
}

// DrawIndexedIndirect implements driver.Context.
func (c *ctxt) DrawIndexedIndirect(buf driver.Buffer, off int64, count int) {
	if c.err != nil {
		return
	}
	b, err := c.indirectArgs(buf, off)
	if err != nil {
		c.fail(err)
		return
	}
	if err := c.onDraw(true); err != nil {
		c.fail(err)
		return
	}
	c.list.ExecuteIndirect(c.d.sigDrawIndexed, uint32(count), b.res, uint64(off), nil, 0)
}

// Dispatch implements driver.Context.
// A UAV barrier is staged after the dispatch so back-to-back
// dispatches sharing unordered access views serialize.
func (c *ctxt) Dispatch(grpCountX, grpCountY, grpCountZ int) {
	if c.err != nil {
		return
	}
	if err := c.onDispatch(); err != nil {
		c.fail(err)
		return
	}
	c.list.Dispatch(uint32(grpCountX), uint32(grpCountY), uint32(grpCountZ))
	c.addBarrier(d3d.UAVBarrier(0))
}

// DispatchIndirect implements driver.Context.
func (c *ctxt) DispatchIndirect(buf driver.Buffer, off int64) {
	if c.err != nil {
		return
	}
	b, err := c.indirectArgs(buf, off)
	if err != nil {
		c.fail(err)
		return
	}
	if err := c.onDispatch(); err != nil {
		c.fail(err)
		return
	}
	c.list.ExecuteIndirect(c.d.sigDispatch, 1, b.res, uint64(off), nil, 0)
	c.addBarrier(d3d.UAVBarrier(0))
}

// BeginTimer implements driver.Context.
func (c *ctxt) BeginTimer(q driver.TimerQuery) {
	tq, ok := q.(*timerQuery)
	if !ok {
		c.fail(errInvalidParam)
		return
	}
	if err := tq.begin(c.list); err != nil {
		c.fail(err)
	}
}

// EndTimer implements driver.Context.
func (c *ctxt) EndTimer(q driver.TimerQuery) {
	tq, ok := q.(*timerQuery)
	if !ok || !tq.active {
		c.fail(errInvalidParam)
		return
	}
	tq.end(c.list)
}

// BeginOcclusion implements driver.Context.
func (c *ctxt) BeginOcclusion(q driver.OcclusionQuery) {
	oq, ok := q.(*occlusionQuery)
	if !ok {
		c.fail(errInvalidParam)
		return
	}
	if err := oq.begin(c.list); err != nil {
		c.fail(err)
	}
}

// EndOcclusion implements driver.Context.
func (c *ctxt) EndOcclusion(q driver.OcclusionQuery) {
	oq, ok := q.(*occlusionQuery)
	if !ok || !oq.active {
		c.fail(errInvalidParam)
		return
	}
	oq.end(c.list)
}
