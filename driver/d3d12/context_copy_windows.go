// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"unsafe"

	"gviegas/arke/driver"
	"gviegas/arke/internal/d3d"
)

// Clear implements driver.Context.
func (c *ctxt) Clear(rt driver.TexView, color [4]float32) {
	if c.err != nil {
		return
	}
	v, ok := rt.(*texView)
	if !ok || !v.hasRTV {
		c.fail(errInvalidParam)
		return
	}
	c.setViewState(v, d3d.RESOURCE_STATE_RENDER_TARGET)
	c.flushRBs()
	c.list.ClearRenderTargetView(c.d.rtvPool.cpu(v.rtv), &color)
}

// ClearDepth implements driver.Context.
func (c *ctxt) ClearDepth(ds driver.TexView, depth float32, stencil uint32) {
	if c.err != nil {
		return
	}
	v, ok := ds.(*texView)
	if !ok || !v.hasDSV {
		c.fail(errInvalidParam)
		return
	}
	c.setViewState(v, d3d.RESOURCE_STATE_DEPTH_WRITE)
	c.flushRBs()
	flags := uint32(0)
	if aspectDepth(v.t.pf) {
		flags |= d3d.CLEAR_FLAG_DEPTH
	}
	if aspectStencil(v.t.pf) {
		flags |= d3d.CLEAR_FLAG_STENCIL
	}
	c.list.ClearDepthStencilView(c.d.dsvPool.cpu(v.dsv), flags, depth, uint8(stencil))
}

// ClearUint implements driver.Context.
// The clear call needs the descriptor both in a shader
// visible heap and in a CPU one, so the pool descriptor is
// staged into the ring first.
func (c *ctxt) ClearUint(ua driver.View, value [4]uint32) {
	if c.err != nil {
		return
	}
	cpu, ok := uavHandle(ua)
	if !ok {
		c.fail(errInvalidParam)
		return
	}
	var res *d3d.ID3D12Resource
	switch v := ua.(type) {
	case *texView:
		c.setViewState(v, d3d.RESOURCE_STATE_UNORDERED_ACCESS)
		res = v.t.resource()
	case *bufView:
		c.setBufState(v.b, d3d.RESOURCE_STATE_UNORDERED_ACCESS)
		res = v.b.res
	}
	c.flushRBs()
	gpu := c.d.csuRing.stage(1, cpu)
	c.list.ClearUnorderedAccessViewUint(gpu, cpu, res, &value)
}

// UpdateBuffer implements driver.Context.
func (c *ctxt) UpdateBuffer(buf driver.Buffer, off int64, data []byte) error {
	b, ok := buf.(*buffer)
	if !ok || off < 0 || off+int64(len(data)) > b.cap {
		return errInvalidParam
	}
	if len(data) == 0 {
		return nil
	}
	if b.visible {
		copy(b.Bytes()[off:], data)
		return nil
	}
	a, err := c.d.upload.alloc(int64(len(data)), 4)
	if err != nil {
		return err
	}
	copy(a.bytes(int64(len(data))), data)
	c.setBufState(b, d3d.RESOURCE_STATE_COPY_DEST)
	c.flushRBs()
	c.list.CopyBufferRegion(b.res, uint64(off), a.res, uint64(a.off), uint64(len(data)))
	return nil
}

// UpdateTexture implements driver.Context.
// Data is copied row by row into upload memory laid out as
// the device expects, then a placed-footprint copy moves it
// into the subresource.
func (c *ctxt) UpdateTexture(tex driver.Texture, layer, level int, data []byte, rowPitch int) error {
	t, ok := tex.(*texture)
	if !ok || layer < 0 || layer >= t.layers || level < 0 || level >= t.levels || rowPitch < 1 {
		return errInvalidParam
	}
	sub := t.subIndex(layer, level)
	if t.size.Depth >= 1 {
		sub = level
	}
	desc := t.resource().GetDesc()
	layouts := make([]d3d.PLACED_SUBRESOURCE_FOOTPRINT, 1)
	numRows := make([]uint32, 1)
	rowSizes := make([]uint64, 1)
	total := c.d.dev.GetCopyableFootprints(&desc, uint32(sub), 1, 0, layouts, numRows, rowSizes)
	rows := int(numRows[0])
	rowSize := int(rowSizes[0])
	depth := int(layouts[0].Footprint.Depth)
	if rowPitch < rowSize || len(data) < rowPitch*rows*depth {
		return errInvalidParam
	}
	a, err := c.d.upload.alloc(int64(total), d3d.TEXTURE_DATA_PLACEMENT_ALIGNMENT)
	if err != nil {
		return err
	}
	dstPitch := int(layouts[0].Footprint.RowPitch)
	dst := a.bytes(int64(total))
	for z := 0; z < depth; z++ {
		for r := 0; r < rows; r++ {
			src := data[(z*rows+r)*rowPitch:]
			copy(dst[(z*rows+r)*dstPitch:], src[:rowSize])
		}
	}
	layouts[0].Offset += uint64(a.off)
	c.transition(t.resource(), &t.state, d3d.RESOURCE_STATE_COPY_DEST, sub)
	c.flushRBs()
	dstLoc := d3d.TEXTURE_COPY_LOCATION_SUBRESOURCE{
		PResource:        t.resource().Ptr(),
		Type:             d3d.TEXTURE_COPY_TYPE_SUBRESOURCE_INDEX,
		SubresourceIndex: uint32(sub),
	}
	srcLoc := d3d.TEXTURE_COPY_LOCATION_FOOTPRINT{
		PResource:       a.res.Ptr(),
		Type:            d3d.TEXTURE_COPY_TYPE_PLACED_FOOTPRINT,
		PlacedFootprint: layouts[0],
	}
	c.list.CopyTextureRegion(unsafe.Pointer(&dstLoc), 0, 0, 0, unsafe.Pointer(&srcLoc), nil)
	return nil
}

// CopyBuffer implements driver.Context.
func (c *ctxt) CopyBuffer(param *driver.BufferCopy) {
	if c.err != nil {
		return
	}
	from, ok1 := param.From.(*buffer)
	to, ok2 := param.To.(*buffer)
	if !ok1 || !ok2 || param.Size < 1 ||
		param.FromOff+param.Size > from.cap || param.ToOff+param.Size > to.cap {
		c.fail(errInvalidParam)
		return
	}
	c.setBufState(from, d3d.RESOURCE_STATE_COPY_SOURCE)
	c.setBufState(to, d3d.RESOURCE_STATE_COPY_DEST)
	c.flushRBs()
	c.list.CopyBufferRegion(to.res, uint64(param.ToOff), from.res, uint64(param.FromOff), uint64(param.Size))
}

// copyBox returns the source box of a texture copy.
func copyBox(off driver.Off3D, size driver.Dim3D) d3d.BOX {
	return d3d.BOX{
		Left:   uint32(off.X),
		Top:    uint32(off.Y),
		Front:  uint32(off.Z),
		Right:  uint32(off.X + size.Width),
		Bottom: uint32(off.Y + max(1, size.Height)),
		Back:   uint32(off.Z + max(1, size.Depth)),
	}
}

// CopyTexture implements driver.Context.
func (c *ctxt) CopyTexture(param *driver.TextureCopy) {
	if c.err != nil {
		return
	}
	from, ok1 := param.From.(*texture)
	to, ok2 := param.To.(*texture)
	if !ok1 || !ok2 {
		c.fail(errInvalidParam)
		return
	}
	layers := max(1, param.Layers)
	box := copyBox(param.FromOff, param.Size)
	for i := 0; i < layers; i++ {
		fromSub := from.subIndex(param.FromLayer+i, param.FromLevel)
		toSub := to.subIndex(param.ToLayer+i, param.ToLevel)
		c.transition(from.resource(), &from.state, d3d.RESOURCE_STATE_COPY_SOURCE, fromSub)
		c.transition(to.resource(), &to.state, d3d.RESOURCE_STATE_COPY_DEST, toSub)
		c.flushRBs()
		dst := d3d.TEXTURE_COPY_LOCATION_SUBRESOURCE{
			PResource:        to.resource().Ptr(),
			Type:             d3d.TEXTURE_COPY_TYPE_SUBRESOURCE_INDEX,
			SubresourceIndex: uint32(toSub),
		}
		src := d3d.TEXTURE_COPY_LOCATION_SUBRESOURCE{
			PResource:        from.resource().Ptr(),
			Type:             d3d.TEXTURE_COPY_TYPE_SUBRESOURCE_INDEX,
			SubresourceIndex: uint32(fromSub),
		}
		c.list.CopyTextureRegion(unsafe.Pointer(&dst),
			uint32(param.ToOff.X), uint32(param.ToOff.Y), uint32(param.ToOff.Z),
			unsafe.Pointer(&src), &box)
	}
}

// bufTexFootprint builds the placed footprint that addresses
// texture data within a buffer.
func bufTexFootprint(param *driver.BufTexCopy, t *texture) d3d.PLACED_SUBRESOURCE_FOOTPRINT {
	return d3d.PLACED_SUBRESOURCE_FOOTPRINT{
		Offset: uint64(param.BufOff),
		Footprint: d3d.SUBRESOURCE_FOOTPRINT{
			Format:   convPixelFmt(t.pf),
			Width:    uint32(max(1, param.Size.Width)),
			Height:   uint32(max(1, param.Size.Height)),
			Depth:    uint32(max(1, param.Size.Depth)),
			RowPitch: uint32(param.RowStride),
		},
	}
}

// CopyBufToTex implements driver.Context.
func (c *ctxt) CopyBufToTex(param *driver.BufTexCopy) {
	if c.err != nil {
		return
	}
	b, ok1 := param.Buf.(*buffer)
	t, ok2 := param.Tex.(*texture)
	if !ok1 || !ok2 ||
		param.BufOff%d3d.TEXTURE_DATA_PLACEMENT_ALIGNMENT != 0 ||
		param.RowStride%d3d.TEXTURE_DATA_PITCH_ALIGNMENT != 0 {
		c.fail(errInvalidParam)
		return
	}
	sub := t.subIndex(param.Layer, param.Level)
	if t.size.Depth >= 1 {
		sub = param.Level
	}
	c.setBufState(b, d3d.RESOURCE_STATE_COPY_SOURCE)
	c.transition(t.resource(), &t.state, d3d.RESOURCE_STATE_COPY_DEST, sub)
	c.flushRBs()
	dst := d3d.TEXTURE_COPY_LOCATION_SUBRESOURCE{
		PResource:        t.resource().Ptr(),
		Type:             d3d.TEXTURE_COPY_TYPE_SUBRESOURCE_INDEX,
		SubresourceIndex: uint32(sub),
	}
	src := d3d.TEXTURE_COPY_LOCATION_FOOTPRINT{
		PResource:       b.res.Ptr(),
		Type:            d3d.TEXTURE_COPY_TYPE_PLACED_FOOTPRINT,
		PlacedFootprint: bufTexFootprint(param, t),
	}
	c.list.CopyTextureRegion(unsafe.Pointer(&dst),
		uint32(param.TexOff.X), uint32(param.TexOff.Y), uint32(param.TexOff.Z),
		unsafe.Pointer(&src), nil)
}

// CopyTexToBuf implements driver.Context.
func (c *ctxt) CopyTexToBuf(param *driver.BufTexCopy) {
	if c.err != nil {
		return
	}
	b, ok1 := param.Buf.(*buffer)
	t, ok2 := param.Tex.(*texture)
	if !ok1 || !ok2 ||
		param.BufOff%d3d.TEXTURE_DATA_PLACEMENT_ALIGNMENT != 0 ||
		param.RowStride%d3d.TEXTURE_DATA_PITCH_ALIGNMENT != 0 {
		c.fail(errInvalidParam)
		return
	}
	sub := t.subIndex(param.Layer, param.Level)
	if t.size.Depth >= 1 {
		sub = param.Level
	}
	c.transition(t.resource(), &t.state, d3d.RESOURCE_STATE_COPY_SOURCE, sub)
	c.setBufState(b, d3d.RESOURCE_STATE_COPY_DEST)
	c.flushRBs()
	box := copyBox(param.TexOff, param.Size)
	dst := d3d.TEXTURE_COPY_LOCATION_FOOTPRINT{
		PResource:       b.res.Ptr(),
		Type:            d3d.TEXTURE_COPY_TYPE_PLACED_FOOTPRINT,
		PlacedFootprint: bufTexFootprint(param, t),
	}
	src := d3d.TEXTURE_COPY_LOCATION_SUBRESOURCE{
		PResource:        t.resource().Ptr(),
		Type:             d3d.TEXTURE_COPY_TYPE_SUBRESOURCE_INDEX,
		SubresourceIndex: uint32(sub),
	}
	c.list.CopyTextureRegion(unsafe.Pointer(&dst), 0, 0, 0, unsafe.Pointer(&src), &box)
}

// CopyResource implements driver.Context.
func (c *ctxt) CopyResource(dst, src driver.Texture) {
	if c.err != nil {
		return
	}
	d, ok1 := dst.(*texture)
	s, ok2 := src.(*texture)
	if !ok1 || !ok2 || d.pf != s.pf || d.size != s.size || d.samples != s.samples {
		c.fail(errInvalidParam)
		return
	}
	c.transition(d.resource(), &d.state, d3d.RESOURCE_STATE_COPY_DEST, -1)
	c.transition(s.resource(), &s.state, d3d.RESOURCE_STATE_COPY_SOURCE, -1)
	c.flushRBs()
	c.list.CopyResource(d.resource(), s.resource())
}

// Resolve implements driver.Context.
func (c *ctxt) Resolve(dst driver.Texture, dstLayer, dstLevel int, src driver.Texture, srcLayer, srcLevel int) {
	if c.err != nil {
		return
	}
	d, ok1 := dst.(*texture)
	s, ok2 := src.(*texture)
	if !ok1 || !ok2 || s.samples < 2 || d.samples != 1 || d.pf != s.pf {
		c.fail(errInvalidParam)
		return
	}
	dstSub := d.subIndex(dstLayer, dstLevel)
	srcSub := s.subIndex(srcLayer, srcLevel)
	c.transition(d.resource(), &d.state, d3d.RESOURCE_STATE_RESOLVE_DEST, dstSub)
	c.transition(s.resource(), &s.state, d3d.RESOURCE_STATE_RESOLVE_SOURCE, srcSub)
	c.flushRBs()
	c.list.ResolveSubresource(d.resource(), uint32(dstSub), s.resource(), uint32(srcSub), convPixelFmt(d.pf))
}

// ResetCounter implements driver.Context.
// The counter is zeroed by copying four zero bytes staged in
// upload memory.
func (c *ctxt) ResetCounter(buf driver.Buffer) {
	if c.err != nil {
		return
	}
	b, ok := buf.(*buffer)
	if !ok || b.counter == nil {
		c.fail(errInvalidParam)
		return
	}
	a, err := c.d.upload.alloc(4, 4)
	if err != nil {
		c.fail(err)
		return
	}
	clear(a.bytes(4))
	c.transition(b.counter, &b.counterState, d3d.RESOURCE_STATE_COPY_DEST, -1)
	c.flushRBs()
	c.list.CopyBufferRegion(b.counter, 0, a.res, uint64(a.off), 4)
}

// CopyCounter implements driver.Context.
func (c *ctxt) CopyCounter(dst driver.Buffer, off int64, src driver.Buffer) {
	if c.err != nil {
		return
	}
	d, ok1 := dst.(*buffer)
	s, ok2 := src.(*buffer)
	if !ok1 || !ok2 || s.counter == nil || off < 0 || off+4 > d.cap {
		c.fail(errInvalidParam)
		return
	}
	c.transition(s.counter, &s.counterState, d3d.RESOURCE_STATE_COPY_SOURCE, -1)
	c.setBufState(d, d3d.RESOURCE_STATE_COPY_DEST)
	c.flushRBs()
	c.list.CopyBufferRegion(d.res, uint64(off), s.counter, 0, 4)
}
