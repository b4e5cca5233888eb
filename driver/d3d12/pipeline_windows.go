// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"runtime"
	"sync"

	"gviegas/arke/driver"
	"gviegas/arke/internal/d3d"
)

// shaderCode implements driver.ShaderCode.
type shaderCode struct {
	refl shaderRefl
	code []byte
}

// NewShaderCode creates a new shader code from a bytecode
// blob prefixed by a reflection header.
func (d *Driver) NewShaderCode(data []byte) (driver.ShaderCode, error) {
	refl, code, err := parseShaderCode(data)
	if err != nil {
		return nil, err
	}
	c := &shaderCode{
		refl: refl,
		code: make([]byte, len(code)),
	}
	copy(c.code, code)
	return c, nil
}

// Destroy implements driver.Destroyer.
func (c *shaderCode) Destroy() {
	if c == nil {
		return
	}
	*c = shaderCode{}
}

// NewPipeline creates a new pipeline.
func (d *Driver) NewPipeline(state any) (driver.Pipeline, error) {
	switch s := state.(type) {
	case *driver.GraphState:
		return d.newGraphPipeline(s)
	case *driver.CompState:
		return d.newCompPipeline(s)
	}
	return nil, errInvalidParam
}

// graphPipeline implements driver.Pipeline for graphics.
// Render target formats are not part of the pipeline state,
// so the native object cannot be built upfront; instead a
// cache maps the formats, sample count and vertex layout
// seen at draw time to pipeline state objects.
type graphPipeline struct {
	d        *Driver
	vs       []byte
	ps       []byte
	refl     shaderRefl
	input    []driver.VertexIn
	topo     uint32
	topoType uint32
	raster   driver.RasterState
	ds       driver.DSState
	blend    driver.BlendState

	mu    sync.Mutex
	cache map[psoKey]*d3d.ID3D12PipelineState
}

func (d *Driver) newGraphPipeline(s *driver.GraphState) (driver.Pipeline, error) {
	vs, ok := s.VertFunc.Code.(*shaderCode)
	if !ok {
		return nil, errInvalidParam
	}
	refl := vs.refl
	p := &graphPipeline{
		d:      d,
		vs:     vs.code,
		input:  append([]driver.VertexIn(nil), s.Input...),
		raster: s.Raster,
		ds:     s.DS,
		cache:  make(map[psoKey]*d3d.ID3D12PipelineState),
	}
	if s.FragFunc.Code != nil {
		ps, ok := s.FragFunc.Code.(*shaderCode)
		if !ok {
			return nil, errInvalidParam
		}
		if err := refl.merge(&ps.refl); err != nil {
			return nil, err
		}
		p.ps = ps.code
	}
	p.refl = refl
	p.topo, p.topoType = convTopology(s.Topology)
	p.blend.IndependentBlend = s.Blend.IndependentBlend
	p.blend.Color = append([]driver.ColorBlend(nil), s.Blend.Color...)
	return p, nil
}

// pso returns the native pipeline state for the given draw
// configuration, building it on a cache miss.
func (p *graphPipeline) pso(key psoKey, ins []driver.VertexIn) (*d3d.ID3D12PipelineState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ps, ok := p.cache[key]; ok {
		return ps, nil
	}
	ps, err := p.build(key, ins)
	if err != nil {
		return nil, err
	}
	p.cache[key] = ps
	return ps, nil
}

func (p *graphPipeline) build(key psoKey, ins []driver.VertexIn) (*d3d.ID3D12PipelineState, error) {
	desc := d3d.GRAPHICS_PIPELINE_STATE_DESC{
		PRootSignature: p.d.rootSig.Ptr(),
		VS: d3d.SHADER_BYTECODE{
			PShaderBytecode: &p.vs[0],
			BytecodeLength:  uintptr(len(p.vs)),
		},
		SampleMask:            0xffffffff,
		IBStripCutValue:       d3d.INDEX_BUFFER_STRIP_CUT_VALUE_DISABLED,
		PrimitiveTopologyType: p.topoType,
		NumRenderTargets:      uint32(key.rtCount),
		RTVFormats:            key.rt,
		DSVFormat:             key.depth,
		SampleDesc:            d3d.SAMPLE_DESC{Count: uint32(key.msaa)},
	}
	if p.ps != nil {
		desc.PS = d3d.SHADER_BYTECODE{
			PShaderBytecode: &p.ps[0],
			BytecodeLength:  uintptr(len(p.ps)),
		}
	}

	// Input layout. Each vertex input fetches from its own
	// buffer binding; the slot is the input's position in
	// the merged layout.
	var elems []d3d.INPUT_ELEMENT_DESC
	var names [][]byte
	for i := range ins {
		format, _ := convVertexFmt(ins[i].Format)
		if format == d3d.FORMAT_UNKNOWN {
			return nil, errInvalidParam
		}
		name := ins[i].Name
		if name == "" {
			name = "ATTR"
		}
		cname := append([]byte(name), 0)
		names = append(names, cname)
		elems = append(elems, d3d.INPUT_ELEMENT_DESC{
			SemanticName:   &cname[0],
			SemanticIndex:  uint32(ins[i].Nr),
			Format:         format,
			InputSlot:      uint32(i),
			InputSlotClass: d3d.INPUT_CLASSIFICATION_PER_VERTEX_DATA,
		})
	}
	if len(elems) > 0 {
		desc.InputLayout = d3d.INPUT_LAYOUT_DESC{
			PInputElementDescs: &elems[0],
			NumElements:        uint32(len(elems)),
		}
	}

	desc.RasterizerState = d3d.RASTERIZER_DESC{
		FillMode:        d3d.FILL_MODE_SOLID,
		CullMode:        d3d.CULL_MODE_NONE,
		DepthClipEnable: 1,
	}
	if p.raster.Fill == driver.FLines {
		desc.RasterizerState.FillMode = d3d.FILL_MODE_WIREFRAME
	}
	switch p.raster.Cull {
	case driver.CFront:
		desc.RasterizerState.CullMode = d3d.CULL_MODE_FRONT
	case driver.CBack:
		desc.RasterizerState.CullMode = d3d.CULL_MODE_BACK
	}
	if !p.raster.Clockwise {
		desc.RasterizerState.FrontCounterClockwise = 1
	}
	if p.raster.DepthBias {
		desc.RasterizerState.DepthBias = int32(p.raster.BiasValue)
		desc.RasterizerState.SlopeScaledDepthBias = p.raster.BiasSlope
		desc.RasterizerState.DepthBiasClamp = p.raster.BiasClamp
	}
	if key.msaa > 1 {
		desc.RasterizerState.MultisampleEnable = 1
	}

	if key.depth != d3d.FORMAT_UNKNOWN {
		desc.DepthStencilState = convDSState(&p.ds)
	}

	desc.BlendState.RenderTarget[0] = d3d.RENDER_TARGET_BLEND_DESC{
		LogicOp:               d3d.LOGIC_OP_NOOP,
		RenderTargetWriteMask: d3d.COLOR_WRITE_ENABLE_ALL,
	}
	if p.blend.IndependentBlend {
		desc.BlendState.IndependentBlendEnable = 1
	}
	for i := range p.blend.Color {
		if i >= len(desc.BlendState.RenderTarget) {
			break
		}
		desc.BlendState.RenderTarget[i] = convColorBlend(&p.blend.Color[i])
	}
	if !p.blend.IndependentBlend {
		for i := 1; i < len(desc.BlendState.RenderTarget); i++ {
			desc.BlendState.RenderTarget[i] = desc.BlendState.RenderTarget[0]
		}
	}

	ps, err := p.d.dev.CreateGraphicsPipelineState(&desc)
	runtime.KeepAlive(names)
	runtime.KeepAlive(elems)
	if err != nil {
		return nil, err
	}
	return ps, nil
}

// Destroy implements driver.Destroyer.
func (p *graphPipeline) Destroy() {
	if p == nil {
		return
	}
	for _, ps := range p.cache {
		p.d.release(ps)
	}
	*p = graphPipeline{}
}

// convDSState converts a driver.DSState.
func convDSState(s *driver.DSState) d3d.DEPTH_STENCIL_DESC {
	desc := d3d.DEPTH_STENCIL_DESC{
		DepthFunc: d3d.COMPARISON_FUNC_ALWAYS,
	}
	if s.DepthTest {
		desc.DepthEnable = 1
		desc.DepthFunc = convCmpFunc(s.DepthCmp)
	}
	if s.DepthWrite {
		desc.DepthEnable = 1
		desc.DepthWriteMask = d3d.DEPTH_WRITE_MASK_ALL
	}
	if s.StencilTest {
		desc.StencilEnable = 1
		// D3D12 has a single read/write mask pair for
		// both faces.
		desc.StencilReadMask = uint8(s.Front.ReadMask)
		desc.StencilWriteMask = uint8(s.Front.WriteMask)
		desc.FrontFace = convStencilT(&s.Front)
		desc.BackFace = convStencilT(&s.Back)
	}
	return desc
}

func convStencilT(s *driver.StencilT) d3d.DEPTH_STENCILOP_DESC {
	return d3d.DEPTH_STENCILOP_DESC{
		StencilFailOp:      convStencilOp(s.DSFail[0]),
		StencilDepthFailOp: convStencilOp(s.DSFail[1]),
		StencilPassOp:      convStencilOp(s.Pass),
		StencilFunc:        convCmpFunc(s.Cmp),
	}
}

// convColorBlend converts a driver.ColorBlend.
func convColorBlend(b *driver.ColorBlend) d3d.RENDER_TARGET_BLEND_DESC {
	desc := d3d.RENDER_TARGET_BLEND_DESC{
		LogicOp:               d3d.LOGIC_OP_NOOP,
		RenderTargetWriteMask: convColorMask(b.WriteMask),
	}
	if b.Blend {
		desc.BlendEnable = 1
		desc.BlendOp = convBlendOp(b.Op[0])
		desc.BlendOpAlpha = convBlendOp(b.Op[1])
		desc.SrcBlend = convBlendFac(b.SrcFac[0])
		desc.SrcBlendAlpha = convBlendFac(b.SrcFac[1])
		desc.DestBlend = convBlendFac(b.DstFac[0])
		desc.DestBlendAlpha = convBlendFac(b.DstFac[1])
	}
	return desc
}

// compPipeline implements driver.Pipeline for compute.
// The native object has no draw-time dependencies, so a
// single one is built lazily on first dispatch.
type compPipeline struct {
	d    *Driver
	cs   []byte
	refl shaderRefl

	mu  sync.Mutex
	obj *d3d.ID3D12PipelineState
}

func (d *Driver) newCompPipeline(s *driver.CompState) (driver.Pipeline, error) {
	cs, ok := s.Func.Code.(*shaderCode)
	if !ok {
		return nil, errInvalidParam
	}
	return &compPipeline{
		d:    d,
		cs:   cs.code,
		refl: cs.refl,
	}, nil
}

// pso returns the native pipeline state, building it on
// first use.
func (p *compPipeline) pso() (*d3d.ID3D12PipelineState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.obj != nil {
		return p.obj, nil
	}
	desc := d3d.COMPUTE_PIPELINE_STATE_DESC{
		PRootSignature: p.d.rootSig.Ptr(),
		CS: d3d.SHADER_BYTECODE{
			PShaderBytecode: &p.cs[0],
			BytecodeLength:  uintptr(len(p.cs)),
		},
	}
	obj, err := p.d.dev.CreateComputePipelineState(&desc)
	if err != nil {
		return nil, err
	}
	p.obj = obj
	return obj, nil
}

// Destroy implements driver.Destroyer.
func (p *compPipeline) Destroy() {
	if p == nil {
		return
	}
	if p.obj != nil {
		p.d.release(p.obj)
	}
	*p = compPipeline{}
}
