// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package driver

// GPU is the main interface to an underlying driver
// implementation.
// It is used to create other types and to record commands.
// A GPU is obtained from a call to Driver.Open.
type GPU interface {
	// Driver returns the Driver that owns the GPU.
	Driver() Driver

	// Context returns the GPU's recording context.
	// There is a single context per GPU. It is not safe
	// for concurrent use.
	Context() Context

	// NewBuffer creates a new buffer.
	// Visible buffers are permanently mapped and can be
	// accessed by the CPU through the Bytes method.
	NewBuffer(size int64, visible bool, usg Usage) (Buffer, error)

	// NewTexture creates a new texture.
	NewTexture(pf PixelFmt, size Dim3D, layers, levels, samples int, usg Usage) (Texture, error)

	// NewSampler creates a new Sampler.
	NewSampler(spln *Sampling) (Sampler, error)

	// NewShaderCode creates a new shader code from a
	// bytecode blob.
	// The blob must start with a reflection header
	// (see the ShaderCode documentation).
	NewShaderCode(data []byte) (ShaderCode, error)

	// NewPipeline creates a new pipeline.
	// The state parameter must be a pointer to a GraphState or
	// a pointer to a CompState.
	// Graphics pipelines do not embed render target formats;
	// the native object is fetched or built at draw time from
	// the currently bound targets.
	NewPipeline(state any) (Pipeline, error)

	// NewTimerQuery creates a new timer query.
	NewTimerQuery() (TimerQuery, error)

	// NewOcclusionQuery creates a new occlusion query.
	NewOcclusionQuery() (OcclusionQuery, error)

	// Flush submits all recorded commands for execution.
	// If wait is set, it blocks until the GPU is done
	// executing them.
	Flush(wait bool) error

	// Limits returns the implementation limits.
	// They are immutable for the lifetime of the GPU.
	Limits() Limits
}

// Destroyer is the interface that wraps the Destroy method.
// Types that implement this interface may allocate external
// memory that is not managed by GC, so Destroy must be
// called explicitly to ensure such memory is deallocated.
type Destroyer interface {
	Destroy()
}

// Context is the interface that defines the command recorder.
// It buffers state changes and emits native commands at the
// latest safe moment, which is either a draw/dispatch call, a
// copy/clear call or frame submission.
//
// The usage per frame is as follows:
//
//	1. call FrameBegin
//	2. call Set*/Bind* methods to configure state
//	3. call Clear*/Draw*/Dispatch*/copy commands
//	4. repeat 2-3 as needed
//	5. call FrameEnd
//	6. call Swapchain.Present, if presenting
//
// Contexts are not safe for concurrent use, and Frame*
// calls must not be nested.
type Context interface {
	// FrameBegin prepares the context for a new frame.
	// It blocks until the commands submitted two frames
	// back complete execution, so per-frame memory can
	// be recycled safely.
	FrameBegin() error

	// FrameEnd submits the frame's commands without
	// waiting for them to execute.
	FrameEnd() error

	// Clear clears a render target view with the
	// given color.
	// The underlying resource is transitioned as needed
	// and pending barriers are flushed first.
	Clear(rt TexView, color [4]float32)

	// ClearDepth clears a depth/stencil view.
	ClearDepth(ds TexView, depth float32, stencil uint32)

	// ClearUint clears an unordered access view with
	// the given values.
	// The view must refer to a resource created with
	// UShaderWrite usage.
	ClearUint(ua View, value [4]uint32)

	// SetRenderTarget sets the render targets for
	// subsequent draws.
	// ds may be nil. It updates shadow state only; the
	// actual binding is deferred to the next draw.
	SetRenderTarget(ds TexView, color ...TexView)

	// ResetRenderTarget unbinds all render targets.
	ResetRenderTarget()

	// BindCB binds a constant buffer to a given slot.
	BindCB(slot int, buf Buffer)

	// UpdateCB updates the contents of a constant buffer
	// for use by subsequent draw/dispatch calls.
	// The data is staged through per-frame upload memory;
	// buf need not be host visible.
	UpdateCB(buf Buffer, data []byte) error

	// BindSR binds a shader resource view to a given slot.
	// The view's dimension must match what the bound
	// pipeline's shaders declare for the slot.
	BindSR(slot int, v View)

	// BindUA binds an unordered access view to a
	// given slot.
	BindUA(slot int, v View)

	// BindSampler binds a sampler to a given slot.
	// Slots below the number of static samplers are
	// reserved and must not be bound dynamically.
	BindSampler(slot int, splr Sampler)

	// BindVB sets one or more vertex buffers.
	// layout describes the vertex inputs fetched from
	// buf. If nil, the layout declared by the bound
	// vertex shader is used; otherwise a merged layout
	// between the two is synthesized.
	BindVB(buf []Buffer, off []int64, layout []VertexIn)

	// BindIB sets the index buffer.
	// off must be aligned to 4 bytes.
	BindIB(format IndexFmt, buf Buffer, off int64)

	// SetState sets the pipeline.
	// There is a separate binding point for each
	// type of pipeline.
	SetState(pl Pipeline)

	// ClearState restores the default recording state,
	// unbinding every resource and pipeline.
	ClearState()

	// SetViewport sets the bounds of the viewport.
	SetViewport(vp Viewport)

	// SetScissor sets the scissor rectangle.
	SetScissor(sciss Scissor)

	// SetBlendColor sets the constant blend color.
	SetBlendColor(r, g, b, a float32)

	// SetStencilRef sets the stencil reference value.
	SetStencilRef(value uint32)

	// Draw draws primitives.
	Draw(vertCount, instCount, baseVert, baseInst int)

	// DrawIndexed draws indexed primitives.
	DrawIndexed(idxCount, instCount, baseIdx, vertOff, baseInst int)

	// DrawIndirect draws primitives using arguments
	// stored in a buffer.
	// buf must have been created with UIndirect usage;
	// off must be aligned to 4 bytes.
	DrawIndirect(buf Buffer, off int64, count int)

	// DrawIndexedIndirect draws indexed primitives using
	// arguments stored in a buffer.
	DrawIndexedIndirect(buf Buffer, off int64, count int)

	// Dispatch dispatches compute thread groups.
	// A UAV barrier is inserted after every dispatch, so
	// back-to-back dispatches sharing unordered access
	// views are serialized.
	Dispatch(grpCountX, grpCountY, grpCountZ int)

	// DispatchIndirect dispatches compute thread groups
	// using arguments stored in a buffer.
	DispatchIndirect(buf Buffer, off int64)

	// UpdateBuffer updates a buffer range with CPU data,
	// staged through per-frame upload memory.
	UpdateBuffer(buf Buffer, off int64, data []byte) error

	// UpdateTexture updates one subresource of a texture
	// with CPU data laid out at the given row pitch,
	// staged through per-frame upload memory.
	UpdateTexture(t Texture, layer, level int, data []byte, rowPitch int) error

	// CopyBuffer copies data between buffers.
	CopyBuffer(param *BufferCopy)

	// CopyTexture copies data between textures.
	CopyTexture(param *TextureCopy)

	// CopyBufToTex copies data from a buffer to
	// a texture.
	CopyBufToTex(param *BufTexCopy)

	// CopyTexToBuf copies data from a texture to
	// a buffer.
	CopyTexToBuf(param *BufTexCopy)

	// CopyResource copies the whole contents of src
	// into dst. Formats, dimensions and sample counts
	// must match.
	CopyResource(dst, src Texture)

	// Resolve resolves a multisample subresource of src
	// into the given subresource of dst.
	Resolve(dst Texture, dstLayer, dstLevel int, src Texture, srcLayer, srcLevel int)

	// ResetCounter resets the hidden counter of a
	// structured buffer created with UCounter usage.
	ResetCounter(buf Buffer)

	// CopyCounter copies the hidden counter of src into
	// dst at the given offset.
	CopyCounter(dst Buffer, off int64, src Buffer)

	// BeginTimer records the start of a timer query.
	BeginTimer(q TimerQuery)

	// EndTimer records the end of a timer query.
	// The result becomes available after the frame
	// that records it is submitted and executed.
	EndTimer(q TimerQuery)

	// BeginOcclusion records the start of an
	// occlusion query.
	BeginOcclusion(q OcclusionQuery)

	// EndOcclusion records the end of an
	// occlusion query.
	EndOcclusion(q OcclusionQuery)
}

// BufferCopy describes the parameters of a copy command
// that copies data from one buffer to another.
type BufferCopy struct {
	From    Buffer
	FromOff int64
	To      Buffer
	ToOff   int64
	Size    int64
}

// TextureCopy describes the parameters of a copy command
// that copies data from one texture to another.
type TextureCopy struct {
	From      Texture
	FromOff   Off3D
	FromLayer int
	FromLevel int
	To        Texture
	ToOff     Off3D
	ToLayer   int
	ToLevel   int
	Size      Dim3D
	Layers    int
}

// BufTexCopy describes the parameters of a copy command
// that copies data between a buffer and a texture.
// BufOff must be aligned to 512 bytes.
// RowStride must be aligned to 256 bytes.
type BufTexCopy struct {
	Buf    Buffer
	BufOff int64
	// RowStride and SliceStride specify the addressing
	// of texture data in the buffer. They are given
	// in bytes.
	RowStride   int64
	SliceStride int64
	Tex         Texture
	TexOff      Off3D
	Layer       int
	Level       int
	Size        Dim3D
}

// ShaderCode is the interface that defines a shader binary
// for execution in a programmable pipeline stage.
//
// The bytecode blob handed to GPU.NewShaderCode must be
// prefixed by a reflection header that enumerates, per
// shader resource slot, the expected view dimension, and
// likewise for unordered access slots. The header layout
// is, in little-endian order:
//
//	[0:4]  magic "ARSH"
//	[4]    version (currently 1)
//	[5]    number of SR slot entries
//	[6]    number of UA slot entries
//	[7:]   one dimension byte per SR slot, then one
//	       dimension byte per UA slot, then the
//	       native bytecode
//
// Headers of all stages in a pipeline are OR-merged into
// the tables the context uses for descriptor flushing and
// dimension validation.
type ShaderCode interface {
	Destroyer
}

// ShaderFunc specifies a function within a shader binary.
type ShaderFunc struct {
	Code ShaderCode
	Name string
}

// VertexFmt describes the format of a vertex input.
type VertexFmt int

// Vertex formats.
const (
	// Signed 8-bit integer, 1-4 components.
	Int8 VertexFmt = iota
	Int8x2
	Int8x3
	Int8x4
	// Signed 16-bit integer, 1-4 components.
	Int16
	Int16x2
	Int16x3
	Int16x4
	// Signed 32-bit integer, 1-4 components.
	Int32
	Int32x2
	Int32x3
	Int32x4
	// Unsigned 8-bit integer, 1-4 components.
	UInt8
	UInt8x2
	UInt8x3
	UInt8x4
	// Unsigned 16-bit integer, 1-4 components.
	UInt16
	UInt16x2
	UInt16x3
	UInt16x4
	// Unsigned 32-bit integer, 1-4 components.
	UInt32
	UInt32x2
	UInt32x3
	UInt32x4
	// Single precision floating-point, 1-4 components.
	Float32
	Float32x2
	Float32x3
	Float32x4
)

// VertexIn describes a vertex input.
// Consecutive vertices are fetched Stride bytes apart.
// Each vertex input represents a separate buffer binding,
// interleaved inputs are not supported.
// The meaning of the Nr and Name fields is shader-specific.
type VertexIn struct {
	Format VertexFmt
	Stride int
	Nr     int
	Name   string
}

// Topology is the type of primitive topologies,
// which determines how vertex data is assembled.
type Topology int

// Primitive topologies.
const (
	TPoint Topology = iota
	TLine
	TLnStrip
	TTriangle
	TTriStrip
)

// IndexFmt describes the format of index buffer data.
type IndexFmt int

// Index formats.
const (
	Index16 IndexFmt = 2
	Index32 IndexFmt = 4
)

// Viewport defines the bounds of a viewport.
type Viewport struct {
	X, Y, Width, Height, Znear, Zfar float32
}

// Scissor defines a scissor rectangle.
type Scissor struct {
	X, Y, Width, Height int
}

// Cullmode is the type of cull modes, which
// determines primitive culling based on triangle
// facing direction.
type CullMode int

// Cull modes.
const (
	CNone CullMode = iota
	CFront
	CBack
)

// FillMode is the type of triangle fill modes, which
// determines the final rasterization of triangles.
type FillMode int

// Triangle fill modes.
const (
	FFill FillMode = iota
	FLines
)

// RasterState defines the rasterization state of a
// graphics pipeline.
type RasterState struct {
	// Winding order is either clockwise or counter-clockwise.
	Clockwise bool
	Cull      CullMode
	Fill      FillMode
	// DepthBias enables depth bias computation.
	DepthBias bool
	BiasValue float32
	BiasSlope float32
	BiasClamp float32
}

// CmpFunc is the type of comparison functions.
type CmpFunc int

// Comparison functions.
const (
	CNever CmpFunc = iota
	CLess
	CEqual
	CLessEqual
	CGreater
	CNotEqual
	CGreaterEqual
	CAlways
)

// StencilOp is the type of stencil operations.
type StencilOp int

// Stencil operations.
const (
	SKeep StencilOp = iota
	SZero
	SReplace
	SIncClamp
	SDecClamp
	SInvert
	SIncWrap
	SDecWrap
)

// StencilT defines stencil test parameters for the
// depth/stencil state of a graphics pipeline.
type StencilT struct {
	DSFail    [2]StencilOp
	Pass      StencilOp
	ReadMask  uint32
	WriteMask uint32
	Cmp       CmpFunc
}

// DSState defines the depth/stencil state of a
// graphics pipeline.
type DSState struct {
	// DepthTest enables the depth test.
	DepthTest bool
	// DepthWrite enables depth writes.
	DepthWrite bool
	DepthCmp   CmpFunc
	// StencilTest enables the stencil test.
	StencilTest bool
	Front       StencilT
	Back        StencilT
}

// BlenOp is the type of blend operations.
type BlendOp int

// Blend operations.
const (
	BAdd BlendOp = iota
	BSubtract
	BRevSubtract
	BMin
	BMax
)

// BlendFac is the type of blend factors.
type BlendFac int

// Blend factors.
const (
	BZero BlendFac = iota
	BOne
	BSrcColor
	BInvSrcColor
	BSrcAlpha
	BInvSrcAlpha
	BDstColor
	BInvDstColor
	BDstAlpha
	BInvDstAlpha
	BSrcAlphaSaturated
	BBlendColor
	BInvBlendColor
)

// ColorMask is the type of a color write mask.
type ColorMask int

// Color write masks.
const (
	CRed ColorMask = 1 << iota
	CGreen
	CBlue
	CAlpha
	// Write to all channels.
	CAll ColorMask = 1<<iota - 1
)

// ColorBlend defines a render target's blend parameters
// for the color blend state of a graphics pipeline.
type ColorBlend struct {
	// Blend enables blending.
	Blend bool
	// WriteMask specifies which color channels to write.
	// If blending is not enabled, the incoming samples
	// are written unmodified to the specified channels.
	WriteMask ColorMask
	// In the arrays that follows, [0] is for color and
	// [1] is for alpha.
	Op     [2]BlendOp
	SrcFac [2]BlendFac
	DstFac [2]BlendFac
}

// BlendState defines the color blend state of a
// graphics pipeline.
type BlendState struct {
	// IndependentBlend enables each render target to use
	// different blend parameters.
	IndependentBlend bool
	// Color contains color blend parameters for each
	// render target. If IndependentBlend is false,
	// only Color[0] is used.
	Color []ColorBlend
}

// GraphState defines the combination of programmable and
// fixed stages of a graphics pipeline.
// Graphics pipelines are created from graphics states.
// Render target formats and sample counts are deliberately
// absent; they are taken from the targets bound when a
// draw is recorded.
type GraphState struct {
	VertFunc ShaderFunc
	FragFunc ShaderFunc
	Input    []VertexIn
	Topology Topology
	Raster   RasterState
	DS       DSState
	Blend    BlendState
}

// CompState defines the state of a compute pipeline.
// Compute pipelines are created from compute states.
type CompState struct {
	Func ShaderFunc
}

// Pipeline is the interface that defines a GPU pipeline.
type Pipeline interface {
	Destroyer
}

// Usage is a mask indicating valid uses for a resource.
type Usage int

// Usage flags for Buffer and Texture.
const (
	// The resource can be read in shaders.
	UShaderRead Usage = 1 << iota
	// The resource can be written in shaders.
	UShaderWrite
	// The resource can provide constant data for shaders.
	// Valid only for Buffer.
	UShaderConst
	// The resource can be sampled in shaders.
	// Valid only for Texture.
	UShaderSample
	// The resource can provide vertex data for draw calls.
	// Valid only for Buffer.
	UVertexData
	// The resource can provide index data for draw calls.
	// Valid only for Buffer.
	UIndexData
	// The resource can provide indirect draw/dispatch
	// arguments.
	// Valid only for Buffer.
	UIndirect
	// The resource keeps a hidden append/consume counter.
	// Valid only for structured Buffer views.
	UCounter
	// The resource can be used as render target.
	// Valid only for Texture.
	URenderTarget
	// The resource can be used for any purpose valid for
	// its type.
	UGeneric Usage = 1<<iota - 1
)

// Buffer is the interface that defines a GPU buffer.
// The size of the buffer is fixed. When a larger buffer
// is necessary, a new one must be created and the data
// must be copied explicitly.
type Buffer interface {
	Destroyer

	// Visible returns whether the buffer is host visible.
	// Non-visible memory cannot be accessed by the CPU.
	Visible() bool

	// Bytes returns a slice of length Cap referring to the
	// underlying data. If the buffer is not host visible,
	// it returns nil instead.
	// The slice is valid for the lifetime of the buffer.
	Bytes() []byte

	// Cap returns the capacity of the buffer in bytes,
	// which may be greater than the size requested during
	// buffer creation.
	// This value is immutable.
	Cap() int64

	// NewView creates a new shader-bindable view over a
	// range of the buffer.
	// stride greater than zero creates a structured view;
	// a zero stride creates a raw view.
	// All views created from a given buffer must be
	// destroyed before the buffer itself is destroyed.
	NewView(off, size, stride int64) (BufView, error)
}

// PixelFmt describes the format of a pixel.
type PixelFmt int

// Internal format bit.
// All internal formats have this bit set. Client code
// must not create textures using internal formats.
const FInternal PixelFmt = 1 << 31

// IsInternal returns whether f is an internal format.
func (f PixelFmt) IsInternal() bool { return f&FInternal == FInternal }

// Pixel formats.
const (
	// Color, 8-bit channels.
	RGBA8un PixelFmt = iota
	RGBA8n
	RGBA8sRGB
	BGRA8un
	BGRA8sRGB
	RG8un
	RG8n
	R8un
	R8n
	// Color, 16-bit channels.
	RGBA16f
	RG16f
	R16f
	// Color, 32-bit channels.
	RGBA32f
	RG32f
	R32f
	// Color, packed.
	RGB10A2un
	RG11B10f
	// Depth/Stencil.
	D16un
	D32f
	S8ui
	D24unS8ui
	D32fS8ui
)

// Dim3D is a three-dimensional size.
type Dim3D struct {
	Width, Height, Depth int
}

// Off3D is a three-dimensional offset.
type Off3D struct {
	X, Y, Z int
}

// Texture is the interface that defines a GPU texture.
// Direct access to texture memory is not provided; copying
// data from the CPU to a texture resource goes through
// Context.UpdateTexture or a staging buffer.
type Texture interface {
	Destroyer

	// NewView creates a new texture view.
	// Texture views represent a typed view of texture
	// storage. Its type must be valid according to the
	// texture from which it is created and the parameters
	// given when calling this method (e.g, creating a view
	// of 3D type from a 2D texture is not allowed, and
	// neither is a view of array type if the view is
	// created from a single layer).
	// All views created from a given texture must be
	// destroyed before the texture itself is destroyed.
	NewView(typ ViewType, layer, layers, level, levels int) (TexView, error)

	// PixelFmt returns the texture's pixel format.
	PixelFmt() PixelFmt

	// Size returns the texture's size.
	Size() Dim3D

	// Layers returns the number of array layers.
	Layers() int

	// Levels returns the number of mip levels.
	Levels() int

	// Samples returns the sample count.
	Samples() int
}

// ViewType is the type of a resource view.
type ViewType int

// View types.
const (
	IView1D ViewType = iota
	IView2D
	IView3D
	IViewCube
	IView1DArray
	IView2DArray
	IViewCubeArray
	IView2DMS
	IView2DMSArray
)

// View is a shader-bindable view of a resource.
// It is implemented by TexView and BufView.
type View interface {
	Destroyer
}

// TexView is the interface that defines a typed view of
// a Texture resource.
type TexView interface {
	View

	// Texture returns the texture from which the view
	// was created.
	Texture() Texture
}

// BufView is the interface that defines a shader-bindable
// view of a Buffer range.
type BufView interface {
	View

	// Buffer returns the buffer from which the view
	// was created.
	Buffer() Buffer
}

// Filter is the type of sampler filters.
type Filter int

// Filters.
const (
	FNearest Filter = iota
	FLinear
	// FNoMipmap forces mip level 0 to be used.
	// It is only valid as the mip filter of a sampler.
	FNoMipmap
)

// AddrMode is the type of sampler address modes.
type AddrMode int

// Address modes.
const (
	AWrap AddrMode = iota
	AMirror
	AClamp
)

// Sampler is the interface that defines a texture sampler.
type Sampler interface {
	Destroyer
}

// Sampling describes texture sampler state.
type Sampling struct {
	Min      Filter
	Mag      Filter
	Mipmap   Filter
	AddrU    AddrMode
	AddrV    AddrMode
	AddrW    AddrMode
	MaxAniso int
	Cmp      CmpFunc
	MinLOD   float32
	MaxLOD   float32
}

// TimerQuery is the interface that defines a GPU
// timestamp interval query.
// The interval between BeginTimer and EndTimer is
// reported in microseconds.
type TimerQuery interface {
	Destroyer

	// Ready returns whether the result can be obtained
	// without blocking.
	// It returns false while the query's batch has not
	// been submitted or has not completed execution.
	Ready() bool

	// Microseconds returns the measured interval.
	// If wait is unset and the result is not ready, it
	// fails without blocking.
	// Repeated calls for the same measurement return
	// the same value.
	Microseconds(wait bool) (float64, error)
}

// OcclusionQuery is the interface that defines a GPU
// occlusion query.
type OcclusionQuery interface {
	Destroyer

	// Ready returns whether the result can be obtained
	// without blocking.
	Ready() bool

	// Samples returns the number of samples that passed
	// depth/stencil testing between BeginOcclusion and
	// EndOcclusion.
	Samples(wait bool) (uint64, error)
}

// Limits describes implementation limits.
// These may vary across drivers and devices.
type Limits struct {
	// Maximum width of 1D textures.
	MaxImage1D int
	// Maximum width and height of 2D textures.
	MaxImage2D int
	// Maximum width and height of cube textures.
	MaxImageCube int
	// Maximum width, height and depth of 3D textures.
	MaxImage3D int
	// Maximum number of layers in a texture.
	MaxLayers int

	// Maximum number of constant buffer slots.
	MaxCB int
	// Maximum number of shader resource slots.
	MaxSR int
	// Maximum number of unordered access slots.
	MaxUA int
	// Maximum number of sampler slots, including the
	// static samplers.
	MaxSampler int
	// Number of sampler slots reserved for static
	// samplers. Dynamic samplers must be bound at
	// slots in the range [StaticSamplers, MaxSampler).
	StaticSamplers int
	// Maximum range of constant buffer bindings.
	MaxCBRange int64

	// Maximum number of color render targets.
	MaxColorTargets int
	// Maximum width/height of render targets.
	MaxRTSize [2]int
	// Maximum number of vertex inputs in a
	// vertex shader.
	MaxVertexIn int

	// Maximum dipatch count.
	MaxDispatch [3]int
}
