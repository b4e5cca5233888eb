// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"errors"
	"sync"

	"gviegas/arke/driver"
	"gviegas/arke/internal/d3d"
)

var errShaderCode = errors.New("d3d12: invalid shader code")

// View dimension bytes of the shader reflection header.
const (
	dimNone = iota
	dimBuffer
	dim1D
	dim2D
	dim3D
	dimCube
	dim1DArray
	dim2DArray
	dimCubeArray
	dim2DMS
	dim2DMSArray
)

// convViewType converts a driver.ViewType to a reflection
// dimension byte.
func convViewType(t driver.ViewType) uint8 {
	switch t {
	case driver.IView1D:
		return dim1D
	case driver.IView2D:
		return dim2D
	case driver.IView3D:
		return dim3D
	case driver.IViewCube:
		return dimCube
	case driver.IView1DArray:
		return dim1DArray
	case driver.IView2DArray:
		return dim2DArray
	case driver.IViewCubeArray:
		return dimCubeArray
	case driver.IView2DMS:
		return dim2DMS
	case driver.IView2DMSArray:
		return dim2DMSArray
	}
	return dimNone
}

// convSRVDim converts a reflection dimension byte to the
// SRV dimension used for null descriptors.
func convSRVDim(d uint8) d3d.SRV_DIMENSION {
	switch d {
	case dimBuffer:
		return d3d.SRV_DIMENSION_BUFFER
	case dim1D:
		return d3d.SRV_DIMENSION_TEXTURE1D
	case dim2D:
		return d3d.SRV_DIMENSION_TEXTURE2D
	case dim3D:
		return d3d.SRV_DIMENSION_TEXTURE3D
	case dimCube:
		return d3d.SRV_DIMENSION_TEXTURECUBE
	case dim1DArray:
		return d3d.SRV_DIMENSION_TEXTURE1DARRAY
	case dim2DArray:
		return d3d.SRV_DIMENSION_TEXTURE2DARRAY
	case dimCubeArray:
		return d3d.SRV_DIMENSION_TEXTURECUBEARRAY
	case dim2DMS:
		return d3d.SRV_DIMENSION_TEXTURE2DMS
	case dim2DMSArray:
		return d3d.SRV_DIMENSION_TEXTURE2DMSARRAY
	}
	return d3d.SRV_DIMENSION_UNKNOWN
}

// convUAVDim converts a reflection dimension byte to the
// UAV dimension used for null descriptors.
// Cube and multisample dimensions have no UAV form and fall
// back to the closest one.
func convUAVDim(d uint8) d3d.UAV_DIMENSION {
	switch d {
	case dimBuffer:
		return d3d.UAV_DIMENSION_BUFFER
	case dim1D:
		return d3d.UAV_DIMENSION_TEXTURE1D
	case dim2D, dim2DMS:
		return d3d.UAV_DIMENSION_TEXTURE2D
	case dim3D:
		return d3d.UAV_DIMENSION_TEXTURE3D
	case dim1DArray:
		return d3d.UAV_DIMENSION_TEXTURE1DARRAY
	case dim2DArray, dimCube, dimCubeArray, dim2DMSArray:
		return d3d.UAV_DIMENSION_TEXTURE2DARRAY
	}
	return d3d.UAV_DIMENSION_UNKNOWN
}

// shaderRefl describes, per shader resource slot and per
// unordered access slot, whether a pipeline stage uses the
// slot and the view dimension it expects there.
type shaderRefl struct {
	srMask uint32
	uaMask uint32
	srDim  [maxSR]uint8
	uaDim  [maxUA]uint8
}

// parseShaderCode splits a shader blob into its reflection
// header and native bytecode.
// The header layout is, in little-endian order: the magic
// "ARSH", a version byte, the SR and UA entry counts, then
// one dimension byte per SR slot and one per UA slot.
func parseShaderCode(data []byte) (refl shaderRefl, code []byte, err error) {
	if len(data) < 7 || string(data[:4]) != "ARSH" || data[4] != 1 {
		return shaderRefl{}, nil, errShaderCode
	}
	nsr := int(data[5])
	nua := int(data[6])
	if nsr > maxSR || nua > maxUA || len(data) < 7+nsr+nua {
		return shaderRefl{}, nil, errShaderCode
	}
	for i := range nsr {
		if d := data[7+i]; d != dimNone {
			refl.srDim[i] = d
			refl.srMask |= 1 << i
		}
	}
	for i := range nua {
		if d := data[7+nsr+i]; d != dimNone {
			refl.uaDim[i] = d
			refl.uaMask |= 1 << i
		}
	}
	code = data[7+nsr+nua:]
	if len(code) == 0 {
		return shaderRefl{}, nil, errShaderCode
	}
	return refl, code, nil
}

// merge ORs another stage's reflection into r.
// Stages that use the same slot must agree on its
// dimension.
func (r *shaderRefl) merge(o *shaderRefl) error {
	for i := range r.srDim {
		switch {
		case o.srDim[i] == dimNone:
		case r.srDim[i] == dimNone:
			r.srDim[i] = o.srDim[i]
		case r.srDim[i] != o.srDim[i]:
			return errShaderCode
		}
	}
	for i := range r.uaDim {
		switch {
		case o.uaDim[i] == dimNone:
		case r.uaDim[i] == dimNone:
			r.uaDim[i] = o.uaDim[i]
		case r.uaDim[i] != o.uaDim[i]:
			return errShaderCode
		}
	}
	r.srMask |= o.srMask
	r.uaMask |= o.uaMask
	return nil
}

// psoKey identifies one native graphics pipeline object
// within a pipeline's cache. Pipelines do not embed render
// target formats; the key is formed at draw time from the
// currently bound targets.
type psoKey struct {
	rtCount uint8
	msaa    uint8
	depth   d3d.FORMAT
	layout  uint32
	rt      [8]d3d.FORMAT
}

// Vertex layout identifiers.
// Equal layouts get equal identifiers, so pipeline cache
// keys can compare a single integer.
var vtxLayouts struct {
	sync.Mutex
	m    map[string]uint32
	next uint32
}

// layoutID returns the identifier of a vertex layout.
func layoutID(ins []driver.VertexIn) uint32 {
	var k []byte
	for i := range ins {
		k = append(k, byte(ins[i].Format), byte(ins[i].Stride), byte(ins[i].Stride>>8), byte(ins[i].Nr))
	}
	vtxLayouts.Lock()
	defer vtxLayouts.Unlock()
	if vtxLayouts.m == nil {
		vtxLayouts.m = make(map[string]uint32)
	}
	id, ok := vtxLayouts.m[string(k)]
	if !ok {
		vtxLayouts.next++
		id = vtxLayouts.next
		vtxLayouts.m[string(k)] = id
	}
	return id
}

// mergeVertexIn synthesizes the layout used for input
// assembly when vertex buffers are bound with their own
// layout. Inputs the shader expects keep their slot; the
// buffer-supplied entry with a matching Nr overrides the
// format and stride.
func mergeVertexIn(bufIns, shaderIns []driver.VertexIn) []driver.VertexIn {
	if bufIns == nil {
		return shaderIns
	}
	if shaderIns == nil {
		return bufIns
	}
	merged := make([]driver.VertexIn, len(shaderIns))
	copy(merged, shaderIns)
	for i := range merged {
		for j := range bufIns {
			if bufIns[j].Nr == merged[i].Nr {
				merged[i].Format = bufIns[j].Format
				merged[i].Stride = bufIns[j].Stride
				break
			}
		}
	}
	return merged
}
