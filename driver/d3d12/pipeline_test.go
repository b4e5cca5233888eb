// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"testing"

	"gviegas/arke/driver"
	"gviegas/arke/internal/d3d"
)

// shaderBlob builds a test blob with the given SR/UA
// dimension bytes followed by a fake bytecode.
func shaderBlob(sr, ua []byte) []byte {
	b := []byte("ARSH")
	b = append(b, 1, byte(len(sr)), byte(len(ua)))
	b = append(b, sr...)
	b = append(b, ua...)
	return append(b, 0xde, 0xad, 0xbe, 0xef)
}

func TestParseShaderCode(t *testing.T) {
	refl, code, err := parseShaderCode(shaderBlob([]byte{dim2D, dimNone, dimCube}, []byte{dimBuffer}))
	if err != nil {
		t.Fatalf("parseShaderCode: err\nhave %v\nwant nil", err)
	}
	if refl.srMask != 0b101 {
		t.Fatalf("srMask\nhave %#b\nwant 101", refl.srMask)
	}
	if refl.uaMask != 0b1 {
		t.Fatalf("uaMask\nhave %#b\nwant 1", refl.uaMask)
	}
	if refl.srDim[0] != dim2D || refl.srDim[2] != dimCube || refl.uaDim[0] != dimBuffer {
		t.Fatalf("dims\nhave %v/%v\nwant dim2D, dimCube / dimBuffer", refl.srDim, refl.uaDim)
	}
	if len(code) != 4 || code[0] != 0xde {
		t.Fatalf("code\nhave %v\nwant [de ad be ef]", code)
	}

	for _, bad := range [][]byte{
		nil,
		[]byte("ARSH"),
		[]byte("XXXX\x01\x00\x00"),
		{'A', 'R', 'S', 'H', 2, 0, 0},
		shaderBlob([]byte{dim2D}, nil)[:8],
		// Header only, no bytecode.
		{'A', 'R', 'S', 'H', 1, 0, 0},
	} {
		if _, _, err := parseShaderCode(bad); err == nil {
			t.Fatalf("parseShaderCode(%v): err\nhave nil\nwant %v", bad, errShaderCode)
		}
	}
}

func TestReflMerge(t *testing.T) {
	vs, _, _ := parseShaderCode(shaderBlob([]byte{dim2D}, nil))
	ps, _, _ := parseShaderCode(shaderBlob([]byte{dimNone, dimCube}, []byte{dimBuffer}))
	if err := vs.merge(&ps); err != nil {
		t.Fatalf("merge: err\nhave %v\nwant nil", err)
	}
	if vs.srMask != 0b11 || vs.uaMask != 0b1 {
		t.Fatalf("masks\nhave %#b, %#b\nwant 11, 1", vs.srMask, vs.uaMask)
	}
	if vs.srDim[0] != dim2D || vs.srDim[1] != dimCube {
		t.Fatalf("srDim\nhave %v\nwant dim2D, dimCube", vs.srDim[:2])
	}

	// Disagreeing dimensions on a shared slot fail.
	bad, _, _ := parseShaderCode(shaderBlob([]byte{dim3D}, nil))
	if err := vs.merge(&bad); err == nil {
		t.Fatalf("merge of conflicting dims: err\nhave nil\nwant %v", errShaderCode)
	}
}

func TestLayoutID(t *testing.T) {
	a := []driver.VertexIn{{Format: driver.Float32x3, Stride: 12, Nr: 0}}
	b := []driver.VertexIn{{Format: driver.Float32x3, Stride: 12, Nr: 0}}
	c := []driver.VertexIn{{Format: driver.Float32x2, Stride: 8, Nr: 0}}
	if x, y := layoutID(a), layoutID(b); x != y {
		t.Fatalf("layoutID of equal layouts\nhave %d, %d\nwant equal", x, y)
	}
	if x, y := layoutID(a), layoutID(c); x == y {
		t.Fatalf("layoutID of differing layouts\nhave %d, %d\nwant distinct", x, y)
	}
	if x, y := layoutID(nil), layoutID(a); x == y {
		t.Fatalf("layoutID(nil)\nhave %d == %d\nwant distinct", x, y)
	}
}

func TestPSOKey(t *testing.T) {
	k := psoKey{
		rtCount: 1,
		depth:   d3d.FORMAT_UNKNOWN,
		layout:  layoutID([]driver.VertexIn{{Format: driver.Float32x3, Stride: 12}}),
	}
	k.rt[0] = d3d.FORMAT_R8G8B8A8_UNORM
	m := map[psoKey]int{k: 1}
	same := k
	if m[same] != 1 {
		t.Fatalf("cache lookup of equal key\nhave miss\nwant hit")
	}
	diff := k
	diff.rt[0] = d3d.FORMAT_B8G8R8A8_UNORM
	if _, ok := m[diff]; ok {
		t.Fatalf("cache lookup of differing key\nhave hit\nwant miss")
	}
}

func TestMergeVertexIn(t *testing.T) {
	shader := []driver.VertexIn{
		{Format: driver.Float32x3, Stride: 12, Nr: 0, Name: "POSITION"},
		{Format: driver.Float32x2, Stride: 8, Nr: 1, Name: "TEXCOORD"},
	}
	buf := []driver.VertexIn{
		{Format: driver.Float32x3, Stride: 32, Nr: 0},
	}
	merged := mergeVertexIn(buf, shader)
	if len(merged) != 2 {
		t.Fatalf("len(merged)\nhave %d\nwant 2", len(merged))
	}
	if merged[0].Stride != 32 {
		t.Fatalf("merged[0].Stride\nhave %d\nwant 32", merged[0].Stride)
	}
	if merged[0].Name != "POSITION" || merged[1].Stride != 8 {
		t.Fatalf("merged\nhave %+v\nwant shader entries with buffer overrides", merged)
	}
	if got := mergeVertexIn(nil, shader); &got[0] != &shader[0] {
		t.Fatalf("mergeVertexIn(nil, shader)\nhave copy\nwant shader layout")
	}
}
