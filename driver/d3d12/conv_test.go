// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"testing"

	"gviegas/arke/driver"
	"gviegas/arke/internal/d3d"
)

func TestConvPixelFmt(t *testing.T) {
	cases := []struct {
		pf   driver.PixelFmt
		want d3d.FORMAT
	}{
		{driver.RGBA8un, d3d.FORMAT_R8G8B8A8_UNORM},
		{driver.BGRA8un, d3d.FORMAT_B8G8R8A8_UNORM},
		{driver.RGBA8sRGB, d3d.FORMAT_R8G8B8A8_UNORM_SRGB},
		{driver.RGBA16f, d3d.FORMAT_R16G16B16A16_FLOAT},
		{driver.RGB10A2un, d3d.FORMAT_R10G10B10A2_UNORM},
		{driver.RG11B10f, d3d.FORMAT_R11G11B10_FLOAT},
		{driver.D16un, d3d.FORMAT_D16_UNORM},
		{driver.D32f, d3d.FORMAT_D32_FLOAT},
		{driver.D24unS8ui, d3d.FORMAT_D24_UNORM_S8_UINT},
		{driver.D32fS8ui, d3d.FORMAT_D32_FLOAT_S8X24_UINT},
	}
	for _, c := range cases {
		if got := convPixelFmt(c.pf); got != c.want {
			t.Fatalf("convPixelFmt(%v)\nhave %d\nwant %d", c.pf, got, c.want)
		}
	}
}

func TestDepthFmts(t *testing.T) {
	cases := []struct {
		pf            driver.PixelFmt
		typeless, srv d3d.FORMAT
	}{
		{driver.D16un, d3d.FORMAT_R16_TYPELESS, d3d.FORMAT_R16_UNORM},
		{driver.D32f, d3d.FORMAT_R32_TYPELESS, d3d.FORMAT_R32_FLOAT},
		{driver.D24unS8ui, d3d.FORMAT_R24G8_TYPELESS, d3d.FORMAT_R24_UNORM_X8_TYPELESS},
		{driver.D32fS8ui, d3d.FORMAT_R32G8X24_TYPELESS, d3d.FORMAT_R32_FLOAT_X8X24_TYPELESS},
		// Color formats are the identity.
		{driver.RGBA8un, d3d.FORMAT_R8G8B8A8_UNORM, d3d.FORMAT_R8G8B8A8_UNORM},
	}
	for _, c := range cases {
		if got := typelessFmt(c.pf); got != c.typeless {
			t.Fatalf("typelessFmt(%v)\nhave %d\nwant %d", c.pf, got, c.typeless)
		}
		if got := depthSRVFmt(c.pf); got != c.srv {
			t.Fatalf("depthSRVFmt(%v)\nhave %d\nwant %d", c.pf, got, c.srv)
		}
	}
	if !aspectDepth(driver.D24unS8ui) || aspectDepth(driver.S8ui) || aspectDepth(driver.RGBA8un) {
		t.Fatalf("aspectDepth\nhave wrong classification")
	}
	if !aspectStencil(driver.S8ui) || aspectStencil(driver.D32f) {
		t.Fatalf("aspectStencil\nhave wrong classification")
	}
}

func TestConvVertexFmt(t *testing.T) {
	f, n := convVertexFmt(driver.Float32x3)
	if f != d3d.FORMAT_R32G32B32_FLOAT || n != 12 {
		t.Fatalf("convVertexFmt(Float32x3)\nhave %d, %d\nwant %d, 12", f, n, d3d.FORMAT_R32G32B32_FLOAT)
	}
	f, n = convVertexFmt(driver.UInt16x2)
	if f != d3d.FORMAT_R16G16_UINT || n != 4 {
		t.Fatalf("convVertexFmt(UInt16x2)\nhave %d, %d\nwant %d, 4", f, n, d3d.FORMAT_R16G16_UINT)
	}
	// 3-component 8/16-bit formats do not exist in DXGI.
	if f, _ = convVertexFmt(driver.Int8x3); f != d3d.FORMAT_UNKNOWN {
		t.Fatalf("convVertexFmt(Int8x3)\nhave %d\nwant FORMAT_UNKNOWN", f)
	}
}

func TestConvTopology(t *testing.T) {
	topo, typ := convTopology(driver.TTriangle)
	if topo != d3d.PRIMITIVE_TOPOLOGY_TRIANGLELIST || typ != d3d.PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE {
		t.Fatalf("convTopology(TTriangle)\nhave %d, %d\nwant trianglelist, triangle", topo, typ)
	}
	topo, typ = convTopology(driver.TLnStrip)
	if topo != d3d.PRIMITIVE_TOPOLOGY_LINESTRIP || typ != d3d.PRIMITIVE_TOPOLOGY_TYPE_LINE {
		t.Fatalf("convTopology(TLnStrip)\nhave %d, %d\nwant linestrip, line", topo, typ)
	}
}

func TestConvFilter(t *testing.T) {
	cases := []struct {
		spln driver.Sampling
		want uint32
	}{
		{driver.Sampling{Min: driver.FNearest, Mag: driver.FNearest, Mipmap: driver.FNearest}, d3d.FILTER_MIN_MAG_MIP_POINT},
		{driver.Sampling{Min: driver.FLinear, Mag: driver.FLinear, Mipmap: driver.FLinear}, d3d.FILTER_MIN_MAG_MIP_LINEAR},
		{driver.Sampling{Min: driver.FLinear, Mag: driver.FLinear, Mipmap: driver.FNearest}, d3d.FILTER_MIN_MAG_LINEAR_MIP_POINT},
		{driver.Sampling{MaxAniso: 16}, d3d.FILTER_ANISOTROPIC},
		{driver.Sampling{MaxAniso: 16, Cmp: driver.CLess}, d3d.FILTER_COMPARISON_ANISOTROPIC},
		{driver.Sampling{Min: driver.FLinear, Mag: driver.FLinear, Mipmap: driver.FLinear, Cmp: driver.CLessEqual}, d3d.FILTER_COMPARISON_MIN_MAG_MIP_LINEAR},
	}
	for _, c := range cases {
		if got := convFilter(&c.spln); got != c.want {
			t.Fatalf("convFilter(%+v)\nhave %#x\nwant %#x", c.spln, got, c.want)
		}
	}
}

func TestTexelSize(t *testing.T) {
	cases := []struct {
		pf   driver.PixelFmt
		want int
	}{
		{driver.R8un, 1},
		{driver.RG8un, 2},
		{driver.RGBA8un, 4},
		{driver.RGBA16f, 8},
		{driver.RGBA32f, 16},
		{driver.D24unS8ui, 4},
		{driver.D32fS8ui, 8},
	}
	for _, c := range cases {
		if got := texelSize(c.pf); got != c.want {
			t.Fatalf("texelSize(%v)\nhave %d\nwant %d", c.pf, got, c.want)
		}
	}
}
