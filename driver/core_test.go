// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package driver_test

import (
	"bytes"
	"testing"

	"gviegas/arke/driver"
)

func TestGPUDriver(t *testing.T) {
	skipNoGPU(t)
	g, _ := drv.Open()
	if gpu.Driver() != drv || gpu.Driver() != g.Driver() {
		t.Error("GPU.Driver: unexpected Driver value")
	}
}

func TestLimits(t *testing.T) {
	skipNoGPU(t)
	lim := gpu.Limits()
	switch {
	case lim.MaxImage2D < 4096, lim.MaxLayers < 1:
		t.Errorf("GPU.Limits: implausible texture limits\n%v", lim)
	case lim.MaxCB < 1, lim.MaxSR < 1, lim.MaxUA < 1:
		t.Errorf("GPU.Limits: implausible binding limits\n%v", lim)
	case lim.MaxSampler <= lim.StaticSamplers:
		t.Error("GPU.Limits: no dynamic sampler slots")
	case lim.MaxColorTargets < 1, lim.MaxVertexIn < 1:
		t.Errorf("GPU.Limits: implausible draw limits\n%v", lim)
	}
}

func TestBuffer(t *testing.T) {
	skipNoGPU(t)
	for _, visible := range [2]bool{false, true} {
		buf, err := gpu.NewBuffer(1024, visible, driver.UShaderRead|driver.UShaderConst)
		if err != nil {
			t.Fatalf("GPU.NewBuffer failed:\n%v", err)
		}
		if buf.Visible() != visible {
			t.Errorf("Buffer.Visible:\nhave %v\nwant %v", buf.Visible(), visible)
		}
		if buf.Cap() < 1024 {
			t.Errorf("Buffer.Cap:\nhave %d\nwant >= 1024", buf.Cap())
		}
		b := buf.Bytes()
		if visible {
			if int64(len(b)) != buf.Cap() {
				t.Errorf("Buffer.Bytes: length\nhave %d\nwant %d", len(b), buf.Cap())
			}
			for i := range b {
				b[i] = byte(i)
			}
			for i := range b {
				if b[i] != byte(i) {
					t.Fatal("Buffer.Bytes: data mismatch")
				}
			}
		} else if b != nil {
			t.Error("Buffer.Bytes: non-nil slice from non-visible buffer")
		}
		buf.Destroy()
	}
}

func TestBufferView(t *testing.T) {
	skipNoGPU(t)
	buf, err := gpu.NewBuffer(4096, false, driver.UShaderRead|driver.UShaderWrite)
	if err != nil {
		t.Fatalf("GPU.NewBuffer failed:\n%v", err)
	}
	defer buf.Destroy()
	// Raw and structured views over the same range.
	raw, err := buf.NewView(0, 4096, 0)
	if err != nil {
		t.Fatalf("Buffer.NewView failed:\n%v", err)
	}
	str, err := buf.NewView(0, 4096, 16)
	if err != nil {
		t.Fatalf("Buffer.NewView failed:\n%v", err)
	}
	str.Destroy()
	raw.Destroy()
	// Out of range views must fail.
	if _, err := buf.NewView(4096, 16, 0); err == nil {
		t.Error("Buffer.NewView: out of range view succeeded")
	}
	if _, err := buf.NewView(0, -1, 0); err == nil {
		t.Error("Buffer.NewView: negative size succeeded")
	}
}

func TestTexture(t *testing.T) {
	skipNoGPU(t)
	tex, err := gpu.NewTexture(driver.RGBA8un, driver.Dim3D{Width: 256, Height: 256}, 4, 3, 1, driver.UShaderSample)
	if err != nil {
		t.Fatalf("GPU.NewTexture failed:\n%v", err)
	}
	defer tex.Destroy()
	for _, c := range [...]struct {
		typ                          driver.ViewType
		layer, layers, level, levels int
	}{
		{driver.IView2D, 0, 1, 0, 1},
		{driver.IView2D, 3, 1, 2, 1},
		{driver.IView2DArray, 0, 4, 0, 3},
	} {
		v, err := tex.NewView(c.typ, c.layer, c.layers, c.level, c.levels)
		if err != nil {
			t.Fatalf("Texture.NewView(%v, %d, %d, %d, %d) failed:\n%v", c.typ, c.layer, c.layers, c.level, c.levels, err)
		}
		v.Destroy()
	}
	if _, err := tex.NewView(driver.IView2D, 4, 1, 0, 1); err == nil {
		t.Error("Texture.NewView: out of range layer succeeded")
	}
}

func TestSampler(t *testing.T) {
	skipNoGPU(t)
	splr, err := gpu.NewSampler(&driver.Sampling{
		Min:      driver.FLinear,
		Mag:      driver.FLinear,
		Mipmap:   driver.FNearest,
		AddrU:    driver.AWrap,
		AddrV:    driver.AWrap,
		AddrW:    driver.AWrap,
		MaxAniso: 1,
	})
	if err != nil {
		t.Fatalf("GPU.NewSampler failed:\n%v", err)
	}
	splr.Destroy()
}

// TestFrame records a frame that stages data through upload
// memory, copies between resources and measures the copies
// with a timer query.
func TestFrame(t *testing.T) {
	skipNoGPU(t)
	const size = 2048
	src, err := gpu.NewBuffer(size, true, driver.UShaderRead)
	if err != nil {
		t.Fatalf("GPU.NewBuffer failed:\n%v", err)
	}
	defer src.Destroy()
	dst, err := gpu.NewBuffer(size, false, driver.UShaderRead)
	if err != nil {
		t.Fatalf("GPU.NewBuffer failed:\n%v", err)
	}
	defer dst.Destroy()
	tex, err := gpu.NewTexture(driver.RGBA8un, driver.Dim3D{Width: 64, Height: 64}, 1, 1, 1, driver.UShaderSample)
	if err != nil {
		t.Fatalf("GPU.NewTexture failed:\n%v", err)
	}
	defer tex.Destroy()
	tq, err := gpu.NewTimerQuery()
	if err != nil {
		t.Fatalf("GPU.NewTimerQuery failed:\n%v", err)
	}
	defer tq.Destroy()

	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i)
	}
	texData := make([]byte, 64*64*4)
	for i := range texData {
		texData[i] = byte(i >> 2)
	}

	ctx := gpu.Context()
	if err := ctx.FrameBegin(); err != nil {
		t.Fatalf("Context.FrameBegin failed:\n%v", err)
	}
	ctx.BeginTimer(tq)
	if err := ctx.UpdateBuffer(src, 0, data); err != nil {
		t.Fatalf("Context.UpdateBuffer failed:\n%v", err)
	}
	ctx.CopyBuffer(&driver.BufferCopy{From: src, To: dst, Size: size})
	if err := ctx.UpdateTexture(tex, 0, 0, texData, 64*4); err != nil {
		t.Fatalf("Context.UpdateTexture failed:\n%v", err)
	}
	ctx.EndTimer(tq)
	if err := ctx.FrameEnd(); err != nil {
		t.Fatalf("Context.FrameEnd failed:\n%v", err)
	}
	// The visible source must hold the staged data.
	if !bytes.Equal(src.Bytes()[:size], data) {
		t.Error("Context.UpdateBuffer: data mismatch")
	}
	us, err := tq.Microseconds(true)
	if err != nil {
		t.Fatalf("TimerQuery.Microseconds failed:\n%v", err)
	}
	if us < 0 {
		t.Errorf("TimerQuery.Microseconds:\nhave %v\nwant >= 0", us)
	}
	if !tq.Ready() {
		t.Error("TimerQuery.Ready: false after Microseconds returned")
	}
}

// TestTimerWait asks for a measurement while the frame that
// records it is still open. The wait must submit the pending
// commands and block instead of failing.
func TestTimerWait(t *testing.T) {
	skipNoGPU(t)
	buf, err := gpu.NewBuffer(512, false, driver.UShaderRead)
	if err != nil {
		t.Fatalf("GPU.NewBuffer failed:\n%v", err)
	}
	defer buf.Destroy()
	tq, err := gpu.NewTimerQuery()
	if err != nil {
		t.Fatalf("GPU.NewTimerQuery failed:\n%v", err)
	}
	defer tq.Destroy()
	ctx := gpu.Context()
	if err := ctx.FrameBegin(); err != nil {
		t.Fatalf("Context.FrameBegin failed:\n%v", err)
	}
	ctx.BeginTimer(tq)
	if err := ctx.UpdateBuffer(buf, 0, make([]byte, 512)); err != nil {
		t.Fatalf("Context.UpdateBuffer failed:\n%v", err)
	}
	ctx.EndTimer(tq)
	us, err := tq.Microseconds(true)
	if err != nil {
		t.Fatalf("TimerQuery.Microseconds mid-frame failed:\n%v", err)
	}
	if us < 0 {
		t.Errorf("TimerQuery.Microseconds:\nhave %v\nwant >= 0", us)
	}
	if err := ctx.FrameEnd(); err != nil {
		t.Fatalf("Context.FrameEnd failed:\n%v", err)
	}
}

// TestUpdateTextureRowPitch feeds UpdateTexture a row pitch
// smaller than the tight row size, which must fail the call.
func TestUpdateTextureRowPitch(t *testing.T) {
	skipNoGPU(t)
	tex, err := gpu.NewTexture(driver.RGBA8un, driver.Dim3D{Width: 64, Height: 64}, 1, 1, 1, driver.UShaderSample)
	if err != nil {
		t.Fatalf("GPU.NewTexture failed:\n%v", err)
	}
	defer tex.Destroy()
	ctx := gpu.Context()
	if err := ctx.FrameBegin(); err != nil {
		t.Fatalf("Context.FrameBegin failed:\n%v", err)
	}
	const pitch = 64*4 - 4
	if err := ctx.UpdateTexture(tex, 0, 0, make([]byte, pitch*64), pitch); err == nil {
		t.Error("Context.UpdateTexture: short row pitch succeeded")
	}
	if err := ctx.UpdateTexture(tex, 0, 0, make([]byte, 64*64*4), 64*4); err != nil {
		t.Fatalf("Context.UpdateTexture failed:\n%v", err)
	}
	if err := ctx.FrameEnd(); err != nil {
		t.Fatalf("Context.FrameEnd failed:\n%v", err)
	}
}

// TestFlush submits mid-frame and keeps recording.
func TestFlush(t *testing.T) {
	skipNoGPU(t)
	buf, err := gpu.NewBuffer(256, false, driver.UShaderRead)
	if err != nil {
		t.Fatalf("GPU.NewBuffer failed:\n%v", err)
	}
	defer buf.Destroy()
	ctx := gpu.Context()
	if err := ctx.FrameBegin(); err != nil {
		t.Fatalf("Context.FrameBegin failed:\n%v", err)
	}
	if err := ctx.UpdateBuffer(buf, 0, make([]byte, 256)); err != nil {
		t.Fatalf("Context.UpdateBuffer failed:\n%v", err)
	}
	if err := gpu.Flush(true); err != nil {
		t.Fatalf("GPU.Flush failed:\n%v", err)
	}
	if err := ctx.UpdateBuffer(buf, 0, make([]byte, 128)); err != nil {
		t.Fatalf("Context.UpdateBuffer failed:\n%v", err)
	}
	if err := ctx.FrameEnd(); err != nil {
		t.Fatalf("Context.FrameEnd failed:\n%v", err)
	}
}
