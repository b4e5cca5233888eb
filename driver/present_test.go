// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package driver_test

import (
	"testing"

	"gviegas/arke/driver"
	"gviegas/arke/wsi"
)

// TestPresent clears and presents a few frames.
// It needs a window system in addition to a device, so it
// also skips when window creation fails.
func TestPresent(t *testing.T) {
	skipNoGPU(t)
	pres, ok := gpu.(driver.Presenter)
	if !ok {
		t.Skip("GPU cannot present")
	}
	win, err := wsi.NewWindow(480, 300, "TestPresent")
	if err != nil {
		t.Skipf("wsi.NewWindow failed: %v", err)
	}
	defer win.Close()
	if err := win.Map(); err != nil {
		t.Skipf("wsi.Window.Map failed: %v", err)
	}
	sc, err := pres.NewSwapchain(win, 3)
	if err != nil {
		t.Fatalf("Presenter.NewSwapchain failed:\n%v", err)
	}
	defer sc.Destroy()
	if n := len(sc.Views()); n < 2 {
		t.Fatalf("Swapchain.Views: length\nhave %d\nwant >= 2", n)
	}
	if sc.Format().IsInternal() {
		t.Error("Swapchain.Format: internal format")
	}
	if sc.Usage()&driver.URenderTarget == 0 {
		t.Error("Swapchain.Usage: missing URenderTarget")
	}

	ctx := gpu.Context()
	colors := [...][4]float32{
		{1, 0, 0, 1},
		{0, 1, 0, 1},
		{0, 0, 1, 1},
	}
	for i, color := range colors {
		if err := ctx.FrameBegin(); err != nil {
			t.Fatalf("Context.FrameBegin failed:\n%v", err)
		}
		if idx := sc.Index(); sc.View() != sc.Views()[idx] {
			t.Error("Swapchain.View: mismatch with Views[Index]")
		}
		ctx.Clear(sc.View(), color)
		if err := ctx.FrameEnd(); err != nil {
			t.Fatalf("Context.FrameEnd failed:\n%v", err)
		}
		if err := sc.Present(true); err != nil {
			t.Fatalf("Swapchain.Present failed on frame %d:\n%v", i, err)
		}
	}

	// Shrinking the window invalidates the swapchain's
	// views; Recreate must produce a working set again.
	if err := win.Resize(400, 240); err == nil {
		if err := sc.Recreate(); err != nil {
			t.Fatalf("Swapchain.Recreate failed:\n%v", err)
		}
		if err := ctx.FrameBegin(); err != nil {
			t.Fatalf("Context.FrameBegin failed:\n%v", err)
		}
		ctx.Clear(sc.View(), [4]float32{0, 0, 0, 1})
		if err := ctx.FrameEnd(); err != nil {
			t.Fatalf("Context.FrameEnd failed:\n%v", err)
		}
		if err := sc.Present(false); err != nil {
			t.Fatalf("Swapchain.Present failed after Recreate:\n%v", err)
		}
	}
}
