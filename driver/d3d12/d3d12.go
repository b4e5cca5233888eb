// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package d3d12 implements driver interfaces using the
// Direct3D 12 API.
package d3d12

import (
	"errors"

	"gviegas/arke/driver"
	"gviegas/arke/internal/d3d"
)

const driverName = "direct3d 12"

var errInvalidParam = errors.New("d3d12: invalid parameter")

// resourceErr maps a native failure to the closest driver
// sentinel error.
func resourceErr(err error) error {
	var de *d3d.Error
	if !errors.As(err, &de) {
		return err
	}
	switch de.Code {
	case d3d.E_OUTOFMEMORY:
		return driver.ErrNoDeviceMemory
	case d3d.DXGI_ERROR_DEVICE_REMOVED, d3d.DXGI_ERROR_DEVICE_HUNG, d3d.DXGI_ERROR_DEVICE_RESET, d3d.DXGI_ERROR_DRIVER_ERROR:
		return driver.ErrFatal
	}
	return err
}

// Binding model limits.
// Every shader compiled for this driver targets the same
// root signature layout: one root CBV per constant buffer
// slot, one descriptor table each for shader resources,
// unordered access views and dynamic samplers, plus a
// fixed set of static samplers occupying the first
// sampler slots.
const (
	maxCB          = 4
	maxSR          = 16
	maxUA          = 4
	maxSampler     = 16
	staticSamplers = 6
)

// Draw limits.
const (
	maxColorTargets = 8
	maxVertexIn     = 16
)

// Size of the pending resource barrier staging array.
// Small enough to live in the context, large enough that a
// typical draw flushes at most once.
const rbBufferSize = 16

// Number of slots in each descriptor pool heap.
const descHeapLen = 256

// Sizes of the shader-visible ring heaps. The rings must
// hold at least one frame's worth of descriptor tables,
// since wrapped space is reused without synchronization.
const (
	csuRingLen     = 65536
	samplerRingLen = 2048
)

// Upload memory tuning.
const (
	// Size of a default upload page. Larger requests get
	// a dedicated oversized page.
	uploadPageLen = 4 << 20
	// Generations after which a used page returns to the
	// free list.
	pageRetireAge = 3
	// Further generations after which a free page is
	// destroyed.
	pageUnusedAge = 60
)

// Number of slots in each query heap.
const queryHeapLen = 256

// Swapchain back-buffer count.
const backBufferCount = 3

// Frames to wait before releasing a native object that may
// still be referenced by in-flight command lists.
const releaseSafeFrames = 10
