// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"errors"

	"gviegas/arke/wsi"
)

// ErrCannotPresent means that the driver and/or device do not
// support presentation.
var ErrCannotPresent = errors.New("driver: presentation not supported")

// ErrWindow represents an error related to a specific window.
// This error usually indicates that a window misconfiguration
// is preventing correct operation. For instance, the driver
// may require a visible window to create a swapchain.
var ErrWindow = errors.New("driver: window-related error")

// ErrSwapchain represents an error related to a specific
// swapchain.
// This error usually indicates that changes to the window or
// display made the swapchain unusable.
var ErrSwapchain = errors.New("driver: swapchain-related error")

// Presenter is the interface that a GPU may implement
// to enable presentation on a display.
type Presenter interface {
	// NewSwapchain creates a new swapchain.
	// Only one swapchain can be associated with a specific
	// wsi.Window at a time.
	NewSwapchain(win wsi.Window, imageCount int) (Swapchain, error)
}

// Swapchain is the interface that defines a n-buffered
// swapchain for presentation.
// To present, one draws into the view returned by View
// (usually through Context.SetRenderTarget), submits the
// frame with Context.FrameEnd and then calls Present.
type Swapchain interface {
	Destroyer

	// Views returns the list of texture views that
	// comprises the swapchain.
	// This value remains unchanged as long as the
	// swapchain's Destroy or Recreate methods are
	// not called.
	Views() []TexView

	// Index returns the index in Views of the back-buffer
	// that the next Present call will show.
	Index() int

	// View returns the currently writable back-buffer
	// view. It is equivalent to Views()[Index()].
	View() TexView

	// Present presents the current back-buffer and
	// advances Index.
	// With vsync unset, presentation does not wait for
	// the vertical blank; if the driver supports screen
	// tearing and the swapchain is windowed, the frame
	// may be shown immediately.
	// The frame's commands must have been submitted
	// (Context.FrameEnd) before this call.
	Present(vsync bool) error

	// Recreate recreates the swapchain, taking the
	// current window size.
	// It is meant to be called when the window is
	// resized or in response to a ErrSwapchain error.
	// Views created from the swapchain are invalidated.
	Recreate() error

	// SetFullscreen switches between fullscreen and
	// windowed presentation.
	// It blocks until the GPU is idle and recreates
	// the back-buffers.
	SetFullscreen(fullscreen bool) error

	// Format returns the texture views' PixelFmt.
	Format() PixelFmt

	// Usage returns the texture views' Usage.
	// URenderTarget is guaranteed to be set.
	Usage() Usage
}
