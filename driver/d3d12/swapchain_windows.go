// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"golang.org/x/sys/windows"

	"gviegas/arke/driver"
	"gviegas/arke/internal/d3d"
	"gviegas/arke/wsi"
)

// Back buffers present at this format.
const backBufferFmt = driver.BGRA8un

// hwndWindow is implemented by wsi windows on the Win32
// platform.
type hwndWindow interface {
	HWND() windows.HWND
}

// swapchain implements driver.Swapchain.
// Each back buffer is wrapped in a texture that starts in
// the present state; the frame that draws into it moves it
// to render target and FrameEnd moves it back.
type swapchain struct {
	d          *Driver
	win        wsi.Window
	sc         *d3d.IDXGISwapChain3
	flags      uint32
	tearing    bool
	fullscreen bool
	texs       []*texture
	views      []driver.TexView
	index      int
}

// NewSwapchain implements driver.Presenter.
func (d *Driver) NewSwapchain(win wsi.Window, imageCount int) (driver.Swapchain, error) {
	hw, ok := win.(hwndWindow)
	if !ok {
		return nil, driver.ErrWindow
	}
	n := imageCount
	switch {
	case n < 2:
		n = backBufferCount
	case n > 8:
		n = 8
	}
	s := &swapchain{
		d:       d,
		win:     win,
		tearing: d.factory.SupportsTearing(),
	}
	s.flags = d3d.SWAP_CHAIN_FLAG_ALLOW_MODE_SWITCH
	if s.tearing {
		s.flags |= d3d.SWAP_CHAIN_FLAG_ALLOW_TEARING
	}
	desc := d3d.SWAP_CHAIN_DESC1{
		Width:       uint32(max(1, win.Width())),
		Height:      uint32(max(1, win.Height())),
		Format:      convPixelFmt(backBufferFmt),
		SampleDesc:  d3d.SAMPLE_DESC{Count: 1},
		BufferUsage: d3d.USAGE_RENDER_TARGET_OUTPUT,
		BufferCount: uint32(n),
		Scaling:     d3d.SCALING_STRETCH,
		SwapEffect:  d3d.SWAP_EFFECT_FLIP_DISCARD,
		AlphaMode:   d3d.ALPHA_MODE_IGNORE,
		Flags:       s.flags,
	}
	sc, err := d.factory.CreateSwapChainForHwnd(d.qu.q, hw.HWND(), &desc)
	if err != nil {
		return nil, resourceErr(err)
	}
	// Alt+Enter is handled by SetFullscreen instead.
	d.factory.MakeWindowAssociation(hw.HWND(), d3d.MWA_NO_ALT_ENTER)
	s.sc = sc
	if err := s.wrapBuffers(n, int(desc.Width), int(desc.Height)); err != nil {
		sc.Release()
		return nil, err
	}
	d.scs = append(d.scs, s)
	return s, nil
}

// wrapBuffers wraps every back buffer in a texture plus a
// render target view.
func (s *swapchain) wrapBuffers(n, width, height int) error {
	s.texs = make([]*texture, n)
	s.views = make([]driver.TexView, n)
	for i := 0; i < n; i++ {
		res, err := s.sc.GetBuffer(uint32(i))
		if err != nil {
			s.releaseBuffers()
			return resourceErr(err)
		}
		t := &texture{
			d:       s.d,
			res:     res,
			sc:      s,
			state:   newResState(1, d3d.RESOURCE_STATE_PRESENT),
			pf:      backBufferFmt,
			size:    driver.Dim3D{Width: width, Height: height},
			layers:  1,
			levels:  1,
			samples: 1,
			usg:     driver.URenderTarget,
		}
		v, err := t.NewView(driver.IView2D, 0, 1, 0, 1)
		if err != nil {
			res.Release()
			s.releaseBuffers()
			return err
		}
		s.texs[i] = t
		s.views[i] = v
	}
	s.index = int(s.sc.GetCurrentBackBufferIndex())
	return nil
}

// releaseBuffers drops every wrapper and its native buffer
// reference. The swapchain cannot resize while any buffer
// reference is alive, so the release is immediate rather
// than deferred.
func (s *swapchain) releaseBuffers() {
	for i := range s.texs {
		if s.views[i] != nil {
			s.views[i].Destroy()
		}
		if t := s.texs[i]; t != nil {
			if t.res != nil {
				t.res.Release()
			}
			*t = texture{}
		}
	}
	s.texs = nil
	s.views = nil
}

// presentPrep transitions the active back buffer to the
// present state. The context calls it while closing the
// frame so Present itself records nothing.
func (s *swapchain) presentPrep(c *ctxt) {
	if s.index < len(s.texs) {
		t := s.texs[s.index]
		c.transition(t.res, &t.state, d3d.RESOURCE_STATE_PRESENT, -1)
	}
}

// Views implements driver.Swapchain.
func (s *swapchain) Views() []driver.TexView { return s.views }

// Index implements driver.Swapchain.
func (s *swapchain) Index() int { return s.index }

// View implements driver.Swapchain.
func (s *swapchain) View() driver.TexView { return s.views[s.index] }

// Present implements driver.Swapchain.
func (s *swapchain) Present(vsync bool) error {
	sync := uint32(1)
	var flags uint32
	if !vsync {
		sync = 0
		if s.tearing && !s.fullscreen {
			flags = d3d.PRESENT_ALLOW_TEARING
		}
	}
	if err := s.sc.Present(sync, flags); err != nil {
		if err = resourceErr(err); err == driver.ErrFatal {
			return err
		}
		return driver.ErrSwapchain
	}
	s.index = int(s.sc.GetCurrentBackBufferIndex())
	return nil
}

// Recreate implements driver.Swapchain.
func (s *swapchain) Recreate() error {
	if err := s.d.qu.waitIdle(); err != nil {
		return err
	}
	n := len(s.texs)
	s.releaseBuffers()
	width := max(1, s.win.Width())
	height := max(1, s.win.Height())
	err := s.sc.ResizeBuffers(uint32(n), uint32(width), uint32(height), convPixelFmt(backBufferFmt), s.flags)
	if err != nil {
		if err = resourceErr(err); err == driver.ErrFatal {
			return err
		}
		return driver.ErrSwapchain
	}
	return s.wrapBuffers(n, width, height)
}

// SetFullscreen implements driver.Swapchain.
// Flip-model swapchains must recreate their buffers after a
// fullscreen transition.
func (s *swapchain) SetFullscreen(fullscreen bool) error {
	if fullscreen == s.fullscreen {
		return nil
	}
	if err := s.d.qu.waitIdle(); err != nil {
		return err
	}
	if err := s.sc.SetFullscreenState(fullscreen); err != nil {
		if err = resourceErr(err); err == driver.ErrFatal {
			return err
		}
		return driver.ErrSwapchain
	}
	s.fullscreen = fullscreen
	return s.Recreate()
}

// Format implements driver.Swapchain.
func (s *swapchain) Format() driver.PixelFmt { return backBufferFmt }

// Usage implements driver.Swapchain.
func (s *swapchain) Usage() driver.Usage { return driver.URenderTarget }

// Destroy implements driver.Destroyer.
func (s *swapchain) Destroy() {
	if s == nil || s.sc == nil {
		return
	}
	s.d.qu.waitIdle()
	if s.fullscreen {
		s.sc.SetFullscreenState(false)
	}
	s.releaseBuffers()
	s.sc.Release()
	for i := range s.d.scs {
		if s.d.scs[i] == s {
			s.d.scs = append(s.d.scs[:i], s.d.scs[i+1:]...)
			break
		}
	}
	*s = swapchain{}
}
