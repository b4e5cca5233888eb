// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"errors"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetModuleHandleW = kernel32.NewProc("GetModuleHandleW")

	procRegisterClassExW = user32.NewProc("RegisterClassExW")
	procUnregisterClassW = user32.NewProc("UnregisterClassW")
	procCreateWindowExW  = user32.NewProc("CreateWindowExW")
	procDestroyWindow    = user32.NewProc("DestroyWindow")
	procDefWindowProcW   = user32.NewProc("DefWindowProcW")
	procShowWindow       = user32.NewProc("ShowWindow")
	procSetWindowTextW   = user32.NewProc("SetWindowTextW")
	procSetWindowPos     = user32.NewProc("SetWindowPos")
	procAdjustWindowRect = user32.NewProc("AdjustWindowRect")
	procGetClientRect    = user32.NewProc("GetClientRect")
	procLoadCursorW      = user32.NewProc("LoadCursorW")
	procPeekMessageW     = user32.NewProc("PeekMessageW")
	procTranslateMessage = user32.NewProc("TranslateMessage")
	procDispatchMessageW = user32.NewProc("DispatchMessageW")
	procGetKeyState      = user32.NewProc("GetKeyState")
)

const (
	wsOverlappedWindow = 0x00cf0000
	swNormal           = 1
	swHide             = 0
	csHVRedraw         = 0x0003
	idcArrow           = 32512
	pmRemove           = 0x0001
	swpNoMove          = 0x0002
	swpNoZOrder        = 0x0004

	wmSize        = 0x0005
	wmSetFocus    = 0x0007
	wmKillFocus   = 0x0008
	wmClose       = 0x0010
	wmKeyDown     = 0x0100
	wmKeyUp       = 0x0101
	wmSysKeyDown  = 0x0104
	wmSysKeyUp    = 0x0105
	wmMouseMove   = 0x0200
	wmLButtonDown = 0x0201
	wmLButtonUp   = 0x0202
	wmRButtonDown = 0x0204
	wmRButtonUp   = 0x0205
	wmMButtonDown = 0x0207
	wmMButtonUp   = 0x0208
	wmMouseLeave  = 0x02a3
)

type wndClassExW struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     windows.Handle
	hIcon         windows.Handle
	hCursor       windows.Handle
	hbrBackground windows.Handle
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       windows.Handle
}

type point struct {
	x, y int32
}

type msg struct {
	hwnd    windows.HWND
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      point
	_       uint32
}

type rect struct {
	left, top, right, bottom int32
}

// Handle to self.
var hinst windows.Handle

// Class name.
var className *uint16

// Windows indexed by native handle, for event dispatch.
var win32Windows = map[windows.HWND]*windowWin32{}

// initWin32 initializes the Win32 platform.
func initWin32() error {
	h, _, _ := procGetModuleHandleW.Call(0)
	if h == 0 {
		return errors.New("failed to obtain Win32 instance handle")
	}
	hinst = windows.Handle(h)
	className, _ = windows.UTF16PtrFromString("wsi")
	cursor, _, _ := procLoadCursorW.Call(0, idcArrow)
	wc := wndClassExW{
		cbSize:        uint32(unsafe.Sizeof(wndClassExW{})),
		style:         csHVRedraw,
		lpfnWndProc:   syscall.NewCallback(wndProcWin32),
		hInstance:     hinst,
		hCursor:       windows.Handle(cursor),
		lpszClassName: className,
	}
	if r, _, _ := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc))); r == 0 {
		className = nil
		hinst = 0
		return errors.New("failed to register Win32 class")
	}
	newWindow = newWindowWin32
	dispatch = dispatchWin32
	setAppName = setAppNameWin32
	platform = Win32
	return nil
}

// deinitWin32 deinitializes the Win32 platform.
func deinitWin32() {
	if windowCount > 0 {
		for _, w := range createdWindows {
			if w != nil {
				w.Close()
			}
		}
	}
	if hinst != 0 {
		if className != nil {
			procUnregisterClassW.Call(uintptr(unsafe.Pointer(className)), uintptr(hinst))
			className = nil
		}
		hinst = 0
	}
	initDummy()
}

// windowWin32 implements Window.
type windowWin32 struct {
	hwnd   windows.HWND
	width  int
	height int
	title  string
	mapped bool
}

// newWindowWin32 creates a new window.
func newWindowWin32(width, height int, title string) (Window, error) {
	// The given size refers to the drawable area.
	r := rect{right: int32(width), bottom: int32(height)}
	procAdjustWindowRect.Call(uintptr(unsafe.Pointer(&r)), wsOverlappedWindow, 0)
	ptitle, _ := windows.UTF16PtrFromString(title)
	const useDefault = 0x80000000
	hwnd, _, _ := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(ptitle)),
		wsOverlappedWindow,
		useDefault, useDefault,
		uintptr(r.right-r.left), uintptr(r.bottom-r.top),
		0, 0, uintptr(hinst), 0)
	if hwnd == 0 {
		return nil, errors.New("failed to create Win32 window")
	}
	w := &windowWin32{
		hwnd:   windows.HWND(hwnd),
		width:  width,
		height: height,
		title:  title,
	}
	win32Windows[w.hwnd] = w
	return w, nil
}

// HWND returns the native window handle.
// It is meant for driver implementations that need the
// handle to create a swapchain.
func (w *windowWin32) HWND() windows.HWND { return w.hwnd }

// Map makes the window visible.
func (w *windowWin32) Map() error {
	if w.mapped {
		return nil
	}
	procShowWindow.Call(uintptr(w.hwnd), swNormal)
	w.mapped = true
	return nil
}

// Unmap hides the window.
func (w *windowWin32) Unmap() error {
	if !w.mapped {
		return nil
	}
	procShowWindow.Call(uintptr(w.hwnd), swHide)
	w.mapped = false
	return nil
}

// Resize resizes the window.
func (w *windowWin32) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("invalid window size")
	}
	r := rect{right: int32(width), bottom: int32(height)}
	procAdjustWindowRect.Call(uintptr(unsafe.Pointer(&r)), wsOverlappedWindow, 0)
	res, _, _ := procSetWindowPos.Call(uintptr(w.hwnd), 0, 0, 0,
		uintptr(r.right-r.left), uintptr(r.bottom-r.top),
		swpNoMove|swpNoZOrder)
	if res == 0 {
		return errors.New("failed to resize Win32 window")
	}
	w.width = width
	w.height = height
	return nil
}

// SetTitle sets the window's title.
func (w *windowWin32) SetTitle(title string) error {
	ptitle, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	if res, _, _ := procSetWindowTextW.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(ptitle))); res == 0 {
		return errors.New("failed to set Win32 window title")
	}
	w.title = title
	return nil
}

// Close closes the window.
func (w *windowWin32) Close() {
	if w == nil {
		return
	}
	if w.hwnd != 0 {
		delete(win32Windows, w.hwnd)
		procDestroyWindow.Call(uintptr(w.hwnd))
		closeWindow(w)
	}
	*w = windowWin32{}
}

// Width returns the window's width.
func (w *windowWin32) Width() int {
	var r rect
	if res, _, _ := procGetClientRect.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(&r))); res != 0 {
		w.width = int(r.right - r.left)
	}
	return w.width
}

// Height returns the window's height.
func (w *windowWin32) Height() int {
	var r rect
	if res, _, _ := procGetClientRect.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(&r))); res != 0 {
		w.height = int(r.bottom - r.top)
	}
	return w.height
}

// Title returns the window's title.
func (w *windowWin32) Title() string {
	return w.title
}

// dispatchWin32 dispatches queued events.
func dispatchWin32() {
	var m msg
	for {
		r, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove)
		if r == 0 {
			break
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}

func wndProcWin32(hwnd windows.HWND, m uint32, wprm, lprm uintptr) uintptr {
	win := win32Windows[hwnd]
	switch m {
	case wmClose:
		if win != nil && windowHandler != nil {
			windowHandler.WindowClose(win)
		}
		return 0
	case wmSize:
		if win != nil {
			win.width = int(uint32(lprm) & 0xffff)
			win.height = int(uint32(lprm) >> 16)
			if windowHandler != nil {
				windowHandler.WindowResize(win, win.width, win.height)
			}
		}
		return 0
	case wmSetFocus:
		if win != nil && keyboardHandler != nil {
			keyboardHandler.KeyboardIn(win)
		}
		return 0
	case wmKillFocus:
		if win != nil && keyboardHandler != nil {
			keyboardHandler.KeyboardOut(win)
		}
		return 0
	case wmKeyDown, wmSysKeyDown, wmKeyUp, wmSysKeyUp:
		if keyboardHandler != nil {
			code := int(lprm>>16) & 0xff
			if lprm&(1<<24) != 0 {
				// Extended key.
				code |= 0x100
			}
			pressed := m == wmKeyDown || m == wmSysKeyDown
			keyboardHandler.KeyboardKey(keyFrom(code), pressed, modMaskWin32())
		}
		return 0
	case wmMouseMove:
		if pointerHandler != nil {
			x := int(int16(lprm & 0xffff))
			y := int(int16(lprm >> 16))
			pointerHandler.PointerMotion(x, y)
		}
		return 0
	case wmLButtonDown, wmLButtonUp, wmRButtonDown, wmRButtonUp, wmMButtonDown, wmMButtonUp:
		if pointerHandler != nil {
			var btn Button
			switch m {
			case wmLButtonDown, wmLButtonUp:
				btn = BtnLeft
			case wmRButtonDown, wmRButtonUp:
				btn = BtnRight
			default:
				btn = BtnMiddle
			}
			pressed := m == wmLButtonDown || m == wmRButtonDown || m == wmMButtonDown
			x := int(int16(lprm & 0xffff))
			y := int(int16(lprm >> 16))
			pointerHandler.PointerButton(btn, pressed, x, y)
		}
		return 0
	}
	r, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(m), wprm, lprm)
	return r
}

func modMaskWin32() Modifier {
	const (
		vkShift   = 0x10
		vkControl = 0x11
		vkMenu    = 0x12
		vkCapital = 0x14
	)
	keyState := func(vk uintptr) int16 {
		r, _, _ := procGetKeyState.Call(vk)
		return int16(r)
	}
	var mod Modifier
	if keyState(vkShift) < 0 {
		mod |= ModShift
	}
	if keyState(vkControl) < 0 {
		mod |= ModCtrl
	}
	if keyState(vkMenu) < 0 {
		mod |= ModAlt
	}
	if keyState(vkCapital)&1 != 0 {
		mod |= ModCapsLock
	}
	return mod
}

// setAppNameWin32 updates the string used to identify the
// application.
func setAppNameWin32(s string) {
	for _, w := range win32Windows {
		if w.title == "" {
			w.SetTitle(s)
		}
	}
}
