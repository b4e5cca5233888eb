// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"fmt"
	"testing"
)

func TestWSI(t *testing.T) {
	SetWindowHandler(E{})
	SetKeyboardHandler(E{})
	SetPointerHandler(E{})
	switch PlatformInUse() {
	case None:
		win, err := NewWindow(480, 360, "Will fail")
		if win != nil || err != errMissing {
			t.Fatalf("NewWindow: win, err\nhave %v, %v\nwant nil, %v", win, err, errMissing)
		}
		if n := len(Windows()); n != 0 {
			t.Fatalf("len(Windows())\nhave %v\nwant 0", n)
		}
		// Dummy Dispatch does nothing.
		Dispatch()
		// Dummy SetAppName does nothing.
		SetAppName("Won't be displayed")
	default:
		win, err := NewWindow(480, 360, "My window")
		if err != nil {
			t.Logf("NewWindow (error): %v", err)
			return
		}
		if win == nil {
			t.Fatalf("NewWindow: win, err\nhave %v, nil\n want non-nil, nil", win)
		}
		if n := len(Windows()); n != 1 {
			t.Fatalf("len(Windows())\nhave %v\nwant 1", n)
		}
		win.Unmap()
		win.Map()
		Dispatch()
		win.Resize(600, 300)
		win.SetTitle("My window, renamed")
		if s := AppName(); s != "" {
			t.Fatalf("AppName\nhave %s\nwant \"\"", s)
		}
		SetAppName("My app")
		if s := AppName(); s != "My app" {
			t.Fatalf("AppName\nhave %s\nwant My app", s)
		}
		Dispatch()
		win.Unmap()
		win.Close()
		if n := len(Windows()); n != 0 {
			t.Fatalf("len(Windows())\nhave %v\nwant 0", n)
		}
	}
}

func TestKeyFrom(t *testing.T) {
	if k := keyFrom(1 << 20); k != KeyUnknown {
		t.Fatalf("keyFrom(1<<20)\nhave %v\nwant %v", k, KeyUnknown)
	}
	for code := range len(keymap) {
		if k := keyFrom(code); k != keymap[code] {
			t.Fatalf("keyFrom(%d)\nhave %v\nwant %v", code, k, keymap[code])
		}
	}
}

type E struct{}

func (E) WindowClose(win Window) {
	fmt.Printf("E.WindowClose: %v\n", win)
}

func (E) WindowResize(win Window, newWidth, newHeight int) {
	fmt.Printf("E.WindowResize: %v, %d, %d\n", win, newWidth, newHeight)
}

func (E) KeyboardIn(win Window) {
	fmt.Printf("E.KeyboardIn: %v\n", win)
}

func (E) KeyboardOut(win Window) {
	fmt.Printf("E.KeyboardOut: %v\n", win)
}

func (E) KeyboardKey(key Key, pressed bool, modMask Modifier) {
	fmt.Printf("E.KeyboardKey: %d, %t, %x\n", key, pressed, modMask)
}

func (E) PointerIn(win Window, x, y int) {
	fmt.Printf("E.PointerIn: %v, %d, %d\n", win, x, y)
}

func (E) PointerOut(win Window) {
	fmt.Printf("E.PointerOut: %v\n", win)
}

func (E) PointerMotion(newX, newY int) {
	fmt.Printf("E.PointerMotion: %d, %d\n", newX, newY)
}

func (E) PointerButton(btn Button, pressed bool, x, y int) {
	fmt.Printf("E.PointerButton: %d, %t, %d, %d\n", btn, pressed, x, y)
}
