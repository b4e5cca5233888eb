// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package wsi

// keymap translates Win32 scan codes (set 1) into Key
// values. Extended keys are offset by 0x100.
var keymap = [0x160]Key{
	0x01: KeyEsc,
	0x02: Key1,
	0x03: Key2,
	0x04: Key3,
	0x05: Key4,
	0x06: Key5,
	0x07: Key6,
	0x08: Key7,
	0x09: Key8,
	0x0a: Key9,
	0x0b: Key0,
	0x0c: KeyMinus,
	0x0d: KeyEqual,
	0x0e: KeyBackspace,
	0x0f: KeyTab,
	0x10: KeyQ,
	0x11: KeyW,
	0x12: KeyE,
	0x13: KeyR,
	0x14: KeyT,
	0x15: KeyY,
	0x16: KeyU,
	0x17: KeyI,
	0x18: KeyO,
	0x19: KeyP,
	0x1a: KeyLBracket,
	0x1b: KeyRBracket,
	0x1c: KeyReturn,
	0x1d: KeyLCtrl,
	0x1e: KeyA,
	0x1f: KeyS,
	0x20: KeyD,
	0x21: KeyF,
	0x22: KeyG,
	0x23: KeyH,
	0x24: KeyJ,
	0x25: KeyK,
	0x26: KeyL,
	0x27: KeySemicolon,
	0x28: KeyApostrophe,
	0x29: KeyGrave,
	0x2a: KeyLShift,
	0x2b: KeyBackslash,
	0x2c: KeyZ,
	0x2d: KeyX,
	0x2e: KeyC,
	0x2f: KeyV,
	0x30: KeyB,
	0x31: KeyN,
	0x32: KeyM,
	0x33: KeyComma,
	0x34: KeyDot,
	0x35: KeySlash,
	0x36: KeyRShift,
	0x37: KeyPadStar,
	0x38: KeyLAlt,
	0x39: KeySpace,
	0x3a: KeyCapsLock,
	0x3b: KeyF1,
	0x3c: KeyF2,
	0x3d: KeyF3,
	0x3e: KeyF4,
	0x3f: KeyF5,
	0x40: KeyF6,
	0x41: KeyF7,
	0x42: KeyF8,
	0x43: KeyF9,
	0x44: KeyF10,
	0x45: KeyPause,
	0x46: KeyScrollLock,
	0x47: KeyPad7,
	0x48: KeyPad8,
	0x49: KeyPad9,
	0x4a: KeyPadMinus,
	0x4b: KeyPad4,
	0x4c: KeyPad5,
	0x4d: KeyPad6,
	0x4e: KeyPadPlus,
	0x4f: KeyPad1,
	0x50: KeyPad2,
	0x51: KeyPad3,
	0x52: KeyPad0,
	0x53: KeyPadDot,
	0x57: KeyF11,
	0x58: KeyF12,
	0x64: KeyF13,
	0x65: KeyF14,
	0x66: KeyF15,
	0x67: KeyF16,
	0x68: KeyF17,
	0x69: KeyF18,
	0x6a: KeyF19,
	0x6b: KeyF20,
	0x6c: KeyF21,
	0x6d: KeyF22,
	0x6e: KeyF23,
	0x76: KeyF24,

	0x11c: KeyPadEnter,
	0x11d: KeyRCtrl,
	0x135: KeyPadSlash,
	0x137: KeySysrq,
	0x138: KeyRAlt,
	0x145: KeyPadNumLock,
	0x147: KeyHome,
	0x148: KeyUp,
	0x149: KeyPageUp,
	0x14b: KeyLeft,
	0x14d: KeyRight,
	0x14f: KeyEnd,
	0x150: KeyDown,
	0x151: KeyPageDown,
	0x152: KeyInsert,
	0x153: KeyDelete,
	0x15b: KeyLMeta,
	0x15c: KeyRMeta,
}
