// Copyright 2024 Gustavo C. Viegas. All rights reserved.

//go:build !windows

package wsi

// No platform in use.
var keymap [0]Key
