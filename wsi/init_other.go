// Copyright 2024 Gustavo C. Viegas. All rights reserved.

//go:build !windows

package wsi

func init() {
	initDummy()
}
