// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package driver_test

import (
	"log"
	"testing"

	"gviegas/arke/driver"
	_ "gviegas/arke/driver/d3d12"
)

var (
	drv driver.Driver
	gpu driver.GPU
)

// Select a driver to use.
// Backends register themselves from platform-gated init
// functions, so on platforms with no backend the list is
// empty and device-dependent tests skip themselves.
func init() {
	drivers := driver.Drivers()
drvLoop:
	for i := range drivers {
		switch drivers[i].Name() {
		case "direct3d 12":
			drv = drivers[i]
			break drvLoop
		}
	}
	if drv == nil {
		return
	}
	var err error
	if gpu, err = drv.Open(); err != nil {
		log.Printf("[!] drv.Open: %v", err)
		drv = nil
		gpu = nil
	}
}

// skipNoGPU skips tests that need an open device.
func skipNoGPU(t *testing.T) {
	t.Helper()
	if gpu == nil {
		t.Skip("no GPU available")
	}
}
