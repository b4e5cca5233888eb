// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"testing"
)

// tDrv is shared by every device-dependent test.
var tDrv Driver

// openT opens the shared driver, skipping the test when the
// platform has no usable device.
func openT(t *testing.T) *Driver {
	t.Helper()
	if _, err := tDrv.Open(); err != nil {
		t.Skipf("Open: %v", err)
	}
	return &tDrv
}

func TestOpen(t *testing.T) {
	d := openT(t)
	if d.Name() != driverName {
		t.Errorf("Name:\nhave %q\nwant %q", d.Name(), driverName)
	}
	gpu, err := d.Open()
	if err != nil {
		t.Fatalf("Open: second call failed:\n%v", err)
	}
	if gpu != d {
		t.Error("Open: second call returned a different GPU")
	}
	if d.dev == nil || d.qu == nil || d.ctx == nil || d.rootSig == nil {
		t.Error("Open: incomplete driver state")
	}
}

func TestNullDescriptors(t *testing.T) {
	d := openT(t)
	for dim := uint8(dimNone); dim <= dim2DMSArray; dim++ {
		h, err := d.nullSRV(dim)
		if err != nil {
			t.Fatalf("nullSRV(%d) failed:\n%v", dim, err)
		}
		// Descriptors are cached; asking again must return
		// the same slot.
		h2, err := d.nullSRV(dim)
		if err != nil || h2 != h {
			t.Errorf("nullSRV(%d): not cached\nhave %v\nwant %v", dim, h2, h)
		}
		u, err := d.nullUAV(dim)
		if err != nil {
			t.Fatalf("nullUAV(%d) failed:\n%v", dim, err)
		}
		u2, err := d.nullUAV(dim)
		if err != nil || u2 != u {
			t.Errorf("nullUAV(%d): not cached\nhave %v\nwant %v", dim, u2, u)
		}
	}
	// dimNone falls back to the 2D descriptor.
	h0, _ := d.nullSRV(dimNone)
	h2, _ := d.nullSRV(dim2D)
	if h0 != h2 {
		t.Errorf("nullSRV(dimNone):\nhave %v\nwant %v", h0, h2)
	}
}

func TestDefaultSampler(t *testing.T) {
	d := openT(t)
	h, err := d.defaultSampler()
	if err != nil {
		t.Fatalf("defaultSampler failed:\n%v", err)
	}
	h2, err := d.defaultSampler()
	if err != nil || h2 != h {
		t.Errorf("defaultSampler: not cached\nhave %v\nwant %v", h2, h)
	}
}

type testReleaser struct{ n *int }

func (r testReleaser) Release() uint32 {
	*r.n++
	return 0
}

func TestLateRelease(t *testing.T) {
	d := openT(t)
	var n int
	d.release(testReleaser{&n})
	d.release(testReleaser{&n})
	d.flushReleases(false)
	if n != 0 {
		t.Errorf("flushReleases: released too early\nhave %d\nwant 0", n)
	}
	d.flushReleases(true)
	if n != 2 {
		t.Errorf("flushReleases(true):\nhave %d\nwant 2", n)
	}
	if len(d.pending) != 0 {
		t.Errorf("flushReleases(true): pending length\nhave %d\nwant 0", len(d.pending))
	}
}

func TestAdapterSelection(t *testing.T) {
	d := openT(t)
	if !adapterUsable(d.adapter) && !UseWARP {
		t.Error("Open: selected an unusable hardware adapter")
	}
}
