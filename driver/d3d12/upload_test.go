// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import "testing"

func TestPageAlloc(t *testing.T) {
	p := pageMeta{len: 1024}
	off, ok := p.alloc(100, 256)
	if !ok || off != 0 {
		t.Fatalf("alloc(100, 256)\nhave %d, %v\nwant 0, true", off, ok)
	}
	off, ok = p.alloc(100, 256)
	if !ok || off != 256 {
		t.Fatalf("alloc(100, 256)\nhave %d, %v\nwant 256, true", off, ok)
	}
	if off&255 != 0 {
		t.Fatalf("alignment\nhave %d\nwant multiple of 256", off)
	}
	// Exactly filling the page succeeds.
	off, ok = p.alloc(1024-512, 512)
	if !ok || off != 512 {
		t.Fatalf("alloc(512, 512)\nhave %d, %v\nwant 512, true", off, ok)
	}
	// The page is exhausted now.
	if _, ok = p.alloc(1, 1); ok {
		t.Fatalf("alloc(1, 1) on full page\nhave ok\nwant !ok")
	}
}

func TestPageAllocWholePage(t *testing.T) {
	// An aligned allocation of the whole page consumes it
	// in one hit.
	p := pageMeta{len: uploadPageLen}
	off, ok := p.alloc(uploadPageLen, 512)
	if !ok || off != 0 {
		t.Fatalf("alloc(pageLen, 512)\nhave %d, %v\nwant 0, true", off, ok)
	}
	if _, ok = p.alloc(1, 1); ok {
		t.Fatalf("alloc after whole-page hit\nhave ok\nwant !ok")
	}
}

func TestPageAging(t *testing.T) {
	const last = 10
	if pageExpired(last, last+pageRetireAge) {
		t.Fatalf("pageExpired at retire boundary\nhave true\nwant false")
	}
	if !pageExpired(last, last+pageRetireAge+1) {
		t.Fatalf("pageExpired past retire boundary\nhave false\nwant true")
	}
	if pageStale(last, last+pageRetireAge+pageUnusedAge) {
		t.Fatalf("pageStale at stale boundary\nhave true\nwant false")
	}
	if !pageStale(last, last+pageRetireAge+pageUnusedAge+1) {
		t.Fatalf("pageStale past stale boundary\nhave false\nwant true")
	}
}

func TestAlignUp(t *testing.T) {
	cases := []struct {
		x, a, want int64
	}{
		{0, 256, 0},
		{1, 256, 256},
		{256, 256, 256},
		{257, 256, 512},
		{511, 512, 512},
	}
	for _, c := range cases {
		if got := alignUp(c.x, c.a); got != c.want {
			t.Fatalf("alignUp(%d, %d)\nhave %d\nwant %d", c.x, c.a, got, c.want)
		}
	}
}
