// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import "testing"

func TestRingAlloc(t *testing.T) {
	r := ringAlloc{len: 8}
	for i, n := range [...]int{2, 3, 2} {
		want := [...]int{0, 2, 5}[i]
		if off := r.alloc(n); off != want {
			t.Fatalf("alloc(%d)\nhave %d\nwant %d", n, off, want)
		}
	}
	// 7 slots used; a request of 2 does not fit and wraps.
	if off := r.alloc(2); off != 0 {
		t.Fatalf("alloc(2) at cursor 7\nhave %d\nwant 0", off)
	}
	if r.cur != 2 {
		t.Fatalf("cur\nhave %d\nwant 2", r.cur)
	}
}

func TestRingAllocFull(t *testing.T) {
	// A request of exactly the ring's length wraps to zero
	// and returns zero, from any cursor position.
	r := ringAlloc{len: 8}
	if off := r.alloc(8); off != 0 {
		t.Fatalf("alloc(len) from 0\nhave %d\nwant 0", off)
	}
	if off := r.alloc(8); off != 0 {
		t.Fatalf("alloc(len) from len\nhave %d\nwant 0", off)
	}
	r.reset()
	r.alloc(3)
	if off := r.alloc(8); off != 0 {
		t.Fatalf("alloc(len) from 3\nhave %d\nwant 0", off)
	}
}
