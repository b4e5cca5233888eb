// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import "testing"

func TestBatchList(t *testing.T) {
	b := newBatchList(8)
	s0, ok := b.alloc(2)
	if !ok || s0 != 0 {
		t.Fatalf("alloc(2)\nhave %d, %v\nwant 0, true", s0, ok)
	}
	s1, ok := b.alloc(2)
	if !ok || s1 != 2 {
		t.Fatalf("alloc(2)\nhave %d, %v\nwant 2, true", s1, ok)
	}
	if !b.inOpen(s0) || !b.inOpen(s1+1) {
		t.Fatalf("inOpen(%d), inOpen(%d)\nhave false\nwant true", s0, s1+1)
	}
	if i := b.find(s0); i != -1 {
		t.Fatalf("find in open batch\nhave %d\nwant -1", i)
	}

	closed, ok := b.end(7, 1000)
	if !ok {
		t.Fatalf("end\nhave !ok\nwant ok")
	}
	if closed.start != 0 || closed.n != 4 || closed.fence != 7 || closed.freq != 1000 {
		t.Fatalf("closed batch\nhave %+v\nwant {0 4 7 1000}", closed)
	}
	if b.inOpen(s0) {
		t.Fatalf("inOpen after end\nhave true\nwant false")
	}
	if i := b.find(s1); i != 0 {
		t.Fatalf("find(%d)\nhave %d\nwant 0", s1, i)
	}
	if b.open.start != 4 {
		t.Fatalf("open.start\nhave %d\nwant 4", b.open.start)
	}

	// Ending an empty batch is a no-op.
	if _, ok := b.end(8, 1000); ok {
		t.Fatalf("end of empty batch\nhave ok\nwant !ok")
	}

	// Filling the rest of the heap wraps the next batch
	// to slot zero.
	if _, ok := b.alloc(4); !ok {
		t.Fatalf("alloc(4)\nhave !ok\nwant ok")
	}
	if _, ok := b.alloc(1); ok {
		t.Fatalf("alloc past the end\nhave ok\nwant !ok")
	}
	if _, ok := b.end(9, 1000); !ok {
		t.Fatalf("end\nhave !ok\nwant ok")
	}
	if b.open.start != 0 {
		t.Fatalf("open.start after wrap\nhave %d\nwant 0", b.open.start)
	}

	b.remove(0)
	if i := b.find(s1); i != -1 {
		t.Fatalf("find after remove\nhave %d\nwant -1", i)
	}
}

func TestTimerMicros(t *testing.T) {
	cases := []struct {
		start, end, freq uint64
		want             float64
	}{
		{0, 1000, 1_000_000, 1000},
		{500, 1500, 1_000_000_000, 1},
		// Clamp to zero on inverted or equal stamps.
		{1000, 1000, 1_000_000, 0},
		{2000, 1000, 1_000_000, 0},
		// No frequency, no result.
		{0, 1000, 0, 0},
	}
	for _, c := range cases {
		if got := timerMicros(c.start, c.end, c.freq); got != c.want {
			t.Fatalf("timerMicros(%d, %d, %d)\nhave %v\nwant %v", c.start, c.end, c.freq, got, c.want)
		}
	}
}
