// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"testing"

	"gviegas/arke/internal/d3d"
)

func TestTransitionNeeded(t *testing.T) {
	cases := []struct {
		before, after d3d.RESOURCE_STATES
		want          bool
	}{
		{d3d.RESOURCE_STATE_COMMON, d3d.RESOURCE_STATE_COMMON, false},
		{d3d.RESOURCE_STATE_RENDER_TARGET, d3d.RESOURCE_STATE_RENDER_TARGET, false},
		{d3d.RESOURCE_STATE_COMMON, d3d.RESOURCE_STATE_RENDER_TARGET, true},
		{d3d.RESOURCE_STATE_RENDER_TARGET, d3d.RESOURCE_STATE_COMMON, true},
		// Depth reads are valid while in depth-write.
		{d3d.RESOURCE_STATE_DEPTH_WRITE, d3d.RESOURCE_STATE_DEPTH_READ, false},
		{d3d.RESOURCE_STATE_DEPTH_READ, d3d.RESOURCE_STATE_DEPTH_WRITE, true},
		// Read-only unions that already cover the request.
		{d3d.RESOURCE_STATE_GENERIC_READ, d3d.RESOURCE_STATE_COPY_SOURCE, false},
		{d3d.RESOURCE_STATE_GENERIC_READ, d3d.RESOURCE_STATE_INDIRECT_ARGUMENT, false},
		{
			d3d.RESOURCE_STATE_PIXEL_SHADER_RESOURCE | d3d.RESOURCE_STATE_NON_PIXEL_SHADER_RESOURCE,
			d3d.RESOURCE_STATE_PIXEL_SHADER_RESOURCE,
			false,
		},
		// Read-only but not covered yet.
		{d3d.RESOURCE_STATE_COPY_SOURCE, d3d.RESOURCE_STATE_INDIRECT_ARGUMENT, true},
		// Write states never merge.
		{d3d.RESOURCE_STATE_UNORDERED_ACCESS, d3d.RESOURCE_STATE_RENDER_TARGET, true},
	}
	for _, c := range cases {
		if got := transitionNeeded(c.before, c.after); got != c.want {
			t.Fatalf("transitionNeeded(%#x, %#x)\nhave %v\nwant %v", c.before, c.after, got, c.want)
		}
	}
}

func TestTransitionTarget(t *testing.T) {
	cases := []struct {
		before, after, want d3d.RESOURCE_STATES
	}{
		{
			d3d.RESOURCE_STATE_COPY_SOURCE,
			d3d.RESOURCE_STATE_INDIRECT_ARGUMENT,
			d3d.RESOURCE_STATE_COPY_SOURCE | d3d.RESOURCE_STATE_INDIRECT_ARGUMENT,
		},
		{
			d3d.RESOURCE_STATE_RENDER_TARGET,
			d3d.RESOURCE_STATE_PIXEL_SHADER_RESOURCE,
			d3d.RESOURCE_STATE_PIXEL_SHADER_RESOURCE,
		},
		{
			d3d.RESOURCE_STATE_COMMON,
			d3d.RESOURCE_STATE_COPY_DEST,
			d3d.RESOURCE_STATE_COPY_DEST,
		},
		// COMMON is not treated as a mergeable read state.
		{
			d3d.RESOURCE_STATE_COMMON,
			d3d.RESOURCE_STATE_COPY_SOURCE,
			d3d.RESOURCE_STATE_COPY_SOURCE,
		},
	}
	for _, c := range cases {
		if got := transitionTarget(c.before, c.after); got != c.want {
			t.Fatalf("transitionTarget(%#x, %#x)\nhave %#x\nwant %#x", c.before, c.after, got, c.want)
		}
	}
}

func TestResState(t *testing.T) {
	s := newResState(4, d3d.RESOURCE_STATE_COMMON)
	if !s.allSame() {
		t.Fatalf("allSame\nhave false\nwant true")
	}
	for i := range 4 {
		if st := s.subState(i); st != d3d.RESOURCE_STATE_COMMON {
			t.Fatalf("subState(%d)\nhave %#x\nwant %#x", i, st, d3d.RESOURCE_STATE_COMMON)
		}
	}

	// Partial update splits the tracker.
	s.setSub(2, d3d.RESOURCE_STATE_RENDER_TARGET)
	if s.allSame() {
		t.Fatalf("allSame after setSub\nhave true\nwant false")
	}
	if st := s.subState(2); st != d3d.RESOURCE_STATE_RENDER_TARGET {
		t.Fatalf("subState(2)\nhave %#x\nwant %#x", st, d3d.RESOURCE_STATE_RENDER_TARGET)
	}
	if st := s.subState(1); st != d3d.RESOURCE_STATE_COMMON {
		t.Fatalf("subState(1)\nhave %#x\nwant %#x", st, d3d.RESOURCE_STATE_COMMON)
	}
	if s.collapse() {
		t.Fatalf("collapse with differing states\nhave true\nwant false")
	}

	// Making every subresource equal allows collapsing.
	for i := range 4 {
		s.setSub(i, d3d.RESOURCE_STATE_COPY_SOURCE)
	}
	if !s.allSame() {
		t.Fatalf("allSame after equalizing\nhave false\nwant true")
	}
	if !s.collapse() {
		t.Fatalf("collapse with equal states\nhave false\nwant true")
	}
	if s.per != nil {
		t.Fatalf("per after collapse\nhave non-nil\nwant nil")
	}

	// setAll collapses unconditionally.
	s.setSub(0, d3d.RESOURCE_STATE_COPY_DEST)
	s.setAll(d3d.RESOURCE_STATE_COMMON)
	if s.per != nil || s.all != d3d.RESOURCE_STATE_COMMON {
		t.Fatalf("setAll\nhave %#x, per=%v\nwant %#x, per=nil", s.all, s.per, d3d.RESOURCE_STATE_COMMON)
	}

	// Single-subresource trackers never split.
	b := newResState(1, d3d.RESOURCE_STATE_GENERIC_READ)
	b.setSub(0, d3d.RESOURCE_STATE_COPY_DEST)
	if b.per != nil {
		t.Fatalf("single-subresource split\nhave non-nil per\nwant nil")
	}
	if st := b.subState(0); st != d3d.RESOURCE_STATE_COPY_DEST {
		t.Fatalf("subState(0)\nhave %#x\nwant %#x", st, d3d.RESOURCE_STATE_COPY_DEST)
	}
}
