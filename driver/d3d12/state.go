// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import "gviegas/arke/internal/d3d"

// readOnlyStates is the union of every read-only resource
// state. Transitions between subsets of this mask can be
// merged by OR-ing rather than serialized.
const readOnlyStates = d3d.RESOURCE_STATE_VERTEX_AND_CONSTANT_BUFFER |
	d3d.RESOURCE_STATE_INDEX_BUFFER |
	d3d.RESOURCE_STATE_DEPTH_READ |
	d3d.RESOURCE_STATE_NON_PIXEL_SHADER_RESOURCE |
	d3d.RESOURCE_STATE_PIXEL_SHADER_RESOURCE |
	d3d.RESOURCE_STATE_INDIRECT_ARGUMENT |
	d3d.RESOURCE_STATE_COPY_SOURCE |
	d3d.RESOURCE_STATE_RESOLVE_SOURCE

// transitionNeeded returns whether a transition barrier is
// required to go from state before to state after.
// Depth reads are allowed while the resource remains in the
// depth-write state, and a resource already readable for
// every bit of a read-only after state needs no barrier.
func transitionNeeded(before, after d3d.RESOURCE_STATES) bool {
	if before == after {
		return false
	}
	if before == d3d.RESOURCE_STATE_DEPTH_WRITE && after == d3d.RESOURCE_STATE_DEPTH_READ {
		return false
	}
	if before&^readOnlyStates == 0 && after&^readOnlyStates == 0 && before&after == after {
		return false
	}
	return true
}

// transitionTarget returns the state to transition to when
// moving from before to after. Read-only states merge by OR
// so that a resource read as, say, both a shader resource
// and an indirect argument keeps both bits.
func transitionTarget(before, after d3d.RESOURCE_STATES) d3d.RESOURCE_STATES {
	if before != d3d.RESOURCE_STATE_COMMON &&
		before&^readOnlyStates == 0 && after&^readOnlyStates == 0 {
		return before | after
	}
	return after
}

// resState tracks the state of every subresource of one
// resource. It starts in compact mode, holding a single
// state for the whole resource, and splits into
// per-subresource storage on the first partial update.
type resState struct {
	nsub int
	all  d3d.RESOURCE_STATES
	// Non-nil in per-subresource mode.
	per []d3d.RESOURCE_STATES
}

// newResState creates a tracker for nsub subresources,
// all starting in the given state.
func newResState(nsub int, initial d3d.RESOURCE_STATES) resState {
	return resState{
		nsub: nsub,
		all:  initial,
	}
}

// subState returns the state of the i-th subresource.
func (s *resState) subState(i int) d3d.RESOURCE_STATES {
	if s.per != nil {
		return s.per[i]
	}
	return s.all
}

// allSame returns whether every subresource is in the
// same state.
func (s *resState) allSame() bool {
	if s.per == nil {
		return true
	}
	for _, st := range s.per[1:] {
		if st != s.per[0] {
			return false
		}
	}
	return true
}

// setAll sets the state of the whole resource, collapsing
// back to compact mode.
func (s *resState) setAll(st d3d.RESOURCE_STATES) {
	s.all = st
	s.per = nil
}

// setSub sets the state of the i-th subresource, splitting
// into per-subresource mode if needed.
func (s *resState) setSub(i int, st d3d.RESOURCE_STATES) {
	if s.per == nil {
		if s.nsub == 1 {
			s.all = st
			return
		}
		s.per = make([]d3d.RESOURCE_STATES, s.nsub)
		for j := range s.per {
			s.per[j] = s.all
		}
	}
	s.per[i] = st
}

// collapse returns to compact mode when every subresource
// holds the same state. It reports whether the tracker is
// compact afterwards.
func (s *resState) collapse() bool {
	if s.per == nil {
		return true
	}
	if !s.allSame() {
		return false
	}
	s.all = s.per[0]
	s.per = nil
	return true
}
