// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package bitarr defines a fixed-capacity bit array used to
// implement free lists (e.g., descriptor slot pools).
package bitarr

// A is a fixed-capacity bit array.
// The zero value is an empty array with no capacity;
// use New to create a usable one.
type A struct {
	s   []uint64
	n   int
	rem int
}

// New creates a new bit array with capacity for n bits,
// all unset.
// It panics if n is not positive.
func New(n int) *A {
	if n <= 0 {
		panic("bitarr: non-positive capacity")
	}
	return &A{
		s:   make([]uint64, (n+63)/64),
		n:   n,
		rem: n,
	}
}

// Len returns the number of bits in the array.
func (a *A) Len() int { return a.n }

// Rem returns the number of unset bits in the array.
func (a *A) Rem() int { return a.rem }

// Set sets a given bit.
func (a *A) Set(index int) {
	a.check(index)
	i := index / 64
	b := uint64(1) << (index & 63)
	if a.s[i]&b == 0 {
		a.s[i] |= b
		a.rem--
	}
}

// Unset unsets a given bit.
func (a *A) Unset(index int) {
	a.check(index)
	i := index / 64
	b := uint64(1) << (index & 63)
	if a.s[i]&b != 0 {
		a.s[i] &^= b
		a.rem++
	}
}

// IsSet checks whether a given bit is set.
func (a *A) IsSet(index int) bool {
	a.check(index)
	return a.s[index/64]&(1<<(index&63)) != 0
}

// Search attempts to locate the lowest unset bit in the array.
// If ok is true, then index is a value suitable for use in
// a call to a.Set.
// This method will fail only when a.Rem() == 0.
func (a *A) Search() (index int, ok bool) {
	if a.rem == 0 {
		return
	}
	for i, x := range a.s {
		if x == ^uint64(0) {
			continue
		}
		var b int
		for ; x&(1<<b) != 0; b++ {
		}
		index = i*64 + b
		if index >= a.n {
			// Padding bits of the last word.
			return 0, false
		}
		ok = true
		break
	}
	return
}

// Clear unsets every bit in the array.
func (a *A) Clear() {
	if a.rem == a.n {
		return
	}
	clear(a.s)
	a.rem = a.n
}

func (a *A) check(index int) {
	if index < 0 || index >= a.n {
		panic("bitarr: index out of range")
	}
}
