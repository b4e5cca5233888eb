// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package bitarr

import "testing"

func TestNew(t *testing.T) {
	for _, x := range [...]struct {
		n, wantWords int
	}{
		{1, 1},
		{63, 1},
		{64, 1},
		{65, 2},
		{128, 2},
		{1000, 16},
		{4096, 64},
	} {
		a := New(x.n)
		if n := len(a.s); n != x.wantWords {
			t.Fatalf("New(%d): len(a.s):\nhave %d\nwant %d", x.n, n, x.wantWords)
		}
		if n := a.Len(); n != x.n {
			t.Fatalf("New(%d): Len:\nhave %d\nwant %d", x.n, n, x.n)
		}
		if n := a.Rem(); n != x.n {
			t.Fatalf("New(%d): Rem:\nhave %d\nwant %d", x.n, n, x.n)
		}
	}
}

func TestNewBadCap(t *testing.T) {
	for _, n := range [...]int{0, -1, -64} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("New(%d): should have panicked", n)
				}
			}()
			New(n)
		}()
	}
}

func TestSetUnset(t *testing.T) {
	a := New(200)
	for _, i := range [...]int{0, 1, 63, 64, 65, 127, 128, 199} {
		if a.IsSet(i) {
			t.Fatalf("a.IsSet(%d):\nhave true\nwant false", i)
		}
		a.Set(i)
		if !a.IsSet(i) {
			t.Fatalf("a.IsSet(%d):\nhave false\nwant true", i)
		}
		// Setting a set bit must not change Rem.
		rem := a.Rem()
		a.Set(i)
		if n := a.Rem(); n != rem {
			t.Fatalf("a.Rem:\nhave %d\nwant %d", n, rem)
		}
	}
	if n := a.Rem(); n != 200-8 {
		t.Fatalf("a.Rem:\nhave %d\nwant %d", n, 200-8)
	}
	for _, i := range [...]int{0, 1, 63, 64, 65, 127, 128, 199} {
		a.Unset(i)
		if a.IsSet(i) {
			t.Fatalf("a.IsSet(%d):\nhave true\nwant false", i)
		}
		rem := a.Rem()
		a.Unset(i)
		if n := a.Rem(); n != rem {
			t.Fatalf("a.Rem:\nhave %d\nwant %d", n, rem)
		}
	}
	if n := a.Rem(); n != 200 {
		t.Fatalf("a.Rem:\nhave %d\nwant %d", n, 200)
	}
}

func TestSearch(t *testing.T) {
	a := New(130)
	// Search must return the lowest unset bit, so releasing
	// and reacquiring a slot yields the same index.
	for i := 0; i < 130; i++ {
		idx, ok := a.Search()
		if !ok {
			t.Fatalf("a.Search:\nhave _, false\nwant %d, true", i)
		}
		if idx != i {
			t.Fatalf("a.Search:\nhave %d\nwant %d", idx, i)
		}
		a.Set(idx)
	}
	if _, ok := a.Search(); ok {
		t.Fatal("a.Search:\nhave _, true\nwant _, false")
	}
	a.Unset(77)
	if idx, ok := a.Search(); !ok || idx != 77 {
		t.Fatalf("a.Search:\nhave %d, %t\nwant 77, true", idx, ok)
	}
	a.Set(77)
	if _, ok := a.Search(); ok {
		t.Fatal("a.Search:\nhave _, true\nwant _, false")
	}
}

func TestClear(t *testing.T) {
	a := New(99)
	for i := 0; i < 99; i += 3 {
		a.Set(i)
	}
	a.Clear()
	if n := a.Rem(); n != 99 {
		t.Fatalf("a.Rem:\nhave %d\nwant 99", n)
	}
	for i := 0; i < 99; i++ {
		if a.IsSet(i) {
			t.Fatalf("a.IsSet(%d):\nhave true\nwant false", i)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	a := New(64)
	for _, i := range [...]int{-1, 64, 1 << 31} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("a.Set(%d): should have panicked", i)
				}
			}()
			a.Set(i)
		}()
	}
}
