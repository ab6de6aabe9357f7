// pool_test.go
//
// Copyright (C) 2024 dawgdict contributors

package dawgdict

import "testing"

func TestPoolPushIndexLen(t *testing.T) {
	var p Pool[int]
	for i := 0; i < 10; i++ {
		if got := p.Push(i * 2); got != BaseType(i) {
			t.Errorf("Push returned index %v, want %v", got, i)
		}
	}
	if p.Len() != 10 {
		t.Errorf("Len() == %v, want 10", p.Len())
	}
	for i := BaseType(0); i < 10; i++ {
		if got := *p.Index(i); got != int(i)*2 {
			t.Errorf("Index(%v) == %v, want %v", i, got, int(i)*2)
		}
	}
}

func TestPoolGetOutOfRange(t *testing.T) {
	var p Pool[int]
	p.Push(1)
	if got := p.Get(0); got == nil || *got != 1 {
		t.Errorf("Get(0) == %v, want pointer to 1", got)
	}
	if got := p.Get(5); got != nil {
		t.Errorf("Get(5) == %v, want nil", got)
	}
}

func TestPoolResizeGrowAndShrink(t *testing.T) {
	var p Pool[int]
	p.Resize(5, 7)
	if p.Len() != 5 {
		t.Errorf("Len() == %v, want 5", p.Len())
	}
	for i := BaseType(0); i < 5; i++ {
		if got := *p.Index(i); got != 7 {
			t.Errorf("Index(%v) == %v, want 7", i, got)
		}
	}
	p.Resize(2, 0)
	if p.Len() != 2 {
		t.Errorf("Len() == %v, want 2", p.Len())
	}
}

func TestPoolClear(t *testing.T) {
	var p Pool[int]
	p.Push(1)
	p.Push(2)
	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Len() == %v after Clear, want 0", p.Len())
	}
	p.Push(3)
	if got := *p.Index(0); got != 3 {
		t.Errorf("Index(0) == %v after reuse, want 3", got)
	}
}

func TestFromSlice(t *testing.T) {
	p := FromSlice([]int{10, 20, 30})
	if p.Len() != 3 {
		t.Errorf("Len() == %v, want 3", p.Len())
	}
	if got := *p.Index(1); got != 20 {
		t.Errorf("Index(1) == %v, want 20", got)
	}
}
