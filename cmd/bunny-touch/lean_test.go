package main

import (
	"testing"

	"github.com/wagner-austin/bunny/input"
)

func TestLeanEasesToTarget(t *testing.T) {
	l := newLean()

	l.Update(input.SideRight, 0.05)
	mid := l.Offset()
	if mid <= 0 || mid >= leanDistance {
		t.Errorf("expected a partial lean, got %v", mid)
	}

	l.Update(input.SideRight, 1)
	if l.Offset() != leanDistance {
		t.Errorf("expected the full lean, got %v", l.Offset())
	}

	for i := 0; i < 10; i++ {
		l.Update(input.SideNone, 0.05)
	}
	if l.Offset() != 0 {
		t.Errorf("expected to settle back at 0, got %v", l.Offset())
	}
}
