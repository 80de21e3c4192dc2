package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		key   ebiten.Key
		shift bool
		want  string
		ok    bool
	}{
		{ebiten.KeyArrowLeft, false, "ArrowLeft", true},
		{ebiten.KeyArrowDown, true, "ArrowDown", true},
		{ebiten.KeySpace, false, " ", true},
		{ebiten.KeyA, false, "a", true},
		{ebiten.KeyW, true, "W", true},
		{ebiten.KeyEnter, false, "", false},
	}

	for _, tt := range tests {
		got, ok := keyName(tt.key, tt.shift)
		if got != tt.want || ok != tt.ok {
			t.Errorf("keyName(%v, %v) = %q, %v; want %q, %v", tt.key, tt.shift, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeyTrackerReleasesPressedName(t *testing.T) {
	kt := newKeyTracker()

	if name, ok := kt.Press(ebiten.KeyD, true); !ok || name != "D" {
		t.Fatalf("press got %q, %v", name, ok)
	}
	if name, ok := kt.Release(ebiten.KeyD); !ok || name != "D" {
		t.Errorf("release got %q, %v", name, ok)
	}
	if _, ok := kt.Release(ebiten.KeyD); ok {
		t.Error("a key released twice")
	}

	kt.Press(ebiten.KeyA, false)
	kt.Reset()
	if _, ok := kt.Release(ebiten.KeyA); ok {
		t.Error("reset keys must not be released again")
	}
}
