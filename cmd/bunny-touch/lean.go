package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/wagner-austin/bunny/input"
)

const (
	leanDistance = 12
	leanDuration = 0.15
)

// lean eases the drawn sprite sideways while a hop is steered left or
// right.
type lean struct {
	target  float32
	current float32
	tween   *gween.Tween
}

func newLean() *lean {
	return &lean{}
}

func leanTarget(side input.Side) float32 {
	switch side {
	case input.SideLeft:
		return -leanDistance
	case input.SideRight:
		return leanDistance
	}
	return 0
}

// Update retargets the lean to side and advances it by dt seconds.
func (l *lean) Update(side input.Side, dt float32) {
	if target := leanTarget(side); target != l.target {
		l.target = target
		l.tween = gween.New(l.current, target, leanDuration, ease.OutQuad)
	}
	if l.tween == nil {
		return
	}

	var done bool
	l.current, done = l.tween.Update(dt)
	if done {
		l.tween = nil
	}
}

// Offset is the current horizontal displacement in pixels.
func (l *lean) Offset() float32 {
	return l.current
}
