package main

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyName names an ebiten key the way KeyMap does. Letters follow shift.
func keyName(k ebiten.Key, shift bool) (string, bool) {
	switch {
	case k == ebiten.KeyArrowLeft, k == ebiten.KeyArrowRight, k == ebiten.KeyArrowUp, k == ebiten.KeyArrowDown:
		return k.String(), true
	case k == ebiten.KeySpace:
		return " ", true
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		if shift {
			return strings.ToUpper(k.String()), true
		}
		return strings.ToLower(k.String()), true
	}
	return "", false
}

// keyTracker remembers the name each key was pressed under, so its release
// is reported under the same name even if shift changed meanwhile.
type keyTracker struct {
	pressed map[ebiten.Key]string
}

func newKeyTracker() *keyTracker {
	return &keyTracker{pressed: make(map[ebiten.Key]string)}
}

func (kt *keyTracker) Press(k ebiten.Key, shift bool) (string, bool) {
	name, ok := keyName(k, shift)
	if !ok {
		return "", false
	}
	kt.pressed[k] = name
	return name, true
}

func (kt *keyTracker) Release(k ebiten.Key) (string, bool) {
	name, ok := kt.pressed[k]
	delete(kt.pressed, k)
	return name, ok
}

func (kt *keyTracker) Reset() {
	kt.pressed = make(map[ebiten.Key]string)
}
