package input

import (
	"math"

	"github.com/wagner-austin/bunny/animation"
)

// TouchDirection is one of eight joystick sectors, or DirectionNone inside
// the dead zone.
type TouchDirection string

const (
	DirectionNone      TouchDirection = ""
	DirectionRight     TouchDirection = "right"
	DirectionUpRight   TouchDirection = "up-right"
	DirectionUp        TouchDirection = "up"
	DirectionUpLeft    TouchDirection = "up-left"
	DirectionLeft      TouchDirection = "left"
	DirectionDownLeft  TouchDirection = "down-left"
	DirectionDown      TouchDirection = "down"
	DirectionDownRight TouchDirection = "down-right"
)

// sectors are counter-clockwise from the positive x axis, 45 degrees each,
// centered on their direction.
var sectors = [8]TouchDirection{
	DirectionRight,
	DirectionUpRight,
	DirectionUp,
	DirectionUpLeft,
	DirectionLeft,
	DirectionDownLeft,
	DirectionDown,
	DirectionDownRight,
}

// CalculateDirection buckets a drag vector in screen coordinates (y grows
// downward). Each sector is half-open: [22.5, 67.5) is up-right.
func CalculateDirection(dx, dy, deadzone float64) TouchDirection {
	if (dx == 0 && dy == 0) || math.Hypot(dx, dy) < deadzone {
		return DirectionNone
	}

	angle := math.Atan2(-dy, dx) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}

	return sectors[int(math.Floor((angle+22.5)/45))%len(sectors)]
}

// Side is the horizontal component of a direction.
type Side string

const (
	SideNone  Side = ""
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Side returns the horizontal component of d.
func (d TouchDirection) Side() Side {
	switch d {
	case DirectionRight, DirectionUpRight, DirectionDownRight:
		return SideRight
	case DirectionLeft, DirectionUpLeft, DirectionDownLeft:
		return SideLeft
	}
	return SideNone
}

// Hop returns the vertical component of d: up is away from the camera.
func (d TouchDirection) Hop() animation.HopDirection {
	switch d {
	case DirectionUp, DirectionUpLeft, DirectionUpRight:
		return animation.HopAway
	case DirectionDown, DirectionDownLeft, DirectionDownRight:
		return animation.HopToward
	}
	return animation.HopNone
}
