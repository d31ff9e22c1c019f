package motion

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Context is the per-tick input aggregate. It is rebuilt every tick and not
// modified once the ground probe has filled Grounded.
type Context struct {
	Move        dmath.Vec2
	Run         bool
	Crouch      bool
	Aim         bool
	JumpHeld    bool
	JumpPressed bool // held this tick but not the previous one
	Grounded    bool
}

// MoveMagnitude returns the length of the move input.
func (c Context) MoveMagnitude() float64 {
	return math.Hypot(c.Move.X, c.Move.Y)
}

// ClassifyLocomotion maps move input and the run flag to Idle/Walk/Run.
func ClassifyLocomotion(c Context) Locomotion {
	if c.MoveMagnitude() == 0 {
		return Idle
	}
	if !c.Run {
		return Walk
	}
	return Run
}

// ClassifyArm maps the aim flag to an ArmMode.
func ClassifyArm(c Context) ArmMode {
	if c.Aim {
		return ArmAim
	}
	return ArmNormal
}

// StickMove converts raw analog stick axes to planar move input. Deflections
// inside the radial deadzone read as zero and the rest is rescaled so the
// output still spans [0, 1]. Stick up is negative on the vertical axis.
func StickMove(horizontal, vertical, deadzone float64) dmath.Vec2 {
	l := math.Hypot(horizontal, vertical)
	if l <= deadzone || l == 0 {
		return dmath.Vec2{}
	}
	scale := math.Min((l-deadzone)/(1-deadzone), 1) / l
	return dmath.Vec2{X: horizontal * scale, Y: -vertical * scale}
}
