package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DriverID names an animation driver channel.
type DriverID int

const (
	DriverPosture DriverID = iota
	DriverMoveSpeed
	DriverTurnSpeed
	DriverVerticalSpeed
	DriverFeetPhase
	DriverCount // Must be last - used for array sizing
)

// Driver is one scalar output read by the animation system.
type Driver struct {
	Value    float64
	Target   float64
	DampTime float64
}

// Drivers holds every driver channel of one character.
type Drivers [DriverCount]Driver

// Damp moves current toward target with exponential smoothing of time
// constant dampTime. A non-positive dampTime snaps to the target.
func Damp(current, target, dampTime, dt float64) float64 {
	if dampTime <= 0 {
		return target
	}
	if dt <= 0 {
		return current
	}
	return target + (current-target)*math.Exp(-dt/dampTime)
}

// Set damps a channel toward target.
func (d *Drivers) Set(id DriverID, target, dampTime, dt float64) {
	ch := &d[id]
	ch.Target = target
	ch.DampTime = dampTime
	ch.Value = Damp(ch.Value, target, dampTime, dt)
}

// SetImmediate writes a channel without smoothing.
func (d *Drivers) SetImmediate(id DriverID, value float64) {
	d[id] = Driver{Value: value, Target: value}
}

// Value returns the current value of a channel.
func (d *Drivers) Value(id DriverID) float64 {
	return d[id].Value
}

// DriverInput is everything the mapper reads for one tick.
type DriverInput struct {
	Posture          Posture
	Locomotion       Locomotion
	Arm              ArmMode
	Local            mgl64.Vec3 // movement in the character frame
	VerticalVelocity float64
	FeetTween        float64
	LandingBlend     float64
}

// MoveSpeed returns the move-speed driver target for a grounded posture.
func MoveSpeed(p Posture, l Locomotion, local mgl64.Vec3, t Tuning) float64 {
	if l == Idle {
		return 0
	}
	if p == Crouch {
		return local.Len() * t.CrouchSpeed
	}
	if l == Run {
		return local.Len() * t.RunSpeed
	}
	return local.Len() * t.WalkSpeed
}

// MapDrivers writes the driver channels for this tick and returns the yaw
// change in degrees to apply to the character.
func MapDrivers(d *Drivers, in DriverInput, dt float64, t Tuning) float64 {
	switch in.Posture {
	case Stand:
		d.Set(DriverPosture, t.StandBlend, t.LocomotionDamp, dt)
		d.Set(DriverMoveSpeed, MoveSpeed(in.Posture, in.Locomotion, in.Local, t), t.LocomotionDamp, dt)
	case Crouch:
		d.Set(DriverPosture, t.CrouchBlend, t.LocomotionDamp, dt)
		d.Set(DriverMoveSpeed, MoveSpeed(in.Posture, in.Locomotion, in.Local, t), t.LocomotionDamp, dt)
	case Landing:
		d.Set(DriverPosture, in.LandingBlend, t.LandingDamp, dt)
		d.Set(DriverMoveSpeed, MoveSpeed(in.Posture, in.Locomotion, in.Local, t), t.LocomotionDamp, dt)
	case Midair:
		// Airborne is already discontinuous, nothing is smoothed.
		d.SetImmediate(DriverPosture, t.MidairBlend)
		d.SetImmediate(DriverVerticalSpeed, in.VerticalVelocity)
		d.SetImmediate(DriverFeetPhase, in.FeetTween)
	}

	if in.Arm != ArmNormal {
		return 0
	}
	turn := TurnAngle(in.Local)
	d.Set(DriverTurnSpeed, turn, t.TurnDamp, dt)
	return turn * t.TurnRate * dt
}
