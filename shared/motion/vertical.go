package motion

import "math"

// RandSource is the random source used for the idle jump feet tween.
// *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// IntegrateVertical returns the vertical velocity for this tick.
//
// Outside Midair the velocity is reset to gravity*dt every tick. This is a
// small constant downward bias that keeps the ground probe in contact, not
// accumulated gravity. In Midair gravity accumulates, scaled by the fall
// multiplier once the character is descending or the jump button is released.
func IntegrateVertical(velocity float64, p Posture, jumpHeld bool, dt float64, t Tuning) float64 {
	if p != Midair {
		return t.Gravity * dt
	}
	if velocity <= 0 || !jumpHeld {
		return velocity + t.Gravity*t.FallMultiplier*dt
	}
	return velocity + t.Gravity*dt
}

// LaunchSpeed returns the upward speed that reaches maxHeight under constant
// gravity. gravity must be negative.
func LaunchSpeed(gravity, maxHeight float64) float64 {
	return math.Sqrt(-2 * gravity * maxHeight)
}

// FeetTween picks the leading-foot hint for the airborne animation from the
// locomotion clip phase at launch. Positive means the left foot leads.
func FeetTween(phase float64, l Locomotion, rnd RandSource) float64 {
	phase -= math.Floor(phase)
	tween := 1.0
	if phase >= 0.5 {
		tween = -1
	}

	switch l {
	case Run:
		return tween * 3
	case Walk:
		return tween * 2
	}

	scale := 1.0
	if rnd != nil {
		scale = 0.5 + 0.5*rnd.Float64()
	}
	return tween * scale
}

// Jump is the outcome of a jump request.
type Jump struct {
	Velocity  float64
	FeetTween float64
}

// TryJump honours a jump only from Stand on the tick the button went down.
func TryJump(p Posture, c Context, l Locomotion, phase float64, rnd RandSource, t Tuning) (Jump, bool) {
	if p != Stand || !c.JumpPressed {
		return Jump{}, false
	}
	return Jump{
		Velocity:  LaunchSpeed(t.Gravity, t.MaxJumpHeight),
		FeetTween: FeetTween(phase, l, rnd),
	}, true
}
