package motion

import "github.com/go-gl/mathgl/mgl64"

const (
	// Impact speeds below this are treated the same for the landing blend.
	landingImpactFloor = -10.0
	landingImpactScale = 20.0

	// Residue left by repeated float subtraction of dt.
	cooldownEpsilon = 1e-9
)

// LandingCooldown is the countdown started on touchdown.
type LandingCooldown struct {
	Remaining float64
	Active    bool
	Blend     float64 // posture blend target while Landing
}

func (c *LandingCooldown) advance(dt float64) {
	if !c.Active {
		return
	}
	c.Remaining -= dt
	if c.Remaining <= cooldownEpsilon {
		c.Remaining = 0
		c.Active = false
	}
}

func (c *LandingCooldown) start(verticalVelocity, duration float64) {
	c.Blend = LandingBlend(verticalVelocity)
	c.Remaining = duration
	c.Active = true
}

func (c *LandingCooldown) cancel() {
	c.Remaining = 0
	c.Active = false
}

// LandingBlend maps the vertical velocity at touchdown to a blend in [0.5, 1].
// Harder impacts give lower values.
func LandingBlend(verticalVelocity float64) float64 {
	return 1 + mgl64.Clamp(verticalVelocity, landingImpactFloor, 0)/landingImpactScale
}

// PostureState is the persistent part of the posture machine.
type PostureState struct {
	Posture Posture
	Landing LandingCooldown
}

// StepPosture evaluates one tick of posture transitions. The cooldown is
// advanced by dt first, then the rules are checked in priority order:
// airborne, touchdown, cooldown, crouch, stand.
func StepPosture(s PostureState, grounded, crouch bool, verticalVelocity, dt float64, t Tuning) PostureState {
	s.Landing.advance(dt)

	switch {
	case !grounded:
		// Leaving the ground abandons any pending cooldown.
		s.Landing.cancel()
		s.Posture = Midair
	case s.Posture == Midair:
		if !s.Landing.Active {
			s.Landing.start(verticalVelocity, t.LandingCooldown)
		}
		s.Posture = Landing
	case s.Landing.Active:
		s.Posture = Landing
	case crouch:
		s.Posture = Crouch
	default:
		s.Posture = Stand
	}
	return s
}
