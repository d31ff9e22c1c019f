package config

import (
	"errors"
	"fmt"

	"github.com/automoto/thirdperson/shared/motion"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}

// Validate returns the first misconfiguration in the current globals.
func Validate() error {
	if Physics.Gravity >= 0 {
		return invalid("physics.gravity must be negative, got %v", Physics.Gravity)
	}
	if Physics.MaxJumpHeight <= 0 {
		return invalid("physics.max_jump_height must be positive, got %v", Physics.MaxJumpHeight)
	}
	if Physics.FallMultiplier < 1 {
		return invalid("physics.fall_multiplier must be at least 1, got %v", Physics.FallMultiplier)
	}
	if Physics.LandingCooldown <= 0 {
		return invalid("physics.landing_cooldown must be positive, got %v", Physics.LandingCooldown)
	}

	speeds := []struct {
		name  string
		value float64
	}{
		{"locomotion.walk_speed", Locomotion.WalkSpeed},
		{"locomotion.run_speed", Locomotion.RunSpeed},
		{"locomotion.crouch_speed", Locomotion.CrouchSpeed},
		{"locomotion.locomotion_damp", Locomotion.LocomotionDamp},
		{"locomotion.landing_damp", Locomotion.LandingDamp},
		{"locomotion.turn_damp", Locomotion.TurnDamp},
	}
	for _, s := range speeds {
		if s.value < 0 {
			return invalid("%s must not be negative, got %v", s.name, s.value)
		}
	}

	if Character.Radius <= 0 {
		return invalid("character.radius must be positive, got %v", Character.Radius)
	}
	if Character.SkinWidth < 0 {
		return invalid("character.skin_width must not be negative, got %v", Character.SkinWidth)
	}
	if d := ProbeDistance(); d <= 0 {
		return invalid("ground probe distance must be positive, got %v", d)
	}

	if Collision.PixelsPerUnit <= 0 {
		return invalid("collision.pixels_per_unit must be positive, got %v", Collision.PixelsPerUnit)
	}
	if Collision.CellSize <= 0 {
		return invalid("collision.cell_size must be positive, got %d", Collision.CellSize)
	}
	if Animation.CycleDuration <= 0 {
		return invalid("animation.cycle_duration must be positive, got %v", Animation.CycleDuration)
	}
	if Input.AnalogDeadzone < 0 || Input.AnalogDeadzone >= 1 {
		return invalid("input.analog_deadzone must be in [0, 1), got %v", Input.AnalogDeadzone)
	}
	if Sim.TickRate <= 0 {
		return invalid("sim.tick_rate must be positive, got %d", Sim.TickRate)
	}

	// The probe reaches 2*skin below the feet. A first jump step that does not
	// clear it reads as grounded, and the edge-triggered jump is lost.
	if rise := motion.LaunchSpeed(Physics.Gravity, Physics.MaxJumpHeight) * TickDelta(); 2*Character.SkinWidth >= rise {
		return invalid("character.skin_width %v: probe reach %v must be below the first jump step %v",
			Character.SkinWidth, 2*Character.SkinWidth, rise)
	}
	return nil
}

// ProbeDistance is how far the ground probe sphere travels downward.
func ProbeDistance() float64 {
	return Character.GroundCheckOffset - Character.Radius + 2*Character.SkinWidth
}
