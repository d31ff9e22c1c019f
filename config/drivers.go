package config

import "github.com/automoto/thirdperson/shared/motion"

// DriverNames maps driver channels to the parameter names used by the
// character's animator graph.
var DriverNames = map[motion.DriverID]string{
	motion.DriverPosture:       "player pos",
	motion.DriverMoveSpeed:     "move speed",
	motion.DriverTurnSpeed:     "rotation speed",
	motion.DriverVerticalSpeed: "Vertical speed",
	motion.DriverFeetPhase:     "left right leg",
}

// Tuning builds the motion tuning from the current globals.
func Tuning() motion.Tuning {
	return motion.Tuning{
		Gravity:         Physics.Gravity,
		MaxJumpHeight:   Physics.MaxJumpHeight,
		FallMultiplier:  Physics.FallMultiplier,
		LandingCooldown: Physics.LandingCooldown,
		WalkSpeed:       Locomotion.WalkSpeed,
		RunSpeed:        Locomotion.RunSpeed,
		CrouchSpeed:     Locomotion.CrouchSpeed,
		StandBlend:      Locomotion.StandBlend,
		CrouchBlend:     Locomotion.CrouchBlend,
		MidairBlend:     Locomotion.MidairBlend,
		LocomotionDamp:  Locomotion.LocomotionDamp,
		LandingDamp:     Locomotion.LandingDamp,
		TurnDamp:        Locomotion.TurnDamp,
		TurnRate:        Locomotion.TurnRate,
	}
}
