package systems

import "github.com/yohamta/donburi"

// System is one stage of the tick.
type System func(w donburi.World)

// Pipeline lists the stages of one tick in order.
var Pipeline = []System{
	UpdateClock,
	UpdateMotionContext,
	UpdateGroundSensor,
	UpdateStates,
	UpdateVertical,
	UpdateDirection,
	UpdateAnimationDrivers,
	UpdateAnimator,
	ApplyMotion,
}

// Step runs one tick over every character in w.
func Step(w donburi.World) {
	for _, s := range Pipeline {
		s(w)
	}
}
