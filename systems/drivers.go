package systems

import (
	"math"

	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
)

// UpdateAnimationDrivers writes the animator parameters and applies turning.
func UpdateAnimationDrivers(w donburi.World) {
	dt := Delta(w)

	tags.Character.Each(w, func(e *donburi.Entry) {
		ch := components.Character.Get(e)
		state := components.State.Get(e)
		vertical := components.Vertical.Get(e)
		dir := components.Direction.Get(e)
		drivers := components.AnimationDrivers.Get(e)
		transform := components.Transform.Get(e)

		yawDelta := motion.MapDrivers(&drivers.Drivers, motion.DriverInput{
			Posture:          state.Posture,
			Locomotion:       state.Locomotion,
			Arm:              state.Arm,
			Local:            dir.Local,
			VerticalVelocity: vertical.Velocity,
			FeetTween:        vertical.FeetTween,
			LandingBlend:     vertical.Landing.Blend,
		}, dt, ch.Tuning)

		transform.Yaw = math.Mod(transform.Yaw+yawDelta, 360)
	})
}
