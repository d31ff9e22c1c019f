package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
)

// UpdateVertical integrates gravity, then applies a jump if one was requested.
func UpdateVertical(w donburi.World) {
	dt := Delta(w)

	tags.Character.Each(w, func(e *donburi.Entry) {
		ch := components.Character.Get(e)
		ctx := components.MotionContext.Get(e)
		state := components.State.Get(e)
		vertical := components.Vertical.Get(e)
		rm := components.RootMotion.Get(e)

		vertical.Velocity = motion.IntegrateVertical(vertical.Velocity, state.Posture, ctx.JumpHeld, dt, ch.Tuning)

		if jump, ok := motion.TryJump(state.Posture, ctx.Context, state.Locomotion, rm.Phase, ch.Rand, ch.Tuning); ok {
			vertical.Velocity = jump.Velocity
			vertical.FeetTween = jump.FeetTween
		}
	})
}
