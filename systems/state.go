package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
)

// UpdateStates runs the posture machine and classifies locomotion and arm
// mode. Locomotion is classified here because the jump check reads it in the
// same tick.
func UpdateStates(w donburi.World) {
	dt := Delta(w)

	tags.Character.Each(w, func(e *donburi.Entry) {
		ch := components.Character.Get(e)
		ctx := components.MotionContext.Get(e)
		state := components.State.Get(e)
		vertical := components.Vertical.Get(e)

		next := motion.StepPosture(
			motion.PostureState{Posture: state.Posture, Landing: vertical.Landing},
			ctx.Grounded, ctx.Crouch, vertical.Velocity, dt, ch.Tuning,
		)

		state.PreviousPosture = state.Posture
		if next.Posture == state.Posture {
			state.StateTimer++
		} else {
			state.StateTimer = 0
		}
		state.Posture = next.Posture
		vertical.Landing = next.Landing

		state.Locomotion = motion.ClassifyLocomotion(ctx.Context)
		state.Arm = motion.ClassifyArm(ctx.Context)
	})
}
