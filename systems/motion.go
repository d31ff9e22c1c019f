package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
)

// ApplyMotion commits the tick's displacement. Grounded postures use the
// animator's root motion with the integrated vertical velocity; Midair uses
// the smoothed grounded velocity so momentum carries through the jump.
func ApplyMotion(w donburi.World) {
	dt := Delta(w)

	tags.Character.Each(w, func(e *donburi.Entry) {
		state := components.State.Get(e)
		vertical := components.Vertical.Get(e)
		velocity := components.Velocity.Get(e)
		rm := components.RootMotion.Get(e)
		collider := components.Collider.Get(e)
		transform := components.Transform.Get(e)
		last := components.Motion.Get(e)

		delta := rm.DeltaPosition
		if state.Posture != motion.Midair {
			delta[1] = vertical.Velocity * dt
			velocity.Push(rm.Velocity)
		} else {
			delta = velocity.Airborne(vertical.Velocity).Mul(dt)
		}

		res := motion.MoveBy(collider.Mover, transform.Position, delta)
		transform.Position = transform.Position.Add(res.Applied)
		last.Last = res
	})
}
