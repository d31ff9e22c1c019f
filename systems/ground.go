package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
)

// UpdateGroundSensor probes for ground under each character.
func UpdateGroundSensor(w donburi.World) {
	tags.Character.Each(w, func(e *donburi.Entry) {
		ch := components.Character.Get(e)
		collider := components.Collider.Get(e)
		transform := components.Transform.Get(e)
		ctx := components.MotionContext.Get(e)

		ctx.Grounded = motion.ProbeGround(collider.Ground, transform.Position,
			ch.Radius, ch.SkinWidth, ch.GroundCheckOffset)
	})
}
