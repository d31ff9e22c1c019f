package systems

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/automoto/thirdperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// UpdateAnimator stands in for a skeletal animator: it advances the clip
// phase and emits root motion at the move-speed driver along the facing
// direction, or along the input direction while aiming. Hosts with a real
// animator disable it and write RootMotion themselves.
func UpdateAnimator(w donburi.World) {
	if !cfg.Animation.RootMotionStandIn {
		return
	}
	dt := Delta(w)

	tags.Character.Each(w, func(e *donburi.Entry) {
		ch := components.Character.Get(e)
		animator := components.Animator.Get(e)
		drivers := components.AnimationDrivers.Get(e)
		state := components.State.Get(e)
		dir := components.Direction.Get(e)
		transform := components.Transform.Get(e)
		rm := components.RootMotion.Get(e)

		speed := drivers.Value(motion.DriverMoveSpeed)

		rate := 1.0
		if speed > 0 && ch.Tuning.WalkSpeed > 0 {
			rate = speed / ch.Tuning.WalkSpeed
		}
		if animator.Cycle != nil {
			rm.Phase = animator.Cycle.Update(dt, rate)
		}

		heading := motion.Forward(transform.Yaw)
		if state.Arm == motion.ArmAim {
			flat := mgl64.Vec3{dir.World.X(), 0, dir.World.Z()}
			if flat.Len() > 0 {
				heading = flat.Normalize()
			}
		}

		rm.Velocity = heading.Mul(speed)
		rm.DeltaPosition = rm.Velocity.Mul(dt)
	})
}
