package systems

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
)

// UpdateMotionContext rebuilds each character's MotionContext from its input.
// Grounded is left false for UpdateGroundSensor to fill.
func UpdateMotionContext(w donburi.World) {
	tags.Character.Each(w, func(e *donburi.Entry) {
		input := components.Input.Get(e)
		ctx := components.MotionContext.Get(e)

		jump := input.Action(cfg.ActionJump)
		ctx.Context = motion.Context{
			Move:        input.Move,
			Run:         input.Current[cfg.ActionRun],
			Crouch:      input.Current[cfg.ActionCrouch],
			Aim:         input.Current[cfg.ActionAim],
			JumpHeld:    jump.Pressed,
			JumpPressed: jump.JustPressed,
		}
	})
}
