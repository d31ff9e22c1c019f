package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/automoto/thirdperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Used when no camera entity exists: looking down +Z.
var defaultCamera = components.CameraData{
	Forward: mgl64.Vec3{0, 0, 1},
	Right:   mgl64.Vec3{1, 0, 0},
}

// UpdateDirection projects move input through the camera basis and into the
// character frame.
func UpdateDirection(w donburi.World) {
	camera := defaultCamera
	if entry, ok := components.Camera.First(w); ok {
		camera = *components.Camera.Get(entry)
	}

	tags.Character.Each(w, func(e *donburi.Entry) {
		ctx := components.MotionContext.Get(e)
		transform := components.Transform.Get(e)
		dir := components.Direction.Get(e)

		dir.World = motion.ProjectInput(ctx.Move, camera.Forward, camera.Right)
		dir.Local = motion.ToLocal(dir.World, transform.Yaw)
	})
}
