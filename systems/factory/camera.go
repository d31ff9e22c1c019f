package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// DefaultCameraYaw looks down +X, the axis the side-profile collision
// resolves, so forward input walks into the level instead of along Z.
const DefaultCameraYaw = 90.0

// CameraBasis returns the view basis for a camera orbiting at yaw degrees
// and pitched down by pitch degrees.
func CameraBasis(yaw, pitch float64) components.CameraData {
	turn := mgl64.Rotate3DY(mgl64.DegToRad(yaw))
	tilt := mgl64.Rotate3DX(mgl64.DegToRad(pitch))
	return components.CameraData{
		Forward: turn.Mul3(tilt).Mul3x1(mgl64.Vec3{0, 0, 1}),
		Right:   turn.Mul3x1(mgl64.Vec3{1, 0, 0}),
	}
}

// CreateCamera spawns the singleton camera.
func CreateCamera(w donburi.World, yaw, pitch float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, CameraBasis(yaw, pitch))
	return camera
}
