package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	dmath "github.com/yohamta/donburi/features/math"
)

// Below this length a flattened camera forward is treated as degenerate
// (camera looking straight up or down).
const degenerateLength = 1e-6

// FlattenForward projects a camera forward onto the horizontal plane and
// normalizes it. Returns the zero vector when the projection is degenerate.
func FlattenForward(forward mgl64.Vec3) mgl64.Vec3 {
	flat := mgl64.Vec3{forward.X(), 0, forward.Z()}
	if flat.Len() < degenerateLength {
		return mgl64.Vec3{}
	}
	return flat.Normalize()
}

// ProjectInput converts camera-relative planar input into a world-space
// movement vector.
func ProjectInput(move dmath.Vec2, cameraForward, cameraRight mgl64.Vec3) mgl64.Vec3 {
	forward := FlattenForward(cameraForward)
	return forward.Mul(move.Y).Add(cameraRight.Mul(move.X))
}

// yawMatrix rotates local vectors into world space for a yaw in degrees.
// Positive yaw turns forward (+Z) toward right (+X).
func yawMatrix(yawDegrees float64) mgl64.Mat3 {
	return mgl64.Rotate3DY(mgl64.DegToRad(yawDegrees))
}

// ToLocal rotates a world vector into the character frame, ignoring
// translation and scale.
func ToLocal(world mgl64.Vec3, yawDegrees float64) mgl64.Vec3 {
	return yawMatrix(yawDegrees).Transpose().Mul3x1(world)
}

// Forward returns the character forward axis in world space.
func Forward(yawDegrees float64) mgl64.Vec3 {
	return yawMatrix(yawDegrees).Mul3x1(mgl64.Vec3{0, 0, 1})
}

// TurnAngle returns the signed angle in radians between the character forward
// and a local movement vector. Zero movement gives zero.
func TurnAngle(local mgl64.Vec3) float64 {
	if local.X() == 0 && local.Z() == 0 {
		return 0
	}
	return math.Atan2(local.X(), local.Z())
}
