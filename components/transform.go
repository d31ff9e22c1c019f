package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type TransformData struct {
	Position mgl64.Vec3 // feet, world units, Y up
	Yaw      float64    // degrees, 0 faces +Z, positive turns toward +X
}

var Transform = donburi.NewComponentType[TransformData]()
