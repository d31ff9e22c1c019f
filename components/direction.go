package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// DirectionData is the camera-relative move input in world and character space.
type DirectionData struct {
	World mgl64.Vec3
	Local mgl64.Vec3
}

var Direction = donburi.NewComponentType[DirectionData]()
