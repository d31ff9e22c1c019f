package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the view basis move input is projected onto.
type CameraData struct {
	Forward mgl64.Vec3
	Right   mgl64.Vec3
}

var Camera = donburi.NewComponentType[CameraData]()
