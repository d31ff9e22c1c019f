package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// RootMotionData is what the animator produced this tick.
type RootMotionData struct {
	DeltaPosition mgl64.Vec3 // displacement for this tick
	Velocity      mgl64.Vec3
	Phase         float64 // normalized playback time of the locomotion clip
}

var RootMotion = donburi.NewComponentType[RootMotionData]()
