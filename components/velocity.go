package components

import (
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/yohamta/donburi"
)

// VelocityData carries grounded momentum into airborne ticks.
type VelocityData struct {
	motion.VelocityCache
}

var Velocity = donburi.NewComponentType[VelocityData]()
