package components

import (
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/yohamta/donburi"
)

type VerticalData struct {
	Velocity  float64 // world units/s, positive up
	FeetTween float64 // leading-foot hint captured at jump time
	Landing   motion.LandingCooldown
}

var Vertical = donburi.NewComponentType[VerticalData]()
