package components

import (
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/yohamta/donburi"
)

// MotionContextData is the per-tick input aggregate.
type MotionContextData struct {
	motion.Context
}

var MotionContext = donburi.NewComponentType[MotionContextData]()
