package components

import (
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/yohamta/donburi"
)

// ColliderData is the character's view of the collision world. Either field
// may be nil: no ground query reads as airborne, no mover applies deltas as is.
type ColliderData struct {
	Ground motion.GroundQuery
	Mover  motion.Mover
}

var Collider = donburi.NewComponentType[ColliderData]()

// MotionData records the last movement commit.
type MotionData struct {
	Last motion.MoveResult
}

var Motion = donburi.NewComponentType[MotionData]()
