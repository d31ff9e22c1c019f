package components

import (
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/yohamta/donburi"
)

// CharacterData holds per-character tuning and probe shape.
type CharacterData struct {
	Tuning            motion.Tuning
	Rand              motion.RandSource
	Radius            float64
	SkinWidth         float64
	Height            float64
	GroundCheckOffset float64
}

var Character = donburi.NewComponentType[CharacterData]()
