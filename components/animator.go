package components

import (
	"github.com/automoto/thirdperson/animation"
	"github.com/yohamta/donburi"
)

// AnimatorData drives the built-in root motion stand-in.
type AnimatorData struct {
	Cycle *animation.Cycle
}

var Animator = donburi.NewComponentType[AnimatorData]()
