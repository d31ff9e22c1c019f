package components

import (
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/yohamta/donburi"
)

type StateData struct {
	Posture         motion.Posture
	PreviousPosture motion.Posture
	Locomotion      motion.Locomotion
	Arm             motion.ArmMode
	StateTimer      int // ticks spent in the current posture
}

var State = donburi.NewComponentType[StateData]()
