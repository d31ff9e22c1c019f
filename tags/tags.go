package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Level     = donburi.NewTag().SetName("Level")
)

// Resolv tags for the side-profile collision space
const (
	ResolvSolid     = "solid"
	ResolvCharacter = "character"
	ResolvProbe     = "probe"
)
