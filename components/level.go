package components

import (
	"github.com/automoto/thirdperson/collision"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name  string
	Data  *leveldata.CollisionData
	World *collision.World
}

var Level = donburi.NewComponentType[LevelData]()
