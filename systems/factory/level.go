package factory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/assets"
	"github.com/automoto/thirdperson/collision"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevel spawns the level entity and its collision space.
func CreateLevel(w donburi.World, name string, data *leveldata.CollisionData) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Name:  name,
		Data:  data,
		World: collision.NewWorld(data, cfg.Collision.PixelsPerUnit, cfg.Collision.CellSize),
	})
	return level
}

// LoadLevel loads a .tmx file from disk, or the bundled default level when
// path is empty, and spawns it.
func LoadLevel(w donburi.World, path string) (*donburi.Entry, error) {
	if path == "" {
		data, err := assets.LoadLevel(assets.DefaultLevel)
		if err != nil {
			return nil, err
		}
		return CreateLevel(w, assets.DefaultLevel, data), nil
	}

	data, err := leveldata.LoadCollisionData(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return CreateLevel(w, name, data), nil
}
