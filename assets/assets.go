package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/thirdperson/shared/leveldata"
)

//go:embed all:levels
var levelFS embed.FS

// LevelsDir is the directory holding the bundled .tmx collision profiles.
const LevelsDir = "levels"

// FS exposes the embedded assets.
func FS() fs.FS {
	return levelFS
}

// LoadLevel loads a bundled level by stem name.
func LoadLevel(name string) (*leveldata.CollisionData, error) {
	data, err := leveldata.LoadCollisionData(levelFS, LevelsDir+"/"+name+".tmx")
	if err != nil {
		return nil, fmt.Errorf("bundled level %q: %w", name, err)
	}
	return data, nil
}

// LevelNames lists the bundled levels in sorted order.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(levelFS, LevelsDir)
	return names, err
}

// DefaultLevel is loaded when no level is given.
const DefaultLevel = "proving_ground"
