// Package leveldata provides TMX collision profile parsing.
// It has no dependencies on ebitengine, donburi, or resolv: pure data only.
package leveldata

// CollisionData holds all collision-relevant data parsed from a TMX level file.
// Coordinates are in map pixels with Y pointing down.
type CollisionData struct {
	SolidRects  []SolidRect
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// SolidRect represents a solid collision tile.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a character spawn location (feet position).
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Spawn returns the spawn point with the given index, falling back to the
// leftmost one.
func (d *CollisionData) Spawn(index int) (SpawnPoint, bool) {
	for _, sp := range d.SpawnPoints {
		if sp.Index == index {
			return sp, true
		}
	}
	if len(d.SpawnPoints) == 0 {
		return SpawnPoint{}, false
	}
	return d.SpawnPoints[0], true
}
