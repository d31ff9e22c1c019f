// Package collision maps the character's 3D motion onto a side-profile
// resolv space built from a TMX collision layer. World X maps to pixel X,
// world Y (up) maps to pixel Y (down) and world Z passes through unchanged.
package collision

import (
	"log"

	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/automoto/thirdperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// World is a side-profile collision space.
type World struct {
	Space         *resolv.Space
	PixelsPerUnit float64
	MapWidth      int
	MapHeight     int
	cellSize      int
}

// NewWorld builds a resolv.Space from parsed collision data.
func NewWorld(data *leveldata.CollisionData, pixelsPerUnit float64, cellSize int) *World {
	space := resolv.NewSpace(data.MapWidth, data.MapHeight, cellSize, cellSize)

	for _, r := range data.SolidRects {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		space.Add(obj)
	}

	log.Printf("Loaded collision profile: %d solid tiles, %d spawn points, %dx%d map",
		len(data.SolidRects), len(data.SpawnPoints), data.MapWidth, data.MapHeight)

	return &World{
		Space:         space,
		PixelsPerUnit: pixelsPerUnit,
		MapWidth:      data.MapWidth,
		MapHeight:     data.MapHeight,
		cellSize:      cellSize,
	}
}

// ToPixels converts a world position to side-profile pixel coordinates.
func (w *World) ToPixels(p mgl64.Vec3) (x, y float64) {
	return p.X() * w.PixelsPerUnit, float64(w.MapHeight) - p.Y()*w.PixelsPerUnit
}

// ToWorld converts pixel coordinates back to a world position with the given depth.
func (w *World) ToWorld(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x / w.PixelsPerUnit, (float64(w.MapHeight) - y) / w.PixelsPerUnit, z}
}

// SpawnPosition converts a TMX spawn point (feet, pixels) to a world position.
func (w *World) SpawnPosition(sp leveldata.SpawnPoint) mgl64.Vec3 {
	return w.ToWorld(sp.X, sp.Y, 0)
}

// Solids returns every solid object in the space.
func (w *World) Solids() []*resolv.Object {
	var solids []*resolv.Object
	for _, obj := range w.Space.Objects() {
		if obj.HasTags(tags.ResolvSolid) {
			solids = append(solids, obj)
		}
	}
	return solids
}
