package viewer

import (
	"math"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
)

const followSmoothing = 0.15

// followCamera is the render camera. It trails the character in collision
// pixels and is kept inside the level where the level is larger than the
// screen.
type followCamera struct {
	x, y   float64
	placed bool
}

func (c *followCamera) update(w donburi.World) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).World

	entry, ok := tags.Character.First(w)
	if !ok || !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry).Object

	screenW, screenH := float64(cfg.C.Width), float64(cfg.C.Height)
	targetX := clampAxis(obj.X+obj.W/2, float64(level.MapWidth), screenW)
	targetY := clampAxis(obj.Y+obj.H/2, float64(level.MapHeight), screenH)

	if !c.placed {
		c.x, c.y = targetX, targetY
		c.placed = true
		return
	}
	c.x += (targetX - c.x) * followSmoothing
	c.y += (targetY - c.y) * followSmoothing
}

// clampAxis keeps the view inside [0, level]. A level smaller than the
// screen is centred.
func clampAxis(target, level, screen float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, target))
}

// view returns the offset added to collision pixels when drawing.
func (c *followCamera) view() view {
	return view{
		x: float64(cfg.C.Width)/2 - c.x,
		y: float64(cfg.C.Height)/2 - c.y,
	}
}
