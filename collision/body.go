package collision

import (
	"math"

	"github.com/automoto/thirdperson/shared/motion"
	"github.com/automoto/thirdperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Tolerance for touching surfaces, in pixels.
const touchEpsilon = 1e-6

// Body is a character collider in a World. It satisfies motion.GroundQuery
// and motion.Mover.
type Body struct {
	world  *World
	Object *resolv.Object
	probe  *resolv.Object
}

var (
	_ motion.GroundQuery = (*Body)(nil)
	_ motion.Mover       = (*Body)(nil)
)

// NewBody adds a box collider of the given world-unit radius and height to
// the space, with its feet at position.
func (w *World) NewBody(position mgl64.Vec3, radius, height float64) *Body {
	width := 2 * radius * w.PixelsPerUnit
	tall := height * w.PixelsPerUnit

	obj := resolv.NewObject(0, 0, width, tall, tags.ResolvCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, width, tall))

	probe := resolv.NewObject(0, 0, width, 1, tags.ResolvProbe)

	w.Space.Add(obj, probe)
	b := &Body{world: w, Object: obj, probe: probe}
	b.place(position)
	return b
}

// Remove takes the body out of its space.
func (b *Body) Remove() {
	b.world.Space.Remove(b.Object, b.probe)
}

// place puts the collider's feet at position.
func (b *Body) place(position mgl64.Vec3) {
	x, y := b.world.ToPixels(position)
	b.Object.X = x - b.Object.W/2
	b.Object.Y = y - b.Object.H
	b.Object.Update()
}

func (b *Body) feet(z float64) mgl64.Vec3 {
	return b.world.ToWorld(b.Object.X+b.Object.W/2, b.Object.Y+b.Object.H, z)
}

// Probe reports whether a sphere swept down from position + up*offset over
// offset - radius + 2*skinWidth touches the top of a solid. In the side
// profile this is the box spanned by the sweep; a solid counts when its top
// lies inside that box and it overlaps horizontally.
func (b *Body) Probe(position mgl64.Vec3, radius, skinWidth, offset float64) bool {
	ppu := b.world.PixelsPerUnit
	x, feetY := b.world.ToPixels(position)

	top := feetY - offset*ppu          // sweep start, sphere centre
	bottom := feetY + 2*skinWidth*ppu // lowest point reached by the sphere
	if bottom <= top {
		return false
	}

	b.probe.X = x - radius*ppu
	b.probe.Y = top
	b.probe.W = 2 * radius * ppu
	b.probe.H = bottom - top
	b.probe.Update()

	check := b.probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return false
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsX(b.probe, solid) {
			continue
		}
		if solid.Y >= top-touchEpsilon && solid.Y <= bottom+touchEpsilon {
			return true
		}
	}
	return false
}

// Move commits delta starting from position. Horizontal motion is resolved
// before vertical, in sub-steps no longer than half a cell.
func (b *Body) Move(position, delta mgl64.Vec3) motion.MoveResult {
	b.place(position)

	ppu := b.world.PixelsPerUnit
	dx := delta.X() * ppu
	dy := -delta.Y() * ppu

	maxStep := float64(b.world.cellSize) / 2
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) / maxStep))
	if steps < 1 {
		steps = 1
	}
	sx, sy := dx/float64(steps), dy/float64(steps)

	var res motion.MoveResult
	for i := 0; i < steps; i++ {
		if sx != 0 && b.resolveHorizontal(sx) {
			res.Blocked = true
			sx = 0
		}
		if sy != 0 {
			blocked, landed := b.resolveVertical(sy)
			if landed {
				res.Grounded = true
			}
			if blocked {
				res.Blocked = true
				sy = 0
			}
		}
	}
	if !res.Grounded && dy >= 0 {
		res.Grounded = b.resting()
	}

	res.Applied = b.feet(position.Z() + delta.Z()).Sub(position)
	return res
}

// resolveHorizontal moves by dx pixels, stopping at the nearest solid in the
// way. Reports whether the move was cut short.
func (b *Body) resolveHorizontal(dx float64) bool {
	obj := b.Object
	blocked := false

	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsY(obj, solid) {
				continue
			}
			if dx > 0 && solid.X < obj.X+obj.W-touchEpsilon {
				continue
			}
			if dx < 0 && solid.X+solid.W > obj.X+touchEpsilon {
				continue
			}
			contact := check.ContactWithObject(solid).X()
			if math.Abs(contact) < math.Abs(dx) {
				dx = contact
				blocked = true
			}
		}
	}

	obj.X += dx
	obj.Update()
	return blocked
}

// resolveVertical moves by dy pixels (positive is down). Reports whether a
// surface stopped the move and whether that surface was below.
func (b *Body) resolveVertical(dy float64) (blocked, landed bool) {
	obj := b.Object
	down := dy >= 0

	checkDist := dy
	if down {
		checkDist++
	}

	if check := obj.Check(0, checkDist, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsX(obj, solid) {
				continue
			}
			if down && solid.Y < obj.Y+obj.H-touchEpsilon {
				continue
			}
			if !down && solid.Y+solid.H > obj.Y+touchEpsilon {
				continue
			}
			contact := check.ContactWithObject(solid).Y()
			if math.Abs(contact) <= math.Abs(dy) {
				dy = contact
				blocked = true
				landed = down
			}
		}
	}

	obj.Y += dy
	obj.Update()
	return blocked, landed
}

// resting reports whether a solid lies directly under the collider.
func (b *Body) resting() bool {
	obj := b.Object
	check := obj.Check(0, 1, tags.ResolvSolid)
	if check == nil {
		return false
	}
	bottom := obj.Y + obj.H
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlapsX(obj, solid) && math.Abs(solid.Y-bottom) <= touchEpsilon {
			return true
		}
	}
	return false
}

func overlapsX(a, b *resolv.Object) bool {
	return a.X+a.W > b.X+touchEpsilon && a.X < b.X+b.W-touchEpsilon
}

func overlapsY(a, b *resolv.Object) bool {
	return a.Y+a.H > b.Y+touchEpsilon && a.Y < b.Y+b.H-touchEpsilon
}
