package motion

import "github.com/go-gl/mathgl/mgl64"

// GroundQuery reports ground contact for a downward sphere sweep. The sphere
// of the given radius starts at position + up*offset and travels
// offset - radius + 2*skinWidth downward.
type GroundQuery interface {
	Probe(position mgl64.Vec3, radius, skinWidth, offset float64) bool
}

// MoveResult is what a collider-aware move reports back.
type MoveResult struct {
	Applied  mgl64.Vec3 // displacement actually applied
	Blocked  bool       // a surface stopped part of the move
	Grounded bool       // the move ended resting on a surface
}

// Mover commits a displacement from position, resolving obstacles.
type Mover interface {
	Move(position, delta mgl64.Vec3) MoveResult
}

// ProbeGround runs a ground query, failing toward airborne when no query is
// available.
func ProbeGround(q GroundQuery, position mgl64.Vec3, radius, skinWidth, offset float64) bool {
	if q == nil {
		return false
	}
	return q.Probe(position, radius, skinWidth, offset)
}

// MoveBy commits a displacement through m. Without a mover the displacement
// is applied unresolved.
func MoveBy(m Mover, position, delta mgl64.Vec3) MoveResult {
	if m == nil {
		return MoveResult{Applied: delta}
	}
	return m.Move(position, delta)
}
