package motion

import "github.com/go-gl/mathgl/mgl64"

// VelocityCacheSize is the number of grounded samples averaged.
const VelocityCacheSize = 3

// VelocityCache is a ring buffer of recent grounded velocities. Its mean is
// used to carry horizontal momentum through airborne ticks, where no
// animation-driven velocity exists.
//
// All slots start at zero, so the first two means are biased low.
type VelocityCache struct {
	samples  [VelocityCacheSize]mgl64.Vec3
	next     int
	Smoothed mgl64.Vec3
}

// Push overwrites the oldest sample and returns the mean of all slots.
func (c *VelocityCache) Push(v mgl64.Vec3) mgl64.Vec3 {
	c.samples[c.next] = v
	c.next = (c.next + 1) % VelocityCacheSize

	var sum mgl64.Vec3
	for _, s := range c.samples {
		sum = sum.Add(s)
	}
	c.Smoothed = sum.Mul(1.0 / VelocityCacheSize)
	return c.Smoothed
}

// Airborne replaces the vertical component of the smoothed velocity with the
// live integrated vertical velocity and returns it.
func (c *VelocityCache) Airborne(verticalVelocity float64) mgl64.Vec3 {
	c.Smoothed[1] = verticalVelocity
	return c.Smoothed
}
