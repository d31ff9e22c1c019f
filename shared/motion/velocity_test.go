package motion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestVelocityCache_StartupBias(t *testing.T) {
	var c VelocityCache
	got := c.Push(mgl64.Vec3{3, 0, 6})
	vecApprox(t, got, mgl64.Vec3{1, 0, 2}, "first mean")

	got = c.Push(mgl64.Vec3{3, 0, 6})
	vecApprox(t, got, mgl64.Vec3{2, 0, 4}, "second mean")

	got = c.Push(mgl64.Vec3{3, 0, 6})
	vecApprox(t, got, mgl64.Vec3{3, 0, 6}, "third mean")
}

func TestVelocityCache_EvictsOldest(t *testing.T) {
	var c VelocityCache
	v1 := mgl64.Vec3{100, 0, 100}
	v2 := mgl64.Vec3{1, 0, 2}
	v3 := mgl64.Vec3{2, 0, 4}
	v4 := mgl64.Vec3{3, 0, 6}

	c.Push(v1)
	c.Push(v2)
	c.Push(v3)
	got := c.Push(v4)

	vecApprox(t, got, mgl64.Vec3{2, 0, 4}, "mean(v2,v3,v4)")
	vecApprox(t, c.Smoothed, got, "smoothed")
}

func TestVelocityCache_AirborneOverwritesVertical(t *testing.T) {
	var c VelocityCache
	for i := 0; i < VelocityCacheSize; i++ {
		c.Push(mgl64.Vec3{1.5, -0.2, 0})
	}

	got := c.Airborne(4.2)
	vecApprox(t, got, mgl64.Vec3{1.5, 4.2, 0}, "airborne velocity")

	got = c.Airborne(3.9)
	vecApprox(t, got, mgl64.Vec3{1.5, 3.9, 0}, "next airborne tick")
}
