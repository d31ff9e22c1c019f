// Package animation provides the looping clip clock used as a stand-in for a
// skeletal animator when the host has none.
package animation

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Cycle is a looping playback clock. Phase runs from 0 to 1 over Duration
// seconds of rate-scaled time and wraps.
type Cycle struct {
	Duration float64
	Looped   bool // set on the update that wrapped

	tween   *gween.Tween
	elapsed float64
	phase   float64
}

func NewCycle(duration float64) *Cycle {
	return &Cycle{
		Duration: duration,
		tween:    gween.New(0, 1, float32(duration), ease.Linear),
	}
}

// Update advances the clock by dt*rate seconds and returns the new phase.
// A non-positive step holds the current phase.
func (c *Cycle) Update(dt, rate float64) float64 {
	c.Looped = false
	step := dt * rate
	if step <= 0 || c.Duration <= 0 {
		return c.phase
	}

	c.elapsed += step
	if c.elapsed >= c.Duration {
		c.elapsed = math.Mod(c.elapsed, c.Duration)
		c.Looped = true
		c.tween.Reset()
		step = c.elapsed
	}

	v, _ := c.tween.Update(float32(step))
	c.phase = math.Mod(float64(v), 1)
	return c.phase
}

// Phase returns the current normalized playback time.
func (c *Cycle) Phase() float64 {
	return c.phase
}

// Restart rewinds the clip.
func (c *Cycle) Restart() {
	c.tween.Reset()
	c.elapsed = 0
	c.phase = 0
	c.Looped = false
}
