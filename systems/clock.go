package systems

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/yohamta/donburi"
)

// UpdateClock advances the fixed-step clock. Must run first.
func UpdateClock(w donburi.World) {
	clock := getOrCreateClock(w)
	clock.Tick++
	clock.Elapsed += clock.Delta
}

// SetDelta overrides the step duration, for hosts driving variable frames.
func SetDelta(w donburi.World, dt float64) {
	getOrCreateClock(w).Delta = dt
}

// Delta returns the step duration of the current tick.
func Delta(w donburi.World) float64 {
	return getOrCreateClock(w).Delta
}

// getOrCreateClock returns the singleton Clock component, creating if needed
func getOrCreateClock(w donburi.World) *components.ClockData {
	entry, ok := components.Clock.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Clock))
		components.Clock.SetValue(entry, components.ClockData{Delta: cfg.TickDelta()})
	}
	return components.Clock.Get(entry)
}
