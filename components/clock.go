package components

import "github.com/yohamta/donburi"

// ClockData is the fixed-step clock shared by every system.
type ClockData struct {
	Delta   float64 // seconds per tick
	Tick    uint64
	Elapsed float64
}

var Clock = donburi.NewComponentType[ClockData]()
