package components

import (
	cfg "github.com/automoto/thirdperson/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// InputData stores the current and previous tick's pressed state for all
// button actions plus the planar move input. Written by the host before the
// tick runs.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current tick's Pressed state
	Previous [cfg.ActionCount]bool // Previous tick's Pressed state
	Move     math.Vec2             // X right, Y forward, each in [-1, 1]
}

// Action returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous tick.
func (d *InputData) Action(id cfg.ActionID) ActionState {
	curr := d.Current[id]
	prev := d.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Advance moves the current state into Previous and clears Current and Move.
func (d *InputData) Advance() {
	d.Previous = d.Current
	d.Current = [cfg.ActionCount]bool{}
	d.Move = math.Vec2{}
}

var Input = donburi.NewComponentType[InputData]()
