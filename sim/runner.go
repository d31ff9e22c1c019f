package sim

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/automoto/thirdperson/systems"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Sample is the observable state of the driven character after one tick.
type Sample struct {
	Tick             uint64
	Posture          motion.Posture
	PreviousPosture  motion.Posture
	Locomotion       motion.Locomotion
	Arm              motion.ArmMode
	Position         mgl64.Vec3
	Yaw              float64
	VerticalVelocity float64
	Grounded         bool
	Blocked          bool
	Drivers          motion.Drivers
}

// Runner plays input into one character and steps the world in lockstep.
type Runner struct {
	world     donburi.World
	character *donburi.Entry
}

func NewRunner(w donburi.World, character *donburi.Entry) *Runner {
	return &Runner{world: w, character: character}
}

// Tick writes one tick of input, runs the pipeline once and samples the
// character.
func (r *Runner) Tick(st Step) Sample {
	st.Apply(components.Input.Get(r.character))
	systems.Step(r.world)
	return r.sample()
}

// Run plays the whole script, calling fn after every tick when fn is not nil.
// Returns the last sample.
func (r *Runner) Run(script Script, fn func(Sample)) Sample {
	var last Sample
	for _, st := range script {
		for i := 0; i < st.Ticks; i++ {
			last = r.Tick(st)
			if fn != nil {
				fn(last)
			}
		}
	}
	return last
}

func (r *Runner) sample() Sample {
	e := r.character
	state := components.State.Get(e)
	transform := components.Transform.Get(e)
	last := components.Motion.Get(e).Last

	var tick uint64
	if clock, ok := components.Clock.First(r.world); ok {
		tick = components.Clock.Get(clock).Tick
	}

	return Sample{
		Tick:             tick,
		Posture:          state.Posture,
		PreviousPosture:  state.PreviousPosture,
		Locomotion:       state.Locomotion,
		Arm:              state.Arm,
		Position:         transform.Position,
		Yaw:              transform.Yaw,
		VerticalVelocity: components.Vertical.Get(e).Velocity,
		Grounded:         components.MotionContext.Get(e).Grounded,
		Blocked:          last.Blocked,
		Drivers:          components.AnimationDrivers.Get(e).Drivers,
	}
}
