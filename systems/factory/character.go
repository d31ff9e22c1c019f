package factory

import (
	"fmt"
	"math/rand"

	"github.com/automoto/thirdperson/animation"
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CreateCharacter spawns a character with its feet at position. When a level
// exists the character gets a collider in its space. The current config is
// validated first and nothing is spawned if it is invalid.
func CreateCharacter(w donburi.World, position mgl64.Vec3) (*donburi.Entry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("create character: %w", err)
	}

	var extra []donburi.IComponentType
	level, hasLevel := components.Level.First(w)
	if hasLevel {
		extra = append(extra, components.Object)
	}
	character := archetypes.Character.Spawn(w, extra...)

	components.Transform.SetValue(character, components.TransformData{Position: position})
	components.State.SetValue(character, components.StateData{
		Posture:         motion.Stand,
		PreviousPosture: motion.Stand,
	})
	components.Character.SetValue(character, components.CharacterData{
		Tuning:            cfg.Tuning(),
		Rand:              rand.New(rand.NewSource(cfg.Character.RandomSeed)),
		Radius:            cfg.Character.Radius,
		SkinWidth:         cfg.Character.SkinWidth,
		Height:            cfg.Character.Height,
		GroundCheckOffset: cfg.Character.GroundCheckOffset,
	})
	components.Animator.SetValue(character, components.AnimatorData{
		Cycle: animation.NewCycle(cfg.Animation.CycleDuration),
	})

	if hasLevel {
		world := components.Level.Get(level).World
		body := world.NewBody(position, cfg.Character.Radius, cfg.Character.Height)
		body.Object.Data = character
		components.Object.SetValue(character, components.ObjectData{Object: body.Object})
		components.Collider.SetValue(character, components.ColliderData{Ground: body, Mover: body})
	}

	return character, nil
}

// SpawnCharacter creates a character at the level's spawn point with the
// given index.
func SpawnCharacter(w donburi.World, spawnIndex int) (*donburi.Entry, error) {
	level, ok := components.Level.First(w)
	if !ok {
		return nil, fmt.Errorf("spawn character: no level loaded")
	}
	data := components.Level.Get(level)
	sp, ok := data.Data.Spawn(spawnIndex)
	if !ok {
		return nil, fmt.Errorf("spawn character: level %q has no spawn points", data.Name)
	}
	return CreateCharacter(w, data.World.SpawnPosition(sp))
}
