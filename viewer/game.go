// Package viewer is an ebitengine window onto the simulation: a side-profile
// debug view of the level, the character collider and its animation drivers.
package viewer

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/systems"
	"github.com/automoto/thirdperson/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerDefault ecs.LayerID = iota
	layerHUD
)

const (
	cameraPitch     = 20.0
	cameraOrbitRate = 90.0 // degrees per second
)

type Game struct {
	ecs       *ecs.ECS
	character *donburi.Entry
	camera    *donburi.Entry
	levelPath string
	cameraYaw float64
	follow    followCamera
}

// NewGame builds the world for levelPath, or the bundled level when empty.
func NewGame(levelPath string) (*Game, error) {
	g := &Game{levelPath: levelPath, cameraYaw: factory.DefaultCameraYaw}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// reset rebuilds the world from the current config.
func (g *Game) reset() error {
	w := donburi.NewWorld()
	if _, err := factory.LoadLevel(w, g.levelPath); err != nil {
		return err
	}
	character, err := factory.SpawnCharacter(w, 0)
	if err != nil {
		return err
	}

	e := ecs.NewECS(w)
	e.AddSystem(g.pollInput)
	e.AddSystem(func(e *ecs.ECS) { systems.Step(e.World) })
	e.AddRenderer(layerDefault, func(e *ecs.ECS, screen *ebiten.Image) {
		DrawLevel(e, screen, g.follow.view())
	})
	e.AddRenderer(layerDefault, func(e *ecs.ECS, screen *ebiten.Image) {
		DrawCharacters(e, screen, g.follow.view())
	})
	e.AddRenderer(layerHUD, DrawHUD)

	g.ecs = e
	g.character = character
	g.follow = followCamera{}
	g.camera = factory.CreateCamera(w, g.cameraYaw, cameraPitch)
	return nil
}

func (g *Game) pollInput(e *ecs.ECS) {
	PollInput(components.Input.Get(g.character))
}

func (g *Game) orbitCamera() {
	step := cameraOrbitRate * cfg.TickDelta()
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyQ):
		g.cameraYaw -= step
	case ebiten.IsKeyPressed(ebiten.KeyE):
		g.cameraYaw += step
	default:
		return
	}
	components.Camera.SetValue(g.camera, factory.CameraBasis(g.cameraYaw, cameraPitch))
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		_ = SaveTuning()
	case inpututil.IsKeyJustPressed(ebiten.KeyF9):
		// Tuning is copied into the character at spawn, so respawn to apply it.
		if ok, err := LoadTuning(); ok && err == nil {
			if err := g.reset(); err != nil {
				return err
			}
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := g.reset(); err != nil {
			return err
		}
	}

	g.orbitCamera()
	g.ecs.Update()
	g.follow.update(g.ecs.World)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.ecs.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}
