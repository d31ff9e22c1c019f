package viewer

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/automoto/thirdperson/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	solidColor   = color.RGBA{100, 100, 100, 255}
	bodyColor    = color.RGBA{0, 0, 255, 255}
	probeColor   = color.RGBA{0, 255, 255, 255}
	facingColor  = color.RGBA{255, 200, 0, 255}
	landingColor = color.RGBA{255, 0, 0, 255}
	midairColor  = color.RGBA{0, 255, 0, 255}
)

// view is the offset from collision pixels to screen pixels.
type view struct {
	x, y float64
}

func (v view) outline(screen *ebiten.Image, obj *resolv.Object, c color.Color) {
	x, y := float32(obj.X+v.x), float32(obj.Y+v.y)
	w, h := float32(obj.W), float32(obj.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

// DrawLevel draws every solid and the ground probe boxes.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image, v view) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(entry)

	for _, obj := range level.World.Solids() {
		vector.FillRect(screen, float32(obj.X+v.x), float32(obj.Y+v.y), float32(obj.W), float32(obj.H), solidColor, false)
	}

	for _, obj := range level.World.Space.Objects() {
		if obj.HasTags(tags.ResolvProbe) {
			v.outline(screen, obj, probeColor)
		}
	}
}

// DrawCharacters outlines each character collider, tinted by posture, with
// a tick on the side it faces.
func DrawCharacters(e *ecs.ECS, screen *ebiten.Image, v view) {
	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(entry).Object
		state := components.State.Get(entry)
		transform := components.Transform.Get(entry)

		c := color.Color(bodyColor)
		switch state.Posture {
		case motion.Midair:
			c = midairColor
		case motion.Landing:
			c = landingColor
		}
		v.outline(screen, obj, c)

		// Crouch squashes the drawn body, the collider keeps its height.
		if state.Posture == motion.Crouch {
			vector.FillRect(screen, float32(obj.X+v.x), float32(obj.Y+v.y+obj.H/2), float32(obj.W), 1, c, false)
		}

		facing := motion.Forward(transform.Yaw).X()
		cx := obj.X + obj.W/2 + v.x
		cy := obj.Y + obj.H/4 + v.y
		vector.FillRect(screen, float32(cx), float32(cy), float32(facing*obj.W), 2, facingColor, false)
	})
}

// DrawHUD prints the character state and every driver value.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Character.First(e.World)
	if !ok {
		return
	}
	state := components.State.Get(entry)
	transform := components.Transform.Get(entry)
	vertical := components.Vertical.Get(entry)
	drivers := components.AnimationDrivers.Get(entry)

	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f\n", ebiten.ActualTPS())
	fmt.Fprintf(&b, "posture %s <- %s  loco %s  arm %s  (%d ticks)\n",
		state.Posture, state.PreviousPosture, state.Locomotion, state.Arm, state.StateTimer)
	fmt.Fprintf(&b, "pos (%.2f, %.2f, %.2f)  yaw %.1f  v %.2f\n",
		transform.Position.X(), transform.Position.Y(), transform.Position.Z(), transform.Yaw, vertical.Velocity)
	for id := motion.DriverID(0); id < motion.DriverCount; id++ {
		fmt.Fprintf(&b, "%-15s %6.2f\n", cfg.DriverNames[id], drivers.Value(id))
	}
	b.WriteString("\nWASD move  Shift run  C crouch  F aim  Space jump\nQ/E orbit camera  R respawn  F5 save tuning  F9 load tuning")

	ebitenutil.DebugPrint(screen, b.String())
}
