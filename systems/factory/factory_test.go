package factory

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/automoto/thirdperson/systems"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestCameraBasis(t *testing.T) {
	tests := []struct {
		name         string
		yaw, pitch   float64
		forward      mgl64.Vec3
		right        mgl64.Vec3
		checkForward bool
	}{
		{name: "default", forward: mgl64.Vec3{0, 0, 1}, right: mgl64.Vec3{1, 0, 0}, checkForward: true},
		{name: "quarter turn", yaw: 90, forward: mgl64.Vec3{1, 0, 0}, right: mgl64.Vec3{0, 0, -1}, checkForward: true},
		{name: "pitched", pitch: 30, right: mgl64.Vec3{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			basis := CameraBasis(tt.yaw, tt.pitch)
			if tt.checkForward && !basis.Forward.ApproxEqualThreshold(tt.forward, 1e-9) {
				t.Errorf("Forward = %v, want %v", basis.Forward, tt.forward)
			}
			if !basis.Right.ApproxEqualThreshold(tt.right, 1e-9) {
				t.Errorf("Right = %v, want %v", basis.Right, tt.right)
			}
		})
	}

	pitched := CameraBasis(0, 30)
	if pitched.Forward.Y() >= 0 {
		t.Fatalf("pitched forward %v should point down", pitched.Forward)
	}
	if flat := motion.FlattenForward(pitched.Forward); !flat.ApproxEqualThreshold(mgl64.Vec3{0, 0, 1}, 1e-9) {
		t.Fatalf("flattened pitched forward = %v", flat)
	}
}

func TestLoadLevel_Default(t *testing.T) {
	cfg.Reset()
	w := donburi.NewWorld()

	level, err := LoadLevel(w, "")
	if err != nil {
		t.Fatalf("LoadLevel() = %v", err)
	}
	data := components.Level.Get(level)
	if data.Name != "proving_ground" {
		t.Errorf("Name = %q", data.Name)
	}
	if data.World == nil || len(data.World.Solids()) == 0 {
		t.Fatal("level has no collision solids")
	}
}

func TestLoadLevel_MissingFile(t *testing.T) {
	w := donburi.NewWorld()
	if _, err := LoadLevel(w, filepath.Join(t.TempDir(), "nowhere.tmx")); err == nil {
		t.Fatal("expected error for missing level file")
	}
}

func TestLoadLevel_FromDisk(t *testing.T) {
	cfg.Reset()
	const tmx = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="2" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="2">
 <tileset firstgid="1" name="collision" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="collision.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="wg-tiles" width="4" height="2">
  <data encoding="csv">
0,0,0,0,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="32" y="16"/>
 </objectgroup>
</map>
`
	path := filepath.Join(t.TempDir(), "strip.tmx")
	if err := os.WriteFile(path, []byte(tmx), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	w := donburi.NewWorld()
	level, err := LoadLevel(w, path)
	if err != nil {
		t.Fatalf("LoadLevel() = %v", err)
	}
	data := components.Level.Get(level)
	if data.Name != "strip" {
		t.Errorf("Name = %q, want strip", data.Name)
	}
	if got := len(data.World.Solids()); got != 4 {
		t.Errorf("len(Solids()) = %d, want 4", got)
	}
}

func TestSpawnCharacter_StandsOnFloor(t *testing.T) {
	cfg.Reset()
	w := donburi.NewWorld()
	if _, err := LoadLevel(w, ""); err != nil {
		t.Fatalf("LoadLevel() = %v", err)
	}

	e, err := SpawnCharacter(w, 0)
	if err != nil {
		t.Fatalf("SpawnCharacter() = %v", err)
	}
	if !e.HasComponent(components.Object) {
		t.Fatal("character in a level should carry a resolv object")
	}
	start := components.Transform.Get(e).Position
	if !start.ApproxEqualThreshold(mgl64.Vec3{2, 1, 0}, 1e-9) {
		t.Fatalf("spawn position = %v, want (2, 1, 0)", start)
	}

	for i := 0; i < 30; i++ {
		components.Input.Get(e).Advance()
		systems.Step(w)
	}

	if got := components.State.Get(e).Posture; got != motion.Stand {
		t.Fatalf("posture = %v, want Stand", got)
	}
	if y := components.Transform.Get(e).Position.Y(); math.Abs(y-1) > 1e-9 {
		t.Fatalf("y = %v, want the floor at 1", y)
	}
}

func TestDefaultCamera_ForwardWalksAcrossLevel(t *testing.T) {
	cfg.Reset()
	w := donburi.NewWorld()
	if _, err := LoadLevel(w, ""); err != nil {
		t.Fatalf("LoadLevel() = %v", err)
	}
	CreateCamera(w, DefaultCameraYaw, 20)
	e, err := SpawnCharacter(w, 0)
	if err != nil {
		t.Fatalf("SpawnCharacter() = %v", err)
	}

	for i := 0; i < 300; i++ {
		input := components.Input.Get(e)
		input.Advance()
		input.Move = dmath.Vec2{Y: 1}
		systems.Step(w)
	}

	pos := components.Transform.Get(e).Position
	// The ledge side starts at x=7; the collider stops a radius short of it.
	if pos.X() < 6.5 || pos.X() > 6.75 {
		t.Fatalf("x = %v, want the character stopped against the ledge near 6.7", pos.X())
	}
	if math.Abs(pos.Z()) > 1e-6 {
		t.Fatalf("z = %v, want no travel along the unresolved axis", pos.Z())
	}
	if !components.Motion.Get(e).Last.Blocked {
		t.Fatal("last move should report blocked against the ledge")
	}
}

func TestSpawnCharacter_NoLevel(t *testing.T) {
	cfg.Reset()
	if _, err := SpawnCharacter(donburi.NewWorld(), 0); err == nil {
		t.Fatal("expected error without a level")
	}
}

func TestCreateCharacter_RefusesInvalidConfig(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	cfg.Character.Radius = 0

	w := donburi.NewWorld()
	_, err := CreateCharacter(w, mgl64.Vec3{})
	if !errors.Is(err, cfg.ErrInvalid) {
		t.Fatalf("CreateCharacter() = %v, want ErrInvalid", err)
	}
	if n := w.Len(); n != 0 {
		t.Fatalf("world has %d entities, want none", n)
	}
}
