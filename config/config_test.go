package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsAreValid(t *testing.T) {
	Reset()
	if err := Validate(); err != nil {
		t.Fatalf("Validate() on defaults = %v", err)
	}
	if got := TickDelta(); got != 1.0/60 {
		t.Fatalf("TickDelta() = %v, want 1/60", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func()
		field  string
	}{
		{name: "positive gravity", mutate: func() { Physics.Gravity = 9.8 }, field: "physics.gravity"},
		{name: "zero jump height", mutate: func() { Physics.MaxJumpHeight = 0 }, field: "physics.max_jump_height"},
		{name: "fall multiplier below one", mutate: func() { Physics.FallMultiplier = 0.5 }, field: "physics.fall_multiplier"},
		{name: "zero cooldown", mutate: func() { Physics.LandingCooldown = 0 }, field: "physics.landing_cooldown"},
		{name: "negative run speed", mutate: func() { Locomotion.RunSpeed = -1 }, field: "locomotion.run_speed"},
		{name: "negative damp", mutate: func() { Locomotion.TurnDamp = -0.1 }, field: "locomotion.turn_damp"},
		{name: "zero radius", mutate: func() { Character.Radius = 0 }, field: "character.radius"},
		{name: "probe shorter than radius", mutate: func() { Character.GroundCheckOffset = 0.1 }, field: "ground probe distance"},
		{name: "deadzone of one", mutate: func() { Input.AnalogDeadzone = 1 }, field: "input.analog_deadzone"},
		{name: "skin swallows first jump step", mutate: func() { Character.SkinWidth = 0.08 }, field: "character.skin_width"},
		{name: "zero tick rate", mutate: func() { Sim.TickRate = 0 }, field: "sim.tick_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)
			tt.mutate()

			err := Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name %q", err, tt.field)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name: "yaml overlay keeps unset keys",
			file: "tuning.yaml",
			content: `physics:
  gravity: -20
locomotion:
  run_speed: 7
sim:
  tick_rate: 30
`,
			check: func(t *testing.T) {
				if Physics.Gravity != -20 {
					t.Errorf("Physics.Gravity = %v, want -20", Physics.Gravity)
				}
				if Physics.MaxJumpHeight != 1.5 {
					t.Errorf("Physics.MaxJumpHeight = %v, want default 1.5", Physics.MaxJumpHeight)
				}
				if Locomotion.RunSpeed != 7 || Locomotion.WalkSpeed != 2.5 {
					t.Errorf("Locomotion = %+v", Locomotion)
				}
				if Sim.TickRate != 30 {
					t.Errorf("Sim.TickRate = %d, want 30", Sim.TickRate)
				}
			},
		},
		{
			name: "toml overlay",
			file: "tuning.toml",
			content: `[character]
radius = 0.25
random_seed = 42

[animation]
root_motion_stand_in = false
`,
			check: func(t *testing.T) {
				if Character.Radius != 0.25 || Character.RandomSeed != 42 {
					t.Errorf("Character = %+v", Character)
				}
				if Character.GroundCheckOffset != 0.5 {
					t.Errorf("Character.GroundCheckOffset = %v, want default 0.5", Character.GroundCheckOffset)
				}
				if Animation.RootMotionStandIn {
					t.Error("Animation.RootMotionStandIn should be false")
				}
			},
		},
		{
			name:    "malformed yaml leaves globals untouched",
			file:    "broken.yml",
			content: "physics:\n  gravity: [1\n",
			wantErr: true,
			check: func(t *testing.T) {
				if Physics.Gravity != -9.8 {
					t.Errorf("Physics.Gravity = %v, want -9.8", Physics.Gravity)
				}
			},
		},
		{
			name:    "unknown extension",
			file:    "tuning.json",
			content: "{}",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)

			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write %s: %v", path, err)
			}

			err := LoadFile(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if !os.IsNotExist(err) {
		t.Fatalf("LoadFile() = %v, want not-exist error", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)

			Locomotion.TurnRate = 90
			Character.RandomSeed = 7
			data, err := Encode(format)
			if err != nil {
				t.Fatalf("Encode() = %v", err)
			}

			Reset()
			if err := Decode(data, format); err != nil {
				t.Fatalf("Decode() = %v", err)
			}
			if Locomotion.TurnRate != 90 || Character.RandomSeed != 7 {
				t.Fatalf("round trip lost values: turn rate %v, seed %d", Locomotion.TurnRate, Character.RandomSeed)
			}
		})
	}
}

func TestDecodeValid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		gravity float64
	}{
		{name: "valid tuning applies", data: "physics:\n  gravity: -12\n", gravity: -12},
		{name: "invalid tuning rolls back", data: "physics:\n  gravity: 5\n", wantErr: ErrInvalid, gravity: -9.8},
		{name: "skin too wide rolls back", data: "physics:\n  gravity: -12\ncharacter:\n  skin_width: 0.08\n", wantErr: ErrInvalid, gravity: -9.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)

			err := DecodeValid([]byte(tt.data), FormatYAML)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeValid() = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("DecodeValid() = %v", err)
			}
			if Physics.Gravity != tt.gravity {
				t.Errorf("Physics.Gravity = %v, want %v", Physics.Gravity, tt.gravity)
			}
			if err := Validate(); err != nil {
				t.Errorf("config left invalid: %v", err)
			}
		})
	}
}

func TestActionByName(t *testing.T) {
	for _, id := range []ActionID{ActionRun, ActionCrouch, ActionAim, ActionJump} {
		got, ok := ActionByName(id.String())
		if !ok || got != id {
			t.Errorf("ActionByName(%q) = %v, %v", id.String(), got, ok)
		}
	}
	if _, ok := ActionByName("none"); ok {
		t.Error("ActionByName(none) should fail")
	}
	if _, ok := ActionByName("fly"); ok {
		t.Error("ActionByName(fly) should fail")
	}
}

func TestDriverNamesCoverEveryChannel(t *testing.T) {
	if len(DriverNames) != 5 {
		t.Fatalf("len(DriverNames) = %d, want 5", len(DriverNames))
	}
	if DriverNames[0] != "player pos" {
		t.Errorf("posture driver name = %q", DriverNames[0])
	}
}
