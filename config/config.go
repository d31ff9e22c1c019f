package config

// PhysicsConfig contains vertical motion constants
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity" toml:"gravity"`                   // world units/s², must be negative
	MaxJumpHeight   float64 `yaml:"max_jump_height" toml:"max_jump_height"`   // apex height of a held jump
	FallMultiplier  float64 `yaml:"fall_multiplier" toml:"fall_multiplier"`   // gravity scale when falling or jump released
	LandingCooldown float64 `yaml:"landing_cooldown" toml:"landing_cooldown"` // seconds spent in Landing after touchdown
}

// LocomotionConfig contains movement speeds and animation driver tuning
type LocomotionConfig struct {
	// Movement speeds (world units/s)
	WalkSpeed   float64 `yaml:"walk_speed" toml:"walk_speed"`
	RunSpeed    float64 `yaml:"run_speed" toml:"run_speed"`
	CrouchSpeed float64 `yaml:"crouch_speed" toml:"crouch_speed"`

	// Posture blend thresholds
	StandBlend  float64 `yaml:"stand_blend" toml:"stand_blend"`
	CrouchBlend float64 `yaml:"crouch_blend" toml:"crouch_blend"`
	MidairBlend float64 `yaml:"midair_blend" toml:"midair_blend"`

	// Damp times (seconds)
	LocomotionDamp float64 `yaml:"locomotion_damp" toml:"locomotion_damp"`
	LandingDamp    float64 `yaml:"landing_damp" toml:"landing_damp"`
	TurnDamp       float64 `yaml:"turn_damp" toml:"turn_damp"`

	TurnRate float64 `yaml:"turn_rate" toml:"turn_rate"` // yaw degrees per radian of turn angle per second
}

// CharacterConfig contains the character collider and ground probe shape
type CharacterConfig struct {
	Radius            float64 `yaml:"radius" toml:"radius"`
	SkinWidth         float64 `yaml:"skin_width" toml:"skin_width"`
	Height            float64 `yaml:"height" toml:"height"`
	GroundCheckOffset float64 `yaml:"ground_check_offset" toml:"ground_check_offset"` // probe start above the feet
	RandomSeed        int64   `yaml:"random_seed" toml:"random_seed"`                 // seeds the idle feet tween
}

// CollisionConfig contains the side-profile collision space settings
type CollisionConfig struct {
	PixelsPerUnit float64 `yaml:"pixels_per_unit" toml:"pixels_per_unit"`
	CellSize      int     `yaml:"cell_size" toml:"cell_size"` // resolv space cell size in pixels
}

// AnimationConfig contains settings for the built-in root motion stand-in
type AnimationConfig struct {
	// When false the host writes RootMotion itself every tick.
	RootMotionStandIn bool    `yaml:"root_motion_stand_in" toml:"root_motion_stand_in"`
	CycleDuration     float64 `yaml:"cycle_duration" toml:"cycle_duration"` // seconds per locomotion cycle at walk speed
}

// SimConfig contains fixed-step simulation settings
type SimConfig struct {
	TickRate int `yaml:"tick_rate" toml:"tick_rate"` // ticks per second
}

// InputConfig contains host-agnostic input settings
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64 `yaml:"analog_deadzone" toml:"analog_deadzone"`
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Locomotion LocomotionConfig
var Character CharacterConfig
var Collision CollisionConfig
var Animation AnimationConfig
var Sim SimConfig
var Input InputConfig

func init() {
	Reset()
}

// Reset restores every global to its default value.
func Reset() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Physics = PhysicsConfig{
		Gravity:         -9.8,
		MaxJumpHeight:   1.5,
		FallMultiplier:  1.5,
		LandingCooldown: 0.15,
	}

	Locomotion = LocomotionConfig{
		WalkSpeed:   2.5,
		RunSpeed:    5.5,
		CrouchSpeed: 1.5,

		StandBlend:  1.0,
		CrouchBlend: 0.0,
		MidairBlend: 2.1,

		LocomotionDamp: 0.1,
		LandingDamp:    0.03,
		TurnDamp:       0.1,

		TurnRate: 180,
	}

	Character = CharacterConfig{
		Radius:            0.3,
		SkinWidth:         0.02,
		Height:            1.8,
		GroundCheckOffset: 0.5,
		RandomSeed:        1,
	}

	Collision = CollisionConfig{
		PixelsPerUnit: 32,
		CellSize:      16,
	}

	Animation = AnimationConfig{
		RootMotionStandIn: true,
		CycleDuration:     1.0,
	}

	Sim = SimConfig{
		TickRate: 60,
	}

	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}
}

// TickDelta returns the fixed step duration in seconds.
func TickDelta() float64 {
	if Sim.TickRate <= 0 {
		return 0
	}
	return 1.0 / float64(Sim.TickRate)
}
