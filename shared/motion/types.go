// Package motion holds the per-tick locomotion rules for a third-person
// character: posture transitions, vertical velocity integration, input
// projection, velocity smoothing and animation driver mapping.
// It has no dependencies on donburi systems, resolv or ebitengine so the
// rules can be tested as plain functions.
package motion

// Posture is the discrete vertical/body state of the character.
type Posture int

const (
	Stand Posture = iota
	Crouch
	Midair
	Landing
)

func (p Posture) String() string {
	switch p {
	case Stand:
		return "Stand"
	case Crouch:
		return "Crouch"
	case Midair:
		return "Midair"
	case Landing:
		return "Landing"
	}
	return "Unknown"
}

// Locomotion is the horizontal movement intensity, derived from input every tick.
type Locomotion int

const (
	Idle Locomotion = iota
	Walk
	Run
)

func (l Locomotion) String() string {
	switch l {
	case Idle:
		return "Idle"
	case Walk:
		return "Walk"
	case Run:
		return "Run"
	}
	return "Unknown"
}

// ArmMode gates turn-in-place rotation.
type ArmMode int

const (
	ArmNormal ArmMode = iota
	ArmAim
)

func (a ArmMode) String() string {
	if a == ArmAim {
		return "Aim"
	}
	return "Normal"
}

// Tuning carries every constant the rules read. Built once per character
// from the config package.
type Tuning struct {
	// Vertical
	Gravity         float64 // units/s^2, must be negative
	MaxJumpHeight   float64 // apex height of a jump
	FallMultiplier  float64 // gravity scale while falling or after jump release
	LandingCooldown float64 // seconds spent in Landing after touchdown

	// Speeds fed to the move-speed driver
	WalkSpeed   float64
	RunSpeed    float64
	CrouchSpeed float64

	// Posture blend targets
	StandBlend  float64
	CrouchBlend float64
	MidairBlend float64

	// Damp times (seconds)
	LocomotionDamp float64
	LandingDamp    float64
	TurnDamp       float64

	// Degrees of yaw per radian of turn angle per second
	TurnRate float64
}
