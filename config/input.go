package config

// ActionID represents a logical button action. Planar movement is analog and
// carried separately.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionRun
	ActionCrouch
	ActionAim
	ActionJump
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:   "none",
	ActionRun:    "run",
	ActionCrouch: "crouch",
	ActionAim:    "aim",
	ActionJump:   "jump",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionByName looks up an action by its lower-case name.
func ActionByName(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name && ActionID(id) != ActionNone {
			return ActionID(id), true
		}
	}
	return ActionNone, false
}
