package viewer

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/features/math"
)

// InputBinding represents the keys and buttons bound to one action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps button actions to keyboard keys and gamepad buttons.
var Bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionRun: {
		Keys:                   []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	cfg.ActionCrouch: {
		Keys:                   []ebiten.Key{ebiten.KeyC, ebiten.KeyControlLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	cfg.ActionAim: {
		Keys:                   []ebiten.Key{ebiten.KeyF},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft},
	},
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
}

// Movement keys, one direction per row.
var moveKeys = [4]struct {
	keys []ebiten.Key
	dir  math.Vec2
}{
	{keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}, dir: math.Vec2{Y: 1}},
	{keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}, dir: math.Vec2{Y: -1}},
	{keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}, dir: math.Vec2{X: -1}},
	{keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}, dir: math.Vec2{X: 1}},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// PollInput swaps the input buffers and writes this tick's keyboard and
// gamepad state. The analog stick wins over keys when it is deflected.
func PollInput(input *components.InputData) {
	input.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	for _, m := range moveKeys {
		for _, key := range m.keys {
			if ebiten.IsKeyPressed(key) {
				input.Move.X += m.dir.X
				input.Move.Y += m.dir.Y
				break
			}
		}
	}
	input.Move = motion.StickMove(input.Move.X, -input.Move.Y, 0)

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		stick := motion.StickMove(
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
			cfg.Input.AnalogDeadzone,
		)
		if stick.X != 0 || stick.Y != 0 {
			input.Move = stick
			break
		}
	}
}
