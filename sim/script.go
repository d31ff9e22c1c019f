// Package sim drives characters headlessly from a scripted input timeline.
package sim

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	dmath "github.com/yohamta/donburi/features/math"
)

var ErrScript = errors.New("invalid input script")

// Step is one run of identical input ticks.
type Step struct {
	Move    dmath.Vec2
	Actions [cfg.ActionCount]bool
	Ticks   int
}

// Script is an ordered input timeline.
type Script []Step

// Ticks returns the total length of the script.
func (s Script) Ticks() int {
	n := 0
	for _, st := range s {
		n += st.Ticks
	}
	return n
}

// Apply writes the step into the character's input for the coming tick.
func (st Step) Apply(input *components.InputData) {
	input.Advance()
	input.Move = st.Move
	input.Current = st.Actions
}

var directions = map[string]dmath.Vec2{
	"forward": {Y: 1},
	"walk":    {Y: 1},
	"back":    {Y: -1},
	"left":    {X: -1},
	"right":   {X: 1},
}

// ParseScript parses a comma separated list of steps. Each step is a
// '+'-joined set of tokens with an optional ":ticks" suffix, e.g.
// "walk:30,walk+jump:1,run+left:60". Tokens are idle, walk, forward, back,
// left, right, run, crouch, aim and jump. run implies forward when no
// direction is given.
func ParseScript(src string) (Script, error) {
	var script Script
	for i, raw := range strings.Split(src, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		st, err := parseStep(raw)
		if err != nil {
			return nil, fmt.Errorf("step %d %q: %w", i+1, raw, err)
		}
		script = append(script, st)
	}
	if len(script) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrScript)
	}
	return script, nil
}

func parseStep(raw string) (Step, error) {
	st := Step{Ticks: 1}

	body, count, hasCount := strings.Cut(raw, ":")
	if hasCount {
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || n <= 0 {
			return Step{}, fmt.Errorf("%w: tick count %q", ErrScript, count)
		}
		st.Ticks = n
	}

	moved := false
	for _, tok := range strings.Split(body, "+") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "idle" {
			continue
		}
		if dir, ok := directions[tok]; ok {
			st.Move.X += dir.X
			st.Move.Y += dir.Y
			moved = true
			continue
		}
		id, ok := cfg.ActionByName(tok)
		if !ok {
			return Step{}, fmt.Errorf("%w: unknown token %q", ErrScript, tok)
		}
		st.Actions[id] = true
	}

	if st.Actions[cfg.ActionRun] && !moved {
		st.Move = directions["forward"]
	}
	if l := math.Hypot(st.Move.X, st.Move.Y); l > 1 {
		st.Move.X /= l
		st.Move.Y /= l
	}
	return st, nil
}
