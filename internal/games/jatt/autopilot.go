package jatt

import (
	"github.com/vovakirdan/flying-jatt/internal/core"
)

// autopilotDeadband keeps the autopilot from flapping on every tick
// while it is roughly level with its target.
const autopilotDeadband = 20

// Autopilot picks input for the next tick from a frame. It keeps the gun
// down, lines up with the nearest drone ahead, and restarts after a game over.
// It is used to drive headless runs.
func Autopilot(f *Frame) core.InputFrame {
	in := core.NewInputFrame()
	if f.Phase == PhaseGameOver {
		in.Set(core.ActionRestart)
		return in
	}

	in.SetHeld(core.ActionFire, true)

	p := f.Player
	targetY := f.WorldH / 2
	nearest := -1.0
	for _, d := range f.Drones {
		if d.X+d.W < p.X {
			continue // Already behind
		}
		if nearest < 0 || d.X < nearest {
			nearest = d.X
			targetY = d.Y + d.H/2
		}
	}

	if p.Y+p.H/2 > targetY+autopilotDeadband {
		in.Set(core.ActionJump)
	}
	return in
}
