package jatt

import (
	"fmt"
	"hash/fnv"
)

// Shape is the render-ready geometry of one entity in world units.
// Boxes use X, Y, W, H with (X, Y) the top-left corner.
// Circles use X, Y as the center and R as the radius.
type Shape struct {
	X, Y float64
	W, H float64
	R    float64
}

// PlayerView is the render-ready state of the player.
type PlayerView struct {
	Shape
	Health      int
	HealthRatio float64
}

// Frame is a read-only view of the session after a tick.
// It holds copies, so it stays valid while the simulation moves on.
type Frame struct {
	Tick       uint64
	Phase      Phase
	Paused     bool
	Score      int
	WorldW     float64
	WorldH     float64
	Player     PlayerView
	Drones     []Shape
	Bullets    []Shape
	Explosions []Shape
	Clouds     []Shape
}

// Hash returns a digest of the frame for determinism testing.
func (f *Frame) Hash() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "T:%d;P:%d;Z:%v;S:%d;", f.Tick, f.Phase, f.Paused, f.Score)
	fmt.Fprintf(h, "J:%v:%d;", f.Player.Shape, f.Player.Health)

	for _, group := range []struct {
		tag    string
		shapes []Shape
	}{
		{"D", f.Drones},
		{"B", f.Bullets},
		{"E", f.Explosions},
		{"C", f.Clouds},
	} {
		fmt.Fprintf(h, "%s:", group.tag)
		for _, s := range group.shapes {
			fmt.Fprintf(h, "%v,", s)
		}
		fmt.Fprint(h, ";")
	}

	return h.Sum64()
}
