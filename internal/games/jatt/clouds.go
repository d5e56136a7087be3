package jatt

import (
	"math/rand"
)

// cloudWrapX is how far left a cloud drifts before it wraps.
const cloudWrapX = -50

// cloudWrapJitter is the largest extra offset past the right edge on wrap.
const cloudWrapJitter = 100

// Cloud is a background decoration. It never collides.
type Cloud struct {
	X, Y float64
}

// newClouds scatters n clouds over the top half of the world.
func newClouds(n int, worldW, worldH float64, rng *rand.Rand) []Cloud {
	clouds := make([]Cloud, n)
	for i := range clouds {
		clouds[i] = Cloud{
			X: float64(rng.Intn(int(worldW) + 1)),
			Y: float64(rng.Intn(int(worldH)/2 + 1)),
		}
	}
	return clouds
}

// driftClouds moves every cloud left by speed, wrapping clouds that have
// left the screen back past the right edge.
func driftClouds(clouds []Cloud, speed, worldW float64, rng *rand.Rand) {
	for i := range clouds {
		c := &clouds[i]
		if c.X > cloudWrapX {
			c.X -= speed
			continue
		}
		c.X = worldW + float64(rng.Intn(cloudWrapJitter+1))
	}
}
