package jatt

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flying-jatt/internal/config"
	"github.com/vovakirdan/flying-jatt/internal/core"
)

// Spawner emits one drone each time the spawn interval elapses.
type Spawner struct {
	cfg       config.DroneConfig
	worldW    float64
	worldH    float64
	rng       *rand.Rand
	lastSpawn time.Time
}

// NewSpawner creates a spawner. The timer starts at now.
func NewSpawner(cfg config.DroneConfig, world config.WorldConfig, rng *rand.Rand, now time.Time) *Spawner {
	return &Spawner{
		cfg:       cfg,
		worldW:    world.Width,
		worldH:    world.Height,
		rng:       rng,
		lastSpawn: now,
	}
}

// Reset restarts the spawn timer at now.
func (s *Spawner) Reset(now time.Time) {
	s.lastSpawn = now
}

// Update spawns a drone into reg if at least one interval has passed since
// the last spawn. At most one drone is spawned per call.
func (s *Spawner) Update(now time.Time, reg *Registry) bool {
	if core.Elapsed(now, s.lastSpawn) < s.cfg.SpawnInterval() {
		return false
	}
	s.lastSpawn = now
	reg.AddDrone(s.next())
	return true
}

// next rolls a drone at the right edge with a random altitude and speed.
// Altitude is uniform over [margin, worldH-margin], inclusive.
func (s *Spawner) next() Drone {
	lo := s.cfg.SpawnMargin
	hi := int(s.worldH) - s.cfg.SpawnMargin
	y := lo
	if hi > lo {
		y = lo + s.rng.Intn(hi-lo+1)
	}
	speed := s.cfg.BaseSpeed + s.rng.Float64()*s.cfg.SpeedJitter
	return NewDrone(s.worldW, float64(y), speed, s.cfg)
}
