package config

import (
	_ "embed"
)

//go:embed defaults/jatt.yaml
var defaultJattYAML []byte

// DefaultJattConfig returns the hardcoded default configuration.
// It mirrors defaults/jatt.yaml and is used when the embedded file cannot be parsed.
func DefaultJattConfig() JattConfig {
	return JattConfig{
		World: WorldConfig{
			Width:  400,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:      0.25,
			FlapStrength: -7,
		},
		Player: PlayerConfig{
			X:               100,
			StartY:          300,
			Width:           50,
			Height:          60,
			MaxHealth:       100,
			CollisionDamage: 10,
			FireCooldownMS:  300,
		},
		Drones: DroneConfig{
			Width:           60,
			Height:          60,
			Health:          30,
			BaseSpeed:       3,
			SpeedJitter:     2,
			ScoreValue:      10,
			SpawnIntervalMS: 1500,
			SpawnMargin:     50,
		},
		Bullets: BulletConfig{
			Radius: 5,
			Speed:  10,
			Damage: 10,
		},
		Explosions: ExplosionConfig{
			StartRadius: 0,
			MaxRadius:   30,
			Step:        2,
		},
		Clouds: CloudConfig{
			Count: 5,
			Speed: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultJattYAML
}
