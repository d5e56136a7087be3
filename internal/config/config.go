// Package config provides YAML/TOML-based game configuration loading
// for Flying Jatt.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned (wrapped) when a loaded config fails validation.
var ErrInvalid = errors.New("invalid config")

// JattConfig contains all tunable constants of the game.
// Values are in world units (pixels of a 400x600 playfield) and ticks.
type JattConfig struct {
	World      WorldConfig     `yaml:"world" toml:"world"`
	Physics    PhysicsConfig   `yaml:"physics" toml:"physics"`
	Player     PlayerConfig    `yaml:"player" toml:"player"`
	Drones     DroneConfig     `yaml:"drones" toml:"drones"`
	Bullets    BulletConfig    `yaml:"bullets" toml:"bullets"`
	Explosions ExplosionConfig `yaml:"explosions" toml:"explosions"`
	Clouds     CloudConfig     `yaml:"clouds" toml:"clouds"`
}

// WorldConfig defines the playfield size.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PhysicsConfig defines vertical movement.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity"`             // Added to velocity every tick
	FlapStrength float64 `yaml:"flap_strength" toml:"flap_strength"` // Velocity set by a flap (negative = up)
}

// PlayerConfig defines the player body and weapon.
type PlayerConfig struct {
	X               float64 `yaml:"x" toml:"x"`
	StartY          float64 `yaml:"start_y" toml:"start_y"`
	Width           float64 `yaml:"width" toml:"width"`
	Height          float64 `yaml:"height" toml:"height"`
	MaxHealth       int     `yaml:"max_health" toml:"max_health"`
	CollisionDamage int     `yaml:"collision_damage" toml:"collision_damage"`
	FireCooldownMS  int     `yaml:"fire_cooldown_ms" toml:"fire_cooldown_ms"`
}

// FireCooldown returns the minimum time between two shots.
func (p PlayerConfig) FireCooldown() time.Duration {
	return time.Duration(p.FireCooldownMS) * time.Millisecond
}

// DroneConfig defines hostile drones and their spawning.
type DroneConfig struct {
	Width           float64 `yaml:"width" toml:"width"`
	Height          float64 `yaml:"height" toml:"height"`
	Health          int     `yaml:"health" toml:"health"`
	BaseSpeed       float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedJitter     float64 `yaml:"speed_jitter" toml:"speed_jitter"` // Random extra speed in [0, jitter)
	ScoreValue      int     `yaml:"score_value" toml:"score_value"`
	SpawnIntervalMS int     `yaml:"spawn_interval_ms" toml:"spawn_interval_ms"`
	SpawnMargin     int     `yaml:"spawn_margin" toml:"spawn_margin"` // Spawn y is uniform in [margin, height-margin]
}

// SpawnInterval returns the minimum time between two spawns.
func (d DroneConfig) SpawnInterval() time.Duration {
	return time.Duration(d.SpawnIntervalMS) * time.Millisecond
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Radius float64 `yaml:"radius" toml:"radius"`
	Speed  float64 `yaml:"speed" toml:"speed"`
	Damage int     `yaml:"damage" toml:"damage"`
}

// ExplosionConfig defines the grow/shrink ring effect.
type ExplosionConfig struct {
	StartRadius float64 `yaml:"start_radius" toml:"start_radius"`
	MaxRadius   float64 `yaml:"max_radius" toml:"max_radius"`
	Step        float64 `yaml:"step" toml:"step"`
}

// CloudConfig defines the decorative background.
type CloudConfig struct {
	Count int     `yaml:"count" toml:"count"`
	Speed float64 `yaml:"speed" toml:"speed"`
}

// Validate checks that every value can drive a simulation.
func (c JattConfig) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Player.Height <= c.World.Height, "player taller than world")
	check(c.Player.MaxHealth > 0, "player.max_health must be positive")
	check(c.Player.CollisionDamage >= 0, "player.collision_damage must not be negative")
	check(c.Player.FireCooldownMS >= 0, "player.fire_cooldown_ms must not be negative")
	check(c.Drones.Width > 0 && c.Drones.Height > 0, "drone size must be positive")
	check(c.Drones.Health > 0, "drones.health must be positive")
	check(c.Drones.BaseSpeed > 0, "drones.base_speed must be positive")
	check(c.Drones.SpeedJitter >= 0, "drones.speed_jitter must not be negative")
	check(c.Drones.SpawnIntervalMS > 0, "drones.spawn_interval_ms must be positive")
	check(c.Drones.SpawnMargin >= 0 && float64(2*c.Drones.SpawnMargin) <= c.World.Height,
		"drones.spawn_margin leaves no spawn range")
	check(c.Bullets.Radius > 0, "bullets.radius must be positive")
	check(c.Bullets.Speed > 0, "bullets.speed must be positive")
	check(c.Explosions.Step > 0, "explosions.step must be positive")
	check(c.Explosions.MaxRadius > c.Explosions.StartRadius, "explosions.max_radius must exceed start_radius")
	check(c.Clouds.Count >= 0, "clouds.count must not be negative")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %v", ErrInvalid, problems)
	}
	return nil
}
