package jatt

import (
	"time"

	"github.com/vovakirdan/flying-jatt/internal/config"
	"github.com/vovakirdan/flying-jatt/internal/core"
)

// Player is the flying character: a kinematic body with gravity,
// a health pool, and a cooldown-gated gun.
type Player struct {
	X, Y      float64
	Velocity  float64 // Vertical velocity, negative is up
	Width     float64
	Height    float64
	Health    int
	MaxHealth int
	lastShot  time.Time // Zero until the first shot, so the first shot is never gated
}

// NewPlayer creates a player at its start position with full health.
func NewPlayer(cfg config.PlayerConfig) Player {
	return Player{
		X:         cfg.X,
		Y:         cfg.StartY,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
	}
}

// Flap sets the vertical velocity to the upward impulse.
func (p *Player) Flap(strength float64) {
	p.Velocity = strength
}

// Fire returns a bullet leaving the player's leading edge at its vertical
// midpoint, if more than cooldown has passed since the last shot.
func (p *Player) Fire(now time.Time, cooldown time.Duration, cfg config.BulletConfig) (Bullet, bool) {
	if !p.lastShot.IsZero() && core.Elapsed(now, p.lastShot) <= cooldown {
		return Bullet{}, false
	}
	p.lastShot = now
	return NewBullet(p.X+p.Width, p.Y+p.Height/2, cfg), true
}

// Tick applies gravity and keeps the player inside [0, worldH-Height].
// Velocity is zeroed whenever the position is clamped.
func (p *Player) Tick(gravity, worldH float64) {
	p.Velocity += gravity
	p.Y += p.Velocity

	if p.Y < 0 {
		p.Y = 0
		p.Velocity = 0
	}
	if maxY := worldH - p.Height; p.Y > maxY {
		p.Y = maxY
		p.Velocity = 0
	}
}

// TakeDamage lowers health, never below zero.
func (p *Player) TakeDamage(n int) {
	p.Health -= n
	if p.Health < 0 {
		p.Health = 0
	}
}

// Dead reports whether health is exhausted.
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// HealthRatio returns health as a fraction of max health in [0, 1].
func (p *Player) HealthRatio() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return core.ClampF(float64(p.Health)/float64(p.MaxHealth), 0, 1)
}

// Bounds returns the player's collision box.
func (p *Player) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}
