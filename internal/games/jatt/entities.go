package jatt

import (
	"github.com/vovakirdan/flying-jatt/internal/config"
	"github.com/vovakirdan/flying-jatt/internal/core"
)

// Drone is a hostile that flies right to left.
type Drone struct {
	X, Y   float64
	Width  float64
	Height float64
	Health int
	Speed  float64
	Value  int // Score awarded when shot down
}

// NewDrone creates a drone at (x, y) moving left at speed.
func NewDrone(x, y, speed float64, cfg config.DroneConfig) Drone {
	return Drone{
		X:      x,
		Y:      y,
		Width:  cfg.Width,
		Height: cfg.Height,
		Health: cfg.Health,
		Speed:  speed,
		Value:  cfg.ScoreValue,
	}
}

// Tick moves the drone left.
func (d *Drone) Tick() {
	d.X -= d.Speed
}

// Expired reports whether the drone has fully left the screen on the left.
func (d *Drone) Expired() bool {
	return d.X < -d.Width
}

// Hit applies damage and reports whether the drone was destroyed.
func (d *Drone) Hit(damage int) bool {
	d.Health -= damage
	return d.Health <= 0
}

// Center returns the middle of the drone's box.
func (d *Drone) Center() (float64, float64) {
	return d.X + d.Width/2, d.Y + d.Height/2
}

// Bounds returns the drone's collision box.
func (d *Drone) Bounds() core.RectF {
	return core.NewRectF(d.X, d.Y, d.Width, d.Height)
}

// Shape returns the drone for rendering.
func (d *Drone) Shape() Shape {
	return Shape{X: d.X, Y: d.Y, W: d.Width, H: d.Height}
}

// Bullet is a player projectile flying left to right.
type Bullet struct {
	X, Y   float64 // Center
	Radius float64
	Speed  float64
	Damage int
}

// NewBullet creates a bullet centered at (x, y).
func NewBullet(x, y float64, cfg config.BulletConfig) Bullet {
	return Bullet{
		X:      x,
		Y:      y,
		Radius: cfg.Radius,
		Speed:  cfg.Speed,
		Damage: cfg.Damage,
	}
}

// Tick moves the bullet right.
func (b *Bullet) Tick() {
	b.X += b.Speed
}

// Expired reports whether the bullet has passed the right edge.
func (b *Bullet) Expired(worldW float64) bool {
	return b.X > worldW
}

// Bounds returns the square enclosing the bullet's circle.
func (b *Bullet) Bounds() core.RectF {
	return core.NewRectF(b.X-b.Radius, b.Y-b.Radius, b.Radius*2, b.Radius*2)
}

// Shape returns the bullet for rendering.
func (b *Bullet) Shape() Shape {
	return Shape{X: b.X, Y: b.Y, R: b.Radius}
}

// Explosion is a ring that grows to a maximum radius, then shrinks away.
// It has no gameplay effect.
type Explosion struct {
	X, Y      float64 // Center
	Radius    float64
	MaxRadius float64
	Step      float64
	Growing   bool
}

// NewExplosion creates a growing explosion centered at (x, y).
func NewExplosion(x, y float64, cfg config.ExplosionConfig) Explosion {
	return Explosion{
		X:         x,
		Y:         y,
		Radius:    cfg.StartRadius,
		MaxRadius: cfg.MaxRadius,
		Step:      cfg.Step,
		Growing:   true,
	}
}

// Tick advances the grow/shrink animation by one step.
func (e *Explosion) Tick() {
	if e.Growing {
		e.Radius += e.Step
		if e.Radius >= e.MaxRadius {
			e.Growing = false
		}
		return
	}
	e.Radius -= e.Step
}

// Done reports whether the explosion has fully shrunk.
func (e *Explosion) Done() bool {
	return !e.Growing && e.Radius <= 0
}

// Shape returns the explosion for rendering.
func (e *Explosion) Shape() Shape {
	return Shape{X: e.X, Y: e.Y, R: e.Radius}
}
