package jatt

import (
	"testing"
	"time"

	"github.com/vovakirdan/flying-jatt/internal/config"
)

func TestExplosionLifetime(t *testing.T) {
	e := NewExplosion(0, 0, config.DefaultJattConfig().Explosions)

	growing, shrinking := 0, 0
	for ticks := 0; !e.Done(); ticks++ {
		if ticks > 100 {
			t.Fatal("explosion never finished")
		}
		before := e.Radius
		e.Tick()
		switch {
		case e.Radius > before:
			growing++
		case e.Radius < before:
			shrinking++
		}
	}

	if growing != 15 {
		t.Errorf("growing ticks = %d, expected 15", growing)
	}
	if shrinking != 15 {
		t.Errorf("shrinking ticks = %d, expected 15", shrinking)
	}
}

func TestExplosionPeaksAtMaxRadius(t *testing.T) {
	e := NewExplosion(0, 0, config.ExplosionConfig{MaxRadius: 30, Step: 2})
	peak := 0.0
	for !e.Done() {
		e.Tick()
		if e.Radius > peak {
			peak = e.Radius
		}
	}
	if peak != 30 {
		t.Errorf("peak radius = %f, expected 30", peak)
	}
}

func TestDroneHit(t *testing.T) {
	d := NewDrone(0, 0, 3, config.DefaultJattConfig().Drones)

	tests := []struct {
		damage int
		killed bool
		health int
	}{
		{10, false, 20},
		{10, false, 10},
		{10, true, 0},
	}
	for i, tc := range tests {
		if got := d.Hit(tc.damage); got != tc.killed {
			t.Errorf("hit %d: killed = %v, expected %v", i+1, got, tc.killed)
		}
		if d.Health != tc.health {
			t.Errorf("hit %d: health = %d, expected %d", i+1, d.Health, tc.health)
		}
	}
}

func TestDroneExpiry(t *testing.T) {
	tests := []struct {
		x       float64
		expired bool
	}{
		{400, false},
		{0, false},
		{-60, false}, // Right edge exactly at 0
		{-60.5, true},
		{-61, true},
	}
	for _, tc := range tests {
		d := Drone{X: tc.x, Width: 60}
		if got := d.Expired(); got != tc.expired {
			t.Errorf("Expired() at x=%f = %v, expected %v", tc.x, got, tc.expired)
		}
	}
}

func TestDroneCenter(t *testing.T) {
	d := NewDrone(100, 200, 3, config.DefaultJattConfig().Drones)
	x, y := d.Center()
	if x != 130 || y != 230 {
		t.Errorf("Center() = (%f, %f), expected (130, 230)", x, y)
	}
}

func TestBulletBoundsAndExpiry(t *testing.T) {
	b := NewBullet(150, 330, config.DefaultJattConfig().Bullets)

	box := b.Bounds()
	if box.X != 145 || box.Y != 325 || box.W != 10 || box.H != 10 {
		t.Errorf("Bounds() = %+v, expected (145, 325, 10, 10)", box)
	}

	b.X = 400
	if b.Expired(400) {
		t.Error("bullet at the edge should not expire")
	}
	b.Tick()
	if !b.Expired(400) {
		t.Errorf("bullet at x=%f should expire", b.X)
	}
}

func TestPlayerTakeDamageClamps(t *testing.T) {
	p := NewPlayer(config.DefaultJattConfig().Player)
	p.Health = 15

	p.TakeDamage(10)
	if p.Health != 5 || p.Dead() {
		t.Errorf("after 10 damage: health %d, dead %v", p.Health, p.Dead())
	}
	p.TakeDamage(10)
	if p.Health != 0 || !p.Dead() {
		t.Errorf("after 20 damage: health %d, dead %v", p.Health, p.Dead())
	}
	if p.HealthRatio() != 0 {
		t.Errorf("HealthRatio() = %f, expected 0", p.HealthRatio())
	}
}

func TestPlayerFirstShotIsFree(t *testing.T) {
	cfg := config.DefaultJattConfig()
	p := NewPlayer(cfg.Player)
	now := time.Unix(0, 0)

	if _, ok := p.Fire(now, cfg.Player.FireCooldown(), cfg.Bullets); !ok {
		t.Fatal("first shot should fire")
	}
	if _, ok := p.Fire(now, cfg.Player.FireCooldown(), cfg.Bullets); ok {
		t.Error("second shot at the same instant should be gated")
	}
	// A clock that steps backwards is treated as no time passing
	if _, ok := p.Fire(now.Add(-time.Hour), cfg.Player.FireCooldown(), cfg.Bullets); ok {
		t.Error("shot with earlier timestamp should be gated")
	}
}

func TestPlayerFlap(t *testing.T) {
	cfg := config.DefaultJattConfig()
	p := NewPlayer(cfg.Player)

	p.Flap(cfg.Physics.FlapStrength)
	p.Tick(cfg.Physics.Gravity, cfg.World.Height)

	if p.Velocity != -6.75 {
		t.Errorf("Velocity = %f, expected -6.75", p.Velocity)
	}
	if p.Y != 293.25 {
		t.Errorf("Y = %f, expected 293.25", p.Y)
	}
}
