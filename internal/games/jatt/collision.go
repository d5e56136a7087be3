package jatt

import (
	"github.com/vovakirdan/flying-jatt/internal/config"
)

// Resolver applies the collision rules between the player, drones, and bullets.
type Resolver struct {
	CollisionDamage int
	Explosion       config.ExplosionConfig
}

// NewResolver creates a resolver from the game configuration.
func NewResolver(cfg config.JattConfig) Resolver {
	return Resolver{
		CollisionDamage: cfg.Player.CollisionDamage,
		Explosion:       cfg.Explosions,
	}
}

// ResolvePlayerHits damages the player once for every drone it overlaps.
// Each such drone is destroyed and leaves an explosion, without scoring.
// It returns the number of drones hit.
func (rs Resolver) ResolvePlayerHits(p *Player, reg *Registry) int {
	box := p.Bounds()
	hits := 0
	for _, h := range reg.Drones() {
		d, ok := reg.Drone(h)
		if !ok || !d.Bounds().Intersects(box) {
			continue
		}
		p.TakeDamage(rs.CollisionDamage)
		rs.explode(d, reg)
		reg.RemoveDrone(h)
		hits++
	}
	return hits
}

// ResolveBulletHits resolves every bullet against the drones, oldest bullet first.
// A bullet strikes only the oldest drone it overlaps and is consumed.
// Drones whose health runs out are removed, leave an explosion, and score.
// It returns the number of kills and the points earned.
func (rs Resolver) ResolveBulletHits(reg *Registry) (kills, points int) {
	for _, bh := range reg.Bullets() {
		b, ok := reg.Bullet(bh)
		if !ok {
			continue
		}
		dh, ok := firstOverlap(reg.drones, b.Bounds())
		if !ok {
			continue
		}
		d, _ := reg.Drone(dh)
		damage := b.Damage
		reg.RemoveBullet(bh)
		if !d.Hit(damage) {
			continue
		}
		kills++
		points += d.Value
		rs.explode(d, reg)
		reg.RemoveDrone(dh)
	}
	return kills, points
}

func (rs Resolver) explode(d *Drone, reg *Registry) {
	x, y := d.Center()
	reg.AddExplosion(NewExplosion(x, y, rs.Explosion))
}
