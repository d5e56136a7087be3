package jatt

import (
	"github.com/vovakirdan/flying-jatt/internal/arena"
	"github.com/vovakirdan/flying-jatt/internal/core"
)

// Capacity hints for the entity arenas. They grow past these as needed.
const (
	droneCapacity     = 16
	bulletCapacity    = 32
	explosionCapacity = 16
)

// ticker is an entity that advances itself by one tick.
type ticker[T any] interface {
	*T
	Tick()
}

// collider is an entity with a collision box.
type collider[T any] interface {
	*T
	Bounds() core.RectF
}

// shaper is an entity that can be drawn.
type shaper[T any] interface {
	*T
	Shape() Shape
}

// Registry owns every live drone, bullet, and explosion.
// All iteration goes through handle snapshots, so removing entities while
// walking a kind is safe and never skips or repeats one.
type Registry struct {
	drones     *arena.Arena[Drone]
	bullets    *arena.Arena[Bullet]
	explosions *arena.Arena[Explosion]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		drones:     arena.New[Drone](droneCapacity),
		bullets:    arena.New[Bullet](bulletCapacity),
		explosions: arena.New[Explosion](explosionCapacity),
	}
}

// AddDrone registers a drone.
func (r *Registry) AddDrone(d Drone) arena.Handle { return r.drones.Insert(d) }

// AddBullet registers a bullet.
func (r *Registry) AddBullet(b Bullet) arena.Handle { return r.bullets.Insert(b) }

// AddExplosion registers an explosion.
func (r *Registry) AddExplosion(e Explosion) arena.Handle { return r.explosions.Insert(e) }

// Drones returns a snapshot of live drone handles, oldest first.
func (r *Registry) Drones() []arena.Handle { return r.drones.Handles() }

// Bullets returns a snapshot of live bullet handles, oldest first.
func (r *Registry) Bullets() []arena.Handle { return r.bullets.Handles() }

// Explosions returns a snapshot of live explosion handles, oldest first.
func (r *Registry) Explosions() []arena.Handle { return r.explosions.Handles() }

// Drone returns the drone behind h, if it is still alive.
func (r *Registry) Drone(h arena.Handle) (*Drone, bool) { return r.drones.Get(h) }

// Bullet returns the bullet behind h, if it is still alive.
func (r *Registry) Bullet(h arena.Handle) (*Bullet, bool) { return r.bullets.Get(h) }

// Explosion returns the explosion behind h, if it is still alive.
func (r *Registry) Explosion(h arena.Handle) (*Explosion, bool) { return r.explosions.Get(h) }

// RemoveDrone removes a drone. Removing a dead handle is a no-op.
func (r *Registry) RemoveDrone(h arena.Handle) bool { return r.drones.Remove(h) }

// RemoveBullet removes a bullet. Removing a dead handle is a no-op.
func (r *Registry) RemoveBullet(h arena.Handle) bool { return r.bullets.Remove(h) }

// RemoveExplosion removes an explosion. Removing a dead handle is a no-op.
func (r *Registry) RemoveExplosion(h arena.Handle) bool { return r.explosions.Remove(h) }

// Counts returns the number of live drones, bullets, and explosions.
func (r *Registry) Counts() (drones, bullets, explosions int) {
	return r.drones.Len(), r.bullets.Len(), r.explosions.Len()
}

// AdvanceDrones moves every drone and drops those that left the screen.
func (r *Registry) AdvanceDrones() int {
	return advance(r.drones, (*Drone).Expired)
}

// AdvanceBullets moves every bullet and drops those past the right edge.
func (r *Registry) AdvanceBullets(worldW float64) int {
	return advance(r.bullets, func(b *Bullet) bool { return b.Expired(worldW) })
}

// AdvanceExplosions animates every explosion and drops finished ones.
func (r *Registry) AdvanceExplosions() int {
	return advance(r.explosions, (*Explosion).Done)
}

// Clear removes everything.
func (r *Registry) Clear() {
	r.drones.Clear()
	r.bullets.Clear()
	r.explosions.Clear()
}

// advance ticks every entity in a, then removes the ones for which done
// reports true. It returns how many were removed. Entities inserted while
// advancing are not visited.
func advance[T any, P ticker[T]](a *arena.Arena[T], done func(P) bool) int {
	removed := 0
	for _, h := range a.Handles() {
		v, ok := a.Get(h)
		if !ok {
			continue
		}
		e := P(v)
		e.Tick()
		if done(e) {
			a.Remove(h)
			removed++
		}
	}
	return removed
}

// firstOverlap returns the oldest live entity in a whose box overlaps box.
func firstOverlap[T any, P collider[T]](a *arena.Arena[T], box core.RectF) (arena.Handle, bool) {
	for _, h := range a.Handles() {
		v, ok := a.Get(h)
		if !ok {
			continue
		}
		if P(v).Bounds().Intersects(box) {
			return h, true
		}
	}
	return arena.Handle{}, false
}

// shapes collects the render shapes of every live entity in a, oldest first.
func shapes[T any, P shaper[T]](a *arena.Arena[T]) []Shape {
	handles := a.Handles()
	out := make([]Shape, 0, len(handles))
	for _, h := range handles {
		if v, ok := a.Get(h); ok {
			out = append(out, P(v).Shape())
		}
	}
	return out
}
