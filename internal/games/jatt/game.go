// Package jatt implements Flying Jatt, a side-scrolling shooter.
// The player flaps against gravity, shoots drones that fly in from the
// right, and loses health when a drone rams them.
//
// The package is a pure simulation: it reads time only through an injected
// core.Clock, draws randomness only from RNGs seeded by the runtime config,
// and never logs or touches the terminal directly.
package jatt

import (
	"math/rand"

	"github.com/vovakirdan/flying-jatt/internal/config"
	"github.com/vovakirdan/flying-jatt/internal/core"
)

// cloudSeedOffset keeps the cloud RNG stream apart from the spawner's.
const cloudSeedOffset = 7919

// Game implements core.Game for Flying Jatt.
type Game struct {
	cfg      config.JattConfig
	source   core.Clock
	clock    *core.PausableClock
	rng      *rand.Rand // Drone spawns
	cloudRNG *rand.Rand

	player   Player
	reg      *Registry
	spawner  *Spawner
	resolver Resolver
	session  Session
	clouds   []Cloud

	tickCount uint64
}

// New creates a game with the given constants, reading time from clock.
// A nil clock means wall-clock time. Call Reset before the first Step.
func New(cfg config.JattConfig, clock core.Clock) *Game {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Game{
		cfg:      cfg,
		source:   clock,
		reg:      NewRegistry(),
		resolver: NewResolver(cfg),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jatt"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flying Jatt"
}

// Config returns the game constants in use.
func (g *Game) Config() config.JattConfig {
	return g.cfg
}

// Reset initializes the game from scratch, reseeding every RNG.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.clock = core.NewPausableClock(g.source)
	g.rng = rand.New(rand.NewSource(rc.Seed))                        //#nosec G404 -- gameplay randomness
	g.cloudRNG = rand.New(rand.NewSource(rc.Seed + cloudSeedOffset)) //#nosec G404 -- gameplay randomness
	g.spawner = NewSpawner(g.cfg.Drones, g.cfg.World, g.rng, g.clock.Now())
	g.restart()
}

// restart begins a new attempt without reseeding.
func (g *Game) restart() {
	if g.clock.IsPaused() {
		g.clock.Resume()
	}
	g.player = NewPlayer(g.cfg.Player)
	g.reg.Clear()
	g.spawner.Reset(g.clock.Now())
	g.session.Reset()
	g.clouds = newClouds(g.cfg.Clouds.Count, g.cfg.World.Width, g.cfg.World.Height, g.cloudRNG)
	g.tickCount = 0
}

// Step advances the game by one tick.
//
// While playing, a tick runs these stages in order: input, player physics,
// spawning, drone and bullet movement with expiry, player collisions, the
// game over check, bullet collisions, explosion animation, and cloud drift.
// A tick that ends the game skips everything after the game over check.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Over() {
		if in.Has(core.ActionJump) || in.Has(core.ActionRestart) {
			g.restart()
			return core.StepResult{State: g.State(), Restarted: true}
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.togglePause()
	}
	if g.clock.IsPaused() {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	now := g.clock.Now()

	if in.Has(core.ActionJump) {
		g.player.Flap(g.cfg.Physics.FlapStrength)
	}
	if in.Has(core.ActionFire) || in.IsHeld(core.ActionFire) {
		if b, ok := g.player.Fire(now, g.cfg.Player.FireCooldown(), g.cfg.Bullets); ok {
			g.reg.AddBullet(b)
		}
	}

	g.player.Tick(g.cfg.Physics.Gravity, g.cfg.World.Height)
	g.spawner.Update(now, g.reg)
	g.reg.AdvanceDrones()
	g.reg.AdvanceBullets(g.cfg.World.Width)

	g.resolver.ResolvePlayerHits(&g.player, g.reg)
	if g.player.Dead() {
		g.session.End()
		return core.StepResult{State: g.State()}
	}

	_, points := g.resolver.ResolveBulletHits(g.reg)
	g.session.Award(points)

	g.reg.AdvanceExplosions()
	driftClouds(g.clouds, g.cfg.Clouds.Speed, g.cfg.World.Width, g.cloudRNG)

	return core.StepResult{State: g.State()}
}

func (g *Game) togglePause() {
	if g.clock.IsPaused() {
		g.clock.Resume()
		return
	}
	g.clock.Pause()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Health:   g.player.Health,
		GameOver: g.session.Over(),
		Paused:   g.clock != nil && g.clock.IsPaused(),
	}
}

// Phase returns the session phase.
func (g *Game) Phase() Phase {
	return g.session.Phase()
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Registry exposes the live entities.
func (g *Game) Registry() *Registry {
	return g.reg
}

// Frame captures the current state for rendering or comparison.
func (g *Game) Frame() Frame {
	f := Frame{
		Tick:   g.tickCount,
		Phase:  g.session.Phase(),
		Paused: g.clock != nil && g.clock.IsPaused(),
		Score:  g.session.Score(),
		WorldW: g.cfg.World.Width,
		WorldH: g.cfg.World.Height,
		Player: PlayerView{
			Shape:       Shape{X: g.player.X, Y: g.player.Y, W: g.player.Width, H: g.player.Height},
			Health:      g.player.Health,
			HealthRatio: g.player.HealthRatio(),
		},
		Drones:     shapes(g.reg.drones),
		Bullets:    shapes(g.reg.bullets),
		Explosions: shapes(g.reg.explosions),
		Clouds:     make([]Shape, len(g.clouds)),
	}
	for i, c := range g.clouds {
		f.Clouds[i] = Shape{X: c.X, Y: c.Y}
	}
	return f
}
