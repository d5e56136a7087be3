package jatt

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/flying-jatt/internal/config"
	"github.com/vovakirdan/flying-jatt/internal/core"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// newTestGame returns a reset game driven by a manual clock.
// The clock only moves when the test advances it.
func newTestGame(t *testing.T) (*Game, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(testEpoch)
	g := New(config.DefaultJattConfig(), clock)
	g.Reset(testRuntime(42))
	return g, clock
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameIdentity(t *testing.T) {
	g, _ := newTestGame(t)
	if g.ID() != "jatt" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "jatt")
	}
	if g.Title() != "Flying Jatt" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Flying Jatt")
	}

	var _ core.Game = g
}

func TestGameInitialState(t *testing.T) {
	g, _ := newTestGame(t)

	state := g.State()
	if state.Score != 0 || state.Health != 100 || state.GameOver || state.Paused {
		t.Errorf("initial State() = %+v", state)
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", g.Phase())
	}
	p := g.Player()
	if p.X != 100 || p.Y != 300 {
		t.Errorf("player at (%f, %f), expected (100, 300)", p.X, p.Y)
	}
	if len(g.Frame().Clouds) != 5 {
		t.Errorf("clouds = %d, expected 5", len(g.Frame().Clouds))
	}
}

func TestPlayerStaysInWorld(t *testing.T) {
	g, clock := newTestGame(t)
	maxY := g.cfg.World.Height - g.cfg.Player.Height

	// Let the player fall to the floor
	for i := 0; i < 200; i++ {
		clock.Advance(time.Millisecond)
		g.Step(input())
		p := g.Player()
		if p.Y < 0 || p.Y > maxY {
			t.Fatalf("tick %d: Y = %f outside [0, %f]", i, p.Y, maxY)
		}
	}
	p := g.Player()
	if p.Y != maxY {
		t.Errorf("Y after falling = %f, expected %f", p.Y, maxY)
	}
	if p.Velocity != 0 {
		t.Errorf("Velocity at floor = %f, expected 0", p.Velocity)
	}

	// Flap every tick until the ceiling stops the player
	for i := 0; i < 200; i++ {
		clock.Advance(time.Millisecond)
		g.Step(input(core.ActionJump))
		p := g.Player()
		if p.Y < 0 || p.Y > maxY {
			t.Fatalf("tick %d: Y = %f outside [0, %f]", i, p.Y, maxY)
		}
	}
	p = g.Player()
	if p.Y != 0 {
		t.Errorf("Y after flapping = %f, expected 0", p.Y)
	}
	if p.Velocity != 0 {
		t.Errorf("Velocity at ceiling = %f, expected 0", p.Velocity)
	}
}

func TestFireCooldown(t *testing.T) {
	g, clock := newTestGame(t)
	bullets := func() int {
		_, b, _ := g.Registry().Counts()
		return b
	}

	g.Step(input(core.ActionFire))
	if bullets() != 1 {
		t.Fatalf("bullets after first shot = %d, expected 1", bullets())
	}

	clock.Advance(100 * time.Millisecond)
	g.Step(input(core.ActionFire))
	if bullets() != 1 {
		t.Errorf("bullets inside cooldown = %d, expected 1", bullets())
	}

	// Exactly at the cooldown is still gated
	clock.Advance(200 * time.Millisecond)
	g.Step(input(core.ActionFire))
	if bullets() != 1 {
		t.Errorf("bullets at exactly the cooldown = %d, expected 1", bullets())
	}

	clock.Advance(time.Millisecond)
	g.Step(input(core.ActionFire))
	if bullets() != 2 {
		t.Errorf("bullets after cooldown = %d, expected 2", bullets())
	}
}

func TestFireHeld(t *testing.T) {
	g, clock := newTestGame(t)

	held := core.NewInputFrame()
	held.SetHeld(core.ActionFire, true)

	shots := 0
	for i := 0; i < 60; i++ {
		before := g.player.lastShot
		g.Step(held)
		if !g.player.lastShot.Equal(before) {
			shots++
		}
		clock.Advance(50 * time.Millisecond)
	}

	// 60 ticks of 50ms: the first tick past the 300ms cooldown is 350ms later
	if shots != 9 {
		t.Errorf("held fire produced %d shots, expected 9", shots)
	}
}

func TestBulletSpawnsAtPlayerEdge(t *testing.T) {
	g, _ := newTestGame(t)
	g.Step(input(core.ActionFire))

	f := g.Frame()
	if len(f.Bullets) != 1 {
		t.Fatalf("bullets = %d, expected 1", len(f.Bullets))
	}
	b := f.Bullets[0]
	// Spawned at (150, 330), then moved once in the same tick
	if b.X != 160 || b.Y != 330 {
		t.Errorf("bullet at (%f, %f), expected (160, 330)", b.X, b.Y)
	}
}

func TestThreeHitsKillDroneAndScoreOnce(t *testing.T) {
	g, clock := newTestGame(t)

	// A parked drone right in front of the gun
	d := NewDrone(155, 300, 0, g.cfg.Drones)
	h := g.Registry().AddDrone(d)

	for shot := 1; shot <= 3; shot++ {
		g.Step(input(core.ActionFire))
		clock.Advance(301 * time.Millisecond)

		drone, alive := g.Registry().Drone(h)
		switch shot {
		case 1, 2:
			if !alive {
				t.Fatalf("drone destroyed after %d hits", shot)
			}
			if want := 30 - 10*shot; drone.Health != want {
				t.Errorf("health after %d hits = %d, expected %d", shot, drone.Health, want)
			}
			if g.State().Score != 0 {
				t.Errorf("score after %d hits = %d, expected 0", shot, g.State().Score)
			}
		case 3:
			if alive {
				t.Fatal("drone survived 3 hits")
			}
		}
	}

	if g.State().Score != 10 {
		t.Errorf("score = %d, expected 10", g.State().Score)
	}
	_, _, explosions := g.Registry().Counts()
	if explosions != 1 {
		t.Errorf("explosions = %d, expected 1", explosions)
	}

	// More ticks never award the kill again
	for i := 0; i < 10; i++ {
		g.Step(input())
	}
	if g.State().Score != 10 {
		t.Errorf("score later = %d, expected 10", g.State().Score)
	}
}

func TestDroneRamsPlayer(t *testing.T) {
	g, _ := newTestGame(t)
	g.Registry().AddDrone(NewDrone(110, 300, 0, g.cfg.Drones))

	g.Step(input())

	state := g.State()
	if state.Health != 90 {
		t.Errorf("Health = %d, expected 90", state.Health)
	}
	if state.Score != 0 {
		t.Errorf("Score = %d, expected 0", state.Score)
	}
	drones, _, explosions := g.Registry().Counts()
	if drones != 0 {
		t.Errorf("drones = %d, expected 0", drones)
	}
	if explosions != 1 {
		t.Errorf("explosions = %d, expected 1", explosions)
	}
	if state.GameOver {
		t.Error("one ram should not end the game")
	}
}

func TestTwoRamsInOneTickEndGame(t *testing.T) {
	g, _ := newTestGame(t)
	g.player.Health = 15
	g.Registry().AddDrone(NewDrone(110, 290, 0, g.cfg.Drones))
	g.Registry().AddDrone(NewDrone(120, 310, 0, g.cfg.Drones))

	result := g.Step(input())

	if !result.State.GameOver {
		t.Fatal("game should be over on the tick of the second ram")
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %v, expected game_over", g.Phase())
	}
	if result.State.Health != 0 {
		t.Errorf("Health = %d, expected clamp to 0", result.State.Health)
	}
	drones, _, _ := g.Registry().Counts()
	if drones != 0 {
		t.Errorf("drones = %d, expected both removed", drones)
	}
}

func TestDroneLeavesScreen(t *testing.T) {
	g, _ := newTestGame(t)
	g.Registry().AddDrone(NewDrone(-g.cfg.Drones.Width-1, 0, 3, g.cfg.Drones))

	g.Step(input())

	drones, _, explosions := g.Registry().Counts()
	if drones != 0 {
		t.Errorf("drones = %d, expected 0", drones)
	}
	if explosions != 0 {
		t.Errorf("explosions = %d, expected 0", explosions)
	}
	if g.State().Score != 0 {
		t.Errorf("Score = %d, expected 0", g.State().Score)
	}
}

func TestResetAfterGameOver(t *testing.T) {
	g, clock := newTestGame(t)

	// Leave some entities around, then die
	g.Step(input(core.ActionFire))
	g.player.Health = 10
	g.Registry().AddDrone(NewDrone(400, 0, 0, g.cfg.Drones))
	g.Registry().AddDrone(NewDrone(110, 300, 0, g.cfg.Drones))
	g.session.score = 40
	g.Step(input())
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	// Anything but flap or restart is ignored
	clock.Advance(time.Second)
	if r := g.Step(input(core.ActionFire)); r.Restarted || !r.State.GameOver {
		t.Fatalf("fire after game over = %+v", r)
	}

	result := g.Step(input(core.ActionJump))
	if !result.Restarted {
		t.Error("Restarted should be set on the reset tick")
	}

	state := g.State()
	if state.GameOver || state.Score != 0 || state.Health != 100 {
		t.Errorf("State() after reset = %+v", state)
	}
	d, b, e := g.Registry().Counts()
	if d != 0 || b != 0 || e != 0 {
		t.Errorf("Counts() after reset = %d, %d, %d, expected all 0", d, b, e)
	}
	if g.Frame().Tick != 0 {
		t.Errorf("Tick after reset = %d, expected 0", g.Frame().Tick)
	}
}

func TestRestartKeyAfterGameOver(t *testing.T) {
	g, _ := newTestGame(t)
	g.player.Health = 10
	g.Registry().AddDrone(NewDrone(110, 300, 0, g.cfg.Drones))
	g.Step(input())

	if r := g.Step(input(core.ActionRestart)); !r.Restarted {
		t.Error("R should restart after game over")
	}
}

func TestScoreFrozenAfterGameOver(t *testing.T) {
	g, _ := newTestGame(t)
	g.session.score = 30
	g.session.End()

	g.session.Award(10)
	if g.State().Score != 30 {
		t.Errorf("Score = %d, expected 30", g.State().Score)
	}
}

func TestSpawnerFeedsGame(t *testing.T) {
	g, clock := newTestGame(t)

	clock.Advance(1499 * time.Millisecond)
	g.Step(input())
	if d, _, _ := g.Registry().Counts(); d != 0 {
		t.Fatalf("drones before interval = %d, expected 0", d)
	}

	clock.Advance(time.Millisecond)
	g.Step(input())
	if d, _, _ := g.Registry().Counts(); d != 1 {
		t.Fatalf("drones at interval = %d, expected 1", d)
	}

	// A long gap still spawns only one drone per tick
	clock.Advance(10 * time.Second)
	g.Step(input())
	if d, _, _ := g.Registry().Counts(); d != 2 {
		t.Errorf("drones after long gap = %d, expected 2", d)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g, clock := newTestGame(t)

	g.Step(input())
	before := g.Frame()

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	// Time passing while paused is invisible to the game
	clock.Advance(10 * time.Second)
	for i := 0; i < 30; i++ {
		g.Step(input(core.ActionJump, core.ActionFire))
	}
	if got := g.Frame(); got.Tick != before.Tick || got.Player != before.Player {
		t.Errorf("paused frame changed: tick %d -> %d", before.Tick, got.Tick)
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Fatal("expected resumed")
	}
	if d, _, _ := g.Registry().Counts(); d != 0 {
		t.Errorf("drones after resume = %d, expected no spawn from paused time", d)
	}
	if g.Frame().Tick != before.Tick+1 {
		t.Errorf("Tick = %d, expected %d", g.Frame().Tick, before.Tick+1)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Frame {
		clock := core.NewManualClock(testEpoch)
		g := New(config.DefaultJattConfig(), clock)
		g.Reset(testRuntime(12345))

		for i := 0; i < 1200; i++ {
			in := core.NewInputFrame()
			if i%18 == 0 {
				in.Set(core.ActionJump)
			}
			in.SetHeld(core.ActionFire, i%120 < 90)
			g.Step(in)
			clock.Advance(16 * time.Millisecond)
		}
		return g.Frame()
	}

	f1 := run()
	f2 := run()

	if f1.Hash() != f2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", f1.Hash(), f2.Hash())
	}
	if f1.Score != f2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", f1.Score, f2.Score)
	}
}

func TestInvariantsUnderLongPlay(t *testing.T) {
	g, clock := newTestGame(t)
	maxY := g.cfg.World.Height - g.cfg.Player.Height
	lastScore := 0

	for i := 0; i < 5000; i++ {
		in := core.NewInputFrame()
		if i%25 == 0 {
			in.Set(core.ActionJump)
		}
		in.SetHeld(core.ActionFire, true)
		result := g.Step(in)
		clock.Advance(16 * time.Millisecond)

		p := g.Player()
		if p.Y < 0 || p.Y > maxY {
			t.Fatalf("tick %d: Y = %f outside world", i, p.Y)
		}
		if p.Health < 0 || p.Health > p.MaxHealth {
			t.Fatalf("tick %d: Health = %d outside [0, %d]", i, p.Health, p.MaxHealth)
		}
		if result.Restarted {
			lastScore = 0
			continue
		}
		if result.State.Score < lastScore {
			t.Fatalf("tick %d: score went down from %d to %d", i, lastScore, result.State.Score)
		}
		if result.State.Score%g.cfg.Drones.ScoreValue != 0 {
			t.Fatalf("tick %d: score %d is not a multiple of %d", i, result.State.Score, g.cfg.Drones.ScoreValue)
		}
		lastScore = result.State.Score
	}
}

func TestRenderHUD(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"Press F to Fire", "Score: 0", "Health: 100"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.ContainsRune(screen.String(), PlayerChar) {
		t.Error("player not drawn")
	}
}

func TestRenderGameOver(t *testing.T) {
	g, _ := newTestGame(t)
	g.player.Health = 10
	g.session.score = 70
	g.Registry().AddDrone(NewDrone(110, 300, 0, g.cfg.Drones))
	g.Step(input())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"GAME OVER", "Final Score: 70", "Press SPACE to play again"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g, _ := newTestGame(t)
	for _, size := range [][2]int{{0, 0}, {1, 1}, {5, 2}} {
		screen := core.NewScreen(size[0], size[1])
		g.Render(screen) // must not panic
	}
}
