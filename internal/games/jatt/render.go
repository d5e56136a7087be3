package jatt

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flying-jatt/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '█'
	TurbanChar    = '▀'
	DroneChar     = '▒'
	DroneCoreChar = '◉'
	BulletChar    = '•'
	SparkChar     = '*'
	BarFullChar   = '▬'
	BarEmptyChar  = '─'
	CloudText     = ".-~~-."
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	f := g.Frame()
	RenderFrame(dst, &f)
}

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	rows := dst.Height() - hudRows
	return viewport{
		sx:  float64(dst.Width()) / worldW,
		sy:  float64(rows) / worldH,
		top: hudRows,
	}
}

func (v viewport) point(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), v.top + int(math.Floor(y*v.sy))
}

// box converts a world box to cells, never smaller than one cell.
func (v viewport) box(s Shape) core.Rect {
	x, y := v.point(s.X, s.Y)
	w := core.Max(1, int(math.Round(s.W*v.sx)))
	h := core.Max(1, int(math.Round(s.H*v.sy)))
	return core.NewRect(x, y, w, h)
}

// RenderFrame draws a frame: clouds behind, then drones, bullets,
// explosions, the player with its health bar, the HUD, and any overlay.
func RenderFrame(dst *core.Screen, f *Frame) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() <= hudRows || f.WorldW <= 0 || f.WorldH <= 0 {
		return
	}
	vp := newViewport(dst, f.WorldW, f.WorldH)

	for _, c := range f.Clouds {
		x, y := vp.point(c.X, c.Y)
		dst.DrawTextColored(x, y, CloudText, core.ColorGray)
	}

	for _, d := range f.Drones {
		r := vp.box(d)
		dst.DrawRect(r, DroneChar, core.ColorRed)
		dst.SetColored(r.X+r.W/2, r.Y+r.H/2, DroneCoreChar, core.ColorGold)
	}

	for _, b := range f.Bullets {
		x, y := vp.point(b.X, b.Y)
		dst.SetColored(x, y, BulletChar, core.ColorYellow)
	}

	for _, e := range f.Explosions {
		drawRing(dst, vp, e)
	}

	drawPlayer(dst, vp, f.Player)
	drawHUD(dst, f)

	switch {
	case f.Phase == PhaseGameOver:
		drawCenteredMessage(dst, core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Final Score: %d", f.Score),
			"Press SPACE to play again",
		)
	case f.Paused:
		drawCenteredMessage(dst, core.ColorWhite, "PAUSED", "Press P to resume")
	}
}

// drawRing plots an explosion outline with sparks spaced around the circle.
func drawRing(dst *core.Screen, vp viewport, e Shape) {
	if e.R <= 0 {
		return
	}
	const sparks = 12
	for i := 0; i < sparks; i++ {
		a := 2 * math.Pi * float64(i) / sparks
		x, y := vp.point(e.X+e.R*math.Cos(a), e.Y+e.R*math.Sin(a))
		dst.SetColored(x, y, SparkChar, core.ColorOrange)
	}
}

func drawPlayer(dst *core.Screen, vp viewport, p PlayerView) {
	r := vp.box(p.Shape)
	dst.DrawRect(r, PlayerChar, core.ColorGold)
	dst.DrawHLine(r.X, r.Y, r.W, TurbanChar, core.ColorOrange)

	// Health bar sits just above the player
	barY := r.Y - 1
	if barY < hudRows {
		return
	}
	filled := int(math.Round(float64(r.W) * p.HealthRatio))
	dst.DrawHLine(r.X, barY, filled, BarFullChar, core.ColorGreen)
	dst.DrawHLine(r.X+filled, barY, r.W-filled, BarEmptyChar, core.ColorRed)
}

func drawHUD(dst *core.Screen, f *Frame) {
	dst.DrawTextColored(1, 0, "Press F to Fire", core.ColorGray)
	dst.DrawTextCentered(0, fmt.Sprintf("Score: %d", f.Score), core.ColorWhite)

	health := fmt.Sprintf("Health: %d", f.Player.Health)
	dst.DrawTextColored(dst.Width()-len(health)-1, 0, health, core.ColorGreen)
}

// drawCenteredMessage draws a message box in the center of the screen.
// The first line is the title, the rest sit below a blank line.
func drawCenteredMessage(dst *core.Screen, c core.Color, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, c)
	for i, l := range lines {
		dst.DrawTextColored(boxX+(boxW-len(l))/2, boxY+3+i, l, core.ColorWhite)
	}
}
