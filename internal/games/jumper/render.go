package jumper

import (
	"fmt"

	"github.com/vovakirdan/jumper/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	SpikeChar    = '▲'
	GroundChar   = '═'
	HitChar      = '╳'
)

// Render draws the current game state to the screen.
// Row 0 is the HUD, the last row is the ground and everything between is the
// scaled playfield. Drawing continues while the game is over.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 10 || dst.Height() < 4 {
		dst.DrawText(0, 0, "Too small")
		return
	}

	field := core.NewRect(0, 1, dst.Width(), dst.Height()-2)
	canvas := core.NewCanvas(dst, field, g.cfg.Canvas.Width, g.cfg.Canvas.Height)

	for _, o := range g.session.Obstacles() {
		ch := ObstacleChar
		if o.Kind == KindSpike {
			ch = SpikeChar
		}
		canvas.FillRect(o.Rect(), ch, o.Color)
	}
	canvas.FillRect(g.session.Player().Rect(), PlayerChar, core.ColorRed)

	// The obstacle that ended the run is drawn over the player.
	if g.session.GameOver() {
		for _, o := range g.session.Obstacles() {
			if o.ID == g.session.HitID() {
				canvas.FillRect(o.Rect(), HitChar, core.ColorYellow)
			}
		}
	}

	dst.DrawHLine(0, field.Bottom(), dst.Width(), GroundChar)

	// HUD: score on the left, level on the right
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.session.Score()))
	levelText := fmt.Sprintf(" Level: %d ", g.session.Level())
	dst.DrawText(dst.Width()-len(levelText)-2, 0, levelText)

	if g.debug {
		g.drawDebug(dst, canvas.Area())
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.session.GameOver() {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score()))
	}
}

// drawDebug lists the player and obstacle positions in the top-left corner.
func (g *Game) drawDebug(dst *core.Screen, field core.Rect) {
	p := g.session.Player()
	lines := []string{fmt.Sprintf("Player: (%.0f, %.1f) dy=%.1f", p.X, p.Y, p.DY)}
	for i, o := range g.session.Obstacles() {
		lines = append(lines, fmt.Sprintf("Obstacle %d: (%.0f, %.0f, %s)", i, o.X, o.Y, o.Kind))
	}
	lines = append(lines, fmt.Sprintf("frame=%d spawn every %d", g.session.Frame(), g.session.SpawnInterval()))

	for i, line := range lines {
		y := field.Y + i
		if y >= field.Bottom() {
			break
		}
		dst.DrawTextColored(1, y, line, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
