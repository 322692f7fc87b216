package jumper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.resetWith(config.DefaultJumperConfig(), seed)
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// crash puts a stationary block on top of a grounded player and steps once.
func crash(t *testing.T, g *Game) {
	t.Helper()
	settleWithBlock(g.session, 99)
	if res := g.Step(input()); !res.Collided || !res.State.GameOver {
		t.Fatalf("expected collision, got %+v", res)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%37 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() (core.GameState, int) {
		g := newTestGame(2024)
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
			if st.GameOver {
				break
			}
		}
		return st, g.session.Frame()
	}

	s1, f1 := run()
	s2, f2 := run()
	if s1 != s2 || f1 != f2 {
		t.Errorf("same seed and inputs diverged: %+v/%d vs %+v/%d", s1, f1, s2, f2)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(1)
	g.Step(input())

	res := g.Step(input(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause action should pause the game")
	}
	score := res.State.Score
	for i := 0; i < 10; i++ {
		g.Step(input())
	}
	if g.State().Score != score {
		t.Error("paused game should not advance")
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
}

func TestGameRestartOnlyWhenOver(t *testing.T) {
	g := newTestGame(1)
	for i := 0; i < 5; i++ {
		g.Step(input())
	}

	res := g.Step(input(core.ActionRestart))
	if res.Restarted || res.State.Score != 6 {
		t.Errorf("restart while running should be ignored, got %+v", res)
	}

	crash(t, g)

	res = g.Step(input(core.ActionRestart))
	if !res.Restarted {
		t.Fatal("restart after game over should be processed")
	}
	if res.State.GameOver || res.State.Score != 0 || res.State.Level != 1 {
		t.Errorf("state after restart = %+v", res.State)
	}
	if len(g.session.Obstacles()) != 0 {
		t.Error("restart should clear obstacles")
	}
}

func TestGameRenderHUD(t *testing.T) {
	g := newTestGame(1)
	g.Step(input())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 1") || !strings.Contains(hud, "Level: 1") {
		t.Errorf("HUD row = %q", hud)
	}
	if screen.Row(23) != strings.Repeat(string(GroundChar), 80) {
		t.Errorf("last row should be ground, got %q", screen.Row(23))
	}

	// The player is drawn in red somewhere in the playfield.
	found := false
	for y := 1; y < 23 && !found; y++ {
		for x := 0; x < 80; x++ {
			c := screen.GetCell(x, y)
			if c.Rune == PlayerChar && c.Color == core.ColorRed {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("player not rendered")
	}
}

func TestGameRenderGameOverAndDebug(t *testing.T) {
	g := newTestGame(1)
	crash(t, g)

	g.Step(input(core.ActionDebug))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over banner missing")
	}
	if !strings.Contains(out, "Press R to restart") {
		t.Error("restart hint missing")
	}
	if !strings.Contains(screen.Row(1), "Player: (50,") {
		t.Errorf("debug overlay missing, row 1 = %q", screen.Row(1))
	}
	if !strings.Contains(out, "Obstacle 0: (60, 360, block)") {
		t.Error("debug overlay should list obstacles")
	}

	g.Step(input(core.ActionDebug))
	screen.Clear()
	g.Render(screen)
	if strings.Contains(screen.String(), "Player: (") {
		t.Error("debug overlay should toggle off")
	}
}

func countCells(screen *core.Screen, r rune, c core.Color) int {
	n := 0
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if cell := screen.GetCell(x, y); cell.Rune == r && cell.Color == c {
				n++
			}
		}
	}
	return n
}

func TestGameRenderHighlightsHitObstacle(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)

	settleWithBlock(g.session, 99)
	g.Render(screen)
	if n := countCells(screen, HitChar, core.ColorYellow); n != 0 {
		t.Errorf("running game drew %d hit cells, expected 0", n)
	}

	if res := g.Step(input()); !res.Collided {
		t.Fatalf("expected collision, got %+v", res)
	}
	g.Render(screen)
	if n := countCells(screen, HitChar, core.ColorYellow); n == 0 {
		t.Error("obstacle that ended the run should be highlighted")
	}

	g.Step(input(core.ActionRestart))
	g.Render(screen)
	if n := countCells(screen, HitChar, core.ColorYellow); n != 0 {
		t.Errorf("restarted game drew %d hit cells, expected 0", n)
	}
}

func TestGameRenderTinyScreen(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(5, 2)
	g.Render(screen) // must not panic
	if !strings.HasPrefix(screen.Row(0), "Too s") {
		t.Errorf("tiny screen row 0 = %q", screen.Row(0))
	}
}

func TestGameResetPresetOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumper.yaml")
	if err := os.WriteFile(path, []byte("progression:\n  spawn_base: 300\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})

	tests := []struct {
		preset string
		want   int
	}{
		{"", 290},
		{"easy", 170},
		{"normal", 140},
		{"hard", 110},
	}

	for _, tt := range tests {
		t.Run("preset "+tt.preset, func(t *testing.T) {
			SetDifficultyPreset(tt.preset)
			g := New()
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
			if got := g.session.SpawnInterval(); got != tt.want {
				t.Errorf("SpawnInterval() = %d, expected %d", got, tt.want)
			}
		})
	}
}
