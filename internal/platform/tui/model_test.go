package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/storage"
)

// scriptedGame replays fixed step results and records the inputs it saw.
type scriptedGame struct {
	results []core.StepResult
	inputs  []core.InputFrame
	resets  int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	snapshot := core.NewInputFrame()
	for _, a := range []core.Action{core.ActionJump, core.ActionRestart, core.ActionPause, core.ActionDebug} {
		if in.Has(a) {
			snapshot.Set(a)
		}
	}
	g.inputs = append(g.inputs, snapshot)

	if len(g.results) == 0 {
		return core.StepResult{}
	}
	r := g.results[0]
	g.results = g.results[1:]
	return r
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState { return core.GameState{} }

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm
}

func TestModelInitResetsGame(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testRuntime())

	if cmd := m.Init(); cmd == nil {
		t.Error("Init() should schedule a tick")
	}
	if game.resets != 1 {
		t.Errorf("resets = %d, expected 1", game.resets)
	}
}

func TestModelBuffersInputUntilTick(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testRuntime())

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if len(game.inputs) != 2 {
		t.Fatalf("steps = %d, expected 2", len(game.inputs))
	}
	if !game.inputs[0].Has(core.ActionJump) {
		t.Error("first tick should see the jump")
	}
	if game.inputs[1].Has(core.ActionJump) {
		t.Error("input should be cleared after a tick")
	}
}

func TestModelRecordsRunOnCollision(t *testing.T) {
	store := openTestStore(t)
	game := &scriptedGame{results: []core.StepResult{
		{State: core.GameState{Score: 41, Level: 1}},
		{State: core.GameState{Score: 41, Level: 1, GameOver: true}, Collided: true},
		{State: core.GameState{Score: 41, Level: 1, GameOver: true}},
	}}
	m := NewModel(game, store, testRuntime(), WithPlayer("alice"))

	for range 3 {
		m = update(t, m, TickMsg{})
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved runs = %d, expected 1", len(scores))
	}
	if scores[0].Score != 41 || scores[0].Player != "alice" || scores[0].Level != 1 {
		t.Errorf("saved run = %+v", scores[0])
	}
	if !m.State().GameOver {
		t.Error("model should observe game over")
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openTestStore(t)
	game := &scriptedGame{results: []core.StepResult{
		{State: core.GameState{Level: 1, GameOver: true}, Collided: true},
	}}
	m := NewModel(game, store, testRuntime())
	update(t, m, TickMsg{})

	score, err := store.HighScore("scripted")
	if err != nil {
		t.Fatalf("HighScore() error = %v", err)
	}
	if score != 0 {
		t.Errorf("HighScore() = %d, expected 0", score)
	}
}

func TestModelBackOnlyLeavesFinishedOrPausedRuns(t *testing.T) {
	tests := []struct {
		name  string
		state core.GameState
		quit  bool
	}{
		{"running", core.GameState{}, false},
		{"paused", core.GameState{Paused: true}, true},
		{"game over", core.GameState{GameOver: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := &scriptedGame{results: []core.StepResult{{State: tt.state}}}
			m := update(t, NewModel(game, nil, testRuntime()), TickMsg{})

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
			if (cmd != nil) != tt.quit {
				t.Errorf("quit = %v, expected %v", cmd != nil, tt.quit)
			}
		})
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testRuntime())
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if game.resets != 1 {
		t.Errorf("resets = %d, expected 1", game.resets)
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("View() should render the game")
	}
}

func TestModelHelpFooterWhenStopped(t *testing.T) {
	tests := []struct {
		name  string
		state core.GameState
		help  bool
	}{
		{"running", core.GameState{}, false},
		{"paused", core.GameState{Paused: true}, true},
		{"game over", core.GameState{GameOver: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := &scriptedGame{results: []core.StepResult{{State: tt.state}}}
			m := update(t, NewModel(game, nil, testRuntime()), TickMsg{})
			m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 10})

			lines := strings.Split(m.View(), "\n")
			if len(lines) != 10 {
				t.Fatalf("View() has %d lines, expected 10", len(lines))
			}
			last := lines[len(lines)-1]
			if got := strings.Contains(last, "restart"); got != tt.help {
				t.Errorf("help footer shown = %v, expected %v (last line %q)", got, tt.help, last)
			}
		})
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(4, 1, 'x', core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[1], "x") {
		t.Errorf("RenderScreen() = %q", out)
	}
}
