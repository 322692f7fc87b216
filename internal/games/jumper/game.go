// Package jumper implements a side-scrolling runner: the player jumps over
// spikes, blocks, oscillating blocks and falling blocks that scroll in from the
// right, and the run ends on the first collision.
package jumper

import (
	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "jumper"

// Game adapts a Session to the registry.Game interface.
type Game struct {
	session *Session
	cfg     config.JumperConfig
	runtime core.RuntimeConfig
	paused  bool
	debug   bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// New creates a new game instance. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Jumper"
}

// Reset starts a brand new session with freshly loaded config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, _, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultJumperConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	g.resetWith(cfg, runtime.Seed)
	g.debug = runtime.Debug
}

// resetWith builds the session from an explicit config.
func (g *Game) resetWith(cfg config.JumperConfig, seed int64) {
	session, err := NewSession(cfg, seed)
	if err != nil {
		cfg = config.DefaultJumperConfig()
		session, _ = NewSession(cfg, seed)
	}
	g.cfg = cfg
	g.session = session
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	if g.session.GameOver() {
		if in.Has(core.ActionRestart) {
			g.session.Restart()
			g.paused = false
			return core.StepResult{State: g.State(), Restarted: true}
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.session.Tick(in.Has(core.ActionJump))
	return core.StepResult{
		State:    g.State(),
		Spawned:  res.Spawned,
		Collided: res.Collided,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
	}
}

// Session exposes the underlying simulation, mainly for tests and tooling.
func (g *Game) Session() *Session {
	return g.session
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
