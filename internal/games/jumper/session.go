package jumper

import (
	"github.com/vovakirdan/jumper/internal/config"
)

// TickResult describes what happened during one simulated tick.
type TickResult struct {
	Spawned  bool // An obstacle was appended
	Collided bool // Game over was latched this tick
}

// Session is the complete simulation state of one game: the player, the live
// obstacles in spawn order, and the score/level/frame bookkeeping.
// It is owned by a single driver and is not safe for concurrent use.
type Session struct {
	cfg         config.JumperConfig
	progression *config.Progression
	factory     *Factory

	player    Player
	obstacles []Obstacle
	score     int
	level     int
	frame     int  // Simulated ticks; survives Restart
	gameOver  bool // Latched by a collision, cleared only by Restart
	hitID     int  // ID of the obstacle that ended the game
}

// NewSession creates a running session. cfg must have passed Validate.
func NewSession(cfg config.JumperConfig, seed int64) (*Session, error) {
	factory, err := NewFactory(seed, cfg)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:         cfg,
		progression: config.NewProgression(cfg.Progression),
		factory:     factory,
		obstacles:   make([]Obstacle, 0, 8),
	}
	s.Restart()
	return s, nil
}

// Restart returns the session to the Running state with a fresh player and no
// obstacles. The frame counter and the RNG keep going.
func (s *Session) Restart() {
	s.player = newPlayer(s.cfg)
	s.obstacles = s.obstacles[:0]
	s.score = 0
	s.level = 1
	s.gameOver = false
	s.hitID = 0
}

// Tick advances the simulation by one frame. It does nothing once the game is over.
func (s *Session) Tick(jump bool) TickResult {
	if s.gameOver {
		return TickResult{}
	}

	s.player.update(jump, s.cfg.Physics, s.cfg.Canvas.Height)
	res := s.sweep()

	if !s.gameOver {
		s.score++
		if s.progression.LevelUp(s.frame) {
			s.level++
		}
	}
	s.frame++

	return res
}

// sweep moves every obstacle, tests it against the player, evicts the ones that
// left the screen and spawns a new one when due.
func (s *Session) sweep() TickResult {
	var res TickResult
	playerRect := s.player.Rect()

	for i := range s.obstacles {
		o := &s.obstacles[i]
		o.advance(s.cfg.Canvas.Height)

		if !s.gameOver && playerRect.Intersects(o.Rect()) {
			s.gameOver = true
			s.hitID = o.ID
			res.Collided = true
		}
	}

	live := s.obstacles[:0]
	for _, o := range s.obstacles {
		if !o.OffScreen() {
			live = append(live, o)
		}
	}
	s.obstacles = live

	if !s.gameOver && s.progression.ShouldSpawn(s.frame, s.level) {
		s.obstacles = append(s.obstacles, s.factory.Spawn())
		res.Spawned = true
	}

	return res
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// Obstacles returns the live obstacles in spawn order.
// The slice is only valid until the next Tick or Restart.
func (s *Session) Obstacles() []Obstacle {
	return s.obstacles
}

// Score returns the number of ticks survived since the last restart.
func (s *Session) Score() int {
	return s.score
}

// Level returns the current level, starting at 1.
func (s *Session) Level() int {
	return s.level
}

// Frame returns the number of simulated ticks.
func (s *Session) Frame() int {
	return s.frame
}

// GameOver reports whether a collision has ended the game.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// HitID returns the ID of the obstacle that ended the game, or 0.
func (s *Session) HitID() int {
	return s.hitID
}

// SpawnInterval returns the current number of frames between spawns.
func (s *Session) SpawnInterval() int {
	return s.progression.SpawnInterval(s.level)
}
