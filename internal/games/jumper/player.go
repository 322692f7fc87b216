package jumper

import (
	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
)

// Player is the box the user controls. It only moves vertically.
type Player struct {
	X, Y    float64 // Top-left corner; X never changes
	W, H    float64
	DY      float64 // Vertical velocity, negative = up
	Jumping bool    // Airborne after a jump until landing
}

// newPlayer places the player at its configured start, above the floor.
func newPlayer(cfg config.JumperConfig) Player {
	return Player{
		X: cfg.Player.X,
		Y: cfg.Canvas.Height - cfg.Player.SpawnOffset,
		W: cfg.Player.Width,
		H: cfg.Player.Height,
	}
}

// Rect returns the player's collision box.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// update applies one tick of jump input, gravity and the floor clamp.
func (p *Player) update(jump bool, phys config.PhysicsConfig, floor float64) {
	if jump && !p.Jumping {
		p.DY = phys.JumpImpulse
		p.Jumping = true
	}

	p.DY += phys.Gravity
	p.Y += p.DY

	if p.Y+p.H > floor {
		p.Y = floor - p.H
		p.DY = 0
		p.Jumping = false
	}
}
