package jumper

import (
	"fmt"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
)

// Kind identifies an obstacle's behavior.
type Kind int

const (
	KindSpike Kind = iota
	KindBlock
	KindMovingBlock
	KindFallingBlock
)

// String returns the config name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSpike:
		return config.KindSpike
	case KindBlock:
		return config.KindBlock
	case KindMovingBlock:
		return config.KindMovingBlock
	case KindFallingBlock:
		return config.KindFallingBlock
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// parseKind maps a config kind name to a Kind.
func parseKind(name string) (Kind, error) {
	switch name {
	case config.KindSpike:
		return KindSpike, nil
	case config.KindBlock:
		return KindBlock, nil
	case config.KindMovingBlock:
		return KindMovingBlock, nil
	case config.KindFallingBlock:
		return KindFallingBlock, nil
	default:
		return 0, fmt.Errorf("jumper: unknown obstacle kind %q", name)
	}
}

// Oscillation is the payload of a moving block: a triangle wave between
// OriginY-Range (top) and OriginY (bottom), one unit per tick.
type Oscillation struct {
	OriginY   float64
	Direction float64 // +1 moves down, -1 moves up
	Range     float64
}

// Fall is the payload of a falling block.
type Fall struct {
	Speed    float64
	InitialY float64
	Falling  bool
}

// Obstacle is a tagged variant. Only the payload matching Kind is meaningful.
type Obstacle struct {
	ID    int
	Kind  Kind
	X, Y  float64
	W, H  float64
	Color core.Color
	Speed float64 // Horizontal, negative = leftward

	Osc  Oscillation // KindMovingBlock
	Fall Fall        // KindFallingBlock
}

// Rect returns the obstacle's collision box.
func (o Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}

// OffScreen reports whether the right edge has passed the left boundary.
func (o Obstacle) OffScreen() bool {
	return o.X+o.W <= 0
}

// advance moves the obstacle one tick. floor is the canvas height.
func (o *Obstacle) advance(floor float64) {
	o.X += o.Speed

	switch o.Kind {
	case KindSpike, KindBlock:
		// Horizontal motion only.
	case KindMovingBlock:
		top := o.Osc.OriginY - o.Osc.Range
		o.Y += o.Osc.Direction
		if o.Y <= top {
			o.Y = top
			o.Osc.Direction = 1
		} else if o.Y >= o.Osc.OriginY {
			o.Y = o.Osc.OriginY
			o.Osc.Direction = -1
		}
	case KindFallingBlock:
		if o.Fall.Falling {
			rest := floor - o.H
			o.Y += o.Fall.Speed
			if o.Y >= rest {
				o.Y = rest
				o.Fall.Falling = false
			}
		}
	}
}
