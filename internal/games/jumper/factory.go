package jumper

import (
	"math/rand"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
)

// archetype is a config.ObstacleArchetype resolved to game types.
type archetype struct {
	kind      Kind
	w, h      float64
	color     core.Color
	speed     float64
	moveRange float64
	fallSpeed float64
}

// Factory creates obstacles by sampling the archetype table uniformly.
type Factory struct {
	rng        *rand.Rand
	archetypes []archetype
	canvasW    float64
	canvasH    float64
	nextID     int
}

// NewFactory resolves the configured archetypes. The config must have passed Validate.
func NewFactory(seed int64, cfg config.JumperConfig) (*Factory, error) {
	types := make([]archetype, 0, len(cfg.Obstacles))
	for _, a := range cfg.Obstacles {
		kind, err := parseKind(a.Kind)
		if err != nil {
			return nil, err
		}
		color, ok := core.ParseColor(a.Color)
		if !ok {
			color = core.ColorWhite
		}
		types = append(types, archetype{
			kind:      kind,
			w:         a.Width,
			h:         a.Height,
			color:     color,
			speed:     a.Speed,
			moveRange: a.MoveRange,
			fallSpeed: a.FallSpeed,
		})
	}

	return &Factory{
		rng:        rand.New(rand.NewSource(seed)),
		archetypes: types,
		canvasW:    cfg.Canvas.Width,
		canvasH:    cfg.Canvas.Height,
	}, nil
}

// Spawn creates a new obstacle at the right edge, resting on the floor.
func (f *Factory) Spawn() Obstacle {
	a := f.archetypes[f.rng.Intn(len(f.archetypes))]
	f.nextID++

	o := Obstacle{
		ID:    f.nextID,
		Kind:  a.kind,
		X:     f.canvasW,
		Y:     f.canvasH - a.h,
		W:     a.w,
		H:     a.h,
		Color: a.color,
		Speed: a.speed,
	}

	switch a.kind {
	case KindMovingBlock:
		dir := -1.0
		if f.rng.Intn(2) == 0 {
			dir = 1
		}
		o.Osc = Oscillation{OriginY: o.Y, Direction: dir, Range: a.moveRange}
	case KindFallingBlock:
		o.Fall = Fall{Speed: a.fallSpeed, InitialY: o.Y, Falling: true}
	}

	return o
}
