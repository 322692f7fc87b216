package config

// Progression computes level pacing and the spawn interval from ProgressionConfig.
type Progression struct {
	cfg ProgressionConfig
}

// NewProgression creates a progression calculator.
func NewProgression(cfg ProgressionConfig) *Progression {
	return &Progression{cfg: cfg}
}

// SpawnInterval returns how many frames separate spawns at the given level:
// spawn_base - spawn_step*level, never below min_spawn_interval (and never below 1).
// Without the floor the interval reaches zero at level 15 with the default numbers.
func (p *Progression) SpawnInterval(level int) int {
	interval := p.cfg.SpawnBase - p.cfg.SpawnStep*level
	floor := p.cfg.MinSpawnInterval
	if floor < 1 {
		floor = 1
	}
	if interval < floor {
		interval = floor
	}
	return interval
}

// ShouldSpawn reports whether an obstacle is due on this frame.
func (p *Progression) ShouldSpawn(frame, level int) bool {
	return frame%p.SpawnInterval(level) == 0
}

// LevelUp reports whether the level advances on this frame.
// Frame 0 never levels up, so a fresh game spends its first level_every frames at level 1.
func (p *Progression) LevelUp(frame int) bool {
	if p.cfg.LevelEvery <= 0 || frame <= 0 {
		return false
	}
	return frame%p.cfg.LevelEvery == 0
}
