package config

// Ramp raises a base speed from the preset's starting level towards the
// configured maximum as a game goes on.
type Ramp struct {
	cfg   DifficultyConfig
	start float64
}

// NewRamp builds a ramp from cfg. The initial level is clamped to [0, 1].
func NewRamp(cfg DifficultyConfig) Ramp {
	return Ramp{cfg: cfg, start: clamp01(cfg.InitialLevel)}
}

// Enabled reports whether the level moves at all.
func (r Ramp) Enabled() bool {
	return r.cfg.Enabled && r.cfg.Progression.Type != "none"
}

// Level returns the difficulty in [start, 1]. Progress is measured in points
// for "score" progression and in seconds of play for "time" progression.
func (r Ramp) Level(points int, elapsed float64) float64 {
	if !r.Enabled() {
		return r.start
	}

	limit := float64(max(r.cfg.Progression.MaxAt, 1))
	var done float64
	switch r.cfg.Progression.Type {
	case "score":
		done = float64(points) / limit
	case "time":
		done = elapsed / limit
	default:
		return r.start
	}
	return r.start + clamp01(done)*(1-r.start)
}

// Speed scales base by the current level.
func (r Ramp) Speed(base float64, points int, elapsed float64) float64 {
	return base * (1 + r.Level(points, elapsed)*r.cfg.Scaling.SpeedMultiplier)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
