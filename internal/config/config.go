// Package config loads the YAML settings of each game, layered over built-in
// defaults, and applies the difficulty presets.
package config

// BreakoutConfig contains all configuration for the Breakout game.
// Lengths are in field units (the logical playfield is Field.Width x Field.Height);
// ratios are fractions of the field size.
type BreakoutConfig struct {
	Field    FieldConfig      `yaml:"field"`
	Paddle   PaddleConfig     `yaml:"paddle"`
	Ball     BallConfig       `yaml:"ball"`
	Bounce   BounceConfig     `yaml:"bounce"`
	Blocks   BlocksConfig     `yaml:"blocks"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
}

// FieldConfig defines the logical playfield.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Hotbar float64 `yaml:"hotbar_height"` // HUD strip at the top; the ball reflects below it
}

// PaddleConfig defines the paddle geometry and speed.
type PaddleConfig struct {
	WidthRatio  float64 `yaml:"width_ratio"`  // of field width
	HeightRatio float64 `yaml:"height_ratio"` // of field height
	SpeedRatio  float64 `yaml:"speed_ratio"`  // field widths per second
}

// BallConfig defines the ball geometry and speed.
type BallConfig struct {
	Size       float64 `yaml:"size"`
	SpeedRatio float64 `yaml:"speed_ratio"` // field heights per second
	MinVelX    float64 `yaml:"min_vel_x"`   // nudge applied to a perfectly vertical ball
}

// BounceConfig shapes rebounds.
type BounceConfig struct {
	PaddleDivisor float64 `yaml:"paddle_divisor"` // hit offset / divisor = new VelX
	BlockAngle    float64 `yaml:"block_angle"`    // |VelX| after any block hit
}

// BlocksConfig defines the brick grid. Points and Colors are per row; when a
// list is shorter than Rows its last entry repeats.
type BlocksConfig struct {
	Rows      int      `yaml:"rows"`
	Cols      int      `yaml:"cols"`
	GapX      float64  `yaml:"gap_x"`
	GapY      float64  `yaml:"gap_y"`
	AreaRatio float64  `yaml:"area_ratio"` // of field height occupied by the grid
	Points    []int    `yaml:"points"`
	Colors    []string `yaml:"colors"`
}

// BreakoutGameplay defines round rules.
type BreakoutGameplay struct {
	Lives int `yaml:"lives"`
}

// RowPoints returns the point value of blocks in the given row.
func (b BlocksConfig) RowPoints(row int) int {
	if len(b.Points) == 0 {
		return 1
	}
	if row >= len(b.Points) {
		return b.Points[len(b.Points)-1]
	}
	return b.Points[row]
}

// RowColor returns the color name of blocks in the given row.
func (b BlocksConfig) RowColor(row int) string {
	if len(b.Colors) == 0 {
		return ""
	}
	if row >= len(b.Colors) {
		return b.Colors[len(b.Colors)-1]
	}
	return b.Colors[row]
}

// PongConfig contains all configuration for the Pong prototype.
type PongConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Bounce     BounceConfig     `yaml:"bounce"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongGameplay defines round rules for Pong.
type PongGameplay struct {
	Lives int `yaml:"lives"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // points or seconds at which the level reaches 1
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

var presetLevels = map[DifficultyPreset]float64{
	DifficultyNormal: 0.3,
	DifficultyHard:   0.7,
}

// InitialLevelForPreset is where a preset starts the speed ramp. Easy and
// unknown presets start at 0.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	return presetLevels[preset]
}
