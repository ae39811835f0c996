package config

import _ "embed"

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// The field is 960x700 units with a 40 unit HUD strip; the grid is 8x14
// scored 7/5/3/1 per row pair from the top.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			Width:  960,
			Height: 700,
			Hotbar: 40,
		},
		Paddle: PaddleConfig{
			WidthRatio:  0.18,
			HeightRatio: 0.03,
			SpeedRatio:  0.5,
		},
		Ball: BallConfig{
			Size:       10,
			SpeedRatio: 0.5,
			MinVelX:    0.003,
		},
		Bounce: BounceConfig{
			PaddleDivisor: 100,
			BlockAngle:    0.3,
		},
		Blocks: BlocksConfig{
			Rows:      8,
			Cols:      14,
			GapX:      2,
			GapY:      2,
			AreaRatio: 1.0 / 3.0,
			Points:    []int{7, 7, 5, 5, 3, 3, 1, 1},
			Colors:    []string{"red", "red", "pink", "pink", "green", "green", "yellow", "yellow"},
		},
		Gameplay: BreakoutGameplay{
			Lives: 3,
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:  960,
			Height: 700,
			Hotbar: 40,
		},
		Paddle: PaddleConfig{
			WidthRatio:  0.2,
			HeightRatio: 0.03,
			SpeedRatio:  0.6,
		},
		Ball: BallConfig{
			Size:       12,
			SpeedRatio: 0.45,
			MinVelX:    0.003,
		},
		Bounce: BounceConfig{
			PaddleDivisor: 100,
		},
		Gameplay: PongGameplay{
			Lives: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
			},
		},
	}
}

// DefaultYAML returns the embedded config file of a game, or nil for an
// unknown ID.
func DefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML
	case "pong":
		return defaultPongYAML
	}
	return nil
}
