package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultSnakeConfig returns the board demo's snake settings.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid:    SnakeGrid{Width: 20, Height: 22},
		Timing:  SnakeTiming{TickIntervalMs: 200},
		Scoring: SnakeScoring{FoodPoints: 10},
		Difficulty: ScalingConfig{
			IntervalStep: 60,
		},
	}
}

// DefaultFlappyConfig returns the board demo's flyer settings on a 480x320 world.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{Width: 480, Height: 320},
		Physics: FlappyPhysics{
			Gravity:       0.7,
			JumpVelocity:  -4,
			ObstacleSpeed: 3,
		},
		Obstacles: FlappyObstacles{
			Width:         50,
			GapSize:       120,
			SpawnInterval: 150,
			MinMargin:     50,
		},
		Player: FlappyPlayer{X: 100, Size: 30},
		Difficulty: ScalingConfig{
			SpeedStep:    0.25,
			GapStep:      20,
			IntervalStep: 30,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	case "flappy":
		return defaultFlappyYAML
	default:
		return nil
	}
}
