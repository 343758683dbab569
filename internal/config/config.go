// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"fmt"
	"strings"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid       SnakeGrid     `yaml:"grid"`
	Timing     SnakeTiming   `yaml:"timing"`
	Scoring    SnakeScoring  `yaml:"scoring"`
	Rules      SnakeRules    `yaml:"rules"`
	Difficulty ScalingConfig `yaml:"difficulty"`
}

// SnakeGrid sets the playfield size in cells.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeTiming sets how often the snake moves.
type SnakeTiming struct {
	TickIntervalMs int `yaml:"tick_interval_ms"`
}

// SnakeScoring sets points per food.
type SnakeScoring struct {
	FoodPoints int `yaml:"food_points"`
}

// SnakeRules holds rule toggles.
type SnakeRules struct {
	AllowTailChase bool `yaml:"allow_tail_chase"`
}

// FlappyConfig contains all configuration for the side-scrolling flyer.
// Distances are world units (the board's pixels), times are ticks.
type FlappyConfig struct {
	World      FlappyWorld     `yaml:"world"`
	Physics    FlappyPhysics   `yaml:"physics"`
	Obstacles  FlappyObstacles `yaml:"obstacles"`
	Player     FlappyPlayer    `yaml:"player"`
	Difficulty ScalingConfig   `yaml:"difficulty"`
}

// FlappyWorld is the simulated screen size.
type FlappyWorld struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FlappyPhysics defines per-tick physics for the flyer.
type FlappyPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	JumpVelocity  float64 `yaml:"jump_velocity"` // negative = up
	ObstacleSpeed float64 `yaml:"obstacle_speed"`
}

// FlappyObstacles defines obstacle spawning.
type FlappyObstacles struct {
	Width         int `yaml:"width"`
	GapSize       int `yaml:"gap_size"`
	SpawnInterval int `yaml:"spawn_interval"`
	MinMargin     int `yaml:"min_margin"`
}

// FlappyPlayer defines the actor's fixed column and size.
type FlappyPlayer struct {
	X    int `yaml:"x"`
	Size int `yaml:"size"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Presets lists the preset names in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}
