package config

// ScalingConfig defines how far one difficulty step moves the static
// engine parameters away from the configured (normal) values.
type ScalingConfig struct {
	SpeedStep    float64 `yaml:"speed_step"`    // Fraction of base speed added per level
	GapStep      int     `yaml:"gap_step"`      // Gap shrink per level
	IntervalStep int     `yaml:"interval_step"` // Interval shrink per level (ms or ticks)
}

// Level returns the signed difficulty step for a preset: easy -1, normal 0, hard +1.
func Level(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return -1
	case DifficultyHard:
		return 1
	default:
		return 0
	}
}

// Speed returns base scaled for level, never below a tenth of base.
func (s ScalingConfig) Speed(base float64, level int) float64 {
	factor := 1.0 + float64(level)*s.SpeedStep
	return base * max(factor, 0.1)
}

// Gap returns base shrunk for level, never below floor.
func (s ScalingConfig) Gap(base, level, floor int) int {
	return max(base-level*s.GapStep, floor)
}

// Interval returns base shortened for level, never below floor.
func (s ScalingConfig) Interval(base, level, floor int) int {
	return max(base-level*s.IntervalStep, floor)
}

// ApplySnakePreset adjusts the move interval for a preset. Normal keeps the
// configured values as they are.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	level := Level(preset)
	if level == 0 {
		return
	}
	cfg.Timing.TickIntervalMs = cfg.Difficulty.Interval(cfg.Timing.TickIntervalMs, level, minSnakeIntervalMs)
}

// ApplyFlappyPreset adjusts obstacle speed, gap size and spawn spacing for a preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	level := Level(preset)
	if level == 0 {
		return
	}
	s := cfg.Difficulty

	cfg.Physics.ObstacleSpeed = s.Speed(cfg.Physics.ObstacleSpeed, level)
	cfg.Obstacles.GapSize = s.Gap(cfg.Obstacles.GapSize, level, cfg.Player.Size*2)
	cfg.Obstacles.SpawnInterval = s.Interval(cfg.Obstacles.SpawnInterval, level, minSpawnInterval)
}

const (
	minSnakeIntervalMs = 40
	minSpawnInterval   = 30
)
