// Package flappy implements the side-scrolling flyer: an actor falls under
// gravity, jumps on request and must pass through gaps in walls that scroll
// in from the right.
package flappy

import (
	"github.com/vovakirdan/lcd-arcade/internal/core"
)

// State is the engine lifecycle: Idle --jump--> Running --hit--> Over --restart--> Idle.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Config holds construction parameters. Distances are world units, y grows
// downward, velocities are per tick.
type Config struct {
	ScreenWidth   int
	ScreenHeight  int
	Gravity       float64
	JumpVelocity  float64 // Negative: up
	ObstacleSpeed float64
	GapSize       int
	SpawnInterval int // Ticks between obstacles
	MinMargin     int // Minimum wall height above and below the gap
	ObstacleWidth int
	ActorX        int
	ActorSize     int
	Seed          int64
}

// DefaultConfig mirrors the board demo on its 480x320 panel.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:   480,
		ScreenHeight:  320,
		Gravity:       0.7,
		JumpVelocity:  -4,
		ObstacleSpeed: 3,
		GapSize:       120,
		SpawnInterval: 150,
		MinMargin:     50,
		ObstacleWidth: 50,
		ActorX:        100,
		ActorSize:     30,
	}
}

// Validate reports the first unusable parameter.
func (c Config) Validate() error {
	checks := []error{
		core.RequirePositive("screen_width", c.ScreenWidth),
		core.RequirePositive("screen_height", c.ScreenHeight),
		core.RequirePositive("gravity", c.Gravity),
		core.RequirePositive("obstacle_speed", c.ObstacleSpeed),
		core.RequirePositive("gap_size", c.GapSize),
		core.RequirePositive("spawn_interval", c.SpawnInterval),
		core.RequirePositive("obstacle_width", c.ObstacleWidth),
		core.RequirePositive("actor_size", c.ActorSize),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	switch {
	case c.JumpVelocity >= 0:
		return &core.ConfigError{Field: "jump_velocity", Value: c.JumpVelocity, Reason: "must be negative (upward)"}
	case c.MinMargin < 0:
		return &core.ConfigError{Field: "min_margin", Value: c.MinMargin, Reason: "must not be negative"}
	case c.GapSize+2*c.MinMargin > c.ScreenHeight:
		return &core.ConfigError{Field: "gap_size", Value: c.GapSize, Reason: "gap and margins exceed screen height"}
	case c.GapSize <= c.ActorSize:
		return &core.ConfigError{Field: "gap_size", Value: c.GapSize, Reason: "gap must be taller than the actor"}
	case c.ActorX < 0 || c.ActorX+c.ActorSize > c.ScreenWidth:
		return &core.ConfigError{Field: "actor_x", Value: c.ActorX, Reason: "actor must start on screen"}
	case c.ScreenHeight/2+c.ActorSize > c.ScreenHeight:
		return &core.ConfigError{Field: "actor_size", Value: c.ActorSize, Reason: "actor does not fit below mid-screen start"}
	}
	return nil
}

// Actor is the player-controlled body. Only Y and Velocity change during play.
type Actor struct {
	X        float64
	Y        float64 // Top edge
	Velocity float64
	Size     float64
}

// Bounds returns the actor's box.
func (a Actor) Bounds() core.RectF {
	return core.NewRectF(a.X, a.Y, a.Size, a.Size)
}

// Engine is the side-scroller simulation. It is not safe for concurrent use.
type Engine struct {
	cfg Config
	rng core.Rand

	actor     Actor
	obstacles []Obstacle // oldest (leftmost) first
	score     int
	state     State
	frames    int // ticks since the last spawn
	ticks     uint64
}

// New builds an engine whose gap placement is seeded from cfg.Seed.
func New(cfg Config) (*Engine, error) {
	return NewWithRand(cfg, core.NewRand(cfg.Seed))
}

// NewWithRand builds an engine drawing gap offsets from rng.
func NewWithRand(cfg Config, rng core.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, &core.ConfigError{Field: "rng", Value: nil, Reason: "random source required"}
	}
	e := &Engine{
		cfg:       cfg,
		rng:       rng,
		obstacles: make([]Obstacle, 0, 8),
	}
	e.Restart()
	return e, nil
}

// Restart returns to Idle with the actor mid-screen and no obstacles.
func (e *Engine) Restart() {
	e.actor = Actor{
		X:    float64(e.cfg.ActorX),
		Y:    float64(e.cfg.ScreenHeight / 2),
		Size: float64(e.cfg.ActorSize),
	}
	e.obstacles = e.obstacles[:0]
	e.score = 0
	e.frames = 0
	e.ticks = 0
	e.state = StateIdle
}

// RequestJump starts the game from Idle (spawning the first obstacle) and
// sets the actor's velocity to JumpVelocity. Ignored once the game is over;
// the caller must Restart first.
func (e *Engine) RequestJump() {
	switch e.state {
	case StateOver:
		return
	case StateIdle:
		e.state = StateRunning
		e.spawnObstacle()
	}
	e.actor.Velocity = e.cfg.JumpVelocity
}

// TickResult reports what one Tick did.
type TickResult struct {
	State    State
	Scored   int // Points earned this tick
	Snapshot Snapshot
}

// Tick advances one step. Idle and Over are no-ops.
func (e *Engine) Tick() TickResult {
	if e.state != StateRunning {
		return TickResult{State: e.state, Snapshot: e.Snapshot()}
	}
	e.ticks++

	e.actor.Velocity += e.cfg.Gravity
	e.actor.Y += e.actor.Velocity

	// The ceiling stops the actor; the floor kills it.
	if e.actor.Y < 0 {
		e.actor.Y = 0
		e.actor.Velocity = 0
	} else if e.actor.Y+e.actor.Size > float64(e.cfg.ScreenHeight) {
		e.state = StateOver
	}

	for i := range e.obstacles {
		e.obstacles[i].X -= e.cfg.ObstacleSpeed
	}

	e.frames++
	if e.frames >= e.cfg.SpawnInterval {
		e.spawnObstacle()
		e.frames = 0
	}

	points := e.checkObstacles(e.actor.Bounds())
	e.score += points

	e.dropOffscreen()

	return TickResult{State: e.state, Scored: points, Snapshot: e.Snapshot()}
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Score returns obstacles passed since the last restart.
func (e *Engine) Score() int {
	return e.score
}

// Config returns the parameters the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}
