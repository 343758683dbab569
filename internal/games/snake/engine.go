// Package snake implements the grid snake simulation and the arcade adapter
// that drives it from host ticks.
package snake

import (
	"github.com/vovakirdan/lcd-arcade/internal/core"
)

// Direction is the snake's heading.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) valid() bool {
	return d >= DirUp && d <= DirRight
}

// Opposite returns the direct reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Cell is a grid coordinate, 0-indexed from the top-left.
type Cell struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	switch d {
	case DirUp:
		return Cell{X: c.X, Y: c.Y - 1}
	case DirDown:
		return Cell{X: c.X, Y: c.Y + 1}
	case DirLeft:
		return Cell{X: c.X - 1, Y: c.Y}
	default:
		return Cell{X: c.X + 1, Y: c.Y}
	}
}

// State is the engine lifecycle.
type State int

const (
	StateRunning State = iota
	StateOver
	StateWon // board full, nowhere left to put food
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateOver:
		return "over"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Config holds construction parameters.
type Config struct {
	Width          int
	Height         int
	TickIntervalMs int // Host-side cadence of one Tick; the engine only validates it
	ScoreIncrement int
	// AllowTailChase excludes the cell the tail is about to vacate from the
	// self-collision test. Off by default: the head may not enter any cell the
	// snake occupies before the move.
	AllowTailChase bool
	Seed           int64
}

// DefaultConfig mirrors the board demo: 20x22 grid, one move per 200 ms, 10 points per food.
func DefaultConfig() Config {
	return Config{
		Width:          20,
		Height:         22,
		TickIntervalMs: 200,
		ScoreIncrement: 10,
	}
}

// Validate reports the first unusable parameter.
func (c Config) Validate() error {
	if err := core.RequirePositive("width", c.Width); err != nil {
		return err
	}
	if err := core.RequirePositive("height", c.Height); err != nil {
		return err
	}
	if c.Width < initialLength {
		return &core.ConfigError{Field: "width", Value: c.Width, Reason: "grid too narrow for the starting snake"}
	}
	if err := core.RequirePositive("tick_interval_ms", c.TickIntervalMs); err != nil {
		return err
	}
	if c.ScoreIncrement < 0 {
		return &core.ConfigError{Field: "score_increment", Value: c.ScoreIncrement, Reason: "must not be negative"}
	}
	return nil
}

const initialLength = 3

// noFood marks the food slot when the board is full.
var noFood = Cell{X: -1, Y: -1}

// Engine is the snake simulation. It is not safe for concurrent use; one host
// loop owns it and calls SetDirection/Tick/Restart in sequence.
type Engine struct {
	cfg Config
	rng core.Rand

	snake   []Cell // head at index 0
	heading Direction
	pending Direction
	food    Cell
	score   int
	state   State
	ticks   uint64

	occupied []bool // scratch grid reused by placeFood
}

// New builds an engine whose food placement is seeded from cfg.Seed.
func New(cfg Config) (*Engine, error) {
	return NewWithRand(cfg, core.NewRand(cfg.Seed))
}

// NewWithRand builds an engine drawing food placement from rng.
func NewWithRand(cfg Config, rng core.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, &core.ConfigError{Field: "rng", Value: nil, Reason: "random source required"}
	}
	e := &Engine{
		cfg:      cfg,
		rng:      rng,
		occupied: make([]bool, cfg.Width*cfg.Height),
	}
	e.Restart()
	return e, nil
}

// Restart puts the snake back at its starting position with a fresh food cell.
// The random source is not reseeded, so food lands somewhere new.
func (e *Engine) Restart() {
	headX := min(max(e.cfg.Width/2+1, initialLength-1), e.cfg.Width-1)
	row := e.cfg.Height / 2

	e.snake = e.snake[:0]
	for i := range initialLength {
		e.snake = append(e.snake, Cell{X: headX - i, Y: row})
	}
	e.heading = DirRight
	e.pending = DirRight
	e.score = 0
	e.ticks = 0
	e.state = StateRunning
	if !e.placeFood() {
		e.state = StateWon
	}
}

// SetDirection queues a heading for the next tick. Reversing straight into
// the neck is ignored, as is any input once the game has ended.
func (e *Engine) SetDirection(d Direction) {
	if e.state != StateRunning || !d.valid() {
		return
	}
	if d == e.heading.Opposite() {
		return
	}
	e.pending = d
}

// TickResult reports what one Tick did.
type TickResult struct {
	State    State
	Ate      bool
	Snapshot Snapshot
}

// Tick advances the snake one cell. It is a no-op once the game has ended.
func (e *Engine) Tick() TickResult {
	if e.state != StateRunning {
		return TickResult{State: e.state, Snapshot: e.Snapshot()}
	}
	e.ticks++

	e.heading = e.pending
	next := e.snake[0].Step(e.heading)

	if !e.inBounds(next) || e.hitsBody(next) {
		e.state = StateOver
		return TickResult{State: e.state, Snapshot: e.Snapshot()}
	}

	ate := next == e.food
	e.snake = append(e.snake, Cell{})
	copy(e.snake[1:], e.snake)
	e.snake[0] = next

	if ate {
		e.score += e.cfg.ScoreIncrement
		if !e.placeFood() {
			e.state = StateWon
		}
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}

	return TickResult{State: e.state, Ate: ate, Snapshot: e.Snapshot()}
}

func (e *Engine) inBounds(c Cell) bool {
	return c.X >= 0 && c.X < e.cfg.Width && c.Y >= 0 && c.Y < e.cfg.Height
}

// hitsBody checks next against the body as it stands before the move.
func (e *Engine) hitsBody(next Cell) bool {
	n := len(e.snake)
	if e.cfg.AllowTailChase && next != e.food {
		n--
	}
	for _, c := range e.snake[:n] {
		if c == next {
			return true
		}
	}
	return false
}

// placeFood picks uniformly among free cells in one pass over the grid, so the
// worst case is Width*Height checks. Returns false when the snake fills the board.
func (e *Engine) placeFood() bool {
	for i := range e.occupied {
		e.occupied[i] = false
	}
	for _, c := range e.snake {
		e.occupied[c.Y*e.cfg.Width+c.X] = true
	}

	free := len(e.occupied) - len(e.snake)
	if free <= 0 {
		e.food = noFood
		return false
	}

	pick := e.rng.Intn(free)
	for i, taken := range e.occupied {
		if taken {
			continue
		}
		if pick == 0 {
			e.food = Cell{X: i % e.cfg.Width, Y: i / e.cfg.Width}
			return true
		}
		pick--
	}
	e.food = noFood
	return false
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Heading returns the direction the snake last moved in.
func (e *Engine) Heading() Direction {
	return e.heading
}

// Config returns the parameters the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}
