package flappy

import (
	"github.com/vovakirdan/lcd-arcade/internal/core"
)

// Obstacle is a vertical wall with one passable gap.
type Obstacle struct {
	X         float64 // Left edge
	GapY      int     // Top of the gap
	GapHeight int
	Width     int
	Scored    bool // Set once the actor has passed it
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.X + float64(o.Width)
}

// GapBottom returns the y-coordinate just below the gap.
func (o Obstacle) GapBottom() int {
	return o.GapY + o.GapHeight
}

// TopRect returns the wall above the gap.
func (o Obstacle) TopRect() core.RectF {
	return core.NewRectF(o.X, 0, float64(o.Width), float64(o.GapY))
}

// BottomRect returns the wall below the gap, down to screenH.
func (o Obstacle) BottomRect(screenH int) core.RectF {
	return core.NewRectF(o.X, float64(o.GapBottom()), float64(o.Width), float64(screenH-o.GapBottom()))
}

// Blocks reports whether actor touches either wall: it overlaps the
// obstacle horizontally without fitting inside the gap vertically.
func (o Obstacle) Blocks(actor core.RectF) bool {
	wall := core.NewRectF(o.X, 0, float64(o.Width), 0)
	if !actor.OverlapsX(wall) {
		return false
	}
	return !actor.WithinY(float64(o.GapY), float64(o.GapBottom()))
}

// spawnObstacle appends a new obstacle at the right screen edge with a gap
// offset uniform in [MinMargin, ScreenHeight-GapSize-MinMargin].
func (e *Engine) spawnObstacle() {
	lo := e.cfg.MinMargin
	hi := e.cfg.ScreenHeight - e.cfg.GapSize - e.cfg.MinMargin

	e.obstacles = append(e.obstacles, Obstacle{
		X:         float64(e.cfg.ScreenWidth),
		GapY:      lo + e.rng.Intn(hi-lo+1),
		GapHeight: e.cfg.GapSize,
		Width:     e.cfg.ObstacleWidth,
	})
}

// checkObstacles ends the game if any obstacle blocks actor and marks
// obstacles the actor has fully passed. It returns the points earned.
func (e *Engine) checkObstacles(actor core.RectF) (points int) {
	for i := range e.obstacles {
		o := &e.obstacles[i]
		if o.Blocks(actor) {
			e.state = StateOver
		}
		if !o.Scored && o.Right() < actor.X {
			o.Scored = true
			points++
		}
	}
	return points
}

// dropOffscreen removes obstacles whose right edge has left the screen.
// The queue stays ordered oldest first.
func (e *Engine) dropOffscreen() {
	kept := e.obstacles[:0]
	for _, o := range e.obstacles {
		if o.Right() >= 0 {
			kept = append(kept, o)
		}
	}
	e.obstacles = kept
}
