package snake

// Autopilot steers greedily toward the food, refusing moves that hit a wall
// or any body cell. It keeps no memory between calls beyond scratch space.
type Autopilot struct {
	order [4]Direction
}

// NewAutopilot returns a pilot that breaks distance ties up, down, left, right.
func NewAutopilot() *Autopilot {
	return &Autopilot{order: [4]Direction{DirUp, DirDown, DirLeft, DirRight}}
}

// Next picks the safe heading whose next cell is closest to the food.
// When nothing is safe it keeps the current heading.
func (a *Autopilot) Next(s Snapshot) Direction {
	head := s.Head()
	best := s.Heading
	bestDist := -1

	for _, d := range a.order {
		if d == s.Heading.Opposite() {
			continue
		}
		next := head.Step(d)
		if !safeCell(s, next) {
			continue
		}
		dist := manhattan(next, s.Food)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

func safeCell(s Snapshot, c Cell) bool {
	if c.X < 0 || c.X >= s.Width || c.Y < 0 || c.Y >= s.Height {
		return false
	}
	return !s.Occupies(c)
}

func manhattan(a, b Cell) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
