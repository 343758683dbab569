package flappy

// Autopilot keeps the actor inside the next gap by jumping whenever it is
// about to sink below the gap's lower edge.
type Autopilot struct {
	// Slack is how far above the gap bottom the actor's lower edge may fall
	// before the pilot jumps.
	Slack float64
}

// NewAutopilot returns a pilot with zero Slack, which ShouldJump reads as a
// third of the actor size.
func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// ShouldJump decides for the next tick. It always jumps from Idle and never
// while Over.
func (a *Autopilot) ShouldJump(s Snapshot, gravity float64) bool {
	switch s.State {
	case StateIdle:
		return true
	case StateOver:
		return false
	}

	slack := a.Slack
	if slack == 0 {
		slack = s.Actor.Size / 3
	}

	floor := float64(s.Height)
	if o, ok := s.NextObstacle(); ok {
		floor = float64(o.GapBottom())
	}

	// Where the lower edge lands if we do nothing this tick.
	nextBottom := s.Actor.Y + s.Actor.Size + s.Actor.Velocity + gravity
	return nextBottom > floor-slack
}
