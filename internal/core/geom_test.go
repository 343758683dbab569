package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectFOverlap(t *testing.T) {
	actor := NewRectF(100, 40, 30, 30)

	tests := []struct {
		name     string
		other    RectF
		overlapX bool
	}{
		{"same column", NewRectF(110, 0, 50, 20), true},
		{"touching left edge", NewRectF(50, 40, 50, 30), false},
		{"partial overlap", NewRectF(120, 60, 50, 50), true},
		{"far right", NewRectF(300, 40, 50, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := actor.OverlapsX(tc.other); got != tc.overlapX {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.overlapX)
			}
		})
	}
}

func TestRectFWithinY(t *testing.T) {
	r := NewRectF(0, 50, 10, 30)

	if !r.WithinY(50, 80) {
		t.Error("box exactly filling the band should be within it")
	}
	if r.WithinY(51, 80) {
		t.Error("box poking above the band should not be within it")
	}
	if r.WithinY(50, 79.5) {
		t.Error("box poking below the band should not be within it")
	}
}

func TestRectFScale(t *testing.T) {
	tests := []struct {
		name     string
		in       RectF
		sx, sy   float64
		expected Rect
	}{
		{"identity", NewRectF(2, 3, 4, 5), 1, 1, NewRect(2, 3, 4, 5)},
		{"halve", NewRectF(10, 10, 20, 20), 0.5, 0.5, NewRect(5, 5, 10, 10)},
		{"fractional rounds outward", NewRectF(2.5, 0, 1, 1), 1, 1, NewRect(2, 0, 2, 1)},
		{"tiny never vanishes", NewRectF(100, 100, 1, 1), 0.01, 0.01, NewRect(1, 1, 1, 1)},
		{"negative origin", NewRectF(-1.5, 0, 1, 1), 1, 1, NewRect(-2, 0, 2, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Scale(tc.sx, tc.sy); got != tc.expected {
				t.Errorf("Scale() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}
