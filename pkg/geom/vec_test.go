package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestVecOps(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	if !almostEqual(a.Len(), 5) {
		t.Errorf("len: got %f, want 5", a.Len())
	}
	if got := a.Add(Vec2{X: 1, Y: 1}); got != (Vec2{X: 4, Y: 5}) {
		t.Errorf("add: %+v", got)
	}
	if got := a.Sub(Vec2{X: 3, Y: 4}); got != (Vec2{}) {
		t.Errorf("sub: %+v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("scale: %+v", got)
	}
	if !almostEqual(Dist(Vec2{}, a), 5) {
		t.Errorf("dist: got %f, want 5", Dist(Vec2{}, a))
	}
}

func TestLerp(t *testing.T) {
	from := Vec2{X: 0, Y: 0}
	to := Vec2{X: 10, Y: 20}
	if got := Lerp(from, to, 0); got != from {
		t.Errorf("t=0: %+v", got)
	}
	if got := Lerp(from, to, 1); got != to {
		t.Errorf("t=1: %+v", got)
	}
	if got := Lerp(from, to, 0.5); got != (Vec2{X: 5, Y: 10}) {
		t.Errorf("t=0.5: %+v", got)
	}
}

func TestDistToSegment(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 100, Y: 0}

	if got := DistToSegment(Vec2{X: 50, Y: 10}, a, b); !almostEqual(got, 10) {
		t.Errorf("above midpoint: got %f, want 10", got)
	}
	// Beyond an endpoint the distance is to the endpoint itself.
	if got := DistToSegment(Vec2{X: -30, Y: 40}, a, b); !almostEqual(got, 50) {
		t.Errorf("beyond start: got %f, want 50", got)
	}
	if got := DistToSegment(Vec2{X: 130, Y: 40}, a, b); !almostEqual(got, 50) {
		t.Errorf("beyond end: got %f, want 50", got)
	}
	// Degenerate segment collapses to point distance.
	if got := DistToSegment(Vec2{X: 3, Y: 4}, a, a); !almostEqual(got, 5) {
		t.Errorf("degenerate segment: got %f, want 5", got)
	}
}
