package game

import (
	"math"
	"testing"
	"time"
)

func TestSmoothstep(t *testing.T) {
	if Smoothstep(0) != 0 || Smoothstep(1) != 1 || Smoothstep(0.5) != 0.5 {
		t.Fatal("smoothstep endpoints or midpoint wrong")
	}
	prev := 0.0
	for i := 1; i <= 20; i++ {
		v := Smoothstep(float64(i) / 20)
		if v < prev {
			t.Fatalf("smoothstep not monotonic at %d", i)
		}
		prev = v
	}
}

func TestTickFraction_Clamps(t *testing.T) {
	if f := tickFraction(50*time.Millisecond, 100*time.Millisecond, 100*time.Millisecond); f != 0 {
		t.Fatalf("time before the last tick should clamp to 0, got %v", f)
	}
	if f := tickFraction(time.Second, 0, 100*time.Millisecond); f != 1 {
		t.Fatalf("overdue ticks should clamp to 1, got %v", f)
	}
	if f := tickFraction(0, 0, 0); f != 1 {
		t.Fatalf("zero interval should be complete, got %v", f)
	}
}

func TestSession_Progress(t *testing.T) {
	ts := NewTestSim(WithFood(Cell{X: 0, Y: 0}))
	s := ts.Session
	if p := s.Progress(startInterval / 2); p != 0.5 {
		t.Fatalf("expected 0.5 halfway through, got %v", p)
	}
	for _, now := range []time.Duration{0, 10 * time.Millisecond, startInterval, 3 * startInterval} {
		if p := s.Progress(now); p < 0 || p > 1 {
			t.Fatalf("progress %v out of range at %s", p, now)
		}
	}

	title := NewSession(DefaultConfig())
	if title.Progress(time.Second) != 0 {
		t.Fatal("progress is 0 outside Playing")
	}
}

func TestInterpolateSnake(t *testing.T) {
	g := Grid{Cols: 10, Rows: 10, CellSize: 10}
	prev := Snake{{X: 2, Y: 2}, {X: 1, Y: 2}}
	cur := Snake{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}}

	pts := InterpolateSnake(g, prev, cur, 0, 0, nil)
	if len(pts) != 3 {
		t.Fatalf("expected 3 points, got %d", len(pts))
	}
	if pts[0].X != 25 || pts[0].Y != 25 {
		t.Fatalf("head at progress 0 should be on its previous cell, got (%v,%v)", pts[0].X, pts[0].Y)
	}
	if pts[2].X != 15 {
		t.Fatalf("new tail segment should sit on its current cell, got %v", pts[2].X)
	}

	pts = InterpolateSnake(g, prev, cur, 0.5, 0, pts)
	if math.Abs(pts[0].X-30) > 1e-9 {
		t.Fatalf("head halfway should be at 30, got %v", pts[0].X)
	}

	pts = InterpolateSnake(g, prev, cur, 1, 1, pts)
	if len(pts) != 2 || pts[0].Index != 1 {
		t.Fatalf("skip should drop revealed segments, got %+v", pts)
	}
	if pts[0].X != 25 {
		t.Fatalf("segment 1 at progress 1 should be on (2,2), got %v", pts[0].X)
	}
}
