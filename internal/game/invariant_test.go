package game

import (
	"fmt"
	"testing"
)

// --- Invariant helpers ---

// checkBoard verifies the per-tick board invariants: distinct in-bounds
// segments, food and boss on free cells and never on each other.
func checkBoard(t *testing.T, ts *TestSim) {
	t.Helper()
	s := ts.Session
	body := s.Snake()
	if !body.Distinct() {
		t.Fatalf("T=%d: snake overlaps itself: %v", s.Ticks(), body)
	}
	for _, c := range body {
		if !s.Grid().Contains(c) {
			t.Fatalf("T=%d: segment %v off the board", s.Ticks(), c)
		}
	}
	food, hasFood := s.Food()
	if hasFood && body.Occupies(food) {
		t.Fatalf("T=%d: food %v under the snake", s.Ticks(), food)
	}
	if boss, ok := s.Boss(); ok {
		if body.Occupies(boss) {
			t.Fatalf("T=%d: boss %v under the snake", s.Ticks(), boss)
		}
		if hasFood && boss == food {
			t.Fatalf("T=%d: food and boss share %v", s.Ticks(), boss)
		}
	}
}

// checkStep verifies that every segment moved at most one cell between the
// previous and current snapshot, so interpolation never jumps.
func checkStep(t *testing.T, ts *TestSim) {
	t.Helper()
	prev, cur := ts.Session.PrevSnake(), ts.Session.Snake()
	for i := 0; i < len(cur) && i < len(prev); i++ {
		if d := manhattan(prev[i], cur[i]); d > 1 {
			t.Fatalf("T=%d: segment %d jumped %d cells (%v -> %v)", ts.Session.Ticks(), i, d, prev[i], cur[i])
		}
	}
}

// runChecked ticks an autopilot game, checking invariants after every tick.
func runChecked(t *testing.T, ts *TestSim, maxTicks int) {
	t.Helper()
	s := ts.Session
	meals := 0
	lastScore := s.Score()
	lastInterval := s.Interval()

	for i := 0; i < maxTicks && s.State() == StatePlaying; i++ {
		res := ts.Tick()
		if res.Ate || res.AteBoss {
			meals++
		}

		checkBoard(t, ts)
		checkStep(t, ts)

		if got := len(s.Snake()); got != initialLength+meals {
			t.Fatalf("T=%d: length %d, want %d", s.Ticks(), got, initialLength+meals)
		}
		if s.Score() < lastScore {
			t.Fatalf("T=%d: score fell %d -> %d", s.Ticks(), lastScore, s.Score())
		}
		if s.Interval() > lastInterval || s.Interval() < minInterval {
			t.Fatalf("T=%d: interval %s out of order (was %s)", s.Ticks(), s.Interval(), lastInterval)
		}
		lastScore, lastInterval = s.Score(), s.Interval()
	}
}

func TestInvariant_AutopilotSeeds(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			ts := NewTestSim(WithGrid(14, 14), WithSeed(seed), WithAutopilot())
			runChecked(t, ts, 2000)
			t.Log(ts.SimLog.Summary(ts.Session))
		})
	}
}

func TestInvariant_BossEveryNthFood(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BossEvery = 3
	cfg.BossLifetime = -1
	ts := NewTestSim(WithConfig(cfg), WithGrid(16, 16), WithSeed(11), WithAutopilot())
	runChecked(t, ts, 1500)

	// Each spawn happens on a food score that is a multiple of BossEvery.
	for _, e := range ts.SimLog.Filter("spawn", "boss") {
		eat, ok := lastEatBefore(ts.SimLog, e)
		if !ok {
			t.Fatalf("boss spawned without a meal: %s", e.String())
		}
		if int(eat.NumVal)%cfg.BossEvery != 0 {
			t.Fatalf("boss spawned at score %v: %s", eat.NumVal, e.String())
		}
	}
	if ts.SimLog.CountCategory("spawn", "boss_expired") != 0 {
		t.Fatal("bosses must not expire with a negative lifetime")
	}
}

func TestInvariant_DeadSnakeStaysPut(t *testing.T) {
	ts := NewTestSim(WithGrid(10, 10), WithSeed(5), WithAutopilot())
	ts.RunTicks(5000)
	if ts.Session.State() == StatePlaying {
		t.Skip("autopilot survived the whole run")
	}
	before := ts.Session.Snake().clone(nil)
	ticks := ts.Session.Ticks()
	for i := 0; i < 10; i++ {
		if res := ts.Session.Tick(); res != (TickResult{}) {
			t.Fatalf("tick after death did something: %+v", res)
		}
	}
	if ts.Session.Ticks() != ticks {
		t.Fatal("tick counter moved after death")
	}
	after := ts.Session.Snake()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("segment %d moved after death", i)
		}
	}
}

// lastEatBefore finds the meal logged just before e on the same tick.
func lastEatBefore(sl *SimLog, e SimLogEntry) (SimLogEntry, bool) {
	var found SimLogEntry
	ok := false
	for _, x := range sl.Entries() {
		if x == e {
			return found, ok
		}
		if x.Category == "eat" && x.Key == "food" && x.Tick == e.Tick {
			found, ok = x, true
		}
	}
	return found, ok
}
