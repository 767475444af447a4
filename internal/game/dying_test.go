package game

import (
	"testing"
	"time"
)

// killAgainstWall returns a sim whose snake has just hit the right wall.
func killAgainstWall(t *testing.T, opts ...SimOption) *TestSim {
	t.Helper()
	opts = append([]SimOption{
		WithGrid(20, 15),
		WithSnake(Right, Cell{X: 19, Y: 7}, Cell{X: 18, Y: 7}, Cell{X: 17, Y: 7}, Cell{X: 16, Y: 7}),
		WithFood(Cell{X: 0, Y: 0}),
	}, opts...)
	ts := NewTestSim(opts...)
	if res := ts.Tick(); !res.Died {
		t.Fatalf("expected death, got %+v", res)
	}
	return ts
}

func TestDying_RevealsHeadFirstThenGameOver(t *testing.T) {
	ts := killAgainstWall(t, WithScore(3))
	s := ts.Session

	last := 0
	sawParticlesDuringGameOver := false
	reached := ts.AdvanceUntil(func(ts *TestSim) bool {
		if r := ts.Session.Revealed(); r < last {
			t.Fatalf("reveal went backwards: %d -> %d", last, r)
		}
		last = ts.Session.Revealed()
		if ts.Session.State() == StateGameOver && ts.Session.Particles().Len() > 0 {
			sawParticlesDuringGameOver = true
		}
		return ts.Session.State() == StateGameOver
	}, 5*time.Second)

	if !reached {
		t.Fatalf("never reached game over; state=%s revealed=%d particles=%d",
			s.State(), s.Revealed(), s.Particles().Len())
	}
	if sawParticlesDuringGameOver {
		t.Fatal("game over must wait for the last particle")
	}
	if s.Revealed() != len(s.Snake()) {
		t.Fatalf("every segment should be revealed, got %d of %d", s.Revealed(), len(s.Snake()))
	}
	if s.Summary() != "GOOD" {
		t.Fatalf("expected summary GOOD for length 4, got %q", s.Summary())
	}
	if ts.Sound.Count(CueGameOver) != 1 {
		t.Fatalf("expected one game-over cue, got %v", ts.Sound.Cues)
	}
}

func TestDying_RevealCadence(t *testing.T) {
	ts := killAgainstWall(t)
	ts.Advance(revealCadence - time.Millisecond)
	if ts.Session.Revealed() != 0 {
		t.Fatalf("nothing should pop before the cadence, got %d", ts.Session.Revealed())
	}
	ts.Advance(frameStep)
	if ts.Session.Revealed() != 1 {
		t.Fatalf("expected one popped segment, got %d", ts.Session.Revealed())
	}
}

func TestDying_IgnoresInput(t *testing.T) {
	ts := killAgainstWall(t)
	s := ts.Session
	if s.Activate(ts.Now()) {
		t.Fatal("activate during dying should be ignored")
	}
	dispatch(s, ts.Now(), []intent{{kind: intentActivate}, {kind: intentTurn, dir: Up, has: true}})
	if s.State() != StateDying {
		t.Fatalf("expected dying, got %s", s.State())
	}
}

func TestDying_FeedbackOnDeath(t *testing.T) {
	ts := killAgainstWall(t)
	s := ts.Session

	if s.Flash(ts.Now()) != 1 {
		t.Fatalf("flash should be full at the moment of death, got %v", s.Flash(ts.Now()))
	}
	if s.Flash(ts.Now()+flashDuration) != 0 {
		t.Fatal("flash should be gone after its duration")
	}
	if s.Shake() != shakeImpulse {
		t.Fatalf("expected shake %v, got %v", shakeImpulse, s.Shake())
	}
	if ts.Sound.Count(CueDeath) != 1 {
		t.Fatalf("expected a death cue, got %v", ts.Sound.Cues)
	}
	p := ts.Haptics.Patterns[len(ts.Haptics.Patterns)-1]
	if len(p) != 5 || p[4] != 60*time.Millisecond {
		t.Fatalf("unexpected death pattern %v", p)
	}

	ts.Advance(time.Second)
	if s.Shake() != 0 {
		t.Fatalf("shake should have settled, got %v", s.Shake())
	}
}

func TestDying_RecordOnTieSavedOnlyWhenBeaten(t *testing.T) {
	ts := killAgainstWall(t, WithHighScore(3), WithScore(5))
	if !ts.Session.NewRecord() || ts.Session.HighScore() != 5 {
		t.Fatalf("expected new record 5, got record=%v hi=%d", ts.Session.NewRecord(), ts.Session.HighScore())
	}
	if ts.Store.Score != 5 || ts.Store.Saves != 1 {
		t.Fatalf("expected one save of 5, got %+v", ts.Store)
	}

	tie := killAgainstWall(t, WithHighScore(5), WithScore(5))
	if !tie.Session.NewRecord() || tie.Store.Saves != 0 {
		t.Fatalf("a tie shows as a record but is not saved: record=%v saves=%d", tie.Session.NewRecord(), tie.Store.Saves)
	}

	below := killAgainstWall(t, WithHighScore(9), WithScore(5))
	if below.Session.NewRecord() || below.Store.Saves != 0 || below.Session.HighScore() != 9 {
		t.Fatalf("a lower score is no record: record=%v saves=%d", below.Session.NewRecord(), below.Store.Saves)
	}

	zero := killAgainstWall(t)
	if zero.Session.NewRecord() {
		t.Fatal("a zero score is never a record")
	}
}

func TestDying_RestartFromGameOver(t *testing.T) {
	ts := killAgainstWall(t, WithHighScore(2), WithScore(4))
	if !ts.AdvanceUntil(func(ts *TestSim) bool { return ts.Session.State() == StateGameOver }, 5*time.Second) {
		t.Fatal("never reached game over")
	}
	s := ts.Session
	if !s.Activate(ts.Now()) {
		t.Fatal("activate from game over should restart")
	}
	if s.State() != StatePlaying || s.Score() != 0 || len(s.Snake()) != initialLength {
		t.Fatalf("expected a fresh game, got state=%s score=%d len=%d", s.State(), s.Score(), len(s.Snake()))
	}
	if s.HighScore() != 4 || s.NewRecord() {
		t.Fatalf("high score should persist and the record flag reset: hi=%d rec=%v", s.HighScore(), s.NewRecord())
	}
	if s.Cause() != DeathNone || s.Particles().Len() != 0 {
		t.Fatal("death effects should be cleared")
	}
}

func TestCountUp(t *testing.T) {
	if got := countUp(20, 0, countUpTime); got != 0 {
		t.Fatalf("count-up starts at 0, got %d", got)
	}
	if got := countUp(20, countUpTime, countUpTime); got != 20 {
		t.Fatalf("count-up ends on the score, got %d", got)
	}
	if got := countUp(20, 2*countUpTime, countUpTime); got != 20 {
		t.Fatalf("count-up holds after the duration, got %d", got)
	}
	half := countUp(100, countUpTime/2, countUpTime)
	if half <= 50 || half >= 100 {
		t.Fatalf("ease-out should be past halfway at half time, got %d", half)
	}
}
