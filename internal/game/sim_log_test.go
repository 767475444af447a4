package game

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

func TestSimLog_Queries(t *testing.T) {
	sl := NewSimLog()
	sl.Add(1, "spawn", "food", "(3,4)", 0)
	sl.Add(4, "eat", "food", "(3,4) score=1", 1)
	sl.Add(4, "spawn", "food", "(9,2)", 0)
	sl.Add(9, "death", "wall", "score=1 length=4", 1)

	if n := len(sl.Filter("spawn", "")); n != 2 {
		t.Fatalf("expected 2 spawn entries, got %d", n)
	}
	if n := sl.CountCategory("", "food"); n != 3 {
		t.Fatalf("expected 3 food entries, got %d", n)
	}
	if e, ok := sl.LastOf("spawn", "food"); !ok || e.Value != "(9,2)" {
		t.Fatalf("unexpected last spawn %+v", e)
	}
	if _, ok := sl.LastOf("eat", "boss"); ok {
		t.Fatal("no boss was eaten")
	}
	if !sl.HasEntry("eat", "", "score=1") || sl.HasEntry("eat", "", "score=2") {
		t.Fatal("HasEntry substring match wrong")
	}
	if n := len(sl.FilterTickRange(4, 9)); n != 3 {
		t.Fatalf("expected 3 entries in T=4..9, got %d", n)
	}
	if lines := strings.Count(sl.FormatRange(1, 1), "\n"); lines != 1 {
		t.Fatalf("expected 1 line, got %d", lines)
	}

	sl.Reset()
	if len(sl.Entries()) != 0 || sl.Format() != "" {
		t.Fatal("reset should drop everything")
	}
}

func TestSimLogEntry_String(t *testing.T) {
	e := SimLogEntry{Tick: 42, Category: "eat", Key: "food", Value: "(7,3) score=4"}
	want := fmt.Sprintf("[T=042] %-9s %-16s %s", "eat", "food", "(7,3) score=4")
	if e.String() != want {
		t.Fatalf("got %q, want %q", e.String(), want)
	}
}

func TestSimLog_SessionSummary(t *testing.T) {
	ts := NewTestSim(
		WithGrid(20, 15),
		WithSnake(Right, Cell{X: 5, Y: 5}, Cell{X: 4, Y: 5}, Cell{X: 3, Y: 5}),
		WithFood(Cell{X: 6, Y: 5}),
	)
	ts.Tick()
	sum := ts.SimLog.Summary(ts.Session)
	for _, want := range []string{"T=001", "State: playing", "score=1", "Meals: food=1"} {
		if !strings.Contains(sum, want) {
			t.Fatalf("summary missing %q:\n%s", want, sum)
		}
	}
}

func TestEventFeed_RingBuffer(t *testing.T) {
	f := NewEventFeed()
	if len(f.Recent()) != 0 {
		t.Fatal("new feed should be empty")
	}
	for i := 0; i < feedMaxEntries+5; i++ {
		f.Add(SimLogEntry{Tick: i})
	}
	got := f.Recent()
	if len(got) != feedMaxEntries {
		t.Fatalf("expected %d entries, got %d", feedMaxEntries, len(got))
	}
	if got[0].Tick != 5 || got[len(got)-1].Tick != feedMaxEntries+4 {
		t.Fatalf("expected ticks 5..%d, got %d..%d", feedMaxEntries+4, got[0].Tick, got[len(got)-1].Tick)
	}
}

func TestEventFeed_MirrorsSession(t *testing.T) {
	f := NewEventFeed()
	s := NewSession(DefaultConfig(), WithEventFeed(f), WithRand(rand.New(rand.NewSource(3)))) // #nosec G404 -- test
	s.Activate(0)
	if len(f.Recent()) == 0 {
		t.Fatal("feed should see the start of a game")
	}
	if e := f.Recent()[0]; e.Category != "state" && e.Category != "spawn" {
		t.Fatalf("unexpected first feed entry %+v", e)
	}
}
