package main

import (
	"testing"

	"github.com/Garsondee/good-looking-snake/internal/game"
)

func TestCauseCounts(t *testing.T) {
	all := []runStats{
		{outcome: game.RunOutcome{Cause: game.DeathWall}},
		{outcome: game.RunOutcome{Cause: game.DeathSelf}},
		{outcome: game.RunOutcome{Cause: game.DeathWall}},
		{outcome: game.RunOutcome{Cause: game.DeathNone}},
	}

	counts := causeCounts(all)
	if counts["wall"] != 2 || counts["self"] != 1 || counts["none"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
	if got := formatCauses(counts); got != "none=1 self=1 wall=2" {
		t.Fatalf("expected sorted causes, got %q", got)
	}
}

func TestBestRun_PrefersEarlierOnTie(t *testing.T) {
	all := []runStats{
		{runIndex: 1, outcome: game.RunOutcome{Score: 7}},
		{runIndex: 2, outcome: game.RunOutcome{Score: 12}},
		{runIndex: 3, outcome: game.RunOutcome{Score: 12}},
	}
	best, ok := bestRun(all)
	if !ok || best.runIndex != 2 {
		t.Fatalf("expected run 2, got %+v ok=%v", best, ok)
	}
	if _, ok := bestRun(nil); ok {
		t.Fatal("expected no best run for empty input")
	}
}

func TestFirstTick(t *testing.T) {
	entries := []game.SimLogEntry{
		{Tick: 3, Category: "spawn", Key: "food", Value: "(1,1)"},
		{Tick: 9, Category: "spawn", Key: "boss", Value: "(4,2)"},
		{Tick: 15, Category: "death", Key: "wall", Value: "score=3 length=6"},
	}
	if got := firstTick(entries, "spawn", "boss", ""); got != 9 {
		t.Fatalf("expected boss spawn at 9, got %d", got)
	}
	if got := firstTick(entries, "death", "", ""); got != 15 {
		t.Fatalf("expected any death at 15, got %d", got)
	}
	if got := firstTick(entries, "eat", "boss", ""); got != -1 {
		t.Fatalf("expected -1 for a missing event, got %d", got)
	}
}

func TestAverages(t *testing.T) {
	if avg(10, 0) != 0 {
		t.Fatal("avg over zero runs should be 0")
	}
	if avg(9, 2) != 4.5 {
		t.Fatalf("expected 4.5, got %v", avg(9, 2))
	}
	if got := avgTickString(nil); got != "n/a" {
		t.Fatalf("expected n/a, got %q", got)
	}
	if got := avgTickString([]int{10, 20}); got != "15.0" {
		t.Fatalf("expected 15.0, got %q", got)
	}
}

func TestCollectRun_AutopilotGame(t *testing.T) {
	ts := game.NewTestSim(game.WithGrid(12, 12), game.WithSeed(5), game.WithAutopilot())
	ts.RunTicks(3000)
	rs := collectRun(1, 5, ts)

	if rs.outcome.Foods+rs.outcome.Bosses == 0 {
		t.Fatal("autopilot should eat at least once")
	}
	if rs.outcome.Length != 3+rs.outcome.Foods+rs.outcome.Bosses {
		t.Fatalf("length %d should be 3 + meals (%d food, %d boss)",
			rs.outcome.Length, rs.outcome.Foods, rs.outcome.Bosses)
	}
	if rs.windowSummary == nil {
		t.Fatal("expected reporter samples")
	}
}
