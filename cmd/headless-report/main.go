package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/good-looking-snake/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	outcome  game.RunOutcome

	firstBossSpawnTick int
	firstBossEatTick   int
	deathTick          int

	stateChanges int
	foodSpawns   int
	spawnSkipped int

	windowSummary *game.WindowReport
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var cols int
	var rows int
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless autopilot runs")
	flag.IntVar(&ticks, "ticks", 5000, "tick limit per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&cols, "cols", 18, "board columns")
	flag.IntVar(&rows, "rows", 28, "board rows")
	flag.BoolVar(&verbose, "v", false, "print each run's event log")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if cols < 4 || rows < 4 {
		fmt.Println("error: -cols and -rows must be >= 4")
		return
	}

	fmt.Printf("=== Headless Snake Report ===\n")
	fmt.Printf("board=%dx%d runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", cols, rows, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		ts := game.NewTestSim(
			game.WithGrid(cols, rows),
			game.WithSeed(seed),
			game.WithAutopilot(),
		)
		ts.RunTicks(ticks)
		stats := collectRun(i+1, seed, ts)
		all = append(all, stats)
		printRun(stats)
		if verbose {
			fmt.Print(ts.SimLog.Format())
			fmt.Println()
		}
	}

	printAggregate(all)
}

func collectRun(runIndex int, seed int64, ts *game.TestSim) runStats {
	entries := ts.SimLog.Entries()
	return runStats{
		runIndex:           runIndex,
		seed:               seed,
		outcome:            ts.Outcome(),
		firstBossSpawnTick: firstTick(entries, "spawn", "boss", ""),
		firstBossEatTick:   firstTick(entries, "eat", "boss", ""),
		deathTick:          firstTick(entries, "death", "", ""),
		stateChanges:       ts.SimLog.CountCategory("state", "change"),
		foodSpawns:         ts.SimLog.CountCategory("spawn", "food"),
		spawnSkipped:       ts.SimLog.CountCategory("spawn", "food_skipped"),
		windowSummary:      ts.Reporter.WindowSummary(),
	}
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || (key != "" && e.Key != key) {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	o := rs.outcome
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("result: score=%d length=%d ticks=%d cause=%s\n", o.Score, o.Length, o.Ticks, o.Cause)
	fmt.Printf("spelled: %s\n", o.Summary)
	fmt.Printf("meals: food=%d boss=%d boss_expired=%d\n", o.Foods, o.Bosses, o.BossesLost)
	fmt.Printf("phase_markers: first_boss_spawn=%d first_boss_eat=%d death=%d\n",
		rs.firstBossSpawnTick, rs.firstBossEatTick, rs.deathTick)
	fmt.Printf("event_totals: state_change=%d food_spawn=%d food_skipped=%d\n",
		rs.stateChanges, rs.foodSpawns, rs.spawnSkipped)
	if rs.windowSummary != nil {
		fmt.Print(rs.windowSummary.Format())
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalScore := 0
	totalLength := 0
	totalTicks := 0
	totalFoods := 0
	totalBosses := 0
	totalLost := 0
	bossTicks := make([]int, 0, len(all))
	deathTicks := make([]int, 0, len(all))

	for _, rs := range all {
		totalScore += rs.outcome.Score
		totalLength += rs.outcome.Length
		totalTicks += rs.outcome.Ticks
		totalFoods += rs.outcome.Foods
		totalBosses += rs.outcome.Bosses
		totalLost += rs.outcome.BossesLost
		if rs.firstBossEatTick >= 0 {
			bossTicks = append(bossTicks, rs.firstBossEatTick)
		}
		if rs.deathTick >= 0 {
			deathTicks = append(deathTicks, rs.deathTick)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_per_run: score=%.1f length=%.1f ticks=%.1f food=%.1f boss=%.1f boss_expired=%.1f\n",
		avg(totalScore, len(all)), avg(totalLength, len(all)), avg(totalTicks, len(all)),
		avg(totalFoods, len(all)), avg(totalBosses, len(all)), avg(totalLost, len(all)))
	fmt.Printf("phase_marker_avg_ticks: first_boss_eat=%s death=%s\n",
		avgTickString(bossTicks), avgTickString(deathTicks))
	fmt.Printf("death_causes: %s\n", formatCauses(causeCounts(all)))
	if best, ok := bestRun(all); ok {
		fmt.Printf("best: run=%d seed=%d score=%d (%s)\n",
			best.runIndex, best.seed, best.outcome.Score, best.outcome.Summary)
	}
}

// causeCounts tallies how the runs ended; runs still alive at the tick limit
// count as "none".
func causeCounts(all []runStats) map[string]int {
	out := map[string]int{}
	for _, rs := range all {
		out[rs.outcome.Cause.String()]++
	}
	return out
}

func formatCauses(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}

// bestRun returns the highest scoring run; ties go to the earlier run.
func bestRun(all []runStats) (runStats, bool) {
	if len(all) == 0 {
		return runStats{}, false
	}
	best := all[0]
	for _, rs := range all[1:] {
		if rs.outcome.Score > best.outcome.Score {
			best = rs
		}
	}
	return best, true
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
