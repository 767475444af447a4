package game

import (
	"fmt"
	"strings"
	"time"
)

// reportWindowTicks is the default sliding window for recent-play reports.
const reportWindowTicks = 200

// SimReport is a snapshot of a session at one tick.
type SimReport struct {
	Tick      int
	State     GameState
	Score     int
	Length    int
	Interval  time.Duration
	FreeCells int // cells not covered by the snake
	BossUp    bool
	Particles int
}

// SimReporter collects periodic snapshots from a session and summarises them
// over a sliding tick window.
type SimReporter struct {
	history     []SimReport
	windowTicks int
}

// NewSimReporter creates a reporter with the given window size.
func NewSimReporter(windowTicks int) *SimReporter {
	if windowTicks <= 0 {
		windowTicks = reportWindowTicks
	}
	return &SimReporter{windowTicks: windowTicks}
}

// Collect records a snapshot of s.
func (r *SimReporter) Collect(s *Session) {
	_, boss := s.Boss()
	r.history = append(r.history, SimReport{
		Tick:      s.Ticks(),
		State:     s.State(),
		Score:     s.Score(),
		Length:    len(s.Snake()),
		Interval:  s.Interval(),
		FreeCells: s.Grid().Area() - len(s.Snake()),
		BossUp:    boss,
		Particles: s.Particles().Len(),
	})
}

// Latest returns the most recent snapshot, or nil.
func (r *SimReporter) Latest() *SimReport {
	if len(r.history) == 0 {
		return nil
	}
	return &r.history[len(r.history)-1]
}

// History returns all collected snapshots.
func (r *SimReporter) History() []SimReport {
	return r.history
}

// WindowSummary aggregates the snapshots of the last windowTicks ticks.
func (r *SimReporter) WindowSummary() *WindowReport {
	if len(r.history) == 0 {
		return nil
	}

	latestTick := r.history[len(r.history)-1].Tick
	cutoff := latestTick - r.windowTicks
	var window []SimReport
	for i := len(r.history) - 1; i >= 0; i-- {
		if r.history[i].Tick < cutoff {
			break
		}
		window = append(window, r.history[i])
	}

	n := float64(len(window))
	first, last := window[len(window)-1], window[0]
	wr := &WindowReport{
		FromTick:    first.Tick,
		ToTick:      last.Tick,
		SampleCount: len(window),
		ScoreGained: last.Score - first.Score,
		MinInterval: last.Interval,
	}
	bossSamples := 0
	for _, rpt := range window {
		wr.AvgLength += float64(rpt.Length)
		wr.AvgFreeCells += float64(rpt.FreeCells)
		wr.AvgParticles += float64(rpt.Particles)
		wr.MinInterval = min(wr.MinInterval, rpt.Interval)
		if rpt.BossUp {
			bossSamples++
		}
	}
	wr.AvgLength /= n
	wr.AvgFreeCells /= n
	wr.AvgParticles /= n
	wr.BossUpPct = float64(bossSamples) / n * 100
	return wr
}

// WindowReport is an aggregated summary over a tick window.
type WindowReport struct {
	FromTick, ToTick int
	SampleCount      int

	ScoreGained  int
	AvgLength    float64
	AvgFreeCells float64
	AvgParticles float64
	MinInterval  time.Duration
	BossUpPct    float64 // share of samples with a boss on the board
}

// Format returns a human-readable multi-line string of the window summary.
func (wr *WindowReport) Format() string {
	if wr == nil {
		return "No data collected yet.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Play Report (T=%d..%d, %d samples) ===\n",
		wr.FromTick, wr.ToTick, wr.SampleCount)
	fmt.Fprintf(&sb, "  score gained=%d  avg length=%.1f  avg free cells=%.0f\n",
		wr.ScoreGained, wr.AvgLength, wr.AvgFreeCells)
	fmt.Fprintf(&sb, "  fastest interval=%s  boss up=%.0f%%  avg particles=%.0f (%s)\n",
		wr.MinInterval, wr.BossUpPct, wr.AvgParticles, paceLabel(wr.MinInterval))
	return sb.String()
}

func paceLabel(d time.Duration) string {
	switch {
	case d <= minInterval:
		return "top speed"
	case d <= 100*time.Millisecond:
		return "fast"
	case d <= 135*time.Millisecond:
		return "brisk"
	default:
		return "warm-up"
	}
}

// FormatLatest returns a one-line snapshot of the most recent report.
func (r *SimReporter) FormatLatest() string {
	rpt := r.Latest()
	if rpt == nil {
		return "No data.\n"
	}
	return fmt.Sprintf("--- Snapshot T=%d --- state=%s score=%d length=%d interval=%s free=%d boss=%t\n",
		rpt.Tick, rpt.State, rpt.Score, rpt.Length, rpt.Interval, rpt.FreeCells, rpt.BossUp)
}
