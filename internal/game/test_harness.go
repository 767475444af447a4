package game

import (
	"math/rand"
	"time"
)

const (
	// frameStep is the wall-clock step of TestSim.Advance, one 60 Hz frame.
	frameStep = 16 * time.Millisecond
	// reportEvery is how often, in ticks, the reporter samples the session.
	reportEvery = 10
)

// TestSim is a headless session harness used by tests and the headless
// report. It owns a fake clock and recording collaborators so runs are
// deterministic and inspectable.
type TestSim struct {
	Session  *Session
	SimLog   *SimLog
	Store    *MemoryStore
	Haptics  *HapticsRecorder
	Sound    *SoundRecorder
	Reporter *SimReporter

	cfg        Config
	seed       int64
	cols, rows int
	now        time.Duration
	pilot      *Autopilot
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // config, grid, seed: applied before the session exists
	simOptBoard                      // snake, food, boss: applied once the game is running
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithConfig replaces the session tuning.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg = cfg
	}}
}

// WithGrid forces an exact board size regardless of the viewport.
func WithGrid(cols, rows int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cols, ts.rows = cols, rows
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithHighScore seeds the in-memory store before the session loads it.
func WithHighScore(score int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Store.Score = score
	}}
}

// WithAutopilot lets an Autopilot steer before every tick.
func WithAutopilot() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.pilot = &Autopilot{}
	}}
}

// WithSnake places the body (head first) and sets its heading.
func WithSnake(dir Direction, cells ...Cell) SimOption {
	return SimOption{simOptBoard, func(ts *TestSim) {
		s := ts.Session
		s.snake = Snake(cells).clone(nil)
		s.prev = s.snake.clone(nil)
		s.dir, s.nextDir = dir, dir
	}}
}

// WithFood puts the food at c.
func WithFood(c Cell) SimOption {
	return SimOption{simOptBoard, func(ts *TestSim) {
		ts.Session.food = &c
	}}
}

// WithoutFood removes the food from the board.
func WithoutFood() SimOption {
	return SimOption{simOptBoard, func(ts *TestSim) {
		ts.Session.food = nil
	}}
}

// WithBoss puts a fresh boss at c.
func WithBoss(c Cell) SimOption {
	return SimOption{simOptBoard, func(ts *TestSim) {
		ts.Session.boss = &c
		ts.Session.bossAge = 0
	}}
}

// WithScore sets the running score, which also decides when the next boss is
// due.
func WithScore(score int) SimOption {
	return SimOption{simOptBoard, func(ts *TestSim) {
		ts.Session.score = score
	}}
}

// NewTestSim builds a session, starts a game at t=0 and applies the board
// options. Options run in two passes:
//  1. Infrastructure (config, grid, seed, high score)
//  2. Board (snake, food, boss, score)
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		cfg:      DefaultConfig(),
		seed:     1,
		SimLog:   NewSimLog(),
		Store:    &MemoryStore{},
		Haptics:  &HapticsRecorder{},
		Sound:    &SoundRecorder{},
		Reporter: NewSimReporter(reportWindowTicks),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}

	ts.Session = NewSession(ts.cfg,
		WithRand(rand.New(rand.NewSource(ts.seed))), // #nosec G404 -- test harness
		WithStore(ts.Store),
		WithHaptics(ts.Haptics),
		WithSound(ts.Sound),
		WithSimLog(ts.SimLog),
	)
	ts.Session.Activate(ts.now)
	if ts.cols > 0 && ts.rows > 0 {
		s := ts.Session
		s.grid = Grid{Cols: ts.cols, Rows: ts.rows, CellSize: nominalCell, OriginY: hudHeight}
		s.gridRev++
		s.Reset()
	}

	for _, o := range opts {
		if o.kind == simOptBoard {
			o.fn(ts)
		}
	}
	return ts
}

// Now is the harness clock.
func (ts *TestSim) Now() time.Duration { return ts.now }

// Tick runs one simulation step directly, steering first when an autopilot
// is attached.
func (ts *TestSim) Tick() TickResult {
	if ts.pilot != nil {
		ts.pilot.Steer(ts.Session)
	}
	res := ts.Session.Tick()
	if res.Died || ts.Session.Ticks()%reportEvery == 0 {
		ts.Reporter.Collect(ts.Session)
	}
	return res
}

// RunTicks runs up to n ticks, stopping early once the snake dies. It
// returns the number of ticks run.
func (ts *TestSim) RunTicks(n int) int {
	for i := 0; i < n; i++ {
		if ts.Session.State() != StatePlaying {
			return i
		}
		ts.Tick()
	}
	return n
}

// RunUntil ticks until predicate holds or maxTicks pass. Returns the session
// tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks && ts.Session.State() == StatePlaying; i++ {
		ts.Tick()
		if predicate(ts) {
			return ts.Session.Ticks()
		}
	}
	return -1
}

// Advance drives the session through Update in frame-sized steps for d, the
// way the host does. Use it for timing, the death animation and effects.
func (ts *TestSim) Advance(d time.Duration) {
	end := ts.now + d
	for ts.now < end {
		ts.now = min(ts.now+frameStep, end)
		if ts.pilot != nil && ts.Session.State() == StatePlaying {
			ts.pilot.Steer(ts.Session)
		}
		ts.Session.Update(ts.now)
	}
}

// AdvanceUntil steps frames until predicate holds or limit elapses. It
// reports whether the predicate was met.
func (ts *TestSim) AdvanceUntil(predicate func(*TestSim) bool, limit time.Duration) bool {
	end := ts.now + limit
	for ts.now < end {
		ts.Advance(frameStep)
		if predicate(ts) {
			return true
		}
	}
	return false
}

// Jump moves the harness clock without running any frame, as if the host
// had been suspended.
func (ts *TestSim) Jump(d time.Duration) {
	ts.now += d
}

// Outcome summarises the run so far.
func (ts *TestSim) Outcome() RunOutcome {
	return DetermineOutcome(ts.Session, ts.SimLog)
}

// HapticsRecorder keeps every vibration pattern it is asked to play.
type HapticsRecorder struct {
	Patterns [][]time.Duration
}

func (h *HapticsRecorder) Vibrate(pattern ...time.Duration) {
	h.Patterns = append(h.Patterns, append([]time.Duration(nil), pattern...))
}

// SoundRecorder keeps every cue it is asked to play.
type SoundRecorder struct {
	Cues []Cue
}

func (r *SoundRecorder) Play(c Cue) {
	r.Cues = append(r.Cues, c)
}

// Count returns how many times c was played.
func (r *SoundRecorder) Count(c Cue) int {
	n := 0
	for _, x := range r.Cues {
		if x == c {
			n++
		}
	}
	return n
}
