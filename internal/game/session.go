package game

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"
)

// TickResult describes what one simulation step did.
type TickResult struct {
	Moved   bool
	Ate     bool
	AteBoss bool
	Died    bool
	Cause   DeathCause
}

// Session owns all mutable game state: the snake, food, score, particles and
// the state machine. It is driven from a single goroutine; the host calls
// Update once per frame and reads it while drawing.
type Session struct {
	cfg Config
	rng *rand.Rand

	viewport Viewport
	grid     Grid
	gridRev  int // bumped whenever the grid geometry changes

	snake   Snake
	prev    Snake // positions at the start of the current tick interval
	dir     Direction
	nextDir Direction

	food      *Cell
	foodColor int
	boss      *Cell
	bossAge   int // ticks since the boss spawned

	score    int
	interval time.Duration
	ticks    int

	state    GameState
	now      time.Duration // time of the frame being processed
	lastTick time.Duration
	lastSeen time.Duration // previous Update call, for gap detection
	seen     bool          // lastSeen is valid

	particles *ParticleSystem
	floats    floatingTexts
	dying     deathAnim
	cause     DeathCause

	shake      float64
	flashUntil time.Duration
	overAt     time.Duration
	summary    string

	highScore int
	newRecord bool

	haptics Haptics
	sound   Sound
	store   ScoreStore
	simLog  *SimLog
	feed    *EventFeed
}

// SessionOption configures a Session at construction.
type SessionOption func(*Session)

// WithRand sets the randomness source for spawns and particles.
func WithRand(rng *rand.Rand) SessionOption {
	return func(s *Session) { s.rng = rng }
}

// WithHaptics sets the vibration collaborator.
func WithHaptics(h Haptics) SessionOption {
	return func(s *Session) { s.haptics = h }
}

// WithSound sets the audio cue collaborator.
func WithSound(snd Sound) SessionOption {
	return func(s *Session) { s.sound = snd }
}

// WithStore sets where the high score is read from and written to.
func WithStore(st ScoreStore) SessionOption {
	return func(s *Session) { s.store = st }
}

// WithSimLog records state changes, spawns and meals into sl.
func WithSimLog(sl *SimLog) SessionOption {
	return func(s *Session) { s.simLog = sl }
}

// WithEventFeed mirrors the same events into a bounded feed.
func WithEventFeed(f *EventFeed) SessionOption {
	return func(s *Session) { s.feed = f }
}

// NewSession builds a session in StateStart and loads the high score.
func NewSession(cfg Config, opts ...SessionOption) *Session {
	cfg = cfg.withDefaults()
	s := &Session{
		cfg:      cfg,
		viewport: cfg.Viewport,
		state:    StateStart,
		interval: cfg.StartInterval,
		dir:      Right,
		nextDir:  Right,
		haptics:  noHaptics{},
		sound:    noSound{},
		store:    &MemoryStore{},
	}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	}
	s.particles = NewParticleSystem(cfg.MaxParticles, s.rng)
	s.grid = ComputeGrid(s.viewport)

	hi, err := s.store.LoadHighScore()
	if err != nil {
		log.Printf("[store] load high score: %v", err)
		hi = 0
	}
	s.highScore = max(hi, 0)
	return s
}

// --- accessors used by the renderer, input adapter and tests ---

func (s *Session) State() GameState { return s.state }
func (s *Session) Grid() Grid { return s.grid }
func (s *Session) GridRevision() int { return s.gridRev }
func (s *Session) Snake() Snake { return s.snake }
func (s *Session) PrevSnake() Snake { return s.prev }
func (s *Session) Direction() Direction { return s.dir }
func (s *Session) Score() int { return s.score }
func (s *Session) Interval() time.Duration { return s.interval }
func (s *Session) Ticks() int { return s.ticks }
func (s *Session) HighScore() int { return s.highScore }
func (s *Session) NewRecord() bool { return s.newRecord }
func (s *Session) Particles() *ParticleSystem { return s.particles }
func (s *Session) FloatingTexts() []FloatingText { return s.floats }
func (s *Session) Cause() DeathCause { return s.cause }
func (s *Session) Summary() string { return s.summary }
func (s *Session) Revealed() int { return s.dying.revealed }

// Food returns the active food cell.
func (s *Session) Food() (Cell, bool) {
	if s.food == nil {
		return Cell{}, false
	}
	return *s.food, true
}

// Boss returns the active boss cell.
func (s *Session) Boss() (Cell, bool) {
	if s.boss == nil {
		return Cell{}, false
	}
	return *s.boss, true
}

// FoodColor is the colour of the current food in the cycle.
func (s *Session) FoodColor() int { return s.foodColor }

// --- host-facing operations ---

// SetViewport records a resized host window. Outside a game the grid is
// rebuilt at once; during a game only its pixel scale follows the window.
func (s *Session) SetViewport(v Viewport) {
	if v == s.viewport {
		return
	}
	s.viewport = v
	if s.state.Activatable() {
		s.grid = ComputeGrid(v)
	} else {
		s.grid = s.grid.Refit(v)
	}
	s.gridRev++
}

// Activate starts a new game from Start or GameOver. An optional direction
// (the key that woke the game) becomes the initial heading unless it points
// back into the body. Returns false when ignored.
func (s *Session) Activate(now time.Duration, dir ...Direction) bool {
	if !s.state.Activatable() {
		return false
	}
	s.now = now
	s.lastSeen = now
	s.seen = true
	s.grid = ComputeGrid(s.viewport)
	s.gridRev++
	s.Reset()
	if len(dir) > 0 && dir[0].Valid() && dir[0] != s.dir.Reverse() {
		s.dir = dir[0]
		s.nextDir = dir[0]
	}
	return s.enter(StatePlaying)
}

// Reset lays out a fresh snake centred on the grid facing right and clears
// score, speed, food, boss and effects.
func (s *Session) Reset() {
	n := max(min(s.cfg.InitialLength, s.grid.Cols), 1)
	head := Cell{X: max(s.grid.Cols/2, n-1), Y: s.grid.Rows / 2}
	s.snake = newSnake(head, n)
	s.prev = s.snake.clone(s.prev)
	s.dir = Right
	s.nextDir = Right
	s.score = 0
	s.ticks = 0
	s.interval = s.cfg.StartInterval
	s.particles.Clear()
	s.floats = s.floats[:0]
	s.shake = 0
	s.flashUntil = 0
	s.foodColor = 0
	s.boss = nil
	s.bossAge = 0
	s.dying = deathAnim{}
	s.cause = DeathNone
	s.newRecord = false
	s.summary = ""
	s.spawnFood()
}

// SetNextDirection queues a heading for the next tick. Reversals of the
// current heading and input outside Playing are ignored.
func (s *Session) SetNextDirection(d Direction) bool {
	if s.state != StatePlaying || !d.Valid() {
		return false
	}
	if d == s.dir.Reverse() {
		return false
	}
	s.nextDir = d
	return true
}

// Resume re-anchors the simulation clock after the host was suspended so
// the missed time does not fire as a burst of ticks.
func (s *Session) Resume(now time.Duration) {
	s.now = now
	s.lastSeen = now
	s.seen = true
	s.lastTick = now
	s.dying.last = now
}

// skipGap drops the backlog of a long frame gap but leaves exactly one tick
// and one reveal step due, so a host with slow frames still makes progress.
func (s *Session) skipGap(now time.Duration) {
	s.lastTick = now - s.interval
	s.dying.last = now - revealCadence
}

// Update runs one frame: due simulation ticks first, then the death
// animation, then particles, popups and shake.
func (s *Session) Update(now time.Duration) {
	if s.seen && now-s.lastSeen > resumeGap {
		s.skipGap(now)
	}
	s.now = now
	s.lastSeen = now
	s.seen = true

	switch s.state {
	case StatePlaying:
		s.advance(now)
	case StateDying:
		s.stepDeath(now)
	case StateStart, StateGameOver:
	}

	s.particles.Update()
	s.floats.update()
	if s.shake > 0.3 {
		s.shake *= 0.88
		if s.shake < 0.3 {
			s.shake = 0
		}
	}
}

// advance runs the ticks that are due at now. Each tick moves lastTick by the
// interval that gated it; if more than maxCatchUp are owed the clock is
// re-anchored instead of replaying the backlog.
func (s *Session) advance(now time.Duration) {
	for n := 0; s.state == StatePlaying && now-s.lastTick >= s.interval; n++ {
		if n == maxCatchUp {
			s.lastTick = now
			return
		}
		gate := s.interval
		s.Tick()
		s.lastTick += gate
	}
}

// Tick is the single discrete simulation step. It is a no-op outside Playing.
func (s *Session) Tick() TickResult {
	if s.state != StatePlaying {
		return TickResult{}
	}
	s.ticks++
	s.prev = s.snake.clone(s.prev)
	s.dir = s.nextDir

	next := s.snake.Head().Add(s.dir)
	if !s.grid.Contains(next) {
		return s.die(DeathWall)
	}
	if s.snake.Occupies(next) {
		return s.die(DeathSelf)
	}

	s.snake = append(s.snake, Cell{})
	copy(s.snake[1:], s.snake)
	s.snake[0] = next

	res := TickResult{Moved: true}
	switch {
	case s.boss != nil && next == *s.boss:
		s.eatBoss(next)
		res.AteBoss = true
	case s.food != nil && next == *s.food:
		s.eatFood(next)
		res.Ate = true
	default:
		s.snake = s.snake[:len(s.snake)-1]
	}
	s.ageBoss()
	return res
}

func (s *Session) eatBoss(at Cell) {
	s.score += s.cfg.BossBonus
	s.interval = max(s.cfg.MinInterval, s.interval-s.cfg.IntervalStep*3)

	x, y := s.grid.CellCenter(at)
	s.particles.Burst(x, y, bossColor, 30)
	s.particles.Burst(x, y, bossAccentColor, 20)
	s.floats.add(x, y-float64(s.grid.CellSize), "+"+strconv.Itoa(s.cfg.BossBonus), bossColor)
	s.haptics.Vibrate(40*time.Millisecond, 30*time.Millisecond, 40*time.Millisecond, 30*time.Millisecond, 80*time.Millisecond)
	s.sound.Play(CueBoss)
	s.logf("eat", "boss", fmt.Sprintf("(%d,%d) score=%d", at.X, at.Y, s.score), float64(s.score))

	s.boss = nil
	s.bossAge = 0
	s.spawnFood()
}

func (s *Session) eatFood(at Cell) {
	s.score++
	s.interval = max(s.cfg.MinInterval, s.interval-s.cfg.IntervalStep)

	c := foodColors[s.foodColor]
	x, y := s.grid.CellCenter(at)
	s.particles.Burst(x, y, c, 14)
	s.floats.add(x, y-float64(s.grid.CellSize), "+1", c)
	s.haptics.Vibrate(12 * time.Millisecond)
	s.sound.Play(CueEat)
	s.logf("eat", "food", fmt.Sprintf("(%d,%d) score=%d", at.X, at.Y, s.score), float64(s.score))

	s.foodColor = (s.foodColor + 1) % len(foodColors)
	if s.score > 0 && s.score%s.cfg.BossEvery == 0 && s.boss == nil {
		s.spawnBoss()
	}
	s.spawnFood()
}

// ageBoss expires a boss that has sat uneaten for its lifetime.
func (s *Session) ageBoss() {
	if s.boss == nil || s.cfg.BossLifetime <= 0 {
		return
	}
	s.bossAge++
	if s.bossAge < s.cfg.BossLifetime {
		return
	}
	x, y := s.grid.CellCenter(*s.boss)
	s.particles.Burst(x, y, bossAccentColor, 10)
	s.logf("spawn", "boss_expired", fmt.Sprintf("(%d,%d)", s.boss.X, s.boss.Y), 0)
	s.boss = nil
	s.bossAge = 0
}

// die records the cause and moves to Dying. The snake is left untouched.
func (s *Session) die(cause DeathCause) TickResult {
	s.cause = cause
	s.enter(StateDying)
	return TickResult{Died: true, Cause: cause}
}

// onDeath runs the Dying entry actions.
func (s *Session) onDeath() {
	s.haptics.Vibrate(30*time.Millisecond, 40*time.Millisecond, 30*time.Millisecond, 40*time.Millisecond, 60*time.Millisecond)
	s.sound.Play(CueDeath)
	s.flashUntil = s.now + flashDuration
	s.shake = shakeImpulse
	s.dying = deathAnim{last: s.now}
	s.logf("death", s.cause.String(), fmt.Sprintf("score=%d length=%d", s.score, len(s.snake)), float64(s.score))

	s.newRecord = s.score > 0 && s.score >= s.highScore
	if s.score > s.highScore {
		s.highScore = s.score
		if err := s.store.SaveHighScore(s.highScore); err != nil {
			log.Printf("[store] save high score: %v", err)
		}
	}
}

// spawnFood places food on a random cell free of snake and boss.
func (s *Session) spawnFood() {
	c, ok := s.freeCell(s.boss)
	if !ok {
		s.food = nil
		s.logf("spawn", "food_skipped", "board full", 0)
		return
	}
	s.food = &c
	s.logf("spawn", "food", fmt.Sprintf("(%d,%d)", c.X, c.Y), 0)
}

// spawnBoss places the boss on a random cell free of snake and food.
func (s *Session) spawnBoss() {
	c, ok := s.freeCell(s.food)
	if !ok {
		s.boss = nil
		return
	}
	s.boss = &c
	s.bossAge = -1 // ageBoss runs later in the spawning tick
	s.logf("spawn", "boss", fmt.Sprintf("(%d,%d)", c.X, c.Y), 0)
}

// freeCell samples uniformly for a cell not on the snake and not equal to
// avoid. Sampling is bounded; after that the free cells are enumerated, and
// a full board yields false.
func (s *Session) freeCell(avoid *Cell) (Cell, bool) {
	taken := func(c Cell) bool {
		return s.snake.Occupies(c) || (avoid != nil && *avoid == c)
	}
	area := s.grid.Area()
	for i := 0; i < 4*area; i++ {
		c := Cell{X: s.rng.Intn(s.grid.Cols), Y: s.rng.Intn(s.grid.Rows)}
		if !taken(c) {
			return c, true
		}
	}
	var free []Cell
	for y := 0; y < s.grid.Rows; y++ {
		for x := 0; x < s.grid.Cols; x++ {
			if c := (Cell{X: x, Y: y}); !taken(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[s.rng.Intn(len(free))], true
}

func (s *Session) logf(category, key, value string, num float64) {
	if s.simLog != nil {
		s.simLog.Add(s.ticks, category, key, value, num)
	}
	if s.feed != nil {
		s.feed.Add(SimLogEntry{Tick: s.ticks, Category: category, Key: key, Value: value, NumVal: num})
	}
}
