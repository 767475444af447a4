package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// hotkeys are edge-detected by Game itself rather than the input adapter.
var hotkeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyM, ebiten.KeyC, ebiten.KeyF3}

// noticeTime is how long the copy confirmation replaces the card hint.
const noticeTime = 2 * time.Second

// Options configures the windowed game.
type Options struct {
	Config    Config
	Store     ScoreStore // overrides StorePath when set
	StorePath string     // high score file; empty uses the user config dir
	BossImage string     // optional PNG for the boss; empty draws the built-in star
	Muted     bool
	NoAudio   bool // skip creating an audio context entirely
	Debug     bool // start with the counters overlay shown
}

// Game adapts a Session to ebiten: it feeds it the clock and input, drives
// haptics, and draws the board from the session's state each frame.
type Game struct {
	session *Session
	input   inputAdapter
	rumble  *Rumble
	synth   *Synth // nil when audio is disabled
	boss    *Sprite
	fonts   *fonts
	feed    *EventFeed // recent events for the debug overlay

	clock      func() time.Duration // monotonic time since start
	safeTop    int
	safeBottom int

	prevKeys  map[ebiten.Key]bool
	focused   bool
	showDebug bool

	// Offscreen buffer for the static board, rebaked on grid change.
	bgBuf    *ebiten.Image
	bgRev    int
	bgW, bgH int

	pts      []SegmentPoint // reused interpolation buffer
	shakeRng *rand.Rand

	// Transient line shown on the game-over card after a copy.
	notice      string
	noticeUntil time.Duration
}

// New builds the game and its collaborators. Only font loading is fatal; a
// missing config dir or audio device degrades to memory scores and silence.
func New(opts Options) (*Game, error) {
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	store := opts.Store
	if store == nil {
		fs, err := NewFileStore(opts.StorePath)
		if err != nil {
			log.Printf("[store] %v; high score kept in memory", err)
			store = &MemoryStore{}
		} else {
			store = fs
		}
	}

	start := time.Now()
	g := &Game{
		input:      inputAdapter{},
		rumble:     NewRumble(),
		boss:       LoadSprite(opts.BossImage),
		fonts:      f,
		feed:       NewEventFeed(),
		clock:      func() time.Duration { return time.Since(start) },
		safeTop:    opts.Config.Viewport.SafeTop,
		safeBottom: opts.Config.Viewport.SafeBottom,
		prevKeys:   make(map[ebiten.Key]bool),
		focused:    true,
		showDebug:  opts.Debug,
		shakeRng:   rand.New(rand.NewSource(start.UnixNano())), // #nosec G404 -- cosmetic only
	}

	sessOpts := []SessionOption{WithStore(store), WithHaptics(g.rumble), WithEventFeed(g.feed)}
	if !opts.NoAudio {
		ctx := audio.CurrentContext()
		if ctx == nil {
			ctx = audio.NewContext(sampleRate)
		}
		g.synth = NewSynth(ctx)
		g.synth.Muted = opts.Muted
		sessOpts = append(sessOpts, WithSound(g.synth))
	}
	g.session = NewSession(opts.Config, sessOpts...)
	return g, nil
}

// Session exposes the running session.
func (g *Game) Session() *Session { return g.session }

func (g *Game) Update() error {
	now := g.clock()

	// Hold everything while the window is in the background; the first
	// focused frame re-anchors the tick clock.
	if !ebiten.IsFocused() {
		g.focused = false
		return nil
	}
	if !g.focused {
		g.focused = true
		g.session.Resume(now)
	}

	if g.handleHotkeys(now) {
		return ebiten.Termination
	}
	dispatch(g.session, now, g.input.poll())
	g.session.Update(now)
	g.rumble.Update(now)
	return nil
}

// handleHotkeys reports whether the player asked to quit.
func (g *Game) handleHotkeys(now time.Duration) bool {
	currentKeys := make(map[ebiten.Key]bool, len(hotkeys))
	quit := false
	for _, k := range hotkeys {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		if !currentKeys[k] || g.prevKeys[k] {
			continue
		}
		switch k {
		case ebiten.KeyEscape:
			quit = true
		case ebiten.KeyM:
			if g.synth != nil {
				g.synth.Muted = !g.synth.Muted
			}
		case ebiten.KeyC:
			g.copyScore(now)
		case ebiten.KeyF3:
			g.showDebug = !g.showDebug
		}
	}
	g.prevKeys = currentKeys
	return quit
}

// copyScore puts the result line on the clipboard from the game-over card.
func (g *Game) copyScore(now time.Duration) {
	s := g.session
	if s.State() != StateGameOver {
		return
	}
	if err := shareScore(s.Score(), s.Summary()); err != nil {
		log.Printf("[share] %v", err)
		g.notice = "clipboard unavailable"
	} else {
		g.notice = "copied to clipboard"
	}
	g.noticeUntil = now + noticeTime
}

func (g *Game) Draw(screen *ebiten.Image) {
	now := g.clock()
	s := g.session

	b := screen.Bounds()
	if g.bgBuf == nil || g.bgRev != s.GridRevision() || g.bgW != b.Dx() || g.bgH != b.Dy() {
		g.bakeBackground(b.Dx(), b.Dy())
	}
	screen.DrawImage(g.bgBuf, nil)

	var dx, dy float32
	if sh := s.Shake(); sh > 0 {
		dx = float32((g.shakeRng.Float64()*2 - 1) * sh)
		dy = float32((g.shakeRng.Float64()*2 - 1) * sh)
	}

	switch s.State() {
	case StatePlaying:
		g.drawFood(screen, now, dx, dy)
		g.drawBoss(screen, now, dx, dy)
		g.drawSnake(screen, s.Progress(now), dx, dy)
	case StateDying:
		g.drawFood(screen, now, dx, dy)
		g.drawBoss(screen, now, dx, dy)
		g.drawSnake(screen, 1, dx, dy)
	case StateStart, StateGameOver:
	}
	g.drawParticles(screen, dx, dy)
	g.drawFloating(screen, dx, dy)

	switch s.State() {
	case StatePlaying, StateDying:
		g.drawHUD(screen)
	case StateStart:
		g.drawStartCard(screen, now)
	case StateGameOver:
		g.drawGameOverCard(screen, now)
	}
	g.drawFlash(screen, now)

	if g.showDebug {
		g.drawDebug(screen)
	}
}

// Layout follows the window: the board is recomputed or refitted for every
// new outside size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	g.session.SetViewport(Viewport{Width: w, Height: h, SafeTop: g.safeTop, SafeBottom: g.safeBottom})
	return w, h
}
