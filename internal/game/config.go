package game

import (
	"image/color"
	"time"
)

// Simulation pacing.
const (
	startInterval = 155 * time.Millisecond // ms per tick at score 0
	intervalStep  = 2 * time.Millisecond   // faster per food eaten
	minInterval   = 72 * time.Millisecond  // fastest tick

	initialLength = 3
	bossBonus     = 5
	bossEvery     = 13 // a boss appears on every Nth food
	bossLifetime  = 60 // ticks before an uneaten boss fades out

	// maxCatchUp bounds how many ticks a single frame may run before the
	// simulation clock is re-anchored to now.
	maxCatchUp = 2
	// resumeGap is the frame gap treated as a suspend/resume.
	resumeGap = 250 * time.Millisecond
)

// Layout.
const (
	nominalCell = 24 // px per cell before rounding
	minCols     = 12
	maxCols     = 20
	hudHeight   = 36
	cellGap     = 2    // visual gap between food and cell edge
	taperSegs   = 3    // tail taper segment count
	bodyRadius  = 0.44 // body radius as a fraction of cell size
)

// Feedback timing.
const (
	revealCadence = 35 * time.Millisecond
	flashDuration = 150 * time.Millisecond
	countUpTime   = 500 * time.Millisecond
	shakeImpulse  = 14.0
	swipeMin      = 20.0 // px before a drag counts as a swipe
)

// label is spelled along the snake body, one unit per segment.
var label = []rune("GOOD LOOKING ")

// labelText is the label without its separating blank.
const labelText = "GOOD LOOKING"

var (
	backgroundColor = color.RGBA{R: 0xF8, G: 0xF7, B: 0xF2, A: 0xFF}
	bodyColor       = color.RGBA{A: 0xFF}
	foodColors      = []color.RGBA{
		{R: 0xB6, G: 0xD1, B: 0xC1, A: 0xFF},
		{R: 0xFC, G: 0x51, B: 0x00, A: 0xFF},
		{R: 0x02, G: 0x4F, B: 0x12, A: 0xFF},
		{R: 0xFF, G: 0xB4, B: 0xED, A: 0xFF},
	}
	bossColor       = color.RGBA{R: 0xFC, G: 0x51, B: 0x00, A: 0xFF}
	bossAccentColor = color.RGBA{R: 0xFF, G: 0xB4, B: 0xED, A: 0xFF}
)

// Config holds the tunables of a session. Zero fields fall back to the
// defaults above via DefaultConfig.
type Config struct {
	Viewport Viewport

	StartInterval time.Duration
	IntervalStep  time.Duration
	MinInterval   time.Duration

	InitialLength int
	BossBonus     int
	BossEvery     int
	BossLifetime  int // ticks; negative keeps the boss until eaten

	MaxParticles int
	Seed         int64
}

// DefaultConfig returns the stock arcade tuning for a 432x768 portrait window.
func DefaultConfig() Config {
	return Config{
		Viewport:      Viewport{Width: 432, Height: 768},
		StartInterval: startInterval,
		IntervalStep:  intervalStep,
		MinInterval:   minInterval,
		InitialLength: initialLength,
		BossBonus:     bossBonus,
		BossEvery:     bossEvery,
		BossLifetime:  bossLifetime,
		MaxParticles:  maxParticles,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		c.Viewport = d.Viewport
	}
	if c.StartInterval <= 0 {
		c.StartInterval = d.StartInterval
	}
	if c.IntervalStep <= 0 {
		c.IntervalStep = d.IntervalStep
	}
	if c.MinInterval <= 0 {
		c.MinInterval = d.MinInterval
	}
	if c.InitialLength <= 0 {
		c.InitialLength = d.InitialLength
	}
	if c.BossBonus <= 0 {
		c.BossBonus = d.BossBonus
	}
	if c.BossEvery <= 0 {
		c.BossEvery = d.BossEvery
	}
	if c.BossLifetime == 0 {
		c.BossLifetime = d.BossLifetime
	}
	if c.MaxParticles <= 0 {
		c.MaxParticles = d.MaxParticles
	}
	return c
}
