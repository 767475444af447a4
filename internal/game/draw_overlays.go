package game

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	inkColor   = color.RGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF}
	mutedInk   = color.RGBA{R: 0x80, G: 0x80, B: 0x7C, A: 0xFF}
	cardFill   = color.RGBA{R: 0xF8, G: 0xF7, B: 0xF2, A: 0xF0}
	cardStroke = color.RGBA{A: 0x30}
)

// drawHUD renders the score band above the board.
func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.session
	gr := s.Grid()
	y := float64(gr.OriginY) - hudHeight/2
	if y < hudHeight/2 {
		y = hudHeight / 2
	}
	face := g.fonts.face(true, 20)
	small := g.fonts.face(false, 13)

	drawCentered(screen, strconv.Itoa(s.Score()), face, float64(gr.OriginX)+24, y, inkColor, 1)
	if best := s.HighScore(); best > 0 {
		drawCentered(screen, "BEST "+strconv.Itoa(best), small,
			float64(gr.OriginX+gr.Width())-40, y, mutedInk, 1)
	}
	if g.synth != nil && g.synth.Muted {
		drawCentered(screen, "muted", small, float64(gr.OriginX)+float64(gr.Width())/2, y, mutedInk, 0.8)
	}
}

// drawCard draws a rounded-feel panel centred on the board.
func drawCard(screen *ebiten.Image, cx, cy, w, h float32) {
	x, y := cx-w/2, cy-h/2
	vector.FillRect(screen, x, y, w, h, premultiply(cardFill), false)
	vector.StrokeRect(screen, x, y, w, h, 1, cardStroke, false)
	vector.StrokeLine(screen, x+1, y+1, x+w-1, y+1, 1, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, false)
}

// drawStartCard is the title screen.
func (g *Game) drawStartCard(screen *ebiten.Image, now time.Duration) {
	gr := g.session.Grid()
	cx := float64(gr.OriginX) + float64(gr.Width())/2
	cy := float64(gr.OriginY) + float64(gr.Height())/2
	w := float32(min(gr.Width()-24, 340))

	drawCard(screen, float32(cx), float32(cy), w, 150)
	drawCentered(screen, "GOOD LOOKING", g.fonts.face(true, 30), cx, cy-40, inkColor, 1)
	drawCentered(screen, "SNAKE", g.fonts.face(true, 30), cx, cy-8, inkColor, 1)

	blink := 0.55 + 0.45*math.Sin(float64(now.Milliseconds())/300)
	drawCentered(screen, "tap, swipe or press any key", g.fonts.face(false, 14), cx, cy+32, mutedInk, blink)
	if best := g.session.HighScore(); best > 0 {
		drawCentered(screen, "BEST: "+strconv.Itoa(best), g.fonts.face(false, 13), cx, cy+56, mutedInk, 1)
	}
}

// drawGameOverCard shows the counted-up score, the spelled-out length and
// the record line.
func (g *Game) drawGameOverCard(screen *ebiten.Image, now time.Duration) {
	s := g.session
	gr := s.Grid()
	cx := float64(gr.OriginX) + float64(gr.Width())/2
	cy := float64(gr.OriginY) + float64(gr.Height())/2
	w := float32(min(gr.Width()-24, 360))

	drawCard(screen, float32(cx), float32(cy), w, 210)
	drawCentered(screen, "GAME OVER", g.fonts.face(true, 18), cx, cy-78, mutedInk, 1)
	drawCentered(screen, strconv.Itoa(s.CountUp(now)), g.fonts.face(true, 52), cx, cy-32, inkColor, 1)
	if sum := s.Summary(); sum != "" {
		drawCentered(screen, sum, g.fonts.face(true, 15), cx, cy+14, inkColor, 1)
	}

	rec := recordLine(s.Score(), s.HighScore(), s.NewRecord())
	recColor := mutedInk
	if s.NewRecord() {
		recColor = bossColor
	}
	drawCentered(screen, rec, g.fonts.face(true, 14), cx, cy+40, recColor, 1)

	hint := "tap to play again   C to copy"
	if g.notice != "" && now < g.noticeUntil {
		hint = g.notice
	}
	drawCentered(screen, hint, g.fonts.face(false, 13), cx, cy+76, mutedInk, 1)
}

// drawFlash covers the screen in white after a death.
func (g *Game) drawFlash(screen *ebiten.Image, now time.Duration) {
	f := g.session.Flash(now)
	if f <= 0 {
		return
	}
	b := screen.Bounds()
	a := uint8(255 * 0.6 * f)
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{R: a, G: a, B: a, A: a}, false)
}

// drawDebug prints frame and simulation counters in the corner, above the
// recent event feed.
func (g *Game) drawDebug(screen *ebiten.Image) {
	s := g.session
	gr := s.Grid()
	line := fmt.Sprintf("TPS %.0f FPS %.0f  %s  tick %d  %dms  %dx%d  parts %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), s.State(), s.Ticks(),
		s.Interval().Milliseconds(), gr.Cols, gr.Rows, s.Particles().Len())
	h := screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, line, 4, h-16)
	g.feed.Draw(screen, 0, h-16-6*feedLineHeight-4, 6*feedLineHeight+2)
}
