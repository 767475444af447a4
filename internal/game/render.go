package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// segmentRadius tapers the last taperSegs segments of snakes longer than 5.
func segmentRadius(idx, total int, body float64) float64 {
	fromTail := total - 1 - idx
	if total > 5 && fromTail < taperSegs {
		t := float64(fromTail) / taperSegs
		return body * (0.4 + 0.6*t)
	}
	return body
}

// bakeBackground renders the static board (paper fill, dot grid at cell
// corners, edge vignette and border) into bgBuf. It runs once per grid
// revision or window size, never per frame.
func (g *Game) bakeBackground(w, h int) {
	if g.bgBuf != nil {
		g.bgBuf.Deallocate()
	}
	g.bgBuf = ebiten.NewImage(max(w, 1), max(h, 1))
	g.bgBuf.Fill(backgroundColor)

	gr := g.session.Grid()
	cs := float32(gr.CellSize)
	ox, oy := float32(gr.OriginX), float32(gr.OriginY)
	dot := color.RGBA{A: 11}
	for x := 0; x <= gr.Cols; x++ {
		for y := 0; y <= gr.Rows; y++ {
			vector.FillCircle(g.bgBuf, ox+float32(x)*cs, oy+float32(y)*cs, 1.2, dot, true)
		}
	}

	// Soft vignette: stacked translucent bands toward the board edge.
	bw, bh := float32(gr.Width()), float32(gr.Height())
	band := min(bw, bh) / 10
	for i := 0; i < 4; i++ {
		inset := float32(i) * band / 4
		shade := color.RGBA{A: 2}
		vector.FillRect(g.bgBuf, ox+inset, oy+inset, bw-2*inset, band/4, shade, false)
		vector.FillRect(g.bgBuf, ox+inset, oy+bh-inset-band/4, bw-2*inset, band/4, shade, false)
		vector.FillRect(g.bgBuf, ox+inset, oy+inset, band/4, bh-2*inset, shade, false)
		vector.FillRect(g.bgBuf, ox+bw-inset-band/4, oy+inset, band/4, bh-2*inset, shade, false)
	}

	vector.StrokeRect(g.bgBuf, ox+0.5, oy+0.5, bw-1, bh-1, 1, color.RGBA{A: 15}, false)

	g.bgRev = g.session.GridRevision()
	g.bgW, g.bgH = w, h
}

// drawFood renders the pulsing food dot with its glow.
func (g *Game) drawFood(dst *ebiten.Image, now time.Duration, dx, dy float32) {
	f, ok := g.session.Food()
	if !ok {
		return
	}
	gr := g.session.Grid()
	ms := float64(now.Milliseconds())
	pulse := math.Sin(ms/200)*0.07 + 1
	r := float32(float64(gr.CellSize-cellGap) * pulse / 2)
	x, y := gr.CellCenter(f)
	cx, cy := float32(x)+dx, float32(y)+dy
	c := foodColors[g.session.FoodColor()]

	glow := c
	glow.A = 38
	vector.FillCircle(dst, cx, cy, r+6, premultiply(glow), true)
	vector.FillCircle(dst, cx, cy, r, c, true)
}

// drawBoss renders the spinning boss sprite. Nothing is drawn until the
// sprite has loaded.
func (g *Game) drawBoss(dst *ebiten.Image, now time.Duration, dx, dy float32) {
	b, ok := g.session.Boss()
	if !ok {
		return
	}
	img := g.boss.Image()
	if img == nil {
		return
	}
	gr := g.session.Grid()
	ms := float64(now.Milliseconds())
	pulse := math.Sin(ms/120)*0.08 + 1
	spin := ms / 2000
	size := float64(gr.CellSize) * 1.35 * pulse
	x, y := gr.CellCenter(b)
	cx, cy := float32(x)+dx, float32(y)+dy

	glow := bossColor
	glow.A = uint8(255 * clamp01(0.18+math.Sin(ms/200)*0.08))
	vector.FillCircle(dst, cx, cy, float32(size/2+5), premultiply(glow), true)

	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
	op.GeoM.Scale(size/float64(iw), size/float64(ih))
	op.GeoM.Rotate(spin)
	op.GeoM.Translate(float64(cx), float64(cy))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// drawSnake renders the body as a chain of discs joined by thick strokes,
// then the head ring and the label letters.
func (g *Game) drawSnake(dst *ebiten.Image, progress float64, dx, dy float32) {
	s := g.session
	gr := s.Grid()
	skip := 0
	if s.State() == StateDying {
		skip = s.Revealed()
	}
	g.pts = InterpolateSnake(gr, s.PrevSnake(), s.Snake(), progress, skip, g.pts)
	pts := g.pts
	if len(pts) == 0 {
		return
	}
	body := float64(gr.CellSize) * bodyRadius

	for j := 0; j < len(pts)-1; j++ {
		a, b := pts[j], pts[j+1]
		if math.Hypot(b.X-a.X, b.Y-a.Y) < 0.5 {
			continue
		}
		w := segmentRadius(j, len(pts), body) + segmentRadius(j+1, len(pts), body)
		vector.StrokeLine(dst, float32(a.X)+dx, float32(a.Y)+dy, float32(b.X)+dx, float32(b.Y)+dy,
			float32(w), bodyColor, true)
	}
	for k := len(pts) - 1; k >= 0; k-- {
		r := segmentRadius(k, len(pts), body)
		vector.FillCircle(dst, float32(pts[k].X)+dx, float32(pts[k].Y)+dy, float32(r), bodyColor, true)
	}

	if pts[0].Index == 0 && s.State() != StateDying {
		vector.StrokeCircle(dst, float32(pts[0].X)+dx, float32(pts[0].Y)+dy,
			float32(segmentRadius(0, len(pts), body)), 2, color.RGBA{R: 56, G: 56, B: 56, A: 56}, true)
	}

	for m, p := range pts {
		letter := label[p.Index%len(label)]
		if letter == ' ' {
			continue
		}
		r := segmentRadius(m, len(pts), body)
		if r < body*0.6 {
			continue
		}
		face := g.fonts.face(true, r*1.1)
		drawCentered(dst, string(letter), face, p.X+float64(dx), p.Y+1+float64(dy), color.White, 1)
	}
}

// drawParticles renders every live particle as a fading disc.
func (g *Game) drawParticles(dst *ebiten.Image, dx, dy float32) {
	for _, p := range g.session.Particles().P {
		c := p.Color
		c.A = uint8(255 * clamp01(p.Life))
		vector.FillCircle(dst, float32(p.X)+dx, float32(p.Y)+dy, float32(p.Size/2), premultiply(c), true)
	}
}

// drawFloating renders the "+1"/"+5" popups.
func (g *Game) drawFloating(dst *ebiten.Image, dx, dy float32) {
	size := math.Round(float64(g.session.Grid().CellSize) * 0.65)
	face := g.fonts.face(true, size)
	for _, ft := range g.session.FloatingTexts() {
		drawCentered(dst, ft.Text, face, ft.X+float64(dx), ft.Y+float64(dy), ft.Color, ft.Alpha())
	}
}

// premultiply converts a straight-alpha colour for ebiten's premultiplied
// color.RGBA expectation.
func premultiply(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}
