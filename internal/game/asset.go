package game

import (
	"fmt"
	"image"
	_ "image/png" // boss sprites ship as PNG
	"log"
	"math"
	"os"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	xvector "golang.org/x/image/vector"
)

// bossSpriteSize is the edge of the generated sprite in pixels.
const bossSpriteSize = 96

// Sprite is an image decoded off the frame goroutine. Image returns nil until
// decoding has finished, and keeps returning nil if it failed.
type Sprite struct {
	decoded atomic.Pointer[image.Image]
	img     *ebiten.Image
}

// LoadSprite starts decoding a PNG from path in the background. With an
// empty path the built-in boss sprite is rasterized instead.
func LoadSprite(path string) *Sprite {
	sp := &Sprite{}
	go func() {
		img, err := decodeSprite(path)
		if err != nil {
			log.Printf("[asset] boss sprite %q: %v", path, err)
			return
		}
		sp.decoded.Store(&img)
	}()
	return sp
}

// Ready reports whether the sprite can be drawn.
func (sp *Sprite) Ready() bool {
	return sp != nil && (sp.img != nil || sp.decoded.Load() != nil)
}

// Image uploads the decoded image on first use. Call it from Draw only.
func (sp *Sprite) Image() *ebiten.Image {
	if sp == nil {
		return nil
	}
	if sp.img == nil {
		p := sp.decoded.Load()
		if p == nil {
			return nil
		}
		sp.img = ebiten.NewImageFromImage(*p)
	}
	return sp.img
}

func decodeSprite(path string) (image.Image, error) {
	if path == "" {
		return rasterBossSprite(bossSpriteSize), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// rasterBossSprite draws the default boss: an eight-point star with a round
// core, in the accent colours.
func rasterBossSprite(size int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float32(size) / 2

	star := xvector.NewRasterizer(size, size)
	const points = 8
	outer, inner := c*0.98, c*0.52
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/points - math.Pi/2
		x := c + r*float32(math.Cos(a))
		y := c + r*float32(math.Sin(a))
		if i == 0 {
			star.MoveTo(x, y)
		} else {
			star.LineTo(x, y)
		}
	}
	star.ClosePath()
	star.Draw(dst, dst.Bounds(), image.NewUniform(bossColor), image.Point{})

	core := xvector.NewRasterizer(size, size)
	const segs = 32
	r := c * 0.34
	for i := 0; i <= segs; i++ {
		a := float64(i) * 2 * math.Pi / segs
		x := c + r*float32(math.Cos(a))
		y := c + r*float32(math.Sin(a))
		if i == 0 {
			core.MoveTo(x, y)
		} else {
			core.LineTo(x, y)
		}
	}
	core.ClosePath()
	core.Draw(dst, dst.Bounds(), image.NewUniform(bossAccentColor), image.Point{})
	return dst
}
