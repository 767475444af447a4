package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fonts holds the embedded Go font sources and a cache of sized faces.
type fonts struct {
	bold    *text.GoTextFaceSource
	regular *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

type faceKey struct {
	bold bool
	size int
}

func loadFonts() (*fonts, error) {
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	return &fonts{bold: bold, regular: regular, faces: map[faceKey]*text.GoTextFace{}}, nil
}

// face returns a cached face; sizes are rounded to whole pixels so the cache
// stays small while the board scales.
func (f *fonts) face(bold bool, size float64) *text.GoTextFace {
	k := faceKey{bold: bold, size: max(int(size+0.5), 1)}
	if fc, ok := f.faces[k]; ok {
		return fc
	}
	src := f.regular
	if bold {
		src = f.bold
	}
	fc := &text.GoTextFace{Source: src, Size: float64(k.size)}
	f.faces[k] = fc
	return fc
}

// drawCentered draws s centred on (x, y) in c at alpha.
func drawCentered(dst *ebiten.Image, s string, face text.Face, x, y float64, c color.Color, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
