package game

import "image/color"

// FloatingText is a score popup that drifts up and fades out.
type FloatingText struct {
	X, Y  float64
	Text  string
	Color color.RGBA
	Life  float64
	VY    float64
}

// Alpha is the draw opacity; popups stay solid for the first third of life.
func (ft FloatingText) Alpha() float64 {
	return clamp01(ft.Life * 1.5)
}

// floatingTexts is the popup list of a session.
type floatingTexts []FloatingText

func (fs *floatingTexts) add(x, y float64, text string, c color.RGBA) {
	*fs = append(*fs, FloatingText{X: x, Y: y, Text: text, Color: c, Life: 1, VY: -1.5})
}

// update ages popups by one frame and prunes expired ones.
func (fs *floatingTexts) update() {
	kept := (*fs)[:0]
	for _, ft := range *fs {
		ft.Y += ft.VY
		ft.VY *= 0.97
		ft.Life -= 0.02
		if ft.Life > 0 {
			kept = append(kept, ft)
		}
	}
	*fs = kept
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
