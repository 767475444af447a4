package game

import "time"

// Smoothstep eases t in [0,1] as t²(3−2t).
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// tickFraction is the linear share of the current interval that has
// elapsed, clamped to [0,1].
func tickFraction(now, lastTick, interval time.Duration) float64 {
	if interval <= 0 {
		return 1
	}
	return clamp01(float64(now-lastTick) / float64(interval))
}

// Progress returns the eased interpolation fraction between the previous and
// current snapshot. It is 0 right after a tick and outside Playing.
func (s *Session) Progress(now time.Duration) float64 {
	if s.state != StatePlaying {
		return 0
	}
	return Smoothstep(tickFraction(now, s.lastTick, s.interval))
}

// SegmentPoint is an interpolated segment centre in pixels.
type SegmentPoint struct {
	Index int // index into the snake, 0 = head
	X, Y  float64
}

// InterpolateSnake blends each segment from prev to cur by progress and maps
// it to pixel centres. Segments before skip (already revealed by the death
// animation) are left out. Segments without a previous position, such as the
// head grown this tick on a longer snake, are drawn at their current cell.
func InterpolateSnake(g Grid, prev, cur Snake, progress float64, skip int, dst []SegmentPoint) []SegmentPoint {
	dst = dst[:0]
	for i := max(skip, 0); i < len(cur); i++ {
		lx, ly := float64(cur[i].X), float64(cur[i].Y)
		if i < len(prev) {
			px, py := float64(prev[i].X), float64(prev[i].Y)
			lx = px + (lx-px)*progress
			ly = py + (ly-py)*progress
		}
		x, y := g.PointCenter(lx, ly)
		dst = append(dst, SegmentPoint{Index: i, X: x, Y: y})
	}
	return dst
}
