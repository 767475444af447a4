package game

import "math"

// Viewport is the drawable area handed to the game by the host window,
// plus the safe-area insets reserved by notches and home indicators.
type Viewport struct {
	Width      int
	Height     int
	SafeTop    int
	SafeBottom int
}

// Grid maps discrete cells onto the viewport. It is fixed for the length of
// a game; Refit only rescales it.
type Grid struct {
	Cols     int
	Rows     int
	CellSize int
	OriginX  int // pixel x of column 0
	OriginY  int // pixel y of row 0
}

// ComputeGrid derives the play grid for a viewport. The column count aims
// for nominalCell-sized cells, clamped to [minCols, maxCols]; rows fill the
// height left under the HUD. The grid is centred in the leftover space.
// Windows narrower than minCols pixels still get minCols one-pixel columns.
func ComputeGrid(v Viewport) Grid {
	w := max(v.Width, 1)

	targetCols := int(math.Round(float64(w) / nominalCell))
	targetCols = max(minCols, min(maxCols, targetCols))

	cs := max(w/targetCols, 1)
	cols := max(w/cs, minCols)

	hudH := v.SafeTop + hudHeight
	availH := v.Height - hudH - v.SafeBottom
	rows := max(availH/cs, 1)

	return Grid{
		Cols:     cols,
		Rows:     rows,
		CellSize: cs,
		OriginX:  int(math.Round(float64(w-cols*cs) / 2)),
		OriginY:  hudH + int(math.Round(float64(availH-rows*cs)/2)),
	}
}

// Refit keeps the cell counts and recomputes cell size and origin so the same
// board fits a resized viewport.
func (g Grid) Refit(v Viewport) Grid {
	if g.Cols <= 0 || g.Rows <= 0 {
		return ComputeGrid(v)
	}
	hudH := v.SafeTop + hudHeight
	availH := v.Height - hudH - v.SafeBottom
	cs := max(min(v.Width/g.Cols, availH/g.Rows), 1)
	g.CellSize = cs
	g.OriginX = int(math.Round(float64(v.Width-g.Cols*cs) / 2))
	g.OriginY = hudH + int(math.Round(float64(availH-g.Rows*cs)/2))
	return g
}

// Contains reports whether c lies inside [0,Cols)×[0,Rows).
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Area is the number of cells on the board.
func (g Grid) Area() int {
	return g.Cols * g.Rows
}

// CellCenter returns the pixel centre of a cell.
func (g Grid) CellCenter(c Cell) (float64, float64) {
	return g.PointCenter(float64(c.X), float64(c.Y))
}

// PointCenter is CellCenter for fractional cell coordinates, used by the
// interpolated snake.
func (g Grid) PointCenter(x, y float64) (float64, float64) {
	cs := float64(g.CellSize)
	return float64(g.OriginX) + x*cs + cs/2, float64(g.OriginY) + y*cs + cs/2
}

// Width and Height are the board's pixel extent.
func (g Grid) Width() int  { return g.Cols * g.CellSize }
func (g Grid) Height() int { return g.Rows * g.CellSize }
