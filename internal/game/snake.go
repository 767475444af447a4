package game

// Cell is an integer grid coordinate.
type Cell struct {
	X int
	Y int
}

// Add returns c moved one step in d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Direction is a unit step on the grid.
type Direction struct {
	DX int
	DY int
}

var (
	Right = Direction{DX: 1}
	Left  = Direction{DX: -1}
	Down  = Direction{DY: 1}
	Up    = Direction{DY: -1}
)

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Valid reports whether d is one of the four unit headings.
func (d Direction) Valid() bool {
	switch d {
	case Right, Left, Down, Up:
		return true
	default:
		return false
	}
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "none"
	}
}

// Snake is the ordered body, head first.
type Snake []Cell

// newSnake lays out a horizontal snake of length n with its head at head,
// trailing to the left.
func newSnake(head Cell, n int) Snake {
	s := make(Snake, n)
	for i := range s {
		s[i] = Cell{X: head.X - i, Y: head.Y}
	}
	return s
}

// Head returns the first segment. Callers must not call it on an empty snake.
func (s Snake) Head() Cell {
	return s[0]
}

// Occupies reports whether any segment, the tail included, sits on c.
func (s Snake) Occupies(c Cell) bool {
	for _, seg := range s {
		if seg == c {
			return true
		}
	}
	return false
}

// Distinct reports whether no two segments share a cell.
func (s Snake) Distinct() bool {
	seen := make(map[Cell]struct{}, len(s))
	for _, seg := range s {
		if _, dup := seen[seg]; dup {
			return false
		}
		seen[seg] = struct{}{}
	}
	return true
}

// clone copies s into dst, reusing dst's backing array when it is large enough.
func (s Snake) clone(dst Snake) Snake {
	dst = append(dst[:0], s...)
	return dst
}
