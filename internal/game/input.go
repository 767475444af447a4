package game

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// intentKind is a logical input understood by the session.
type intentKind int

const (
	intentActivate intentKind = iota // start or restart
	intentTurn                       // queue a heading
)

// intent is one logical input gathered from a frame.
type intent struct {
	kind intentKind
	dir  Direction
	has  bool // dir is set
}

// keyDirections maps arrow keys and WASD to headings.
var keyDirections = map[ebiten.Key]Direction{
	ebiten.KeyArrowUp:    Up,
	ebiten.KeyArrowDown:  Down,
	ebiten.KeyArrowLeft:  Left,
	ebiten.KeyArrowRight: Right,
	ebiten.KeyW:          Up,
	ebiten.KeyS:          Down,
	ebiten.KeyA:          Left,
	ebiten.KeyD:          Right,
}

// reservedKeys never activate a game; they are handled by Game directly.
var reservedKeys = map[ebiten.Key]bool{
	ebiten.KeyEscape: true,
	ebiten.KeyC:      true,
	ebiten.KeyM:      true,
	ebiten.KeyF3:     true,
}

// swipeDirection classifies a drag. Drags shorter than swipeMin on both axes
// are ignored; otherwise the dominant axis wins, ties going vertical.
func swipeDirection(dx, dy float64) (Direction, bool) {
	ax, ay := math.Abs(dx), math.Abs(dy)
	if ax < swipeMin && ay < swipeMin {
		return Direction{}, false
	}
	if ax > ay {
		if dx > 0 {
			return Right, true
		}
		return Left, true
	}
	if dy > 0 {
		return Down, true
	}
	return Up, true
}

// swipeTracker turns one pointer's drag into swipes. The anchor moves to the
// pointer after every recognised swipe so one long drag can turn twice.
type swipeTracker struct {
	active bool
	x0, y0 float64
}

func (st *swipeTracker) begin(x, y float64) {
	st.active = true
	st.x0, st.y0 = x, y
}

func (st *swipeTracker) move(x, y float64) (Direction, bool) {
	if !st.active {
		return Direction{}, false
	}
	d, ok := swipeDirection(x-st.x0, y-st.y0)
	if ok {
		st.x0, st.y0 = x, y
	}
	return d, ok
}

func (st *swipeTracker) end(x, y float64) (Direction, bool) {
	d, ok := st.move(x, y)
	st.active = false
	return d, ok
}

// inputAdapter polls keyboard, touch and mouse once per frame.
type inputAdapter struct {
	touchID ebiten.TouchID
	touch   swipeTracker
	mouse   swipeTracker
	keys    []ebiten.Key
	touches []ebiten.TouchID
}

// poll gathers the frame's intents. Which intents matter depends on the
// session state; dispatch filters them.
func (in *inputAdapter) poll() []intent {
	var out []intent

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if reservedKeys[k] {
			continue
		}
		if d, ok := keyDirections[k]; ok {
			out = append(out, intent{kind: intentTurn, dir: d, has: true})
			continue
		}
		out = append(out, intent{kind: intentActivate})
	}

	// Touch: the first finger down owns the swipe.
	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	if !in.touch.active && len(in.touches) > 0 {
		in.touchID = in.touches[0]
		x, y := ebiten.TouchPosition(in.touchID)
		in.touch.begin(float64(x), float64(y))
	}
	if in.touch.active {
		if inpututil.IsTouchJustReleased(in.touchID) {
			x, y := inpututil.TouchPositionInPreviousTick(in.touchID)
			out = in.release(out, &in.touch, float64(x), float64(y))
		} else {
			x, y := ebiten.TouchPosition(in.touchID)
			if d, ok := in.touch.move(float64(x), float64(y)); ok {
				out = append(out, intent{kind: intentTurn, dir: d, has: true})
			}
		}
	}

	// Mouse drag behaves like a touch for desktop play.
	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		in.mouse.begin(float64(mx), float64(my))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		out = in.release(out, &in.mouse, float64(mx), float64(my))
	case in.mouse.active:
		if d, ok := in.mouse.move(float64(mx), float64(my)); ok {
			out = append(out, intent{kind: intentTurn, dir: d, has: true})
		}
	}
	return out
}

// release ends a drag: a final swipe turns, and the release itself is a tap
// that activates from the title or game-over card.
func (in *inputAdapter) release(out []intent, st *swipeTracker, x, y float64) []intent {
	if d, ok := st.end(x, y); ok {
		out = append(out, intent{kind: intentTurn, dir: d, has: true})
	}
	return append(out, intent{kind: intentActivate})
}

// dispatch applies intents to the session. In Start and GameOver the first
// intent activates (a direction key also sets the opening heading); in
// Playing only turns count; in Dying everything is ignored.
func dispatch(s *Session, now time.Duration, intents []intent) {
	for _, it := range intents {
		switch s.State() {
		case StateStart, StateGameOver:
			if it.has {
				s.Activate(now, it.dir)
			} else {
				s.Activate(now)
			}
		case StatePlaying:
			if it.kind == intentTurn && it.has {
				s.SetNextDirection(it.dir)
			}
		case StateDying:
		}
	}
}
