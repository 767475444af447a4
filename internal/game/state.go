package game

// GameState is the phase of a session.
type GameState int

const (
	StateStart    GameState = iota // waiting for the first input
	StatePlaying                   // simulation ticking
	StateDying                     // death animation running
	StateGameOver                  // final score shown
)

func (s GameState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateDying:
		return "dying"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Activatable reports whether an activate input starts a new game from s.
func (s GameState) Activatable() bool {
	return s == StateStart || s == StateGameOver
}

// canEnter lists the legal transitions. Activate from GameOver re-enters
// Playing; everything else moves forward one phase.
func (s GameState) canEnter(next GameState) bool {
	switch s {
	case StateStart:
		return next == StatePlaying
	case StatePlaying:
		return next == StateDying
	case StateDying:
		return next == StateGameOver
	case StateGameOver:
		return next == StatePlaying
	default:
		return false
	}
}

// enter performs a transition and its entry actions. Illegal transitions are
// ignored and reported as false.
func (s *Session) enter(next GameState) bool {
	if !s.state.canEnter(next) {
		return false
	}
	prev := s.state
	s.state = next
	s.logf("state", "change", prev.String()+" → "+next.String(), 0)

	switch next {
	case StatePlaying:
		s.lastTick = s.now
		s.sound.Play(CueStart)
	case StateDying:
		s.onDeath()
	case StateGameOver:
		s.overAt = s.now
		s.summary = Summary(len(s.snake))
		s.sound.Play(CueGameOver)
	case StateStart:
		// initial state only; never re-entered
	}
	return true
}
