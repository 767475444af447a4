package game

import "time"

// deathAnim walks the dead snake from the head outward, popping one segment
// per revealCadence.
type deathAnim struct {
	revealed int           // segments already burst, counted from the head
	last     time.Duration // time of the previous reveal step
}

// stepDeath advances the death animation. Once every segment is revealed the
// session waits for the last particle to fade before entering GameOver.
func (s *Session) stepDeath(now time.Duration) {
	if now-s.dying.last < revealCadence {
		return
	}
	s.dying.last = now

	if s.dying.revealed < len(s.snake) {
		i := s.dying.revealed
		x, y := s.grid.CellCenter(s.snake[i])
		s.particles.Burst(x, y, foodColors[i%len(foodColors)], 8)
		s.dying.revealed++
		return
	}
	if s.particles.Len() == 0 {
		s.enter(StateGameOver)
	}
}

// Flash returns the remaining strength of the death flash in [0,1].
func (s *Session) Flash(now time.Duration) float64 {
	if now >= s.flashUntil {
		return 0
	}
	return clamp01(float64(s.flashUntil-now) / float64(flashDuration))
}

// Shake is the current screen shake amplitude in pixels.
func (s *Session) Shake() float64 {
	return s.shake
}

// CountUp is the score shown on the game-over card at now, counting up to the
// final score with a cubic ease-out.
func (s *Session) CountUp(now time.Duration) int {
	if s.state != StateGameOver {
		return s.score
	}
	return countUp(s.score, now-s.overAt, countUpTime)
}

func countUp(target int, elapsed, dur time.Duration) int {
	p := 1.0
	if dur > 0 {
		p = clamp01(float64(elapsed) / float64(dur))
	}
	e := 1 - (1-p)*(1-p)*(1-p)
	return int(float64(target)*e + 0.5)
}
