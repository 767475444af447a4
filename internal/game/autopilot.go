package game

import "math"

// Autopilot steers a session greedily toward the boss, or the food when no
// boss is up, while refusing moves into pockets smaller than the snake. It
// plays the headless runs; it is not meant to be unbeatable.
type Autopilot struct {
	seen  []bool
	queue []Cell
}

// Steer queues the chosen heading on s and returns it.
func (a *Autopilot) Steer(s *Session) Direction {
	d := a.Choose(s)
	s.SetNextDirection(d)
	return d
}

// Choose picks among straight, left and right. Moves with room for the
// whole body win; among those the one closest to the target, then the one
// with more room. If every move is cramped the roomiest is taken, and if
// every move is fatal the heading is kept.
func (a *Autopilot) Choose(s *Session) Direction {
	body := s.Snake()
	cur := s.Direction()
	if len(body) == 0 {
		return cur
	}
	g := s.Grid()
	head := body.Head()

	target, hasTarget := s.Boss()
	if !hasTarget {
		target, hasTarget = s.Food()
	}

	best := cur
	bestArea, bestDist := -1, math.MaxInt
	for _, d := range [...]Direction{cur, turnLeft(cur), turnRight(cur)} {
		next := head.Add(d)
		if !g.Contains(next) || body.Occupies(next) {
			continue
		}
		area := a.reachable(g, body, next)
		dist := 0
		if hasTarget {
			dist = manhattan(next, target)
		}

		roomy := area >= len(body)
		bestRoomy := bestArea >= len(body)
		var better bool
		switch {
		case bestArea < 0:
			better = true
		case roomy != bestRoomy:
			better = roomy
		case roomy:
			better = dist < bestDist || (dist == bestDist && area > bestArea)
		default:
			better = area > bestArea
		}
		if better {
			best, bestArea, bestDist = d, area, dist
		}
	}
	return best
}

// reachable flood-fills from start and counts the free cells it reaches,
// treating the whole body as wall.
func (a *Autopilot) reachable(g Grid, body Snake, start Cell) int {
	n := g.Area()
	if cap(a.seen) < n {
		a.seen = make([]bool, n)
	}
	a.seen = a.seen[:n]
	clear(a.seen)
	for _, c := range body {
		if g.Contains(c) {
			a.seen[c.Y*g.Cols+c.X] = true
		}
	}

	a.queue = append(a.queue[:0], start)
	a.seen[start.Y*g.Cols+start.X] = true
	count := 0
	for len(a.queue) > 0 {
		c := a.queue[0]
		a.queue = a.queue[1:]
		count++
		for _, d := range [...]Direction{Up, Down, Left, Right} {
			nc := c.Add(d)
			if !g.Contains(nc) || a.seen[nc.Y*g.Cols+nc.X] {
				continue
			}
			a.seen[nc.Y*g.Cols+nc.X] = true
			a.queue = append(a.queue, nc)
		}
	}
	return count
}

func turnLeft(d Direction) Direction  { return Direction{DX: d.DY, DY: -d.DX} }
func turnRight(d Direction) Direction { return Direction{DX: -d.DY, DY: d.DX} }

func manhattan(a, b Cell) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
