package game

// DeathCause is what ended a run.
type DeathCause int

const (
	DeathNone DeathCause = iota
	DeathWall
	DeathSelf
)

func (c DeathCause) String() string {
	switch c {
	case DeathWall:
		return "wall"
	case DeathSelf:
		return "self"
	case DeathNone:
		return "none"
	default:
		return "unknown"
	}
}

// RunOutcome summarises one finished (or abandoned) run.
type RunOutcome struct {
	Score      int
	Length     int
	Ticks      int
	Foods      int
	Bosses     int
	BossesLost int // bosses that expired uneaten
	Cause      DeathCause
	Summary    string
}

// DetermineOutcome reads the final state of a session and its event log.
// sl may be nil, in which case meal counts are left at zero.
func DetermineOutcome(s *Session, sl *SimLog) RunOutcome {
	o := RunOutcome{
		Score:   s.Score(),
		Length:  len(s.Snake()),
		Ticks:   s.Ticks(),
		Cause:   s.Cause(),
		Summary: Summary(len(s.Snake())),
	}
	if sl != nil {
		o.Foods = sl.CountCategory("eat", "food")
		o.Bosses = sl.CountCategory("eat", "boss")
		o.BossesLost = sl.CountCategory("spawn", "boss_expired")
	}
	return o
}
