package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event of a session.
type SimLogEntry struct {
	Tick     int
	Category string  // state, eat, spawn, death
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] eat       food             (7,3) score=4
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-9s %-16s %s",
		e.Tick, e.Category, e.Key, e.Value)
}

// SimLog collects structured events from a session. It is unbounded and
// machine-readable; tests and the headless report query it.
type SimLog struct {
	entries []SimLogEntry
}

// NewSimLog creates an empty log.
func NewSimLog() *SimLog {
	return &SimLog{}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Reset drops all entries.
func (sl *SimLog) Reset() {
	sl.entries = sl.entries[:0]
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	n := 0
	for _, e := range sl.entries {
		if (category == "" || e.Category == category) && (key == "" || e.Key == key) {
			n++
		}
	}
	return n
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	for i := len(sl.entries) - 1; i >= 0; i-- {
		e := sl.entries[i]
		if (category == "" || e.Category == category) && (key == "" || e.Key == key) {
			return e, true
		}
	}
	return SimLogEntry{}, false
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	return formatEntries(sl.entries)
}

// FormatRange returns a log string filtered to a tick range.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	return formatEntries(sl.FilterTickRange(fromTick, toTick))
}

func formatEntries(entries []SimLogEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the session state.
func (sl *SimLog) Summary(s *Session) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", s.Ticks())
	fmt.Fprintf(&sb, "State: %s  score=%d  length=%d  interval=%s\n",
		s.State(), s.Score(), len(s.Snake()), s.Interval())
	fmt.Fprintf(&sb, "Meals: food=%d  boss=%d  boss_expired=%d\n",
		sl.CountCategory("eat", "food"),
		sl.CountCategory("eat", "boss"),
		sl.CountCategory("spawn", "boss_expired"))
	if f, ok := s.Food(); ok {
		fmt.Fprintf(&sb, "Food: (%d,%d)\n", f.X, f.Y)
	} else {
		sb.WriteString("Food: none\n")
	}
	if b, ok := s.Boss(); ok {
		fmt.Fprintf(&sb, "Boss: (%d,%d)\n", b.X, b.Y)
	}
	if s.Cause() != DeathNone {
		fmt.Fprintf(&sb, "Death: %s\n", s.Cause())
	}
	return sb.String()
}
