package game

import (
	"strconv"
	"strings"
)

// Summary spells a snake of length n in label units: whole labels first
// ("GOOD LOOKING", with "× k" when repeated), then the leading letters of a
// partial label, joined by " + ". The blank units are dropped from the
// partial part.
//
//	n=16 → "GOOD LOOKING + GOO"
//	n=26 → "GOOD LOOKING × 2"
func Summary(n int) string {
	if n <= 0 {
		return ""
	}
	l := len(label)
	full := n / l
	rem := n % l

	var b strings.Builder
	if full > 0 {
		b.WriteString(labelText)
		if full > 1 {
			b.WriteString(" × ")
			b.WriteString(strconv.Itoa(full))
		}
	}
	if rem > 0 {
		partial := strings.ReplaceAll(string(label[:rem]), " ", "")
		if partial != "" {
			if full > 0 {
				b.WriteString(" + ")
			}
			b.WriteString(partial)
		}
	}
	return b.String()
}

// recordLine is the high-score line on the game-over card.
func recordLine(score, best int, newRecord bool) string {
	if newRecord && score > 0 {
		return "NEW RECORD!"
	}
	return "BEST: " + strconv.Itoa(best)
}
