package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedMaxEntries = 40
	feedLineHeight = 14
	feedPanelWidth = 300
)

// EventFeed is a ring buffer of the latest session events, shown by the
// debug overlay. Unlike SimLog it never grows.
type EventFeed struct {
	entries []SimLogEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]SimLogEntry, feedMaxEntries),
	}
}

// Add appends an entry, dropping the oldest when full.
func (f *EventFeed) Add(e SimLogEntry) {
	f.entries[f.head] = e
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []SimLogEntry {
	result := make([]SimLogEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Draw renders the newest entries that fit in panelH, newest at the bottom.
func (f *EventFeed) Draw(screen *ebiten.Image, panelX, panelY, panelH int) {
	vector.FillRect(screen, float32(panelX), float32(panelY), feedPanelWidth, float32(panelH),
		color.RGBA{R: 10, G: 10, B: 10, A: 200}, false)

	entries := f.Recent()
	maxVisible := max((panelH-4)/feedLineHeight, 0)
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	y := panelY + 2
	for _, e := range entries {
		ebitenutil.DebugPrintAt(screen, e.String(), panelX+4, y)
		y += feedLineHeight
	}
}
