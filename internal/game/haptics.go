package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Haptics vibrates the device. The pattern alternates on and off durations,
// starting with on. Implementations are best effort and never fail.
type Haptics interface {
	Vibrate(pattern ...time.Duration)
}

type noHaptics struct{}

func (noHaptics) Vibrate(...time.Duration) {}

// pulse is one "on" span of a vibration pattern.
type pulse struct {
	at  time.Duration
	dur time.Duration
}

// schedulePulses turns an on/off pattern into absolute pulses from start.
// Zero and negative spans are skipped.
func schedulePulses(start time.Duration, pattern []time.Duration) []pulse {
	var out []pulse
	t := start
	for i, d := range pattern {
		if d <= 0 {
			continue
		}
		if i%2 == 0 {
			out = append(out, pulse{at: t, dur: d})
		}
		t += d
	}
	return out
}

// Rumble plays vibration patterns on the phone motor and on any connected
// gamepads. Patterns are queued by Vibrate and laid out on the next Update;
// a new pattern cancels what is left of the previous one.
type Rumble struct {
	Magnitude float64

	queued  []time.Duration
	pending bool
	pulses  []pulse
	drive   func(d time.Duration, magnitude float64)
}

// NewRumble returns a Rumble driving ebiten's vibration APIs.
func NewRumble() *Rumble {
	return &Rumble{Magnitude: 0.7, drive: vibrateDevices}
}

// Vibrate queues pattern, replacing any pattern still playing.
func (r *Rumble) Vibrate(pattern ...time.Duration) {
	r.queued = append(r.queued[:0], pattern...)
	r.pending = true
}

// Update starts pulses that are due at now.
func (r *Rumble) Update(now time.Duration) {
	if r.pending {
		r.pulses = schedulePulses(now, r.queued)
		r.pending = false
	}
	kept := r.pulses[:0]
	for _, p := range r.pulses {
		if p.at <= now {
			if r.drive != nil {
				r.drive(p.dur, r.Magnitude)
			}
			continue
		}
		kept = append(kept, p)
	}
	r.pulses = kept
}

func vibrateDevices(d time.Duration, magnitude float64) {
	ebiten.Vibrate(&ebiten.VibrateOptions{Duration: d, Magnitude: magnitude})
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		ebiten.VibrateGamepad(id, &ebiten.VibrateGamepadOptions{
			Duration:        d,
			StrongMagnitude: magnitude,
			WeakMagnitude:   magnitude,
		})
	}
}
