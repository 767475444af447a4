package game

import (
	"testing"
	"time"
)

const ms = time.Millisecond

func TestSchedulePulses(t *testing.T) {
	got := schedulePulses(100*ms, []time.Duration{10 * ms, 20 * ms, 30 * ms, 0, 40 * ms})
	want := []pulse{{at: 100 * ms, dur: 10 * ms}, {at: 130 * ms, dur: 30 * ms}, {at: 160 * ms, dur: 40 * ms}}
	if len(got) != len(want) {
		t.Fatalf("expected %d pulses, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pulse %d: want %+v, got %+v", i, want[i], got[i])
		}
	}
	if len(schedulePulses(0, nil)) != 0 {
		t.Fatal("empty pattern should give no pulses")
	}
}

type driveCall struct {
	d   time.Duration
	mag float64
}

func newTestRumble(calls *[]driveCall) *Rumble {
	return &Rumble{Magnitude: 0.5, drive: func(d time.Duration, mag float64) {
		*calls = append(*calls, driveCall{d, mag})
	}}
}

func TestRumble_PlaysPulsesWhenDue(t *testing.T) {
	var calls []driveCall
	r := newTestRumble(&calls)

	r.Vibrate(10*ms, 20*ms, 30*ms)
	r.Update(0)
	if len(calls) != 1 || calls[0] != (driveCall{10 * ms, 0.5}) {
		t.Fatalf("first pulse should start at once, got %v", calls)
	}
	r.Update(29 * ms)
	if len(calls) != 1 {
		t.Fatalf("second pulse is not due yet, got %v", calls)
	}
	r.Update(30 * ms)
	if len(calls) != 2 || calls[1].d != 30*ms {
		t.Fatalf("second pulse should play at 30ms, got %v", calls)
	}
	r.Update(time.Second)
	if len(calls) != 2 {
		t.Fatalf("pattern should be finished, got %v", calls)
	}
}

func TestRumble_NewPatternCancelsOld(t *testing.T) {
	var calls []driveCall
	r := newTestRumble(&calls)

	r.Vibrate(10*ms, 20*ms, 30*ms)
	r.Update(0)
	r.Vibrate(5 * ms)
	r.Update(1 * ms)
	r.Update(time.Second)
	if len(calls) != 2 || calls[1].d != 5*ms {
		t.Fatalf("expected the old tail dropped, got %v", calls)
	}
}

func TestNoHapticsAndNoSound(t *testing.T) {
	noHaptics{}.Vibrate(10 * ms)
	noSound{}.Play(CueEat)
	var s *Synth
	s.Play(CueDeath)
}
