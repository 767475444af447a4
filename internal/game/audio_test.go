package game

import (
	"math"
	"testing"
)

func TestRenderCue_AllCuesAudible(t *testing.T) {
	for c := Cue(0); c < cueCount; c++ {
		buf := renderCue(c)
		if len(buf) == 0 || len(buf)%4 != 0 {
			t.Fatalf("cue %d: bad buffer length %d", c, len(buf))
		}
		loud := false
		for _, b := range buf {
			if b != 0 {
				loud = true
				break
			}
		}
		if !loud {
			t.Fatalf("cue %d is silent", c)
		}
	}
	if renderCue(cueCount) != nil {
		t.Fatal("unknown cue should render nothing")
	}
	if got, want := len(renderCue(CueEat)), len(makePCM(int(0.08*sampleRate))); got != want {
		t.Fatalf("eat cue: want %d bytes, got %d", want, got)
	}
}

func TestPutStereo16_ClampsAndMirrors(t *testing.T) {
	buf := makePCM(2)
	putStereo16(buf, 0, 2)
	putStereo16(buf, 1, -2)
	left := int16(uint16(buf[0]) | uint16(buf[1])<<8)
	right := int16(uint16(buf[2]) | uint16(buf[3])<<8)
	if left != 32767 || right != left {
		t.Fatalf("expected clamped mirrored max, got %d/%d", left, right)
	}
	if v := int16(uint16(buf[4]) | uint16(buf[5])<<8); v != -32767 {
		t.Fatalf("expected clamped min, got %d", v)
	}
}

func TestEnvelopeHelpers(t *testing.T) {
	if adsr(0, 0.1, 0.2, 0.5, 0.2) != 0 {
		t.Fatal("envelope starts silent")
	}
	if adsr(0.1, 0.1, 0.2, 0.5, 0.2) != 1 {
		t.Fatal("envelope peaks at the end of attack")
	}
	if adsr(0.5, 0.1, 0.2, 0.5, 0.2) != 0.5 {
		t.Fatal("envelope holds sustain")
	}
	for _, x := range []float64{-10, -1, -0.5, 0, 0.5, 1, 10} {
		if v := softSat(x); math.Abs(v) > 1 {
			t.Fatalf("softSat(%v) = %v out of range", x, v)
		}
	}
	seed := uint64(1)
	for i := 0; i < 100; i++ {
		if v := lcg(&seed); v < -1 || v > 1 {
			t.Fatalf("lcg sample %v out of range", v)
		}
	}
}
