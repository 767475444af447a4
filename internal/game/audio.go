package game

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// sampleRate of the synthesized cues; 16-bit stereo little endian.
const sampleRate = 44100

// Cue identifies a sound effect.
type Cue int

const (
	CueEat Cue = iota
	CueBoss
	CueDeath
	CueStart
	CueGameOver
	cueCount
)

// Sound plays short cues. Implementations never block the frame.
type Sound interface {
	Play(c Cue)
}

type noSound struct{}

func (noSound) Play(Cue) {}

// Synth holds one pre-rendered player per cue.
type Synth struct {
	Muted   bool
	players [cueCount]*audio.Player
}

// NewSynth renders every cue into memory on ctx. There can only be one audio
// context per process, so the host owns it.
func NewSynth(ctx *audio.Context) *Synth {
	s := &Synth{}
	for c := Cue(0); c < cueCount; c++ {
		s.players[c] = ctx.NewPlayerFromBytes(renderCue(c))
		s.players[c].SetVolume(0.35)
	}
	return s
}

// Play restarts the cue's player from the beginning.
func (s *Synth) Play(c Cue) {
	if s == nil || s.Muted || c < 0 || c >= cueCount {
		return
	}
	p := s.players[c]
	if err := p.SetPosition(0); err != nil {
		log.Printf("[audio] rewind cue %d: %v", c, err)
		return
	}
	p.Play()
}

func renderCue(c Cue) []byte {
	switch c {
	case CueEat:
		return genEat()
	case CueBoss:
		return genBoss()
	case CueDeath:
		return genDeath()
	case CueStart:
		return genStart()
	case CueGameOver:
		return genGameOver()
	default:
		return nil
	}
}

// genEat: short rising FM pop.
func genEat() []byte {
	n := int(0.08 * sampleRate)
	buf := makePCM(n)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.5, 0, 0.1)
		freq := 520 + 640*p
		putStereo16(buf, i, softSat(fm(t, freq, 2, 3*env)*env*0.5))
	}
	return buf
}

// genBoss: two-note bell arpeggio.
func genBoss() []byte {
	n := int(0.26 * sampleRate)
	buf := makePCM(n)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		freq := 660.0
		if p > 0.45 {
			freq = 990
		}
		env := math.Exp(-math.Mod(p, 0.45) * 9)
		s := fm(t, freq, 3.5, 2*env)*env*0.45 + math.Sin(2*math.Pi*freq*2*t)*env*0.08
		putStereo16(buf, i, softSat(s))
	}
	return buf
}

// genDeath: falling thud with a noise tail.
func genDeath() []byte {
	n := int(0.42 * sampleRate)
	buf := makePCM(n)
	seed := uint64(0xC0FFEE)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		freq := 180 - 120*p
		thump := math.Sin(2*math.Pi*freq*t) * math.Exp(-p*6)
		lp = lp*0.9 + lcg(&seed)*0.1
		putStereo16(buf, i, softSat((thump*0.7+lp*0.4)*math.Exp(-p*3)))
	}
	return buf
}

// genStart: quick upward blip.
func genStart() []byte {
	n := int(0.06 * sampleRate)
	buf := makePCM(n)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.05, 0.4, 0.2, 0.3)
		putStereo16(buf, i, math.Sin(2*math.Pi*(440+440*p)*t)*env*0.4)
	}
	return buf
}

// genGameOver: three descending tones.
func genGameOver() []byte {
	notes := []float64{523.25, 392.0, 261.63}
	per := int(0.14 * sampleRate)
	buf := makePCM(per * len(notes))
	for k, f := range notes {
		for i := 0; i < per; i++ {
			t := float64(i) / sampleRate
			p := float64(i) / float64(per)
			env := adsr(p, 0.03, 0.3, 0.5, 0.3)
			putStereo16(buf, k*per+i, softSat(fm(t, f, 1, 0.8*env)*env*0.4))
		}
	}
	return buf
}

// makePCM allocates a 16-bit stereo buffer for n frames.
func makePCM(n int) []byte { return make([]byte, n*4) }

// putStereo16 writes sample (−1..1) to both channels of frame i.
func putStereo16(buf []byte, i int, sample float64) {
	v := int16(math.Max(-1, math.Min(1, sample)) * 32767)
	buf[i*4] = byte(v)
	buf[i*4+1] = byte(v >> 8)
	buf[i*4+2] = byte(v)
	buf[i*4+3] = byte(v >> 8)
}

// softSat applies gentle tanh-like saturation, no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}
