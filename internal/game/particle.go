package game

import (
	"image/color"
	"math"
	"math/rand"
)

const (
	// maxParticles caps the pool; bursts beyond it overwrite the oldest slot.
	maxParticles = 2048
	// particleDamping is applied to velocity once per frame.
	particleDamping = 0.955
)

// Particle is one dot of a radial burst. Position and velocity are in pixels
// and pixels per frame.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  color.RGBA
	Life   float64 // 1 at spawn, removed at <= 0
	Decay  float64 // life lost per frame
}

// ParticleSystem owns every live particle of a session.
type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *rand.Rand
	ovrIdx int // circular overwrite index when full
}

// NewParticleSystem returns an empty system drawing randomness from rng.
func NewParticleSystem(maxP int, rng *rand.Rand) *ParticleSystem {
	if maxP <= 0 {
		maxP = maxParticles
	}
	return &ParticleSystem{
		Max: maxP,
		P:   make([]Particle, 0, 64),
		rng: rng,
	}
}

// Len is the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.P)
}

// Clear drops every particle.
func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

// Add inserts p, overwriting the oldest slot when the pool is full.
func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Burst emits n particles at evenly spaced angles with a little jitter,
// random speed, size and decay.
func (ps *ParticleSystem) Burst(x, y float64, c color.RGBA, n int) {
	if n <= 0 {
		return
	}
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := step*float64(i) + ps.rng.Float64()*0.5
		sp := 1.5 + ps.rng.Float64()*4.5
		ps.Add(Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(a) * sp,
			VY:    math.Sin(a) * sp,
			Size:  2 + ps.rng.Float64()*4,
			Color: c,
			Life:  1,
			Decay: 0.016 + ps.rng.Float64()*0.024,
		})
	}
}

// Update advances every particle by one frame and compacts out the dead.
func (ps *ParticleSystem) Update() {
	kept := ps.P[:0]
	for _, p := range ps.P {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= particleDamping
		p.VY *= particleDamping
		p.Life -= p.Decay
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	ps.P = kept
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}
