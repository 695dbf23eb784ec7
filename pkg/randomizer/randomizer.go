// Package randomizer supplies the cosmetic filler values used when laying
// out documents: ID numbers, background tints and barcode bars.
package randomizer

import (
	"image/color"
	"math/rand/v2"
)

const (
	minStudentID = 10000000
	maxStudentID = 99999999

	// BarProbability is the chance that a single barcode bar is drawn.
	BarProbability = 0.7
)

// Source produces independent filler draws. Layout code never reads global
// random state, so tests can pin every value by supplying their own Source.
type Source interface {
	// StudentID returns an integer in [10000000, 99999999].
	StudentID() int
	// Background returns a near-white color with every channel in [240, 255].
	Background() color.RGBA
	// HeaderTint returns a dark blue with channels in [0,50], [0,50], [50,150].
	HeaderTint() color.RGBA
	// BarPresent reports whether the next barcode bar is drawn.
	BarPresent() bool
}

// Rand is a Source backed by a PCG generator. It is not safe for
// concurrent use.
type Rand struct {
	r *rand.Rand
}

// New returns a Rand whose sequence is fully determined by seed.
func New(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewUnseeded returns a Rand seeded from the runtime's random state, so
// every process renders different filler values.
func NewUnseeded() *Rand {
	return &Rand{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// between returns a uniform integer in [lo, hi].
func (g *Rand) between(lo, hi int) int {
	return lo + g.r.IntN(hi-lo+1)
}

func (g *Rand) StudentID() int {
	return g.between(minStudentID, maxStudentID)
}

func (g *Rand) Background() color.RGBA {
	return color.RGBA{
		R: uint8(g.between(240, 255)),
		G: uint8(g.between(240, 255)),
		B: uint8(g.between(240, 255)),
		A: 0xff,
	}
}

func (g *Rand) HeaderTint() color.RGBA {
	return color.RGBA{
		R: uint8(g.between(0, 50)),
		G: uint8(g.between(0, 50)),
		B: uint8(g.between(50, 150)),
		A: 0xff,
	}
}

func (g *Rand) BarPresent() bool {
	return g.r.Float64() < BarProbability
}
