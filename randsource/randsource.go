// Package randsource provides the single deterministic pseudo-random stream
// shared by every model in a simulation. It is a thin seedable wrapper over
// math/rand, grounded on the teacher's own rng handling in kripke.World
// (kripke/engine.go: *rand.Rand field, seeded in NewWorld), generalized so
// the handle can be threaded through a services bundle instead of being a
// private World field.
package randsource

import (
	"math/rand"
	"time"
)

// Source is a seedable pseudo-random stream. Zero value is not usable;
// construct with New or NewSeeded.
type Source struct {
	rng *rand.Rand
}

// New constructs a Source seeded from the current time. Use NewSeeded for
// reproducible runs.
func New() *Source {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded constructs a Source with a fixed seed, for reproducible runs
// and replications.
func NewSeeded(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Float64 draws a uniform variate in [0, 1).
func (s *Source) Float64() float64 { return s.rng.Float64() }

// Intn draws a uniform integer in [0, n).
func (s *Source) Intn(n int) int { return s.rng.Intn(n) }

// NormFloat64 draws from the standard normal distribution.
func (s *Source) NormFloat64() float64 { return s.rng.NormFloat64() }

// ExpFloat64 draws from the standard (rate 1) exponential distribution.
func (s *Source) ExpFloat64() float64 { return s.rng.ExpFloat64() }
