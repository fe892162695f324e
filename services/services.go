// Package services bundles the per-step context shared mutably with every
// model transition: the simulator's current global time, and a handle onto
// the shared random source.
package services

import "github.com/rfielding/devs-sim/randsource"

// Services is passed by reference into every model transition call. It is
// owned by the simulator; models never construct their own.
type Services struct {
	globalTime float64
	rng        *randsource.Source
}

// New constructs a Services bundle around the given random source, with
// global time initialized to zero.
func New(rng *randsource.Source) *Services {
	return &Services{rng: rng}
}

// GlobalTime returns the simulator's current logical time.
func (s *Services) GlobalTime() float64 { return s.globalTime }

// SetGlobalTime overwrites the simulator's current logical time. Only the
// simulator itself calls this, during Phase TA and reset.
func (s *Services) SetGlobalTime(t float64) { s.globalTime = t }

// Rng returns the shared random source handle. The same logical stream is
// shared by all models; draw order therefore depends on model iteration
// order, by design - this is what makes seeded replications reproducible.
func (s *Services) Rng() *randsource.Source { return s.rng }
