// Package model defines the DEVS model contract: the four transition
// operations every atomic and coupled model implements, the message and
// record shapes that cross a model's boundary, and the closed error kind
// used throughout the engine.
package model

import "github.com/rfielding/devs-sim/services"

// PortName identifies an input or output port on a model. Uniqueness is
// scoped to a model's input set and output set separately.
type PortName string

// ModelMessage is a message local to a single model invocation: a port and
// content, with no routing metadata attached. The simulator attaches
// source/target ids and a timestamp when it moves a ModelMessage onto the
// wire between models (see simulator.Message).
type ModelMessage struct {
	Port    PortName
	Content string
}

// ModelRecord is one entry in a model's append-only activity log.
type ModelRecord struct {
	Time    float64
	Action  string
	Subject string
}

// Model is the DEVS contract. External and internal transitions are kept
// separate so the simulator's step algorithm can reason about them
// independently: external transitions never emit messages, and internal
// transitions are the only source of outbound messages.
type Model interface {
	// External applies an incoming message to the model's state. It must
	// not emit any outgoing messages. Returns an InvalidMessage-kind Error if
	// incoming.Port is not a recognized input port; Generator accepts any
	// port, and Coupled ignores a port with no external-input coupling.
	External(svc *services.Services, incoming ModelMessage) error

	// Internal fires the model's scheduled transition, returning the
	// messages it wishes to emit. It must reset UntilNextEvent so it
	// reflects the next scheduled event.
	Internal(svc *services.Services) ([]ModelMessage, error)

	// TimeAdvance reduces the model's internal timer by delta. Delta is
	// never negative, and the timer never goes negative as a result.
	TimeAdvance(delta float64)

	// UntilNextEvent reports the remaining simulated time to this model's
	// next internal transition. math.Inf(1) means passive.
	UntilNextEvent() float64

	// Status is a short human-readable description of current phase.
	Status() string

	// Records returns the model's accumulated activity log. Callers must
	// not mutate the returned slice.
	Records() []ModelRecord
}
