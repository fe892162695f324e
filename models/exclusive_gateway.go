package models

import (
	"math"

	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/randvar"
	"github.com/rfielding/devs-sim/services"
)

// ExclusiveGateway accepts jobs on any of several input flow paths and, on
// firing, samples a single destination for the whole accumulated batch -
// every queued job in that firing is routed to the same output port. Flagged
// open question: per-job independent routing is a plausible alternative
// reading, but this single-destination-per-firing behavior is the
// documented contract.
type ExclusiveGateway struct {
	recorder

	InPorts      []model.PortName
	OutPorts     []model.PortName
	Selection    randvar.IndexVariable

	queue          []string
	untilNextEvent float64
}

func NewExclusiveGateway(inPorts, outPorts []model.PortName, weights []float64, storeRecords bool) *ExclusiveGateway {
	return &ExclusiveGateway{
		recorder:       newRecorder(storeRecords),
		InPorts:        inPorts,
		OutPorts:       outPorts,
		Selection:      randvar.NewWeightedIndex(weights),
		untilNextEvent: math.Inf(1),
	}
}

func (e *ExclusiveGateway) isInput(port model.PortName) bool {
	for _, p := range e.InPorts {
		if p == port {
			return true
		}
	}
	return false
}

func (e *ExclusiveGateway) External(svc *services.Services, incoming model.ModelMessage) error {
	if !e.isInput(incoming.Port) {
		return model.NewError(model.KindInvalidMessage, "ExclusiveGateway.External")
	}
	e.queue = append(e.queue, incoming.Content)
	e.record(svc.GlobalTime(), "Arrival", incoming.Content)
	e.untilNextEvent = 0
	return nil
}

func (e *ExclusiveGateway) Internal(svc *services.Services) ([]model.ModelMessage, error) {
	if len(e.queue) == 0 {
		e.untilNextEvent = math.Inf(1)
		return nil, nil
	}
	k, err := e.Selection.Sample(svc.Rng())
	if err != nil {
		return nil, err
	}
	port := e.OutPorts[k]
	out := make([]model.ModelMessage, 0, len(e.queue))
	for _, job := range e.queue {
		e.record(svc.GlobalTime(), "Departure", job)
		out = append(out, model.ModelMessage{Port: port, Content: job})
	}
	e.queue = nil
	e.untilNextEvent = math.Inf(1)
	return out, nil
}

func (e *ExclusiveGateway) TimeAdvance(delta float64) {
	if math.IsInf(e.untilNextEvent, 1) {
		return
	}
	e.untilNextEvent = math.Max(0, e.untilNextEvent-delta)
}

func (e *ExclusiveGateway) UntilNextEvent() float64 { return e.untilNextEvent }

func (e *ExclusiveGateway) Status() string {
	if len(e.queue) > 0 {
		return "Pass"
	}
	return "Passive"
}

// Drain returns the currently buffered, not-yet-routed content for test
// introspection. Read-only; does not affect EXT/INT rules.
func (e *ExclusiveGateway) Drain() []model.ModelMessage {
	out := make([]model.ModelMessage, len(e.queue))
	for i, c := range e.queue {
		out[i] = model.ModelMessage{Content: c}
	}
	return out
}
