package models

import (
	"math"

	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/services"
)

// Gate passes jobs through while open and drops them while closed.
// Activation/deactivation messages toggle the gate and passivate it
// immediately; a job arriving while open schedules an immediate release.
type Gate struct {
	recorder

	JobPort          model.PortName
	ActivationPort   model.PortName
	DeactivationPort model.PortName
	OutPort          model.PortName

	closed         bool
	queue          []string
	untilNextEvent float64
}

func NewGate(jobPort, activationPort, deactivationPort, outPort model.PortName, storeRecords bool) *Gate {
	return &Gate{
		recorder:         newRecorder(storeRecords),
		JobPort:          jobPort,
		ActivationPort:   activationPort,
		DeactivationPort: deactivationPort,
		OutPort:          outPort,
		untilNextEvent:   math.Inf(1),
	}
}

func (g *Gate) External(svc *services.Services, incoming model.ModelMessage) error {
	switch incoming.Port {
	case g.ActivationPort:
		g.closed = false
		g.untilNextEvent = math.Inf(1)
	case g.DeactivationPort:
		g.closed = true
		g.untilNextEvent = math.Inf(1)
	case g.JobPort:
		if g.closed {
			g.record(svc.GlobalTime(), "Drop", incoming.Content)
			return nil
		}
		g.queue = append(g.queue, incoming.Content)
		g.untilNextEvent = 0
		g.record(svc.GlobalTime(), "Arrival", incoming.Content)
	default:
		return model.NewError(model.KindInvalidMessage, "Gate.External")
	}
	return nil
}

func (g *Gate) Internal(svc *services.Services) ([]model.ModelMessage, error) {
	out := make([]model.ModelMessage, 0, len(g.queue))
	for _, job := range g.queue {
		g.record(svc.GlobalTime(), "Departure", job)
		out = append(out, model.ModelMessage{Port: g.OutPort, Content: job})
	}
	g.queue = nil
	g.closed = false
	g.untilNextEvent = math.Inf(1)
	return out, nil
}

func (g *Gate) TimeAdvance(delta float64) {
	if math.IsInf(g.untilNextEvent, 1) {
		return
	}
	g.untilNextEvent = math.Max(0, g.untilNextEvent-delta)
}

func (g *Gate) UntilNextEvent() float64 { return g.untilNextEvent }

func (g *Gate) Status() string {
	if g.closed {
		return "Closed"
	}
	if len(g.queue) > 0 {
		return "Pass"
	}
	return "Open"
}
