package models

import (
	"math"

	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/randvar"
	"github.com/rfielding/devs-sim/services"
)

type stochasticGateEntry struct {
	content string
	pass    bool
}

// StochasticGate draws an independent pass/block decision for each
// arriving job, latched at arrival time, and releases jobs one per firing
// in arrival order.
type StochasticGate struct {
	recorder

	PassProbability randvar.BooleanVariable
	JobPort         model.PortName
	OutPort         model.PortName

	queue          []stochasticGateEntry
	untilNextEvent float64
}

func NewStochasticGate(passProbability float64, jobPort, outPort model.PortName, storeRecords bool) *StochasticGate {
	return &StochasticGate{
		recorder:        newRecorder(storeRecords),
		PassProbability: randvar.NewBernoulli(passProbability),
		JobPort:         jobPort,
		OutPort:         outPort,
		untilNextEvent:  math.Inf(1),
	}
}

func (g *StochasticGate) External(svc *services.Services, incoming model.ModelMessage) error {
	if incoming.Port != g.JobPort {
		return model.NewError(model.KindInvalidMessage, "StochasticGate.External")
	}
	pass, err := g.PassProbability.Sample(svc.Rng())
	if err != nil {
		return err
	}
	g.queue = append(g.queue, stochasticGateEntry{content: incoming.Content, pass: pass})
	g.record(svc.GlobalTime(), "Arrival", incoming.Content)
	g.untilNextEvent = 0
	return nil
}

func (g *StochasticGate) Internal(svc *services.Services) ([]model.ModelMessage, error) {
	entry := g.queue[0]
	g.queue = g.queue[1:]
	var out []model.ModelMessage
	if entry.pass {
		g.record(svc.GlobalTime(), "Departure", entry.content)
		out = []model.ModelMessage{{Port: g.OutPort, Content: entry.content}}
	} else {
		g.record(svc.GlobalTime(), "Block", entry.content)
	}
	if len(g.queue) > 0 {
		g.untilNextEvent = 0
	} else {
		g.untilNextEvent = math.Inf(1)
	}
	return out, nil
}

func (g *StochasticGate) TimeAdvance(delta float64) {
	if math.IsInf(g.untilNextEvent, 1) {
		return
	}
	g.untilNextEvent = math.Max(0, g.untilNextEvent-delta)
}

func (g *StochasticGate) UntilNextEvent() float64 { return g.untilNextEvent }

func (g *StochasticGate) Status() string {
	if len(g.queue) > 0 {
		return "Active"
	}
	return "Passive"
}
