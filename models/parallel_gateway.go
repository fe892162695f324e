package models

import (
	"math"

	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/services"
)

// ParallelGateway synchronizes arrivals across all its input flow paths
// before fanning content out to every output port. Message content is used
// as the synchronization key (open question flagged): callers must ensure
// uniqueness across independently generated jobs, which the generator does
// by suffixing a counter.
type ParallelGateway struct {
	recorder

	InPorts  []model.PortName
	OutPorts []model.PortName

	counts         map[string]int
	order          []string // insertion order, for deterministic INT scanning
	untilNextEvent float64
}

func NewParallelGateway(inPorts, outPorts []model.PortName, storeRecords bool) *ParallelGateway {
	return &ParallelGateway{
		recorder:       newRecorder(storeRecords),
		InPorts:        inPorts,
		OutPorts:       outPorts,
		counts:         make(map[string]int),
		untilNextEvent: math.Inf(1),
	}
}

func (p *ParallelGateway) isInput(port model.PortName) bool {
	for _, in := range p.InPorts {
		if in == port {
			return true
		}
	}
	return false
}

func (p *ParallelGateway) External(svc *services.Services, incoming model.ModelMessage) error {
	if !p.isInput(incoming.Port) {
		return model.NewError(model.KindInvalidMessage, "ParallelGateway.External")
	}
	if _, seen := p.counts[incoming.Content]; !seen {
		p.order = append(p.order, incoming.Content)
	}
	p.counts[incoming.Content]++
	p.record(svc.GlobalTime(), "Arrival", incoming.Content)
	p.untilNextEvent = 0
	return nil
}

func (p *ParallelGateway) Internal(svc *services.Services) ([]model.ModelMessage, error) {
	need := len(p.InPorts)
	for _, content := range p.order {
		if p.counts[content] == need {
			delete(p.counts, content)
			p.removeOrder(content)
			out := make([]model.ModelMessage, 0, len(p.OutPorts))
			for _, port := range p.OutPorts {
				p.record(svc.GlobalTime(), "Departure", content)
				out = append(out, model.ModelMessage{Port: port, Content: content})
			}
			p.untilNextEvent = 0
			return out, nil
		}
	}
	p.untilNextEvent = math.Inf(1)
	return nil, nil
}

func (p *ParallelGateway) removeOrder(content string) {
	for i, c := range p.order {
		if c == content {
			p.order = append(p.order[:i], p.order[i+1:]...)
			return
		}
	}
}

func (p *ParallelGateway) TimeAdvance(delta float64) {
	if math.IsInf(p.untilNextEvent, 1) {
		return
	}
	p.untilNextEvent = math.Max(0, p.untilNextEvent-delta)
}

func (p *ParallelGateway) UntilNextEvent() float64 { return p.untilNextEvent }

func (p *ParallelGateway) Status() string {
	if len(p.order) > 0 {
		return "Synchronizing"
	}
	return "Passive"
}

// Drain returns the content currently waiting on a synchronization unit,
// for test introspection. Read-only; does not affect EXT/INT rules.
func (p *ParallelGateway) Drain() []model.ModelMessage {
	out := make([]model.ModelMessage, len(p.order))
	for i, c := range p.order {
		out[i] = model.ModelMessage{Content: c}
	}
	return out
}
