package models

import (
	"math"

	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/services"
)

// LoadBalancer distributes incoming jobs round-robin across an ordered
// list of output ports.
type LoadBalancer struct {
	recorder

	JobPort  model.PortName
	OutPorts []model.PortName

	queue          []string
	cursor         int
	untilNextEvent float64
}

func NewLoadBalancer(jobPort model.PortName, outPorts []model.PortName, storeRecords bool) *LoadBalancer {
	return &LoadBalancer{
		recorder:       newRecorder(storeRecords),
		JobPort:        jobPort,
		OutPorts:       outPorts,
		cursor:         -1,
		untilNextEvent: math.Inf(1),
	}
}

func (l *LoadBalancer) External(svc *services.Services, incoming model.ModelMessage) error {
	if incoming.Port != l.JobPort {
		return model.NewError(model.KindInvalidMessage, "LoadBalancer.External")
	}
	l.queue = append(l.queue, incoming.Content)
	l.record(svc.GlobalTime(), "Arrival", incoming.Content)
	l.untilNextEvent = 0
	return nil
}

func (l *LoadBalancer) Internal(svc *services.Services) ([]model.ModelMessage, error) {
	if len(l.queue) == 0 {
		l.untilNextEvent = math.Inf(1)
		return nil, nil
	}
	job := l.queue[0]
	l.queue = l.queue[1:]
	l.cursor = (l.cursor + 1) % len(l.OutPorts)
	port := l.OutPorts[l.cursor]
	l.record(svc.GlobalTime(), "Departure", job)
	if len(l.queue) > 0 {
		l.untilNextEvent = 0
	} else {
		l.untilNextEvent = math.Inf(1)
	}
	return []model.ModelMessage{{Port: port, Content: job}}, nil
}

func (l *LoadBalancer) TimeAdvance(delta float64) {
	if math.IsInf(l.untilNextEvent, 1) {
		return
	}
	l.untilNextEvent = math.Max(0, l.untilNextEvent-delta)
}

func (l *LoadBalancer) UntilNextEvent() float64 { return l.untilNextEvent }

func (l *LoadBalancer) Status() string {
	if len(l.queue) > 0 {
		return "LoadBalancing"
	}
	return "Passive"
}
