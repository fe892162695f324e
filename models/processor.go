package models

import (
	"math"

	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/randvar"
	"github.com/rfielding/devs-sim/services"
)

type processorPhase int

const (
	processorPassive processorPhase = iota
	processorActive
)

// Processor accepts jobs, processes them for a sampled period, and emits a
// processed job. The queue is FIFO, capacity 0 to unbounded. The two-step
// release/begin pattern (release on one firing, begin the next job's
// service on the following firing) is intentional per the contract: it
// gives the simulator a chance to deliver queued jobs into the message
// stream between units of service.
type Processor struct {
	recorder

	ServiceTime    randvar.ContinuousVariable
	QueueCapacity  int // NewProcessor stores "unbounded" as math.MaxInt; a 0 set here means no job fits
	JobPort        model.PortName
	ProcessedPort  model.PortName

	phase          processorPhase
	untilNextEvent float64
	queue          []string
	activeSince    float64
	busyTime       float64
}

// NewProcessor constructs a Processor. A zero or negative queueCapacity
// means unbounded.
func NewProcessor(serviceTime randvar.ContinuousVariable, queueCapacity int, jobPort, processedPort model.PortName, storeRecords bool) *Processor {
	if queueCapacity <= 0 {
		queueCapacity = math.MaxInt
	}
	return &Processor{
		recorder:       newRecorder(storeRecords),
		ServiceTime:    serviceTime,
		QueueCapacity:  queueCapacity,
		JobPort:        jobPort,
		ProcessedPort:  processedPort,
		phase:          processorPassive,
		untilNextEvent: math.Inf(1),
	}
}

// BusyTime is a pure accessor summing elapsed Active-phase duration,
// supplemented from the original source's utilization-style introspection;
// it never affects EXT/INT behavior.
func (p *Processor) BusyTime() float64 { return p.busyTime }

func (p *Processor) External(svc *services.Services, incoming model.ModelMessage) error {
	if incoming.Port != p.JobPort {
		return model.NewError(model.KindInvalidMessage, "Processor.External")
	}
	empty := len(p.queue) == 0
	full := len(p.queue) == p.QueueCapacity
	switch {
	case empty && full:
		// Capacity zero: a processor that can never hold a job.
		return model.NewError(model.KindInvalidModelState, "Processor.External")
	case !empty && full:
		p.record(svc.GlobalTime(), "Drop", incoming.Content)
	case empty && !full:
		p.queue = append(p.queue, incoming.Content)
		p.phase = processorActive
		s, err := p.ServiceTime.Sample(svc.Rng())
		if err != nil {
			return err
		}
		p.untilNextEvent = s
		p.activeSince = svc.GlobalTime()
		p.record(svc.GlobalTime(), "Arrival", incoming.Content)
		p.record(svc.GlobalTime(), "Processing Start", incoming.Content)
	default: // !empty && !full
		p.queue = append(p.queue, incoming.Content)
		p.record(svc.GlobalTime(), "Arrival", incoming.Content)
	}
	return nil
}

func (p *Processor) Internal(svc *services.Services) ([]model.ModelMessage, error) {
	switch {
	case p.phase == processorActive:
		job := p.queue[0]
		p.queue = p.queue[1:]
		p.busyTime += svc.GlobalTime() - p.activeSince
		p.phase = processorPassive
		p.untilNextEvent = 0
		p.record(svc.GlobalTime(), "Departure", job)
		return []model.ModelMessage{{Port: p.ProcessedPort, Content: job}}, nil
	case len(p.queue) > 0:
		p.phase = processorActive
		s, err := p.ServiceTime.Sample(svc.Rng())
		if err != nil {
			return nil, err
		}
		p.untilNextEvent = s
		p.activeSince = svc.GlobalTime()
		p.record(svc.GlobalTime(), "Processing Start", p.queue[0])
		return nil, nil
	default:
		p.untilNextEvent = math.Inf(1)
		return nil, nil
	}
}

func (p *Processor) TimeAdvance(delta float64) {
	if math.IsInf(p.untilNextEvent, 1) {
		return
	}
	p.untilNextEvent = math.Max(0, p.untilNextEvent-delta)
}

func (p *Processor) UntilNextEvent() float64 { return p.untilNextEvent }

func (p *Processor) Status() string {
	if p.phase == processorActive {
		return "Processing"
	}
	return "Passive"
}
