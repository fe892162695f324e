package models

import (
	"fmt"
	"math"

	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/randvar"
	"github.com/rfielding/devs-sim/services"
	"github.com/rfielding/devs-sim/thinning"
)

// Generator produces an unbounded sequence of labeled jobs at stochastic
// interarrivals. It receives no meaningful input - external transitions are
// a no-op.
type Generator struct {
	recorder

	// InterdepartureTime is sampled once per job to decide the time until
	// the next generation.
	InterdepartureTime randvar.ContinuousVariable
	// Thinning, if set, is evaluated against global time as a rejection
	// acceptance probability for non-stationary generation.
	Thinning *thinning.Function
	// ValueDistribution, if set, is sampled once per job and appended to
	// the emitted content as "<port> <counter> <value>" instead of the
	// plain "<port> <counter>" form. Supplemented from the original
	// source's generator.rs message_value field.
	ValueDistribution *randvar.AnyVariable

	JobPort model.PortName

	untilNextEvent float64
	jobCounter     uint64
}

// NewGenerator constructs a Generator whose first internal firing is due
// immediately: until_next_event is 0 at construction, matching the
// original source's initial Run event.
func NewGenerator(interdeparture randvar.ContinuousVariable, thin *thinning.Function, jobPort model.PortName, storeRecords bool) *Generator {
	return &Generator{
		recorder:            newRecorder(storeRecords),
		InterdepartureTime:  interdeparture,
		Thinning:            thin,
		JobPort:             jobPort,
		untilNextEvent:      0,
	}
}

func (g *Generator) External(_ *services.Services, _ model.ModelMessage) error {
	return nil
}

func (g *Generator) Internal(svc *services.Services) ([]model.ModelMessage, error) {
	tau, err := g.InterdepartureTime.Sample(svc.Rng())
	if err != nil {
		return nil, err
	}
	g.untilNextEvent = tau

	emit := true
	if g.Thinning != nil {
		threshold, err := g.Thinning.Evaluate(svc.GlobalTime())
		if err != nil {
			return nil, err
		}
		emit = svc.Rng().Float64() < threshold
	}
	if !emit {
		return nil, nil
	}

	g.jobCounter++
	content := fmt.Sprintf("%s %d", g.JobPort, g.jobCounter)
	if g.ValueDistribution != nil {
		value, err := g.ValueDistribution.SampleString(svc.Rng())
		if err != nil {
			return nil, err
		}
		content = fmt.Sprintf("%s %d %s", g.JobPort, g.jobCounter, value)
	}
	g.record(svc.GlobalTime(), "Generation", content)
	return []model.ModelMessage{{Port: g.JobPort, Content: content}}, nil
}

func (g *Generator) TimeAdvance(delta float64) {
	g.untilNextEvent = math.Max(0, g.untilNextEvent-delta)
}

func (g *Generator) UntilNextEvent() float64 { return g.untilNextEvent }

func (g *Generator) Status() string { return fmt.Sprintf("Generating %ss", g.JobPort) }
