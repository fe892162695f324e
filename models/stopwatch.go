package models

import (
	"math"

	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/services"
)

type stopwatchMetric int

const (
	// Minimum selects the entry with the smallest stop-start duration.
	Minimum stopwatchMetric = iota
	// Maximum selects the entry with the largest stop-start duration.
	Maximum
)

type stopwatchEntry struct {
	name  string
	start *float64
	stop  *float64
}

type stopwatchPhase int

const (
	stopwatchIdle stopwatchPhase = iota
	stopwatchJobFetch
)

// Stopwatch times named intervals between start/stop messages and, on
// request, reports the name of the entry with the minimum or maximum
// elapsed duration. Flagged open question: when multiple start/stop
// messages share a name, the first matching entry is updated, so later
// messages overwrite earlier timestamps - plausibly meant for idempotent
// retries, but undocumented.
type Stopwatch struct {
	recorder

	StartPort  model.PortName
	StopPort   model.PortName
	MetricPort model.PortName
	JobPort    model.PortName
	Metric     stopwatchMetric

	entries        []stopwatchEntry
	phase          stopwatchPhase
	untilNextEvent float64
}

func NewStopwatch(startPort, stopPort, metricPort, jobPort model.PortName, metric stopwatchMetric, storeRecords bool) *Stopwatch {
	return &Stopwatch{
		recorder:       newRecorder(storeRecords),
		StartPort:      startPort,
		StopPort:       stopPort,
		MetricPort:     metricPort,
		JobPort:        jobPort,
		Metric:         metric,
		untilNextEvent: math.Inf(1),
	}
}

func (s *Stopwatch) findOrCreate(name string) *stopwatchEntry {
	for i := range s.entries {
		if s.entries[i].name == name {
			return &s.entries[i]
		}
	}
	s.entries = append(s.entries, stopwatchEntry{name: name})
	return &s.entries[len(s.entries)-1]
}

func (s *Stopwatch) External(svc *services.Services, incoming model.ModelMessage) error {
	switch incoming.Port {
	case s.StartPort:
		t := svc.GlobalTime()
		s.findOrCreate(incoming.Content).start = &t
		s.record(t, "Start", incoming.Content)
	case s.StopPort:
		t := svc.GlobalTime()
		s.findOrCreate(incoming.Content).stop = &t
		s.record(t, "Stop", incoming.Content)
	case s.MetricPort:
		s.phase = stopwatchJobFetch
		s.untilNextEvent = 0
	default:
		return model.NewError(model.KindInvalidMessage, "Stopwatch.External")
	}
	return nil
}

func (s *Stopwatch) Internal(svc *services.Services) ([]model.ModelMessage, error) {
	s.phase = stopwatchIdle
	s.untilNextEvent = math.Inf(1)

	var bestName string
	var bestDuration float64
	found := false
	for _, e := range s.entries {
		if e.start == nil || e.stop == nil {
			continue
		}
		duration := *e.stop - *e.start
		if !found {
			bestName, bestDuration, found = e.name, duration, true
			continue
		}
		if s.Metric == Minimum && duration < bestDuration {
			bestName, bestDuration = e.name, duration
		}
		if s.Metric == Maximum && duration > bestDuration {
			bestName, bestDuration = e.name, duration
		}
	}
	if !found {
		return nil, nil
	}
	s.record(svc.GlobalTime(), "Report", bestName)
	return []model.ModelMessage{{Port: s.JobPort, Content: bestName}}, nil
}

func (s *Stopwatch) TimeAdvance(delta float64) {
	if math.IsInf(s.untilNextEvent, 1) {
		return
	}
	s.untilNextEvent = math.Max(0, s.untilNextEvent-delta)
}

func (s *Stopwatch) UntilNextEvent() float64 { return s.untilNextEvent }

func (s *Stopwatch) Status() string {
	if s.phase == stopwatchJobFetch {
		return "JobFetch"
	}
	return "Idle"
}
