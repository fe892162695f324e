package models

import (
	"math"

	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/services"
)

type storagePhase int

const (
	storageIdle storagePhase = iota
	storageJobFetch
)

// Storage holds at most one value, latest write wins, and emits the stored
// value on request.
type Storage struct {
	recorder

	PutPort    model.PortName
	GetPort    model.PortName
	StoredPort model.PortName

	// HistoryLimit, if > 0, supplements spec.md's single-slot behavior
	// with a capacity-bounded write history (original source: storage.rs
	// keep_history). 0 (the default) preserves latest-write-wins only.
	HistoryLimit int
	History      []string

	value          *string
	phase          storagePhase
	untilNextEvent float64
}

func NewStorage(putPort, getPort, storedPort model.PortName, storeRecords bool) *Storage {
	return &Storage{
		recorder:       newRecorder(storeRecords),
		PutPort:        putPort,
		GetPort:        getPort,
		StoredPort:     storedPort,
		untilNextEvent: math.Inf(1),
	}
}

func (s *Storage) External(svc *services.Services, incoming model.ModelMessage) error {
	switch incoming.Port {
	case s.PutPort:
		content := incoming.Content
		s.value = &content
		if s.HistoryLimit > 0 {
			s.History = append(s.History, content)
			if len(s.History) > s.HistoryLimit {
				s.History = s.History[len(s.History)-s.HistoryLimit:]
			}
		}
		s.record(svc.GlobalTime(), "Arrival", incoming.Content)
	case s.GetPort:
		s.phase = storageJobFetch
		s.untilNextEvent = 0
	default:
		return model.NewError(model.KindInvalidMessage, "Storage.External")
	}
	return nil
}

func (s *Storage) Internal(svc *services.Services) ([]model.ModelMessage, error) {
	s.phase = storageIdle
	s.untilNextEvent = math.Inf(1)
	if s.value == nil {
		return nil, nil
	}
	s.record(svc.GlobalTime(), "Departure", *s.value)
	return []model.ModelMessage{{Port: s.StoredPort, Content: *s.value}}, nil
}

func (s *Storage) TimeAdvance(delta float64) {
	if math.IsInf(s.untilNextEvent, 1) {
		return
	}
	s.untilNextEvent = math.Max(0, s.untilNextEvent-delta)
}

func (s *Storage) UntilNextEvent() float64 { return s.untilNextEvent }

func (s *Storage) Status() string {
	if s.phase == storageJobFetch {
		return "JobFetch"
	}
	return "Idle"
}
