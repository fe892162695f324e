package models

import (
	"math"

	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/services"
)

type batcherPhase int

const (
	batcherPassive batcherPhase = iota
	batcherBatching
	batcherRelease
)

// Batcher accumulates jobs until either a maximum batch time or a maximum
// batch size is reached, then releases the accumulated batch.
type Batcher struct {
	recorder

	MaxBatchTime float64
	MaxBatchSize int
	JobPort      model.PortName
	BatchPort    model.PortName

	phase          batcherPhase
	untilNextEvent float64
	queue          []string
}

func NewBatcher(maxBatchTime float64, maxBatchSize int, jobPort, batchPort model.PortName, storeRecords bool) *Batcher {
	return &Batcher{
		recorder:       newRecorder(storeRecords),
		MaxBatchTime:   maxBatchTime,
		MaxBatchSize:   maxBatchSize,
		JobPort:        jobPort,
		BatchPort:      batchPort,
		phase:          batcherPassive,
		untilNextEvent: math.Inf(1),
	}
}

func (b *Batcher) External(svc *services.Services, incoming model.ModelMessage) error {
	if incoming.Port != b.JobPort {
		return model.NewError(model.KindInvalidMessage, "Batcher.External")
	}
	newLen := len(b.queue) + 1
	if b.phase == batcherRelease && newLen < b.MaxBatchSize {
		return model.NewError(model.KindInvalidModelState, "Batcher.External")
	}
	b.queue = append(b.queue, incoming.Content)
	b.record(svc.GlobalTime(), "Arrival", incoming.Content)
	switch {
	case newLen < b.MaxBatchSize:
		if b.phase == batcherPassive {
			b.phase = batcherBatching
			b.untilNextEvent = b.MaxBatchTime
		}
	default: // newLen >= MaxBatchSize
		b.phase = batcherRelease
		b.untilNextEvent = 0
	}
	return nil
}

func (b *Batcher) Internal(svc *services.Services) ([]model.ModelMessage, error) {
	n := b.MaxBatchSize
	l := len(b.queue)
	var released []string
	switch {
	case l <= n:
		released = b.queue
		b.queue = nil
		b.phase = batcherPassive
		b.untilNextEvent = math.Inf(1)
	case l >= 2*n:
		released = b.queue[:n]
		b.queue = b.queue[n:]
		b.phase = batcherRelease
		b.untilNextEvent = 0
	default:
		released = b.queue[:n]
		b.queue = b.queue[n:]
		b.phase = batcherBatching
		b.untilNextEvent = b.MaxBatchTime
	}
	out := make([]model.ModelMessage, 0, len(released))
	for _, job := range released {
		b.record(svc.GlobalTime(), "Departure", job)
		out = append(out, model.ModelMessage{Port: b.BatchPort, Content: job})
	}
	return out, nil
}

func (b *Batcher) TimeAdvance(delta float64) {
	if math.IsInf(b.untilNextEvent, 1) {
		return
	}
	b.untilNextEvent = math.Max(0, b.untilNextEvent-delta)
}

func (b *Batcher) UntilNextEvent() float64 { return b.untilNextEvent }

func (b *Batcher) Status() string {
	switch b.phase {
	case batcherBatching:
		return "Batching"
	case batcherRelease:
		return "Release"
	default:
		return "Passive"
	}
}
