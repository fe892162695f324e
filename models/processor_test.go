package models

import (
	"math"
	"testing"

	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/randvar"
)

func TestProcessorPassiveUntilFirstArrival(t *testing.T) {
	p := NewProcessor(randvar.NewExp(1.0), 0, "job", "processedJob", false)
	if !math.IsInf(p.UntilNextEvent(), 1) {
		t.Fatalf("expected passive processor, got until_next_event=%v", p.UntilNextEvent())
	}
}

func TestProcessorTwoStepReleaseBeginPattern(t *testing.T) {
	svc := newTestServices(2)
	p := NewProcessor(randvar.NewExp(1.0), 0, "job", "processedJob", true)

	if err := p.External(svc, model.ModelMessage{Port: "job", Content: "job 1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.External(svc, model.ModelMessage{Port: "job", Content: "job 2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs, err := p.Internal(svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Content != "job 1" {
		t.Fatalf("expected release of job 1, got %+v", msgs)
	}
	if p.UntilNextEvent() != 0 {
		t.Fatalf("expected the following firing scheduled immediately to begin the next job, got %v", p.UntilNextEvent())
	}

	msgs, err = p.Internal(svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected the begin-service firing to emit nothing, got %+v", msgs)
	}
}

func TestProcessorZeroCapacityRejectsArrival(t *testing.T) {
	svc := newTestServices(2)
	p := NewProcessor(randvar.NewExp(1.0), 1, "job", "processedJob", false)
	p.QueueCapacity = 0 // force the empty-and-full contradiction state directly

	if err := p.External(svc, model.ModelMessage{Port: "job", Content: "job 1"}); err == nil {
		t.Fatal("expected an error for a processor with zero capacity")
	}
}

func TestProcessorDropsOnFullQueue(t *testing.T) {
	svc := newTestServices(2)
	p := NewProcessor(randvar.NewExp(1.0), 1, "job", "processedJob", true)

	if err := p.External(svc, model.ModelMessage{Port: "job", Content: "job 1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.External(svc, model.ModelMessage{Port: "job", Content: "job 2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records := p.Records()
	if records[len(records)-1].Action != "Drop" {
		t.Fatalf("expected the second arrival to be dropped, last record was %+v", records[len(records)-1])
	}
}

func TestProcessorBusyTimeAccumulates(t *testing.T) {
	svc := newTestServices(2)
	p := NewProcessor(randvar.NewExp(1.0), 0, "job", "processedJob", false)
	if err := p.External(svc, model.ModelMessage{Port: "job", Content: "job 1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc.SetGlobalTime(svc.GlobalTime() + p.UntilNextEvent())
	if _, err := p.Internal(svc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.BusyTime() <= 0 {
		t.Fatalf("expected positive busy time after one service period, got %v", p.BusyTime())
	}
}
