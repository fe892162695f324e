package models

import (
	"testing"

	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/randvar"
)

func TestStochasticGateAlwaysPasses(t *testing.T) {
	svc := newTestServices(1)
	g := NewStochasticGate(1.0, "job", "out", false)
	if err := g.External(svc, model.ModelMessage{Port: "job", Content: "job 1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msgs, err := g.Internal(svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected p=1.0 to always pass, got %+v", msgs)
	}
}

func TestStochasticGateAlwaysBlocks(t *testing.T) {
	svc := newTestServices(1)
	g := NewStochasticGate(0.0, "job", "out", true)
	if err := g.External(svc, model.ModelMessage{Port: "job", Content: "job 1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msgs, err := g.Internal(svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected p=0.0 to always block, got %+v", msgs)
	}
	records := g.Records()
	if records[len(records)-1].Action != "Block" {
		t.Fatalf("expected a Block record, got %+v", records[len(records)-1])
	}
}

func TestStochasticGateDecisionLatchedAtArrival(t *testing.T) {
	svc := newTestServices(1)
	g := NewStochasticGate(1.0, "job", "out", false)
	if err := g.External(svc, model.ModelMessage{Port: "job", Content: "job 1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.PassProbability = randvar.NewBernoulli(0.0)
	msgs, err := g.Internal(svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatal("expected the latched arrival-time decision to still pass even though the distribution changed afterward")
	}
}
