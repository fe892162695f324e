package models

import (
	"testing"

	"github.com/rfielding/devs-sim/model"
)

func TestGateDropsWhileClosed(t *testing.T) {
	svc := newTestServices(1)
	g := NewGate("job", "activate", "deactivate", "out", true)
	if err := g.External(svc, model.ModelMessage{Port: "deactivate"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.External(svc, model.ModelMessage{Port: "job", Content: "job 1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records := g.Records()
	if records[len(records)-1].Action != "Drop" {
		t.Fatalf("expected the job to be dropped while closed, got %+v", records[len(records)-1])
	}
}

func TestGatePassesThenPassivatesAfterFiring(t *testing.T) {
	svc := newTestServices(1)
	g := NewGate("job", "activate", "deactivate", "out", false)
	if err := g.External(svc, model.ModelMessage{Port: "job", Content: "job 1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.UntilNextEvent() != 0 {
		t.Fatalf("expected an open gate to release immediately, got %v", g.UntilNextEvent())
	}
	msgs, err := g.Internal(svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Port != "out" {
		t.Fatalf("expected release on the out port, got %+v", msgs)
	}
	if g.Status() != "Open" {
		t.Fatalf("expected the gate to reopen and passivate after firing, got status %q", g.Status())
	}
}
