package models

import (
	"testing"

	"github.com/rfielding/devs-sim/model"
)

func TestExclusiveGatewaySingleDestinationPerFiring(t *testing.T) {
	svc := newTestServices(4)
	e := NewExclusiveGateway(
		[]model.PortName{"in1", "in2"},
		[]model.PortName{"a", "b"},
		[]float64{1, 1},
		false,
	)
	if err := e.External(svc, model.ModelMessage{Port: "in1", Content: "job 1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.External(svc, model.ModelMessage{Port: "in2", Content: "job 2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msgs, err := e.Internal(svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected both queued jobs to route together, got %d", len(msgs))
	}
	if msgs[0].Port != msgs[1].Port {
		t.Fatalf("expected a single destination per firing, got %v and %v", msgs[0].Port, msgs[1].Port)
	}
}

func TestExclusiveGatewayRejectsUnknownInputPort(t *testing.T) {
	svc := newTestServices(1)
	e := NewExclusiveGateway([]model.PortName{"in1"}, []model.PortName{"a"}, []float64{1}, false)
	if err := e.External(svc, model.ModelMessage{Port: "unknown"}); err == nil {
		t.Fatal("expected an error for an unrecognized input port")
	}
}
