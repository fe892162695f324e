package models

import (
	"testing"

	"github.com/rfielding/devs-sim/model"
)

func TestLoadBalancerRoundRobin(t *testing.T) {
	svc := newTestServices(1)
	outs := []model.PortName{"a", "b", "c"}
	l := NewLoadBalancer("job", outs, false)

	var got []model.PortName
	for i := 0; i < 6; i++ {
		if err := l.External(svc, model.ModelMessage{Port: "job", Content: "job"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		msgs, err := l.Internal(svc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, msgs[0].Port)
	}
	want := []model.PortName{"a", "b", "c", "a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("round-robin sequence mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
