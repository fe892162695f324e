package models

import (
	"math"
	"testing"

	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/randvar"
	"github.com/rfielding/devs-sim/thinning"
)

func thinningAlwaysZero() *thinning.Function {
	f := thinning.New([]float64{0})
	return &f
}

func TestGeneratorInitialFiringIsZero(t *testing.T) {
	g := NewGenerator(randvar.NewExp(1.0), nil, "job", false)
	if g.UntilNextEvent() != 0 {
		t.Fatalf("expected initial until_next_event 0, got %v", g.UntilNextEvent())
	}
}

func TestGeneratorInternalReschedulesAndEmits(t *testing.T) {
	svc := newTestServices(1)
	g := NewGenerator(randvar.NewExp(1.0), nil, "job", true)

	msgs, err := g.Internal(svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected one emitted message, got %d", len(msgs))
	}
	if msgs[0].Port != "job" {
		t.Fatalf("expected port 'job', got %q", msgs[0].Port)
	}
	if g.UntilNextEvent() <= 0 {
		t.Fatalf("expected a positive rescheduled interdeparture, got %v", g.UntilNextEvent())
	}
	if len(g.Records()) != 1 {
		t.Fatalf("expected one recorded entry, got %d", len(g.Records()))
	}
}

func TestGeneratorExternalIsNoop(t *testing.T) {
	svc := newTestServices(1)
	g := NewGenerator(randvar.NewExp(1.0), nil, "job", false)
	before := g.UntilNextEvent()
	if err := g.External(svc, model.ModelMessage{Port: "job", Content: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.UntilNextEvent() != before {
		t.Fatalf("external transition must not change timer: before=%v after=%v", before, g.UntilNextEvent())
	}
}

func TestGeneratorTimeAdvanceNeverNegative(t *testing.T) {
	g := NewGenerator(randvar.NewExp(1.0), nil, "job", false)
	g.TimeAdvance(1e9)
	if g.UntilNextEvent() < 0 {
		t.Fatalf("timer went negative: %v", g.UntilNextEvent())
	}
}

func TestGeneratorValueDistributionAppendsValue(t *testing.T) {
	svc := newTestServices(7)
	g := NewGenerator(randvar.NewExp(1.0), nil, "job", false)
	v := randvar.FromContinuous(randvar.NewUniform(0, 1))
	g.ValueDistribution = &v

	msgs, err := g.Internal(svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msgs[0].Content == "job 1" {
		t.Fatalf("expected a value suffix appended to the content, got plain form %q", msgs[0].Content)
	}
}

func TestGeneratorThinningCanSuppressEmission(t *testing.T) {
	svc := newTestServices(3)
	g := NewGenerator(randvar.NewExp(1.0), thinningAlwaysZero(), "job", false)
	msgs, err := g.Internal(svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected thinning with constant-zero acceptance to suppress emission, got %d messages", len(msgs))
	}
	if !math.IsInf(g.UntilNextEvent(), 0) && g.UntilNextEvent() < 0 {
		t.Fatalf("unexpected negative timer after suppressed emission")
	}
}
