package thinning_test

import (
	"testing"

	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/thinning"
)

func TestEvaluateHornersMethod(t *testing.T) {
	// 2t^2 - t + 0.5 at t=2 -> 8 - 2 + 0.5 = 6.5
	f := thinning.New([]float64{2, -1, 0.5})
	got, err := f.Evaluate(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 6.5 {
		t.Fatalf("expected 6.5, got %v", got)
	}
}

func TestEvaluateConstant(t *testing.T) {
	f := thinning.New([]float64{0.75})
	got, err := f.Evaluate(100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.75 {
		t.Fatalf("expected constant polynomial to ignore t, got %v", got)
	}
}

func TestEvaluateEmptyPolynomialErrors(t *testing.T) {
	f := thinning.New(nil)
	_, err := f.Evaluate(1)
	if err == nil {
		t.Fatal("expected an error for an empty polynomial")
	}
	merr, ok := err.(*model.Error)
	if !ok {
		t.Fatalf("expected a *model.Error, got %T", err)
	}
	if merr.Kind != model.KindEmptyPolynomial {
		t.Fatalf("expected KindEmptyPolynomial, got %v", merr.Kind)
	}
}
