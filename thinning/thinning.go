// Package thinning implements the non-stationary acceptance-probability
// function used by the Generator atomic model. Grounded on the original
// source's evaluate_polynomial (sim/src/utils/mod.rs), which evaluates a
// polynomial via Horner's method over coefficients given highest-order
// first.
package thinning

import "github.com/rfielding/devs-sim/model"

// Function is a normalized polynomial: the caller promises
// max(Evaluate(t)) <= 1 over the intended support, so it can be used
// directly as an acceptance probability.
type Function struct {
	// Coefficients, highest order first, e.g. [2, -1, 0.5] means
	// 2t^2 - t + 0.5.
	Coefficients []float64
}

// New constructs a thinning Function from coefficients given highest order
// first.
func New(coefficients []float64) Function {
	return Function{Coefficients: coefficients}
}

// Evaluate computes the polynomial at t using Horner's method.
func (f Function) Evaluate(t float64) (float64, error) {
	if len(f.Coefficients) == 0 {
		return 0, model.NewError(model.KindEmptyPolynomial, "thinning.Evaluate")
	}
	result := 0.0
	for _, c := range f.Coefficients {
		result = result*t + c
	}
	return result, nil
}
