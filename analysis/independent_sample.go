package analysis

import (
	"math"

	"github.com/rfielding/devs-sim/model"
)

// IndependentSample summarizes a sequence of independent observations:
// sample mean, sample variance (divide-by-N convention), and a Student's-t
// confidence interval on the mean.
type IndependentSample struct {
	values   []float64
	mean     float64
	variance float64
}

// NewIndependentSample constructs a sample from the given values. Returns
// a PrerequisiteCalcError-kind error if values is empty - there is no mean
// to compute.
func NewIndependentSample(values []float64) (*IndependentSample, error) {
	if len(values) == 0 {
		return nil, model.NewError(model.KindPrerequisiteCalcError, "analysis.NewIndependentSample")
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return &IndependentSample{values: values, mean: mean, variance: variance}, nil
}

// Mean returns the sample mean.
func (s *IndependentSample) Mean() float64 { return s.mean }

// Variance returns the sample variance (divide-by-N convention).
func (s *IndependentSample) Variance() float64 { return s.variance }

// N returns the sample size.
func (s *IndependentSample) N() int { return len(s.values) }

// ConfidenceIntervalMean computes mean +/- t(alpha, N-1) * sqrt(variance/N).
// A sample of size 1 yields the degenerate interval [mean, mean].
func (s *IndependentSample) ConfidenceIntervalMean(alpha float64) ConfidenceInterval {
	n := len(s.values)
	if n == 1 {
		return ConfidenceInterval{Mean: s.mean, LowerBound: s.mean, UpperBound: s.mean}
	}
	t := StudentT(alpha, n-1)
	halfWidth := t * math.Sqrt(s.variance/float64(n))
	return ConfidenceInterval{Mean: s.mean, LowerBound: s.mean - halfWidth, UpperBound: s.mean + halfWidth}
}
