package analysis

import (
	"math"

	"github.com/rfielding/devs-sim/model"
)

// SteadyStateOutput produces a steady-state mean estimate from a single
// time series by deleting an initialization-bias prefix (via the MSER
// heuristic) and then applying non-overlapping batch means to the
// remaining tail.
type SteadyStateOutput struct {
	deletionPoint int
	batchCount    int
	batchSize     int
	batchMeans    []float64
	grandMean     float64
	grandVariance float64
}

// NewSteadyStateOutput runs the full deletion-point-selection plus
// batch-means pipeline over series.
func NewSteadyStateOutput(series []float64) (*SteadyStateOutput, error) {
	n := len(series)
	if n < 2 {
		return nil, model.NewError(model.KindPrerequisiteCalcError, "analysis.NewSteadyStateOutput")
	}

	deletion := mserDeletionPoint(series)

	tail := series[deletion:]
	remaining := len(tail)
	batchCount := IntSqrt(remaining)
	if batchCount > 30 {
		batchCount = 30
	}
	if batchCount < 1 {
		return nil, model.NewError(model.KindPrerequisiteCalcError, "analysis.NewSteadyStateOutput")
	}
	batchSize := remaining / batchCount
	if batchSize < 1 {
		return nil, model.NewError(model.KindPrerequisiteCalcError, "analysis.NewSteadyStateOutput")
	}

	// Trim any additional leading samples so exactly batchCount*batchSize
	// remain.
	keep := batchCount * batchSize
	trimmed := tail[len(tail)-keep:]

	means := make([]float64, batchCount)
	for b := 0; b < batchCount; b++ {
		batch := trimmed[b*batchSize : (b+1)*batchSize]
		sum := 0.0
		for _, v := range batch {
			sum += v
		}
		means[b] = sum / float64(batchSize)
	}

	grandSum := 0.0
	for _, m := range means {
		grandSum += m
	}
	grandMean := grandSum / float64(batchCount)

	grandVariance := 0.0
	for _, m := range means {
		d := m - grandMean
		grandVariance += d * d
	}
	grandVariance /= float64(batchCount)

	return &SteadyStateOutput{
		deletionPoint: deletion,
		batchCount:    batchCount,
		batchSize:     batchSize,
		batchMeans:    means,
		grandMean:     grandMean,
		grandVariance: grandVariance,
	}, nil
}

// mserDeletionPoint implements the Minimum-Standard-Error-of-the-Reduced-mean
// heuristic: scanning backwards from the penultimate index, maintain
// running sums over the retained tail and score each candidate deletion
// point d by mser[d] = Q - S^2/(N-d)^3, then take the argmin over the
// first half of candidates.
func mserDeletionPoint(series []float64) int {
	n := len(series)
	mser := make([]float64, n-1) // indices 0..n-2
	s, q := 0.0, 0.0
	for d := n - 2; d >= 0; d-- {
		s += series[d+1]
		q += series[d+1] * series[d+1]
		count := float64(n - d)
		mser[d] = q - s*s/(count*count*count)
	}
	limit := n / 2
	if limit < 1 {
		limit = 1
	}
	best := 0
	bestVal := mser[0]
	for d := 1; d < limit; d++ {
		if mser[d] < bestVal {
			best, bestVal = d, mser[d]
		}
	}
	return best
}

// DeletionPoint returns the index of the first retained sample after
// initialization-bias deletion.
func (s *SteadyStateOutput) DeletionPoint() int { return s.deletionPoint }

// BatchCount returns the number of non-overlapping batches used.
func (s *SteadyStateOutput) BatchCount() int { return s.batchCount }

// BatchSize returns the size of each non-overlapping batch.
func (s *SteadyStateOutput) BatchSize() int { return s.batchSize }

// Mean returns the grand mean across batch means.
func (s *SteadyStateOutput) Mean() float64 { return s.grandMean }

// Variance returns the variance across batch means (divide-by-k
// convention).
func (s *SteadyStateOutput) Variance() float64 { return s.grandVariance }

// ConfidenceIntervalMean computes mean +/- t(alpha, k-1) * sqrt(variance/k),
// using the same degrees of freedom for both bounds. The original Rust
// source computes the lower bound with t(alpha, k) and the upper bound
// with t(alpha, k-1) - an inconsistency not reflected in the symmetric
// description this engine follows; see the design notes for that decision.
func (s *SteadyStateOutput) ConfidenceIntervalMean(alpha float64) ConfidenceInterval {
	if s.batchCount == 1 {
		return ConfidenceInterval{Mean: s.grandMean, LowerBound: s.grandMean, UpperBound: s.grandMean}
	}
	t := StudentT(alpha, s.batchCount-1)
	halfWidth := t * math.Sqrt(s.grandVariance/float64(s.batchCount))
	return ConfidenceInterval{Mean: s.grandMean, LowerBound: s.grandMean - halfWidth, UpperBound: s.grandMean + halfWidth}
}
