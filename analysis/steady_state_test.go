package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/devs-sim/analysis"
)

func TestSteadyStateOutputDeletesTransientPrefix(t *testing.T) {
	series := make([]float64, 0, 400)
	// A sharply decaying transient followed by a stationary tail: the
	// deletion point should land somewhere inside the transient, not at 0.
	for i := 0; i < 50; i++ {
		series = append(series, 100.0/float64(i+1))
	}
	for i := 0; i < 350; i++ {
		series = append(series, 1.0+0.01*float64(i%7))
	}
	out, err := analysis.NewSteadyStateOutput(series)
	require.NoError(t, err)
	assert.Greater(t, out.DeletionPoint(), 0)
	assert.Less(t, out.DeletionPoint(), len(series)/2)
	assert.InDelta(t, 1.03, out.Mean(), 0.2)
}

func TestSteadyStateOutputBatchCountCapped(t *testing.T) {
	series := make([]float64, 10000)
	for i := range series {
		series[i] = 1.0
	}
	out, err := analysis.NewSteadyStateOutput(series)
	require.NoError(t, err)
	assert.LessOrEqual(t, out.BatchCount(), 30)
	assert.Equal(t, out.BatchCount()*out.BatchSize()+out.DeletionPoint() <= len(series), true)
}

func TestSteadyStateOutputRejectsTooShortSeries(t *testing.T) {
	_, err := analysis.NewSteadyStateOutput([]float64{1})
	require.Error(t, err)
}

func TestSteadyStateOutputConfidenceIntervalSymmetricDegreesOfFreedom(t *testing.T) {
	series := make([]float64, 500)
	for i := range series {
		series[i] = 1.0 + 0.1*float64(i%5)
	}
	out, err := analysis.NewSteadyStateOutput(series)
	require.NoError(t, err)
	ci := out.ConfidenceIntervalMean(0.05)
	assert.InDelta(t, ci.Mean-out.Mean(), 0, 1e-9)
	width := ci.UpperBound - ci.Mean
	assert.Equal(t, width, ci.Mean-ci.LowerBound)
}
