package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/devs-sim/analysis"
)

func TestIndependentSampleMeanAndVariance(t *testing.T) {
	s, err := analysis.NewIndependentSample([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	assert.Equal(t, 5.0, s.Mean())
	assert.InDelta(t, 4.0, s.Variance(), 1e-9)
	assert.Equal(t, 8, s.N())
}

func TestIndependentSampleDegenerateSingleValue(t *testing.T) {
	s, err := analysis.NewIndependentSample([]float64{3.0})
	require.NoError(t, err)
	ci := s.ConfidenceIntervalMean(0.05)
	assert.Equal(t, 3.0, ci.LowerBound)
	assert.Equal(t, 3.0, ci.UpperBound)
}

func TestIndependentSampleRejectsEmpty(t *testing.T) {
	_, err := analysis.NewIndependentSample(nil)
	require.Error(t, err)
}

func TestIndependentSampleConfidenceIntervalBracketsMean(t *testing.T) {
	s, err := analysis.NewIndependentSample([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	require.NoError(t, err)
	ci := s.ConfidenceIntervalMean(0.05)
	assert.Less(t, ci.LowerBound, ci.Mean)
	assert.Greater(t, ci.UpperBound, ci.Mean)
}
