package randvar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/devs-sim/randsource"
	"github.com/rfielding/devs-sim/randvar"
)

func TestWeightedIndexRespectsProportions(t *testing.T) {
	rng := randsource.NewSeeded(13)
	v := randvar.NewWeightedIndex([]float64{1, 0, 3})
	counts := map[int]int{}
	n := 20000
	for i := 0; i < n; i++ {
		k, err := v.Sample(rng)
		require.NoError(t, err)
		counts[k]++
	}
	assert.Zero(t, counts[1], "zero-weight index must never be selected")
	ratio := float64(counts[0]) / float64(counts[2])
	assert.InDelta(t, 1.0/3.0, ratio, 0.1)
}

func TestIndexUniformStaysWithinBounds(t *testing.T) {
	rng := randsource.NewSeeded(14)
	v := randvar.NewIndexUniform(2, 5)
	for i := 0; i < 1000; i++ {
		k, err := v.Sample(rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, k, 2)
		assert.Less(t, k, 5)
	}
}

func TestWeightedIndexRejectsAllZeroWeights(t *testing.T) {
	_, err := randvar.NewWeightedIndex([]float64{0, 0}).Sample(randsource.NewSeeded(15))
	require.Error(t, err)
}
