package randvar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/devs-sim/randsource"
	"github.com/rfielding/devs-sim/randvar"
)

func TestBernoulliConvergesToP(t *testing.T) {
	rng := randsource.NewSeeded(13)
	v := randvar.NewBernoulli(0.3)
	trues := 0
	n := sampleSize
	for i := 0; i < n; i++ {
		x, err := v.Sample(rng)
		require.NoError(t, err)
		if x {
			trues++
		}
	}
	proportion := float64(trues) / float64(n)
	assert.InDelta(t, 0.3, proportion, 0.02)
}

func TestBernoulliRejectsOutOfDomainP(t *testing.T) {
	_, err := randvar.NewBernoulli(-0.1).Sample(randsource.NewSeeded(14))
	require.Error(t, err)
	_, err = randvar.NewBernoulli(1.1).Sample(randsource.NewSeeded(14))
	require.Error(t, err)
}
