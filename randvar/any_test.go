package randvar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/devs-sim/randsource"
	"github.com/rfielding/devs-sim/randvar"
)

func TestAnyVariableSampleStringPerFamily(t *testing.T) {
	rng := randsource.NewSeeded(16)

	cont := randvar.FromContinuous(randvar.NewUniform(0, 1))
	s, err := cont.SampleString(rng)
	require.NoError(t, err)
	assert.NotEmpty(t, s)

	boolVar := randvar.FromBoolean(randvar.NewBernoulli(1.0))
	s, err = boolVar.SampleString(rng)
	require.NoError(t, err)
	assert.Equal(t, "true", s)

	disc := randvar.FromDiscrete(randvar.NewDiscreteUniform(1, 2))
	s, err = disc.SampleString(rng)
	require.NoError(t, err)
	assert.Equal(t, "1", s)

	idx := randvar.FromIndex(randvar.NewIndexUniform(7, 8))
	s, err = idx.SampleString(rng)
	require.NoError(t, err)
	assert.Equal(t, "7", s)
}
