package randvar

import (
	"strconv"

	"github.com/rfielding/devs-sim/randsource"
)

// Family tags which of the four random-variable families an AnyVariable
// carries, dispatched with a closed switch rather than an interface
// hierarchy - the same "one arm per built-in variant" shape the teacher
// uses for its own closed dispatch over formula kinds.
type Family int

const (
	FamilyContinuous Family = iota
	FamilyBoolean
	FamilyDiscrete
	FamilyIndex
)

// AnyVariable erases the specific family so a single field (e.g.
// Generator.ValueDistribution) can hold any configured random variable.
type AnyVariable struct {
	Family     Family
	Continuous ContinuousVariable
	Boolean    BooleanVariable
	Discrete   DiscreteVariable
	Index      IndexVariable
}

func FromContinuous(v ContinuousVariable) AnyVariable {
	return AnyVariable{Family: FamilyContinuous, Continuous: v}
}

func FromBoolean(v BooleanVariable) AnyVariable {
	return AnyVariable{Family: FamilyBoolean, Boolean: v}
}

func FromDiscrete(v DiscreteVariable) AnyVariable {
	return AnyVariable{Family: FamilyDiscrete, Discrete: v}
}

func FromIndex(v IndexVariable) AnyVariable {
	return AnyVariable{Family: FamilyIndex, Index: v}
}

// SampleString draws one variate and renders it as a string, suitable for
// appending to generated job content.
func (v AnyVariable) SampleString(rng *randsource.Source) (string, error) {
	switch v.Family {
	case FamilyContinuous:
		x, err := v.Continuous.Sample(rng)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case FamilyBoolean:
		b, err := v.Boolean.Sample(rng)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	case FamilyDiscrete:
		n, err := v.Discrete.Sample(rng)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(n, 10), nil
	case FamilyIndex:
		i, err := v.Index.Sample(rng)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(i), nil
	default:
		return "", paramErr("randvar.Any")
	}
}
