package randvar

import (
	"math"

	"github.com/rfielding/devs-sim/randsource"
)

// DiscreteKind tags which discrete (unsigned integer) distribution a
// DiscreteVariable carries.
type DiscreteKind int

const (
	Geometric DiscreteKind = iota
	Poisson
	DiscreteUniform
)

// DiscreteVariable is the tagged-union discrete random variable.
type DiscreteVariable struct {
	Kind         DiscreteKind
	P            float64 // Geometric(p)
	Lambda       float64 // Poisson(lambda)
	Min, Max     uint64  // DiscreteUniform [min, max)
}

func NewGeometric(p float64) DiscreteVariable {
	return DiscreteVariable{Kind: Geometric, P: p}
}

func NewPoisson(lambda float64) DiscreteVariable {
	return DiscreteVariable{Kind: Poisson, Lambda: lambda}
}

func NewDiscreteUniform(min, max uint64) DiscreteVariable {
	return DiscreteVariable{Kind: DiscreteUniform, Min: min, Max: max}
}

// Sample draws a single unsigned-integer variate.
func (v DiscreteVariable) Sample(rng *randsource.Source) (uint64, error) {
	switch v.Kind {
	case Geometric:
		if v.P <= 0 || v.P > 1 {
			return 0, paramErr("randvar.Geometric")
		}
		if v.P == 1 {
			return 0, nil
		}
		u := rng.Float64()
		for u == 0 {
			u = rng.Float64()
		}
		k := math.Log(u) / math.Log(1-v.P)
		return uint64(math.Floor(k)), nil
	case Poisson:
		if v.Lambda <= 0 {
			return 0, paramErr("randvar.Poisson")
		}
		return knuthPoisson(rng, v.Lambda), nil
	case DiscreteUniform:
		if v.Max <= v.Min {
			return 0, paramErr("randvar.Uniform")
		}
		span := v.Max - v.Min
		return v.Min + uint64(rng.Intn(int(span))), nil
	default:
		return 0, paramErr("randvar.Discrete")
	}
}

// knuthPoisson implements Knuth's product-of-uniforms algorithm. Adequate
// for the moderate lambda values this engine targets (job-generation
// counts); large-lambda callers should prefer a normal approximation, which
// this package does not provide.
func knuthPoisson(rng *randsource.Source, lambda float64) uint64 {
	l := math.Exp(-lambda)
	k := uint64(0)
	p := 1.0
	for {
		k++
		p *= rng.Float64()
		if p <= l {
			return k - 1
		}
	}
}
