package randvar

import "github.com/rfielding/devs-sim/randsource"

// BooleanVariable is the single boolean-family distribution: Bernoulli(p).
type BooleanVariable struct {
	P float64
}

func NewBernoulli(p float64) BooleanVariable {
	return BooleanVariable{P: p}
}

// Sample draws true with probability P.
func (v BooleanVariable) Sample(rng *randsource.Source) (bool, error) {
	if v.P < 0 || v.P > 1 {
		return false, paramErr("randvar.Bernoulli")
	}
	return rng.Float64() < v.P, nil
}
