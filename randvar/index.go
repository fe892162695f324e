package randvar

import "github.com/rfielding/devs-sim/randsource"

// IndexKind tags which index distribution an IndexVariable carries.
type IndexKind int

const (
	IndexUniform IndexKind = iota
	WeightedIndex
)

// IndexVariable selects a non-negative integer index, for example to pick
// an output port among several candidates.
type IndexVariable struct {
	Kind       IndexKind
	Min, Max   int       // IndexUniform [min, max)
	Weights    []float64 // WeightedIndex
}

func NewIndexUniform(min, max int) IndexVariable {
	return IndexVariable{Kind: IndexUniform, Min: min, Max: max}
}

func NewWeightedIndex(weights []float64) IndexVariable {
	return IndexVariable{Kind: WeightedIndex, Weights: weights}
}

// Sample draws a single index.
func (v IndexVariable) Sample(rng *randsource.Source) (int, error) {
	switch v.Kind {
	case IndexUniform:
		if v.Max <= v.Min {
			return 0, paramErr("randvar.IndexUniform")
		}
		return v.Min + rng.Intn(v.Max-v.Min), nil
	case WeightedIndex:
		if len(v.Weights) == 0 {
			return 0, paramErr("randvar.WeightedIndex")
		}
		total := 0.0
		for _, w := range v.Weights {
			if w < 0 {
				return 0, paramErr("randvar.WeightedIndex")
			}
			total += w
		}
		if total <= 0 {
			return 0, paramErr("randvar.WeightedIndex")
		}
		target := rng.Float64() * total
		running := 0.0
		for i, w := range v.Weights {
			running += w
			if target < running {
				return i, nil
			}
		}
		return len(v.Weights) - 1, nil
	default:
		return 0, paramErr("randvar.Index")
	}
}
