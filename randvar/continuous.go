package randvar

import (
	"math"

	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/randsource"
)

// ContinuousKind tags which continuous distribution a ContinuousVariable
// carries.
type ContinuousKind int

const (
	Beta ContinuousKind = iota
	Exp
	Gamma
	LogNormal
	Normal
	Triangular
	ContinuousUniform
	Weibull
)

// ContinuousVariable is the tagged-union continuous random variable. Only
// the fields relevant to Kind are meaningful; construct with the NewXxx
// helpers rather than populating this struct by hand.
type ContinuousVariable struct {
	Kind ContinuousKind

	Alpha, BetaParam float64 // Beta(alpha, beta)
	Lambda           float64 // Exp(lambda)
	Shape, Scale     float64 // Gamma(shape, scale), Weibull(shape, scale)
	Mu, Sigma        float64 // LogNormal(mu, sigma) of the underlying normal
	Mean, StdDev     float64 // Normal(mean, stddev)
	Min, Mode, Max   float64 // Triangular(min, mode, max), Uniform(min, max)
}

func NewBeta(alpha, beta float64) ContinuousVariable {
	return ContinuousVariable{Kind: Beta, Alpha: alpha, BetaParam: beta}
}

func NewExp(lambda float64) ContinuousVariable {
	return ContinuousVariable{Kind: Exp, Lambda: lambda}
}

func NewGamma(shape, scale float64) ContinuousVariable {
	return ContinuousVariable{Kind: Gamma, Shape: shape, Scale: scale}
}

func NewLogNormal(mu, sigma float64) ContinuousVariable {
	return ContinuousVariable{Kind: LogNormal, Mu: mu, Sigma: sigma}
}

func NewNormal(mean, stddev float64) ContinuousVariable {
	return ContinuousVariable{Kind: Normal, Mean: mean, StdDev: stddev}
}

func NewTriangular(min, mode, max float64) ContinuousVariable {
	return ContinuousVariable{Kind: Triangular, Min: min, Mode: mode, Max: max}
}

func NewUniform(min, max float64) ContinuousVariable {
	return ContinuousVariable{Kind: ContinuousUniform, Min: min, Max: max}
}

func NewWeibull(shape, scale float64) ContinuousVariable {
	return ContinuousVariable{Kind: Weibull, Shape: shape, Scale: scale}
}

// Sample draws a single variate, reporting a DistributionParamError-kind
// *model.Error when the configured parameters are out of domain.
func (v ContinuousVariable) Sample(rng *randsource.Source) (float64, error) {
	switch v.Kind {
	case Beta:
		if v.Alpha <= 0 || v.BetaParam <= 0 {
			return 0, paramErr("randvar.Beta")
		}
		x := sampleGamma(rng, v.Alpha, 1)
		y := sampleGamma(rng, v.BetaParam, 1)
		return x / (x + y), nil
	case Exp:
		if v.Lambda <= 0 {
			return 0, paramErr("randvar.Exp")
		}
		return rng.ExpFloat64() / v.Lambda, nil
	case Gamma:
		if v.Shape <= 0 || v.Scale <= 0 {
			return 0, paramErr("randvar.Gamma")
		}
		return sampleGamma(rng, v.Shape, v.Scale), nil
	case LogNormal:
		if v.Sigma <= 0 {
			return 0, paramErr("randvar.LogNormal")
		}
		return math.Exp(v.Mu + v.Sigma*rng.NormFloat64()), nil
	case Normal:
		if v.StdDev <= 0 {
			return 0, paramErr("randvar.Normal")
		}
		return v.Mean + v.StdDev*rng.NormFloat64(), nil
	case Triangular:
		if !(v.Min <= v.Mode && v.Mode <= v.Max) || v.Min == v.Max {
			return 0, paramErr("randvar.Triangular")
		}
		return sampleTriangular(rng, v.Min, v.Mode, v.Max), nil
	case ContinuousUniform:
		if v.Max <= v.Min {
			return 0, paramErr("randvar.Uniform")
		}
		return v.Min + (v.Max-v.Min)*rng.Float64(), nil
	case Weibull:
		if v.Shape <= 0 || v.Scale <= 0 {
			return 0, paramErr("randvar.Weibull")
		}
		u := rng.Float64()
		for u == 0 {
			u = rng.Float64()
		}
		return v.Scale * math.Pow(-math.Log(u), 1/v.Shape), nil
	default:
		return 0, paramErr("randvar.Continuous")
	}
}

// sampleGamma implements the Marsaglia-Tsang method for shape >= 1, boosted
// via the u^(1/shape) transform (Gamma(shape+1) * U^(1/shape) ~ Gamma(shape))
// for 0 < shape < 1.
func sampleGamma(rng *randsource.Source, shape, scale float64) float64 {
	if shape < 1 {
		u := rng.Float64()
		for u == 0 {
			u = rng.Float64()
		}
		return sampleGamma(rng, shape+1, scale) * math.Pow(u, 1/shape)
	}
	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)
	for {
		x := rng.NormFloat64()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := rng.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v * scale
		}
	}
}

// sampleTriangular uses the standard inverse-CDF construction for the
// triangular distribution.
func sampleTriangular(rng *randsource.Source, min, mode, max float64) float64 {
	u := rng.Float64()
	fc := (mode - min) / (max - min)
	if u < fc {
		return min + math.Sqrt(u*(max-min)*(mode-min))
	}
	return max - math.Sqrt((1-u)*(max-min)*(max-mode))
}

func paramErr(op string) error {
	return model.NewError(model.KindDistributionParamError, op)
}
