package config

import (
	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/randvar"
)

// decodeContinuous decodes a tagged-union continuous random variable value,
// e.g. {"exp": {"lambda": 0.5}} or {"uniform": {"min": 0, "max": 1}}.
func decodeContinuous(raw any) (randvar.ContinuousVariable, error) {
	tag, params, err := singleTag(raw)
	if err != nil {
		return randvar.ContinuousVariable{}, err
	}
	switch tag {
	case "beta":
		return randvar.NewBeta(paramFloat(params, "alpha"), paramFloat(params, "beta")), nil
	case "exp":
		return randvar.NewExp(paramFloat(params, "lambda")), nil
	case "gamma":
		return randvar.NewGamma(paramFloat(params, "shape"), paramFloat(params, "scale")), nil
	case "logNormal":
		return randvar.NewLogNormal(paramFloat(params, "mu"), paramFloat(params, "sigma")), nil
	case "normal":
		return randvar.NewNormal(paramFloat(params, "mean"), paramFloat(params, "stdDev")), nil
	case "triangular":
		return randvar.NewTriangular(paramFloat(params, "min"), paramFloat(params, "mode"), paramFloat(params, "max")), nil
	case "uniform":
		return randvar.NewUniform(paramFloat(params, "min"), paramFloat(params, "max")), nil
	case "weibull":
		return randvar.NewWeibull(paramFloat(params, "shape"), paramFloat(params, "scale")), nil
	default:
		return randvar.ContinuousVariable{}, model.NewError(model.KindSerializationError, "config.decodeContinuous")
	}
}

// decodeIndex decodes a tagged-union index random variable value, e.g.
// {"weightedIndex": {"weights": [6,3,1]}}.
func decodeIndex(raw any) (randvar.IndexVariable, error) {
	tag, params, err := singleTag(raw)
	if err != nil {
		return randvar.IndexVariable{}, err
	}
	switch tag {
	case "uniform":
		return randvar.NewIndexUniform(int(paramFloat(params, "min")), int(paramFloat(params, "max"))), nil
	case "weightedIndex":
		weights, _ := params["weights"].([]any)
		ws := make([]float64, 0, len(weights))
		for _, w := range weights {
			switch n := w.(type) {
			case float64:
				ws = append(ws, n)
			case int:
				ws = append(ws, float64(n))
			}
		}
		return randvar.NewWeightedIndex(ws), nil
	default:
		return randvar.IndexVariable{}, model.NewError(model.KindSerializationError, "config.decodeIndex")
	}
}

// singleTag unwraps a one-key tagged-union map into (tag, paramsMap).
func singleTag(raw any) (string, map[string]any, error) {
	m, ok := raw.(map[string]any)
	if !ok || len(m) != 1 {
		return "", nil, model.NewError(model.KindSerializationError, "config.singleTag")
	}
	for k, v := range m {
		params, _ := v.(map[string]any)
		return k, params, nil
	}
	return "", nil, model.NewError(model.KindSerializationError, "config.singleTag")
}

func paramFloat(params map[string]any, key string) float64 {
	switch n := params[key].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}
