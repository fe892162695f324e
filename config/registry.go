package config

import (
	"encoding/json"

	"github.com/rfielding/devs-sim/model"
	"github.com/rfielding/devs-sim/models"
	"github.com/rfielding/devs-sim/randvar"
	"github.com/rfielding/devs-sim/simulator"
	"github.com/rfielding/devs-sim/thinning"
)

// Constructor builds a models.Model from its decoded configuration. It may
// call back into the owning Registry (e.g. to build a Coupled model's
// nested components).
type Constructor func(r *Registry, mc ModelConfig) (model.Model, error)

// Registry is the model factory: a tag-to-constructor map, pre-populated
// with the built-in model types and open to user registration, per the
// interchange format's extensibility requirement.
type Registry struct {
	ctors map[string]Constructor
}

// NewRegistry constructs a Registry pre-populated with the eleven built-in
// type tags.
func NewRegistry() *Registry {
	r := &Registry{ctors: make(map[string]Constructor)}
	r.Register("Generator", buildGenerator)
	r.Register("Processor", buildProcessor)
	r.Register("Batcher", buildBatcher)
	r.Register("Gate", buildGate)
	r.Register("StochasticGate", buildStochasticGate)
	r.Register("LoadBalancer", buildLoadBalancer)
	r.Register("ExclusiveGateway", buildExclusiveGateway)
	r.Register("ParallelGateway", buildParallelGateway)
	r.Register("Storage", buildStorage)
	r.Register("Stopwatch", buildStopwatch)
	r.Register("Coupled", buildCoupled)
	return r
}

// Register adds or overrides the constructor for a type tag.
func (r *Registry) Register(tag string, ctor Constructor) {
	r.ctors[tag] = ctor
}

// Build constructs the model described by mc.
func (r *Registry) Build(mc ModelConfig) (model.Model, error) {
	ctor, ok := r.ctors[mc.Type]
	if !ok {
		return nil, model.NewError(model.KindSerializationError, "config.Registry.Build")
	}
	return ctor(r, mc)
}

// BuildDocument constructs every top-level model and connector in doc.
func (r *Registry) BuildDocument(doc Document) ([]simulator.ModelEntry, []simulator.Connector, error) {
	entries := make([]simulator.ModelEntry, 0, len(doc.Models))
	for _, mc := range doc.Models {
		m, err := r.Build(mc)
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, simulator.ModelEntry{ID: mc.ID, Model: m})
	}
	connectors := make([]simulator.Connector, 0, len(doc.Connectors))
	for _, cc := range doc.Connectors {
		connectors = append(connectors, simulator.Connector{
			ID:         cc.ID,
			SourceID:   cc.SourceID,
			SourcePort: model.PortName(cc.SourcePort),
			TargetID:   cc.TargetID,
			TargetPort: model.PortName(cc.TargetPort),
		})
	}
	return entries, connectors, nil
}

func port(mc ModelConfig, name string) model.PortName {
	return model.PortName(mc.stringField(name, name))
}

func buildGenerator(_ *Registry, mc ModelConfig) (model.Model, error) {
	raw, ok := mc.field("messageInterdepartureTime")
	if !ok {
		return nil, model.NewError(model.KindSerializationError, "config.buildGenerator")
	}
	interdeparture, err := decodeContinuous(raw)
	if err != nil {
		return nil, err
	}
	var thin *thinning.Function
	if tRaw, ok := mc.field("thinning"); ok {
		coeffs := ModelConfig{Fields: map[string]any{"coefficients": tRaw}}.floatSliceField("coefficients")
		f := thinning.New(coeffs)
		thin = &f
	}
	storeRecords := mc.boolField("storeRecords", false)
	g := models.NewGenerator(interdeparture, thin, port(mc, "job"), storeRecords)
	if vRaw, ok := mc.field("messageValue"); ok {
		v, err := decodeAny(vRaw)
		if err != nil {
			return nil, err
		}
		g.ValueDistribution = &v
	}
	return g, nil
}

// decodeAny decodes whichever tagged-union family the raw value names,
// trying continuous first (the common case) and falling back to index.
func decodeAny(raw any) (randvar.AnyVariable, error) {
	if c, err := decodeContinuous(raw); err == nil {
		return randvar.FromContinuous(c), nil
	}
	if idx, err := decodeIndex(raw); err == nil {
		return randvar.FromIndex(idx), nil
	}
	return randvar.AnyVariable{}, model.NewError(model.KindSerializationError, "config.decodeAny")
}

func buildProcessor(_ *Registry, mc ModelConfig) (model.Model, error) {
	raw, ok := mc.field("serviceTime")
	if !ok {
		return nil, model.NewError(model.KindSerializationError, "config.buildProcessor")
	}
	serviceTime, err := decodeContinuous(raw)
	if err != nil {
		return nil, err
	}
	capacity := mc.intField("queueCapacity", 0)
	storeRecords := mc.boolField("storeRecords", false)
	return models.NewProcessor(serviceTime, capacity, port(mc, "job"), port(mc, "processedJob"), storeRecords), nil
}

func buildBatcher(_ *Registry, mc ModelConfig) (model.Model, error) {
	maxTime := mc.floatField("maxBatchTime", 0)
	maxSize := mc.intField("maxBatchSize", 1)
	storeRecords := mc.boolField("storeRecords", false)
	return models.NewBatcher(maxTime, maxSize, port(mc, "job"), port(mc, "batch"), storeRecords), nil
}

func buildGate(_ *Registry, mc ModelConfig) (model.Model, error) {
	storeRecords := mc.boolField("storeRecords", false)
	return models.NewGate(port(mc, "job"), port(mc, "activation"), port(mc, "deactivation"), port(mc, "out"), storeRecords), nil
}

func buildStochasticGate(_ *Registry, mc ModelConfig) (model.Model, error) {
	p := 0.5
	if raw, ok := mc.field("passDistribution"); ok {
		if _, params, err := singleTag(raw); err == nil {
			p = paramFloat(params, "p")
		}
	}
	storeRecords := mc.boolField("storeRecords", false)
	return models.NewStochasticGate(p, port(mc, "job"), port(mc, "out"), storeRecords), nil
}

func buildLoadBalancer(_ *Registry, mc ModelConfig) (model.Model, error) {
	outs := mc.stringSliceField("portsOut")
	ports := make([]model.PortName, len(outs))
	for i, p := range outs {
		ports[i] = model.PortName(p)
	}
	storeRecords := mc.boolField("storeRecords", false)
	return models.NewLoadBalancer(port(mc, "job"), ports, storeRecords), nil
}

func buildExclusiveGateway(_ *Registry, mc ModelConfig) (model.Model, error) {
	ins := toPortNames(mc.stringSliceField("portsIn"))
	outs := toPortNames(mc.stringSliceField("portsOut"))
	weights := mc.floatSliceField("portWeights")
	storeRecords := mc.boolField("storeRecords", false)
	return models.NewExclusiveGateway(ins, outs, weights, storeRecords), nil
}

func buildParallelGateway(_ *Registry, mc ModelConfig) (model.Model, error) {
	ins := toPortNames(mc.stringSliceField("portsIn"))
	outs := toPortNames(mc.stringSliceField("portsOut"))
	storeRecords := mc.boolField("storeRecords", false)
	return models.NewParallelGateway(ins, outs, storeRecords), nil
}

func buildStorage(_ *Registry, mc ModelConfig) (model.Model, error) {
	storeRecords := mc.boolField("storeRecords", false)
	s := models.NewStorage(port(mc, "put"), port(mc, "get"), port(mc, "stored"), storeRecords)
	s.HistoryLimit = mc.intField("historyLimit", 0)
	return s, nil
}

func buildStopwatch(_ *Registry, mc ModelConfig) (model.Model, error) {
	metric := models.Minimum
	if mc.stringField("metric", "Minimum") == "Maximum" {
		metric = models.Maximum
	}
	storeRecords := mc.boolField("storeRecords", false)
	return models.NewStopwatch(port(mc, "start"), port(mc, "stop"), port(mc, "metric"), port(mc, "job"), metric, storeRecords), nil
}

func toPortNames(ss []string) []model.PortName {
	out := make([]model.PortName, len(ss))
	for i, s := range ss {
		out[i] = model.PortName(s)
	}
	return out
}

// buildCoupled builds a Coupled model from its nested "components" list
// and the three coupling tables, re-decoding each component through a
// JSON round trip since the generic Fields map stores nested objects as
// map[string]any rather than typed ModelConfig values.
func buildCoupled(r *Registry, mc ModelConfig) (model.Model, error) {
	storeRecords := mc.boolField("storeRecords", false)
	coupled := models.NewCoupled(storeRecords)

	componentsRaw, _ := mc.field("components")
	components, err := decodeNestedModelConfigs(componentsRaw)
	if err != nil {
		return nil, err
	}
	for _, childConfig := range components {
		child, err := r.Build(childConfig)
		if err != nil {
			return nil, err
		}
		coupled.AddChild(childConfig.ID, child)
	}

	for _, raw := range asSliceOfMaps(mc.Fields["externalInputCouplings"]) {
		coupled.AddExternalInput(externalInputFromMap(raw))
	}
	for _, raw := range asSliceOfMaps(mc.Fields["externalOutputCouplings"]) {
		coupled.AddExternalOutput(externalOutputFromMap(raw))
	}
	for _, raw := range asSliceOfMaps(mc.Fields["internalCouplings"]) {
		coupled.AddInternalCoupling(internalCouplingFromMap(raw))
	}
	return coupled, nil
}

func decodeNestedModelConfigs(raw any) ([]ModelConfig, error) {
	items, ok := raw.([]any)
	if !ok {
		if raw == nil {
			return nil, nil
		}
		return nil, model.NewError(model.KindSerializationError, "config.decodeNestedModelConfigs")
	}
	out := make([]ModelConfig, 0, len(items))
	for _, item := range items {
		b, err := json.Marshal(item)
		if err != nil {
			return nil, model.WrapError(model.KindSerializationError, "config.decodeNestedModelConfigs", err)
		}
		var mc ModelConfig
		if err := json.Unmarshal(b, &mc); err != nil {
			return nil, model.WrapError(model.KindSerializationError, "config.decodeNestedModelConfigs", err)
		}
		out = append(out, mc)
	}
	return out, nil
}

func asSliceOfMaps(raw any) []map[string]any {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func externalInputFromMap(m map[string]any) models.ExternalInputCoupling {
	return models.ExternalInputCoupling{
		OuterPort: model.PortName(strField(m, "outerPort")),
		ChildID:   strField(m, "childID"),
		ChildPort: model.PortName(strField(m, "childPort")),
	}
}

func externalOutputFromMap(m map[string]any) models.ExternalOutputCoupling {
	return models.ExternalOutputCoupling{
		ChildID:   strField(m, "childID"),
		ChildPort: model.PortName(strField(m, "childPort")),
		OuterPort: model.PortName(strField(m, "outerPort")),
	}
}

func internalCouplingFromMap(m map[string]any) models.InternalCoupling {
	return models.InternalCoupling{
		SourceChildID: strField(m, "sourceChildID"),
		SourcePort:    model.PortName(strField(m, "sourcePort")),
		TargetChildID: strField(m, "targetChildID"),
		TargetPort:    model.PortName(strField(m, "targetPort")),
	}
}

func strField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
