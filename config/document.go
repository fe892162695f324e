// Package config decodes the engine's configuration interchange format:
// model objects tagged by type, tagged-union random variable fields, and
// 5-field connector objects. The model factory (Registry) turns a decoded
// ModelConfig into a model.Model.
package config

import "encoding/json"

// Document is the top-level decode target for an experiment definition.
type Document struct {
	Models     []ModelConfig     `json:"models" yaml:"models"`
	Connectors []ConnectorConfig `json:"connectors" yaml:"connectors"`
}

// ConnectorConfig is the 5-field wire shape for a connector.
type ConnectorConfig struct {
	ID         string `json:"id" yaml:"id"`
	SourceID   string `json:"sourceID" yaml:"sourceID"`
	TargetID   string `json:"targetID" yaml:"targetID"`
	SourcePort string `json:"sourcePort" yaml:"sourcePort"`
	TargetPort string `json:"targetPort" yaml:"targetPort"`
}

// ModelConfig is a model object: id, type tag, plus arbitrary
// type-specific camelCase fields captured in Fields. Custom
// (Un)MarshalJSON/YAML keep id and type as named struct fields while
// flattening everything else, so the round-trip law (decode then encode
// yields a semantically equal document) holds without a fixed field list
// per type.
type ModelConfig struct {
	ID     string
	Type   string
	Fields map[string]any
}

func (m *ModelConfig) UnmarshalJSON(data []byte) error {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.ID, _ = raw["id"].(string)
	m.Type, _ = raw["type"].(string)
	delete(raw, "id")
	delete(raw, "type")
	m.Fields = raw
	return nil
}

func (m ModelConfig) MarshalJSON() ([]byte, error) {
	out := map[string]any{"id": m.ID, "type": m.Type}
	for k, v := range m.Fields {
		out[k] = v
	}
	return json.Marshal(out)
}

func (m *ModelConfig) UnmarshalYAML(unmarshal func(any) error) error {
	raw := map[string]any{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	m.ID, _ = raw["id"].(string)
	m.Type, _ = raw["type"].(string)
	delete(raw, "id")
	delete(raw, "type")
	m.Fields = raw
	return nil
}

func (m ModelConfig) MarshalYAML() (any, error) {
	out := map[string]any{"id": m.ID, "type": m.Type}
	for k, v := range m.Fields {
		out[k] = v
	}
	return out, nil
}

// field fetches a named field, reporting whether it was present.
func (m ModelConfig) field(name string) (any, bool) {
	v, ok := m.Fields[name]
	return v, ok
}

func (m ModelConfig) stringField(name string, def string) string {
	if v, ok := m.field(name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

func (m ModelConfig) floatField(name string, def float64) float64 {
	if v, ok := m.field(name); ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return def
}

func (m ModelConfig) intField(name string, def int) int {
	return int(m.floatField(name, float64(def)))
}

func (m ModelConfig) boolField(name string, def bool) bool {
	if v, ok := m.field(name); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

func (m ModelConfig) stringSliceField(name string) []string {
	v, ok := m.field(name)
	if !ok {
		return nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (m ModelConfig) floatSliceField(name string) []float64 {
	v, ok := m.field(name)
	if !ok {
		return nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(raw))
	for _, item := range raw {
		switch n := item.(type) {
		case float64:
			out = append(out, n)
		case int:
			out = append(out, float64(n))
		}
	}
	return out
}
