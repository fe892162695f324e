package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rfielding/devs-sim/config"
)

func TestModelConfigJSONRoundTrip(t *testing.T) {
	mc := config.ModelConfig{
		ID:   "gen",
		Type: "Generator",
		Fields: map[string]any{
			"job":          "job",
			"storeRecords": true,
		},
	}
	b, err := json.Marshal(mc)
	require.NoError(t, err)

	var back config.ModelConfig
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, mc.ID, back.ID)
	assert.Equal(t, mc.Type, back.Type)
	assert.Equal(t, mc.Fields["job"], back.Fields["job"])
	assert.Equal(t, mc.Fields["storeRecords"], back.Fields["storeRecords"])
}

func TestDocumentYAMLRoundTrip(t *testing.T) {
	doc := config.Document{
		Models: []config.ModelConfig{
			{ID: "gen", Type: "Generator", Fields: map[string]any{"job": "job"}},
		},
		Connectors: []config.ConnectorConfig{
			{ID: "c1", SourceID: "gen", SourcePort: "job", TargetID: "proc", TargetPort: "job"},
		},
	}
	b, err := yaml.Marshal(doc)
	require.NoError(t, err)

	var back config.Document
	require.NoError(t, yaml.Unmarshal(b, &back))
	require.Len(t, back.Models, 1)
	assert.Equal(t, "gen", back.Models[0].ID)
	assert.Equal(t, "Generator", back.Models[0].Type)
	require.Len(t, back.Connectors, 1)
	assert.Equal(t, "proc", back.Connectors[0].TargetID)
}
