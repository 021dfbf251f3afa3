package palette

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestFlatten(t *testing.T) {
	cfg := Config{
		{Key: "a", Value: Config{
			{Key: "b", Value: "#fff"},
			{Key: "c", Value: "#000"},
		}},
	}

	entries := Flatten(cfg)
	assert.Equal(t, []Entry{
		{Name: "a-b", Value: "#fff"},
		{Name: "a-c", Value: "#000"},
	}, entries)
}

func TestFlatten_EmptyBranchesAndDeepNesting(t *testing.T) {
	cfg := Config{
		{Key: "empty", Value: Config{}},
		{Key: "brand", Value: Config{
			{Key: "primary", Value: Config{
				{Key: "light", Value: "#abc"},
			}},
		}},
		{Key: "black", Value: "#000"},
	}

	assert.Equal(t, []string{"brand-primary-light", "black"}, names(Flatten(cfg)))
	assert.Empty(t, Flatten(Config{}))
	assert.Empty(t, Flatten(nil))
}

func TestFlatten_PassesThroughNonStringLeaves(t *testing.T) {
	entries := Flatten(Config{{Key: "n", Value: json.Number("12")}, {Key: "nil", Value: nil}})
	require.Len(t, entries, 2)
	assert.Equal(t, json.Number("12"), entries[0].Value)
	assert.Nil(t, entries[1].Value)
}

func TestConfig_UnmarshalJSONKeepsOrder(t *testing.T) {
	var cfg Config
	err := json.Unmarshal([]byte(`{
		"zinc": {"50": "#fafafa", "900": "#18181b"},
		"amber": "#f59e0b",
		"list": ["#111", "#222"]
	}`), &cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"zinc-50", "zinc-900", "amber", "list-0", "list-1"}, names(Flatten(cfg)))
}

func TestConfig_UnmarshalJSONDuplicateKeys(t *testing.T) {
	var cfg Config
	require.NoError(t, json.Unmarshal([]byte(`{"a": "#111", "b": "#222", "a": "#333"}`), &cfg))

	assert.Equal(t, []Entry{{Name: "a", Value: "#333"}, {Name: "b", Value: "#222"}}, Flatten(cfg))
}

func TestConfig_UnmarshalJSONRejectsNonObject(t *testing.T) {
	var cfg Config
	assert.Error(t, json.Unmarshal([]byte(`["#fff"]`), &cfg))
	assert.Error(t, json.Unmarshal([]byte(`"#fff"`), &cfg))
}

func TestConfig_UnmarshalYAMLKeepsOrder(t *testing.T) {
	doc := `
slate:
  "100": "#f1f5f9"
  "800": "#1e293b"
primary: "#6366f1"
accents:
  - "#f43f5e"
`
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(doc), &cfg))

	entries := Flatten(cfg)
	assert.Equal(t, []string{"slate-100", "slate-800", "primary", "accents-0"}, names(entries))
	assert.Equal(t, "#6366f1", entries[2].Value)
}

func TestConfig_UnmarshalYAMLResolvesMergeKeys(t *testing.T) {
	doc := `
base: &base
  "500": "#3b82f6"
  "600": "#2563eb"
extra: &extra
  "600": "#000000"
  "700": "#1d4ed8"
blue:
  <<: [*base, *extra]
  "500": "#60a5fa"
`
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(doc), &cfg))

	blue, ok := cfg.Section("blue")
	require.True(t, ok)
	entries := Flatten(blue)
	assert.Equal(t, []string{"500", "600", "700"}, names(entries))
	assert.Equal(t, "#60a5fa", entries[0].Value, "explicit keys override merged ones")
	assert.Equal(t, "#2563eb", entries[1].Value, "earlier merged mappings win")
	assert.Equal(t, "#1d4ed8", entries[2].Value)
}

func TestConfig_UnmarshalYAMLMergeNeedsMapping(t *testing.T) {
	var cfg Config
	assert.Error(t, yaml.Unmarshal([]byte("a:\n  <<: \"#fff\"\n"), &cfg))
}

func TestConfig_UnmarshalYAMLRejectsScalarRoot(t *testing.T) {
	var cfg Config
	assert.Error(t, yaml.Unmarshal([]byte(`"#fff"`), &cfg))
}

func TestConfig_Merge(t *testing.T) {
	base := Config{
		{Key: "red", Value: Config{{Key: "500", Value: "#ef4444"}}},
		{Key: "white", Value: "#fff"},
	}
	extend := Config{
		{Key: "red", Value: Config{{Key: "500", Value: "#f00"}, {Key: "950", Value: "#450a0a"}}},
		{Key: "brand", Value: "#123456"},
	}

	merged := base.Merge(extend)
	assert.Equal(t, []Entry{
		{Name: "red-500", Value: "#f00"},
		{Name: "red-950", Value: "#450a0a"},
		{Name: "white", Value: "#fff"},
		{Name: "brand", Value: "#123456"},
	}, Flatten(merged))

	// base is left untouched
	assert.Equal(t, []string{"red-500", "white"}, names(Flatten(base)))
}
