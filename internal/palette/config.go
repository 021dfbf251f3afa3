// Package palette flattens nested colour configurations and derives the
// inverted and contrast variants of every hex colour in them.
package palette

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Field is one key of a colour configuration. Value is either a nested
// Config or a leaf value (usually a string).
type Field struct {
	Key   string
	Value any
}

// Config is a nested colour mapping that keeps the key order of the
// document it was decoded from.
type Config []Field

// Get returns the value stored under key.
func (c Config) Get(key string) (any, bool) {
	for _, f := range c {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Section returns the nested mapping stored under key, if any.
func (c Config) Section(key string) (Config, bool) {
	v, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	nested, ok := v.(Config)
	return nested, ok
}

// With returns c with key set to value. An existing key keeps its position.
func (c Config) With(key string, value any) Config {
	for i, f := range c {
		if f.Key == key {
			out := make(Config, len(c))
			copy(out, c)
			out[i].Value = value
			return out
		}
	}
	return append(c[:len(c):len(c)], Field{Key: key, Value: value})
}

// Merge overlays other onto c. Nested mappings present on both sides are
// merged recursively, everything else in other replaces the value in c.
func (c Config) Merge(other Config) Config {
	out := make(Config, len(c))
	copy(out, c)
	for _, f := range other {
		if incoming, ok := f.Value.(Config); ok {
			if existing, ok := out.Section(f.Key); ok {
				out = out.With(f.Key, existing.Merge(incoming))
				continue
			}
		}
		out = out.With(f.Key, f.Value)
	}
	return out
}

// UnmarshalJSON decodes a JSON object, keeping key order. Arrays become
// mappings keyed by their index.
func (c *Config) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("palette: expected a JSON object, got %v", tok)
	}

	cfg, err := decodeJSONObject(dec)
	if err != nil {
		return err
	}
	*c = cfg
	return nil
}

func decodeJSONObject(dec *json.Decoder) (Config, error) {
	cfg := Config{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("palette: unexpected object key %v", tok)
		}
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		cfg = cfg.With(key, val)
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		return decodeJSONObject(dec)
	case '[':
		cfg := Config{}
		for i := 0; dec.More(); i++ {
			val, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			cfg = append(cfg, Field{Key: strconv.Itoa(i), Value: val})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return cfg, nil
	default:
		return nil, fmt.Errorf("palette: unexpected delimiter %v", delim)
	}
}

// UnmarshalYAML decodes a YAML mapping, keeping key order.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	for node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("palette: expected a YAML mapping at line %d", node.Line)
	}
	val, err := decodeYAMLNode(node)
	if err != nil {
		return err
	}
	*c = val.(Config)
	return nil
}

func decodeYAMLNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Config{}, nil
		}
		return decodeYAMLNode(node.Content[0])
	case yaml.AliasNode:
		return decodeYAMLNode(node.Alias)
	case yaml.MappingNode:
		cfg, err := decodeYAMLMerges(node)
		if err != nil {
			return nil, err
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			if isMergeKey(node.Content[i]) {
				continue
			}
			val, err := decodeYAMLNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			cfg = cfg.With(node.Content[i].Value, val)
		}
		return cfg, nil
	case yaml.SequenceNode:
		cfg := Config{}
		for i, item := range node.Content {
			val, err := decodeYAMLNode(item)
			if err != nil {
				return nil, err
			}
			cfg = append(cfg, Field{Key: strconv.Itoa(i), Value: val})
		}
		return cfg, nil
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func isMergeKey(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!merge"
}

// decodeYAMLMerges collects the fields pulled in by "<<" keys. Keys of an
// earlier merged mapping win over later ones; explicit keys of node are
// applied over the result by the caller.
func decodeYAMLMerges(node *yaml.Node) (Config, error) {
	cfg := Config{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if !isMergeKey(node.Content[i]) {
			continue
		}
		sources := []*yaml.Node{node.Content[i+1]}
		if v := node.Content[i+1]; v.Kind == yaml.SequenceNode {
			sources = v.Content
		}
		for _, src := range sources {
			val, err := decodeYAMLNode(src)
			if err != nil {
				return nil, err
			}
			m, ok := val.(Config)
			if !ok {
				return nil, fmt.Errorf("palette: merge key at line %d needs a mapping", src.Line)
			}
			for _, f := range m {
				if _, exists := cfg.Get(f.Key); !exists {
					cfg = append(cfg, f)
				}
			}
		}
	}
	return cfg, nil
}
