package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLCodec encodes the settings tree as YAML mappings.
type YAMLCodec struct{}

// Decode parses YAML data into a nested map.
func (YAMLCodec) Decode(data []byte) (map[string]any, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return normalizeYAML(tree), nil
}

// Encode serializes the tree.
func (YAMLCodec) Encode(tree map[string]any) ([]byte, error) {
	return yaml.Marshal(tree)
}

// normalizeYAML converts any map[any]any produced for non-string keys
// into map[string]any so the store sees a uniform tree.
func normalizeYAML(tree map[string]any) map[string]any {
	for key, val := range tree {
		switch v := val.(type) {
		case map[string]any:
			tree[key] = normalizeYAML(v)
		case map[any]any:
			m := make(map[string]any, len(v))
			for k, item := range v {
				m[fmt.Sprint(k)] = item
			}
			tree[key] = normalizeYAML(m)
		}
	}
	return tree
}
