package collectionsx

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAML support. yaml.v3's generic map decoding would lose entry order, so
// NamedTuple marshals through yaml.Node mapping nodes, which preserve it.
// Sets use the standard !!set tag (a mapping with null values).

const yamlSetTag = "!!set"

// MarshalYAML implements yaml.Marshaler.
func (t *NamedTuple) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range t.pairs {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: p.Key},
			valueToYAML(p.Value))
	}
	return root, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The input must be a mapping;
// entry order follows document order.
func (t *NamedTuple) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping, got %s: %w", node.Tag, ErrParse)
	}
	pairs := make([]Pair, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		v, err := yamlToValue(node.Content[i+1])
		if err != nil {
			return err
		}
		pairs = append(pairs, Pair{Key: node.Content[i].Value, Value: v})
	}
	decoded, err := NewNamedTuple(pairs...)
	if err != nil {
		return err
	}
	*t = *decoded
	return nil
}

func valueToYAML(v Value) *yaml.Node {
	switch val := v.(type) {
	case Int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(val), 10)}
	case Float:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(float64(val), 'g', -1, 64)}
	case Text:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(val)}
	case Seq:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range val {
			n.Content = append(n.Content, valueToYAML(item))
		}
		return n
	case Set:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: yamlSetTag}
		for _, item := range val {
			n.Content = append(n.Content, valueToYAML(item),
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"})
		}
		return n
	case Map:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, item := range val {
			n.Content = append(n.Content, valueToYAML(item.Key), valueToYAML(item.Value))
		}
		return n
	}
	panic(fmt.Sprintf("unreachable: %T does not implement Value", v))
}

func yamlToValue(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!int":
			i, err := strconv.ParseInt(node.Value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("integer %q: %v: %w", node.Value, err, ErrParse)
			}
			return Int(i), nil
		case "!!float":
			f, err := strconv.ParseFloat(node.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("float %q: %v: %w", node.Value, err, ErrParse)
			}
			return Float(f), nil
		default:
			return Text(node.Value), nil
		}
	case yaml.SequenceNode:
		out := make(Seq, len(node.Content))
		for i, child := range node.Content {
			v, err := yamlToValue(child)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case yaml.MappingNode:
		if node.Tag == yamlSetTag {
			out := make(Set, 0, len(node.Content)/2)
			for i := 0; i+1 < len(node.Content); i += 2 {
				v, err := yamlToValue(node.Content[i])
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
			return out, nil
		}
		out := make(Map, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			k, err := yamlToValue(node.Content[i])
			if err != nil {
				return nil, err
			}
			v, err := yamlToValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			out = append(out, MapItem{Key: k, Value: v})
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported node kind %d: %w", node.Kind, ErrParse)
}

// MarshalYAML implements yaml.Marshaler for ConstMap, emitting entries in
// insertion order.
func (m *ConstMap[K, V]) MarshalYAML() (any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range m.order {
		var kn, vn yaml.Node
		if err := kn.Encode(k); err != nil {
			return nil, fmt.Errorf("key '%v': %w", k, err)
		}
		if err := vn.Encode(m.data[k]); err != nil {
			return nil, fmt.Errorf("value for '%v': %w", k, err)
		}
		root.Content = append(root.Content, &kn, &vn)
	}
	return root, nil
}
