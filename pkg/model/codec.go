package model

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Wire format: a tagged tree with one node kind per Model variant. This is
// the only layout the library prescribes for persisted models; both the
// JSON and YAML codecs share it.
const (
	kindEmpty = "empty"
	kindValue = "value"
	kindSub   = "sub"
	kindFork  = "fork"
)

type wireNode struct {
	Kind  string    `json:"kind" yaml:"kind"`
	Value string    `json:"value,omitempty" yaml:"value,omitempty"`
	Name  string    `json:"name,omitempty" yaml:"name,omitempty"`
	Child *wireNode `json:"child,omitempty" yaml:"child,omitempty"`
	Left  *wireNode `json:"left,omitempty" yaml:"left,omitempty"`
	Right *wireNode `json:"right,omitempty" yaml:"right,omitempty"`
}

func toWire(m Model) *wireNode {
	switch m := m.(type) {
	case nil:
		return &wireNode{Kind: kindEmpty}
	case Empty:
		return &wireNode{Kind: kindEmpty}
	case Value:
		return &wireNode{Kind: kindValue, Value: m.V}
	case Sub:
		return &wireNode{Kind: kindSub, Name: m.Name, Child: toWire(m.Child)}
	case Fork:
		return &wireNode{Kind: kindFork, Left: toWire(m.Left), Right: toWire(m.Right)}
	default:
		return &wireNode{Kind: kindEmpty}
	}
}

func fromWire(n *wireNode) (Model, error) {
	if n == nil {
		return Empty{}, nil
	}
	switch n.Kind {
	case kindEmpty:
		return Empty{}, nil
	case kindValue:
		return Value{V: n.Value}, nil
	case kindSub:
		child, err := fromWire(n.Child)
		if err != nil {
			return nil, err
		}
		return Sub{Name: n.Name, Child: child}, nil
	case kindFork:
		left, err := fromWire(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := fromWire(n.Right)
		if err != nil {
			return nil, err
		}
		return Fork{Left: left, Right: right}, nil
	default:
		return nil, fmt.Errorf("model: unknown node kind %q", n.Kind)
	}
}

// EncodeJSON serializes a model as a tagged JSON tree.
func EncodeJSON(m Model) ([]byte, error) {
	return json.Marshal(toWire(m))
}

// DecodeJSON restores a model from its tagged JSON form. Unknown node kinds
// are rejected rather than coerced to Empty so corrupted state surfaces.
func DecodeJSON(data []byte) (Model, error) {
	var n wireNode
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("model: decode json: %w", err)
	}
	return fromWire(&n)
}

// EncodeYAML serializes a model as a tagged YAML tree.
func EncodeYAML(m Model) ([]byte, error) {
	return yaml.Marshal(toWire(m))
}

// DecodeYAML restores a model from its tagged YAML form.
func DecodeYAML(data []byte) (Model, error) {
	var n wireNode
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("model: decode yaml: %w", err)
	}
	return fromWire(&n)
}
