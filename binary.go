package collectionsx

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Binary codec for NamedTuple. Unlike the textual form, this encoding is
// fully tagged: every value travels as an explicit (type-tag, payload)
// node and every entry as a (key, node) pair, so no delimiter can collide
// with value content and no position is rebuilt by value lookup. Use it
// whenever the encoding leaves the process.
//
// The wire format is CBOR with Core Deterministic Encoding, so encoding
// the same tuple always produces identical bytes.

// Value type tags on the wire.
const (
	wireInt uint8 = iota + 1
	wireFloat
	wireText
	wireSeq
	wireSet
	wireMap
)

type wireNode struct {
	Tag   uint8      `cbor:"t"`
	Int   int64      `cbor:"i,omitempty"`
	Float float64    `cbor:"f,omitempty"`
	Text  string     `cbor:"s,omitempty"`
	Items []wireNode `cbor:"l,omitempty"` // Seq/Set elements, Map values
	Keys  []wireNode `cbor:"k,omitempty"` // Map keys, parallel to Items
}

type wireEntry struct {
	Key   string   `cbor:"k"`
	Value wireNode `cbor:"v"`
}

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("collectionsx: CBOR encoder initialization failed: " + err.Error())
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (t *NamedTuple) MarshalBinary() ([]byte, error) {
	entries := make([]wireEntry, len(t.pairs))
	for i, p := range t.pairs {
		entries[i] = wireEntry{Key: p.Key, Value: valueToWire(p.Value)}
	}
	data, err := encMode.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("cbor marshal: %w", err)
	}
	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, replacing the
// receiver's contents. Unknown tags and duplicate keys are rejected.
func (t *NamedTuple) UnmarshalBinary(data []byte) error {
	var entries []wireEntry
	if err := cbor.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("cbor unmarshal: %v: %w", err, ErrParse)
	}
	pairs := make([]Pair, len(entries))
	for i, e := range entries {
		v, err := wireToValue(e.Value)
		if err != nil {
			return fmt.Errorf("key '%s': %v: %w", e.Key, err, ErrParse)
		}
		pairs[i] = Pair{Key: e.Key, Value: v}
	}
	decoded, err := NewNamedTuple(pairs...)
	if err != nil {
		return err
	}
	*t = *decoded
	return nil
}

func valueToWire(v Value) wireNode {
	switch val := v.(type) {
	case Int:
		return wireNode{Tag: wireInt, Int: int64(val)}
	case Float:
		return wireNode{Tag: wireFloat, Float: float64(val)}
	case Text:
		return wireNode{Tag: wireText, Text: string(val)}
	case Seq:
		return wireNode{Tag: wireSeq, Items: valuesToWire(val)}
	case Set:
		return wireNode{Tag: wireSet, Items: valuesToWire(val)}
	case Map:
		n := wireNode{Tag: wireMap}
		for _, item := range val {
			n.Keys = append(n.Keys, valueToWire(item.Key))
			n.Items = append(n.Items, valueToWire(item.Value))
		}
		return n
	}
	panic(fmt.Sprintf("unreachable: %T does not implement Value", v))
}

func valuesToWire(vs []Value) []wireNode {
	out := make([]wireNode, len(vs))
	for i, v := range vs {
		out[i] = valueToWire(v)
	}
	return out
}

func wireToValue(n wireNode) (Value, error) {
	switch n.Tag {
	case wireInt:
		return Int(n.Int), nil
	case wireFloat:
		return Float(n.Float), nil
	case wireText:
		return Text(n.Text), nil
	case wireSeq:
		vs, err := wiresToValues(n.Items)
		return Seq(vs), err
	case wireSet:
		vs, err := wiresToValues(n.Items)
		return Set(vs), err
	case wireMap:
		if len(n.Keys) != len(n.Items) {
			return nil, fmt.Errorf("map has %d keys but %d values", len(n.Keys), len(n.Items))
		}
		out := make(Map, len(n.Keys))
		for i := range n.Keys {
			k, err := wireToValue(n.Keys[i])
			if err != nil {
				return nil, err
			}
			v, err := wireToValue(n.Items[i])
			if err != nil {
				return nil, err
			}
			out[i] = MapItem{Key: k, Value: v}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown value tag %d", n.Tag)
}

func wiresToValues(ns []wireNode) ([]Value, error) {
	out := make([]Value, len(ns))
	for i, n := range ns {
		v, err := wireToValue(n)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
