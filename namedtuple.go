package collectionsx

import "fmt"

// Pair is one keyed entry of a NamedTuple.
type Pair struct {
	Key   string
	Value Value
}

// NamedTuple is an immutable ordered collection of keyed values. Entries
// support both positional access (by construction index) and keyed access;
// the structure never changes after construction.
//
// A NamedTuple serializes to a compact textual form via Encode and is
// rebuilt from it via Decode; see encoding.go for the format.
type NamedTuple struct {
	pairs []Pair
	index map[string]int // key -> position
}

// NewNamedTuple builds a tuple from pairs. Order is significant and fixed.
// A duplicate key fails with ErrInvalidOperation.
func NewNamedTuple(pairs ...Pair) (*NamedTuple, error) {
	t := &NamedTuple{
		pairs: make([]Pair, len(pairs)),
		index: make(map[string]int, len(pairs)),
	}
	copy(t.pairs, pairs)
	for i, p := range pairs {
		if p.Value == nil {
			return nil, fmt.Errorf("key '%s' has no value: %w", p.Key, ErrInvalidOperation)
		}
		if _, dup := t.index[p.Key]; dup {
			return nil, fmt.Errorf("duplicate key '%s': %w", p.Key, ErrInvalidOperation)
		}
		t.index[p.Key] = i
	}
	return t, nil
}

// Get returns the value for an integer position or a string key. Any other
// index type, an out-of-range position, or an absent key fails with
// ErrIndexOrKeyNotFound.
func (t *NamedTuple) Get(indexOrKey any) (Value, error) {
	switch k := indexOrKey.(type) {
	case int:
		if k < 0 || k >= len(t.pairs) {
			return nil, fmt.Errorf("index %d: %w", k, ErrIndexOrKeyNotFound)
		}
		return t.pairs[k].Value, nil
	case string:
		if i, ok := t.index[k]; ok {
			return t.pairs[i].Value, nil
		}
		return nil, fmt.Errorf("key '%s': %w", k, ErrIndexOrKeyNotFound)
	}
	return nil, fmt.Errorf("%T is neither index nor key: %w", indexOrKey, ErrIndexOrKeyNotFound)
}

// Find returns the position of key. An absent key fails with
// ErrKeyNotFound.
func (t *NamedTuple) Find(key string) (int, error) {
	i, ok := t.index[key]
	if !ok {
		return 0, fmt.Errorf("key '%s': %w", key, ErrKeyNotFound)
	}
	return i, nil
}

// Keys returns the keys in construction order.
func (t *NamedTuple) Keys() []string {
	out := make([]string, len(t.pairs))
	for i, p := range t.pairs {
		out[i] = p.Key
	}
	return out
}

// Values returns the values in construction order.
func (t *NamedTuple) Values() []Value {
	out := make([]Value, len(t.pairs))
	for i, p := range t.pairs {
		out[i] = p.Value
	}
	return out
}

// Len returns the number of entries.
func (t *NamedTuple) Len() int {
	return len(t.pairs)
}

// Contains reports whether any entry's value deep-equals v.
func (t *NamedTuple) Contains(v Value) bool {
	for _, p := range t.pairs {
		if Equal(p.Value, v) {
			return true
		}
	}
	return false
}

// Equal reports whether two tuples have the same keys, order, and values.
// A nil tuple equals nothing.
func (t *NamedTuple) Equal(other *NamedTuple) bool {
	if other == nil {
		return false
	}
	if len(t.pairs) != len(other.pairs) {
		return false
	}
	for i := range t.pairs {
		if t.pairs[i].Key != other.pairs[i].Key || !Equal(t.pairs[i].Value, other.pairs[i].Value) {
			return false
		}
	}
	return true
}

// AsSlice returns the values as a genuine plain slice copy.
func (t *NamedTuple) AsSlice() []Value {
	return t.Values()
}

// AsMap returns the entries as a genuine plain map copy.
func (t *NamedTuple) AsMap() map[string]Value {
	out := make(map[string]Value, len(t.pairs))
	for _, p := range t.pairs {
		out[p.Key] = p.Value
	}
	return out
}

// String renders the tuple in its textual encoding.
func (t *NamedTuple) String() string {
	return t.Encode()
}
