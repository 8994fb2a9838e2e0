package collectionsx_test

import (
	"errors"
	"testing"

	. "github.com/comalice/collectionsx"
)

func TestNamedTupleLookup(t *testing.T) {
	tup, err := NewNamedTuple(
		Pair{Key: "a", Value: Int(1)},
		Pair{Key: "b", Value: Text("two")},
	)
	if err != nil {
		t.Fatal(err)
	}

	v, err := tup.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(v, Int(1)) {
		t.Errorf("Get(0): expected 1, got %v", v)
	}

	v, err = tup.Get("b")
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(v, Text("two")) {
		t.Errorf("Get(\"b\"): expected \"two\", got %v", v)
	}

	i, err := tup.Find("a")
	if err != nil {
		t.Fatal(err)
	}
	if i != 0 {
		t.Errorf("Find(\"a\"): expected 0, got %d", i)
	}

	keys := tup.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys: expected [a b], got %v", keys)
	}
}

func TestNamedTupleLookupMisses(t *testing.T) {
	tup, err := NewNamedTuple(Pair{Key: "a", Value: Int(1)})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tup.Get(5); !errors.Is(err, ErrIndexOrKeyNotFound) {
		t.Errorf("out-of-range Get: expected ErrIndexOrKeyNotFound, got %v", err)
	}
	if _, err := tup.Get("zzz"); !errors.Is(err, ErrIndexOrKeyNotFound) {
		t.Errorf("absent key Get: expected ErrIndexOrKeyNotFound, got %v", err)
	}
	if _, err := tup.Get(3.14); !errors.Is(err, ErrIndexOrKeyNotFound) {
		t.Errorf("wrong-typed Get: expected ErrIndexOrKeyNotFound, got %v", err)
	}
	if _, err := tup.Find("zzz"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Find miss: expected ErrKeyNotFound, got %v", err)
	}
}

func TestNamedTupleDuplicateKeyRejected(t *testing.T) {
	_, err := NewNamedTuple(
		Pair{Key: "a", Value: Int(1)},
		Pair{Key: "a", Value: Int(2)},
	)
	if !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("expected ErrInvalidOperation, got %v", err)
	}
}

func TestNamedTupleEqualNil(t *testing.T) {
	tup, err := NewNamedTuple(Pair{Key: "a", Value: Int(1)})
	if err != nil {
		t.Fatal(err)
	}
	if tup.Equal(nil) {
		t.Error("a tuple must not equal nil")
	}
}

func TestNamedTupleContains(t *testing.T) {
	tup, err := NewNamedTuple(
		Pair{Key: "a", Value: Int(1)},
		Pair{Key: "b", Value: Seq{Int(1), Text("x")}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if !tup.Contains(Int(1)) {
		t.Error("expected Contains(1) to be true")
	}
	if !tup.Contains(Seq{Int(1), Text("x")}) {
		t.Error("expected deep Contains on nested value")
	}
	if tup.Contains(Int(99)) {
		t.Error("expected Contains(99) to be false")
	}
}

func TestNamedTupleConversions(t *testing.T) {
	tup, err := NewNamedTuple(
		Pair{Key: "a", Value: Int(1)},
		Pair{Key: "b", Value: Text("two")},
	)
	if err != nil {
		t.Fatal(err)
	}
	vals := tup.AsSlice()
	if len(vals) != 2 || !Equal(vals[0], Int(1)) {
		t.Errorf("AsSlice wrong: %v", vals)
	}
	m := tup.AsMap()
	if !Equal(m["b"], Text("two")) {
		t.Errorf("AsMap wrong: %v", m)
	}
	// Conversions are copies; the tuple stays immutable.
	vals[0] = Int(99)
	m["b"] = Int(0)
	v, err := tup.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(v, Int(1)) {
		t.Error("AsSlice leaked internal state")
	}
}

func TestValueEqualSetIgnoresOrder(t *testing.T) {
	a := Set{Int(1), Int(2), Text("x")}
	b := Set{Text("x"), Int(2), Int(1)}
	if !Equal(a, b) {
		t.Error("sets with the same elements must be equal regardless of order")
	}
	if Equal(a, Set{Int(1), Int(2)}) {
		t.Error("sets of different size must not be equal")
	}
	if Equal(Seq{Int(1)}, Set{Int(1)}) {
		t.Error("a sequence must not equal a set")
	}
}
