package collectionsx_test

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/comalice/collectionsx"
)

func TestBinaryRoundTrip(t *testing.T) {
	tup := mustTuple(t,
		Pair{Key: "n", Value: Int(-42)},
		Pair{Key: "f", Value: Float(2.75)},
		Pair{Key: "s", Value: Text("with / and < and = inside")},
		Pair{Key: "xs", Value: Seq{Int(1), Set{Text("a")}, Map{{Key: Int(1), Value: Text("v")}}}},
	)
	data, err := tup.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var back NamedTuple
	if err := back.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if !tup.Equal(&back) {
		t.Errorf("round trip mismatch:\n in  %s\n out %s", tup, &back)
	}
}

// Unlike the textual form, the binary form is fully tagged: values equal
// across keys never collapse, and delimiter bytes in text need no escaping.
func TestBinaryDuplicateValues(t *testing.T) {
	tup := mustTuple(t,
		Pair{Key: "a", Value: Int(1)},
		Pair{Key: "b", Value: Int(1)},
	)
	data, err := tup.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	var back NamedTuple
	if err := back.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if i, _ := back.Find("b"); i != 1 {
		t.Errorf("Find(\"b\"): expected 1, got %d", i)
	}
}

// Core Deterministic Encoding: the same tuple always yields the same bytes.
func TestBinaryDeterministic(t *testing.T) {
	tup := mustTuple(t,
		Pair{Key: "m", Value: Map{{Key: Text("a"), Value: Int(1)}, {Key: Text("b"), Value: Int(2)}}},
	)
	first, err := tup.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	second, err := tup.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("encoding is not deterministic")
	}
}

func TestBinaryMalformed(t *testing.T) {
	var back NamedTuple
	if err := back.UnmarshalBinary([]byte{0xff, 0x00, 0x01}); !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

func TestBinaryEmptyTuple(t *testing.T) {
	tup := mustTuple(t)
	data, err := tup.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	var back NamedTuple
	if err := back.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if back.Len() != 0 {
		t.Errorf("expected empty tuple, got %d entries", back.Len())
	}
}
