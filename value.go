package collectionsx

// Value is a named-tuple value. Concrete types:
//
//   - Int   (integer scalar)
//   - Float (floating-point scalar)
//   - Text  (text scalar)
//   - Seq   (ordered nested sequence)
//   - Set   (unordered nested collection; equality ignores order)
//   - Map   (ordered nested key/value mapping)
//
// The interface is sealed: only types in this package implement it, so the
// textual and binary codecs can enumerate every case.
type Value interface {
	isValue()
}

// Int is an integer scalar value.
type Int int64

// Float is a floating-point scalar value.
type Float float64

// Text is a text scalar value.
type Text string

// Seq is an ordered sequence of nested values.
type Seq []Value

// Set is an unordered collection of nested values. Element order is
// preserved for encoding but ignored by Equal.
type Set []Value

// Map is an ordered mapping of nested values. Keys may be any scalar.
type Map []MapItem

// MapItem is one key/value entry of a nested Map.
type MapItem struct {
	Key   Value
	Value Value
}

func (Int) isValue()   {}
func (Float) isValue() {}
func (Text) isValue()  {}
func (Seq) isValue()   {}
func (Set) isValue()   {}
func (Map) isValue()   {}

// Equal reports deep equality of two values. Seq and Map compare
// elementwise in order; Set compares as an unordered multiset.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		return ok && av == bv
	case Text:
		bv, ok := b.(Text)
		return ok && av == bv
	case Seq:
		bv, ok := b.(Seq)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Set:
		bv, ok := b.(Set)
		if !ok || len(av) != len(bv) {
			return false
		}
		used := make([]bool, len(bv))
	outer:
		for _, x := range av {
			for j, y := range bv {
				if !used[j] && Equal(x, y) {
					used[j] = true
					continue outer
				}
			}
			return false
		}
		return true
	case Map:
		bv, ok := b.(Map)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i].Key, bv[i].Key) || !Equal(av[i].Value, bv[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
