package collectionsx

import (
	"fmt"
	"strings"

	"github.com/comalice/collectionsx/internal/literal"
)

// Textual encoding of a NamedTuple. One fragment per pair, joined by '/'
// and wrapped in parentheses:
//
//	numeric scalar   key=5        key=1.5
//	text scalar      key='value'
//	nested value     <key=[1, 2]  <key={'a': 1}  <key={1, 2}
//
// The leading '<' marks a value that must go through the structural
// literal parser instead of scalar coercion. A literal '<' or single quote inside
// a text value is swapped with a private-use sentinel rune before joining,
// so neither can be mistaken for the nested-value marker or a closing
// quote; the swaps are reversed on decoding. The empty tuple encodes as
// "()".
const (
	nestedMarker  = '<'
	ltSentinel    = '' // private use; stands in for '<' inside text
	quoteSentinel = '' // private use; stands in for the quote inside text
)

var (
	textEscaper = strings.NewReplacer(
		string(nestedMarker), string(ltSentinel),
		"'", string(quoteSentinel),
	)
	textUnescaper = strings.NewReplacer(
		string(ltSentinel), string(nestedMarker),
		string(quoteSentinel), "'",
	)
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func unescapeText(s string) string {
	return textUnescaper.Replace(s)
}

// Encode serializes the tuple into its textual form.
func (t *NamedTuple) Encode() string {
	if len(t.pairs) == 0 {
		return "()"
	}
	frags := make([]string, len(t.pairs))
	for i, p := range t.pairs {
		switch v := p.Value.(type) {
		case Int, Float:
			frags[i] = p.Key + "=" + literal.Write(valueToNode(v))
		case Text:
			frags[i] = p.Key + "='" + escapeText(string(v)) + "'"
		default:
			frags[i] = string(nestedMarker) + p.Key + "=" + literal.Write(valueToNode(v))
		}
	}
	return "(" + strings.Join(frags, "/") + ")"
}

// Decode rebuilds a NamedTuple from its textual form. Malformed input
// fails with ErrParse; a duplicate key fails with ErrInvalidOperation.
func Decode(s string) (*NamedTuple, error) {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return nil, fmt.Errorf("missing outer parentheses: %w", ErrParse)
	}
	inner := s[1 : len(s)-1]
	if inner == "" {
		return NewNamedTuple()
	}

	frags, err := splitFragments(inner)
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair, 0, len(frags))
	for _, frag := range frags {
		p, err := decodeFragment(frag)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return NewNamedTuple(pairs...)
}

// splitFragments splits on '/' at bracket depth zero, outside quotes.
// Tracking depth lets nested collection values carry '/' without breaking
// pair boundaries.
func splitFragments(s string) ([]string, error) {
	var frags []string
	depth := 0
	inQuote := false
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
		case inQuote:
			// structural bytes inside text are plain data
		case c == '[' || c == '{' || c == '(':
			depth++
		case c == ']' || c == '}' || c == ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced brackets at offset %d: %w", i, ErrParse)
			}
		case c == '/' && depth == 0:
			frags = append(frags, s[start:i])
			start = i + 1
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote: %w", ErrParse)
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced brackets: %w", ErrParse)
	}
	return append(frags, s[start:]), nil
}

func decodeFragment(frag string) (Pair, error) {
	if frag == "" {
		return Pair{}, fmt.Errorf("empty fragment: %w", ErrParse)
	}

	if frag[0] == byte(nestedMarker) {
		key, lit, found := strings.Cut(frag[1:], "=")
		if !found {
			return Pair{}, fmt.Errorf("fragment %q has no '=': %w", frag, ErrParse)
		}
		node, err := literal.Parse(lit)
		if err != nil {
			return Pair{}, fmt.Errorf("nested value for key '%s': %v: %w", key, err, ErrParse)
		}
		return Pair{Key: key, Value: nodeToValue(node)}, nil
	}

	key, raw, found := strings.Cut(frag, "=")
	if !found {
		return Pair{}, fmt.Errorf("fragment %q has no '=': %w", frag, ErrParse)
	}
	if len(raw) >= 2 && raw[0] == '\'' && raw[len(raw)-1] == '\'' {
		return Pair{Key: key, Value: Text(unescapeText(raw[1 : len(raw)-1]))}, nil
	}
	// Unquoted scalar: all-digit coerces to Int, float syntax to Float,
	// anything else stays Text.
	return Pair{Key: key, Value: nodeToValue(literal.Coerce(raw))}, nil
}

// valueToNode converts a public Value into the literal package's node
// model, escaping '<' inside text on the way down.
func valueToNode(v Value) literal.Node {
	switch val := v.(type) {
	case Int:
		return literal.Int(val)
	case Float:
		return literal.Float(val)
	case Text:
		return literal.Text(escapeText(string(val)))
	case Seq:
		out := make(literal.Seq, len(val))
		for i, item := range val {
			out[i] = valueToNode(item)
		}
		return out
	case Set:
		out := make(literal.Set, len(val))
		for i, item := range val {
			out[i] = valueToNode(item)
		}
		return out
	case Map:
		out := make(literal.Map, len(val))
		for i, item := range val {
			out[i] = literal.MapItem{Key: valueToNode(item.Key), Value: valueToNode(item.Value)}
		}
		return out
	}
	panic(fmt.Sprintf("unreachable: %T does not implement Value", v))
}

// nodeToValue is the inverse of valueToNode, unescaping text.
func nodeToValue(n literal.Node) Value {
	switch node := n.(type) {
	case literal.Int:
		return Int(node)
	case literal.Float:
		return Float(node)
	case literal.Text:
		return Text(unescapeText(string(node)))
	case literal.Seq:
		out := make(Seq, len(node))
		for i, item := range node {
			out[i] = nodeToValue(item)
		}
		return out
	case literal.Set:
		out := make(Set, len(node))
		for i, item := range node {
			out[i] = nodeToValue(item)
		}
		return out
	case literal.Map:
		out := make(Map, len(node))
		for i, item := range node {
			out[i] = MapItem{Key: nodeToValue(item.Key), Value: nodeToValue(item.Value)}
		}
		return out
	}
	panic(fmt.Sprintf("unreachable: %T does not implement literal.Node", n))
}
