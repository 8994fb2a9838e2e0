package literal

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxDepth bounds container nesting during parsing and writing.
const MaxDepth = 32

// Node is a parsed literal value. Concrete types:
//
//   - Int, Float, Text (scalars)
//   - Seq (ordered sequence)
//   - Set (unordered collection)
//   - Map (ordered key/value mapping)
type Node interface {
	node() // sealed marker
}

// Int is an integer scalar.
type Int int64

// Float is a floating-point scalar.
type Float float64

// Text is a text scalar.
type Text string

// Seq is an ordered sequence of nodes.
type Seq []Node

// Set is an unordered collection of nodes. Order is preserved as written.
type Set []Node

// Map is an ordered mapping.
type Map []MapItem

// MapItem is one key/value entry of a Map.
type MapItem struct {
	Key   Node
	Value Node
}

func (Int) node()   {}
func (Float) node() {}
func (Text) node()  {}
func (Seq) node()   {}
func (Set) node()   {}
func (Map) node()   {}

// Write renders n in its literal form.
func Write(n Node) string {
	var sb strings.Builder
	write(&sb, n)
	return sb.String()
}

func write(sb *strings.Builder, n Node) {
	switch v := n.(type) {
	case Int:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case Float:
		sb.WriteString(formatFloat(float64(v)))
	case Text:
		sb.WriteByte('\'')
		sb.WriteString(string(v))
		sb.WriteByte('\'')
	case Seq:
		sb.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				sb.WriteString(", ")
			}
			write(sb, item)
		}
		sb.WriteByte(']')
	case Set:
		if len(v) == 0 {
			sb.WriteString("set()")
			return
		}
		sb.WriteByte('{')
		for i, item := range v {
			if i > 0 {
				sb.WriteString(", ")
			}
			write(sb, item)
		}
		sb.WriteByte('}')
	case Map:
		sb.WriteByte('{')
		for i, item := range v {
			if i > 0 {
				sb.WriteString(", ")
			}
			write(sb, item.Key)
			sb.WriteString(": ")
			write(sb, item.Value)
		}
		sb.WriteByte('}')
	}
}

// formatFloat renders a float so that it re-coerces as a float: a whole
// number keeps a trailing ".0", otherwise Coerce would read it back as an
// integer. Exponent and non-finite forms already carry a marker byte.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

// Parse parses one literal value. The whole input must be consumed;
// trailing bytes are an error.
func Parse(s string) (Node, error) {
	p := &parser{src: s}
	n, err := p.parseNode(0)
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if p.off != len(p.src) {
		return nil, fmt.Errorf("trailing input at offset %d", p.off)
	}
	return n, nil
}

type parser struct {
	src string
	off int
}

func (p *parser) skipSpaces() {
	for p.off < len(p.src) && p.src[p.off] == ' ' {
		p.off++
	}
}

func (p *parser) peek() (byte, bool) {
	if p.off >= len(p.src) {
		return 0, false
	}
	return p.src[p.off], true
}

// parseNode parses the next value starting at the current offset.
func (p *parser) parseNode(depth int) (Node, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("nesting exceeds %d levels", MaxDepth)
	}
	p.skipSpaces()
	c, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of input at offset %d", p.off)
	}
	switch {
	case c == '[':
		return p.parseSeq(depth)
	case c == '{':
		return p.parseBrace(depth)
	case c == '\'':
		return p.parseText()
	case strings.HasPrefix(p.src[p.off:], "set()"):
		p.off += len("set()")
		return Set{}, nil
	default:
		return p.parseScalar()
	}
}

func (p *parser) parseSeq(depth int) (Node, error) {
	p.off++ // consume '['
	out := Seq{}
	p.skipSpaces()
	if c, ok := p.peek(); ok && c == ']' {
		p.off++
		return out, nil
	}
	for {
		item, err := p.parseNode(depth + 1)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
		p.skipSpaces()
		c, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated sequence at offset %d", p.off)
		}
		switch c {
		case ',':
			p.off++
		case ']':
			p.off++
			return out, nil
		default:
			return nil, fmt.Errorf("unexpected %q in sequence at offset %d", c, p.off)
		}
	}
}

// parseBrace handles both mappings and sets: a ':' after the first element
// commits to a mapping, anything else to a set.
func (p *parser) parseBrace(depth int) (Node, error) {
	p.off++ // consume '{'
	p.skipSpaces()
	if c, ok := p.peek(); ok && c == '}' {
		p.off++
		return Map{}, nil // {} is the empty mapping; the empty set is set()
	}

	first, err := p.parseNode(depth + 1)
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	c, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unterminated braces at offset %d", p.off)
	}
	if c == ':' {
		return p.parseMapRest(depth, first)
	}
	return p.parseSetRest(depth, first)
}

func (p *parser) parseMapRest(depth int, firstKey Node) (Node, error) {
	out := Map{}
	key := firstKey
	for {
		p.skipSpaces()
		c, ok := p.peek()
		if !ok || c != ':' {
			return nil, fmt.Errorf("expected ':' at offset %d", p.off)
		}
		p.off++
		val, err := p.parseNode(depth + 1)
		if err != nil {
			return nil, err
		}
		out = append(out, MapItem{Key: key, Value: val})
		p.skipSpaces()
		c, ok = p.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated mapping at offset %d", p.off)
		}
		switch c {
		case ',':
			p.off++
			key, err = p.parseNode(depth + 1)
			if err != nil {
				return nil, err
			}
		case '}':
			p.off++
			return out, nil
		default:
			return nil, fmt.Errorf("unexpected %q in mapping at offset %d", c, p.off)
		}
	}
}

func (p *parser) parseSetRest(depth int, first Node) (Node, error) {
	out := Set{first}
	for {
		p.skipSpaces()
		c, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated set at offset %d", p.off)
		}
		switch c {
		case ',':
			p.off++
			item, err := p.parseNode(depth + 1)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		case '}':
			p.off++
			return out, nil
		default:
			return nil, fmt.Errorf("unexpected %q in set at offset %d", c, p.off)
		}
	}
}

func (p *parser) parseText() (Node, error) {
	p.off++ // consume opening quote
	end := strings.IndexByte(p.src[p.off:], '\'')
	if end < 0 {
		return nil, fmt.Errorf("unterminated text at offset %d", p.off-1)
	}
	s := p.src[p.off : p.off+end]
	p.off += end + 1
	return Text(s), nil
}

// parseScalar reads an unquoted token up to the next structural byte and
// coerces it: integer syntax to Int, float syntax to Float, anything else
// to Text.
func (p *parser) parseScalar() (Node, error) {
	start := p.off
	for p.off < len(p.src) && !isStructural(p.src[p.off]) {
		p.off++
	}
	tok := strings.TrimRight(p.src[start:p.off], " ")
	if tok == "" {
		return nil, fmt.Errorf("empty value at offset %d", start)
	}
	return Coerce(tok), nil
}

func isStructural(c byte) bool {
	switch c {
	case ',', ':', ']', '}':
		return true
	}
	return false
}

// Coerce classifies an unquoted scalar token: integer syntax yields Int,
// float syntax yields Float, anything else stays Text.
func Coerce(tok string) Node {
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return Float(f)
	}
	return Text(tok)
}
