package parse

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/jsondoc/go-jsondoc/debug"
	"github.com/jsondoc/go-jsondoc/ir"
)

// Literal and character-class tables.
var (
	trueLit  = []byte("true")
	falseLit = []byte("false")
	nullLit  = []byte("null")

	numberChars = func() (t [256]bool) {
		for _, c := range []byte("0123456789-e.") {
			t[c] = true
		}
		return
	}()
)

// Parse returns the first recognized value in d. Skippable characters
// (whitespace, comma, colon) preceding it are consumed. Malformed input is
// a fatal *SyntaxError for the whole call.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{contents: d, opts: pOpts}
	var node *ir.Node
	for node == nil {
		var err error
		node, err = p.next(0)
		if err != nil {
			return nil, err
		}
	}
	if pOpts.strict {
		if err := p.rejectTrailing(); err != nil {
			return nil, err
		}
	}
	if debug.Parse() {
		debug.Logf("parsed %s through offset %d of %d\n", node.Type, p.index, len(d))
	}
	return node, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	contents []byte
	index    int
	count    int
	opts     *parseOpts
}

// next tries each recognizer in priority order and returns the produced
// value, or nil if a skippable character was consumed instead. The caller
// loops until a value is produced.
func (p *parser) next(depth int) (*ir.Node, error) {
	if depth > p.opts.maxDepth {
		return nil, syntaxErrf(p.index, "nesting exceeds depth %d", p.opts.maxDepth)
	}
	if p.index >= len(p.contents) {
		return nil, syntaxErrf(p.index, "unexpected end of input")
	}

	node, err := p.number()
	if node != nil || err != nil {
		return p.stamp(node), err
	}
	node, err = p.string()
	if node != nil || err != nil {
		return p.stamp(node), err
	}
	if node = p.boolean(); node != nil {
		return p.stamp(node), nil
	}
	if node = p.null(); node != nil {
		return p.stamp(node), nil
	}
	node, err = p.array(depth)
	if node != nil || err != nil {
		return p.stamp(node), err
	}
	node, err = p.object(depth)
	if node != nil || err != nil {
		return p.stamp(node), err
	}

	if p.canSkip() {
		p.index++
		return nil, nil
	}
	return nil, syntaxErrf(p.index, "no value recognized at %q", p.contents[p.index])
}

// stamp assigns the next Order ordinal. Recognizers stamp their children
// through recursive next calls first, so a container's ordinal always
// follows its children's.
func (p *parser) stamp(node *ir.Node) *ir.Node {
	if node == nil {
		return nil
	}
	node.Order = p.count
	p.count++
	return node
}

func (p *parser) canSkip() bool {
	switch p.contents[p.index] {
	case ' ', '\t', '\n', '\r', '\v', '\f', ',', ':':
		return true
	}
	return false
}

func (p *parser) rejectTrailing() error {
	for p.index < len(p.contents) {
		if !p.canSkip() {
			return syntaxErrf(p.index, "trailing content %q", p.contents[p.index])
		}
		p.index++
	}
	return nil
}

// number greedily consumes the number character class. An empty run means
// "not a number". The consumed lexeme is kept on the node; integral and
// fractional values are distinguished for later narrowing.
func (p *parser) number() (*ir.Node, error) {
	start := p.index
	for p.index < len(p.contents) && numberChars[p.contents[p.index]] {
		p.index++
	}
	if p.index == start {
		return nil, nil
	}
	lexeme := string(p.contents[start:p.index])
	if !strings.ContainsAny(lexeme, ".e") {
		i, err := strconv.ParseInt(lexeme, 10, 64)
		if err == nil {
			return ir.FromNumberLexeme(lexeme, &i, nil), nil
		}
	}
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return nil, syntaxErrf(start, "bad number %q", lexeme)
	}
	return ir.FromNumberLexeme(lexeme, nil, &f), nil
}

// string consumes raw characters between an unescaped pair of quotes.
// Escaping is an explicit boolean toggled on every backslash not itself
// escaped, so runs of backslashes terminate correctly. The captured text
// is stored exactly as scanned; escape sequences are not decoded.
func (p *parser) string() (*ir.Node, error) {
	if p.contents[p.index] != '"' {
		return nil, nil
	}
	start := p.index
	p.index++
	escaped := false
	for {
		if p.index >= len(p.contents) {
			return nil, syntaxErrf(start, "unterminated string")
		}
		c := p.contents[p.index]
		if c == '"' && !escaped {
			break
		}
		if c == '\\' {
			escaped = !escaped
		} else {
			escaped = false
		}
		p.index++
	}
	raw := string(p.contents[start+1 : p.index])
	p.index++
	return ir.FromString(raw), nil
}

func (p *parser) boolean() *ir.Node {
	if bytes.HasPrefix(p.contents[p.index:], trueLit) {
		p.index += len(trueLit)
		return ir.FromBool(true)
	}
	if bytes.HasPrefix(p.contents[p.index:], falseLit) {
		p.index += len(falseLit)
		return ir.FromBool(false)
	}
	return nil
}

func (p *parser) null() *ir.Node {
	if bytes.HasPrefix(p.contents[p.index:], nullLit) {
		p.index += len(nullLit)
		return ir.Null()
	}
	return nil
}

func (p *parser) array(depth int) (*ir.Node, error) {
	if p.contents[p.index] != '[' {
		return nil, nil
	}
	start := p.index
	p.index++
	arr := ir.NewArray()
	arr.Wrap = true
	for {
		if p.index >= len(p.contents) {
			return nil, syntaxErrf(start, "unterminated array")
		}
		if p.contents[p.index] == ']' {
			p.index++
			return arr, nil
		}
		child, err := p.next(depth + 1)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		child.Parent = arr
		child.ParentIndex = len(arr.Values)
		arr.Values = append(arr.Values, child)
	}
}

// object feeds produced values through a two-phase key/value queue: the
// first value after entering, or after completing a pair, must be a String
// (the key); the next becomes that key's value.
func (p *parser) object(depth int) (*ir.Node, error) {
	if p.contents[p.index] != '{' {
		return nil, nil
	}
	start := p.index
	p.index++
	obj := ir.NewObject()
	var key *ir.Node
	for {
		if p.index >= len(p.contents) {
			return nil, syntaxErrf(start, "unterminated object")
		}
		if p.contents[p.index] == '}' {
			p.index++
			if key != nil {
				return nil, syntaxErrf(p.index-1, "object key %q has no value", key.String)
			}
			return obj, nil
		}
		at := p.index
		child, err := p.next(depth + 1)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		if key == nil {
			if child.Type != ir.StringType {
				return nil, syntaxErrf(at, "expected object key, got %s", child.Type)
			}
			key = child
			continue
		}
		p.putField(obj, key, child)
		key = nil
	}
}

// putField appends a parsed key/value pair. A duplicate key updates the
// existing field's value in place, preserving the field's original Order
// and position.
func (p *parser) putField(obj, key, val *ir.Node) {
	for i := range obj.Fields {
		if obj.Fields[i].String == key.String {
			val.Order = obj.Values[i].Order
			val.Parent = obj
			val.ParentIndex = i
			val.ParentField = key.String
			obj.Values[i] = val
			return
		}
	}
	i := len(obj.Fields)
	key.Parent = obj
	key.ParentIndex = i
	key.ParentField = key.String
	val.Parent = obj
	val.ParentIndex = i
	val.ParentField = key.String
	obj.Fields = append(obj.Fields, key)
	obj.Values = append(obj.Values, val)
}
