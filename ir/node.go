package ir

import (
	"maps"
	"slices"
)

// Node is the tagged-union value at the center of the document model.
//
// Exactly one payload variant is populated at a time, selected by Type:
// String, Bool, Number/Int64/Float64, Values (arrays), or Fields+Values
// (objects). For objects, Fields[i] is the String-typed key node for
// Values[i].
//
// Parent, ParentIndex and ParentField are back-references maintained by the
// container a node is stored in; ParentField is the key under which a node
// is stored in an object, empty for array elements and roots.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64

	// Order is the monotonic ordinal stamped at parse or insertion time.
	// It is the default sort key for object fields when rendering.
	Order int

	// Wrap selects one-child-per-line rendering for containers. Scalars
	// and objects default to true, freshly constructed arrays to false.
	Wrap bool

	// Comparator, when set on an object, overrides Order as the total
	// order of its fields during rendering. It is applied to field values.
	Comparator func(a, b *Node) int

	// bumped on every mutation, lets ForEach fail fast
	gen uint32
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.ParentField = n.ParentField
	dst.Type = n.Type
	dst.Order = n.Order
	dst.Wrap = n.Wrap
	dst.Comparator = n.Comparator
	dst.Values = make([]*Node, len(n.Values))
	dst.Fields = make([]*Node, len(n.Fields))
	for i, v := range n.Values {
		dstI := &Node{}
		v.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = v.ParentField
		dst.Values[i] = dstI
	}
	for i, f := range n.Fields {
		dstI := &Node{}
		f.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = f.String
		dst.Fields[i] = dstI
	}
	dst.String = n.String
	dst.Number = n.Number
	if n.Float64 != nil {
		f := *n.Float64
		dst.Float64 = &f
	}
	if n.Int64 != nil {
		i := *n.Int64
		dst.Int64 = &i
	}
	dst.Bool = n.Bool
	return dst
}

func Null() *Node {
	return &Node{Type: NullType, Wrap: true}
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	p.Wrap = true
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
		Wrap:  true,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
		Wrap:    true,
	}
}

// FromNumberLexeme keeps the scanned numeric text alongside the parsed
// value so rendering can reproduce the input verbatim.
func FromNumberLexeme(lexeme string, i *int64, f *float64) *Node {
	return &Node{
		Type:    NumberType,
		Number:  lexeme,
		Int64:   i,
		Float64: f,
		Wrap:    true,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
		Wrap: true,
	}
}

// NewObject returns an empty object. Objects default to wrapped rendering.
func NewObject() *Node {
	return &Node{Type: ObjectType, Wrap: true}
}

// NewArray returns an empty array. Freshly constructed arrays render
// inline until Wrap is set.
func NewArray() *Node {
	return &Node{Type: ArrayType}
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// FromMap builds an object from a map, with fields in sorted key order.
func FromMap(m map[string]*Node) *Node {
	res := NewObject()
	res.Fields = make([]*Node, len(m))
	res.Values = make([]*Node, len(m))
	keys := slices.Sorted(maps.Keys(m))
	for i, key := range keys {
		v := m[key]
		v.Parent = res
		v.ParentIndex = i
		v.ParentField = key
		v.Order = i
		field := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
			Wrap:        true,
		}
		res.Fields[i] = field
		res.Values[i] = v
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object preserving the given field sequence.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewObject()
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		field := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: kv.Key,
			Type:        StringType,
			String:      kv.Key,
			Wrap:        true,
		}
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key
		kv.Val.Order = i
		res.Fields[i] = field
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := NewArray()
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		res.Values[i] = v
		v.Parent = res
		v.ParentIndex = i
	}
	return res
}

// Get returns the value stored under field, or nil. It does not
// type-check the receiver; see Field for the checked variant.
func Get(n *Node, field string) *Node {
	for i := range n.Fields {
		if n.Fields[i].String == field {
			return n.Values[i]
		}
	}
	return nil
}

// Visit walks the tree pre- and post-order. f is called with isPost false
// before descending; returning dive false skips the node's children. f is
// called again with isPost true after the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
