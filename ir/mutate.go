package ir

import (
	"fmt"
	"slices"
)

// reset clears every payload variant. Layout metadata (Order, Wrap,
// Comparator) and parent back-references are untouched.
func (n *Node) reset() {
	n.String = ""
	n.Bool = false
	n.Number = ""
	n.Int64 = nil
	n.Float64 = nil
	n.Fields = nil
	n.Values = nil
	n.gen++
}

// Variant switches. Each atomically clears all other payload fields before
// setting the new tag and payload.

func (n *Node) SetNull() {
	n.reset()
	n.Type = NullType
}

func (n *Node) SetString(v string) {
	n.reset()
	n.Type = StringType
	n.String = v
}

func (n *Node) SetInt(v int64) {
	n.reset()
	n.Type = NumberType
	n.Int64 = &v
}

func (n *Node) SetFloat(v float64) {
	n.reset()
	n.Type = NumberType
	n.Float64 = &v
}

func (n *Node) SetBool(v bool) {
	n.reset()
	n.Type = BoolType
	n.Bool = v
}

func (n *Node) SetArray() {
	n.reset()
	n.Type = ArrayType
}

func (n *Node) SetObject() {
	n.reset()
	n.Type = ObjectType
}

// setFrom replaces n's tag and payload with src's, keeping n's Order,
// parent back-references and position. Used by Put for update-in-place.
func (n *Node) setFrom(src *Node) {
	n.reset()
	n.Type = src.Type
	n.String = src.String
	n.Bool = src.Bool
	n.Number = src.Number
	n.Int64 = src.Int64
	n.Float64 = src.Float64
	n.Fields = src.Fields
	n.Values = src.Values
	n.Wrap = src.Wrap
	n.Comparator = src.Comparator
	for i, f := range n.Fields {
		f.Parent = n
		f.ParentIndex = i
	}
	for i, v := range n.Values {
		v.Parent = n
		v.ParentIndex = i
	}
}

// nextOrder returns an ordinal greater than every field's in the object.
func (n *Node) nextOrder() int {
	next := 0
	for _, v := range n.Values {
		if v.Order >= next {
			next = v.Order + 1
		}
	}
	return next
}

// Put stores v under key in an object. If the key exists, the existing
// child's payload is replaced in place, preserving its Order, name and
// position. Otherwise v is appended and stamped with the next Order.
func (n *Node) Put(key string, v *Node) error {
	if n.Type != ObjectType {
		return wrongType(ObjectType, n.Type)
	}
	n.gen++
	if existing := Get(n, key); existing != nil {
		existing.setFrom(v)
		return nil
	}
	i := len(n.Fields)
	field := &Node{
		Parent:      n,
		ParentIndex: i,
		ParentField: key,
		Type:        StringType,
		String:      key,
		Wrap:        true,
	}
	v.Parent = n
	v.ParentIndex = i
	v.ParentField = key
	v.Order = n.nextOrder()
	n.Fields = append(n.Fields, field)
	n.Values = append(n.Values, v)
	return nil
}

func (n *Node) PutString(key, v string) error {
	return n.Put(key, FromString(v))
}

func (n *Node) PutInt(key string, v int64) error {
	return n.Put(key, FromInt(v))
}

func (n *Node) PutFloat(key string, v float64) error {
	return n.Put(key, FromFloat(v))
}

func (n *Node) PutBool(key string, v bool) error {
	return n.Put(key, FromBool(v))
}

func (n *Node) PutNull(key string) error {
	return n.Put(key, Null())
}

// Add appends v to an array.
func (n *Node) Add(v *Node) error {
	if n.Type != ArrayType {
		return wrongType(ArrayType, n.Type)
	}
	n.gen++
	v.Parent = n
	v.ParentIndex = len(n.Values)
	n.Values = append(n.Values, v)
	return nil
}

func (n *Node) AddString(v string) error {
	return n.Add(FromString(v))
}

func (n *Node) AddInt(v int64) error {
	return n.Add(FromInt(v))
}

func (n *Node) AddFloat(v float64) error {
	return n.Add(FromFloat(v))
}

func (n *Node) AddBool(v bool) error {
	return n.Add(FromBool(v))
}

// Insert places v at index i in an array, shifting later elements. Array
// order is positional, so no Order renumbering is needed.
func (n *Node) Insert(i int, v *Node) error {
	if n.Type != ArrayType {
		return wrongType(ArrayType, n.Type)
	}
	if i < 0 || i > len(n.Values) {
		return fmt.Errorf("%w: index %d of %d", ErrNotFound, i, len(n.Values))
	}
	n.gen++
	v.Parent = n
	n.Values = slices.Insert(n.Values, i, v)
	for j := i; j < len(n.Values); j++ {
		n.Values[j].ParentIndex = j
	}
	return nil
}

// detach clears a removed node's back-references. Descendants are left
// intact; removal never frees the subtree.
func (n *Node) detach() *Node {
	n.Parent = nil
	n.ParentIndex = 0
	n.ParentField = ""
	return n
}

// RemoveField removes key from an object and returns the detached value.
func (n *Node) RemoveField(key string) (*Node, error) {
	if n.Type != ObjectType {
		return nil, wrongType(ObjectType, n.Type)
	}
	for i := range n.Fields {
		if n.Fields[i].String != key {
			continue
		}
		n.gen++
		removed := n.Values[i]
		n.Fields = slices.Delete(n.Fields, i, i+1)
		n.Values = slices.Delete(n.Values, i, i+1)
		for j := i; j < len(n.Values); j++ {
			n.Fields[j].ParentIndex = j
			n.Values[j].ParentIndex = j
		}
		return removed.detach(), nil
	}
	return nil, fmt.Errorf("%w: field %q", ErrNotFound, key)
}

// RemoveElem removes the i-th element of an array and returns it.
func (n *Node) RemoveElem(i int) (*Node, error) {
	if n.Type != ArrayType {
		return nil, wrongType(ArrayType, n.Type)
	}
	if i < 0 || i >= len(n.Values) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrNotFound, i, len(n.Values))
	}
	n.gen++
	removed := n.Values[i]
	n.Values = slices.Delete(n.Values, i, i+1)
	for j := i; j < len(n.Values); j++ {
		n.Values[j].ParentIndex = j
	}
	return removed.detach(), nil
}

// Typed removals. The target is type-checked before being removed; on
// mismatch the object is left unchanged and a *TypeError is returned.

func (n *Node) removeTyped(key string, want Type) (*Node, error) {
	v, err := n.Field(key)
	if err != nil {
		return nil, err
	}
	if v.Type != want {
		return nil, wrongType(want, v.Type)
	}
	return n.RemoveField(key)
}

func (n *Node) RemoveString(key string) (*Node, error) {
	return n.removeTyped(key, StringType)
}

func (n *Node) RemoveBool(key string) (*Node, error) {
	return n.removeTyped(key, BoolType)
}

func (n *Node) RemoveNumber(key string) (*Node, error) {
	return n.removeTyped(key, NumberType)
}

func (n *Node) RemoveArray(key string) (*Node, error) {
	return n.removeTyped(key, ArrayType)
}

func (n *Node) RemoveObject(key string) (*Node, error) {
	return n.removeTyped(key, ObjectType)
}

// ForEach calls f once per element of an array or field of an object, in
// storage order. key is empty for array elements. Mutating the container
// during iteration stops the walk with ErrConcurrentMod.
func (n *Node) ForEach(f func(i int, key string, v *Node) error) error {
	switch n.Type {
	case ArrayType, ObjectType:
	default:
		return wrongType(ArrayType, n.Type)
	}
	gen := n.gen
	for i, v := range n.Values {
		key := ""
		if n.Type == ObjectType {
			key = n.Fields[i].String
		}
		if err := f(i, key, v); err != nil {
			return err
		}
		if n.gen != gen {
			return ErrConcurrentMod
		}
	}
	return nil
}
