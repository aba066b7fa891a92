package ir

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a missing object field or array index.
var ErrNotFound = errors.New("not found")

// Typed accessors. Each asserts the node's Type first and returns a
// *TypeError naming the expected and actual types on mismatch. There is no
// coercion between Null, Number, String, Bool, Array and Object.

func (n *Node) AsString() (string, error) {
	if n.Type != StringType {
		return "", wrongType(StringType, n.Type)
	}
	return n.String, nil
}

func (n *Node) AsBool() (bool, error) {
	if n.Type != BoolType {
		return false, wrongType(BoolType, n.Type)
	}
	return n.Bool, nil
}

// AsInt64 returns the numeric payload as an int64. Fractional numbers are
// truncated toward zero.
func (n *Node) AsInt64() (int64, error) {
	if n.Type != NumberType {
		return 0, wrongType(NumberType, n.Type)
	}
	if n.Int64 != nil {
		return *n.Int64, nil
	}
	if n.Float64 != nil {
		return int64(*n.Float64), nil
	}
	return 0, nil
}

func (n *Node) AsFloat64() (float64, error) {
	if n.Type != NumberType {
		return 0, wrongType(NumberType, n.Type)
	}
	if n.Float64 != nil {
		return *n.Float64, nil
	}
	if n.Int64 != nil {
		return float64(*n.Int64), nil
	}
	return 0, nil
}

// Numeric narrowings.

func (n *Node) AsInt() (int, error) {
	v, err := n.AsInt64()
	return int(v), err
}

func (n *Node) AsInt32() (int32, error) {
	v, err := n.AsInt64()
	return int32(v), err
}

func (n *Node) AsInt16() (int16, error) {
	v, err := n.AsInt64()
	return int16(v), err
}

func (n *Node) AsInt8() (int8, error) {
	v, err := n.AsInt64()
	return int8(v), err
}

func (n *Node) AsFloat32() (float32, error) {
	v, err := n.AsFloat64()
	return float32(v), err
}

// IsInt reports whether a number node holds an integral value.
func (n *Node) IsInt() bool {
	return n.Type == NumberType && n.Int64 != nil
}

func (n *Node) IsNull() bool {
	return n.Type == NullType
}

// Len returns the number of elements of an array or fields of an object,
// and 0 for scalars.
func (n *Node) Len() int {
	switch n.Type {
	case ArrayType:
		return len(n.Values)
	case ObjectType:
		return len(n.Fields)
	default:
		return 0
	}
}

// Elem returns the i-th element of an array.
func (n *Node) Elem(i int) (*Node, error) {
	if n.Type != ArrayType {
		return nil, wrongType(ArrayType, n.Type)
	}
	if i < 0 || i >= len(n.Values) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrNotFound, i, len(n.Values))
	}
	return n.Values[i], nil
}

// Field returns the value stored under key in an object.
func (n *Node) Field(key string) (*Node, error) {
	if n.Type != ObjectType {
		return nil, wrongType(ObjectType, n.Type)
	}
	if v := Get(n, key); v != nil {
		return v, nil
	}
	return nil, fmt.Errorf("%w: field %q", ErrNotFound, key)
}

// Has reports whether an object has the given field.
func (n *Node) Has(key string) bool {
	return n.Type == ObjectType && Get(n, key) != nil
}

// Keys returns an object's field names in storage order.
func (n *Node) Keys() []string {
	if n.Type != ObjectType {
		return nil
	}
	res := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		res[i] = f.String
	}
	return res
}

// Compound accessors over object fields.

func (n *Node) FieldString(key string) (string, error) {
	v, err := n.Field(key)
	if err != nil {
		return "", err
	}
	return v.AsString()
}

func (n *Node) FieldBool(key string) (bool, error) {
	v, err := n.Field(key)
	if err != nil {
		return false, err
	}
	return v.AsBool()
}

func (n *Node) FieldInt64(key string) (int64, error) {
	v, err := n.Field(key)
	if err != nil {
		return 0, err
	}
	return v.AsInt64()
}

func (n *Node) FieldFloat64(key string) (float64, error) {
	v, err := n.Field(key)
	if err != nil {
		return 0, err
	}
	return v.AsFloat64()
}

// Compound accessors over array elements.

func (n *Node) ElemString(i int) (string, error) {
	v, err := n.Elem(i)
	if err != nil {
		return "", err
	}
	return v.AsString()
}

func (n *Node) ElemBool(i int) (bool, error) {
	v, err := n.Elem(i)
	if err != nil {
		return false, err
	}
	return v.AsBool()
}

func (n *Node) ElemInt64(i int) (int64, error) {
	v, err := n.Elem(i)
	if err != nil {
		return 0, err
	}
	return v.AsInt64()
}

func (n *Node) ElemFloat64(i int) (float64, error) {
	v, err := n.Elem(i)
	if err != nil {
		return 0, err
	}
	return v.AsFloat64()
}
