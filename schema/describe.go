package schema

import (
	"errors"
	"fmt"

	"github.com/jsondoc/go-jsondoc/ir"
)

var (
	ErrNull           = errors.New("cannot describe a null value")
	ErrNotImplemented = errors.New("validation not implemented")
)

// Describe builds a descriptor tree for doc. It is a pure function of the
// document's structure; layout metadata is not described.
func Describe(doc *ir.Node) (*ir.Node, error) {
	switch doc.Type {
	case ir.NullType:
		return nil, ErrNull
	case ir.NumberType:
		return kindDescriptor("number"), nil
	case ir.StringType:
		return kindDescriptor("string"), nil
	case ir.BoolType:
		return kindDescriptor("boolean"), nil
	case ir.ArrayType:
		items := ir.NewArray()
		items.Wrap = doc.Wrap
		for _, el := range doc.Values {
			d, err := Describe(el)
			if err != nil {
				return nil, err
			}
			if err := items.Add(d); err != nil {
				return nil, err
			}
		}
		return ir.FromKeyVals([]ir.KeyVal{
			{Key: "type", Val: ir.FromString("array")},
			{Key: "items", Val: items},
		}), nil
	case ir.ObjectType:
		props := ir.NewObject()
		for i, f := range doc.Fields {
			d, err := Describe(doc.Values[i])
			if err != nil {
				return nil, err
			}
			if err := props.Put(f.String, d); err != nil {
				return nil, err
			}
		}
		return ir.FromKeyVals([]ir.KeyVal{
			{Key: "type", Val: ir.FromString("object")},
			{Key: "properties", Val: props},
		}), nil
	default:
		return nil, fmt.Errorf("cannot describe node type %d", int(doc.Type))
	}
}

func kindDescriptor(kind string) *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "type", Val: ir.FromString(kind)},
	})
}

// Validate checks doc against a descriptor produced by Describe.
//
// TODO: implement structural validation against descriptor trees.
func Validate(descriptor, doc *ir.Node) (bool, error) {
	return false, ErrNotImplemented
}
