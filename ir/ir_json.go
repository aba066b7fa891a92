package ir

import (
	"encoding/json"
	"fmt"
)

// The IR itself marshals to and from JSON via encoding/json. This is an
// interchange and debugging representation of the tree, not the document
// text format (see the parse and encode packages for that). Comparator is
// a function and does not survive the round trip.

type irBase struct {
	Type   Type    `json:"type"`
	Fields []*Node `json:"fields,omitempty"`
	Values []*Node `json:"values,omitempty"`

	Number  string   `json:"number,omitempty"`
	Float64 *float64 `json:"float,omitempty"`
	Int64   *int64   `json:"int,omitempty"`

	Order int  `json:"order,omitempty"`
	Wrap  bool `json:"wrap,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:    n.Type,
		Fields:  n.Fields,
		Values:  n.Values,
		Number:  n.Number,
		Float64: n.Float64,
		Int64:   n.Int64,
		Order:   n.Order,
		Wrap:    n.Wrap,
	}
	switch n.Type {
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: n.String})
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: *base, Bool: n.Bool})
	default:
		return json.Marshal(base)
	}
}

func (n *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
		Bool   bool   `json:"bool"`
	}
	tmp := &C{irBase: irBase{}}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	n.Type = tmp.Type
	n.Values = tmp.Values
	n.Fields = tmp.Fields
	n.Bool = tmp.Bool
	n.String = tmp.String
	n.Number = tmp.Number
	n.Int64 = tmp.Int64
	n.Float64 = tmp.Float64
	n.Order = tmp.Order
	n.Wrap = tmp.Wrap

	switch n.Type {
	case ObjectType:
		if len(n.Fields) != len(n.Values) {
			return fmt.Errorf("object with %d fields and %d values", len(n.Fields), len(n.Values))
		}
		for i, f := range n.Fields {
			if f.Type != StringType {
				return fmt.Errorf("invalid field type %s", f.Type)
			}
			f.Parent = n
			f.ParentIndex = i
			f.ParentField = f.String
		}
		for i, v := range n.Values {
			v.Parent = n
			v.ParentIndex = i
			v.ParentField = n.Fields[i].String
		}
	case ArrayType:
		if len(n.Fields) != 0 {
			return fmt.Errorf("array with %d fields", len(n.Fields))
		}
		for i, v := range n.Values {
			v.Parent = n
			v.ParentIndex = i
		}
	default:
		if len(n.Fields) != 0 || len(n.Values) != 0 {
			return fmt.Errorf("%s with children", n.Type)
		}
	}
	return nil
}
