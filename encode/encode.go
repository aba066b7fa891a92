package encode

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/jsondoc/go-jsondoc/ir"
)

type EncState struct {
	depth, indent int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes the rendered form of node to w.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

// String renders node to a string.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	var sb strings.Builder
	if err := Encode(node, &sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) indentString() string {
	return strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return writeString(w, applyColor(es, ir.StringType, ValueColor, `"`+node.String+`"`))
	case ir.NumberType:
		return writeString(w, applyColor(es, ir.NumberType, ValueColor, numberText(node)))
	case ir.BoolType:
		return writeString(w, applyColor(es, ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NullType:
		return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
	default:
		return fmt.Errorf("cannot encode node type %d", int(node.Type))
	}
}

// numberText prefers the scanned lexeme so parsed documents reproduce
// their input verbatim.
func numberText(node *ir.Node) string {
	if node.Number != "" {
		return node.Number
	}
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 != nil {
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	}
	return "0"
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	open := applyColor(es, ir.ArrayType, SepColor, "[")
	clos := applyColor(es, ir.ArrayType, SepColor, "]")
	if len(node.Values) == 0 {
		return writeString(w, open+clos)
	}
	if err := writeString(w, open); err != nil {
		return err
	}
	es.depth++
	for i, el := range node.Values {
		if err := writeChildPrefix(i, node, w, es); err != nil {
			return err
		}
		if err := encode(el, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeClose(node, w, es, clos)
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	open := applyColor(es, ir.ObjectType, SepColor, "{")
	clos := applyColor(es, ir.ObjectType, SepColor, "}")
	if len(node.Fields) == 0 {
		return writeString(w, open+clos)
	}
	if err := writeString(w, open); err != nil {
		return err
	}
	es.depth++
	for i, fi := range fieldOrder(node) {
		if err := writeChildPrefix(i, node, w, es); err != nil {
			return err
		}
		key := applyColor(es, ir.ObjectType, FieldColor, `"`+node.Fields[fi].String+`"`)
		if err := writeString(w, key+": "); err != nil {
			return err
		}
		if err := encode(node.Values[fi], w, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeClose(node, w, es, clos)
}

// fieldOrder returns field indices in rendering order: the Comparator
// applied to field values when set, ascending Order otherwise. Both sorts
// are stable, so ties keep insertion order.
func fieldOrder(node *ir.Node) []int {
	idx := make([]int, len(node.Fields))
	for i := range idx {
		idx[i] = i
	}
	if cmpFn := node.Comparator; cmpFn != nil {
		slices.SortStableFunc(idx, func(a, b int) int {
			return cmpFn(node.Values[a], node.Values[b])
		})
		return idx
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return node.Values[a].Order - node.Values[b].Order
	})
	return idx
}

// writeChildPrefix emits the separator before the i-th child and, for
// wrapped containers, the newline and one-level-deeper indent.
func writeChildPrefix(i int, node *ir.Node, w io.Writer, es *EncState) error {
	sep := ""
	if i > 0 {
		if node.Wrap {
			sep = applyColor(es, node.Type, SepColor, ",")
		} else {
			sep = applyColor(es, node.Type, SepColor, ", ")
		}
	}
	if err := writeString(w, sep); err != nil {
		return err
	}
	if !node.Wrap {
		return nil
	}
	return writeString(w, "\n"+es.indentString())
}

// writeClose emits the closing delimiter, at the container's own indent
// for wrapped containers.
func writeClose(node *ir.Node, w io.Writer, es *EncState, clos string) error {
	if node.Wrap {
		if err := writeString(w, "\n"+es.indentString()); err != nil {
			return err
		}
	}
	return writeString(w, clos)
}
