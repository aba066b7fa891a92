package gomap

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/jsondoc/go-jsondoc/debug"
	"github.com/jsondoc/go-jsondoc/ir"
)

// Marshaler is the capability a custom type implements to convert itself
// to a node.
type Marshaler interface {
	MarshalDoc() (*ir.Node, error)
}

// FromGo converts a Go value to an ir.Node. An *ir.Node argument is reused
// as-is, not copied; the caller manages the resulting aliasing.
func FromGo(v any) (*ir.Node, error) {
	return fromGo(v, "")
}

func fromGo(v any, path string) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return x, nil
	case Marshaler:
		node, err := x.MarshalDoc()
		if err != nil {
			return nil, &MarshalError{
				FieldPath: path,
				Message:   fmt.Sprintf("%T.MarshalDoc: %v", x, err),
				Err:       err,
			}
		}
		return node, nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return fromUint(uint64(x), path)
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return fromUint(x, path)
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case json.Number:
		return fromNumberLexeme(string(x)), nil
	case []any:
		return fromSeq(len(x), func(i int) any { return x[i] }, path)
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fromMapping(keys, func(k string) any { return x[k] }, path)
	}
	return fromGoReflect(v, path)
}

// fromGoReflect classifies named scalar types and generic sequence and
// mapping kinds the direct type switch cannot see.
func fromGoReflect(v any, path string) (*ir.Node, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return ir.FromBool(rv.Bool()), nil
	case reflect.String:
		return ir.FromString(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint(rv.Uint(), path)
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(rv.Float()), nil
	case reflect.Slice, reflect.Array:
		return fromSeq(rv.Len(), func(i int) any { return rv.Index(i).Interface() }, path)
	case reflect.Map:
		byText := make(map[string]any, rv.Len())
		keys := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := fmt.Sprint(iter.Key().Interface())
			byText[k] = iter.Value().Interface()
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fromMapping(keys, func(k string) any { return byText[k] }, path)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ir.Null(), nil
		}
		return fromGo(rv.Elem().Interface(), path)
	}
	// fallback: a generic text description
	if debug.Adapt() {
		debug.Logf("gomap: %T at %q falls back to text\n", v, path)
	}
	return ir.FromString(fmt.Sprint(v)), nil
}

func fromSeq(n int, at func(i int) any, path string) (*ir.Node, error) {
	elems := make([]*ir.Node, n)
	for i := range n {
		el, err := fromGo(at(i), path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		elems[i] = el
	}
	return ir.FromSlice(elems), nil
}

func fromMapping(keys []string, at func(k string) any, path string) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, 0, len(keys))
	for _, k := range keys {
		childPath := k
		if path != "" {
			childPath = path + "." + k
		}
		val, err := fromGo(at(k), childPath)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: k, Val: val})
	}
	return ir.FromKeyVals(kvs), nil
}

func fromUint(x uint64, path string) (*ir.Node, error) {
	if x > math.MaxInt64 {
		return nil, &MarshalError{
			FieldPath: path,
			Message:   fmt.Sprintf("uint value %d overflows int64", x),
		}
	}
	return ir.FromInt(int64(x)), nil
}

func fromNumberLexeme(lexeme string) *ir.Node {
	if i, err := strconv.ParseInt(lexeme, 10, 64); err == nil {
		return ir.FromNumberLexeme(lexeme, &i, nil)
	}
	if f, err := strconv.ParseFloat(lexeme, 64); err == nil {
		return ir.FromNumberLexeme(lexeme, nil, &f)
	}
	return ir.FromString(lexeme)
}

// ToGo converts a node to plain Go values: nil, bool, string, int64,
// float64, []any and map[string]any. Object field sequence follows
// storage order into an unordered map; layout metadata does not survive.
func ToGo(node *ir.Node) any {
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, el := range node.Values {
			res[i] = ToGo(el)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f.String] = ToGo(node.Values[i])
		}
		return res
	default:
		return nil
	}
}
