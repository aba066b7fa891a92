package gomap

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/jsondoc/go-jsondoc/ir"
)

func TestFromGoScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *ir.Node
	}{
		{"nil", nil, ir.Null()},
		{"bool", true, ir.FromBool(true)},
		{"string", "hi", ir.FromString("hi")},
		{"int", 7, ir.FromInt(7)},
		{"int8", int8(-3), ir.FromInt(-3)},
		{"uint32", uint32(9), ir.FromInt(9)},
		{"float64", 1.5, ir.FromFloat(1.5)},
		{"float32", float32(0.5), ir.FromFloat(0.5)},
		{"json.Number int", json.Number("12"), ir.FromInt(12)},
		{"json.Number float", json.Number("1.5"), ir.FromFloat(1.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromGo(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(got, tt.want) {
				t.Errorf("FromGo(%v) = %s, want %s", tt.in, got.Type, tt.want.Type)
			}
		})
	}
}

func TestFromGoContainers(t *testing.T) {
	got, err := FromGo([]any{1, "two", true, nil})
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromSlice([]*ir.Node{
		ir.FromInt(1), ir.FromString("two"), ir.FromBool(true), ir.Null(),
	})
	if !ir.Equal(got, want) {
		t.Errorf("sequence classification mismatch")
	}

	got, err = FromGo(map[string]any{"b": 2, "a": []any{1}})
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.ObjectType {
		t.Fatalf("Type = %s", got.Type)
	}
	// map keys sorted for determinism
	keys := got.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("keys = %v", keys)
	}
}

func TestFromGoGenericKinds(t *testing.T) {
	// typed slice and map, and keys coerced to text
	got, err := FromGo(map[int]string{2: "b", 1: "a"})
	if err != nil {
		t.Fatal(err)
	}
	keys := got.Keys()
	if len(keys) != 2 || keys[0] != "1" || keys[1] != "2" {
		t.Errorf("keys = %v", keys)
	}

	got, err = FromGo([]int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.ArrayType || got.Len() != 3 {
		t.Errorf("typed slice = %s len %d", got.Type, got.Len())
	}

	// named scalar kind
	type level int
	got, err = FromGo(level(4))
	if err != nil {
		t.Fatal(err)
	}
	if v, err := got.AsInt64(); err != nil || v != 4 {
		t.Errorf("named int = %d, %v", v, err)
	}
}

func TestFromGoNodeReused(t *testing.T) {
	n := ir.FromString("keep me")
	got, err := FromGo([]any{n})
	if err != nil {
		t.Fatal(err)
	}
	if got.Values[0] != n {
		t.Errorf("node was copied, not reused")
	}
}

func TestFromGoUintOverflow(t *testing.T) {
	_, err := FromGo(map[string]any{"big": uint64(math.MaxUint64)})
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Fatalf("err = %v, want *MarshalError", err)
	}
	if me.FieldPath != "big" {
		t.Errorf("FieldPath = %q", me.FieldPath)
	}
}

type point struct{ X, Y int }

func (p point) MarshalDoc() (*ir.Node, error) {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "x", Val: ir.FromInt(int64(p.X))},
		{Key: "y", Val: ir.FromInt(int64(p.Y))},
	}), nil
}

func TestMarshalerCapability(t *testing.T) {
	got, err := FromGo(point{X: 1, Y: 2})
	if err != nil {
		t.Fatal(err)
	}
	if v, err := got.FieldInt64("y"); err != nil || v != 2 {
		t.Errorf("y = %d, %v", v, err)
	}
}

type plain struct{ A int }

func TestFromGoFallbackText(t *testing.T) {
	// a struct with no capability lands in the text fallback
	got, err := FromGo(plain{A: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.StringType {
		t.Errorf("fallback Type = %s", got.Type)
	}
}

func TestToGoRoundTrip(t *testing.T) {
	in := map[string]any{
		"n":  int64(1),
		"f":  2.5,
		"s":  "x",
		"b":  false,
		"xs": []any{int64(1), "y"},
	}
	node, err := FromGo(in)
	if err != nil {
		t.Fatal(err)
	}
	out, ok := ToGo(node).(map[string]any)
	if !ok {
		t.Fatalf("ToGo = %T", ToGo(node))
	}
	if out["n"] != int64(1) || out["f"] != 2.5 || out["s"] != "x" || out["b"] != false {
		t.Errorf("ToGo = %v", out)
	}
	xs, ok := out["xs"].([]any)
	if !ok || len(xs) != 2 || xs[0] != int64(1) || xs[1] != "y" {
		t.Errorf("xs = %v", out["xs"])
	}
}
