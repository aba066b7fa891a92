package ir

import (
	"errors"
	"strings"
	"testing"
)

func TestAccessorWrongType(t *testing.T) {
	num := FromInt(42)
	_, err := num.AsBool()
	if err == nil {
		t.Fatal("AsBool on Number: no error")
	}
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want *TypeError", err)
	}
	if te.Expected != BoolType || te.Actual != NumberType {
		t.Errorf("TypeError = %+v", te)
	}
	// the message names both sides
	msg := err.Error()
	if !strings.Contains(msg, "Bool") || !strings.Contains(msg, "Number") {
		t.Errorf("message %q does not name expected and actual types", msg)
	}
	if !errors.Is(err, ErrWrongType) {
		t.Errorf("err does not unwrap to ErrWrongType")
	}
}

func TestNumericNarrowing(t *testing.T) {
	n := FromInt(1000)
	if v, err := n.AsInt64(); err != nil || v != 1000 {
		t.Errorf("AsInt64 = %d, %v", v, err)
	}
	if v, err := n.AsInt16(); err != nil || v != 1000 {
		t.Errorf("AsInt16 = %d, %v", v, err)
	}
	if v, err := FromInt(100).AsInt8(); err != nil || v != 100 {
		t.Errorf("AsInt8 = %d, %v", v, err)
	}
	if v, err := n.AsFloat64(); err != nil || v != 1000.0 {
		t.Errorf("AsFloat64 = %f, %v", v, err)
	}

	f := FromFloat(2.9)
	if v, err := f.AsInt64(); err != nil || v != 2 {
		t.Errorf("AsInt64 of 2.9 = %d, %v, want 2", v, err)
	}
	if !n.IsInt() || f.IsInt() {
		t.Errorf("IsInt: int %v float %v", n.IsInt(), f.IsInt())
	}
}

func TestFieldAndElem(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "s", Val: FromString("v")},
		{Key: "arr", Val: FromSlice([]*Node{FromBool(true)})},
	})
	if v, err := obj.FieldString("s"); err != nil || v != "v" {
		t.Errorf("FieldString = %q, %v", v, err)
	}
	arr, err := obj.Field("arr")
	if err != nil {
		t.Fatal(err)
	}
	if v, err := arr.ElemBool(0); err != nil || !v {
		t.Errorf("ElemBool = %v, %v", v, err)
	}
	if _, err := arr.Elem(5); !errors.Is(err, ErrNotFound) {
		t.Errorf("out of range err = %v", err)
	}
	if _, err := obj.Field("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing field err = %v", err)
	}
	if _, err := arr.Field("x"); !errors.Is(err, ErrWrongType) {
		t.Errorf("Field on array err = %v", err)
	}
}

func TestCloneIndependence(t *testing.T) {
	obj := FromKeyVals([]KeyVal{{Key: "a", Val: FromSlice([]*Node{FromInt(1)})}})
	cp := obj.Clone()
	if !Equal(obj, cp) {
		t.Fatal("clone not equal")
	}
	if err := cp.PutInt("b", 2); err != nil {
		t.Fatal(err)
	}
	if obj.Has("b") {
		t.Errorf("mutating clone changed original")
	}
	inner, _ := cp.Field("a")
	if inner.Parent != cp {
		t.Errorf("clone children not re-parented")
	}
}
