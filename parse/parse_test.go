package parse

import (
	"errors"
	"testing"

	"github.com/jsondoc/go-jsondoc/ir"
)

type parseTest struct {
	name string
	in   string
	want *ir.Node
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{name: "null", in: `null`, want: ir.Null()},
		{name: "true", in: `true`, want: ir.FromBool(true)},
		{name: "false", in: `false`, want: ir.FromBool(false)},
		{name: "int", in: `22`, want: ir.FromInt(22)},
		{name: "negative", in: `-7`, want: ir.FromInt(-7)},
		{name: "float", in: `1.25`, want: ir.FromFloat(1.25)},
		{name: "exponent", in: `1e14`, want: ir.FromFloat(1e14)},
		{name: "string", in: `"hello"`, want: ir.FromString("hello")},
		{name: "empty string", in: `""`, want: ir.FromString("")},
		{name: "leading space", in: `  42`, want: ir.FromInt(42)},
		{
			name: "array",
			in:   `[1, 2, 3]`,
			want: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)}),
		},
		{name: "empty array", in: `[]`, want: ir.FromSlice(nil)},
		{name: "nested array", in: `[[1],[2,[3]]]`, want: ir.FromSlice([]*ir.Node{
			ir.FromSlice([]*ir.Node{ir.FromInt(1)}),
			ir.FromSlice([]*ir.Node{ir.FromInt(2), ir.FromSlice([]*ir.Node{ir.FromInt(3)})}),
		})},
		{name: "empty object", in: `{}`, want: ir.NewObject()},
		{
			name: "object",
			in:   `{"a": 1, "b": "x"}`,
			want: ir.FromKeyVals([]ir.KeyVal{
				{Key: "a", Val: ir.FromInt(1)},
				{Key: "b", Val: ir.FromString("x")},
			}),
		},
		{
			name: "separators interchangeable",
			in:   "{\"a\",1:\n\"b\"::\"x\"}",
			want: ir.FromKeyVals([]ir.KeyVal{
				{Key: "a", Val: ir.FromInt(1)},
				{Key: "b", Val: ir.FromString("x")},
			}),
		},
		{
			name: "mixed nesting",
			in:   `{"nums": [1, 2.5], "ok": true, "none": null}`,
			want: ir.FromKeyVals([]ir.KeyVal{
				{Key: "nums", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromFloat(2.5)})},
				{Key: "ok", Val: ir.FromBool(true)},
				{Key: "none", Val: ir.Null()},
			}),
		},
		{name: "first value wins", in: `1 2 3`, want: ir.FromInt(1)},
		{name: "trailing ignored", in: `{} garbage`, want: ir.NewObject()},
	}

	for _, pt := range pts {
		t.Run(pt.name, func(t *testing.T) {
			got, err := ParseString(pt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", pt.in, err)
			}
			if !ir.Equal(got, pt.want) {
				t.Errorf("Parse(%q) = %v, want %v", pt.in, got.Type, pt.want.Type)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	pts := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"unterminated string", `"abc`},
		{"unterminated array", `[1, 2`},
		{"unterminated object", `{"a": 1`},
		{"dangling key", `{"a"}`},
		{"non-string key", `{1: 2}`},
		{"bad number", `1.2.3`},
		{"bare minus", `-`},
		{"unrecognized", `@`},
		{"bad literal", `tru]`},
	}
	for _, pt := range pts {
		t.Run(pt.name, func(t *testing.T) {
			_, err := ParseString(pt.in)
			if err == nil {
				t.Fatalf("Parse(%q): no error", pt.in)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) err = %v, does not unwrap to ErrSyntax", pt.in, err)
			}
		})
	}
}

func TestParseErrorOffset(t *testing.T) {
	_, err := ParseString(`[1, @]`)
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *SyntaxError", err)
	}
	if se.Offset != 4 {
		t.Errorf("Offset = %d, want 4", se.Offset)
	}
}

func TestStringEscapes(t *testing.T) {
	// escaped quote is captured verbatim, not decoded
	got, err := ParseString(`"a\"b"`)
	if err != nil {
		t.Fatal(err)
	}
	if got.String != `a\"b` {
		t.Errorf("String = %q, want %q", got.String, `a\"b`)
	}

	// two consecutive backslashes are one escaped backslash; the quote
	// after them terminates the string
	got, err = ParseString(`"a\\"`)
	if err != nil {
		t.Fatal(err)
	}
	if got.String != `a\\` {
		t.Errorf("String = %q, want %q", got.String, `a\\`)
	}

	// a run of three backslashes escapes the quote
	got, err = ParseString(`"a\\\" b"`)
	if err != nil {
		t.Fatal(err)
	}
	if got.String != `a\\\" b` {
		t.Errorf("String = %q, want %q", got.String, `a\\\" b`)
	}
}

func TestOrderStamping(t *testing.T) {
	doc, err := ParseString(`{"a": 1, "b": [2, 3]}`)
	if err != nil {
		t.Fatal(err)
	}
	a := ir.Get(doc, "a")
	b := ir.Get(doc, "b")
	if a.Order >= b.Order {
		t.Errorf("a.Order %d >= b.Order %d", a.Order, b.Order)
	}
	// children are stamped before their container
	for _, el := range b.Values {
		if el.Order >= b.Order {
			t.Errorf("element Order %d >= container Order %d", el.Order, b.Order)
		}
	}
	if doc.Order <= b.Order {
		t.Errorf("root Order %d <= child Order %d", doc.Order, b.Order)
	}
}

func TestNumberKinds(t *testing.T) {
	doc, err := ParseString(`[1, 1.0, 1e2, -3]`)
	if err != nil {
		t.Fatal(err)
	}
	wantInt := []bool{true, false, false, true}
	for i, w := range wantInt {
		if doc.Values[i].IsInt() != w {
			t.Errorf("elem %d IsInt = %v, want %v", i, doc.Values[i].IsInt(), w)
		}
	}
}

func TestStrict(t *testing.T) {
	if _, err := ParseString(`{} , `, Strict()); err != nil {
		t.Errorf("trailing skippables rejected in strict mode: %v", err)
	}
	_, err := ParseString(`{} garbage`, Strict())
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("strict trailing err = %v", err)
	}
}

func TestMaxDepth(t *testing.T) {
	deep := ""
	for range 50 {
		deep += "["
	}
	_, err := ParseString(deep, MaxDepth(10))
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("depth err = %v", err)
	}
}

func TestDuplicateKeyKeepsPosition(t *testing.T) {
	doc, err := ParseString(`{"a": 1, "b": 2, "a": 3}`)
	if err != nil {
		t.Fatal(err)
	}
	keys := doc.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("keys = %v", keys)
	}
	if v, _ := doc.FieldInt64("a"); v != 3 {
		t.Errorf("a = %d, want 3", v)
	}
}
