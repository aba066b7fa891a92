package jsondoc

import (
	"testing"

	"github.com/jsondoc/go-jsondoc/ir"
)

func TestMergePatch(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		patch string
		want  string
	}{
		{
			"add and replace",
			`{"a": 1, "b": 2}`,
			`{"b": 3, "c": 4}`,
			`{"a": 1, "b": 3, "c": 4}`,
		},
		{
			"null deletes",
			`{"a": 1, "b": 2}`,
			`{"b": null}`,
			`{"a": 1}`,
		},
		{
			"nested merge",
			`{"o": {"x": 1, "y": 2}}`,
			`{"o": {"y": 3}}`,
			`{"o": {"x": 1, "y": 3}}`,
		},
		{
			"array replaces wholesale",
			`{"xs": [1, 2, 3]}`,
			`{"xs": [9]}`,
			`{"xs": [9]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseString(tt.doc)
			if err != nil {
				t.Fatal(err)
			}
			patch, err := ParseString(tt.patch)
			if err != nil {
				t.Fatal(err)
			}
			got, err := MergePatch(doc, patch)
			if err != nil {
				t.Fatal(err)
			}
			want, err := ParseString(tt.want)
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(got, want) {
				t.Errorf("MergePatch = %s, want %s", MustCompile(got), tt.want)
			}
		})
	}
}

func TestApplyPatch(t *testing.T) {
	doc, err := ParseString(`{"a": 1, "xs": [1, 2]}`)
	if err != nil {
		t.Fatal(err)
	}
	patch, err := ParseString(`[{"op": "replace", "path": "/a", "value": 5}, {"op": "add", "path": "/xs/-", "value": 3}]`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ApplyPatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	want, err := ParseString(`{"a": 5, "xs": [1, 2, 3]}`)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, want) {
		t.Errorf("ApplyPatch = %s", MustCompile(got))
	}
}

func TestApplyPatchBadOps(t *testing.T) {
	doc, err := ParseString(`{"a": 1}`)
	if err != nil {
		t.Fatal(err)
	}
	patch, err := ParseString(`[{"op": "replace", "path": "/missing", "value": 5}]`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ApplyPatch(doc, patch); err == nil {
		t.Fatal("patch against missing path succeeded")
	}
}
