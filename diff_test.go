package jsondoc

import (
	"testing"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func TestDiffEqualDocs(t *testing.T) {
	a, err := ParseString(`{"a": 1, "b": [2, 3]}`)
	if err != nil {
		t.Fatal(err)
	}
	diffs, err := Diff(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if Changed(diffs) {
		t.Errorf("equal documents reported changed: %v", diffs)
	}
}

func TestDiffChangedDocs(t *testing.T) {
	a, err := ParseString(`{"a": 1}`)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseString(`{"a": 2}`)
	if err != nil {
		t.Fatal(err)
	}
	diffs, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !Changed(diffs) {
		t.Fatal("changed documents reported equal")
	}
	var sawDelete, sawInsert bool
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			sawDelete = sawDelete || d.Text == "1"
		case diffpatch.DiffInsert:
			sawInsert = sawInsert || d.Text == "2"
		}
	}
	if !sawDelete || !sawInsert {
		t.Errorf("edit script missing 1->2: %v", diffs)
	}
}
