package jsondoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsondoc/go-jsondoc/ir"
	"github.com/jsondoc/go-jsondoc/parse"
)

func TestCompileParseRoundTrip(t *testing.T) {
	docs := []string{
		`null`,
		`true`,
		`-1.5e3`,
		`"hi there"`,
		`{"a": 1, "b": [true, null], "c": {"d": "x"}}`,
		`[1, [2, [3]], {"k": "v"}]`,
	}
	for _, d := range docs {
		node, err := ParseString(d)
		if err != nil {
			t.Fatalf("parse %q: %v", d, err)
		}
		s, err := Compile(node)
		if err != nil {
			t.Fatalf("compile %q: %v", d, err)
		}
		back, err := ParseString(s)
		if err != nil {
			t.Fatalf("reparse %q: %v", s, err)
		}
		if !ir.Equal(node, back) {
			t.Errorf("round trip changed %q:\n%s", d, s)
		}
	}
}

func TestReadWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")

	node, err := ParseString(`{"a": 1, "b": "two"}`)
	if err != nil {
		t.Fatal(err)
	}
	if err := Write(node, path); err != nil {
		t.Fatal(err)
	}
	back, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, back) {
		t.Errorf("read back a different document")
	}
}

func TestReadIOError(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrIO) {
		t.Fatalf("err = %v, want ErrIO", err)
	}
}

func TestReadSyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("[1, @]"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Read(path)
	if !errors.Is(err, parse.ErrSyntax) {
		t.Fatalf("err = %v, want ErrSyntax", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error does not name the file: %v", err)
	}
}
