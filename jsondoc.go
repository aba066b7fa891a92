// Package jsondoc ties the document model together: parsing, compiling,
// file I/O, diffing, merge patching and expression-driven field ordering.
//
// The subpackages do the heavy lifting: ir holds the node model, parse
// turns text into nodes, encode turns nodes back into text, gomap adapts
// Go values, and schema derives structural descriptors.
package jsondoc

import (
	"errors"
	"fmt"
	"os"

	"github.com/jsondoc/go-jsondoc/encode"
	"github.com/jsondoc/go-jsondoc/ir"
	"github.com/jsondoc/go-jsondoc/parse"
)

// ErrIO wraps file-level failures from Read and Write so callers can
// distinguish them from syntax errors.
var ErrIO = errors.New("document i/o error")

// Parse parses a document from its textual form.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// ParseString parses a document from a string.
func ParseString(d string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseString(d, opts...)
}

// Compile renders node to its textual form.
func Compile(node *ir.Node, opts ...encode.EncodeOption) (string, error) {
	return encode.String(node, opts...)
}

// MustCompile is Compile for nodes known to be renderable.
func MustCompile(node *ir.Node, opts ...encode.EncodeOption) string {
	return encode.MustString(node, opts...)
}

// Read parses the document stored at path.
func Read(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}

// Write compiles node and stores it at path, replacing any existing file.
func Write(node *ir.Node, path string, opts ...encode.EncodeOption) error {
	s, err := encode.String(node, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(s+"\n"), 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
