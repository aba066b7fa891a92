package jsondoc

import (
	"github.com/jsondoc/go-jsondoc/debug"
	"github.com/jsondoc/go-jsondoc/encode"
	"github.com/jsondoc/go-jsondoc/ir"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// MergePatch applies patch to doc with RFC 7386 merge semantics: object
// fields are merged recursively, null patch fields delete, and any other
// patch value replaces. The result is a freshly parsed tree; layout
// metadata of the inputs is not carried over.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("merge patch\n%s\ninto\n%s\n", encode.MustString(patch), encode.MustString(doc))
	}
	return applyPatch(doc, patch, jsonpatch.MergePatch)
}

// ApplyPatch applies an RFC 6902 operation list to doc. patch must be an
// array of operation objects.
func ApplyPatch(doc, patch *ir.Node) (*ir.Node, error) {
	return applyPatch(doc, patch, func(d, p []byte) ([]byte, error) {
		ops, err := jsonpatch.DecodePatch(p)
		if err != nil {
			return nil, err
		}
		return ops.Apply(d)
	})
}

func applyPatch(doc, patch *ir.Node, f func(d, p []byte) ([]byte, error)) (*ir.Node, error) {
	ds, err := encode.String(doc)
	if err != nil {
		return nil, err
	}
	ps, err := encode.String(patch)
	if err != nil {
		return nil, err
	}
	out, err := f([]byte(ds), []byte(ps))
	if err != nil {
		return nil, err
	}
	return Parse(out)
}
