package jsondoc

import (
	"github.com/jsondoc/go-jsondoc/encode"
	"github.com/jsondoc/go-jsondoc/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff computes the edit script between the compiled forms of from and
// to. Equal documents produce a single equal-typed chunk.
func Diff(from, to *ir.Node) ([]diffpatch.Diff, error) {
	fs, err := encode.String(from)
	if err != nil {
		return nil, err
	}
	ts, err := encode.String(to)
	if err != nil {
		return nil, err
	}
	dmp := diffpatch.New()
	return dmp.DiffMain(fs, ts, true), nil
}

// Changed reports whether diffs contain any insertion or deletion.
func Changed(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

// DiffText renders diffs with ANSI colors for terminal display.
func DiffText(diffs []diffpatch.Diff) string {
	dmp := diffpatch.New()
	return dmp.DiffPrettyText(diffs)
}
