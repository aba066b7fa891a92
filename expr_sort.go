package jsondoc

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/jsondoc/go-jsondoc/gomap"
	"github.com/jsondoc/go-jsondoc/ir"
)

// ExprComparator compiles src into a field comparator for object nodes.
// The expression is evaluated once per field value with "key" bound to
// the field name and "value" to the field's Go form; fields compare by
// their expression results. Assign the result to an object's Comparator
// to override insertion order when compiling.
func ExprComparator(src string) (func(a, b *ir.Node) int, error) {
	prog, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("bad sort expression %q: %w", src, err)
	}
	return func(a, b *ir.Node) int {
		ka, err := sortKey(prog, a)
		if err != nil {
			return ir.Compare(a, b)
		}
		kb, err := sortKey(prog, b)
		if err != nil {
			return ir.Compare(a, b)
		}
		return ir.Compare(ka, kb)
	}, nil
}

func sortKey(prog *vm.Program, n *ir.Node) (*ir.Node, error) {
	out, err := expr.Run(prog, map[string]any{
		"key":   n.ParentField,
		"value": gomap.ToGo(n),
	})
	if err != nil {
		return nil, err
	}
	return gomap.FromGo(out)
}
