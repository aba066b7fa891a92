package parse

// DefaultMaxDepth bounds container nesting.
const DefaultMaxDepth = 10000

type parseOpts struct {
	strict   bool
	maxDepth int
}

type ParseOption func(*parseOpts)

// Strict makes trailing non-skippable content after the first top-level
// value a SyntaxError. The default matches the permissive behavior of the
// text format: the first value wins and trailing bytes are ignored.
func Strict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}

// MaxDepth overrides the container nesting bound.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
