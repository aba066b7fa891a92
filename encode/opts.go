package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level (default 2).
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the starting nesting level.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeColors enables terminal colors.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
