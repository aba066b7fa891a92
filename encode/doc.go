// Package encode renders an ir.Node tree to formatted JSON text.
//
// Encoding is a pure, deterministic function of the tree and its layout
// metadata: compiling an unmutated tree twice yields identical text.
//
// Containers honor the node's Wrap flag: wrapped containers render one
// child per line, indented one level deeper, with the closing delimiter at
// the container's own indent; unwrapped containers render inline with
// ", " separators. Empty containers always render as [] or {} regardless
// of Wrap.
//
// Object fields are ordered by the node's Comparator when one is set,
// otherwise ascending by each field value's Order ordinal. Both orderings
// are stable.
//
// String payloads are emitted between quotes exactly as stored; no escaping
// is applied. Parsed text therefore round trips byte for byte, and
// programmatically constructed strings must already be escape-correct.
package encode
