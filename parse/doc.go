// Package parse turns JSON text into an ir.Node tree.
//
// Parsing is a single pass of index-based recursive descent; there is no
// separate tokenization phase. At each position the recognizers are tried
// in fixed priority: number, string, boolean, null, array, object. If none
// match, a whitespace, comma or colon character is skipped; any other
// character is a fatal *SyntaxError reporting the offset.
//
// Two deliberate departures from strict JSON:
//
//   - Whitespace, comma and colon are interchangeable skippable separators.
//   - String contents are stored verbatim as scanned between quotes;
//     escape sequences are not decoded. Rendering is symmetric, so parsed
//     documents round trip byte for byte.
//
// Only the first top-level value is parsed. Trailing content is ignored
// unless the Strict option is set.
//
// Every produced value is stamped with a monotonic Order ordinal in
// production order; a container is stamped after its children. The encode
// package uses Order as the default object-field sort key.
package parse
