// Package gomap converts between Go values and ir.Node trees.
//
// FromGo classifies a host value into exactly one node kind: numeric,
// text, boolean, nil, sequence, mapping, an *ir.Node reused as-is, a
// custom-marshalled type, or a generic text fallback. The classification
// is total: every Go value lands in one of these cases. Map keys are
// coerced to text.
//
// Custom types participate in two ways, both explicit:
//
//   - implementing Marshaler to produce a node from an instance
//   - registering a Factory under a discriminator with a Registry to
//     produce an instance from a node
//
// There is no reflection-based method discovery; a type converts only
// through these declared capabilities.
package gomap
