// Package schema builds structural descriptors for document trees.
//
// Describe produces a descriptor node from a document node: scalar kinds
// map to fixed {"type": "<kind>"} descriptors, arrays to
// {"type": "array", "items": [...]} with one descriptor per element, and
// objects to {"type": "object", "properties": {...}} with one descriptor
// per field. Null values carry no structure and cannot be described.
//
// Validate is declared as the counterpart contract but its algorithm is
// not implemented.
package schema
