// Package ir provides the in-memory representation for JSON documents.
//
// # Overview
//
// The ir package defines the core data structure for representing JSON
// documents as a tree of nodes. All documents (whether parsed from text or
// created programmatically) are represented as ir.Node trees.
//
// The IR is a simple recursive tagged union: values are placed in fields
// depending on the node type, and exactly one payload variant is populated
// at a time.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64, lexeme preserved)
//   - StringType: string value, stored verbatim as scanned (no unescaping)
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there are always the same number of fields as values. Fields are String
// typed and unique. Updating an existing key with Put replaces the child's
// payload in place, preserving the field's original position and Order.
//
// # Layout Metadata
//
// Every node carries rendering metadata consumed by the encode package:
//
//   - Order: monotonic ordinal assigned at parse or insertion time; the
//     default sort key for object fields.
//   - Wrap: whether a container renders its children one per line.
//   - Comparator: optional total-order override for an object's fields.
//
// Two structurally equal trees may render differently if this metadata
// differs. Equal and Compare ignore it.
//
// # Ownership
//
// A node owns its descendants. The API permits inserting the same *Node
// into two containers; that creates aliasing the caller must manage.
// Nodes are not safe for concurrent use; iterating a container while
// mutating it fails fast with ErrConcurrentMod.
package ir
