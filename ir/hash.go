package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the node, consistent with Equal:
// layout metadata does not contribute. It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Type))

	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		if n.Int64 != nil {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], uint64(*n.Int64))
			h.Write(b[:])
		} else if n.Float64 != nil {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(*n.Float64))
			h.Write(b[:])
		} else {
			h.WriteString(n.Number)
		}
	case StringType:
		h.WriteString(n.String)
	case ArrayType:
		var b [8]byte
		for _, v := range n.Values {
			// combining child hashes order-dependently
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		var b [8]byte
		for i, field := range n.Fields {
			binary.LittleEndian.PutUint64(b[:], field.Hash())
			h.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], n.Values[i].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
