package trie

import "github.com/ethereum/go-ethereum/common"

// NodeHandle is a reference to a node or value held by its parent: the
// bytes are either embedded directly in the parent encoding (InlineNode)
// or referenced by content hash and must be resolved against the
// witness (HashedNode). A nil NodeHandle marks an unpopulated slot and
// must short-circuit traversal; it is never looked up as a zero hash.
type NodeHandle interface {
	isNodeHandle()
}

// InlineNode holds raw bytes embedded in the parent encoding.
type InlineNode []byte

// HashedNode references a node by its content hash.
type HashedNode common.Hash

func (InlineNode) isNodeHandle() {}
func (HashedNode) isNodeHandle() {}

// Node is a decoded trie node. Exactly one of the four variants below is
// produced per encoding; the verifier switches exhaustively over them.
type Node interface {
	isNode()
}

// Leaf terminates a path. Key holds the remaining partial key.
type Leaf struct {
	Key   NibbleSlice
	Value NodeHandle
}

// Extension forwards every key sharing its partial key to one child.
type Extension struct {
	Key   NibbleSlice
	Child NodeHandle
}

// Branch fans out on the next key nibble. Children always has sixteen
// slots indexed by nibble value; Value holds the entry terminating at
// the branch itself, if any.
type Branch struct {
	Value    NodeHandle
	Children [16]NodeHandle
}

// Empty is the root of an empty trie.
type Empty struct{}

func (Leaf) isNode()      {}
func (Extension) isNode() {}
func (Branch) isNode()    {}
func (Empty) isNode()     {}
