package trie

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// ProofDB is a hash-addressed table over the proof nodes supplied for
// one verification. Every node the verifier dereferences must resolve
// through it, which is the soundness check: bytes that were not
// explicitly furnished by the prover are never accepted. Read-only
// after construction.
type ProofDB struct {
	nodes map[common.Hash][]byte
}

// NewProofDB indexes each raw proof node by its content hash under the
// given codec.
func NewProofDB(codec Codec, proof [][]byte) *ProofDB {
	nodes := make(map[common.Hash][]byte, len(proof))
	for _, enc := range proof {
		nodes[codec.Hash(enc)] = enc
	}
	return &ProofDB{nodes: nodes}
}

// Node returns the raw encoding whose content hash is hash, or
// ErrNodeNotFound if no such node was supplied.
func (db *ProofDB) Node(hash common.Hash) ([]byte, error) {
	enc, ok := db.nodes[hash]
	if !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "hash %x", hash)
	}
	return enc, nil
}

// Resolve returns the bytes behind a handle: inline bytes directly,
// hashed references through the table.
func (db *ProofDB) Resolve(handle NodeHandle) ([]byte, error) {
	switch h := handle.(type) {
	case InlineNode:
		return h, nil
	case HashedNode:
		return db.Node(common.Hash(h))
	default:
		return nil, errors.Wrap(ErrNodeNotFound, "empty node handle")
	}
}

// Len returns the number of distinct proof nodes in the table.
func (db *ProofDB) Len() int {
	return len(db.nodes)
}
