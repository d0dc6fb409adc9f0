package trie

import "github.com/ethereum/go-ethereum/common"

// Codec ties the verifier to one trie flavor. Hash must match the
// function used when the witness was generated, since proof nodes are
// content addressed. Decode classifies a raw encoding into one of the
// Node variants, or fails with an ErrMalformedNode error.
//
// The verifier depends only on this interface; a different trie format
// plugs in a different Codec without touching the traversal.
type Codec interface {
	Hash(encoded []byte) common.Hash
	Decode(encoded []byte) (Node, error)
}
