package ethereum

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/runtime-machines/merkle-trees-go/pkg/trie"
)

// The verifier is stateless and safe for concurrent use, so one
// instance serves the package-level entry point.
var defaultVerifier = trie.NewVerifier(Codec{})

// VerifyProof checks an inclusion or exclusion proof against an
// Ethereum state or storage root and returns the value stored at key.
// A nil result means the witness proves the key absent. An error means
// the witness is malformed, insufficient or tampered with.
func VerifyProof(root common.Hash, proof [][]byte, key []byte) ([]byte, error) {
	value, found, err := defaultVerifier.Get(root, proof, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return value, nil
}

// NewVerifier returns a trie verifier bound to the Ethereum codec, for
// callers that want the explicit presence flag or table reuse.
func NewVerifier() *trie.Verifier {
	return trie.NewVerifier(Codec{})
}
