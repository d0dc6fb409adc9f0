package trie

import "errors"

// Verification failures are distinct from a clean absence result: an
// error means the witness cannot be trusted or parsed, while a false
// presence flag means the witness proves the key is not in the trie.
var (
	// ErrNodeNotFound is returned when traversal needs to dereference a
	// hash that is not present among the supplied proof nodes.
	ErrNodeNotFound = errors.New("trie: proof node not found")

	// ErrMalformedNode is returned when a proof entry cannot be decoded
	// into a recognized node shape.
	ErrMalformedNode = errors.New("trie: malformed proof node")

	// ErrNibbleOutOfBounds is returned on a nibble index past the end of
	// a slice. It signals a decoder bug rather than a bad witness.
	ErrNibbleOutOfBounds = errors.New("trie: nibble index out of bounds")
)
