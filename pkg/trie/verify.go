package trie

import (
	log "github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// MaxTrieDepth bounds the traversal. Depth is attacker influenced (a
// malicious witness can chain nodes arbitrarily), so the walk is a
// bounded loop rather than recursion. 50 levels safely exceeds any
// realistic trie depth for 32-byte keys; this is a hard ceiling, not a
// tunable.
const MaxTrieDepth = 50

// Verifier walks a Merkle Patricia Trie witness for one key. It holds
// no state across calls and is safe for concurrent use.
type Verifier struct {
	codec Codec
	log   log.Logger
}

// NewVerifier returns a Verifier for the given trie flavor.
func NewVerifier(codec Codec) *Verifier {
	return &Verifier{
		codec: codec,
		log:   log.New("pkg", "trie"),
	}
}

// Get reconstructs the path from root to key through the supplied proof
// nodes. It returns the value and true if the key is present, or false
// if the witness proves the key absent. Errors mean the witness cannot
// be trusted: a node missing from the proof set, or bytes that do not
// decode.
func (v *Verifier) Get(root common.Hash, proof [][]byte, key []byte) ([]byte, bool, error) {
	return v.GetFromDB(NewProofDB(v.codec, proof), root, key)
}

// GetFromDB is Get over a prebuilt table, for callers verifying several
// keys against the same witness.
func (v *Verifier) GetFromDB(db *ProofDB, root common.Hash, key []byte) ([]byte, bool, error) {
	enc, err := db.Node(root)
	if err != nil {
		return nil, false, errors.WithMessage(err, "resolve root")
	}
	node, err := v.codec.Decode(enc)
	if err != nil {
		return nil, false, err
	}
	cursor := NewNibbleSlice(key)

	for depth := 0; depth < MaxTrieDepth; depth++ {
		var next NodeHandle
		switch n := node.(type) {
		case Leaf:
			// The partial key of a leaf restarts at a byte boundary, so
			// realign the cursor before comparing. A mismatch is a valid
			// exclusion result, not an error.
			if !n.Key.Eq(cursor.AlignToByte()) {
				return nil, false, nil
			}
			val, err := db.Resolve(n.Value)
			if err != nil {
				return nil, false, err
			}
			return val, true, nil

		case Extension:
			if !cursor.StartsWith(n.Key) {
				// Key diverges from every entry in this subtree.
				return nil, false, nil
			}
			rest, err := cursor.Mid(n.Key.Len())
			if err != nil {
				return nil, false, err
			}
			cursor = rest
			next = n.Child

		case Branch:
			if cursor.IsEmpty() {
				if n.Value == nil {
					return nil, false, nil
				}
				val, err := db.Resolve(n.Value)
				if err != nil {
					return nil, false, err
				}
				return val, true, nil
			}
			idx, err := cursor.At(0)
			if err != nil {
				return nil, false, err
			}
			if n.Children[idx] == nil {
				return nil, false, nil
			}
			rest, err := cursor.Mid(1)
			if err != nil {
				return nil, false, err
			}
			cursor = rest
			next = n.Children[idx]

		case Empty:
			return nil, false, nil

		default:
			return nil, false, errors.Wrapf(ErrMalformedNode, "unhandled node variant %T", node)
		}

		enc, err := db.Resolve(next)
		if err != nil {
			return nil, false, err
		}
		node, err = v.codec.Decode(enc)
		if err != nil {
			return nil, false, err
		}
	}

	// A well-formed witness for a 32-byte key space never gets here;
	// report absence but flag the witness as suspect.
	v.log.Warn("depth limit reached without a terminal node", "root", root.Hex(), "limit", MaxTrieDepth)
	return nil, false, nil
}
