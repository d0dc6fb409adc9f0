// Package ethereum implements the Ethereum trie flavor for the proof
// verifier: Keccak-256 content addressing and the RLP node encoding
// with hex-prefix partial keys defined by the yellow paper.
package ethereum

import (
	"hash"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"github.com/runtime-machines/merkle-trees-go/pkg/trie"
)

// Hex-prefix flag bits carried in the high nibble of the first path
// byte: 0x20 marks a leaf (terminator), 0x10 an odd partial key length.
const (
	flagTerminator = 0x20
	flagOddLength  = 0x10
)

// Codec decodes RLP trie nodes and hashes encodings with Keccak-256.
// The zero value is ready to use.
type Codec struct{}

var hasherPool = sync.Pool{
	New: func() interface{} { return sha3.NewLegacyKeccak256() },
}

// Hash returns the Keccak-256 digest of the encoding.
func (Codec) Hash(encoded []byte) common.Hash {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()
	h.Write(encoded)
	var out common.Hash
	h.Sum(out[:0])
	hasherPool.Put(h)
	return out
}

// Decode classifies a raw RLP encoding: a 17-item list is a branch, a
// 2-item list a leaf or extension depending on the hex-prefix flags,
// and the empty string the empty trie.
func (c Codec) Decode(encoded []byte) (trie.Node, error) {
	if len(encoded) == 0 {
		return trie.Empty{}, nil
	}
	kind, content, _, err := rlp.Split(encoded)
	if err != nil {
		return nil, errors.Wrapf(trie.ErrMalformedNode, "split: %v", err)
	}
	if kind != rlp.List {
		if len(content) == 0 {
			return trie.Empty{}, nil
		}
		return nil, errors.Wrap(trie.ErrMalformedNode, "node is neither a list nor the empty string")
	}
	count, err := rlp.CountValues(content)
	if err != nil {
		return nil, errors.Wrapf(trie.ErrMalformedNode, "count items: %v", err)
	}
	switch count {
	case 2:
		return decodeShort(content)
	case 17:
		return decodeBranch(content)
	default:
		return nil, errors.Wrapf(trie.ErrMalformedNode, "list of %d items", count)
	}
}

// decodeShort handles the shared 2-item shape of leaves and extensions.
func decodeShort(items []byte) (trie.Node, error) {
	path, rest, err := rlp.SplitString(items)
	if err != nil {
		return nil, errors.Wrapf(trie.ErrMalformedNode, "partial key: %v", err)
	}
	if len(path) == 0 {
		return nil, errors.Wrap(trie.ErrMalformedNode, "empty partial key")
	}
	// The first nibble holds the flags; odd partial keys start right
	// after it, even ones also skip the padding nibble.
	offset := 2
	if path[0]&flagOddLength != 0 {
		offset = 1
	}
	key := trie.NibbleSliceWithOffset(path, offset)

	if path[0]&flagTerminator != 0 {
		value, _, err := rlp.SplitString(rest)
		if err != nil {
			return nil, errors.Wrapf(trie.ErrMalformedNode, "leaf value: %v", err)
		}
		return trie.Leaf{Key: key, Value: trie.InlineNode(value)}, nil
	}
	child, _, err := decodeRef(rest)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, errors.Wrap(trie.ErrMalformedNode, "extension without a child")
	}
	return trie.Extension{Key: key, Child: child}, nil
}

func decodeBranch(items []byte) (trie.Node, error) {
	var n trie.Branch
	rest := items
	for i := 0; i < 16; i++ {
		child, r, err := decodeRef(rest)
		if err != nil {
			return nil, errors.WithMessagef(err, "branch child %d", i)
		}
		n.Children[i] = child
		rest = r
	}
	value, _, err := rlp.SplitString(rest)
	if err != nil {
		return nil, errors.Wrapf(trie.ErrMalformedNode, "branch value: %v", err)
	}
	if len(value) > 0 {
		n.Value = trie.InlineNode(value)
	}
	return n, nil
}

// decodeRef reads one child reference: an empty string is an
// unpopulated slot, a 32-byte string a hash reference, and a nested
// list a node embedded inline because its encoding is shorter than a
// hash.
func decodeRef(buf []byte) (trie.NodeHandle, []byte, error) {
	kind, content, rest, err := rlp.Split(buf)
	if err != nil {
		return nil, nil, errors.Wrapf(trie.ErrMalformedNode, "child reference: %v", err)
	}
	switch {
	case kind == rlp.List:
		size := len(buf) - len(rest)
		if size > common.HashLength {
			return nil, nil, errors.Wrapf(trie.ErrMalformedNode, "embedded node of %d bytes", size)
		}
		return trie.InlineNode(buf[:size]), rest, nil
	case len(content) == 0:
		return nil, rest, nil
	case len(content) == common.HashLength:
		return trie.HashedNode(common.BytesToHash(content)), rest, nil
	default:
		return nil, nil, errors.Wrapf(trie.ErrMalformedNode, "child reference of %d bytes", len(content))
	}
}
