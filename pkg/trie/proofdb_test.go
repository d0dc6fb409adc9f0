package trie

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCodec addresses nodes by their first bytes, enough to exercise
// the table without a real wire format.
type fakeCodec struct{}

func (fakeCodec) Hash(encoded []byte) common.Hash {
	var h common.Hash
	copy(h[:], encoded)
	return h
}

func (fakeCodec) Decode(encoded []byte) (Node, error) {
	return nil, errors.Wrap(ErrMalformedNode, "fake codec does not decode")
}

func TestProofDB_Node(t *testing.T) {
	a := []byte("first node")
	b := []byte("second node")
	db := NewProofDB(fakeCodec{}, [][]byte{a, b})
	require.Equal(t, 2, db.Len())

	got, err := db.Node(fakeCodec{}.Hash(a))
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = db.Node(common.HexToHash("0xdead"))
	assert.True(t, errors.Is(err, ErrNodeNotFound))
}

func TestProofDB_Resolve(t *testing.T) {
	a := []byte("furnished node")
	db := NewProofDB(fakeCodec{}, [][]byte{a})

	got, err := db.Resolve(HashedNode(fakeCodec{}.Hash(a)))
	require.NoError(t, err)
	assert.Equal(t, a, got)

	got, err = db.Resolve(InlineNode([]byte{0x01, 0x02}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, got)

	_, err = db.Resolve(HashedNode(common.HexToHash("0xbeef")))
	assert.True(t, errors.Is(err, ErrNodeNotFound))

	// A nil handle is an unpopulated slot, never a zero-hash lookup.
	_, err = db.Resolve(nil)
	assert.True(t, errors.Is(err, ErrNodeNotFound))
}
