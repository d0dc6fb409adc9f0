// Package proof builds and checks receipt inclusion witnesses: the
// minimal set of trie nodes showing that a transaction receipt is
// committed to by a block's receipt root.
package proof

import (
	"bytes"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb/memorydb"
	"github.com/ethereum/go-ethereum/light"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/ethereum/go-ethereum/trie"
	"github.com/pkg/errors"

	"github.com/runtime-machines/merkle-trees-go/pkg/util"
)

// ReceiptProof carries one receipt witness in the layout on-chain
// verifiers expect: the RLP receipt, the lookup key expanded to
// nibbles, and the proof nodes from root to the receipt's slot.
type ReceiptProof struct {
	TxReceipt []byte
	KeyIndex  []byte
	Proof     [][]byte
}

// DerivableList is the slice of items a derived trie commits to.
// types.Receipts and types.Transactions both satisfy it.
type DerivableList interface {
	Len() int
	EncodeIndex(int, *bytes.Buffer)
}

var encodeBufferPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

// Get extracts the minimal witness for the receipt at txIndex from a
// freshly derived receipt trie.
func Get(receipts DerivableList, txIndex uint) ([][]byte, error) {
	tr, err := trie.New(common.Hash{}, trie.NewDatabase(memorydb.New()))
	if err != nil {
		return nil, err
	}
	tr = DeriveTrie(receipts, tr)

	key, err := rlp.EncodeToBytes(txIndex)
	if err != nil {
		return nil, err
	}
	ns := light.NewNodeSet()
	if err = tr.Prove(key, 0, ns); err != nil {
		return nil, errors.Wrap(err, "prove receipt index")
	}

	prf := make([][]byte, 0, len(ns.NodeList()))
	for _, v := range ns.NodeList() {
		prf = append(prf, v)
	}
	return prf, nil
}

// DeriveTrie fills tr with the list items keyed by their RLP-encoded
// index. The insertion order (1..0x7f first, then 0, then the rest)
// keeps the trie from being reshaped by every insert, matching how
// block roots are derived.
func DeriveTrie(rs DerivableList, tr *trie.Trie) *trie.Trie {
	valueBuf := encodeBufferPool.Get().(*bytes.Buffer)
	defer encodeBufferPool.Put(valueBuf)

	var indexBuf []byte
	for i := 1; i < rs.Len() && i <= 0x7f; i++ {
		indexBuf = rlp.AppendUint64(indexBuf[:0], uint64(i))
		tr.Update(indexBuf, encodeForDerive(rs, i, valueBuf))
	}
	if rs.Len() > 0 {
		indexBuf = rlp.AppendUint64(indexBuf[:0], 0)
		tr.Update(indexBuf, encodeForDerive(rs, 0, valueBuf))
	}
	for i := 0x80; i < rs.Len(); i++ {
		indexBuf = rlp.AppendUint64(indexBuf[:0], uint64(i))
		tr.Update(indexBuf, encodeForDerive(rs, i, valueBuf))
	}
	return tr
}

func encodeForDerive(list DerivableList, i int, buf *bytes.Buffer) []byte {
	buf.Reset()
	list.EncodeIndex(i, buf)
	return common.CopyBytes(buf.Bytes())
}

// Build assembles the full witness carrier for the receipt at txIndex.
func Build(receipts DerivableList, txIndex uint) (*ReceiptProof, error) {
	prf, err := Get(receipts, txIndex)
	if err != nil {
		return nil, err
	}
	key, err := rlp.EncodeToBytes(txIndex)
	if err != nil {
		return nil, err
	}
	valueBuf := encodeBufferPool.Get().(*bytes.Buffer)
	defer encodeBufferPool.Put(valueBuf)

	return &ReceiptProof{
		TxReceipt: encodeForDerive(receipts, int(txIndex), valueBuf),
		KeyIndex:  util.Key2Hex(key),
		Proof:     prf,
	}, nil
}
