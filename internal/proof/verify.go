package proof

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/runtime-machines/merkle-trees-go/pkg/trie/ethereum"
)

// ErrReceiptAbsent is returned when a witness proves that no receipt
// exists at the requested index.
var ErrReceiptAbsent = errors.New("proof: no receipt at index")

// VerifyReceipt checks the witness against a block's receipt root and
// decodes the proven receipt. The proof nodes are trusted only as far
// as their hashes chain back to root.
func VerifyReceipt(root common.Hash, prf [][]byte, txIndex uint) (*types.Receipt, error) {
	key, err := rlp.EncodeToBytes(txIndex)
	if err != nil {
		return nil, err
	}
	value, err := ethereum.VerifyProof(root, prf, key)
	if err != nil {
		return nil, errors.WithMessagef(err, "receipt witness for index %d", txIndex)
	}
	if value == nil {
		return nil, errors.Wrapf(ErrReceiptAbsent, "index %d", txIndex)
	}
	var receipt types.Receipt
	if err := receipt.UnmarshalBinary(value); err != nil {
		return nil, errors.Wrap(err, "decode proven receipt")
	}
	return &receipt, nil
}
