package util

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// Key2Hex expands a lookup key into one byte per nibble, the form trie
// paths and on-chain verifiers consume.
func Key2Hex(key []byte) []byte {
	ret := make([]byte, 0, 2*len(key))
	for _, b := range key {
		ret = append(ret, b/16, b%16)
	}
	return ret
}

// FromHexString decodes a hex string with or without the 0x prefix,
// padding odd-length input with a leading zero.
func FromHexString(data string) ([]byte, error) {
	data = strings.TrimPrefix(data, "0x")
	if len(data)%2 == 1 {
		data = "0" + data
	}
	ret, err := hex.DecodeString(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode hex %q", data)
	}
	return ret, nil
}
