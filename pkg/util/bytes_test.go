package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey2Hex(t *testing.T) {
	tests := []struct {
		name string
		key  []byte
		want []byte
	}{
		{"empty", nil, []byte{}},
		{"single byte", []byte{0xab}, []byte{0xa, 0xb}},
		{"rlp index", []byte{0x01}, []byte{0x0, 0x1}},
		{"two bytes", []byte{0x12, 0xf0}, []byte{0x1, 0x2, 0xf, 0x0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key2Hex(tt.key))
		})
	}
}

func TestFromHexString(t *testing.T) {
	got, err := FromHexString("0x1234")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x12, 0x34}, got)

	got, err = FromHexString("abc")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0xbc}, got)

	_, err = FromHexString("0xzz")
	assert.Error(t, err)
}
