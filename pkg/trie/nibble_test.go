package trie

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNibbleSlice_At(t *testing.T) {
	s := NewNibbleSlice([]byte{0xab, 0xcd})

	want := []byte{0xa, 0xb, 0xc, 0xd}
	require.Equal(t, len(want), s.Len())
	for i, n := range want {
		got, err := s.At(i)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}

	_, err := s.At(4)
	assert.True(t, errors.Is(err, ErrNibbleOutOfBounds))
	_, err = s.At(-1)
	assert.True(t, errors.Is(err, ErrNibbleOutOfBounds))
}

func TestNibbleSlice_AtWithOffset(t *testing.T) {
	s := NibbleSliceWithOffset([]byte{0xab, 0xcd}, 1)
	require.Equal(t, 3, s.Len())

	got, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, byte(0xb), got)
	got, err = s.At(2)
	require.NoError(t, err)
	assert.Equal(t, byte(0xd), got)
}

func TestNibbleSlice_Mid(t *testing.T) {
	s := NewNibbleSlice([]byte{0x12, 0x34, 0x56})

	first, err := s.Mid(2)
	require.NoError(t, err)
	assert.Equal(t, 4, first.Len())
	n, err := first.At(0)
	require.NoError(t, err)
	assert.Equal(t, byte(0x3), n)

	// Offsets summing to the total length leave an empty slice.
	rest, err := first.Mid(4)
	require.NoError(t, err)
	assert.True(t, rest.IsEmpty())

	_, err = first.Mid(5)
	assert.True(t, errors.Is(err, ErrNibbleOutOfBounds))
}

func TestNibbleSlice_StartsWith(t *testing.T) {
	tests := []struct {
		name   string
		slice  NibbleSlice
		prefix NibbleSlice
		want   bool
	}{
		{
			name:   "shared prefix at different offsets",
			slice:  NewNibbleSlice([]byte{0x12, 0x34}),
			prefix: NibbleSliceWithOffset([]byte{0xa1, 0x23}, 1),
			want:   true,
		},
		{
			name:   "empty prefix always matches",
			slice:  NewNibbleSlice([]byte{0x12}),
			prefix: NewNibbleSlice(nil),
			want:   true,
		},
		{
			name:   "prefix longer than slice never matches",
			slice:  NewNibbleSlice([]byte{0x12}),
			prefix: NewNibbleSlice([]byte{0x12, 0x34}),
			want:   false,
		},
		{
			name:   "diverging nibble",
			slice:  NewNibbleSlice([]byte{0x12, 0x34}),
			prefix: NewNibbleSlice([]byte{0x12, 0x44}),
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.slice.StartsWith(tt.prefix))
		})
	}
}

func TestNibbleSlice_Eq(t *testing.T) {
	a := NewNibbleSlice([]byte{0x12, 0x34})

	// Same nibbles 1,2,3,4 seen through different backing bytes.
	assert.True(t, a.Eq(NibbleSliceWithOffset([]byte{0xff, 0x12, 0x34}, 2)))

	assert.False(t, a.Eq(NewNibbleSlice([]byte{0x12})))
	assert.False(t, a.Eq(NewNibbleSlice([]byte{0x12, 0x44})))
	assert.True(t, NewNibbleSlice(nil).Eq(NewNibbleSlice([]byte{})))
}

func TestNibbleSlice_AlignToByte(t *testing.T) {
	key := []byte{0x12, 0x34, 0x56}

	even, err := NewNibbleSlice(key).Mid(2)
	require.NoError(t, err)
	aligned := even.AlignToByte()
	assert.Equal(t, 4, aligned.Len())
	n, err := aligned.At(0)
	require.NoError(t, err)
	assert.Equal(t, byte(0x3), n)

	// Odd offsets round up, dropping the half-consumed byte.
	odd, err := NewNibbleSlice(key).Mid(3)
	require.NoError(t, err)
	aligned = odd.AlignToByte()
	assert.Equal(t, 2, aligned.Len())
	n, err = aligned.At(0)
	require.NoError(t, err)
	assert.Equal(t, byte(0x5), n)
}
