package trie

import "github.com/pkg/errors"

// NibbleSlice is a read-only view over a byte string starting at a given
// nibble (4-bit) offset. Trie partial keys are not byte aligned, so all
// key comparison during traversal happens through this type rather than
// on raw bytes. The underlying array is shared, never copied or written.
type NibbleSlice struct {
	data   []byte
	offset int
}

// NewNibbleSlice returns a view over data starting at nibble 0.
func NewNibbleSlice(data []byte) NibbleSlice {
	return NibbleSlice{data: data}
}

// NibbleSliceWithOffset returns a view over data with the first offset
// nibbles skipped. Decoders use this to expose hex-prefix encoded
// partial keys without unpacking them.
func NibbleSliceWithOffset(data []byte, offset int) NibbleSlice {
	return NibbleSlice{data: data, offset: offset}
}

// Len returns the number of nibbles remaining in the view.
func (s NibbleSlice) Len() int {
	return 2*len(s.data) - s.offset
}

// IsEmpty reports whether no nibbles remain.
func (s NibbleSlice) IsEmpty() bool {
	return s.Len() == 0
}

// At returns the i-th nibble counting from the view's offset.
func (s NibbleSlice) At(i int) (byte, error) {
	if i < 0 || i >= s.Len() {
		return 0, errors.Wrapf(ErrNibbleOutOfBounds, "index %d with %d nibbles left", i, s.Len())
	}
	pos := s.offset + i
	if pos%2 == 0 {
		return s.data[pos/2] >> 4, nil
	}
	return s.data[pos/2] & 0x0f, nil
}

// Mid returns the view advanced by n nibbles.
func (s NibbleSlice) Mid(n int) (NibbleSlice, error) {
	if n < 0 || s.offset+n > 2*len(s.data) {
		return NibbleSlice{}, errors.Wrapf(ErrNibbleOutOfBounds, "advance by %d with %d nibbles left", n, s.Len())
	}
	return NibbleSlice{data: s.data, offset: s.offset + n}, nil
}

// StartsWith reports whether the view begins with every nibble of
// prefix, each slice counting from its own offset. A prefix longer than
// the view is never a match.
func (s NibbleSlice) StartsWith(prefix NibbleSlice) bool {
	n := prefix.Len()
	if n > s.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		a, _ := s.At(i)
		b, _ := prefix.At(i)
		if a != b {
			return false
		}
	}
	return true
}

// Eq reports whether both views hold the same nibble sequence.
func (s NibbleSlice) Eq(other NibbleSlice) bool {
	return s.Len() == other.Len() && s.StartsWith(other)
}

// AlignToByte drops every byte the view has fully or partially consumed
// and restarts at nibble 0. An odd offset rounds up, discarding the
// half-consumed byte. Used to re-derive the remaining lookup key once a
// leaf is reached.
func (s NibbleSlice) AlignToByte() NibbleSlice {
	return NibbleSlice{data: s.data[(s.offset+1)/2:]}
}
