package ethereum

// CompactEncode packs a run of nibbles (values 0-15) into the
// hex-prefix form carried inside leaf and extension nodes. The flag
// nibble records the terminator bit for leaves and absorbs the first
// nibble of odd-length runs.
func CompactEncode(nibbles []byte, terminator bool) []byte {
	var flag byte
	if terminator {
		flag = flagTerminator
	}
	buf := make([]byte, len(nibbles)/2+1)
	if len(nibbles)%2 == 1 {
		flag |= flagOddLength | nibbles[0]
		nibbles = nibbles[1:]
	}
	buf[0] = flag
	for i := 0; i < len(nibbles); i += 2 {
		buf[i/2+1] = nibbles[i]<<4 | nibbles[i+1]
	}
	return buf
}
