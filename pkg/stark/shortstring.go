package stark

import (
	"bytes"
	"fmt"
	"math/big"
)

// maxShortStringLen is the Cairo short-string capacity: 31 bytes packed
// into one field element leaves the top byte of the 252-bit felt clear.
const maxShortStringLen = 31

// EncodeShortString packs s (at most 31 bytes) into a single field
// element: the bytes are right-aligned in a 32-byte big-endian buffer and
// interpreted as an unsigned integer. No case or whitespace normalization
// is applied.
func EncodeShortString(s string) (*big.Int, error) {
	if len(s) > maxShortStringLen {
		return nil, fmt.Errorf("%w: %q is %d bytes", ErrStringTooLong, s, len(s))
	}
	return new(big.Int).SetBytes([]byte(s)), nil
}

// DecodeShortString reverses EncodeShortString, trimming the leading zero
// padding bytes.
func DecodeShortString(n *big.Int) string {
	buf := make([]byte, 32)
	n.FillBytes(buf)
	return string(bytes.TrimLeft(buf, "\x00"))
}
