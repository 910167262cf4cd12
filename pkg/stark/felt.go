package stark

import (
	"fmt"
	"math/big"
)

// Process-wide protocol constants. They are package-private so nothing can
// mutate them after init; use Prime and Order for copies.
var (
	// fieldPrime is the Stark field modulus P = 2^251 + 17*2^192 + 1.
	fieldPrime, _ = new(big.Int).SetString(
		"800000000000011000000000000000000000000000000000000000000000001", 16)
	// curveOrder is the order N of the Stark curve generator, the modulus
	// for all scalar (key and signature) arithmetic.
	curveOrder, _ = new(big.Int).SetString(
		"800000000000010ffffffffffffffffb781126dcae7b2321e66a241adc64d2f", 16)
)

// Prime returns a copy of the Stark field modulus P.
func Prime() *big.Int { return new(big.Int).Set(fieldPrime) }

// Order returns a copy of the Stark curve order N.
func Order() *big.Int { return new(big.Int).Set(curveOrder) }

// strip0x removes a single optional 0x/0X prefix.
func strip0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func isHexDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// parseHexInRange parses a 0x-optional, case-insensitive hex string and
// enforces the given exclusive upper bound.
func parseHexInRange(s string, bound *big.Int) (*big.Int, error) {
	digits := strip0x(s)
	if !isHexDigits(digits) {
		return nil, fmt.Errorf("%w: %q is not a hex string", ErrInvalidEncoding, s)
	}
	n, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a hex string", ErrInvalidEncoding, s)
	}
	if n.Cmp(bound) >= 0 {
		return nil, fmt.Errorf("%w: %q exceeds the modulus", ErrValueOutOfRange, s)
	}
	return n, nil
}

// ParseFelt parses a hex string into a field element in [0, P).
func ParseFelt(s string) (*big.Int, error) {
	return parseHexInRange(s, fieldPrime)
}

// ParseScalar parses a hex string into a curve scalar in [0, N). Private
// keys and signature s components live in this range, not in [0, P).
func ParseScalar(s string) (*big.Int, error) {
	return parseHexInRange(s, curveOrder)
}

// HexFixed renders n as fixed-width (32-byte) lowercase hex with a 0x
// prefix. The protocol uses this form for keys and signature components.
func HexFixed(n *big.Int) string {
	return fmt.Sprintf("0x%064x", n)
}

// HexMinimal renders n as minimal lowercase hex with a 0x prefix and no
// zero padding. The protocol uses this form for message digests; swapping
// it with HexFixed breaks byte-for-byte parity with the reference hashes.
func HexMinimal(n *big.Int) string {
	return "0x" + n.Text(16)
}

// bytesBE returns the minimal big-endian byte representation of n, with
// zero encoded as a single 0x00 byte to match the reference serializer.
func bytesBE(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{0}
	}
	return n.Bytes()
}
