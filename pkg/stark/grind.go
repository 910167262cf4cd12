package stark

import (
	"crypto/sha256"
	"fmt"
	"math/big"
)

// grindCeiling bounds the rejection-sampling loop. The probability of k
// consecutive rejections is ((2^256 mod N)/2^256)^k, so in practice the
// loop returns on the first or second iteration; the ceiling only guards
// against a corrupted modulus constant.
const grindCeiling = 1 << 20

// keySeedBound is 2^256 - (2^256 mod N): hashes at or above this value
// are rejected so that reduction modulo N stays bias-free.
var keySeedBound = func() *big.Int {
	twoPow256 := new(big.Int).Lsh(big.NewInt(1), 256)
	rem := new(big.Int).Mod(twoPow256, curveOrder)
	return twoPow256.Sub(twoPow256, rem)
}()

// GrindKey maps an arbitrary seed onto a scalar in [0, N) by rejection
// sampling over SHA-256(seed_be || index_be) for index = 0, 1, 2, ...
// The hash must be SHA-256, not a Keccak variant, for parity with the
// reference key-derivation scheme.
func GrindKey(seed *big.Int) (*big.Int, error) {
	seedBytes := bytesBE(seed)
	for index := int64(0); index < grindCeiling; index++ {
		input := make([]byte, 0, len(seedBytes)+8)
		input = append(input, seedBytes...)
		input = append(input, bytesBE(big.NewInt(index))...)
		digest := sha256.Sum256(input)

		key := new(big.Int).SetBytes(digest[:])
		if key.Cmp(keySeedBound) < 0 {
			return key.Mod(key, curveOrder), nil
		}
	}
	return nil, fmt.Errorf("%w: no candidate below bound after %d iterations",
		ErrKeyDerivationExhausted, grindCeiling)
}
