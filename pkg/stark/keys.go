package stark

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/NethermindEth/starknet.go/curve"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// rComponentHexLen is the length of the Ethereum signature r component in
// hex characters (32 bytes).
const rComponentHexLen = 64

// PrivateKeyFromEthSignature derives a Stark private key from an Ethereum
// ECDSA signature: the first 32 bytes (the r component) seed the grinding
// KDF. The signature may carry a 0x prefix and extra trailing bytes
// (s and v); only r is consumed.
func PrivateKeyFromEthSignature(sigHex string) (*big.Int, error) {
	digits := strip0x(sigHex)
	if len(digits) < rComponentHexLen {
		return nil, NewFieldError("eth_signature", sigHex, ErrInvalidSignatureLength)
	}
	rDigits := digits[:rComponentHexLen]
	if !isHexDigits(rDigits) {
		return nil, NewFieldError("eth_signature", sigHex, ErrInvalidEncoding)
	}
	r, _ := new(big.Int).SetString(rDigits, 16)
	return GrindKey(r)
}

// PublicKeyFromPrivate returns the x-coordinate of priv*G, the Stark
// public key for the given private key.
func PublicKeyFromPrivate(priv *big.Int) (*big.Int, error) {
	x, _, err := curve.Curve.PrivateToPoint(priv)
	if err != nil {
		return nil, fmt.Errorf("derive public key: %w", err)
	}
	return x, nil
}

// KeypairFromEthSignature derives a Stark keypair from an Ethereum
// signature. Both keys are rendered as fixed-width hex.
func KeypairFromEthSignature(sigHex string) (privHex, pubHex string, err error) {
	priv, err := PrivateKeyFromEthSignature(sigHex)
	if err != nil {
		return "", "", err
	}
	pub, err := PublicKeyFromPrivate(priv)
	if err != nil {
		return "", "", err
	}
	return HexFixed(priv), HexFixed(pub), nil
}

// KeypairFromEthKey runs the onboarding flow locally: it signs the
// account-registration typed data with the given Ethereum private key and
// derives the Stark keypair from the resulting signature. This matches
// deriving from a wallet-produced signature of the same payload.
func KeypairFromEthKey(ethPrivateKeyHex string, registration apitypes.TypedData) (privHex, pubHex string, err error) {
	key, err := ethcrypto.HexToECDSA(strings.TrimPrefix(ethPrivateKeyHex, "0x"))
	if err != nil {
		return "", "", fmt.Errorf("parse ethereum private key: %w", err)
	}
	hash, _, err := apitypes.TypedDataAndHash(registration)
	if err != nil {
		return "", "", fmt.Errorf("hash registration payload: %w", err)
	}
	sig, err := ethcrypto.Sign(hash, key)
	if err != nil {
		return "", "", fmt.Errorf("sign registration payload: %w", err)
	}
	return KeypairFromEthSignature(hexutil.Encode(sig))
}
