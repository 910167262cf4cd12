package stark

import (
	"fmt"
	"math/big"

	"github.com/NethermindEth/starknet.go/curve"
	"github.com/NethermindEth/starknet.go/utils"
)

// Signer signs Stark message hashes with a fixed private key. The zero
// value is not usable; construct with NewSigner or NewSignerFromScalar.
type Signer struct {
	privateKey *big.Int
	publicKey  *big.Int
}

// NewSigner builds a Signer from a fixed-width or minimal hex private key.
func NewSigner(privateKeyHex string) (*Signer, error) {
	priv, err := ParseScalar(privateKeyHex)
	if err != nil {
		return nil, NewFieldError("private_key", privateKeyHex, err)
	}
	return NewSignerFromScalar(priv)
}

// NewSignerFromScalar builds a Signer from a scalar in [0, N).
func NewSignerFromScalar(priv *big.Int) (*Signer, error) {
	if priv.Sign() < 0 || priv.Cmp(curveOrder) >= 0 {
		return nil, fmt.Errorf("%w: private key not in [0, N)", ErrValueOutOfRange)
	}
	pub, err := PublicKeyFromPrivate(priv)
	if err != nil {
		return nil, err
	}
	return &Signer{
		privateKey: new(big.Int).Set(priv),
		publicKey:  pub,
	}, nil
}

// PublicKey returns a copy of the signer's public key.
func (sg *Signer) PublicKey() *big.Int { return new(big.Int).Set(sg.publicKey) }

// PublicKeyHex returns the public key in the fixed-width hex form used
// for keys.
func (sg *Signer) PublicKeyHex() string { return HexFixed(sg.publicKey) }

// Sign produces a deterministic ECDSA signature (r, s) over msgHash.
//
// The nonce k comes from the RFC 6979 construction over the curve order
// (Starkware's SHA-256 variant), so identical inputs always produce the
// same signature. r is the x-coordinate of k*G; s is computed explicitly
// as k^(N-2) * (msgHash + r*privateKey) mod N.
//
// Parity note: the Cairo-side reference verifier uses a modified ECDSA
// equation, so signatures produced here share its r but can diverge in s.
// This matches the upstream exchange signer, which documents the same gap.
func (sg *Signer) Sign(msgHash *big.Int) (r, s *big.Int, err error) {
	if msgHash.Sign() < 0 || msgHash.Cmp(fieldPrime) >= 0 {
		return nil, nil, fmt.Errorf("%w: message hash not in [0, P)", ErrValueOutOfRange)
	}

	// GenerateSecret mutates its arguments, so hand it copies.
	k := curve.Curve.GenerateSecret(
		new(big.Int).Set(msgHash), new(big.Int).Set(sg.privateKey), big.NewInt(0))
	r, _, err = curve.Curve.PrivateToPoint(k)
	if err != nil {
		return nil, nil, fmt.Errorf("compute nonce point: %w", err)
	}

	// s = k^-1 * (h + r*x) mod N, inverse via Fermat since N is prime.
	s = new(big.Int).Mul(r, sg.privateKey)
	s.Mod(s, curveOrder)
	s.Add(s, msgHash)
	s.Mod(s, curveOrder)
	kInv := new(big.Int).Exp(k, new(big.Int).Sub(curveOrder, big.NewInt(2)), curveOrder)
	s.Mul(s, kInv)
	s.Mod(s, curveOrder)
	return r, s, nil
}

// SignHex signs a hex message hash and renders both components in the
// fixed-width hex form used for signatures.
func (sg *Signer) SignHex(msgHashHex string) (rHex, sHex string, err error) {
	msgHash, err := ParseFelt(msgHashHex)
	if err != nil {
		return "", "", NewFieldError("msg_hash", msgHashHex, err)
	}
	r, s, err := sg.Sign(msgHash)
	if err != nil {
		return "", "", err
	}
	return HexFixed(r), HexFixed(s), nil
}

// Sign is the one-shot form of Signer.SignHex.
func Sign(privateKeyHex, msgHashHex string) (rHex, sHex string, err error) {
	sg, err := NewSigner(privateKeyHex)
	if err != nil {
		return "", "", err
	}
	return sg.SignHex(msgHashHex)
}

// PedersenHash computes the Stark Pedersen hash of two field elements and
// renders it in fixed-width hex.
func PedersenHash(aHex, bHex string) (string, error) {
	a, err := ParseFelt(aHex)
	if err != nil {
		return "", NewFieldError("a", aHex, err)
	}
	b, err := ParseFelt(bHex)
	if err != nil {
		return "", NewFieldError("b", bHex, err)
	}
	digest := curve.Pedersen(utils.BigIntToFelt(a), utils.BigIntToFelt(b))
	return HexFixed(utils.FeltToBigInt(digest)), nil
}
