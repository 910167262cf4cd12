package starkex

import (
	"github.com/extended-exchange/starksign/pkg/stark"
)

// StarkSignature is the (r, s) pair in fixed-width hex, the shape the
// exchange API expects in settlement payloads.
type StarkSignature struct {
	R string `json:"r"`
	S string `json:"s"`
}

// Settlement couples a message digest with its signature and the signing
// Stark key, ready to attach to an order, transfer, or withdrawal request.
type Settlement struct {
	MsgHash   string         `json:"msg_hash"`
	Signature StarkSignature `json:"signature"`
	StarkKey  string         `json:"stark_key"`
}

// Signable is any record that can produce a canonical message digest.
type Signable interface {
	MsgHash(d Domain, userPublicKeyHex string) (string, error)
}

// SignMessage hashes the record for the signer's own public key and signs
// the digest.
func SignMessage(msg Signable, d Domain, signer *stark.Signer) (*Settlement, error) {
	msgHash, err := msg.MsgHash(d, signer.PublicKeyHex())
	if err != nil {
		return nil, err
	}
	r, s, err := signer.SignHex(msgHash)
	if err != nil {
		return nil, err
	}
	return &Settlement{
		MsgHash:   msgHash,
		Signature: StarkSignature{R: r, S: s},
		StarkKey:  signer.PublicKeyHex(),
	}, nil
}
