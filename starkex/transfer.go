package starkex

import (
	"fmt"
	"math/big"
)

// Transfer moves collateral between two positions. Amount is an unsigned
// decimal string; Salt is a decimal string of arbitrary felt width.
type Transfer struct {
	RecipientPositionID uint64
	SenderPositionID    uint64
	CollateralAssetID   string `validate:"required,hexadecimal"`
	Amount              string `validate:"required,numeric"`
	Expiration          uint64
	Salt                string `validate:"required,numeric"`
}

// MsgHash returns the canonical digest the transfer signer commits to, in
// minimal hex.
func (tr Transfer) MsgHash(d Domain, userPublicKeyHex string) (string, error) {
	structHash, err := tr.hash()
	if err != nil {
		return "", err
	}
	return messageHash(structHash, d, userPublicKeyHex)
}

func (tr Transfer) hash() (*big.Int, error) {
	if err := validate.Struct(tr); err != nil {
		return nil, fmt.Errorf("validate transfer: %w", err)
	}
	recipient, err := positionIDFelt("recipient_position_id", tr.RecipientPositionID)
	if err != nil {
		return nil, err
	}
	sender, err := positionIDFelt("sender_position_id", tr.SenderPositionID)
	if err != nil {
		return nil, err
	}
	collateral, err := feltField("collateral_asset_id", tr.CollateralAssetID)
	if err != nil {
		return nil, err
	}
	amount, err := unsignedAmountFelt("amount", tr.Amount)
	if err != nil {
		return nil, err
	}
	salt, err := saltFelt("salt", tr.Salt)
	if err != nil {
		return nil, err
	}
	return poseidonDigest(
		transferSelector,
		recipient,
		sender,
		collateral,
		amount,
		new(big.Int).SetUint64(tr.Expiration),
		salt,
	), nil
}
