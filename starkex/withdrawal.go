package starkex

import (
	"fmt"
	"math/big"
)

// Withdrawal moves collateral out of a position to an on-chain recipient
// address (a hex field element).
type Withdrawal struct {
	Recipient         string `validate:"required,hexadecimal"`
	PositionID        uint64
	CollateralAssetID string `validate:"required,hexadecimal"`
	Amount            string `validate:"required,numeric"`
	Expiration        uint64
	Salt              string `validate:"required,numeric"`
}

// MsgHash returns the canonical digest the withdrawal signer commits to,
// in minimal hex.
func (w Withdrawal) MsgHash(d Domain, userPublicKeyHex string) (string, error) {
	structHash, err := w.hash()
	if err != nil {
		return "", err
	}
	return messageHash(structHash, d, userPublicKeyHex)
}

func (w Withdrawal) hash() (*big.Int, error) {
	if err := validate.Struct(w); err != nil {
		return nil, fmt.Errorf("validate withdrawal: %w", err)
	}
	recipient, err := feltField("recipient", w.Recipient)
	if err != nil {
		return nil, err
	}
	positionID, err := positionIDFelt("position_id", w.PositionID)
	if err != nil {
		return nil, err
	}
	collateral, err := feltField("collateral_asset_id", w.CollateralAssetID)
	if err != nil {
		return nil, err
	}
	amount, err := unsignedAmountFelt("amount", w.Amount)
	if err != nil {
		return nil, err
	}
	salt, err := saltFelt("salt", w.Salt)
	if err != nil {
		return nil, err
	}
	return poseidonDigest(
		withdrawalSelector,
		recipient,
		positionID,
		collateral,
		amount,
		new(big.Int).SetUint64(w.Expiration),
		salt,
	), nil
}
