package starkex

import (
	"fmt"
	"math/big"
)

// Order is a perpetual order settlement record. Asset ids are hex field
// elements; amounts are decimal strings (base and quote amounts signed,
// fee unsigned).
type Order struct {
	PositionID   uint64
	BaseAssetID  string `validate:"required,hexadecimal"`
	BaseAmount   string `validate:"required,numeric"`
	QuoteAssetID string `validate:"required,hexadecimal"`
	QuoteAmount  string `validate:"required,numeric"`
	FeeAssetID   string `validate:"required,hexadecimal"`
	FeeAmount    string `validate:"required,numeric"`
	Expiration   uint64
	Salt         uint64
}

// MsgHash returns the canonical digest the order signer commits to, in
// minimal hex.
func (o Order) MsgHash(d Domain, userPublicKeyHex string) (string, error) {
	structHash, err := o.hash()
	if err != nil {
		return "", err
	}
	return messageHash(structHash, d, userPublicKeyHex)
}

func (o Order) hash() (*big.Int, error) {
	if err := validate.Struct(o); err != nil {
		return nil, fmt.Errorf("validate order: %w", err)
	}
	positionID, err := positionIDFelt("position_id", o.PositionID)
	if err != nil {
		return nil, err
	}
	baseAsset, err := feltField("base_asset_id", o.BaseAssetID)
	if err != nil {
		return nil, err
	}
	baseAmount, err := signedAmountFelt("base_amount", o.BaseAmount)
	if err != nil {
		return nil, err
	}
	quoteAsset, err := feltField("quote_asset_id", o.QuoteAssetID)
	if err != nil {
		return nil, err
	}
	quoteAmount, err := signedAmountFelt("quote_amount", o.QuoteAmount)
	if err != nil {
		return nil, err
	}
	feeAsset, err := feltField("fee_asset_id", o.FeeAssetID)
	if err != nil {
		return nil, err
	}
	feeAmount, err := unsignedAmountFelt("fee_amount", o.FeeAmount)
	if err != nil {
		return nil, err
	}
	return poseidonDigest(
		orderSelector,
		positionID,
		baseAsset,
		baseAmount,
		quoteAsset,
		quoteAmount,
		feeAsset,
		feeAmount,
		new(big.Int).SetUint64(o.Expiration),
		new(big.Int).SetUint64(o.Salt),
	), nil
}
