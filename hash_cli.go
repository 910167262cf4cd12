package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/extended-exchange/starksign/starkex"
)

// runOrderHashCli computes the canonical order message hash.
// Example: starksign order-hash <position_id> <base_asset_id> <base_amount>
// <quote_asset_id> <quote_amount> <fee_amount> <fee_asset_id> <expiration>
// <salt> <user_public_key>
func runOrderHashCli(logger Logger) {
	logger = logger.NewSystem("order-hash")
	if len(os.Args) != 12 {
		logger.Fatal("Usage: starksign order-hash <position_id> <base_asset_id> <base_amount> " +
			"<quote_asset_id> <quote_amount> <fee_amount> <fee_asset_id> <expiration> <salt> <user_public_key>")
	}

	config, err := LoadConfig(logger)
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	order := starkex.Order{
		PositionID:   parseUintArg(logger, "position_id", os.Args[2]),
		BaseAssetID:  os.Args[3],
		BaseAmount:   os.Args[4],
		QuoteAssetID: os.Args[5],
		QuoteAmount:  os.Args[6],
		FeeAmount:    os.Args[7],
		FeeAssetID:   os.Args[8],
		Expiration:   parseUintArg(logger, "expiration", os.Args[9]),
		Salt:         parseUintArg(logger, "salt", os.Args[10]),
	}
	hash, err := order.MsgHash(config.domain, os.Args[11])
	if err != nil {
		logger.Fatal("Failed to compute order hash", "error", err)
	}
	fmt.Println(hash)
}

// runTransferHashCli computes the canonical transfer message hash.
// Example: starksign transfer-hash <recipient_position_id>
// <sender_position_id> <amount> <expiration> <salt> <user_public_key>
// <collateral_id>
func runTransferHashCli(logger Logger) {
	logger = logger.NewSystem("transfer-hash")
	if len(os.Args) != 9 {
		logger.Fatal("Usage: starksign transfer-hash <recipient_position_id> <sender_position_id> " +
			"<amount> <expiration> <salt> <user_public_key> <collateral_id>")
	}

	config, err := LoadConfig(logger)
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	transfer := starkex.Transfer{
		RecipientPositionID: parseUintArg(logger, "recipient_position_id", os.Args[2]),
		SenderPositionID:    parseUintArg(logger, "sender_position_id", os.Args[3]),
		Amount:              os.Args[4],
		Expiration:          parseUintArg(logger, "expiration", os.Args[5]),
		Salt:                os.Args[6],
		CollateralAssetID:   os.Args[8],
	}
	hash, err := transfer.MsgHash(config.domain, os.Args[7])
	if err != nil {
		logger.Fatal("Failed to compute transfer hash", "error", err)
	}
	fmt.Println(hash)
}

// runWithdrawalHashCli computes the canonical withdrawal message hash.
// Example: starksign withdrawal-hash <recipient> <position_id> <amount>
// <expiration> <salt> <user_public_key> <collateral_id>
func runWithdrawalHashCli(logger Logger) {
	logger = logger.NewSystem("withdrawal-hash")
	if len(os.Args) != 9 {
		logger.Fatal("Usage: starksign withdrawal-hash <recipient> <position_id> <amount> " +
			"<expiration> <salt> <user_public_key> <collateral_id>")
	}

	config, err := LoadConfig(logger)
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	withdrawal := starkex.Withdrawal{
		Recipient:         os.Args[2],
		PositionID:        parseUintArg(logger, "position_id", os.Args[3]),
		Amount:            os.Args[4],
		Expiration:        parseUintArg(logger, "expiration", os.Args[5]),
		Salt:              os.Args[6],
		CollateralAssetID: os.Args[8],
	}
	hash, err := withdrawal.MsgHash(config.domain, os.Args[7])
	if err != nil {
		logger.Fatal("Failed to compute withdrawal hash", "error", err)
	}
	fmt.Println(hash)
}

func parseUintArg(logger Logger, name, value string) uint64 {
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		logger.Fatal("Invalid "+name, "value", value)
	}
	return parsed
}
