package main

import (
	"fmt"
	"os"

	"github.com/extended-exchange/starksign/pkg/stark"
)

// runDeriveKeysCli derives a Stark keypair from an Ethereum signature.
// Example: starksign derive-keys <eth_signature_hex>
func runDeriveKeysCli(logger Logger) {
	logger = logger.NewSystem("derive-keys")
	if len(os.Args) != 3 {
		logger.Fatal("Usage: starksign derive-keys <eth_signature_hex>")
	}

	privHex, pubHex, err := stark.KeypairFromEthSignature(os.Args[2])
	if err != nil {
		logger.Fatal("Failed to derive keypair", "error", err)
	}
	fmt.Println(privHex)
	fmt.Println(pubHex)
}
