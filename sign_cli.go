package main

import (
	"fmt"
	"os"

	"github.com/extended-exchange/starksign/pkg/stark"
)

// runSignCli signs a message hash with a Stark private key.
// Example: starksign sign <private_key_hex> <msg_hash_hex>
func runSignCli(logger Logger) {
	logger = logger.NewSystem("sign")
	if len(os.Args) != 4 {
		logger.Fatal("Usage: starksign sign <private_key_hex> <msg_hash_hex>")
	}

	r, s, err := stark.Sign(os.Args[2], os.Args[3])
	if err != nil {
		logger.Fatal("Failed to sign message hash", "error", err)
	}
	fmt.Println(r)
	fmt.Println(s)
}

// runPedersenCli hashes two field elements with the Pedersen hash.
// Example: starksign pedersen <a_hex> <b_hex>
func runPedersenCli(logger Logger) {
	logger = logger.NewSystem("pedersen")
	if len(os.Args) != 4 {
		logger.Fatal("Usage: starksign pedersen <a_hex> <b_hex>")
	}

	hash, err := stark.PedersenHash(os.Args[2], os.Args[3])
	if err != nil {
		logger.Fatal("Failed to compute pedersen hash", "error", err)
	}
	fmt.Println(hash)
}
