package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/extended-exchange/starksign/starkex"
)

// Config carries the signing-domain parameters shared by all hash
// commands.
type Config struct {
	domain starkex.Domain
}

// LoadConfig reads the signing domain from the environment, with an
// optional .env file. Defaults target the Sepolia perpetuals deployment.
func LoadConfig(logger Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to load .env file", "error", err)
	}

	return &Config{
		domain: starkex.Domain{
			Name:     envOrDefault("STARKSIGN_DOMAIN_NAME", "Perpetuals"),
			Version:  envOrDefault("STARKSIGN_DOMAIN_VERSION", "v0"),
			ChainID:  envOrDefault("STARKSIGN_DOMAIN_CHAIN_ID", "SN_SEPOLIA"),
			Revision: envOrDefault("STARKSIGN_DOMAIN_REVISION", "1"),
		},
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
