package main

import (
	"os"
)

func main() {
	logger := NewLoggerIPFS("starksign")
	if len(os.Args) < 2 {
		usage(logger)
	}

	switch os.Args[1] {
	case "sign":
		runSignCli(logger)
	case "pedersen":
		runPedersenCli(logger)
	case "derive-keys":
		runDeriveKeysCli(logger)
	case "order-hash":
		runOrderHashCli(logger)
	case "transfer-hash":
		runTransferHashCli(logger)
	case "withdrawal-hash":
		runWithdrawalHashCli(logger)
	default:
		usage(logger)
	}
}

func usage(logger Logger) {
	logger.Fatal("Usage: starksign <sign|pedersen|derive-keys|order-hash|transfer-hash|withdrawal-hash> ...")
}
