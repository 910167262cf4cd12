package starkex

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/extended-exchange/starksign/pkg/stark"
)

// Domain identifies the signing context (application, version, chain and
// hashing revision). Name, Version and ChainID are Cairo short strings of
// at most 31 bytes; Revision is a small non-negative decimal.
type Domain struct {
	Name     string `validate:"required"`
	Version  string `validate:"required"`
	ChainID  string `validate:"required"`
	Revision string `validate:"required,number"`
}

// Hash reduces the domain to its separation field element:
// Poseidon(selector, name, version, chain_id, revision).
func (d Domain) Hash() (*big.Int, error) {
	if err := validate.Struct(d); err != nil {
		return nil, fmt.Errorf("validate domain: %w", err)
	}
	name, err := shortStringFelt("domain.name", d.Name)
	if err != nil {
		return nil, err
	}
	version, err := shortStringFelt("domain.version", d.Version)
	if err != nil {
		return nil, err
	}
	chainID, err := shortStringFelt("domain.chain_id", d.ChainID)
	if err != nil {
		return nil, err
	}
	revision, err := strconv.ParseUint(d.Revision, 10, 32)
	if err != nil {
		return nil, stark.NewFieldError("domain.revision", d.Revision, classifyNumErr(err))
	}
	return poseidonDigest(domainSelector, name, version, chainID,
		new(big.Int).SetUint64(revision)), nil
}

func shortStringFelt(field, value string) (*big.Int, error) {
	n, err := stark.EncodeShortString(value)
	if err != nil {
		return nil, stark.NewFieldError(field, value, err)
	}
	return n, nil
}
