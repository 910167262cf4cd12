package starkex

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/NethermindEth/starknet.go/curve"
	"github.com/NethermindEth/starknet.go/utils"
	"github.com/go-playground/validator/v10"

	"github.com/extended-exchange/starksign/pkg/stark"
)

// validate is shared across all record types; validator instances cache
// struct metadata and are safe for concurrent use.
var validate = validator.New()

// msgPrefix is the short-string tag that domain-separates exchange
// messages from other Starknet signable data.
var msgPrefix = func() *big.Int {
	n, err := stark.EncodeShortString("StarkNet Message")
	if err != nil {
		panic(err)
	}
	return n
}()

// poseidonDigest reduces an ordered field-element sequence through the
// Poseidon sponge.
func poseidonDigest(elems ...*big.Int) *big.Int {
	felts := make([]*felt.Felt, len(elems))
	for i, e := range elems {
		felts[i] = utils.BigIntToFelt(e)
	}
	return utils.FeltToBigInt(curve.PoseidonArray(felts...))
}

// messageHash combines a struct hash with the domain hash and the signer
// public key into the final digest, rendered in minimal hex.
func messageHash(structHash *big.Int, d Domain, userPublicKeyHex string) (string, error) {
	domainHash, err := d.Hash()
	if err != nil {
		return "", err
	}
	userKey, err := feltField("user_public_key", userPublicKeyHex)
	if err != nil {
		return "", err
	}
	return stark.HexMinimal(poseidonDigest(msgPrefix, domainHash, userKey, structHash)), nil
}

// feltField parses a hex field element, tagging failures with the field
// name.
func feltField(field, hexValue string) (*big.Int, error) {
	n, err := stark.ParseFelt(hexValue)
	if err != nil {
		return nil, stark.NewFieldError(field, hexValue, err)
	}
	return n, nil
}

// positionIDFelt range-checks a position or account id to 32 bits before
// widening it to a field element.
func positionIDFelt(field string, id uint64) (*big.Int, error) {
	if id > math.MaxUint32 {
		return nil, stark.NewFieldError(field, strconv.FormatUint(id, 10), stark.ErrValueOutOfRange)
	}
	return new(big.Int).SetUint64(id), nil
}

// signedAmountFelt encodes a signed decimal amount with field negation:
// non-negative values map directly, negative values map to P - |v|.
func signedAmountFelt(field, value string) (*big.Int, error) {
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, stark.NewFieldError(field, value, classifyNumErr(err))
	}
	amount := big.NewInt(v)
	if amount.Sign() < 0 {
		amount.Add(amount, stark.Prime())
	}
	return amount, nil
}

// unsignedAmountFelt parses an unsigned decimal amount.
func unsignedAmountFelt(field, value string) (*big.Int, error) {
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, stark.NewFieldError(field, value, classifyNumErr(err))
	}
	return new(big.Int).SetUint64(v), nil
}

// saltFelt parses a decimal salt of arbitrary width into [0, P).
func saltFelt(field, value string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(value, 10)
	if !ok || n.Sign() < 0 {
		return nil, stark.NewFieldError(field, value, stark.ErrInvalidEncoding)
	}
	if n.Cmp(stark.Prime()) >= 0 {
		return nil, stark.NewFieldError(field, value, stark.ErrValueOutOfRange)
	}
	return n, nil
}

func classifyNumErr(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
		return stark.ErrValueOutOfRange
	}
	return stark.ErrInvalidEncoding
}
