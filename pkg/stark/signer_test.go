package stark

import (
	"math/big"
	"testing"

	"github.com/NethermindEth/starknet.go/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPrivateKeyHex = "0x3c1e9550e66958296d11b60f8e8e7a7ad990d07fa65d5f7652c4a6c87d4e3cc"
	testMsgHashHex    = "0x4de4c009e0d0c5a70a7da0e2039fb2b99f376d53496f89d9f437e736add6b48"
)

func TestNewSigner(t *testing.T) {
	t.Run("valid key", func(t *testing.T) {
		sg, err := NewSigner(testPrivateKeyHex)
		require.NoError(t, err)
		assert.Positive(t, sg.PublicKey().Sign())
		assert.Len(t, sg.PublicKeyHex(), 2+64)
	})

	t.Run("malformed key", func(t *testing.T) {
		_, err := NewSigner("0xnothex")
		assert.ErrorIs(t, err, ErrInvalidEncoding)

		var fieldErr *FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "private_key", fieldErr.Field)
	})

	t.Run("key above curve order", func(t *testing.T) {
		_, err := NewSigner(HexMinimal(Order()))
		assert.ErrorIs(t, err, ErrValueOutOfRange)
	})
}

func TestSignDeterminism(t *testing.T) {
	sg, err := NewSigner(testPrivateKeyHex)
	require.NoError(t, err)

	r1, s1, err := sg.SignHex(testMsgHashHex)
	require.NoError(t, err)
	r2, s2, err := sg.SignHex(testMsgHashHex)
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
	assert.Equal(t, s1, s2)
	assert.Len(t, r1, 2+64, "signature components use fixed-width hex")
	assert.Len(t, s1, 2+64)
}

// TestSignEquation checks the signing identity s*k = h + r*x (mod N)
// against an independently regenerated nonce, which also pins r to the
// RFC 6979 nonce point.
func TestSignEquation(t *testing.T) {
	priv, err := ParseScalar(testPrivateKeyHex)
	require.NoError(t, err)
	msgHash, err := ParseFelt(testMsgHashHex)
	require.NoError(t, err)

	sg, err := NewSignerFromScalar(priv)
	require.NoError(t, err)
	r, s, err := sg.Sign(msgHash)
	require.NoError(t, err)

	k := curve.Curve.GenerateSecret(
		new(big.Int).Set(msgHash), new(big.Int).Set(priv), big.NewInt(0))
	nonceX, _, err := curve.Curve.PrivateToPoint(k)
	require.NoError(t, err)
	assert.Zero(t, r.Cmp(nonceX), "r must be the x-coordinate of k*G")

	lhs := new(big.Int).Mul(s, k)
	lhs.Mod(lhs, Order())
	rhs := new(big.Int).Mul(r, priv)
	rhs.Add(rhs, msgHash)
	rhs.Mod(rhs, Order())
	assert.Zero(t, lhs.Cmp(rhs))
}

func TestSignRanges(t *testing.T) {
	sg, err := NewSigner(testPrivateKeyHex)
	require.NoError(t, err)
	msgHash, err := ParseFelt(testMsgHashHex)
	require.NoError(t, err)

	r, s, err := sg.Sign(msgHash)
	require.NoError(t, err)
	assert.Negative(t, r.Cmp(Prime()))
	assert.Negative(t, s.Cmp(Order()))
}

func TestSignRejectsOutOfRangeHash(t *testing.T) {
	sg, err := NewSigner(testPrivateKeyHex)
	require.NoError(t, err)

	_, _, err = sg.SignHex(HexMinimal(Prime()))
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestSignOneShot(t *testing.T) {
	sg, err := NewSigner(testPrivateKeyHex)
	require.NoError(t, err)
	wantR, wantS, err := sg.SignHex(testMsgHashHex)
	require.NoError(t, err)

	r, s, err := Sign(testPrivateKeyHex, testMsgHashHex)
	require.NoError(t, err)
	assert.Equal(t, wantR, r)
	assert.Equal(t, wantS, s)
}

func TestPedersenHash(t *testing.T) {
	t.Run("reference vector", func(t *testing.T) {
		got, err := PedersenHash(
			"0x3d937c035c878245caf64531a5756109c53068da139362728feb561405371cb",
			"0x208a0a10250e382e1e4bbe2880906c2791bf6275695e02fbbc6aeff9cd8b31a",
		)
		require.NoError(t, err)

		want, err := ParseFelt("0x30e480bed5fe53fa909cc0f8c4d99b8f9f2c016be4c41e13a4848797979c662")
		require.NoError(t, err)
		assert.Equal(t, HexFixed(want), got)
	})

	t.Run("input validation", func(t *testing.T) {
		_, err := PedersenHash("0xzz", "0x1")
		assert.ErrorIs(t, err, ErrInvalidEncoding)

		_, err = PedersenHash("0x1", HexMinimal(Prime()))
		assert.ErrorIs(t, err, ErrValueOutOfRange)
	})
}
