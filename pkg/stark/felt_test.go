package stark

import (
	"testing"

	"github.com/NethermindEth/starknet.go/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantsMatchCurveLibrary(t *testing.T) {
	assert.Zero(t, Prime().Cmp(curve.Curve.P), "field prime must match the curve library")
	assert.Zero(t, Order().Cmp(curve.Curve.N), "curve order must match the curve library")
}

func TestConstantAccessorsReturnCopies(t *testing.T) {
	p := Prime()
	p.SetInt64(1)
	assert.NotZero(t, Prime().Cmp(p), "mutating the returned value must not affect the constant")
}

func TestParseFelt(t *testing.T) {
	t.Run("valid inputs", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
			want  int64
		}{
			{"prefixed", "0x2", 2},
			{"unprefixed", "2", 2},
			{"uppercase prefix", "0X2", 2},
			{"uppercase digits", "0xAB", 171},
			{"mixed case digits", "0xaB", 171},
			{"leading zeros", "0x0000000000000002", 2},
			{"zero", "0x0", 0},
		}
		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				n, err := ParseFelt(test.input)
				require.NoError(t, err)
				assert.EqualValues(t, test.want, n.Int64())
			})
		}
	})

	t.Run("invalid encoding", func(t *testing.T) {
		for _, input := range []string{"", "0x", "zz", "0xzz", "0x12g4", "-0x2", "+2", "0x_2"} {
			_, err := ParseFelt(input)
			assert.ErrorIs(t, err, ErrInvalidEncoding, "input %q", input)
		}
	})

	t.Run("range", func(t *testing.T) {
		pMinusOne := Prime()
		pMinusOne.Sub(pMinusOne, one())
		_, err := ParseFelt(HexMinimal(pMinusOne))
		assert.NoError(t, err)

		_, err = ParseFelt(HexMinimal(Prime()))
		assert.ErrorIs(t, err, ErrValueOutOfRange)
	})
}

func TestParseScalar(t *testing.T) {
	nMinusOne := Order()
	nMinusOne.Sub(nMinusOne, one())
	got, err := ParseScalar(HexMinimal(nMinusOne))
	require.NoError(t, err)
	assert.Zero(t, got.Cmp(nMinusOne))

	_, err = ParseScalar(HexMinimal(Order()))
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	// N is below P, so a value in the gap parses as a felt but not as a
	// scalar.
	_, err = ParseFelt(HexMinimal(Order()))
	assert.NoError(t, err)
}

func TestHexRenderings(t *testing.T) {
	n, err := ParseFelt("0x5d05989e9302dcebc74e241001e3e3ac3f4402ccf2f8e6f74b034b07ad6a904")
	require.NoError(t, err)

	t.Run("fixed width pads to 32 bytes", func(t *testing.T) {
		fixed := HexFixed(n)
		assert.Len(t, fixed, 2+64)
		assert.Equal(t, "0x05d05989e9302dcebc74e241001e3e3ac3f4402ccf2f8e6f74b034b07ad6a904", fixed)
	})

	t.Run("minimal drops leading zeros", func(t *testing.T) {
		assert.Equal(t, "0x5d05989e9302dcebc74e241001e3e3ac3f4402ccf2f8e6f74b034b07ad6a904", HexMinimal(n))
	})

	t.Run("zero", func(t *testing.T) {
		zero, err := ParseFelt("0x0")
		require.NoError(t, err)
		assert.Equal(t, "0x0", HexMinimal(zero))
		assert.Equal(t, "0x"+zeros(64), HexFixed(zero))
	})

	t.Run("round trip", func(t *testing.T) {
		viaFixed, err := ParseFelt(HexFixed(n))
		require.NoError(t, err)
		viaMinimal, err := ParseFelt(HexMinimal(n))
		require.NoError(t, err)
		assert.Zero(t, n.Cmp(viaFixed))
		assert.Zero(t, n.Cmp(viaMinimal))
	})
}
