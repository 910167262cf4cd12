package starkex

import (
	"math/big"

	"github.com/extended-exchange/starksign/pkg/stark"
)

// Selector constants type-tag each structured message kind. They are
// fixed by the settlement contracts and never change at runtime.
var (
	domainSelector     = mustFelt("0x1ff2f602e42168014d405a94f75e8a93d640751d71d16311266e140d8b0a210")
	orderSelector      = mustFelt("0x36da8d51815527cabfaa9c982f564c80fa7429616739306036f1f9b608dd112")
	transferSelector   = mustFelt("0x1db88e2709fdf2c59e651d141c3296a42b209ce770871b40413ea109846a3b4")
	withdrawalSelector = mustFelt("0x250a5fa378e8b771654bd43dcb34844534f9d1e29e16b14760d7936ea7f4b1d")
)

func mustFelt(hexValue string) *big.Int {
	n, err := stark.ParseFelt(hexValue)
	if err != nil {
		panic(err)
	}
	return n
}
