package stark

import (
	"math/big"
	"strings"
)

func one() *big.Int { return big.NewInt(1) }

func zeros(n int) string { return strings.Repeat("0", n) }
