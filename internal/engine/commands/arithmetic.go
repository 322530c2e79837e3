// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"

	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/type/num"
)

func add(args []cell.I) cell.I {
	sum := &big.Int{}

	for _, a := range args {
		sum.Add(sum, num.To(a).Int())
	}

	return num.Big(sum)
}

func mul(args []cell.I) cell.I {
	product := big.NewInt(1)

	for _, a := range args {
		product.Mul(product, num.To(a).Int())
	}

	return num.Big(product)
}

func quot(args []cell.I) cell.I {
	dividend, divisor := num.To(args[0]).Int(), nonzero(args[1])

	return num.Big((&big.Int{}).Quo(dividend, divisor))
}

func rem(args []cell.I) cell.I {
	dividend, divisor := num.To(args[0]).Int(), nonzero(args[1])

	return num.Big((&big.Int{}).Rem(dividend, divisor))
}

func sub(args []cell.I) cell.I {
	difference := (&big.Int{}).Set(num.To(args[0]).Int())

	if len(args) == 1 {
		return num.Big(difference.Neg(difference))
	}

	for _, a := range args[1:] {
		difference.Sub(difference, num.To(a).Int())
	}

	return num.Big(difference)
}

func nonzero(c cell.I) *big.Int {
	divisor := num.To(c).Int()
	if divisor.Sign() == 0 {
		failure.Raise(failure.ErrType, "divide by zero")
	}

	return divisor
}
