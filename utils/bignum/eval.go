package bignum

import (
	"math/big"
)

// PowerSumEval evaluates y = sum x^i * poly[i], computing each power independently.
// The precision of x is used as reference precision for y.
func PowerSumEval(x *big.Float, poly []*big.Float) (y *big.Float) {
	y = NewFloat(nil, x.Prec())
	tmp := new(big.Float).SetPrec(x.Prec())
	for i := range poly {
		y.Add(y, tmp.Mul(PowInt(x, i), poly[i]))
	}
	return
}

// MonomialEval evaluates y = sum x^i * poly[i] with Horner's scheme.
// The precision of x is used as reference precision for y.
func MonomialEval(x *big.Float, poly []*big.Float) (y *big.Float) {
	y = NewFloat(nil, x.Prec())
	for i := len(poly) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, poly[i])
	}
	return
}
