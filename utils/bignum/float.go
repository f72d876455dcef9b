// Package bignum implements arbitrary precision arithmetic helpers used as
// reference values when measuring the accuracy of float64 evaluation.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valid types for x are: int, int64, uint, uint64, float32, float64, *big.Int or *big.Float.
// NaN cannot be represented by a big.Float and panics.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float32:
		y.SetFloat64(float64(x))
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, int64, uint, uint64, float32, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// NewFloats converts a slice of float64 to big.Float with "prec" bits of precision.
func NewFloats(x []float64, prec uint) (y []*big.Float) {
	y = make([]*big.Float, len(x))
	for i := range x {
		y[i] = NewFloat(x[i], prec)
	}
	return
}

// PowInt returns x^k with the precision of x.
// k must be non-negative and x^0 = 1 for every x.
func PowInt(x *big.Float, k int) (y *big.Float) {

	if k < 0 {
		panic(fmt.Errorf("cannot PowInt: negative exponent %d", k))
	}

	prec := x.Prec()

	if k == 0 {
		return NewFloat(1, prec)
	}

	// bigfloat.Pow only accepts non-negative bases
	y = bigfloat.Pow(new(big.Float).Abs(x), NewFloat(k, prec))

	if x.Sign() < 0 && k&1 == 1 {
		y.Neg(y)
	}

	return
}
