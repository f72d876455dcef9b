// Package polynomial builds reusable evaluators for polynomials given by their
// coefficients in the monomial basis, where coefficient i is the factor of x^i.
//
// Evaluators come in three flavors that differ only in how they hold on to
// the coefficients:
//
//   - Borrow closes over the caller's slice without copying it. The evaluator is
//     valid only while that slice is alive and unmodified. NewLease offers the
//     same borrowing with the contract checked on every call.
//   - Own copies the coefficients, and the evaluator can then be kept or passed
//     around freely.
//   - Share retains a reference-counted handle on a shared sequence, keeping it
//     alive until the evaluator is released, regardless of what other holders do.
//
// Evaluation never fails: NaN and infinities propagate following IEEE-754.
package polynomial

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Method is the evaluation scheme.
type Method int

const (
	// PowerSum : y = c[0] + x^1 * c[1] + ... + x^(n-1) * c[n-1], each power computed independently.
	PowerSum = Method(0)
	// Horner : y = c[0] + x * (c[1] + x * (... + x * c[n-1])).
	Horner = Method(1)
)

func (m Method) String() string {
	switch m {
	case PowerSum:
		return "PowerSum"
	case Horner:
		return "Horner"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Evaluator evaluates a polynomial at x.
type Evaluator[T constraints.Float] func(x T) T

// Evaluate returns y = sum x^i * c[i] using the given method.
// An empty c evaluates to zero.
//
// Both methods agree up to floating-point rounding on finite inputs. They can
// differ on non-finite ones: PowerSum uses x^0 = 1 for every x, while Horner
// multiplies by x at each step, so for instance c = [a] and x = +Inf gives a
// with PowerSum and NaN with Horner.
func Evaluate[T constraints.Float](c []T, x T, method Method) (y T) {
	switch method {
	case PowerSum:
		for i := range c {
			y = y + pow(x, i)*c[i]
		}
	case Horner:
		for i := len(c) - 1; i >= 0; i-- {
			y = y*x + c[i]
		}
	default:
		panic(fmt.Sprintf("invalid method, allowed methods are `PowerSum` or `Horner` but is %v", method))
	}
	return
}

func pow[T constraints.Float](x T, i int) T {
	return T(math.Pow(float64(x), float64(i)))
}

// Borrow returns an Evaluator reading its coefficients directly from c.
//
// c is not copied. The returned Evaluator must not be called, stored or
// returned past the point where c is modified or no longer meant to be read
// by it. Callers that cannot guarantee this should use Own, Share or NewLease.
func Borrow[T constraints.Float](c []T) Evaluator[T] {
	return func(x T) T {
		return Evaluate(c, x, PowerSum)
	}
}

// Own returns an Evaluator on a private copy of c.
// The Evaluator does not depend on c after the call returns.
func Own[T constraints.Float](c []T) Evaluator[T] {
	return NewCoefficients(c).Evaluator(PowerSum)
}
