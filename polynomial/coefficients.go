package polynomial

import (
	"encoding/binary"
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/zeebo/blake3"
	"golang.org/x/exp/constraints"
)

// Coefficients is an immutable sequence of polynomial coefficients.
// The zero value is the empty polynomial.
type Coefficients[T constraints.Float] struct {
	values []T
}

// NewCoefficients returns a new Coefficients holding a copy of c.
func NewCoefficients[T constraints.Float](c []T) Coefficients[T] {
	values := make([]T, len(c))
	copy(values, c)
	return Coefficients[T]{values: values}
}

// Len returns the number of coefficients.
func (c Coefficients[T]) Len() int {
	return len(c.values)
}

// Degree returns the degree of the polynomial, -1 for the empty polynomial.
func (c Coefficients[T]) Degree() int {
	return len(c.values) - 1
}

// At returns the coefficient of x^i.
func (c Coefficients[T]) At(i int) T {
	return c.values[i]
}

// Values returns a copy of the coefficients.
func (c Coefficients[T]) Values() (values []T) {
	values = make([]T, len(c.values))
	copy(values, c.values)
	return
}

// Equal returns true if both sequences hold the same coefficients.
// NaN coefficients compare equal to each other.
func (c Coefficients[T]) Equal(other Coefficients[T]) bool {
	return cmp.Equal(c.values, other.values, cmpopts.EquateNaNs(), cmpopts.EquateEmpty())
}

// Digest returns the blake3 hash of the length and the IEEE-754 encoding of the coefficients.
func (c Coefficients[T]) Digest() []byte {
	return digest(c.values)
}

// Evaluate returns the value of the polynomial at x.
func (c Coefficients[T]) Evaluate(x T, method Method) T {
	return Evaluate(c.values, x, method)
}

// Evaluator returns an Evaluator on c.
// Since c is immutable, the Evaluator has no lifetime constraint.
func (c Coefficients[T]) Evaluator(method Method) Evaluator[T] {
	return func(x T) T {
		return Evaluate(c.values, x, method)
	}
}

func digest[T constraints.Float](values []T) []byte {
	hasher := blake3.New()
	buf := make([]byte, 8)

	binary.LittleEndian.PutUint64(buf, uint64(len(values)))
	hasher.Write(buf)

	for _, v := range values {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(float64(v)))
		hasher.Write(buf)
	}

	return hasher.Sum(nil)
}
