package polynomial

import (
	"github.com/tuneinsight/polyfn/utils"
	"golang.org/x/exp/constraints"
)

// NewShared copies c into a new reference-counted sequence and returns the
// first handle on it. onRelease, if not nil, is called once the last handle
// has been released.
func NewShared[T constraints.Float](c []T, onRelease func(Coefficients[T])) *utils.Shared[Coefficients[T]] {
	return utils.NewShared(NewCoefficients(c), onRelease)
}

// SharedEvaluator evaluates a polynomial held through its own handle on a
// shared sequence. The sequence stays alive at least until the
// SharedEvaluator is released.
type SharedEvaluator[T constraints.Float] struct {
	handle *utils.Shared[Coefficients[T]]
	method Method
}

// Share returns a SharedEvaluator holding a new handle on the sequence of h.
// The caller keeps ownership of h and may release it at any time.
func Share[T constraints.Float](h *utils.Shared[Coefficients[T]]) *SharedEvaluator[T] {
	return ShareWith(h, PowerSum)
}

// ShareWith is like Share but evaluates with the given method.
func ShareWith[T constraints.Float](h *utils.Shared[Coefficients[T]], method Method) *SharedEvaluator[T] {
	return &SharedEvaluator[T]{handle: h.Retain(), method: method}
}

// Evaluate returns the value of the polynomial at x.
// It panics if the evaluator has been released.
func (e *SharedEvaluator[T]) Evaluate(x T) T {
	return e.handle.Value().Evaluate(x, e.method)
}

// Func returns e.Evaluate as an Evaluator.
func (e *SharedEvaluator[T]) Func() Evaluator[T] {
	return e.Evaluate
}

// Coefficients returns the shared coefficients.
func (e *SharedEvaluator[T]) Coefficients() Coefficients[T] {
	return e.handle.Value()
}

// Clone returns a new SharedEvaluator holding its own handle on the same sequence.
func (e *SharedEvaluator[T]) Clone() *SharedEvaluator[T] {
	return &SharedEvaluator[T]{handle: e.handle.Retain(), method: e.method}
}

// Refs returns the number of live handles on the shared sequence.
func (e *SharedEvaluator[T]) Refs() int64 {
	return e.handle.Refs()
}

// Release gives back the evaluator's handle.
func (e *SharedEvaluator[T]) Release() {
	e.handle.Release()
}
