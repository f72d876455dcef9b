package polynomial

import (
	"bytes"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/exp/constraints"
)

var (
	// ErrLeaseReleased is returned when evaluating through a released Lease.
	ErrLeaseReleased = errors.New("lease released")
	// ErrLeaseViolated is returned when the borrowed coefficients changed after the Lease was taken.
	ErrLeaseViolated = errors.New("borrowed coefficients modified")
)

// Lease is a borrowed view on caller-owned coefficients whose validity is
// checked at each evaluation. A Lease is valid from NewLease until Release,
// and only as long as the borrowed slice is left unmodified.
type Lease[T constraints.Float] struct {
	// nil once released
	c      atomic.Pointer[[]T]
	digest []byte
	method Method
}

// NewLease borrows c without copying it. The lease evaluates with PowerSum.
func NewLease[T constraints.Float](c []T) *Lease[T] {
	return NewLeaseWith(c, PowerSum)
}

// NewLeaseWith is like NewLease but evaluates with the given method.
func NewLeaseWith[T constraints.Float](c []T, method Method) *Lease[T] {
	l := &Lease[T]{digest: digest(c), method: method}
	l.c.Store(&c)
	return l
}

// Evaluate returns the value of the polynomial at x, or an error if the
// lease was released or the borrowed coefficients were modified.
func (l *Lease[T]) Evaluate(x T) (y T, err error) {
	c := l.c.Load()
	if c == nil {
		return y, fmt.Errorf("cannot Evaluate: %w", ErrLeaseReleased)
	}

	if !bytes.Equal(digest(*c), l.digest) {
		return y, fmt.Errorf("cannot Evaluate: %w", ErrLeaseViolated)
	}

	return Evaluate(*c, x, l.method), nil
}

// Release ends the lease and drops its reference to the borrowed slice.
// The caller is free to modify or discard the slice afterward.
func (l *Lease[T]) Release() {
	l.c.Store(nil)
}
