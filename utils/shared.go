package utils

import (
	"fmt"
	"sync/atomic"
)

// Shared is a reference-counted handle on a value of type V.
// Each handle is owned by exactly one holder. New handles on the
// same value are obtained with Retain, and every handle must be
// given back with Release. The value is dropped, and the optional
// release callback invoked, when the last handle is released.
//
// The count is maintained atomically, so handles can be retained and
// released from different goroutines. The value itself is never
// modified by Shared and should be treated as immutable once shared.
type Shared[V any] struct {
	state    *sharedState[V]
	released atomic.Bool
}

type sharedState[V any] struct {
	refs      atomic.Int64
	value     V
	onRelease func(V)
}

// NewShared wraps v in a new handle with a reference count of one.
// onRelease can be nil.
func NewShared[V any](v V, onRelease func(V)) *Shared[V] {
	st := &sharedState[V]{value: v, onRelease: onRelease}
	st.refs.Store(1)
	return &Shared[V]{state: st}
}

// Retain returns a new handle on the same value and increments the
// reference count. It panics if s has already been released.
func (s *Shared[V]) Retain() *Shared[V] {
	if s.released.Load() {
		panic(fmt.Errorf("cannot Retain: handle on %T has been released", s.state.value))
	}
	s.state.refs.Add(1)
	return &Shared[V]{state: s.state}
}

// Release gives back the handle. Releasing the same handle twice is a no-op.
func (s *Shared[V]) Release() {
	if !s.released.CompareAndSwap(false, true) {
		return
	}

	if s.state.refs.Add(-1) == 0 {
		v := s.state.value
		var zero V
		s.state.value = zero
		if s.state.onRelease != nil {
			s.state.onRelease(v)
		}
	}
}

// Value returns the shared value. It panics if s has been released.
func (s *Shared[V]) Value() V {
	if s.released.Load() {
		panic(fmt.Errorf("cannot Value: handle on %T has been released", s.state.value))
	}
	return s.state.value
}

// Alive returns true if s has not been released.
func (s *Shared[V]) Alive() bool {
	return !s.released.Load()
}

// Refs returns the number of live handles on the shared value.
func (s *Shared[V]) Refs() int64 {
	return s.state.refs.Load()
}
