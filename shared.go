package spawn

import (
	"sync/atomic"
	"unsafe"
)

// A Shared is a reference-counted cell wrapping a native spawner that is
// not independently ownable. Adapters create one in IntoHandle and expose
// its address as the opaque [Handle]; OnClone and OnDrop then map onto
// [Shared.Retain] and [Shared.Release].
//
// A new cell holds one reference, owed to the handle that created it.
type Shared[T any] struct {
	value   T
	release func(T)
	refs    atomic.Int64
}

// NewShared wraps value in a cell holding one reference. If release is
// non-nil, it runs once, when the last reference is dropped.
func NewShared[T any](value T, release func(T)) *Shared[T] {
	s := &Shared[T]{value: value, release: release}
	s.refs.Store(1)
	return s
}

// OpenShared recovers the cell behind a [Handle] produced by
// [Shared.Handle]. T must be the type the cell was created with.
func OpenShared[T any](h Handle) *Shared[T] {
	return (*Shared[T])(unsafe.Pointer(h))
}

// Handle returns the cell's address as an opaque [Handle].
func (s *Shared[T]) Handle() Handle {
	return Handle(unsafe.Pointer(s))
}

// Get returns the wrapped value. It must not be called after the last
// reference has been released.
func (s *Shared[T]) Get() T {
	return s.value
}

// Retain adds one reference.
func (s *Shared[T]) Retain() {
	s.refs.Add(1)
}

// Release drops one reference. Dropping the last one runs the release
// hook and clears the value so the native spawner can be collected.
func (s *Shared[T]) Release() {
	if s.refs.Add(-1) != 0 {
		return
	}
	if s.release != nil {
		s.release(s.value)
	}
	var zero T
	s.value = zero
}
