package spawn

import (
	"reflect"
	"sync"
	"sync/atomic"
	"unsafe"
)

// A Handle is an opaque, address-sized token denoting an adapter's
// underlying executor. It is meaningless except to the adapter that
// produced it. The Go runtime traces it like any other pointer, so a
// Handle held by a live [Local] keeps the executor's state reachable.
type Handle unsafe.Pointer

// An Adapter integrates one concrete executor with this package.
//
// IntoHandle consumes the adapter and is the only operation that may use
// the receiver. The remaining four are installed into a per-type function
// table from the adapter's zero value; they must operate solely on the
// Handle they are given.
//
// Allocate returns uninitialized storage for one future of the given
// type, bound to the pending spawn via b. It must not block, and it must
// not fail recoverably; an executor that cannot allocate should panic.
//
// FinishSpawn takes ownership of the now-initialized future, visible only
// through its [Future] view, and hands it to the native executor's own
// queue. It must be synchronous and non-blocking. It returns
// [ErrShutdown] (possibly wrapped) when the executor has torn down, or
// any other error for an unclassified failure.
//
// OnClone and OnDrop retain and release the shared state behind the
// Handle. Stateless adapters implement them as no-ops.
type Adapter interface {
	IntoHandle() Handle
	Allocate(h Handle, b CompleterBuilder, future reflect.Type) Completer
	FinishSpawn(h Handle, fut Future) error
	OnClone(h Handle)
	OnDrop(h Handle)
}

// vtable is the function table shared by every Local derived from the
// same concrete Adapter type. Tables are interned per type and live for
// the rest of the process.
type vtable struct {
	allocate    func(h Handle, b CompleterBuilder, future reflect.Type) Completer
	finishSpawn func(h Handle, fut Future) error
	onClone     func(h Handle)
	onDrop      func(h Handle)
}

var vtables sync.Map // reflect.Type -> *vtable

func vtableFor[T Adapter]() *vtable {
	key := reflect.TypeFor[T]()
	if v, ok := vtables.Load(key); ok {
		return v.(*vtable)
	}
	var a T // zero value; the four table operations must not use it
	v, _ := vtables.LoadOrStore(key, &vtable{
		allocate:    a.Allocate,
		finishSpawn: a.FinishSpawn,
		onClone:     a.OnClone,
		onDrop:      a.OnDrop,
	})
	return v.(*vtable)
}

// A Local is a handle to some single-threaded executor, with the
// executor's type erased. It is created with [New], duplicated with
// [Local.Clone], and released with [Local.Close]; work is submitted with
// [Spawn] or [Local.Go].
//
// The zero Local is not valid.
type Local struct {
	handle Handle
	vtable *vtable
	closed atomic.Bool
}

// New wraps a concrete executor adapter in a [Local], consuming the
// adapter.
func New[T Adapter](adapter T) *Local {
	return &Local{handle: adapter.IntoHandle(), vtable: vtableFor[T]()}
}

// Clone returns an independent handle to the same underlying executor,
// retaining one more reference to it. Clone never allocates beyond the
// handle itself.
func (s *Local) Clone() *Local {
	s.vtable.onClone(s.handle)
	return &Local{handle: s.handle, vtable: s.vtable}
}

// Close releases this handle's reference to the underlying executor.
// Releasing the last reference releases the executor's shared state.
// Close is idempotent per handle; only the first call releases.
func (s *Local) Close() {
	if s.closed.CompareAndSwap(false, true) {
		s.vtable.onDrop(s.handle)
	}
}

// Spawn submits f to the executor behind s.
//
// Spawn is synchronous: it returns once f is registered with the
// underlying executor, not when f completes. The executor then owns f and
// drives it, or discards it on its own shutdown.
//
// Admission is split in two phases. The executor first allocates storage
// knowing only f's type descriptor; f is then written directly into that
// storage and registered through its [Future] view, which points at the
// written value. There is no intermediate boxing of f.
//
// The type parameter P exists to name the pointer type carrying F's
// Future implementation; callers never specify it explicitly.
func Spawn[F any, P interface {
	*F
	Future
}](s *Local, f F) error {
	b := CompleterBuilder{handle: s.handle, vtable: s.vtable}
	c := s.vtable.allocate(s.handle, b, reflect.TypeFor[F]())
	return complete[F, P](c, f)
}

// Go submits an ordinary function to the executor behind s, wrapping it
// in a [Func].
func (s *Local) Go(f Func) error {
	return Spawn(s, f)
}
