package spawn

import (
	"fmt"
	"reflect"
	"unsafe"
)

// A CompleterBuilder represents the allocation phase of one spawn. It is
// handed to an adapter's Allocate, which binds freshly allocated storage
// to the pending spawn by calling [CompleterBuilder.Build].
type CompleterBuilder struct {
	handle Handle
	vtable *vtable
}

// Build binds storage to the pending spawn.
//
// task points at the adapter's task representation and future at the
// storage the future value will be written into; the two may coincide,
// and when they are distinct the future's storage must still be
// addressable at task, because task is the pointer the [Future] view is
// recovered from. futureType must be the type the storage was allocated
// for, typically via [reflect.New].
func (b CompleterBuilder) Build(task, future unsafe.Pointer, futureType reflect.Type) Completer {
	return Completer{
		handle:     b.handle,
		vtable:     b.vtable,
		task:       task,
		future:     future,
		futureType: futureType,
	}
}

// A Completer represents the write-and-register phase of one spawn. It is
// produced by an adapter's Allocate and consumed before the spawn call
// returns; it is never persisted.
type Completer struct {
	handle     Handle
	vtable     *vtable
	task       unsafe.Pointer
	future     unsafe.Pointer
	futureType reflect.Type
}

// complete writes f into the storage bound to c, recovers the dynamic
// Future view over that storage, and registers it with the executor.
//
// The write is a single typed store into memory allocated for exactly F,
// so the value never exists anywhere but its final location. The view is
// the typed pointer P over the task storage, erased to the Future
// interface; from here on nothing reads the memory as its concrete type
// again.
func complete[F any, P interface {
	*F
	Future
}](c Completer, f F) error {
	if want, got := c.futureType, reflect.TypeFor[F](); want != got {
		panic(fmt.Sprintf("spawn: storage allocated for %v, asked to hold %v", want, got))
	}
	*(*F)(c.future) = f
	return c.vtable.finishSpawn(c.handle, P(c.task))
}
