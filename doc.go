// Package spawn provides a type-erased handle for submitting units of
// asynchronous work to a single-threaded executor, without the submitting
// code knowing which concrete executor it targets.
//
// Go has already done a great job in making concurrent work cheap to start,
// so this library is not another way to run things; it is a way to hand
// things over. A piece of library code that wants to schedule work onto
// "whatever event loop the application uses" can accept a [Local] and stay
// ignorant of whether that loop is a [github.com/b97tsk/spawn/loop.Loop],
// a worker pool, a Bubble Tea program, or a bare goroutine.
//
// # The Polymorphic Handle
//
// A [Local] pairs an opaque [Handle] with a function table computed once
// per concrete [Adapter] type. Constructing it from an adapter fixes the
// pairing forever; [Local.Clone] and [Local.Close] retain and release the
// executor behind the handle. A Local is a fixed-size value regardless of
// the executor it wraps, so it can be stored, passed, and embedded without
// propagating the executor's type through client code.
//
// # Two-Phase Spawning
//
// Naive type erasure boxes the caller's value into an interface, then lets
// the executor wrap that box in its own task structure: two allocations and
// a copy. [Spawn] splits admission instead. Phase one allocates storage for
// the future knowing only its type descriptor; phase two, still holding the
// concrete type, writes the value straight into that storage and recovers
// the [Future] interface view over it — one allocation, one write, and the
// interface points at the value's final resting place.
//
// The storage handed out in phase one and the type written in phase two
// must agree. [Spawn] asserts this at the write and panics on a mismatch;
// a mismatch is a bug in an adapter, never a runtime condition.
//
// # Single-Threaded Discipline
//
// Everything here targets one event loop per executor instance. No core
// operation blocks or suspends; a spawn returns as soon as the underlying
// executor has the future queued, and the future runs whenever that
// executor decides. Handles sharing an executor share only a reference
// count; if clones are spawned through from multiple goroutines at once,
// coordinating that is the caller's job, same as it would be against the
// native executor.
//
// # Errors
//
// Registration can fail in exactly two ways: [ErrShutdown] when the target
// executor has already torn down, and [ErrSpawn] for anything else. Both
// are sentinels for [errors.Is]; adapters wrap native causes around them.
// Allocation failure is not an error — it is treated like running out of
// memory, because that is what it is.
//
// # Writing an Adapter
//
// An executor integration implements the five operations of [Adapter].
// IntoHandle consumes the native spawner, wrapping it in a [Shared] cell
// when it is not independently ownable. The other four operations are
// installed into the per-type function table from the adapter's zero
// value, so they must take all their state from the [Handle] argument and
// none from the receiver. See the loop, pondspawn, groupspawn, teaspawn
// and gospawn packages for complete integrations.
package spawn
