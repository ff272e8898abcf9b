package spawn

import "context"

// A Future is a unit of asynchronous work admitted through a [Local].
//
// Once registered, a Future belongs to the underlying executor, which
// calls Await exactly once to drive it to completion, on whatever
// goroutine and at whatever time that executor chooses. The executor only
// ever sees the Future through this interface; it never learns the
// concrete type.
//
// ctx is the executor's context, if it has one, and reports the
// executor's own teardown. Futures spawned onto a single-threaded loop
// should not block in Await; if one does, nothing else on that loop runs.
type Future interface {
	Await(ctx context.Context)
}

// Func adapts an ordinary function to a [Future].
//
// Its method is on the pointer receiver so that the storage written during
// a spawn is also the value the executor dispatches through.
type Func func(ctx context.Context)

func (f *Func) Await(ctx context.Context) { (*f)(ctx) }
