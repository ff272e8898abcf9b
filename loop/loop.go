// Package loop implements a general-purpose single-threaded executor and
// its spawn adapter.
//
// A [Loop] runs tasks one at a time, in FIFO order, on whichever
// goroutine calls [Loop.Run] or [Loop.RunUntilIdle]. If one task blocks,
// no other tasks can run. The best practice is not to block.
package loop

import (
	"context"
	"errors"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
)

// ErrClosed is returned by [Loop.Spawn] after [Loop.Close].
var ErrClosed = errors.New("loop: closed")

// A Task is a unit of work for a [Loop] to run. ctx is the context passed
// to [Loop.Run], or context.Background() under [Loop.RunUntilIdle].
type Task func(ctx context.Context)

// A Loop is a Task spawner and a Task runner.
//
// Spawned tasks are added to an internal FIFO queue. The Run and
// RunUntilIdle methods pop and run them in a single-threaded manner.
//
// Spawning is designed not to block, and there is no back pressure. If
// spawning outruns execution, a Loop can consume a lot of memory over
// time.
type Loop struct {
	mu     sync.Mutex
	q      queue[Task]
	closed bool
	wake   chan struct{}
	logger *zap.Logger
}

// An Option configures a [Loop].
type Option func(*Loop)

// WithLogger sets the logger used to report recovered task panics.
// The default is [zap.NewNop].
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// New creates a Loop.
func New(opts ...Option) *Loop {
	l := &Loop{
		wake:   make(chan struct{}, 1),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Spawn adds t to the queue. It never blocks and is safe for concurrent
// use. Spawn returns [ErrClosed] if the loop has been closed.
func (l *Loop) Spawn(t Task) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	l.q.Push(t)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return nil
}

// Close stops admission. Tasks already queued still run; Run returns once
// they have. Close is safe to call more than once.
func (l *Loop) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run pops and runs tasks as they arrive, sleeping while the queue is
// empty, until ctx is canceled or the loop is closed and drained.
//
// Run must not be called twice at the same time.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.drain(ctx)

		l.mu.Lock()
		done := l.closed && l.q.Empty()
		l.mu.Unlock()

		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// RunUntilIdle pops and runs every queued task until the queue is
// emptied, then returns.
//
// RunUntilIdle must not be called twice at the same time, nor while Run
// is running.
func (l *Loop) RunUntilIdle() {
	l.drain(context.Background())
}

func (l *Loop) drain(ctx context.Context) {
	l.mu.Lock()
	for !l.q.Empty() {
		t := l.q.Pop()
		l.mu.Unlock()
		l.runTask(ctx, t)
		l.mu.Lock()
	}
	l.mu.Unlock()
}

// runTask isolates panics: a panicking task is reported and the loop
// keeps running.
func (l *Loop) runTask(ctx context.Context, t Task) {
	defer func() {
		if v := recover(); v != nil {
			l.logger.Error("task panicked",
				zap.Any("value", v),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	t(ctx)
}
