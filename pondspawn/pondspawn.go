// Package pondspawn adapts a pond worker pool to the [spawn.Adapter]
// contract.
//
// The pool is not single-threaded unless constructed with a max
// concurrency of 1; callers who need the non-shareable discipline should
// size the pool accordingly.
package pondspawn

import (
	"fmt"
	"reflect"

	"github.com/alitto/pond/v2"
	"github.com/b97tsk/spawn"
)

// A Spawner adapts a [pond.Pool] for passing to [spawn.New].
type Spawner struct {
	pool pond.Pool
}

// NewSpawner returns an adapter for pool.
func NewSpawner(pool pond.Pool) Spawner {
	return Spawner{pool: pool}
}

func (s Spawner) IntoHandle() spawn.Handle {
	return spawn.NewShared(s.pool, nil).Handle()
}

func (Spawner) Allocate(h spawn.Handle, b spawn.CompleterBuilder, future reflect.Type) spawn.Completer {
	p := reflect.New(future).UnsafePointer()
	return b.Build(p, p, future)
}

func (Spawner) FinishSpawn(h spawn.Handle, fut spawn.Future) error {
	pool := spawn.OpenShared[pond.Pool](h).Get()
	// The pool context is canceled once the pool stops accepting tasks.
	if err := pool.Context().Err(); err != nil {
		return fmt.Errorf("%w: %w", spawn.ErrShutdown, err)
	}
	pool.Submit(func() {
		fut.Await(pool.Context())
	})
	return nil
}

func (Spawner) OnClone(h spawn.Handle) {
	spawn.OpenShared[pond.Pool](h).Retain()
}

func (Spawner) OnDrop(h spawn.Handle) {
	spawn.OpenShared[pond.Pool](h).Release()
}
