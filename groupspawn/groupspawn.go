// Package groupspawn adapts an [errgroup.Group] to the [spawn.Adapter]
// contract, treating the group as a joinable task set: futures spawned
// through the handle are accounted for by the group's Wait.
package groupspawn

import (
	"context"
	"fmt"
	"reflect"

	"github.com/b97tsk/spawn"
	"golang.org/x/sync/errgroup"
)

// A Spawner adapts an [errgroup.Group] for passing to [spawn.New].
//
// ctx reports the group's teardown; with a group from
// [errgroup.WithContext], pass the context returned alongside it. Spawns
// after ctx is canceled fail with [spawn.ErrShutdown].
type Spawner struct {
	group *errgroup.Group
	ctx   context.Context
}

// NewSpawner returns an adapter for group. A nil ctx means the group
// never tears down.
func NewSpawner(group *errgroup.Group, ctx context.Context) Spawner {
	if ctx == nil {
		ctx = context.Background()
	}
	return Spawner{group: group, ctx: ctx}
}

type taskSet struct {
	group *errgroup.Group
	ctx   context.Context
}

func (s Spawner) IntoHandle() spawn.Handle {
	return spawn.NewShared(&taskSet{group: s.group, ctx: s.ctx}, nil).Handle()
}

func (Spawner) Allocate(h spawn.Handle, b spawn.CompleterBuilder, future reflect.Type) spawn.Completer {
	p := reflect.New(future).UnsafePointer()
	return b.Build(p, p, future)
}

func (Spawner) FinishSpawn(h spawn.Handle, fut spawn.Future) error {
	ts := spawn.OpenShared[*taskSet](h).Get()
	if err := ts.ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", spawn.ErrShutdown, err)
	}
	ts.group.Go(func() error {
		fut.Await(ts.ctx)
		return nil
	})
	return nil
}

func (Spawner) OnClone(h spawn.Handle) {
	spawn.OpenShared[*taskSet](h).Retain()
}

func (Spawner) OnDrop(h spawn.Handle) {
	spawn.OpenShared[*taskSet](h).Release()
}
