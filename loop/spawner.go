package loop

import (
	"fmt"
	"reflect"

	"github.com/b97tsk/spawn"
)

// A Spawner adapts a [Loop] to the [spawn.Adapter] contract, so that a
// Loop can sit behind a [spawn.Local].
type Spawner struct {
	loop *Loop
}

// NewSpawner returns an adapter for l, for passing to [spawn.New].
func NewSpawner(l *Loop) Spawner {
	return Spawner{loop: l}
}

func (s Spawner) IntoHandle() spawn.Handle {
	return spawn.NewShared(s.loop, nil).Handle()
}

func (Spawner) Allocate(h spawn.Handle, b spawn.CompleterBuilder, future reflect.Type) spawn.Completer {
	p := reflect.New(future).UnsafePointer()
	return b.Build(p, p, future)
}

func (Spawner) FinishSpawn(h spawn.Handle, fut spawn.Future) error {
	l := spawn.OpenShared[*Loop](h).Get()
	if err := l.Spawn(fut.Await); err != nil {
		return fmt.Errorf("%w: %w", spawn.ErrShutdown, err)
	}
	return nil
}

func (Spawner) OnClone(h spawn.Handle) {
	spawn.OpenShared[*Loop](h).Retain()
}

func (Spawner) OnDrop(h spawn.Handle) {
	spawn.OpenShared[*Loop](h).Release()
}
