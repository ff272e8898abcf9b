// Package gospawn is the trivial [spawn.Adapter]: each future runs on its
// own goroutine.
//
// It exists for code paths that take a [spawn.Local] but where no real
// event loop is in play. The adapter is stateless; its handle is null and
// clone/drop do nothing, and spawns cannot fail.
package gospawn

import (
	"context"
	"reflect"

	"github.com/b97tsk/spawn"
)

// A Spawner spawns each future on a new goroutine.
type Spawner struct{}

// NewSpawner returns the goroutine adapter, for passing to [spawn.New].
func NewSpawner() Spawner {
	return Spawner{}
}

func (Spawner) IntoHandle() spawn.Handle {
	return spawn.Handle(nil)
}

func (Spawner) Allocate(h spawn.Handle, b spawn.CompleterBuilder, future reflect.Type) spawn.Completer {
	p := reflect.New(future).UnsafePointer()
	return b.Build(p, p, future)
}

func (Spawner) FinishSpawn(h spawn.Handle, fut spawn.Future) error {
	go fut.Await(context.Background())
	return nil
}

func (Spawner) OnClone(h spawn.Handle) {}

func (Spawner) OnDrop(h spawn.Handle) {}
