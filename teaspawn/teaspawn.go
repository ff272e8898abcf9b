// Package teaspawn adapts a Bubble Tea program to the [spawn.Adapter]
// contract.
//
// A Bubble Tea program runs its own single-threaded update loop, so this
// adapter cannot execute anything itself; registration delivers the
// future to the program as a [FutureMsg], and the program's model decides
// how to run it. A cooperating model typically executes the future
// inline in Update, keeping the work on the update loop:
//
//	case teaspawn.FutureMsg:
//		msg.Future.Await(context.Background())
//		return m, nil
//
// Send on a finished program is a no-op, so registration cannot observe
// teardown; like other fire-and-forget spawners, FinishSpawn never
// returns [spawn.ErrShutdown].
package teaspawn

import (
	"reflect"

	"github.com/b97tsk/spawn"
	tea "github.com/charmbracelet/bubbletea"
)

// FutureMsg carries one spawned future into the program's update loop.
type FutureMsg struct {
	Future spawn.Future
}

// A Spawner adapts a [tea.Program] for passing to [spawn.New].
type Spawner struct {
	program *tea.Program
}

// NewSpawner returns an adapter for p. The program's model must handle
// [FutureMsg] for spawned futures to run.
func NewSpawner(p *tea.Program) Spawner {
	return Spawner{program: p}
}

func (s Spawner) IntoHandle() spawn.Handle {
	return spawn.NewShared(s.program, nil).Handle()
}

func (Spawner) Allocate(h spawn.Handle, b spawn.CompleterBuilder, future reflect.Type) spawn.Completer {
	p := reflect.New(future).UnsafePointer()
	return b.Build(p, p, future)
}

func (Spawner) FinishSpawn(h spawn.Handle, fut spawn.Future) error {
	p := spawn.OpenShared[*tea.Program](h).Get()
	p.Send(FutureMsg{Future: fut})
	return nil
}

func (Spawner) OnClone(h spawn.Handle) {
	spawn.OpenShared[*tea.Program](h).Retain()
}

func (Spawner) OnDrop(h spawn.Handle) {
	spawn.OpenShared[*tea.Program](h).Release()
}
