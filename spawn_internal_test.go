package spawn

import (
	"reflect"
	"testing"
)

type nopAdapter struct{}

func (nopAdapter) IntoHandle() Handle { return Handle(nil) }

func (nopAdapter) Allocate(h Handle, b CompleterBuilder, future reflect.Type) Completer {
	p := reflect.New(future).UnsafePointer()
	return b.Build(p, p, future)
}

func (nopAdapter) FinishSpawn(h Handle, fut Future) error { return nil }

func (nopAdapter) OnClone(h Handle) {}

func (nopAdapter) OnDrop(h Handle) {}

func TestVtableIdentity(t *testing.T) {
	a := New(nopAdapter{})
	b := New(nopAdapter{})

	if a.vtable != b.vtable {
		t.Fatal("handles over the same adapter type have distinct function tables")
	}
	if a.vtable != vtableFor[nopAdapter]() {
		t.Fatal("function table reconstructed on lookup")
	}
}

func TestHandleTablePairingFixed(t *testing.T) {
	s := New(nopAdapter{})
	c := s.Clone()

	if c.handle != s.handle || c.vtable != s.vtable {
		t.Fatal("clone does not share the (handle, table) pairing")
	}
}
