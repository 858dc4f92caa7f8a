package backend

import (
	"testing"

	"github.com/gogpu/sketch"
)

// nopBackend is a registry test double.
type nopBackend struct {
	name string
}

func (b *nopBackend) Init(sketch.Config) error          { return nil }
func (b *nopBackend) Close()                            {}
func (b *nopBackend) Tessellator() sketch.Tessellator   { return nil }
func (b *nopBackend) Events() ([]sketch.Event, error)   { return nil, sketch.ErrStreamClosed }
func (b *nopBackend) Submit([]sketch.Entry) error       { return nil }
func (b *nopBackend) SaveFrame(dir string, f int) error { return nil }

func factory(name string) Factory {
	return func() sketch.Backend { return &nopBackend{name: name} }
}

// TestRegisterAndGet tests registration round trips.
func TestRegisterAndGet(t *testing.T) {
	Register("test-backend", factory("test-backend"))
	defer Unregister("test-backend")

	if !IsRegistered("test-backend") {
		t.Error("IsRegistered() = false after Register")
	}
	b := Get("test-backend")
	if b == nil {
		t.Fatal("Get() = nil for registered backend")
	}
	if nb := b.(*nopBackend); nb.name != "test-backend" {
		t.Errorf("factory produced backend %q, want test-backend", nb.name)
	}

	found := false
	for _, name := range Available() {
		if name == "test-backend" {
			found = true
		}
	}
	if !found {
		t.Errorf("Available() = %v, missing test-backend", Available())
	}
}

// TestGetUnknown tests lookup of unregistered names.
func TestGetUnknown(t *testing.T) {
	if b := Get("no-such-backend"); b != nil {
		t.Errorf("Get(unknown) = %v, want nil", b)
	}
	if IsRegistered("no-such-backend") {
		t.Error("IsRegistered(unknown) = true")
	}
}

// TestDefaultPriority tests that the interactive backend wins over the
// headless one when both are registered.
func TestDefaultPriority(t *testing.T) {
	Register(BackendSoftware, factory(BackendSoftware))
	Register(BackendFyne, factory(BackendFyne))
	defer Unregister(BackendSoftware)
	defer Unregister(BackendFyne)

	b := Default()
	if b == nil {
		t.Fatal("Default() = nil with two backends registered")
	}
	if nb := b.(*nopBackend); nb.name != BackendFyne {
		t.Errorf("Default() picked %q, want %q", nb.name, BackendFyne)
	}
}

// TestUnregister tests removal.
func TestUnregister(t *testing.T) {
	Register("volatile", factory("volatile"))
	Unregister("volatile")
	if IsRegistered("volatile") {
		t.Error("backend still registered after Unregister")
	}
}
