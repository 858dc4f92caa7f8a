package backend

import (
	"errors"
	"sync"

	"github.com/gogpu/sketch"
)

// Registered backend names.
const (
	// BackendFyne is the interactive windowed backend.
	BackendFyne = "fyne"
	// BackendSoftware is the headless raster backend.
	BackendSoftware = "software"
	// BackendPDF is the vector capture backend.
	BackendPDF = "pdf"
)

// ErrBackendNotAvailable is returned when no requested backend is registered.
var ErrBackendNotAvailable = errors.New("backend: not available")

// Factory creates a new backend instance.
type Factory func() sketch.Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for default selection (first available wins).
	// Interactive beats headless; pdf is capture-only and never a default.
	backendPriority = []string{BackendFyne, BackendSoftware}
)

// Register registers a backend factory under name, replacing any previous
// registration. Typically called from init functions in backend packages.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry. Useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// IsRegistered reports whether a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a new instance of the named backend, or nil if it is not
// registered.
func Get(name string) sketch.Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := backends[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available backend by priority, or nil if none is
// registered.
func Default() sketch.Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			if b := factory(); b != nil {
				return b
			}
		}
	}

	// Fallback: any registered backend.
	for _, factory := range backends {
		if b := factory(); b != nil {
			return b
		}
	}

	return nil
}

// MustDefault returns the default backend or panics.
func MustDefault() sketch.Backend {
	b := Default()
	if b == nil {
		panic("backend: no backend available")
	}
	return b
}
