package backend

import (
	"slices"
	"sync"

	"github.com/gogpu/cairo/ffi"
)

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Preferred backends, first available wins.
	backendPriority = []string{BackendSoftware}
)

// Register registers a library factory with the given name, replacing any
// factory registered under the same name.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the registered backend names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered reports whether a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a new library from the named backend, or nil if it is not
// registered.
func Get(name string) ffi.Library {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil
	}
	return factory()
}

// Default returns a library from the preferred available backend, falling
// back to any registered one in name order. It returns nil if nothing is
// registered.
func Default() ffi.Library {
	for _, name := range backendPriority {
		if lib := Get(name); lib != nil {
			return lib
		}
	}
	for _, name := range Available() {
		if lib := Get(name); lib != nil {
			return lib
		}
	}
	return nil
}

// MustDefault returns the default library or panics.
func MustDefault() ffi.Library {
	lib := Default()
	if lib == nil {
		panic("backend: no backend available")
	}
	return lib
}
