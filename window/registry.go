// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"sort"
	"sync"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/device"
)

// Factory opens a window and the device driver that presents into it.
type Factory func(opts Options) (Window, device.Driver, error)

// Backend is a registered window backend.
type Backend struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	//   - 100: native windows
	//   - 10: offscreen backends
	Priority int

	// Factory opens windows.
	Factory Factory

	// Available reports if the backend can run on this system.
	Available func() bool
}

var globalRegistry = &Registry{}

// Registry manages registered window backends.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]*Backend
}

// NewRegistry creates an empty registry.
// Most code should use the global registry via Register and Open.
func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]*Backend),
	}
}

// Register adds a backend to the global registry.
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority.
func List() []string {
	return globalRegistry.List()
}

// Available returns the names of available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Open opens a window on the best available backend.
func Open(opts Options) (Window, device.Driver, error) {
	return globalRegistry.Open(opts)
}

// OpenByName opens a window on a named backend. The name "auto" or ""
// selects by priority.
func OpenByName(name string, opts Options) (Window, device.Driver, error) {
	return globalRegistry.OpenByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.backends == nil {
		r.backends = make(map[string]*Backend)
	}
	if available == nil {
		available = func() bool { return true }
	}
	r.backends[name] = &Backend{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.backends, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns the names of available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns a copy of a registered backend.
func (r *Registry) Get(name string) (*Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.backends[name]
	if !ok {
		return nil, false
	}
	cp := *b
	return &cp, true
}

// Open opens a window on the best available backend, falling back to the
// next one when a factory fails.
func (r *Registry) Open(opts Options) (Window, device.Driver, error) {
	r.mu.RLock()
	names := r.sortedNames(true)
	r.mu.RUnlock()

	if len(names) == 0 {
		return nil, nil, ErrNoBackendAvailable
	}

	var lastErr error
	for _, name := range names {
		w, drv, err := r.OpenByName(name, opts)
		if err == nil {
			return w, drv, nil
		}
		overlay.Logger().Warn("window backend failed", "backend", name, "err", err)
		lastErr = err
	}
	return nil, nil, lastErr
}

// OpenByName opens a window on a named backend. The name "auto" or ""
// selects by priority.
func (r *Registry) OpenByName(name string, opts Options) (Window, device.Driver, error) {
	if name == "" || name == Auto {
		return r.Open(opts)
	}

	r.mu.RLock()
	b, ok := r.backends[name]
	r.mu.RUnlock()

	if !ok {
		return nil, nil, &BackendNotFoundError{Name: name}
	}
	if !b.Available() {
		return nil, nil, &BackendUnavailableError{Name: name}
	}
	return b.Factory(opts.Normalize())
}

// sortedNames returns backend names sorted by priority (highest first),
// ties broken by name. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.backends) == 0 {
		return nil
	}

	list := make([]*Backend, 0, len(r.backends))
	for _, b := range r.backends {
		if onlyAvailable && !b.Available() {
			continue
		}
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Priority != list[j].Priority {
			return list[i].Priority > list[j].Priority
		}
		return list[i].Name < list[j].Name
	})

	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.Name
	}
	return names
}

// Auto selects the highest-priority available backend.
const Auto = "auto"

// ErrNoBackendAvailable is returned when no window backend is registered
// or available on the current system.
var ErrNoBackendAvailable = errors.New("window: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "window: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but cannot run here.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "window: backend unavailable: " + e.Name
}
