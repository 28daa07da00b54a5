// SPDX-License-Identifier: MPL-2.0

package modload

import (
	"sort"
	"sync"
)

// Registry is the resolution cache: loaded modules keyed by fully-qualified
// name. Registration is first-wins, so a name is never rebound once a
// module holds it. The zero Registry is not usable; create one with
// NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]*Module
}

// NewRegistry creates an empty module registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*Module)}
}

// Lookup returns the module registered under name.
func (r *Registry) Lookup(name string) (*Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[name]
	return m, ok
}

// Register installs a module under its name and returns the registered
// module. If the name is already taken the existing module wins and is
// returned instead.
func (r *Registry) Register(m *Module) *Module {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.modules[m.Name()]; ok {
		return existing
	}
	r.modules[m.Name()] = m
	return m
}

// Names returns the registered module names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modules)
}
