// SPDX-License-Identifier: MPL-2.0

package modload

import (
	"fmt"
	"sync"

	"irdload/pkg/dialect"
)

// DialectFactory constructs a built-in dialect on first load.
type DialectFactory func() *dialect.Dialect

// BuiltinResolver resolves module names to dialects registered in-process
// rather than on disk. Placed before the file resolver in a chain, a
// built-in name shadows an identically named description file. Built-in
// modules have no file origin and produce no stub.
type BuiltinResolver struct {
	mu        sync.RWMutex
	factories map[string]DialectFactory
}

// NewBuiltinResolver creates an empty built-in dialect resolver.
func NewBuiltinResolver() *BuiltinResolver {
	return &BuiltinResolver{factories: make(map[string]DialectFactory)}
}

// Add registers a factory under a fully-qualified module name. Registering
// a name twice is an error.
func (r *BuiltinResolver) Add(name string, factory DialectFactory) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if factory == nil {
		return fmt.Errorf("register builtin %q: nil factory", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.factories[name]; dup {
		return fmt.Errorf("register builtin %q: already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// Resolve implements Resolver. Built-in names are matched exactly; the
// search path is ignored.
func (r *BuiltinResolver) Resolve(name string, _ []string) (*Descriptor, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return &Descriptor{Name: name, Loader: &builtinLoader{factory: factory}}, nil
}

// builtinLoader materializes a module from a dialect factory.
type builtinLoader struct {
	factory DialectFactory
}

// Load implements ModuleLoader.
func (l *builtinLoader) Load(desc *Descriptor) (*Module, error) {
	d := l.factory()
	if d == nil {
		return nil, &LoadError{Stage: StageBuild, Name: desc.Name, Err: fmt.Errorf("builtin factory returned nil dialect")}
	}
	if err := d.Validate(); err != nil {
		return nil, &LoadError{Stage: StageBuild, Name: desc.Name, Err: err}
	}

	m, err := bindModule(desc, d)
	if err != nil {
		return nil, &LoadError{Stage: StageBind, Name: desc.Name, Err: err}
	}
	return m, nil
}
