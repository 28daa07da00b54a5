// SPDX-License-Identifier: MPL-2.0

package modload

import (
	"github.com/charmbracelet/log"
)

// Importer is the entry point of the load pipeline: registry fast path,
// chain resolution, materialization, registration. Registration is the
// importer's job; loaders return modules without installing them anywhere.
type Importer struct {
	registry *Registry
	chain    *Chain
	logger   *log.Logger
}

// NewImporter creates an importer over the given registry and resolver
// chain.
func NewImporter(registry *Registry, chain *Chain, opts ...Option) *Importer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Importer{registry: registry, chain: chain, logger: o.logger}
}

// Registry returns the importer's module registry.
func (imp *Importer) Registry() *Registry { return imp.registry }

// Import returns the module registered under name, loading it first if
// necessary. Repeated imports of the same name return the identical module
// without re-resolving or re-materializing. A failed import registers
// nothing; the next Import of the same name starts over.
func (imp *Importer) Import(name string, searchPath []string) (*Module, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	if m, ok := imp.registry.Lookup(name); ok {
		imp.logger.Debug("module already loaded", "module", name)
		return m, nil
	}

	desc, err := imp.chain.Resolve(name, searchPath)
	if err != nil {
		return nil, err
	}
	imp.logger.Debug("module resolved", "module", name, "path", desc.Path)

	m, err := desc.Loader.Load(desc)
	if err != nil {
		return nil, err
	}

	return imp.registry.Register(m), nil
}
