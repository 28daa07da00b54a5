// SPDX-License-Identifier: MPL-2.0

package modload

import (
	"fmt"
	"os"
	"path/filepath"
)

type (
	// Resolver is a single resolution strategy. Resolve answers a module
	// name with a descriptor, or (nil, nil) when the strategy has no match;
	// a non-nil error means the strategy itself failed and ends the search.
	//
	// searchPath is the ordered list of directories to probe. Strategies
	// that do not search the filesystem ignore it.
	Resolver interface {
		Resolve(name string, searchPath []string) (*Descriptor, error)
	}

	// Chain consults an ordered list of resolver strategies and returns the
	// first match. Order is precedence: earlier resolvers shadow later
	// ones, and the dialect-file resolver is conventionally placed last.
	Chain struct {
		resolvers []Resolver
	}

	// FileResolver maps a module name to a dialect description file. It
	// derives "<last name segment>.irdl" and probes each search directory
	// in order, claiming the first regular file found. File contents are
	// never read during resolution.
	//
	// When constructed with a registry, an already-loaded module short
	// circuits resolution and yields its original descriptor again.
	FileResolver struct {
		registry *Registry
		loader   ModuleLoader
	}
)

// NewChain creates a resolver chain that consults the given strategies in
// order.
func NewChain(resolvers ...Resolver) *Chain {
	return &Chain{resolvers: resolvers}
}

// Resolve walks the chain and returns the first descriptor produced. When
// every strategy reports no match, a NotFoundError is returned.
func (c *Chain) Resolve(name string, searchPath []string) (*Descriptor, error) {
	for _, r := range c.resolvers {
		desc, err := r.Resolve(name, searchPath)
		if err != nil {
			return nil, err
		}
		if desc != nil {
			return desc, nil
		}
	}
	return nil, &NotFoundError{Name: name}
}

// NewFileResolver creates a dialect-file resolver. registry may be nil to
// disable the already-loaded short circuit; loader is the materializer
// attached to produced descriptors.
func NewFileResolver(registry *Registry, loader ModuleLoader) *FileResolver {
	return &FileResolver{registry: registry, loader: loader}
}

// Resolve implements Resolver.
//
// An empty searchPath means the current working directory. Stat failures on
// a candidate are treated as no-match for that directory and the search
// continues.
func (r *FileResolver) Resolve(name string, searchPath []string) (*Descriptor, error) {
	if r.registry != nil {
		if m, ok := r.registry.Lookup(name); ok {
			return m.Descriptor(), nil
		}
	}

	filename := FileName(name)

	dirs := searchPath
	if len(dirs) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve %q: determine working directory: %w", name, err)
		}
		dirs = []string{cwd}
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, filename)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: absolute path for %s: %w", name, candidate, err)
		}
		return &Descriptor{Name: name, Path: abs, Loader: r.loader}, nil
	}

	return nil, nil
}
