// SPDX-License-Identifier: MPL-2.0

package modload

import (
	"fmt"
	"strings"

	"irdload/pkg/dialect"
)

const (
	// SourceExt is the filename extension of dialect description files.
	SourceExt = ".irdl"
	// StubExt is the filename extension of generated interface stubs.
	StubExt = ".irdli"
)

type (
	// Unit is a compiled description file. It is owned by the load that
	// produced it and is not shared across loads.
	Unit interface {
		// Lookup returns the top-level declaration with the given name.
		Lookup(name string) (Decl, bool)
	}

	// Decl is a top-level declaration within a Unit.
	Decl interface {
		// Name returns the declaration's name.
		Name() string
		// IsDialect reports whether the declaration is a dialect declaration.
		IsDialect() bool
	}

	// Frontend compiles dialect description source, builds dialects from
	// located declarations, and renders interface stubs.
	Frontend interface {
		// Compile parses and evaluates description source. origin is the
		// file path used in positions and error messages.
		Compile(src []byte, origin string) (Unit, error)

		// Build constructs a validated dialect from a declaration obtained
		// via Unit.Lookup on a Unit this Frontend compiled.
		Build(decl Decl) (*dialect.Dialect, error)

		// RenderStub renders the deterministic interface stub for a built
		// dialect. origin is the source path recorded in the stub header.
		RenderStub(d *dialect.Dialect, origin string) string
	}
)

// ValidateName checks that a module name is non-empty and every
// dot-separated segment is non-empty. Failures wrap ErrInvalidName.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	for _, segment := range strings.Split(name, ".") {
		if segment == "" {
			return fmt.Errorf("%w: %q has an empty segment", ErrInvalidName, name)
		}
	}
	return nil
}

// FileName derives the description filename for a module name: the last
// dot-separated segment plus the source extension. Leading segments take no
// part in resolution.
func FileName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name + SourceExt
}

// StubPath derives the stub path for a description file path: same
// directory, same base name, stub extension.
func StubPath(sourcePath string) string {
	return strings.TrimSuffix(sourcePath, SourceExt) + StubExt
}
