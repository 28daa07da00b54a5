// SPDX-License-Identifier: MPL-2.0

package modload

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the sentinel wrapped by NotFoundError when no resolver
	// strategy claims a module name.
	ErrNotFound = errors.New("module not found")

	// ErrInvalidName is returned for module names that are empty or contain
	// empty dot-separated segments.
	ErrInvalidName = errors.New("invalid module name")

	// ErrDeclMissing is the sentinel wrapped by a LoadError when a
	// description file has no top-level declaration matching its base name.
	ErrDeclMissing = errors.New("declaration missing")

	// ErrDeclMismatch is the sentinel wrapped by a LoadError when the
	// located top-level declaration is not a dialect declaration.
	ErrDeclMismatch = errors.New("declaration is not a dialect")
)

// Stage names the load pipeline step a LoadError occurred in.
type Stage string

const (
	// StageRead covers reading the description file from disk.
	StageRead Stage = "read"
	// StageCompile covers compiling the description source.
	StageCompile Stage = "compile"
	// StageLocate covers finding and kind-checking the top-level declaration.
	StageLocate Stage = "locate"
	// StageBuild covers building the dialect from the declaration.
	StageBuild Stage = "build"
	// StageStub covers rendering and writing the interface stub.
	StageStub Stage = "stub"
	// StageBind covers deriving the module's bindings.
	StageBind Stage = "bind"
)

// NotFoundError reports that no resolver strategy produced a descriptor for
// a module name. It wraps ErrNotFound for errors.Is.
type NotFoundError struct {
	// Name is the requested fully-qualified module name.
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no dialect description found for module %q", e.Name)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// LoadError reports a failure while materializing a resolved module. The
// resolution itself succeeded; Stage names the pipeline step that failed.
type LoadError struct {
	// Stage is the load pipeline step that failed.
	Stage Stage
	// Name is the fully-qualified module name being loaded.
	Name string
	// Path is the description file involved, if any.
	Path string
	// Err is the underlying cause, preserved verbatim.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load %s: %s: %v", e.Name, e.Stage, e.Err)
	}
	return fmt.Sprintf("load %s: %s %s: %v", e.Name, e.Stage, e.Path, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *LoadError) Unwrap() error { return e.Err }
