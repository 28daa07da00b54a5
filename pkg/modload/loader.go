// SPDX-License-Identifier: MPL-2.0

package modload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"irdload/pkg/dialect"

	"github.com/charmbracelet/log"
)

// FileLoader materializes modules from dialect description files through a
// description Frontend. One FileLoader serves any number of loads.
type FileLoader struct {
	frontend Frontend
	logger   *log.Logger
}

// NewFileLoader creates a loader backed by the given frontend.
func NewFileLoader(frontend Frontend, opts ...Option) *FileLoader {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &FileLoader{frontend: frontend, logger: o.logger}
}

// Load implements ModuleLoader. The pipeline runs read, compile, locate,
// build, stub, bind; the first failing stage aborts the load and is
// reported as a LoadError. The stub is rewritten on every successful build,
// before any binding exists; a failed locate or build leaves the
// filesystem untouched.
func (l *FileLoader) Load(desc *Descriptor) (*Module, error) {
	l.logger.Debug("materializing dialect module", "module", desc.Name, "path", desc.Path)

	d, err := l.build(desc.Name, desc.Path)
	if err != nil {
		return nil, err
	}

	stubPath, err := l.writeStub(desc.Name, desc.Path, d)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("wrote interface stub", "module", desc.Name, "stub", stubPath)

	m, err := bindModule(desc, d)
	if err != nil {
		return nil, &LoadError{Stage: StageBind, Name: desc.Name, Path: desc.Path, Err: err}
	}
	l.logger.Debug("dialect module loaded", "module", desc.Name, "bindings", len(m.names))
	return m, nil
}

// Check runs the load pipeline for a single description file up to the
// build stage: read, compile, locate the declaration, and build the
// dialect. No stub is written and no bindings are derived.
func (l *FileLoader) Check(path string) (*dialect.Dialect, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("check %s: absolute path: %w", path, err)
	}
	return l.build(baseName(abs), abs)
}

// WriteStub checks a single description file and regenerates its interface
// stub, returning the stub path.
func (l *FileLoader) WriteStub(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("stub %s: absolute path: %w", path, err)
	}
	d, err := l.build(baseName(abs), abs)
	if err != nil {
		return "", err
	}
	return l.writeStub(baseName(abs), abs, d)
}

func (l *FileLoader) build(name, path string) (*dialect.Dialect, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Stage: StageRead, Name: name, Path: path, Err: err}
	}

	unit, err := l.frontend.Compile(src, path)
	if err != nil {
		return nil, &LoadError{Stage: StageCompile, Name: name, Path: path, Err: err}
	}

	base := baseName(path)
	decl, ok := unit.Lookup(base)
	if !ok {
		return nil, &LoadError{Stage: StageLocate, Name: name, Path: path,
			Err: fmt.Errorf("no top-level declaration %q: %w", base, ErrDeclMissing)}
	}
	if !decl.IsDialect() {
		return nil, &LoadError{Stage: StageLocate, Name: name, Path: path,
			Err: fmt.Errorf("top-level declaration %q: %w", base, ErrDeclMismatch)}
	}

	d, err := l.frontend.Build(decl)
	if err != nil {
		return nil, &LoadError{Stage: StageBuild, Name: name, Path: path, Err: err}
	}
	return d, nil
}

func (l *FileLoader) writeStub(name, path string, d *dialect.Dialect) (string, error) {
	stub := l.frontend.RenderStub(d, path)
	stubPath := StubPath(path)
	if err := os.WriteFile(stubPath, []byte(stub), 0o644); err != nil {
		return "", &LoadError{Stage: StageStub, Name: name, Path: path, Err: err}
	}
	return stubPath, nil
}

// baseName strips the directory and source extension from a description
// file path, yielding the declaration name the loader must find.
func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), SourceExt)
}
