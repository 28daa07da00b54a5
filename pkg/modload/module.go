// SPDX-License-Identifier: MPL-2.0

package modload

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"irdload/pkg/dialect"
)

// Module is a loaded dialect module: a namespace exposing the dialect's
// entities by name plus a handle to the dialect itself. Modules are
// immutable once returned by a loader.
type Module struct {
	name     string
	desc     *Descriptor
	dialect  *dialect.Dialect
	names    []string
	bindings map[string]any
}

// Name returns the fully-qualified module name.
func (m *Module) Name() string { return m.name }

// Path returns the description file the module was loaded from, or an
// empty string for modules without a file origin.
func (m *Module) Path() string { return m.desc.Path }

// Descriptor returns the descriptor the module was loaded from.
func (m *Module) Descriptor() *Descriptor { return m.desc }

// Dialect returns the dialect the module wraps.
func (m *Module) Dialect() *dialect.Dialect { return m.dialect }

// Lookup returns the value bound under name: a *dialect.Attribute or
// *dialect.Operation for entity bindings, or the *dialect.Dialect for the
// capitalized handle binding.
func (m *Module) Lookup(name string) (any, bool) {
	v, ok := m.bindings[name]
	return v, ok
}

// Names returns all binding names in binding order: attributes, then
// operations, then the dialect handle.
func (m *Module) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// HandleName derives the dialect handle binding name: the first rune
// upper-cased, the remainder unchanged.
func HandleName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError && size <= 1 {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// bindModule derives the binding set for a built dialect: one binding per
// entity in declaration order, then the dialect handle under the
// capitalized dialect name.
func bindModule(desc *Descriptor, d *dialect.Dialect) (*Module, error) {
	m := &Module{
		name:     desc.Name,
		desc:     desc,
		dialect:  d,
		bindings: make(map[string]any, len(d.Attributes)+len(d.Operations)+1),
	}

	for _, e := range d.Entities() {
		if err := m.bind(e.EntityName(), e); err != nil {
			return nil, err
		}
	}
	if err := m.bind(HandleName(d.Name), d); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Module) bind(name string, value any) error {
	if name == "" {
		return fmt.Errorf("binding with empty name")
	}
	if _, dup := m.bindings[name]; dup {
		return fmt.Errorf("duplicate binding %q", name)
	}
	m.bindings[name] = value
	m.names = append(m.names, name)
	return nil
}
