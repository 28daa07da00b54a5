// SPDX-License-Identifier: MPL-2.0

// Package dialect defines the in-memory model for IRDL dialects: a named
// dialect grouping attribute and operation definitions in declaration order.
package dialect

import (
	"errors"
	"fmt"
)

type (
	// Kind identifies the kind of entity a dialect defines.
	Kind string

	// Entity is implemented by every definition a dialect exposes by name.
	Entity interface {
		// EntityName returns the name the entity is bound under.
		EntityName() string
		// EntityKind reports whether the entity is an attribute or an operation.
		EntityKind() Kind
	}

	// Slot is a single named, typed position of an entity: an operand or
	// result of an operation, or a parameter of an attribute.
	Slot struct {
		Name string
		Type string
		Doc  string
	}

	// Attribute is an attribute definition within a dialect.
	Attribute struct {
		Name       string
		Doc        string
		Parameters []Slot
	}

	// Operation is an operation definition within a dialect.
	Operation struct {
		Name     string
		Doc      string
		Operands []Slot
		Results  []Slot
	}

	// Dialect is a fully built dialect. Attributes and Operations keep the
	// order they were declared in; that order is observable in generated
	// stubs and module bindings.
	Dialect struct {
		Name       string
		Doc        string
		Attributes []*Attribute
		Operations []*Operation
	}
)

const (
	// KindAttribute marks attribute definitions.
	KindAttribute Kind = "attribute"
	// KindOperation marks operation definitions.
	KindOperation Kind = "operation"
)

// ErrInvalidDialect is the sentinel error wrapped by all Validate failures.
var ErrInvalidDialect = errors.New("invalid dialect")

// EntityName returns the attribute's name.
func (a *Attribute) EntityName() string { return a.Name }

// EntityKind returns KindAttribute.
func (a *Attribute) EntityKind() Kind { return KindAttribute }

// EntityName returns the operation's name.
func (o *Operation) EntityName() string { return o.Name }

// EntityKind returns KindOperation.
func (o *Operation) EntityKind() Kind { return KindOperation }

// Entities returns all entity definitions in declaration order, attributes
// before operations.
func (d *Dialect) Entities() []Entity {
	out := make([]Entity, 0, len(d.Attributes)+len(d.Operations))
	for _, a := range d.Attributes {
		out = append(out, a)
	}
	for _, o := range d.Operations {
		out = append(out, o)
	}
	return out
}

// Validate checks the structural constraints the description schema cannot
// express: the dialect must be named, entity names must be unique across
// attributes and operations together, and slot names must be unique within
// each slot list.
func (d *Dialect) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: dialect name is empty", ErrInvalidDialect)
	}

	seen := make(map[string]Kind, len(d.Attributes)+len(d.Operations))
	for _, e := range d.Entities() {
		name := e.EntityName()
		if name == "" {
			return fmt.Errorf("%w: %s with empty name", ErrInvalidDialect, e.EntityKind())
		}
		if prior, dup := seen[name]; dup {
			return fmt.Errorf("%w: %s %q collides with %s of the same name", ErrInvalidDialect, e.EntityKind(), name, prior)
		}
		seen[name] = e.EntityKind()
	}

	for _, a := range d.Attributes {
		if err := validateSlots(fmt.Sprintf("attribute %q parameter", a.Name), a.Parameters); err != nil {
			return err
		}
	}
	for _, o := range d.Operations {
		if err := validateSlots(fmt.Sprintf("operation %q operand", o.Name), o.Operands); err != nil {
			return err
		}
		if err := validateSlots(fmt.Sprintf("operation %q result", o.Name), o.Results); err != nil {
			return err
		}
	}

	return nil
}

func validateSlots(context string, slots []Slot) error {
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		if s.Name == "" {
			return fmt.Errorf("%w: %s with empty name", ErrInvalidDialect, context)
		}
		if s.Type == "" {
			return fmt.Errorf("%w: %s %q has no type", ErrInvalidDialect, context, s.Name)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("%w: duplicate %s %q", ErrInvalidDialect, context, s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}
