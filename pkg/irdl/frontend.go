// SPDX-License-Identifier: MPL-2.0

package irdl

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"irdload/pkg/cueutil"
	"irdload/pkg/dialect"
	"irdload/pkg/modload"
)

//go:embed irdl_schema.cue
var irdlSchema string

// Frontend compiles IRDL description files and builds dialects from their
// declarations. It holds no evaluator state: every Compile gets a fresh CUE
// context, so a single Frontend serves any number of loads.
type Frontend struct {
	maxFileSize int64
}

var _ modload.Frontend = (*Frontend)(nil)

// NewFrontend creates a description frontend with the default source size
// limit.
func NewFrontend() *Frontend {
	return &Frontend{maxFileSize: cueutil.DefaultMaxFileSize}
}

// Compile evaluates description source into a Unit. origin is the file path
// recorded in positions and error messages. Compile checks CUE syntax and
// evaluation only; declarations are validated against the dialect schema
// when they are built.
func (f *Frontend) Compile(src []byte, origin string) (modload.Unit, error) {
	if err := cueutil.CheckFileSize(src, f.maxFileSize, origin); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schema := ctx.CompileString(irdlSchema, cue.Filename("irdl_schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("internal error: compile dialect schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Dialect"))
	if !def.Exists() {
		return nil, fmt.Errorf("internal error: dialect schema has no #Dialect definition")
	}

	value := ctx.CompileBytes(src, cue.Filename(origin))
	if err := value.Err(); err != nil {
		return nil, cueutil.FormatError(err, origin)
	}
	// Whole-file evaluation errors such as conflicting fields or unresolved
	// references surface here, before any declaration is looked up.
	if err := value.Validate(); err != nil {
		return nil, cueutil.FormatError(err, origin)
	}
	if value.Kind() != cue.StructKind {
		return nil, fmt.Errorf("%s: description file must be a struct of declarations", origin)
	}

	return &Unit{schema: def, value: value, origin: origin}, nil
}

// Build validates a located declaration against the dialect schema and
// constructs the dialect it describes.
func (f *Frontend) Build(decl modload.Decl) (*dialect.Dialect, error) {
	d, ok := decl.(*Decl)
	if !ok {
		return nil, fmt.Errorf("declaration %q was not produced by this frontend", decl.Name())
	}

	unified := d.unit.schema.Unify(d.value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, cueutil.FormatError(err, d.unit.origin)
	}

	var spec dialectSpec
	if err := unified.Decode(&spec); err != nil {
		return nil, cueutil.FormatError(err, d.unit.origin)
	}

	built := spec.toDialect(d.name)
	if err := built.Validate(); err != nil {
		return nil, err
	}
	return built, nil
}

// Unit is a compiled description file: the evaluated top-level struct plus
// the schema it was compiled against.
type Unit struct {
	schema cue.Value
	value  cue.Value
	origin string
}

var _ modload.Unit = (*Unit)(nil)

// Lookup returns the top-level declaration with the given name.
func (u *Unit) Lookup(name string) (modload.Decl, bool) {
	v := u.value.LookupPath(cue.MakePath(cue.Str(name)))
	if !v.Exists() {
		return nil, false
	}
	return &Decl{unit: u, name: name, value: v}, true
}

// Decl is a top-level declaration within a compiled description file.
type Decl struct {
	unit  *Unit
	name  string
	value cue.Value
}

var _ modload.Decl = (*Decl)(nil)

// Name returns the declaration's name.
func (d *Decl) Name() string { return d.name }

// IsDialect reports whether the declaration is a dialect declaration: a
// struct whose kind field is the string "dialect". The rest of the schema is
// not consulted here, so a malformed dialect declaration still reaches the
// build stage and fails with a validation message rather than a mismatch.
func (d *Decl) IsDialect() bool {
	if d.value.Kind() != cue.StructKind {
		return false
	}
	kind := d.value.LookupPath(cue.MakePath(cue.Str("kind")))
	if !kind.Exists() {
		return false
	}
	s, err := kind.String()
	return err == nil && s == "dialect"
}

// dialectSpec mirrors #Dialect for decoding.
type dialectSpec struct {
	Kind       string          `json:"kind"`
	Doc        string          `json:"doc,omitempty"`
	Attributes []attributeSpec `json:"attributes,omitempty"`
	Operations []operationSpec `json:"operations,omitempty"`
}

type attributeSpec struct {
	Name       string     `json:"name"`
	Doc        string     `json:"doc,omitempty"`
	Parameters []slotSpec `json:"parameters,omitempty"`
}

type operationSpec struct {
	Name     string     `json:"name"`
	Doc      string     `json:"doc,omitempty"`
	Operands []slotSpec `json:"operands,omitempty"`
	Results  []slotSpec `json:"results,omitempty"`
}

type slotSpec struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Doc  string `json:"doc,omitempty"`
}

func (s *dialectSpec) toDialect(name string) *dialect.Dialect {
	d := &dialect.Dialect{
		Name: name,
		Doc:  strings.TrimSpace(s.Doc),
	}
	for _, a := range s.Attributes {
		d.Attributes = append(d.Attributes, &dialect.Attribute{
			Name:       a.Name,
			Doc:        strings.TrimSpace(a.Doc),
			Parameters: toSlots(a.Parameters),
		})
	}
	for _, o := range s.Operations {
		d.Operations = append(d.Operations, &dialect.Operation{
			Name:     o.Name,
			Doc:      strings.TrimSpace(o.Doc),
			Operands: toSlots(o.Operands),
			Results:  toSlots(o.Results),
		})
	}
	return d
}

func toSlots(specs []slotSpec) []dialect.Slot {
	if len(specs) == 0 {
		return nil
	}
	slots := make([]dialect.Slot, len(specs))
	for i, s := range specs {
		slots[i] = dialect.Slot{
			Name: s.Name,
			Type: strings.TrimSpace(s.Type),
			Doc:  strings.TrimSpace(s.Doc),
		}
	}
	return slots
}
