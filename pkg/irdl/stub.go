// SPDX-License-Identifier: MPL-2.0

package irdl

import (
	"fmt"
	"strings"

	"irdload/pkg/dialect"
)

// RenderStub renders the interface stub for a built dialect. origin is the
// source path recorded in the header. The output depends only on the
// arguments, so repeated loads of an unchanged source produce byte-identical
// stubs.
//
// Layout: generated-code header, the dialect line, one line per attribute,
// one line per operation, in declaration order. Doc strings render as
// comment lines directly above their declaration.
func RenderStub(d *dialect.Dialect, origin string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by irdload from %s. DO NOT EDIT.\n\n", origin)

	writeDoc(&b, d.Doc)
	fmt.Fprintf(&b, "dialect %s\n", d.Name)

	if len(d.Attributes) > 0 {
		b.WriteByte('\n')
		for _, a := range d.Attributes {
			writeDoc(&b, a.Doc)
			fmt.Fprintf(&b, "attribute %s(%s)\n", a.Name, renderSlots(a.Parameters))
		}
	}
	if len(d.Operations) > 0 {
		b.WriteByte('\n')
		for _, o := range d.Operations {
			writeDoc(&b, o.Doc)
			if len(o.Results) > 0 {
				fmt.Fprintf(&b, "operation %s(%s) -> (%s)\n", o.Name, renderSlots(o.Operands), renderSlots(o.Results))
			} else {
				fmt.Fprintf(&b, "operation %s(%s)\n", o.Name, renderSlots(o.Operands))
			}
		}
	}
	return b.String()
}

// RenderStub implements the modload frontend contract.
func (f *Frontend) RenderStub(d *dialect.Dialect, origin string) string {
	return RenderStub(d, origin)
}

func writeDoc(b *strings.Builder, doc string) {
	if doc == "" {
		return
	}
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			b.WriteString("//\n")
			continue
		}
		fmt.Fprintf(b, "// %s\n", line)
	}
}

func renderSlots(slots []dialect.Slot) string {
	if len(slots) == 0 {
		return ""
	}
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = s.Name + ": " + s.Type
	}
	return strings.Join(parts, ", ")
}
