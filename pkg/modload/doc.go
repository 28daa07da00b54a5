// SPDX-License-Identifier: MPL-2.0

// Package modload resolves and materializes IRDL dialect description files
// as modules.
//
// An import request for a dot-separated module name runs through three
// collaborators, all of them injectable:
//
//   - a Chain of Resolver strategies that maps the name to a
//     Descriptor without reading any file contents. The dialect-file
//     resolver derives "<last name segment>.irdl", probes an ordered list of
//     search directories, and claims the first regular file it finds.
//   - a ModuleLoader carried by the Descriptor that materializes the
//     module: read, compile through the description Frontend, locate the
//     top-level declaration matching the file's base name, build the
//     dialect, write the interface stub next to the source, and derive the
//     module's bindings.
//   - a Registry that caches loaded modules by name so each name is
//     materialized at most once per process.
//
// The Importer ties the three together:
//
//	reg := modload.NewRegistry()
//	loader := modload.NewFileLoader(frontend)
//	chain := modload.NewChain(
//		builtins,
//		modload.NewFileResolver(reg, loader),
//	)
//	imp := modload.NewImporter(reg, chain)
//
//	mod, err := imp.Import("compiler.dialects.arith", searchPath)
//
// A loaded module binds every attribute and operation of the dialect under
// its own name, plus the dialect itself under its capitalized name, so
// mod.Lookup("add") yields the operation and mod.Lookup("Arith") the
// dialect handle.
//
// Loads are synchronous and run to completion. The Registry is safe for
// concurrent reads, but callers that may import the same name from several
// goroutines at once must serialize those imports themselves.
package modload
