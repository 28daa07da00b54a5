// SPDX-License-Identifier: MPL-2.0

package modload

type (
	// Descriptor is the deferred-load handle a resolver strategy produces
	// for a matched module: everything needed to materialize it later,
	// without any file contents having been read.
	Descriptor struct {
		// Name is the fully-qualified module name the match answers.
		Name string
		// Path is the absolute path of the matched description file. Empty
		// for modules that do not originate from a file.
		Path string
		// Loader materializes the module from this descriptor.
		Loader ModuleLoader
	}

	// ModuleLoader materializes a module from a descriptor. Load is invoked
	// at most once per descriptor; it either returns a fully bound module
	// or an error, never a partial module.
	ModuleLoader interface {
		Load(desc *Descriptor) (*Module, error)
	}
)
