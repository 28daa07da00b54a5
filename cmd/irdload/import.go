// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"irdload/pkg/dialect"
	"irdload/pkg/modload"

	"github.com/spf13/cobra"
)

// newImportCommand creates the `irdload import` command.
func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <module-name>",
		Short: "Load a dialect module by name",
		Long: `Load a dialect module by its fully-qualified name.

The last dot-separated segment of the name selects the description file:
importing 'compiler.dialects.arith' probes every search directory for
'arith.irdl' and loads the first match. Loading builds the dialect,
rewrites its interface stub next to the source file, and binds every
attribute and operation plus the dialect handle into the module.

Examples:
  irdload import arith
  irdload import compiler.dialects.arith
  irdload import arith --path ./dialects`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	name := args[0]
	stdout := cmd.OutOrStdout()

	pipe := newPipeline()
	printSearchDirs(cmd)

	mod, err := pipe.importer.Import(name, searchDirs())
	if err != nil {
		return failLoad(cmd, err)
	}

	d := mod.Dialect()
	fmt.Fprintf(stdout, "%s Loaded %s\n", successIcon, dialectNameStyle.Render(mod.Name()))
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%s Source:  %s\n", infoIcon, pathStyle.Render(mod.Path()))
	fmt.Fprintf(stdout, "%s Stub:    %s\n", infoIcon, pathStyle.Render(modload.StubPath(mod.Path())))
	fmt.Fprintf(stdout, "%s Dialect: %s (%d attribute(s), %d operation(s))\n",
		infoIcon, CmdStyle.Render(d.Name), len(d.Attributes), len(d.Operations))

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%s Bindings:\n", infoIcon)
	for _, bound := range mod.Names() {
		fmt.Fprintf(stdout, "  - %s %s\n", bound, SubtitleStyle.Render("("+bindingKind(mod, bound)+")"))
	}

	return nil
}

// bindingKind names what a module binding refers to.
func bindingKind(mod *modload.Module, name string) string {
	v, ok := mod.Lookup(name)
	if !ok {
		return "unknown"
	}
	switch v.(type) {
	case *dialect.Attribute:
		return "attribute"
	case *dialect.Operation:
		return "operation"
	case *dialect.Dialect:
		return "dialect handle"
	default:
		return "unknown"
	}
}
