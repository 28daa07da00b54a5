// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"irdload/pkg/modload"

	"github.com/spf13/cobra"
)

// newResolveCommand creates the `irdload resolve` command.
func newResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <module-name>",
		Short: "Resolve a module name to its description file",
		Long: `Resolve a module name to a dialect description file without loading it.

Resolution probes each search directory in order for a file named after
the last dot-separated segment of the module name. File contents are
never read; resolve answers purely from the filesystem layout, so a file
that resolves may still fail to load.

Examples:
  irdload resolve arith
  irdload resolve compiler.dialects.arith --path ./dialects`,
		Args: cobra.ExactArgs(1),
		RunE: runResolve,
	}
}

func runResolve(cmd *cobra.Command, args []string) error {
	name := args[0]
	stdout := cmd.OutOrStdout()

	if err := modload.ValidateName(name); err != nil {
		return err
	}

	pipe := newPipeline()
	printSearchDirs(cmd)

	desc, err := pipe.chain.Resolve(name, searchDirs())
	if err != nil {
		return failLoad(cmd, err)
	}

	fmt.Fprintf(stdout, "%s Resolved %s\n", successIcon, dialectNameStyle.Render(name))
	fmt.Fprintf(stdout, "%s File: %s\n", infoIcon, pathStyle.Render(desc.Path))
	return nil
}
