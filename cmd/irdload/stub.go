// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"irdload/pkg/irdl"

	"github.com/spf13/cobra"
)

// stubPrint prints the stub to stdout instead of writing it next to the source.
var stubPrint bool

// newStubCommand creates the `irdload stub` command.
func newStubCommand() *cobra.Command {
	stubCmd := &cobra.Command{
		Use:   "stub <file>",
		Short: "Regenerate the interface stub for a description file",
		Long: `Regenerate the interface stub for a dialect description file.

The stub is written next to the source with the .irdli extension and
describes the dialect's public surface: its attributes, operations, and
their typed slots. Stubs are deterministic; the same description always
produces the same stub bytes.

Examples:
  irdload stub ./arith.irdl
  irdload stub ./arith.irdl --print`,
		Args: cobra.ExactArgs(1),
		RunE: runStub,
	}
	stubCmd.Flags().BoolVar(&stubPrint, "print", false, "print the stub to stdout instead of writing it")
	return stubCmd
}

func runStub(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	path, err := descriptionPath(args[0])
	if err != nil {
		return err
	}

	pipe := newPipeline()

	if stubPrint {
		d, err := pipe.loader.Check(path)
		if err != nil {
			return failLoad(cmd, err)
		}
		fmt.Fprint(stdout, irdl.RenderStub(d, path))
		return nil
	}

	stubPath, err := pipe.loader.WriteStub(path)
	if err != nil {
		return failLoad(cmd, err)
	}

	fmt.Fprintf(stdout, "%s Wrote %s\n", successIcon, pathStyle.Render(stubPath))
	return nil
}
