// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"irdload/pkg/modload"

	"github.com/spf13/cobra"
)

// newValidateCommand creates the `irdload validate` command.
func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a dialect description file",
		Long: `Validate a single dialect description file.

Validation runs the load pipeline up to the build stage: the CUE source
is compiled, the top-level declaration matching the file's base name is
located and kind-checked, and the dialect is built and structurally
validated. No interface stub is written and nothing is registered.

Examples:
  irdload validate ./arith.irdl
  irdload validate /opt/dialects/cf.irdl`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	path, err := descriptionPath(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, sectionTitleStyle.Render("Dialect Validation"))
	fmt.Fprintf(stdout, "%s Path: %s\n", infoIcon, pathStyle.Render(path))
	fmt.Fprintln(stdout)

	pipe := newPipeline()
	d, err := pipe.loader.Check(path)
	if err != nil {
		fmt.Fprintf(stderr, "%s %s\n", errorIcon, stageFailureLabel(err))
		fmt.Fprintln(stderr)
		fmt.Fprintf(stderr, "  %s\n", formatErrorForDisplay(err, verbose))
		renderIssueCard(cmd, err)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}

	fmt.Fprintf(stdout, "%s CUE evaluation passed\n", successIcon)
	fmt.Fprintf(stdout, "%s Declaration check passed\n", successIcon)
	fmt.Fprintf(stdout, "%s Dialect build passed\n", successIcon)
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%s %s is a valid dialect (%d attribute(s), %d operation(s))\n",
		successIcon, CmdStyle.Render(d.Name), len(d.Attributes), len(d.Operations))
	return nil
}

// descriptionPath normalizes a file argument into an absolute description
// path, rejecting files without the source extension up front so the
// loader never derives a declaration name from a foreign file type.
func descriptionPath(arg string) (string, error) {
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	if filepath.Ext(abs) != modload.SourceExt {
		return "", fmt.Errorf("%s is not a dialect description file (expected a %s file)", arg, modload.SourceExt)
	}
	return abs, nil
}
