// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"irdload/internal/discovery"

	"github.com/spf13/cobra"
)

// newListCommand creates the `irdload list` command.
func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List dialect descriptions on the search path",
		Long: `List every dialect description file reachable from the search path.

Directories are scanned in resolution order: --path flags first, then
IRDLPATH, then configured search paths, then the user dialects
directory. A file shadowed by an earlier directory with the same name is
shown only in verbose mode.

Examples:
  irdload list
  irdload list --path ./dialects -v`,
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	printSearchDirs(cmd)
	files, diags := discovery.New(cfg, pathFlags).DiscoverAll()

	fmt.Fprintln(stdout, sectionTitleStyle.Render("Available Dialects"))

	visible := 0
	for _, f := range files {
		if f.Shadowed {
			if verbose {
				fmt.Fprintf(stdout, "  %s  %s %s\n",
					SubtitleStyle.Render(f.Name),
					pathStyle.Render(f.Path),
					SubtitleStyle.Render("(shadowed by "+f.ShadowedBy+")"))
			}
			continue
		}
		visible++
		fmt.Fprintf(stdout, "  %s  %s\n", dialectNameStyle.Render(f.Name), pathStyle.Render(f.Path))
	}

	if visible == 0 {
		fmt.Fprintf(stdout, "  %s\n", SubtitleStyle.Render("(none found)"))
		fmt.Fprintln(stdout)
		fmt.Fprintf(stdout, "Add search directories with --path, the %s environment\nvariable, or the search_paths list in the config file.\n",
			CmdStyle.Render(discovery.EnvSearchPath))
	} else {
		fmt.Fprintln(stdout)
		fmt.Fprintf(stdout, "%s %d dialect(s) available\n", successIcon, visible)
	}

	if len(diags) > 0 {
		fmt.Fprintln(stderr)
		fmt.Fprintf(stderr, "%s %d diagnostic issue(s) found:\n", WarningStyle.Render("!"), len(diags))
		fmt.Fprintln(stderr)
		for i, diag := range diags {
			issueNum := fmt.Sprintf("  %d.", i+1)
			codeTag := diagCodeStyle.Render(fmt.Sprintf("[%s]", diag.Code))
			if diag.Path != "" {
				fmt.Fprintf(stderr, "%s %s %s\n", issueNum, codeTag, pathStyle.Render(diag.Path))
				fmt.Fprintf(stderr, "     %s\n", diag.Message)
			} else {
				fmt.Fprintf(stderr, "%s %s %s\n", issueNum, codeTag, diag.Message)
			}
		}
	}

	return nil
}
