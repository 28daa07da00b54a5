// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"irdload/internal/config"
	"irdload/internal/issue"
	"irdload/pkg/modload"

	"github.com/spf13/cobra"
)

// issueFor maps a load pipeline failure to the guidance issue covering its
// failure class. Failures without a dedicated issue (I/O errors while
// reading, binding collisions) report false and are shown as plain errors.
func issueFor(err error) (issue.Id, bool) {
	var notFound *modload.NotFoundError
	if errors.As(err, &notFound) {
		return issue.DialectNotFoundId, true
	}

	var loadErr *modload.LoadError
	if !errors.As(err, &loadErr) {
		return 0, false
	}

	switch loadErr.Stage {
	case modload.StageCompile:
		return issue.DialectParseErrorId, true
	case modload.StageLocate:
		if errors.Is(loadErr.Err, modload.ErrDeclMissing) {
			return issue.DeclarationMissingId, true
		}
		return issue.DeclarationMismatchId, true
	case modload.StageBuild:
		return issue.DialectInvalidId, true
	case modload.StageStub:
		return issue.StubWriteFailedId, true
	default:
		return 0, false
	}
}

// stageFailureLabel names the pipeline step a load failure occurred in,
// phrased for validation output.
func stageFailureLabel(err error) string {
	var loadErr *modload.LoadError
	if !errors.As(err, &loadErr) {
		return "Validation failed"
	}
	switch loadErr.Stage {
	case modload.StageRead:
		return "Reading the description failed"
	case modload.StageCompile:
		return "CUE evaluation failed"
	case modload.StageLocate:
		return "Declaration check failed"
	case modload.StageBuild:
		return "Dialect build failed"
	case modload.StageStub:
		return "Stub generation failed"
	default:
		return "Validation failed"
	}
}

// failLoad reports a load failure on stderr: the error itself, then the
// guidance card for its failure class when one exists. The returned
// ExitError converts the failure into a silent exit code 1.
func failLoad(cmd *cobra.Command, err error) error {
	stderr := cmd.ErrOrStderr()

	fmt.Fprintf(stderr, "%s %s\n", errorIcon, formatErrorForDisplay(err, verbose))
	renderIssueCard(cmd, err)

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return &ExitError{Code: 1}
}

// renderIssueCard writes the guidance card for a load failure to stderr,
// when the failure class has one.
func renderIssueCard(cmd *cobra.Command, err error) {
	id, ok := issueFor(err)
	if !ok {
		return
	}
	rendered, renderErr := issue.Get(id).Render(issueTheme())
	if renderErr != nil {
		return
	}
	stderr := cmd.ErrOrStderr()
	fmt.Fprintln(stderr)
	fmt.Fprint(stderr, rendered)
}

// issueTheme maps the configured color scheme to a glamour style name.
func issueTheme() string {
	if cfg != nil && cfg.UI.ColorScheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}
