// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"testing"

	"irdload/internal/config"
	"irdload/internal/issue"
	"irdload/pkg/modload"
)

func TestIssueFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		want   issue.Id
		wantOk bool
	}{
		{
			name:   "not found",
			err:    &modload.NotFoundError{Name: "arith"},
			want:   issue.DialectNotFoundId,
			wantOk: true,
		},
		{
			name:   "wrapped not found",
			err:    fmt.Errorf("import: %w", &modload.NotFoundError{Name: "arith"}),
			want:   issue.DialectNotFoundId,
			wantOk: true,
		},
		{
			name:   "compile stage",
			err:    &modload.LoadError{Stage: modload.StageCompile, Name: "arith", Err: errors.New("syntax error")},
			want:   issue.DialectParseErrorId,
			wantOk: true,
		},
		{
			name:   "locate stage with missing declaration",
			err:    &modload.LoadError{Stage: modload.StageLocate, Name: "arith", Err: fmt.Errorf("no declaration: %w", modload.ErrDeclMissing)},
			want:   issue.DeclarationMissingId,
			wantOk: true,
		},
		{
			name:   "locate stage with kind mismatch",
			err:    &modload.LoadError{Stage: modload.StageLocate, Name: "arith", Err: fmt.Errorf("declaration: %w", modload.ErrDeclMismatch)},
			want:   issue.DeclarationMismatchId,
			wantOk: true,
		},
		{
			name:   "build stage",
			err:    &modload.LoadError{Stage: modload.StageBuild, Name: "arith", Err: errors.New("duplicate entity")},
			want:   issue.DialectInvalidId,
			wantOk: true,
		},
		{
			name:   "stub stage",
			err:    &modload.LoadError{Stage: modload.StageStub, Name: "arith", Err: errors.New("permission denied")},
			want:   issue.StubWriteFailedId,
			wantOk: true,
		},
		{
			name:   "read stage has no card",
			err:    &modload.LoadError{Stage: modload.StageRead, Name: "arith", Err: errors.New("gone")},
			wantOk: false,
		},
		{
			name:   "bind stage has no card",
			err:    &modload.LoadError{Stage: modload.StageBind, Name: "arith", Err: errors.New("duplicate binding")},
			wantOk: false,
		},
		{
			name:   "unrelated error",
			err:    errors.New("boom"),
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := issueFor(tt.err)
			if ok != tt.wantOk {
				t.Fatalf("issueFor() ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("issueFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStageFailureLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stage modload.Stage
		want  string
	}{
		{modload.StageRead, "Reading the description failed"},
		{modload.StageCompile, "CUE evaluation failed"},
		{modload.StageLocate, "Declaration check failed"},
		{modload.StageBuild, "Dialect build failed"},
		{modload.StageStub, "Stub generation failed"},
	}

	for _, tt := range tests {
		err := &modload.LoadError{Stage: tt.stage, Name: "arith", Err: errors.New("x")}
		if got := stageFailureLabel(err); got != tt.want {
			t.Errorf("stageFailureLabel(%s) = %q, want %q", tt.stage, got, tt.want)
		}
	}

	if got := stageFailureLabel(errors.New("plain")); got != "Validation failed" {
		t.Errorf("stageFailureLabel(plain) = %q, want %q", got, "Validation failed")
	}
}

func TestIssueTheme(t *testing.T) {
	origCfg := cfg
	t.Cleanup(func() { cfg = origCfg })

	cfg = nil
	if got := issueTheme(); got != "dark" {
		t.Errorf("issueTheme() with nil config = %q, want dark", got)
	}

	cfg = &config.Config{UI: config.UIConfig{ColorScheme: config.ColorSchemeLight}}
	if got := issueTheme(); got != "light" {
		t.Errorf("issueTheme() with light scheme = %q, want light", got)
	}

	cfg = &config.Config{UI: config.UIConfig{ColorScheme: config.ColorSchemeDark}}
	if got := issueTheme(); got != "dark" {
		t.Errorf("issueTheme() with dark scheme = %q, want dark", got)
	}
}
