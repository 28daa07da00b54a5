// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"irdload/internal/testutil"
	"irdload/pkg/modload"
)

func TestDescriptionPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		arg     string
		wantErr bool
	}{
		{"source extension", "arith.irdl", false},
		{"nested source path", "dialects/arith.irdl", false},
		{"stub extension rejected", "arith.irdli", true},
		{"foreign extension rejected", "arith.txt", true},
		{"no extension rejected", "arith", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := descriptionPath(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("descriptionPath(%q) accepted a non-description path", tt.arg)
				}
				return
			}
			if err != nil {
				t.Fatalf("descriptionPath(%q) error = %v", tt.arg, err)
			}
			if !filepath.IsAbs(got) {
				t.Errorf("descriptionPath(%q) = %q, want absolute path", tt.arg, got)
			}
		})
	}
}

func TestRunValidate_ValidFile(t *testing.T) {
	setSearchFlags(t)
	dir := t.TempDir()
	path := writeDescription(t, dir, "arith", arithSource)

	cmd, stdout, _ := newTestCommand()
	if err := runValidate(cmd, []string{path}); err != nil {
		t.Fatalf("runValidate() error = %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"CUE evaluation passed", "Declaration check passed", "Dialect build passed", "valid dialect"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Validation never writes a stub.
	stubPath := filepath.Join(dir, "arith"+modload.StubExt)
	if _, err := os.Stat(stubPath); !os.IsNotExist(err) {
		t.Errorf("validate wrote a stub at %s", stubPath)
	}
}

func TestRunValidate_ParseError(t *testing.T) {
	setSearchFlags(t)
	dir := t.TempDir()
	path := writeDescription(t, dir, "broken", "this is not CUE {{{")

	cmd, _, stderr := newTestCommand()
	err := runValidate(cmd, []string{path})

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("runValidate() error = %v, want ExitError with code 1", err)
	}
	if !strings.Contains(stderr.String(), "CUE evaluation failed") {
		t.Errorf("stderr missing stage label:\n%s", stderr.String())
	}
}

func TestRunValidate_DeclarationMissing(t *testing.T) {
	setSearchFlags(t)
	dir := t.TempDir()
	// The file's base name is "cf" but the only declaration is "arith".
	path := writeDescription(t, dir, "cf", arithSource)

	cmd, _, stderr := newTestCommand()
	err := runValidate(cmd, []string{path})

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("runValidate() error = %v, want ExitError", err)
	}
	if !strings.Contains(stderr.String(), "Declaration check failed") {
		t.Errorf("stderr missing stage label:\n%s", stderr.String())
	}
}

func TestRunValidate_DeclarationNotADialect(t *testing.T) {
	setSearchFlags(t)
	dir := t.TempDir()
	path := writeDescription(t, dir, "arith", `arith: "just a string"`+"\n")

	cmd, _, stderr := newTestCommand()
	err := runValidate(cmd, []string{path})

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("runValidate() error = %v, want ExitError", err)
	}
	if !strings.Contains(stderr.String(), "Declaration check failed") {
		t.Errorf("stderr missing stage label:\n%s", stderr.String())
	}
}

func TestRunValidate_WrongExtension(t *testing.T) {
	setSearchFlags(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	testutil.MustWriteFile(t, path, "hello")

	cmd, _, _ := newTestCommand()
	err := runValidate(cmd, []string{path})
	if err == nil {
		t.Fatal("runValidate() accepted a non-description file")
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		t.Fatalf("extension rejection should be a plain error, got ExitError")
	}
	if !strings.Contains(err.Error(), modload.SourceExt) {
		t.Errorf("error does not mention the expected extension: %v", err)
	}
}
