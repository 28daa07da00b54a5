// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"irdload/internal/discovery"
	"irdload/internal/testutil"
	"irdload/pkg/modload"

	"github.com/spf13/cobra"
)

// arithSource is the canonical description file used across command tests.
const arithSource = `arith: {
	kind: "dialect"
	doc:  "Integer arithmetic."
	attributes: [
		{name: "fastmath", parameters: [{name: "flags", type: "i32"}]},
	]
	operations: [
		{name: "add", operands: [{name: "lhs", type: "i32"}, {name: "rhs", type: "i32"}], results: [{name: "sum", type: "i32"}]},
	]
}
`

// isolateEnv pins the search environment so only test-provided directories
// are probed.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Cleanup(testutil.MustUnsetenv(t, discovery.EnvSearchPath))
	t.Cleanup(testutil.SetHomeDir(t, t.TempDir()))
}

// setSearchFlags pins the package-level flag and config state for a test,
// restoring the previous values afterwards.
func setSearchFlags(t *testing.T, paths ...string) {
	t.Helper()
	origVerbose, origCfgFile, origPaths, origCfg := verbose, cfgFile, pathFlags, cfg
	t.Cleanup(func() {
		verbose, cfgFile, pathFlags, cfg = origVerbose, origCfgFile, origPaths, origCfg
	})
	verbose = false
	cfgFile = ""
	pathFlags = paths
	cfg = nil
}

// newTestCommand returns a bare command with captured output streams.
func newTestCommand() (cmd *cobra.Command, stdout, stderr *bytes.Buffer) {
	cmd = &cobra.Command{}
	stdout = &bytes.Buffer{}
	stderr = &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd, stdout, stderr
}

// writeDescription writes a description file with the given content.
func writeDescription(t *testing.T, dir, stem, content string) string {
	t.Helper()
	path := filepath.Join(dir, stem+modload.SourceExt)
	testutil.MustWriteFile(t, path, content)
	return path
}

func TestRunImport_LoadsDialect(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeDescription(t, dir, "arith", arithSource)
	setSearchFlags(t, dir)

	cmd, stdout, _ := newTestCommand()
	if err := runImport(cmd, []string{"arith"}); err != nil {
		t.Fatalf("runImport() error = %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"Loaded", "arith", "fastmath", "add", "Arith", "1 attribute(s), 1 operation(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	stubPath := filepath.Join(dir, "arith"+modload.StubExt)
	data, err := os.ReadFile(stubPath)
	if err != nil {
		t.Fatalf("stub not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "// Code generated by irdload from ") {
		t.Errorf("stub header = %q", strings.SplitN(string(data), "\n", 2)[0])
	}
}

func TestRunImport_QualifiedNameUsesLastSegment(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeDescription(t, dir, "arith", arithSource)
	setSearchFlags(t, dir)

	cmd, stdout, _ := newTestCommand()
	if err := runImport(cmd, []string{"compiler.dialects.arith"}); err != nil {
		t.Fatalf("runImport() error = %v", err)
	}

	if !strings.Contains(stdout.String(), "compiler.dialects.arith") {
		t.Errorf("output does not echo the full module name:\n%s", stdout.String())
	}
}

func TestRunImport_NotFound(t *testing.T) {
	isolateEnv(t)
	setSearchFlags(t, t.TempDir())

	cmd, _, stderr := newTestCommand()
	err := runImport(cmd, []string{"ghost"})
	if err == nil {
		t.Fatal("runImport() succeeded for a missing module")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("runImport() error = %v, want ExitError with code 1", err)
	}
	if !strings.Contains(stderr.String(), "no dialect description found") {
		t.Errorf("stderr missing not-found message:\n%s", stderr.String())
	}
}

func TestRunImport_InvalidName(t *testing.T) {
	isolateEnv(t)
	setSearchFlags(t, t.TempDir())

	cmd, _, stderr := newTestCommand()
	err := runImport(cmd, []string{"a..b"})
	if err == nil {
		t.Fatal("runImport() succeeded for an invalid name")
	}
	if !strings.Contains(stderr.String(), "invalid module name") {
		t.Errorf("stderr missing invalid-name message:\n%s", stderr.String())
	}
}

func TestBindingKind(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeDescription(t, dir, "arith", arithSource)
	setSearchFlags(t, dir)

	pipe := newPipeline()
	mod, err := pipe.importer.Import("arith", []string{dir})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	tests := []struct {
		binding string
		want    string
	}{
		{"fastmath", "attribute"},
		{"add", "operation"},
		{"Arith", "dialect handle"},
		{"nope", "unknown"},
	}
	for _, tt := range tests {
		if got := bindingKind(mod, tt.binding); got != tt.want {
			t.Errorf("bindingKind(%q) = %q, want %q", tt.binding, got, tt.want)
		}
	}
}
