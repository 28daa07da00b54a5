// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"irdload/internal/issue"
	"irdload/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.SearchPaths) != 0 {
		t.Errorf("expected default search paths to be empty, got %v", cfg.SearchPaths)
	}

	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected default color scheme to be auto, got %s", cfg.UI.ColorScheme)
	}

	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if valid, errs := DefaultConfig().IsValid(); !valid {
		t.Errorf("default config should be valid, got errors: %v", errs)
	}
}

func TestConfigDir(t *testing.T) {
	// Test with XDG_CONFIG_HOME set (on Linux)
	if runtime.GOOS == "linux" {
		testXDGPath := "/tmp/test-xdg-config"
		restoreXDG := testutil.MustSetenv(t, "XDG_CONFIG_HOME", testXDGPath)
		defer restoreXDG()

		dir, err := ConfigDir()
		if err != nil {
			t.Fatalf("ConfigDir() returned error: %v", err)
		}

		expected := filepath.Join(testXDGPath, AppName)
		if dir != expected {
			t.Errorf("ConfigDir() = %s, want %s", dir, expected)
		}

		// Test with XDG_CONFIG_HOME unset
		restoreXDG()
		cleanup := testutil.MustUnsetenv(t, "XDG_CONFIG_HOME")
		defer cleanup()

		dir, err = ConfigDir()
		if err != nil {
			t.Fatalf("ConfigDir() returned error: %v", err)
		}

		// Should use ~/.config/irdload
		home, _ := os.UserHomeDir()
		expected = filepath.Join(home, ".config", AppName)
		if dir != expected {
			t.Errorf("ConfigDir() = %s, want %s", dir, expected)
		}
	}
}

func TestConfigDir_Override(t *testing.T) {
	tmpDir := t.TempDir()
	SetConfigDirOverride(tmpDir)
	defer Reset()

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}

	if dir != tmpDir {
		t.Errorf("ConfigDir() = %s, want override %s", dir, tmpDir)
	}
}

func TestDialectsDir(t *testing.T) {
	dir, err := DialectsDir()
	if err != nil {
		t.Fatalf("DialectsDir() returned error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".irdload", "dialects")
	if dir != expected {
		t.Errorf("DialectsDir() = %s, want %s", dir, expected)
	}
}

func TestReset(t *testing.T) {
	SetConfigDirOverride("/some/override")

	Reset()

	if configDirOverride != "" {
		t.Error("expected configDirOverride to be empty after Reset()")
	}
}

func TestEnsureConfigDir(t *testing.T) {
	// Use a temp directory for testing
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, AppName)

	// Use direct override instead of env vars (more reliable across platforms)
	SetConfigDirOverride(configDir)
	defer Reset()

	err := EnsureConfigDir()
	if err != nil {
		t.Fatalf("EnsureConfigDir() returned error: %v", err)
	}

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Errorf("EnsureConfigDir() did not create directory %s", configDir)
	}
}

func TestEnsureDialectsDir(t *testing.T) {
	// Use a temp directory for testing
	tmpDir := t.TempDir()
	cleanup := testutil.SetHomeDir(t, tmpDir)
	defer cleanup()

	err := EnsureDialectsDir()
	if err != nil {
		t.Fatalf("EnsureDialectsDir() returned error: %v", err)
	}

	expectedDir := filepath.Join(tmpDir, ".irdload", "dialects")
	if _, err := os.Stat(expectedDir); os.IsNotExist(err) {
		t.Errorf("EnsureDialectsDir() did not create directory %s", expectedDir)
	}
}

func TestLoadAndSave(t *testing.T) {
	// Use a temp directory for testing
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, AppName)

	// Use direct override instead of env vars (more reliable across platforms)
	SetConfigDirOverride(configDir)
	defer Reset()

	// Ensure config directory exists
	err := EnsureConfigDir()
	if err != nil {
		t.Fatalf("EnsureConfigDir() returned error: %v", err)
	}

	// Create a custom config
	cfg := &Config{
		SearchPaths: []SearchPath{"/path/one", "/path/two"},
		UI: UIConfig{
			ColorScheme: ColorSchemeDark,
			Verbose:     true,
		},
	}

	// Save the config
	err = Save(cfg)
	if err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	loaded, err := Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	// Verify loaded config matches what we saved
	if len(loaded.SearchPaths) != 2 {
		t.Fatalf("SearchPaths length = %d, want 2", len(loaded.SearchPaths))
	}

	if loaded.SearchPaths[0] != "/path/one" || loaded.SearchPaths[1] != "/path/two" {
		t.Errorf("SearchPaths = %v, want [/path/one /path/two]", loaded.SearchPaths)
	}

	if loaded.UI.ColorScheme != ColorSchemeDark {
		t.Errorf("ColorScheme = %s, want dark", loaded.UI.ColorScheme)
	}

	if !loaded.UI.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestLoad_ReturnsDefaultsWhenNoConfigFile(t *testing.T) {
	// Use a temp directory with no config file
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, AppName)

	// Use direct override instead of env vars (more reliable across platforms)
	SetConfigDirOverride(configDir)
	defer Reset()

	// Change to temp dir to avoid loading config from current directory
	restoreWd := testutil.MustChdir(t, tmpDir)
	defer restoreWd()

	cfg, err := Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	// Should return default values
	defaults := DefaultConfig()
	if cfg.UI.ColorScheme != defaults.UI.ColorScheme {
		t.Errorf("ColorScheme = %s, want %s", cfg.UI.ColorScheme, defaults.UI.ColorScheme)
	}

	if len(cfg.SearchPaths) != 0 {
		t.Errorf("SearchPaths = %v, want empty", cfg.SearchPaths)
	}
}

func TestLoad_ConfigDirPathOption(t *testing.T) {
	// The explicit ConfigDirPath option wins over the platform directory.
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, ConfigFileName+"."+ConfigFileExt)
	testutil.MustWriteFile(t, cfgPath, `ui: color_scheme: "light"`+"\n")

	cfg, err := Load(context.Background(), LoadOptions{ConfigDirPath: tmpDir})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.UI.ColorScheme != ColorSchemeLight {
		t.Errorf("ColorScheme = %s, want light", cfg.UI.ColorScheme)
	}
}

func TestLoad_CurrentDirFallback(t *testing.T) {
	// With no file in the config dir, a config.cue in the working directory
	// is picked up.
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, AppName)
	SetConfigDirOverride(configDir)
	defer Reset()

	workDir := filepath.Join(tmpDir, "work")
	testutil.MustMkdirAll(t, workDir, 0o755)
	testutil.MustWriteFile(t, filepath.Join(workDir, ConfigFileName+"."+ConfigFileExt), `ui: verbose: true`+"\n")

	restoreWd := testutil.MustChdir(t, workDir)
	defer restoreWd()

	cfg, err := Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if !cfg.UI.Verbose {
		t.Error("Verbose = false, want true from working-directory config")
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	// Use a temp directory for testing
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, AppName)

	// Use direct override instead of env vars (more reliable across platforms)
	SetConfigDirOverride(configDir)
	defer Reset()

	err := CreateDefaultConfig()
	if err != nil {
		t.Fatalf("CreateDefaultConfig() returned error: %v", err)
	}

	// Check that file was created
	expectedPath := filepath.Join(configDir, ConfigFileName+"."+ConfigFileExt)
	if _, statErr := os.Stat(expectedPath); os.IsNotExist(statErr) {
		t.Errorf("CreateDefaultConfig() did not create file at %s", expectedPath)
	}

	// Read the file and verify it has content
	content, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}

	if len(content) == 0 {
		t.Error("config file is empty")
	}

	// Calling again should not error (file already exists)
	err = CreateDefaultConfig()
	if err != nil {
		t.Fatalf("CreateDefaultConfig() returned error on second call: %v", err)
	}
}

func TestLoad_CustomPath_Valid(t *testing.T) {
	// Create a temp directory with a valid config file
	tmpDir := t.TempDir()
	customConfigPath := filepath.Join(tmpDir, "custom-config.cue")

	validConfig := `search_paths: ["/opt/dialects"]
ui: color_scheme: "dark"
`
	testutil.MustWriteFile(t, customConfigPath, validConfig)

	// Change to temp dir to avoid loading config from current directory
	restoreWd := testutil.MustChdir(t, tmpDir)
	defer restoreWd()

	// Load should use the custom path
	cfg, err := Load(context.Background(), LoadOptions{ConfigFilePath: customConfigPath})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	// Verify the custom config was loaded
	if len(cfg.SearchPaths) != 1 || cfg.SearchPaths[0] != "/opt/dialects" {
		t.Errorf("SearchPaths = %v, want [/opt/dialects]", cfg.SearchPaths)
	}
	if cfg.UI.ColorScheme != ColorSchemeDark {
		t.Errorf("ColorScheme = %s, want dark", cfg.UI.ColorScheme)
	}
}

func TestLoad_CustomPath_NotFound_ReturnsError(t *testing.T) {
	nonExistentPath := "/this/path/does/not/exist/config.cue"

	_, err := Load(context.Background(), LoadOptions{ConfigFilePath: nonExistentPath})
	if err == nil {
		t.Fatal("expected Load() to return error for non-existent config file")
	}

	// Verify error contains actionable context
	errStr := err.Error()
	if !strings.Contains(errStr, "load configuration") {
		t.Errorf("error should contain 'load configuration', got: %s", errStr)
	}
	if !strings.Contains(errStr, nonExistentPath) {
		t.Errorf("error should contain the path, got: %s", errStr)
	}
	if !strings.Contains(errStr, "config file not found") {
		t.Errorf("error should contain 'config file not found', got: %s", errStr)
	}

	// Verify suggestions are present via ActionableError type
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("expected error to be *issue.ActionableError")
	}
	if len(ae.Suggestions) == 0 {
		t.Error("expected ActionableError to have suggestions")
	}
	foundSuggestion := false
	for _, s := range ae.Suggestions {
		if strings.Contains(s, "Verify the file path is correct") {
			foundSuggestion = true
			break
		}
	}
	if !foundSuggestion {
		t.Errorf("expected suggestion 'Verify the file path is correct', got: %v", ae.Suggestions)
	}
}

func TestLoad_CustomPath_InvalidCUE_ReturnsError(t *testing.T) {
	// Create a temp directory with an invalid config file
	tmpDir := t.TempDir()
	customConfigPath := filepath.Join(tmpDir, "invalid-config.cue")

	invalidConfig := `this is not valid CUE syntax {{{{`
	testutil.MustWriteFile(t, customConfigPath, invalidConfig)

	_, err := Load(context.Background(), LoadOptions{ConfigFilePath: customConfigPath})
	if err == nil {
		t.Fatal("expected Load() to return error for invalid CUE config file")
	}

	// Verify error contains actionable context
	errStr := err.Error()
	if !strings.Contains(errStr, "load configuration") {
		t.Errorf("error should contain 'load configuration', got: %s", errStr)
	}
	if !strings.Contains(errStr, customConfigPath) {
		t.Errorf("error should contain the path, got: %s", errStr)
	}
}

func TestLoad_SchemaViolation_ReturnsError(t *testing.T) {
	// A config that parses as CUE but violates the #Config schema.
	tmpDir := t.TempDir()
	customConfigPath := filepath.Join(tmpDir, "bad-scheme.cue")

	testutil.MustWriteFile(t, customConfigPath, `ui: color_scheme: "solarized"`+"\n")

	_, err := Load(context.Background(), LoadOptions{ConfigFilePath: customConfigPath})
	if err == nil {
		t.Fatal("expected Load() to return error for schema violation")
	}

	if !strings.Contains(err.Error(), "load configuration") {
		t.Errorf("error should contain 'load configuration', got: %s", err)
	}
}

func TestLoad_DuplicateSearchPaths_ReturnsError(t *testing.T) {
	// Duplicates survive CUE validation; the Go-level check catches them.
	tmpDir := t.TempDir()
	customConfigPath := filepath.Join(tmpDir, "dupes.cue")

	testutil.MustWriteFile(t, customConfigPath, `search_paths: ["/opt/dialects", "/opt/dialects/"]`+"\n")

	_, err := Load(context.Background(), LoadOptions{ConfigFilePath: customConfigPath})
	if err == nil {
		t.Fatal("expected Load() to return error for duplicate search paths")
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "duplicate path") {
		t.Errorf("error should contain 'duplicate path', got: %s", errStr)
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("expected error to be *issue.ActionableError")
	}
}

func TestLoad_CanceledContext_ReturnsError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, LoadOptions{})
	if err == nil {
		t.Fatal("expected Load() to return error for canceled context")
	}

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got: %v", err)
	}
}

func TestGenerateCUE(t *testing.T) {
	cfg := &Config{
		SearchPaths: []SearchPath{"/one", "/two"},
		UI: UIConfig{
			ColorScheme: ColorSchemeLight,
			Verbose:     true,
		},
	}

	out := GenerateCUE(cfg)

	for _, want := range []string{
		`"/one"`,
		`"/two"`,
		`color_scheme: "light"`,
		`verbose: true`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("GenerateCUE() output missing %q:\n%s", want, out)
		}
	}

	// Empty search paths omit the list entirely
	out = GenerateCUE(DefaultConfig())
	if strings.Contains(out, "search_paths") {
		t.Errorf("GenerateCUE() should omit empty search_paths:\n%s", out)
	}
}

func TestConstants(t *testing.T) {
	if AppName != "irdload" {
		t.Errorf("AppName = %s, want irdload", AppName)
	}

	if ConfigFileName != "config" {
		t.Errorf("ConfigFileName = %s, want config", ConfigFileName)
	}

	if ConfigFileExt != "cue" {
		t.Errorf("ConfigFileExt = %s, want cue", ConfigFileExt)
	}
}
