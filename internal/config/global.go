// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride redirects ConfigDir for tests. os.UserHomeDir() does not
// reliably honor the HOME environment variable on every platform, so tests
// point this at a t.TempDir() instead of faking a home directory.
var configDirOverride string

// SetConfigDirOverride sets a custom config directory path. Intended for
// tests; production callers pass LoadOptions instead.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
}
