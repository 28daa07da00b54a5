// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/irdload/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/irdload/config.cue on macOS, %APPDATA%\irdload\config.cue
// on Windows), with a config.cue in the current directory as fallback. The file configures
// dialect search paths and UI settings.
//
// Files are validated against a CUE schema (config_schema.cue) before their values are
// merged over the built-in defaults, so invalid configurations fail with precise,
// field-level error messages.
package config
