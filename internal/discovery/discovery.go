// SPDX-License-Identifier: MPL-2.0

// Package discovery handles finding dialect description files across the
// assembled search path.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"irdload/internal/config"
	"irdload/pkg/modload"
)

// EnvSearchPath is the environment variable holding extra search directories,
// separated by the platform's path list separator.
const EnvSearchPath = "IRDLPATH"

// Source represents where a search directory came from
type Source int

const (
	// SourceFlag indicates a directory passed via --path
	SourceFlag Source = iota
	// SourceEnv indicates a directory from the IRDLPATH environment variable
	SourceEnv
	// SourceConfig indicates a directory from the config file's search_paths
	SourceConfig
	// SourceUserDir indicates the user dialects directory (~/.irdload/dialects)
	SourceUserDir
	// SourceCurrentDir indicates the working-directory fallback used when
	// nothing else is configured
	SourceCurrentDir
)

// String returns a human-readable source name
func (s Source) String() string {
	switch s {
	case SourceFlag:
		return "--path flag"
	case SourceEnv:
		return EnvSearchPath + " environment variable"
	case SourceConfig:
		return "configured search path"
	case SourceUserDir:
		return "user dialects (~/.irdload/dialects)"
	case SourceCurrentDir:
		return "current directory"
	default:
		return "unknown"
	}
}

// SearchDir is one directory of the candidate path set with its provenance.
type SearchDir struct {
	// Path is the directory consulted during resolution
	Path string
	// Source indicates which tier contributed the directory
	Source Source
}

// DiscoveredFile represents a found dialect description file
type DiscoveredFile struct {
	// Path is the absolute path to the description file
	Path string
	// Name is the module-name stem (file base name without extension); importing
	// any fully-qualified name ending in this segment resolves to the file
	Name string
	// Dir is the search directory the file was found in
	Dir SearchDir
	// Shadowed is true when an earlier directory already provides this name,
	// so resolution will never pick this file
	Shadowed bool
	// ShadowedBy is the path of the winning file when Shadowed is set
	ShadowedBy string
}

// Discovery enumerates dialect description files. The directory order mirrors
// resolution precedence: --path flags, then IRDLPATH, then configured
// search_paths, then the user dialects directory.
type Discovery struct {
	cfg       *config.Config
	flagPaths []string
}

// New creates a new Discovery instance. flagPaths are the directories passed
// on the command line, highest precedence first; cfg may be nil.
func New(cfg *config.Config, flagPaths []string) *Discovery {
	return &Discovery{cfg: cfg, flagPaths: flagPaths}
}

// Dirs returns the candidate path set in precedence order. Directories are
// reported whether or not they exist; empty entries are dropped. The user
// dialects tier is skipped when the home directory cannot be determined.
func (d *Discovery) Dirs() []SearchDir {
	var dirs []SearchDir

	for _, p := range d.flagPaths {
		if p == "" {
			continue
		}
		dirs = append(dirs, SearchDir{Path: p, Source: SourceFlag})
	}

	for _, p := range filepath.SplitList(os.Getenv(EnvSearchPath)) {
		if p == "" {
			continue
		}
		dirs = append(dirs, SearchDir{Path: p, Source: SourceEnv})
	}

	if d.cfg != nil {
		for _, p := range d.cfg.SearchPaths {
			if p == "" {
				continue
			}
			dirs = append(dirs, SearchDir{Path: p.String(), Source: SourceConfig})
		}
	}

	if userDir, err := config.DialectsDir(); err == nil {
		dirs = append(dirs, SearchDir{Path: userDir, Source: SourceUserDir})
	}

	return dirs
}

// SearchPath returns the candidate path set as a plain directory list for the
// resolver. Empty when nothing is configured; the resolver substitutes the
// working directory itself in that case.
func (d *Discovery) SearchPath() []string {
	dirs := d.Dirs()
	paths := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		paths = append(paths, dir.Path)
	}
	return paths
}

// DiscoverAll finds all description files across the candidate path set in
// precedence order. A file whose name already appeared in an earlier directory
// is marked shadowed. Missing directories are skipped silently; unreadable
// ones produce a diagnostic.
func (d *Discovery) DiscoverAll() ([]*DiscoveredFile, []Diagnostic) {
	dirs := d.Dirs()
	if len(dirs) == 0 {
		if cwd, err := os.Getwd(); err == nil {
			dirs = append(dirs, SearchDir{Path: cwd, Source: SourceCurrentDir})
		}
	}

	var (
		files       []*DiscoveredFile
		diagnostics []Diagnostic
	)
	visited := make(map[string]bool)
	winners := make(map[string]*DiscoveredFile)

	for _, dir := range dirs {
		absDir, err := filepath.Abs(dir.Path)
		if err != nil {
			continue
		}

		// The same directory reachable through two tiers is scanned once;
		// resolution would never consult the second occurrence either.
		if visited[absDir] {
			continue
		}
		visited[absDir] = true

		entries, err := os.ReadDir(absDir)
		if err != nil {
			if !os.IsNotExist(err) {
				diagnostics = append(diagnostics, Diagnostic{
					Severity: SeverityWarning,
					Code:     "search_dir_unreadable",
					Message:  fmt.Sprintf("skipping unreadable search directory (%s)", dir.Source),
					Path:     dir.Path,
					Cause:    err,
				})
			}
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != modload.SourceExt {
				continue
			}

			name := strings.TrimSuffix(entry.Name(), modload.SourceExt)
			file := &DiscoveredFile{
				Path: filepath.Join(absDir, entry.Name()),
				Name: name,
				Dir:  dir,
			}

			if winner, exists := winners[name]; exists {
				file.Shadowed = true
				file.ShadowedBy = winner.Path
			} else {
				winners[name] = file
			}

			files = append(files, file)
		}
	}

	return files, diagnostics
}
