// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	"irdload/internal/discovery"
	"irdload/pkg/irdl"
	"irdload/pkg/modload"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// pipeline bundles the collaborators behind a dialect load: a registry, the
// CUE frontend loader, and an importer resolving through the dialect-file
// resolver. Each CLI invocation builds one pipeline and discards it on exit,
// so the registry only ever caches within a single run.
type pipeline struct {
	registry *modload.Registry
	loader   *modload.FileLoader
	chain    *modload.Chain
	importer *modload.Importer
}

// newPipeline assembles the load pipeline. Pipeline diagnostics go to
// stderr in verbose mode and are discarded otherwise.
func newPipeline() *pipeline {
	logger := newLoadLogger()
	registry := modload.NewRegistry()
	loader := modload.NewFileLoader(irdl.NewFrontend(), modload.WithLogger(logger))
	chain := modload.NewChain(modload.NewFileResolver(registry, loader))
	return &pipeline{
		registry: registry,
		loader:   loader,
		chain:    chain,
		importer: modload.NewImporter(registry, chain, modload.WithLogger(logger)),
	}
}

// newLoadLogger creates the logger handed to the load pipeline.
func newLoadLogger() *log.Logger {
	if !verbose {
		return log.New(io.Discard)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "irdload",
		Level:  log.DebugLevel,
	})
}

// searchDirs returns the ordered search path assembled from the --path
// flags, IRDLPATH, and the loaded configuration.
func searchDirs() []string {
	return discovery.New(cfg, pathFlags).SearchPath()
}

// printSearchDirs reports the assembled search path in verbose mode.
func printSearchDirs(cmd *cobra.Command) {
	if !verbose {
		return
	}
	stderr := cmd.ErrOrStderr()
	for _, dir := range discovery.New(cfg, pathFlags).Dirs() {
		fmt.Fprintf(stderr, "%s searching %s %s\n",
			VerboseStyle.Render("»"),
			VerboseHighlightStyle.Render(dir.Path),
			VerboseStyle.Render("("+dir.Source.String()+")"))
	}
}
