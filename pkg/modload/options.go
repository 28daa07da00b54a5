// SPDX-License-Identifier: MPL-2.0

package modload

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures an Importer or FileLoader.
type Option func(*options)

type options struct {
	logger *log.Logger
}

func defaultOptions() options {
	return options{logger: log.New(io.Discard)}
}

// WithLogger routes load pipeline diagnostics to the given logger. Without
// it, diagnostics are discarded.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
