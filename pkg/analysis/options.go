package analysis

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/sanjoy/graphs/pkg/observability"
)

// Option configures an analysis run.
type Option func(*options)

type options struct {
	logger *log.Logger
	hooks  observability.AnalysisHooks
}

// WithLogger sends search diagnostics to l at debug level.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithHooks reports search start and completion to h.
func WithHooks(h observability.AnalysisHooks) Option {
	return func(o *options) {
		if h != nil {
			o.hooks = h
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger: log.New(io.Discard),
		hooks:  observability.NoopAnalysisHooks{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
