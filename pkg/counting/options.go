package counting

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/sanjoy/graphs/pkg/observability"
)

// Option configures a counting run.
type Option func(*options)

type options struct {
	logger *log.Logger
	hooks  observability.CountHooks
}

// WithLogger logs every newly found isomorphism class, as graph6, at debug
// level.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithHooks reports candidates and the final count to h.
func WithHooks(h observability.CountHooks) Option {
	return func(o *options) {
		if h != nil {
			o.hooks = h
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger: log.New(io.Discard),
		hooks:  observability.NoopCountHooks{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
