package host

import (
	"log/slog"

	numffiwazero "github.com/numffi/numffi/go/infrastructure/wazero"
)

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithAdapterOptions configures the numffi host module guests import from.
func WithAdapterOptions(opts ...numffiwazero.AdapterOption) Option {
	return func(e *Executor) {
		e.adapterOpts = append(e.adapterOpts, opts...)
	}
}

// WithLogger sets the logger for the executor and its host module.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}
