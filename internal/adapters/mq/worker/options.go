package worker

import (
	"math/rand"

	"github.com/courtside/fastbreak/pkg/logger"
)

// Option applies a configuration option to the SimWorker.
type Option func(*SimWorker)

// WithName sets the worker name for identification and logging.
func WithName(name string) Option {
	return func(w *SimWorker) {
		if name != "" {
			w.name = name
		}
	}
}

// WithLogger sets a custom logger for the worker.
func WithLogger(l logger.Logger) Option {
	return func(w *SimWorker) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithSeed makes the worker's outcome draws deterministic.
func WithSeed(seed int64) Option {
	return func(w *SimWorker) {
		w.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // simulation randomness, not crypto
	}
}
