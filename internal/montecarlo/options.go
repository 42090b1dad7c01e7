package montecarlo

import "log/slog"

type options struct {
	workers int
	seed    uint64
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{
		workers: 1,
		logger:  slog.New(slog.DiscardHandler),
	}
}

// Option configures an estimation run.
type Option func(*options)

// WithWorkers spreads trials over n goroutines. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithSeed makes the run reproducible for a fixed worker count.
// Seed 0 draws a fresh seed from process entropy.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithLogger sets the logger for run summaries. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
