package momentdist

import "runtime"

type summaryOptions struct {
	significantDigits int
}

// SummaryOption configures Summarize.
type SummaryOption func(*summaryOptions)

// WithSignificantDigits sets the rounding applied to rendered values.
// Values below 1 are ignored; the default is 3.
func WithSignificantDigits(n int) SummaryOption {
	return func(o *summaryOptions) {
		if n >= 1 {
			o.significantDigits = n
		}
	}
}

func applySummaryOptions(optFns []SummaryOption) summaryOptions {
	o := summaryOptions{significantDigits: 3}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

type batchOptions struct {
	limit  int
	logger *Logger
}

// BatchOption configures DistanceBatch.
type BatchOption func(*batchOptions)

// WithConcurrency caps the number of pairs evaluated in parallel.
// Values below 1 select the default, GOMAXPROCS.
func WithConcurrency(n int) BatchOption {
	return func(o *batchOptions) {
		if n >= 1 {
			o.limit = n
		}
	}
}

// WithBatchLogger configures structured logging for batch evaluation.
// Pass nil to disable logging.
func WithBatchLogger(logger *Logger) BatchOption {
	return func(o *batchOptions) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func applyBatchOptions(optFns []BatchOption) batchOptions {
	o := batchOptions{
		limit:  runtime.GOMAXPROCS(0),
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
