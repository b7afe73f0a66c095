package colgo

import (
	"github.com/hupe1980/colgo/model"
	"github.com/hupe1980/colgo/storage"
)

type options struct {
	manager          *storage.StorageManager
	logger           *Logger
	metricsCollector MetricsCollector
	targetChunkSize  model.ChunkOffset
	compactWorkers   int
}

// Option configures DB construction behavior.
type Option func(*options)

// WithStorageManager binds the DB to an explicit table registry instead of
// the process-wide one. Useful for tests and for embedding several
// independent engines in one process.
func WithStorageManager(m *storage.StorageManager) Option {
	return func(o *options) {
		if m == nil {
			m = storage.GetStorageManager()
		}
		o.manager = m
	}
}

// WithLogger configures the structured logger. If nil is passed, logging is
// disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures the metrics sink. If nil is passed,
// NoopMetricsCollector is used.
func WithMetricsCollector(c MetricsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = NoopMetricsCollector{}
		}
		o.metricsCollector = c
	}
}

// WithTargetChunkSize configures the chunk capacity of tables created
// through the DB. Zero selects storage.DefaultTargetChunkSize.
func WithTargetChunkSize(size model.ChunkOffset) Option {
	return func(o *options) {
		o.targetChunkSize = size
	}
}

// WithCompactWorkers bounds the number of chunks compressed concurrently by
// Compact. Zero or less selects runtime.GOMAXPROCS(0).
func WithCompactWorkers(n int) Option {
	return func(o *options) {
		o.compactWorkers = n
	}
}
