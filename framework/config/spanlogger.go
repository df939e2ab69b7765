package config

import (
	"github.com/prometheus/client_golang/prometheus"

	commonlogger "github.com/go-spanlog/spanlog/framework/logger"
	"github.com/go-spanlog/spanlog/framework/spanlogger"
)

// LoadSpanLoggerConfig reads extract_fields (a string list) and
// default_worker_name from c's configured sources (env vars, an optional
// config file) and produces the construction-time, immutable Config a
// spanlogger.Layer is built from. Capabilities this package cannot
// source from configuration alone — the clock, the writer factory, the
// dropped-writes counter, the logger — are left as opts, applied after
// the configured fields so a caller can still override anything.
func LoadSpanLoggerConfig(c *Config, opts ...SpanLoggerOption) spanlogger.Config {
	cfg := spanlogger.Config{
		ExtractFields:     c.GetStringSlice("extract_fields"),
		DefaultWorkerName: c.GetString("default_worker_name"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// SpanLoggerOption overrides one capability of a spanlogger.Config
// after LoadSpanLoggerConfig has populated it from configuration.
type SpanLoggerOption func(*spanlogger.Config)

// WithSpanLoggerClock overrides the time source.
func WithSpanLoggerClock(clock spanlogger.Clock) SpanLoggerOption {
	return func(cfg *spanlogger.Config) { cfg.Clock = clock }
}

// WithSpanLoggerWriterFactory overrides the destination writer factory.
func WithSpanLoggerWriterFactory(factory spanlogger.WriterFactory) SpanLoggerOption {
	return func(cfg *spanlogger.Config) { cfg.WriterFactory = factory }
}

// WithSpanLoggerDroppedWrites sets the counter bumped on write failure.
func WithSpanLoggerDroppedWrites(counter prometheus.Counter) SpanLoggerOption {
	return func(cfg *spanlogger.Config) { cfg.DroppedWrites = counter }
}

// WithSpanLoggerLogger overrides the logger used to report a refused
// call-site registration.
func WithSpanLoggerLogger(logger commonlogger.Logger) SpanLoggerOption {
	return func(cfg *spanlogger.Config) { cfg.Logger = logger }
}
