package spanlogger

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	oteltrace "go.opentelemetry.io/otel/trace"

	commonlogger "github.com/go-spanlog/spanlog/framework/logger"
)

// Config is the construction-time, immutable configuration for a Layer.
type Config struct {
	// Clock supplies the current time for every formatted event.
	// Defaults to SystemClock.
	Clock Clock
	// WriterFactory produces the locked sink each event line is written
	// to. Defaults to a mutex-guarded stderr writer.
	WriterFactory WriterFactory
	// ExtractFields is the fixed, ordered set of span-field names
	// projected into the top-level "extract" object.
	ExtractFields []string

	// ProcessID overrides os.Getpid, for tests.
	ProcessID func() int
	// ThreadName reports the calling goroutine's logical worker name,
	// if the embedding application tracks one.
	ThreadName func() string
	// DefaultWorkerName is the placeholder thread name this
	// implementation suppresses even when non-empty.
	DefaultWorkerName string
	// TaskID reports the current cooperative task identifier active on
	// ctx, if any. No cooperative task system is wired by default.
	TaskID func(ctx context.Context) (int64, bool)
	// TraceID reports the current distributed trace identifier,
	// hex-encoded. Defaults to reading the active OpenTelemetry span
	// from ctx.
	TraceID func(ctx context.Context) (string, bool)

	// DroppedWrites, if set, is incremented once per writer failure —
	// the implementation-defined counter the error-handling design
	// allows bumping on a dropped write.
	DroppedWrites prometheus.Counter

	// Logger receives a single warning when a call site is refused
	// registration for declaring too many fields. Defaults to the
	// package-level default logger.
	Logger commonlogger.Logger
}

func (c Config) withDefaults() Config {
	if c.Clock == nil {
		c.Clock = SystemClock{}
	}
	if c.WriterFactory == nil {
		c.WriterFactory = NewStderrWriterFactory()
	}
	if c.ProcessID == nil {
		c.ProcessID = defaultProcessID
	}
	if c.TraceID == nil {
		c.TraceID = defaultTraceIDFromContext
	}
	if c.Logger == nil {
		c.Logger = commonlogger.NewDefaultLogger()
	}
	return c
}

func defaultTraceIDFromContext(ctx context.Context) (string, bool) {
	spanCtx := oteltrace.SpanFromContext(ctx).SpanContext()
	if !spanCtx.HasTraceID() {
		return "", false
	}
	return spanCtx.TraceID().String(), true
}
