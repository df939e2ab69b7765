// Package spanlogger wires the callsite, spanfields, visitor, extract,
// and eventfmt packages into the tracing framework's Layer hooks: it
// owns the re-entrancy-safe formatter pool, the writer factory, and the
// clock.
package spanlogger

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/go-spanlog/spanlog/framework/callsite"
	"github.com/go-spanlog/spanlog/framework/eventfmt"
	commonlogger "github.com/go-spanlog/spanlog/framework/logger"
	"github.com/go-spanlog/spanlog/framework/spanfields"
	"github.com/go-spanlog/spanlog/framework/tracing"
	"github.com/go-spanlog/spanlog/framework/visitor"
)

func defaultProcessID() int { return os.Getpid() }

// Layer implements tracing.Layer: the structured JSON logging
// subscriber. Construct with NewLayer.
type Layer struct {
	cfg      Config
	registry *callsite.Registry

	pool            formatterPool
	nextFormatterID int64
}

// NewLayer builds a Layer from cfg, applying defaults for any
// unconfigured capability.
func NewLayer(cfg Config) *Layer {
	cfg = cfg.withDefaults()
	return &Layer{
		cfg:      cfg,
		registry: callsite.NewRegistry(),
	}
}

func (l *Layer) newFormatter() *eventfmt.Formatter {
	id := atomic.AddInt64(&l.nextFormatterID, 1)
	return eventfmt.New(eventfmt.Options{
		ProcessID:         l.cfg.ProcessID,
		ThreadName:        l.cfg.ThreadName,
		DefaultWorkerName: l.cfg.DefaultWorkerName,
		TaskID:            l.cfg.TaskID,
		TraceID:           l.cfg.TraceID,
		ExtractNames:      l.cfg.ExtractFields,
	}, id)
}

// RegisterCallsite forces the call-site registry to compute and intern
// a Record for meta. Span call sites are always accepted. An event call
// site that overflows the 64-field skip-mask is refused; the refusal is
// logged once and the call site is marked uninteresting.
func (l *Layer) RegisterCallsite(meta *tracing.Metadata) tracing.Interest {
	if _, err := l.registry.RecordFor(meta); err != nil {
		l.cfg.Logger.Warn(context.Background(), "refusing to register call site", commonlogger.Fields{
			"target": meta.Target,
			"error":  err.Error(),
		})
		return tracing.Never
	}
	return tracing.Always
}

// OnNewSpan installs a fresh SpanFieldStore into span and records its
// initial attributes into it.
func (l *Layer) OnNewSpan(_ context.Context, span *tracing.Span, attrs func(tracing.Visitor)) {
	store := spanfields.Install(span.Extensions)
	if attrs != nil {
		attrs(visitor.RecordIntoSpan{Store: store})
	}
}

// OnRecord applies an explicit re-record against an already-open span.
// If the span's SpanFieldStore is somehow absent, the record is
// silently dropped.
func (l *Layer) OnRecord(_ context.Context, span *tracing.Span, values func(tracing.Visitor)) {
	store, ok := spanfields.Lookup(span.Extensions)
	if !ok || values == nil {
		return
	}
	values(visitor.RecordIntoSpan{Store: store})
}

// OnEvent formats event against the scope carried by ctx, then writes
// the finished line under the writer's lock. Formatting completes
// before the writer is ever acquired, so a re-entrant OnEvent call
// triggered synchronously during formatting (a Debug implementation
// that itself logs, for instance) runs its own independent
// acquire-write-release cycle rather than blocking on a lock the outer
// call is still holding. A formatter is borrowed from the pool (or
// freshly allocated if none is idle — which is exactly what happens on
// that re-entrant call, since the outer call's formatter has not yet
// been returned) and returned when done.
func (l *Layer) OnEvent(ctx context.Context, event *tracing.Event) {
	f := l.pool.get(l.newFormatter)
	defer l.pool.put(f)

	now := l.cfg.Clock.Now()
	scope := tracing.FromContext(ctx)

	line := f.Format(now, ctx, event, scope, l.registry)

	lw := l.cfg.WriterFactory()
	err := lw.WriteAll(line)
	lw.Release()

	if err != nil && l.cfg.DroppedWrites != nil {
		l.cfg.DroppedWrites.Inc()
	}
}
