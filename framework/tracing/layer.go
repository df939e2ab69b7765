package tracing

import "context"

// Interest is a Layer's answer to RegisterCallsite: whether it wants to
// see events or span activity from that call site at all. It exists
// because the originating framework can skip the entire visit-and-format
// cost for call sites a layer has declared no interest in; this
// implementation keeps the same contract even though, today, the only
// Layer (framework/spanlogger) uses it solely for its overflow case.
type Interest int

const (
	Always Interest = iota
	Never
)

// Layer is the hook set a subscriber implements to observe span
// lifecycle and event emission. Registry dispatches to every registered
// Layer.
type Layer interface {
	// RegisterCallsite is invoked once, on first observation of a call
	// site (event or span). A layer must never return Never for a span
	// call site: filtering a span would hide its fields from nested
	// events.
	RegisterCallsite(meta *Metadata) Interest
	// OnNewSpan is invoked when a span is entered for the first time,
	// after its Extensions bag has been allocated but before any
	// attributes have been recorded into it.
	OnNewSpan(ctx context.Context, span *Span, attrs func(Visitor))
	// OnRecord is invoked on an explicit re-record against an
	// already-open span.
	OnRecord(ctx context.Context, span *Span, values func(Visitor))
	// OnEvent is invoked for every event visible to this layer.
	OnEvent(ctx context.Context, event *Event)
}
