package tracing

import (
	"context"
	"sync"
)

// Registry is the minimal stand-in for a tracing subscriber: it holds
// the set of active Layers and dispatches span lifecycle and event
// calls to each of them, caching each layer's registration interest per
// call site so RegisterCallsite runs at most once per (layer, call
// site) pair.
type Registry struct {
	layers []Layer

	mu       sync.Mutex
	interest map[interestKey]Interest
}

type interestKey struct {
	layer int
	meta  *Metadata
}

// NewRegistry builds a dispatcher over the given layers. Layers are
// notified in the order given.
func NewRegistry(layers ...Layer) *Registry {
	return &Registry{
		layers:   layers,
		interest: make(map[interestKey]Interest),
	}
}

func (r *Registry) interestFor(idx int, meta *Metadata) Interest {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := interestKey{layer: idx, meta: meta}
	if in, ok := r.interest[key]; ok {
		return in
	}
	in := r.layers[idx].RegisterCallsite(meta)
	r.interest[key] = in
	return in
}

// NewSpan opens a span, notifies every interested layer's OnNewSpan, and
// returns a context carrying the extended scope.
func (r *Registry) NewSpan(ctx context.Context, meta *Metadata, attrs func(Visitor)) (context.Context, *Span) {
	span := NewSpan(meta)
	for i, l := range r.layers {
		if r.interestFor(i, meta) == Never {
			continue
		}
		l.OnNewSpan(ctx, span, attrs)
	}
	return Enter(ctx, span), span
}

// Record re-records attributes against an already-open span.
func (r *Registry) Record(ctx context.Context, span *Span, values func(Visitor)) {
	for i, l := range r.layers {
		if r.interestFor(i, span.Meta) == Never {
			continue
		}
		l.OnRecord(ctx, span, values)
	}
}

// Event emits a point-in-time record against the scope carried by ctx.
func (r *Registry) Event(ctx context.Context, meta *Metadata, record func(Visitor)) {
	event := NewEvent(meta, record)
	for i, l := range r.layers {
		if r.interestFor(i, meta) == Never {
			continue
		}
		l.OnEvent(ctx, event)
	}
}
