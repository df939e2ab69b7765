package tracing

import "context"

// Scope is the ordered chain of spans currently enclosing execution on
// the calling goroutine, root-first. Go has no thread-local span stack,
// so the scope is threaded explicitly through context.Context — the
// idiomatic replacement, and the same convention OpenTelemetry's own
// trace.SpanFromContext uses.
type Scope struct {
	spans []*Span // root-first
}

type scopeKey struct{}

// FromContext returns the scope carried by ctx, or an empty scope if
// none has been attached yet.
func FromContext(ctx context.Context) *Scope {
	if s, ok := ctx.Value(scopeKey{}).(*Scope); ok {
		return s
	}
	return &Scope{}
}

// Spans returns the chain of enclosing spans, outermost first.
func (s *Scope) Spans() []*Span {
	if s == nil {
		return nil
	}
	return s.spans
}

// Leaf returns the innermost span, or nil if the scope is empty.
func (s *Scope) Leaf() *Span {
	if s == nil || len(s.spans) == 0 {
		return nil
	}
	return s.spans[len(s.spans)-1]
}

// Enter returns a context carrying span appended to the current scope
// as the new innermost entry. The parent's scope is never mutated.
func Enter(ctx context.Context, span *Span) context.Context {
	parent := FromContext(ctx)
	next := make([]*Span, len(parent.spans)+1)
	copy(next, parent.spans)
	next[len(parent.spans)] = span
	return context.WithValue(ctx, scopeKey{}, &Scope{spans: next})
}
