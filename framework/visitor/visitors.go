package visitor

import (
	"strings"

	"github.com/go-spanlog/spanlog/framework/callsite"
	"github.com/go-spanlog/spanlog/framework/jsonwriter"
	"github.com/go-spanlog/spanlog/framework/spanfields"
	"github.com/go-spanlog/spanlog/framework/tracing"
)

// logPrefix marks bookkeeping fields injected by adapters wrapping
// events from legacy logging APIs (e.g. "log.target"); these duplicate
// top-level members and are excluded from both the fields object and
// the presence probe.
const logPrefix = "log."

func isBookkeeping(name string) bool {
	return strings.HasPrefix(name, logPrefix)
}

// RecordIntoSpan populates a SpanFieldStore on span creation or an
// explicit record call. It applies no filter: every visited field is
// inserted, overwriting any prior value for the same name.
type RecordIntoSpan struct {
	Store *spanfields.Store
}

func (r RecordIntoSpan) VisitField(name string, _ int, value tracing.Value) {
	r.Store.Set(name, value)
}

// ExtractMessage finds the one field named "message" that is not
// shadowed by a later duplicate at the same call site, and accepts only
// the first such field. Message extraction must run to completion
// before SkipMessageAndLogMeta visits the same event, since the JSON
// writer is streaming and cannot revisit the "message" key once fields
// emission has started.
type ExtractMessage struct {
	Skip *callsite.Record

	found bool
	value tracing.Value
}

func (e *ExtractMessage) VisitField(name string, index int, value tracing.Value) {
	if e.found || name != "message" {
		return
	}
	if e.Skip != nil && e.Skip.Skipped(index) {
		return
	}
	e.found = true
	e.value = value
}

// Found reports whether a message field was accepted.
func (e *ExtractMessage) Found() bool { return e.found }

// Value returns the accepted message value. Valid only if Found.
func (e *ExtractMessage) Value() tracing.Value { return e.value }

// SkipMessageAndLogMeta emits every event field other than "message",
// bookkeeping fields, and call-site-duplicated fields into the "fields"
// JSON object already opened on w.
type SkipMessageAndLogMeta struct {
	Skip *callsite.Record
	W    *jsonwriter.Writer
}

func (s *SkipMessageAndLogMeta) VisitField(name string, index int, value tracing.Value) {
	if name == "message" || isBookkeeping(name) {
		return
	}
	if s.Skip != nil && s.Skip.Skipped(index) {
		return
	}
	s.W.Key(name)
	WriteCoerced(s.W, value)
}

// PresenceProbe decides, without serializing anything, whether the
// "fields" subobject should be emitted at all.
type PresenceProbe struct {
	Skip *callsite.Record

	present bool
}

func (p *PresenceProbe) VisitField(name string, index int, _ tracing.Value) {
	if p.present || name == "message" || isBookkeeping(name) {
		return
	}
	if p.Skip != nil && p.Skip.Skipped(index) {
		return
	}
	p.present = true
}

// Present reports whether any qualifying field was observed.
func (p *PresenceProbe) Present() bool { return p.present }
