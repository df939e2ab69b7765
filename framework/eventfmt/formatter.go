// Package eventfmt assembles one JSON log line per event: timestamp,
// level, message, fields, spans (with accumulated per-span fields),
// process/thread/task identifiers, source location, trace ID, and the
// extract projection, in the fixed key order the output format
// contract requires.
package eventfmt

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-spanlog/spanlog/framework/callsite"
	"github.com/go-spanlog/spanlog/framework/extract"
	"github.com/go-spanlog/spanlog/framework/jsonwriter"
	"github.com/go-spanlog/spanlog/framework/spanfields"
	"github.com/go-spanlog/spanlog/framework/tracing"
	"github.com/go-spanlog/spanlog/framework/visitor"
)

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// Options are the cross-cutting lookups an EventFormatter consults.
// Every field is optional; a nil hook is treated as "nothing to report"
// so the corresponding key is omitted.
type Options struct {
	// ProcessID returns the process ID to report. Defaults to os.Getpid.
	ProcessID func() int
	// ThreadName returns the calling goroutine's logical worker name, if
	// the embedding application tracks one. DefaultWorkerName is the
	// placeholder value this implementation suppresses, matching the
	// originating framework's suppression of its own async worker name
	// (Go has no equivalent named worker pool by default, so this
	// defaults to empty, meaning "never suppress by name").
	ThreadName        func() string
	DefaultWorkerName string
	// TaskID returns the current cooperative task identifier, if any is
	// active on ctx.
	TaskID func(ctx context.Context) (int64, bool)
	// TraceID returns the current distributed trace identifier,
	// hex-encoded, if a valid trace context is active on ctx.
	TraceID func(ctx context.Context) (string, bool)
	// ExtractNames is the fixed, ordered set of span-field names
	// projected into the top-level "extract" object.
	ExtractNames []string
}

// Formatter assembles one event into a reusable byte buffer. It is not
// safe for concurrent use — the pooling and re-entrancy discipline that
// makes that safe live in framework/spanlogger.
type Formatter struct {
	w          *jsonwriter.Writer
	extractBuf *extract.Buffer
	opts       Options
	ThreadID   int64
}

// New constructs a Formatter. threadID is a process-unique identity for
// whatever goroutine pool slot this Formatter ends up bound to via
// framework/spanlogger's pool — the Go stand-in for an OS thread ID,
// since goroutines are not pinned to OS threads.
func New(opts Options, threadID int64) *Formatter {
	return &Formatter{
		w:          jsonwriter.New(),
		extractBuf: extract.NewBuffer(opts.ExtractNames),
		opts:       opts,
		ThreadID:   threadID,
	}
}

// Format builds the JSON line for event, given the live span scope, and
// returns it. On any internal failure it returns the minimal fallback
// line instead, built without touching the reusable buffer.
//
// The returned slice aliases the Formatter's internal buffer (or, on
// the fallback path, a freshly allocated one) and is only valid until
// the next call to Format — the caller must finish writing it out
// before reusing or returning this Formatter.
func (f *Formatter) Format(now time.Time, ctx context.Context, event *tracing.Event, scope *tracing.Scope, registry *callsite.Registry) []byte {
	if err := f.tryFormat(now, ctx, event, scope, registry); err != nil {
		return fallbackLine(now, event, err)
	}
	return f.w.Bytes()
}

func (f *Formatter) tryFormat(now time.Time, ctx context.Context, event *tracing.Event, scope *tracing.Scope, registry *callsite.Registry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("event formatting panicked: %v", r)
		}
	}()

	rec, rerr := registry.RecordFor(event.Meta)
	if rerr != nil {
		return rerr
	}

	w := f.w
	w.Reset()
	w.BeginObject()

	w.StringField("timestamp", now.UTC().Format(timestampLayout))
	w.StringField("level", event.Meta.Level.String())

	msg := &visitor.ExtractMessage{Skip: rec}
	presence := &visitor.PresenceProbe{Skip: rec}
	event.Record(combinedVisitor{msg, presence})

	w.Key("message")
	if msg.Found() {
		visitor.WriteCoerced(w, msg.Value())
	} else {
		w.WriteString("")
	}

	if presence.Present() {
		w.ObjectField("fields")
		event.Record(&visitor.SkipMessageAndLogMeta{Skip: rec, W: w})
		w.EndObject()
	}

	extractBuf := f.extractBuf
	extractBuf.Reset()
	w.ObjectField("spans")
	for _, span := range scope.Spans() {
		spanRec, serr := registry.RecordFor(span.Meta)
		if serr != nil {
			return serr
		}
		w.ObjectField(fmt.Sprintf("%s#%d", span.Meta.Name, spanRec.ID))
		if store, ok := spanfields.Lookup(span.Extensions); ok {
			store.Range(func(name string, v tracing.Value) {
				w.Key(name)
				visitor.WriteCoerced(w, v)
				extractBuf.Set(name, v)
			})
		}
		w.EndObject()
	}
	w.EndObject() // spans

	pid := f.processID()
	if pid != 1 {
		w.IntField("process_id", int64(pid))
	}
	w.IntField("thread_id", f.ThreadID)

	if f.opts.ThreadName != nil {
		if name := f.opts.ThreadName(); name != "" && name != f.opts.DefaultWorkerName {
			w.StringField("thread_name", name)
		}
	}
	if f.opts.TaskID != nil {
		if taskID, ok := f.opts.TaskID(ctx); ok {
			w.IntField("task_id", taskID)
		}
	}

	w.StringField("target", event.Meta.Target)
	if event.Meta.Module != "" && event.Meta.Module != event.Meta.Target {
		w.StringField("module", event.Meta.Module)
	}
	if event.Meta.File != "" {
		if event.Meta.Line > 0 {
			w.StringField("src", fmt.Sprintf("%s:%d", event.Meta.File, event.Meta.Line))
		} else {
			w.StringField("src", event.Meta.File)
		}
	}
	if f.opts.TraceID != nil {
		if traceID, ok := f.opts.TraceID(ctx); ok {
			w.StringField("trace_id", traceID)
		}
	}
	if extractBuf.Touched() {
		w.Key("extract")
		extractBuf.WriteTo(w)
	}

	w.EndObject() // top-level
	w.WriteRawByte('\n')
	return nil
}

func (f *Formatter) processID() int {
	if f.opts.ProcessID != nil {
		return f.opts.ProcessID()
	}
	return os.Getpid()
}

// combinedVisitor fans a single Record walk out to two visitors in one
// pass, so message extraction and the fields-presence probe share the
// same traversal of an event's fields.
type combinedVisitor struct {
	msg      *visitor.ExtractMessage
	presence *visitor.PresenceProbe
}

func (c combinedVisitor) VisitField(name string, index int, value tracing.Value) {
	c.msg.VisitField(name, index, value)
	c.presence.VisitField(name, index, value)
}
