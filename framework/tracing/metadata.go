// Package tracing provides the minimal span/event framework that the
// logging layer in framework/spanlogger plugs into: metadata, field
// visiting, span scopes carried on context.Context, and a Layer hook
// interface a subscriber can implement.
package tracing

// Level mirrors the small set of severities the logging layer emits.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the upper-case level name used in the JSON output.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// FieldDescriptor names one field declared at a call site, in
// declaration order. The order is significant: it is the index space
// the skip-mask in framework/callsite operates over.
type FieldDescriptor struct {
	Name string
}

// Metadata describes a call site: either an event (a single log line)
// or a span (a named, timed region). A Metadata value is normally
// constructed once per call site (e.g. a package-level var) and its
// pointer identity is the call site's identity for the lifetime of the
// process — mirroring how the originating framework keys call sites off
// a static's address.
type Metadata struct {
	Level  Level
	Target string
	Module string
	File   string
	Line   int
	Fields []FieldDescriptor
	IsSpan bool
	Name   string // span name; empty for events
}
