package tracing

// Event is one point-in-time log record: metadata plus a callback that
// replays its fields to a Visitor. It belongs to the innermost
// enclosing span of whatever scope it is recorded under, if any.
type Event struct {
	Meta   *Metadata
	record func(Visitor)
}

// NewEvent builds an Event. record is invoked once per call to Record,
// and must call back into the visitor once per declared field, in the
// order declared in Meta.Fields.
func NewEvent(meta *Metadata, record func(Visitor)) *Event {
	return &Event{Meta: meta, record: record}
}

// Record replays the event's fields into v.
func (e *Event) Record(v Visitor) {
	if e.record != nil {
		e.record(v)
	}
}
