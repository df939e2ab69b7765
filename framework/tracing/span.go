package tracing

import "github.com/google/uuid"

// Id is a span's opaque, process-unique identity.
type Id struct {
	val string
}

// NewId allocates a fresh span identity.
func NewId() Id {
	return Id{val: uuid.NewString()}
}

func (id Id) String() string { return id.val }

// Span is a timed, named region carrying fields. The Extensions bag is
// where a Layer installs per-span state (the SpanFieldStore) on
// creation; the bag outlives individual on_record calls for the life of
// the span.
type Span struct {
	ID         Id
	Meta       *Metadata
	Extensions *Extensions
}

// NewSpan constructs a Span with a fresh identity and an empty
// extension bag ready for a Layer to populate.
func NewSpan(meta *Metadata) *Span {
	return &Span{
		ID:         NewId(),
		Meta:       meta,
		Extensions: NewExtensions(),
	}
}
