// Package extract implements the per-event ExtractBuffer: a fixed-slot
// buffer that captures the latest value of each configured extract key
// as spans are walked root-to-leaf, so a designated subset of span
// fields can be projected into a top-level "extract" object for log
// indexing.
package extract

import (
	"fmt"
	"sync"

	"github.com/go-spanlog/spanlog/framework/jsonwriter"
	"github.com/go-spanlog/spanlog/framework/tracing"
	"github.com/go-spanlog/spanlog/framework/visitor"
)

// Buffer is constructed once per formatted event (or reused across
// events from a pooled formatter, via Reset) for a fixed, known set of
// extract key names.
//
// The buffer is written to while the JSON serializer is mid-walk over
// an immutable-borrowed span field set, which the Go type system cannot
// see is actually a window of exclusive ownership. A plain mutex with
// TryLock expresses that contract explicitly: a lock that would block
// means two goroutines are touching one event's buffer at once, which
// is a caller bug (an ExtractBuffer must never be shared across
// goroutines), not contention to wait out.
type Buffer struct {
	names []string
	index map[string]int
	slots []tracing.Value
	set   []bool

	touched bool
	mu      sync.Mutex
}

// NewBuffer returns a Buffer for the given ordered, fixed extract-key
// set.
func NewBuffer(names []string) *Buffer {
	idx := make(map[string]int, len(names))
	for i, n := range names {
		idx[n] = i
	}
	return &Buffer{
		names: names,
		index: idx,
		slots: make([]tracing.Value, len(names)),
		set:   make([]bool, len(names)),
	}
}

// Set stores value in the slot for name if name is one of the
// configured extract keys, overwriting any prior value, and marks the
// buffer touched. A no-op if name is not configured for extraction.
func (b *Buffer) Set(name string, value tracing.Value) {
	i, ok := b.index[name]
	if !ok {
		return
	}
	if !b.mu.TryLock() {
		panic(fmt.Sprintf("extract.Buffer: concurrent access while setting %q; an ExtractBuffer must not be shared across goroutines", name))
	}
	defer b.mu.Unlock()
	b.slots[i] = value
	b.set[i] = true
	b.touched = true
}

// Touched reports whether any slot has been written.
func (b *Buffer) Touched() bool {
	return b.touched
}

// Reset clears every slot for reuse across events, retaining the
// configured name set and backing arrays.
func (b *Buffer) Reset() {
	for i := range b.slots {
		b.slots[i] = tracing.Value{}
		b.set[i] = false
	}
	b.touched = false
}

// WriteTo emits a JSON object containing only the populated slots, in
// configured-name order, to w.
func (b *Buffer) WriteTo(w *jsonwriter.Writer) {
	w.BeginObject()
	for i, name := range b.names {
		if !b.set[i] {
			continue
		}
		w.Key(name)
		visitor.WriteCoerced(w, b.slots[i])
	}
	w.EndObject()
}
