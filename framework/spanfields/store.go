// Package spanfields implements the per-span field accumulator
// installed into a span's extension bag on creation: a concurrent
// name-to-value map with last-write-wins overwrite semantics.
package spanfields

import (
	"sync"

	"github.com/go-spanlog/spanlog/framework/tracing"
)

// extensionKey is the key this package's Store is installed under in a
// span's tracing.Extensions bag.
const extensionKey = "spanfields.store"

// Store is one per live span. Tracing frameworks generally permit
// recording against a span from a different goroutine than the one
// that created it, so reads and writes must tolerate concurrent
// access from multiple callers; sync.Map gives that without a
// dedicated lock, matching the "concurrent map with get-or-insert and
// insert" contract without needing a third-party lock-free map — none
// of the example repos in the retrieval pack vendors one.
type Store struct {
	fields sync.Map // map[string]tracing.Value
}

// NewStore returns an empty field store.
func NewStore() *Store {
	return &Store{}
}

// Install installs a fresh Store into ext under the standard key,
// returning the existing one if already present (idempotent, matching
// the extension bag's GetOrInsert contract).
func Install(ext *tracing.Extensions) *Store {
	v := ext.GetOrInsert(extensionKey, func() interface{} { return NewStore() })
	return v.(*Store)
}

// Lookup returns the Store installed in ext, if any.
func Lookup(ext *tracing.Extensions) (*Store, bool) {
	v, ok := ext.Get(extensionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Store)
	return s, ok
}

// Record applies a batch of field assignments, overwriting any
// existing value for the same name.
func (s *Store) Record(fields map[string]tracing.Value) {
	for name, v := range fields {
		s.fields.Store(name, v)
	}
}

// Set overwrites a single field.
func (s *Store) Set(name string, v tracing.Value) {
	s.fields.Store(name, v)
}

// Range visits every (name, value) pair. Order is unspecified.
// Concurrent writes during Range are safe (sync.Map's scan-with-pinning
// guard) but may or may not be observed by the in-flight Range call.
func (s *Store) Range(f func(name string, v tracing.Value)) {
	s.fields.Range(func(k, v interface{}) bool {
		f(k.(string), v.(tracing.Value))
		return true
	})
}
