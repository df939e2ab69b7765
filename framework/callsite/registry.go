// Package callsite implements the process-wide call-site registry: a
// per-call-site bitmap of duplicated field indices plus a monotonic
// numeric call-site ID, computed once on first observation and cached
// for the life of the process.
package callsite

import (
	"fmt"
	"sync"
	"sync/atomic"

	domainerrors "github.com/go-spanlog/spanlog/framework/errors"
	"github.com/go-spanlog/spanlog/framework/tracing"
)

// maxFields is the skip-mask's bit width. A call site declaring more
// fields than this is a registration error, per the fixed 64-bit mask.
const maxFields = 64

// Record is the immutable, process-wide artifact of registering a call
// site. Once created it is never mutated.
type Record struct {
	// SkippedIndices is a bitset of field indices whose name is
	// shadowed by a later field at the same call site. Zero for span
	// call sites, which do not participate in dedup.
	SkippedIndices uint64
	// ID is a monotonic identifier assigned from a process-wide
	// counter starting at 1; 0 is reserved as the "unknown" sentinel
	// used in fallback serialization.
	ID uint32
}

// Skipped reports whether the field at index i is shadowed by a later
// occurrence of the same name at this call site.
func (r *Record) Skipped(i int) bool {
	if i < 0 || i >= maxFields {
		return false
	}
	return r.SkippedIndices&(1<<uint(i)) != 0
}

// Registry lazily computes and caches one Record per call site.
// RecordFor is idempotent: the first caller to observe a given call
// site pays the walking cost, every subsequent caller gets the cached
// Record.
type Registry struct {
	records sync.Map // map[*tracing.Metadata]*Record
	nextID  uint32   // atomic; starts at 1 after the first allocation
}

// NewRegistry returns an empty call-site registry.
func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) allocateID() uint32 {
	return atomic.AddUint32(&r.nextID, 1)
}

// RecordFor returns the Record for meta, computing and interning it on
// first observation. Non-event (span) call sites always receive an ID
// but never a skip-mask. Event call sites declaring more than 64 fields
// fail registration with a domain error; the caller (framework/spanlogger)
// treats this as "not interested" and drops the call site's events.
func (r *Registry) RecordFor(meta *tracing.Metadata) (*Record, error) {
	if v, ok := r.records.Load(meta); ok {
		return v.(*Record), nil
	}

	if meta.IsSpan {
		rec := &Record{ID: r.allocateID()}
		actual, _ := r.records.LoadOrStore(meta, rec)
		return actual.(*Record), nil
	}

	mask, err := computeSkipMask(meta.Fields)
	if err != nil {
		return nil, err
	}
	rec := &Record{SkippedIndices: mask, ID: r.allocateID()}
	actual, _ := r.records.LoadOrStore(meta, rec)
	return actual.(*Record), nil
}

// computeSkipMask walks a call site's declared fields in order,
// tracking the most-recently-seen index for each name. On a name
// collision, the *previous* index is pushed into the skip set so the
// last occurrence wins.
func computeSkipMask(fields []tracing.FieldDescriptor) (uint64, error) {
	if len(fields) > maxFields {
		return 0, registrationOverflow(len(fields))
	}
	lastIndexOf := make(map[string]int, len(fields))
	var mask uint64
	for i, f := range fields {
		if prev, ok := lastIndexOf[f.Name]; ok {
			mask |= 1 << uint(prev)
		}
		lastIndexOf[f.Name] = i
	}
	return mask, nil
}

func registrationOverflow(n int) error {
	return domainerrors.NewUnprocessableEntityError(
		fmt.Sprintf("call site declares %d fields, exceeding the 64-field skip-mask width", n),
		nil,
	)
}
