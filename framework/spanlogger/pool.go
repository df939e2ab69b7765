package spanlogger

import (
	"sync"

	"github.com/go-spanlog/spanlog/framework/eventfmt"
)

// formatterPool is a typed wrapper over sync.Pool. It is this package's
// stand-in for the reusable per-thread formatter plus re-entrancy
// guard: Go has no thread-local storage and goroutines are not pinned
// to OS threads, so "the thread-local buffer" becomes "whatever
// formatter is currently idle in the pool". A nested OnEvent call on
// the same goroutine — the panic-handler-that-logs scenario — finds no
// idle formatter (the outer call's is still checked out) and
// transparently gets a fresh one from New, with no explicit flag to
// set, check, or forget to reset on a panicking exit path.
type formatterPool struct {
	pool sync.Pool
}

func (p *formatterPool) get(new func() *eventfmt.Formatter) *eventfmt.Formatter {
	if v := p.pool.Get(); v != nil {
		return v.(*eventfmt.Formatter)
	}
	return new()
}

func (p *formatterPool) put(f *eventfmt.Formatter) {
	p.pool.Put(f)
}
