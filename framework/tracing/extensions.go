package tracing

import "sync"

// Extensions is the per-span extension bag a Layer installs state into
// on span creation. It is the Go stand-in for the originating
// framework's type-keyed extension map: this core only ever stores one
// value in it (a *spanfields.Store), so a string-keyed map guarded by a
// mutex is simpler than a reflect.Type-keyed registry and carries the
// same contract.
type Extensions struct {
	mu sync.RWMutex
	m  map[string]interface{}
}

// NewExtensions returns an empty extension bag.
func NewExtensions() *Extensions {
	return &Extensions{m: make(map[string]interface{})}
}

// GetOrInsert returns the value stored under key, constructing it with
// ctor on first access. Safe for concurrent use.
func (e *Extensions) GetOrInsert(key string, ctor func() interface{}) interface{} {
	e.mu.RLock()
	if v, ok := e.m[key]; ok {
		e.mu.RUnlock()
		return v
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if v, ok := e.m[key]; ok {
		return v
	}
	v := ctor()
	e.m[key] = v
	return v
}

// Get returns the value stored under key, if any.
func (e *Extensions) Get(key string) (interface{}, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.m[key]
	return v, ok
}
