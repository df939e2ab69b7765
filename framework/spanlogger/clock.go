package spanlogger

import "time"

// Clock is the time source capability the layer consumes for every
// event timestamp. Tests supply a frozen clock; production code uses
// SystemClock.
type Clock interface {
	Now() time.Time
}

// SystemClock reports the real wall-clock time, in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FrozenClock always reports the same instant. Grounded on the
// originating implementation's own frozen-clock test double.
type FrozenClock struct {
	At time.Time
}

func (f FrozenClock) Now() time.Time { return f.At }
