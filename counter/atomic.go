package counter

import (
	"math"
	"sync/atomic"
)

// Atomic is a counter (int64) which can be shared between goroutines.
type Atomic struct {
	n int64
}

// NewAtomic creates an atomic counter starting at zero
func NewAtomic() (c *Atomic) {
	return &Atomic{}
}

// Increment adds one and returns the new value.
// A plain atomic add would wrap at the limit so a CAS loop is used instead.
func (c *Atomic) Increment() (n int64, err error) {
	for {
		old := atomic.LoadInt64(&c.n)
		if old == math.MaxInt64 {
			return old, ErrOverflow
		}

		if atomic.CompareAndSwapInt64(&c.n, old, old+1) {
			return old + 1, nil
		}
	}
}

// Value returns the current value
func (c *Atomic) Value() (n int64) {
	return atomic.LoadInt64(&c.n)
}
