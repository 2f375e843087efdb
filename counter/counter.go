// Package counter provides integer counters which start at zero and
// return the new value every time they are incremented.
package counter

import (
	"errors"
	"math"
)

var (
	// ErrOverflow is returned when the counter is already at math.MaxInt64.
	// The counter keeps its value and every further call fails the same way.
	ErrOverflow = errors.New("counter overflow")
)

// Counter is a counter (int64). It is not safe for concurrent use,
// use Atomic when an instance is shared between goroutines.
type Counter struct {
	n int64
}

// New creates a counter starting at zero
func New() (c *Counter) {
	return &Counter{}
}

// Increment adds one and returns the new value
func (c *Counter) Increment() (n int64, err error) {
	if c.n == math.MaxInt64 {
		return c.n, ErrOverflow
	}

	c.n++
	return c.n, nil
}

// Value returns the current value
func (c *Counter) Value() (n int64) {
	return c.n
}
