// Package vtimer gives the time used to stamp reports and time rates.
// Tests can swap in a manually driven clock.
package vtimer

import (
	"sync/atomic"
	"time"
)

var (
	// Real is the wall clock
	Real Clock = realClock{}

	// Test is a manual clock, it only moves with Set or Add
	Test = &testClock{}

	current atomic.Value
)

func init() {
	Use(Real)
}

// Clock gives the time in unix nanoseconds
type Clock interface {
	Now() (ts int64)
}

type realClock struct{}

func (realClock) Now() (ts int64) {
	return time.Now().UnixNano()
}

type testClock struct {
	ts int64
}

func (c *testClock) Now() (ts int64) {
	return atomic.LoadInt64(&c.ts)
}

type holder struct{ c Clock }

// Now returns current time
func Now() (ts int64) {
	return current.Load().(holder).c.Now()
}

// Use changes clock in use
func Use(c Clock) {
	current.Store(holder{c})
}

// Set changes the time for the test clock
func Set(ts int64) {
	atomic.StoreInt64(&Test.ts, ts)
}

// Add moves the test clock forward
func Add(d time.Duration) {
	atomic.AddInt64(&Test.ts, int64(d))
}
