package monitor

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/kadirahq/testbench/logger"
	"github.com/kadirahq/testbench/vtimer"
)

// Type is the metric type
type Type uint8

// Metric types
const (
	Gauge Type = iota
	Counter
	Rate
)

var (
	// default metric store
	store = newStore("app")
)

// New creates a sub collection using the default metric store
func New(head string) (s *Store) {
	return store.New(head)
}

//   Store
// ---------

// Store is a collection of metrics. Keys are prefixed with
// the head of the store ("app.bench:runs").
type Store struct {
	mtx  sync.RWMutex
	head string
	vals map[string]metric
	subs map[string]*Store
}

func newStore(head string) *Store {
	return &Store{
		head: head,
		vals: map[string]metric{},
		subs: map[string]*Store{},
	}
}

// New returns a child store by extending the header
func (s *Store) New(head string) (sub *Store) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if sub, ok := s.subs[head]; ok {
		return sub
	}

	sub = newStore(s.head + "." + head)
	s.subs[head] = sub

	return sub
}

// Register a new metric to measure later
func (s *Store) Register(k string, t Type) {
	k = s.head + ":" + k

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.vals[k]; ok {
		return
	}

	switch t {
	case Gauge:
		s.vals[k] = &gauge{}
	case Counter:
		s.vals[k] = &counter{}
	case Rate:
		s.vals[k] = &rate{}
	}
}

// Track records a new value for a metric. Unregistered
// metrics are tracked as counters.
func (s *Store) Track(k string, n int64) {
	k = s.head + ":" + k

	s.mtx.RLock()
	m, ok := s.vals[k]
	s.mtx.RUnlock()

	if !ok {
		logger.Debug("unregistered key", k)

		s.mtx.Lock()
		if m, ok = s.vals[k]; !ok {
			m = &counter{}
			s.vals[k] = m
		}
		s.mtx.Unlock()
	}

	m.Track(n)
}

// Values returns all values as a map. Reading a value resets it.
func (s *Store) Values() (res map[string]int64) {
	res = map[string]int64{}

	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for k, m := range s.vals {
		res[k] = m.Value()
	}

	for _, sub := range s.subs {
		for k, v := range sub.Values() {
			res[k] = v
		}
	}

	return res
}

//   metric
// ----------

type metric interface {
	Value() (val int64)
	Track(n int64)
}

//   gauge
// ---------

type gauge struct {
	val int64
}

func (c *gauge) Value() (val int64) {
	return atomic.SwapInt64(&c.val, 0)
}

func (c *gauge) Track(n int64) {
	atomic.StoreInt64(&c.val, n)
}

//   counter
// -----------

type counter struct {
	val int64
}

func (c *counter) Value() (val int64) {
	return atomic.SwapInt64(&c.val, 0)
}

func (c *counter) Track(n int64) {
	atomic.AddInt64(&c.val, n)
}

//   rate
// --------

// rate is the tracked total per second since the first
// value was tracked (or since the last read).
type rate struct {
	mtx sync.Mutex
	val int64
	ts0 int64
}

func (c *rate) Value() (val int64) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.ts0 == 0 {
		return 0
	}

	now := vtimer.Now()
	secs := (now - c.ts0) / int64(time.Second)
	if secs <= 0 {
		return 0
	}

	val = c.val / secs
	c.ts0 = now
	c.val = 0

	return val
}

func (c *rate) Track(n int64) {
	c.mtx.Lock()

	c.val += n
	if c.ts0 == 0 {
		c.ts0 = vtimer.Now()
	}

	c.mtx.Unlock()
}
