// Package bench runs named benchmark functions outside of "go test" and
// exports their results as JSON reports.
package bench

import (
	"errors"
	"testing"

	"github.com/kadirahq/testbench/counter"
)

var (
	// ErrEmptyName is returned when a benchmark is registered without a name
	ErrEmptyName = errors.New("benchmark name cannot be empty")

	// ErrDuplicate is returned when a benchmark name is already registered
	ErrDuplicate = errors.New("benchmark already registered")
)

// Benchmark is a named benchmark function
type Benchmark struct {
	Name string
	Fn   func(b *testing.B)
}

// Suite is an ordered set of benchmarks with unique names
type Suite struct {
	list  []Benchmark
	names map[string]bool
}

// NewSuite creates an empty suite
func NewSuite() (s *Suite) {
	return &Suite{names: map[string]bool{}}
}

// Register adds a benchmark to the end of the suite
func (s *Suite) Register(name string, fn func(b *testing.B)) (err error) {
	if name == "" {
		return ErrEmptyName
	}

	if s.names[name] {
		return ErrDuplicate
	}

	s.names[name] = true
	s.list = append(s.list, Benchmark{Name: name, Fn: fn})

	return nil
}

// Benchmarks returns registered benchmarks in registration order
func (s *Suite) Benchmarks() (list []Benchmark) {
	list = make([]Benchmark, len(s.list))
	copy(list, s.list)
	return list
}

// Default returns the suite run by the testbench command
func Default() (s *Suite) {
	s = NewSuite()
	s.Register("InvokeOp1000", InvokeOp1000)
	s.Register("InvokeAtomicOp1000", InvokeAtomicOp1000)
	return s
}

// InvokeOp1000 creates a counter and increments it 1000 times per op.
func InvokeOp1000(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		c := counter.New()

		var n int64
		var err error
		for j := 0; j < 1000; j++ {
			if n, err = c.Increment(); err != nil {
				b.Fatal(err)
			}
		}

		if n != 1000 {
			b.Fatal("wrong value", n)
		}
	}
}

// InvokeAtomicOp1000 is InvokeOp1000 using an atomic counter.
func InvokeAtomicOp1000(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		c := counter.NewAtomic()

		var n int64
		var err error
		for j := 0; j < 1000; j++ {
			if n, err = c.Increment(); err != nil {
				b.Fatal(err)
			}
		}

		if n != 1000 {
			b.Fatal("wrong value", n)
		}
	}
}
