package counter

import (
	"math"
	"testing"
)

func TestIncrement(t *testing.T) {
	c := New()

	for i := int64(1); i <= 5; i++ {
		n, err := c.Increment()
		if err != nil {
			t.Fatal(err)
		}

		if n != i {
			t.Fatal("wrong value", n, i)
		}
	}

	if c.Value() != 5 {
		t.Fatal("wrong value")
	}
}

func TestZeroValue(t *testing.T) {
	var c Counter

	if c.Value() != 0 {
		t.Fatal("wrong initial value")
	}

	if n, err := c.Increment(); err != nil || n != 1 {
		t.Fatal("wrong value", n, err)
	}
}

func TestNeverRepeats(t *testing.T) {
	c := New()
	seen := map[int64]bool{}

	for i := 0; i < 100; i++ {
		n, err := c.Increment()
		if err != nil {
			t.Fatal(err)
		}

		if seen[n] {
			t.Fatal("value returned twice", n)
		}

		seen[n] = true
	}
}

func TestOverflow(t *testing.T) {
	c := &Counter{n: math.MaxInt64 - 1}

	n, err := c.Increment()
	if err != nil {
		t.Fatal(err)
	}

	if n != math.MaxInt64 {
		t.Fatal("wrong value", n)
	}

	for i := 0; i < 2; i++ {
		n, err = c.Increment()
		if err != ErrOverflow {
			t.Fatal("expected overflow error, got", err)
		}

		if n != math.MaxInt64 || c.Value() != math.MaxInt64 {
			t.Fatal("value should not change on overflow", n)
		}
	}
}

func BenchmarkIncrement(b *testing.B) {
	c := New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Increment()
	}
}

func BenchmarkInvokeOp1000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		c := New()
		for j := 0; j < 1000; j++ {
			c.Increment()
		}
	}
}
