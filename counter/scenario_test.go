package counter

import "testing"

// Counting scenarios run as part of the build.

func TestGivenCounterWhenIncrementThenOne(t *testing.T) {
	c := New()

	n, err := c.Increment()
	if err != nil {
		t.Fatal(err)
	}

	if n != 1 {
		t.Fatal("the last value returned from Increment should be 1, got", n)
	}
}

func TestGivenIncrementedWhenIncrementAgainThenTwo(t *testing.T) {
	c := New()

	if _, err := c.Increment(); err != nil {
		t.Fatal(err)
	}

	last, err := c.Increment()
	if err != nil {
		t.Fatal(err)
	}

	if last != 2 {
		t.Fatal("the last value returned from Increment should be 2, got", last)
	}
}

func TestGivenCounterWhenIncrement1000TimesThen1000(t *testing.T) {
	c := New()

	var last int64
	for i := 0; i < 1000; i++ {
		n, err := c.Increment()
		if err != nil {
			t.Fatal(err)
		}
		last = n
	}

	if last != 1000 {
		t.Fatal("the last value returned from Increment should be 1000, got", last)
	}
}

func TestNthIncrementReturnsN(t *testing.T) {
	for _, n := range []int64{0, 1, 2, 7, 64, 1000} {
		c := New()

		var last int64
		for i := int64(0); i < n; i++ {
			last, _ = c.Increment()
		}

		if last != n || c.Value() != n {
			t.Fatal("wrong value after", n, "increments:", last)
		}
	}
}
