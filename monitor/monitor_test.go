package monitor

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/kadirahq/testbench/vtimer"
)

func TestNew(t *testing.T) {
	if s := New("test"); s == nil {
		t.Fatal("s shouldn't be nil")
	}

	if New("test") != New("test") {
		t.Fatal("same head should return the same store")
	}
}

func TestTrack(t *testing.T) {
	s := New("track")
	s.Register("foo", Counter)
	s.Track("foo", 100)
	s.Track("foo", 20)

	m := s.vals["app.track:foo"]
	if m == nil {
		t.Fatal("m shouldn't be nil")
	}

	if m.Value() != 120 {
		t.Fatal("incorrect value")
	}

	if m.Value() != 0 {
		t.Fatal("reading should reset the value")
	}
}

func TestGauge(t *testing.T) {
	s := newStore("g")
	s.Register("ns", Gauge)
	s.Track("ns", 5)
	s.Track("ns", 7)

	if got := s.Values()["g:ns"]; got != 7 {
		t.Fatal("incorrect value", got)
	}
}

func TestRate(t *testing.T) {
	vtimer.Use(vtimer.Test)
	defer vtimer.Use(vtimer.Real)
	vtimer.Set(int64(time.Hour))

	s := newStore("r")
	s.Register("ops", Rate)
	s.Track("ops", 300)

	vtimer.Add(3 * time.Second)

	if got := s.Values()["r:ops"]; got != 100 {
		t.Fatal("incorrect value", got)
	}
}

func TestUnregistered(t *testing.T) {
	s := newStore("u")
	s.Track("bar", 3)
	s.Track("bar", 3)

	if got := s.Values()["u:bar"]; got != 6 {
		t.Fatal("unregistered keys should count", got)
	}
}

func TestValuesWithSubs(t *testing.T) {
	s := newStore("root")
	sub := s.New("bench")
	s.Register("a", Counter)
	sub.Register("b", Gauge)
	s.Track("a", 1)
	sub.Track("b", 2)

	exp := map[string]int64{
		"root:a":       1,
		"root.bench:b": 2,
	}

	if diff := cmp.Diff(exp, s.Values()); diff != "" {
		t.Fatal("values mismatch (-exp +got):\n" + diff)
	}
}
