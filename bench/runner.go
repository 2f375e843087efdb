package bench

import (
	"errors"
	"regexp"
	"runtime"
	"strings"
	"testing"
	"time"

	goerr "github.com/go-errors/errors"
	"github.com/kadirahq/testbench/logger"
	"github.com/kadirahq/testbench/monitor"
	"github.com/kadirahq/testbench/vtimer"
)

const (
	// DefaultTitle is used when Options.Title is empty
	DefaultTitle = "AllBenchmarks"
)

var (
	// ErrBenchFailed is returned by Run when at least one benchmark failed
	ErrBenchFailed = errors.New("benchmark failed")

	// ErrBadTitle is returned when the title cannot be used as a file name
	ErrBadTitle = errors.New("title cannot contain path separators")
)

// Options for the benchmark runner
type Options struct {
	// ArtifactsPath is the directory to export reports to.
	// Reports are not written to disk when it's empty.
	ArtifactsPath string

	// Filter is a regular expression matched against benchmark names.
	// All benchmarks are run when it's empty.
	Filter string

	// Title names the report and the exported file.
	Title string

	// Metrics is the metric store used to track runs.
	// A child of the default store is used when nil.
	Metrics *monitor.Store
}

// Runner runs benchmarks of a suite one after the other
type Runner struct {
	opts   Options
	suite  *Suite
	filter *regexp.Regexp
	mon    *monitor.Store
}

// NewRunner creates a runner for the suite
func NewRunner(s *Suite, opts Options) (r *Runner, err error) {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}

	if strings.ContainsAny(opts.Title, `/\`) || opts.Title == "." || opts.Title == ".." {
		return nil, goerr.Wrap(ErrBadTitle, 0)
	}

	r = &Runner{opts: opts, suite: s, mon: opts.Metrics}

	if opts.Filter != "" {
		if r.filter, err = regexp.Compile(opts.Filter); err != nil {
			return nil, goerr.Wrap(err, 0)
		}
	}

	if r.mon == nil {
		r.mon = monitor.New("bench")
	}

	r.mon.Register("runs", monitor.Counter)
	r.mon.Register("ops", monitor.Counter)
	r.mon.Register("failures", monitor.Counter)
	r.mon.Register("ops_rate", monitor.Rate)

	return r, nil
}

// Selected returns benchmarks matching the filter
func (r *Runner) Selected() (list []Benchmark) {
	for _, b := range r.suite.Benchmarks() {
		if r.filter == nil || r.filter.MatchString(b.Name) {
			list = append(list, b)
		}
	}

	return list
}

// Run runs selected benchmarks and builds a report. When a benchmark
// fails the report is still returned together with ErrBenchFailed.
func (r *Runner) Run() (rep *Report, err error) {
	start := time.Now()
	defer logger.Time(start, 0, r.opts.Title)

	rep = &Report{
		Title:       r.opts.Title,
		GeneratedAt: vtimer.Now(),
		Host: Host{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			GoVersion: runtime.Version(),
			NumCPU:    runtime.NumCPU(),
		},
		Benchmarks: []Result{},
	}

	failed := 0
	for _, b := range r.Selected() {
		logger.Debug("running", b.Name)

		br := testing.Benchmark(b.Fn)
		logger.Trace(b.Name, br.T, br.N, br.MemAllocs, br.MemBytes)

		res := newResult(b.Name, br)
		rep.Benchmarks = append(rep.Benchmarks, res)

		r.mon.Track("runs", 1)
		if res.Failed {
			failed++
			r.mon.Track("failures", 1)
			logger.Error(goerr.Errorf("%s: %w", b.Name, ErrBenchFailed))
			continue
		}

		r.mon.Register(b.Name+".ns_op", monitor.Gauge)
		r.mon.Track(b.Name+".ns_op", res.NsPerOp)
		r.mon.Track("ops", int64(res.N))
		r.mon.Track("ops_rate", int64(res.N))

		logger.Info(res.String())
	}

	rep.Metrics = r.mon.Values()

	if failed > 0 {
		return rep, goerr.Wrap(ErrBenchFailed, 0)
	}

	return rep, nil
}
