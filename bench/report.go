package bench

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"

	goerr "github.com/go-errors/errors"
	"github.com/kadirahq/testbench/fsutils"
	"github.com/kadirahq/testbench/logger"
)

// Host describes the machine the benchmarks ran on
type Host struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	GoVersion string `json:"go_version"`
	NumCPU    int    `json:"num_cpu"`
}

// Result is the outcome of a single benchmark
type Result struct {
	Name        string `json:"name"`
	N           int    `json:"n"`
	TotalNs     int64  `json:"total_ns"`
	NsPerOp     int64  `json:"ns_op"`
	AllocsPerOp int64  `json:"allocs_op"`
	BytesPerOp  int64  `json:"bytes_op"`
	Failed      bool   `json:"failed"`
}

// testing.Benchmark returns a zero result when the benchmark fails
func newResult(name string, br testing.BenchmarkResult) (res Result) {
	return Result{
		Name:        name,
		N:           br.N,
		TotalNs:     int64(br.T),
		NsPerOp:     br.NsPerOp(),
		AllocsPerOp: br.AllocsPerOp(),
		BytesPerOp:  br.AllocedBytesPerOp(),
		Failed:      br.N == 0,
	}
}

func (res Result) String() string {
	if res.Failed {
		return res.Name + "\tFAIL"
	}

	return fmt.Sprintf("%s\t%d\t%d ns/op\t%d B/op\t%d allocs/op",
		res.Name, res.N, res.NsPerOp, res.BytesPerOp, res.AllocsPerOp)
}

// Report collects results of a run
type Report struct {
	Title       string           `json:"title"`
	GeneratedAt int64            `json:"generated_at_unix_ns"`
	Host        Host             `json:"host"`
	Benchmarks  []Result         `json:"benchmarks"`
	Metrics     map[string]int64 `json:"metrics"`
}

// ReportPath returns the path the report is exported to.
// It's empty when no artifacts path was given.
func (r *Runner) ReportPath() (fpath string) {
	if r.opts.ArtifactsPath == "" {
		return ""
	}

	return filepath.Join(r.opts.ArtifactsPath, "results", r.opts.Title+"-report-full.json")
}

// Export writes the report as indented JSON under the artifacts path
// and returns the file path. Nothing is written without an artifacts path.
func (r *Runner) Export(rep *Report) (fpath string, err error) {
	if fpath = r.ReportPath(); fpath == "" {
		return "", nil
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", goerr.Wrap(err, 0)
	}

	if err := fsutils.WriteFile(fpath, append(data, '\n')); err != nil {
		return "", err
	}

	logger.Info("report exported", fpath)

	return fpath, nil
}
