// Command testbench runs the counter benchmarks and exports a JSON report.
//
//	testbench [-filter regexp] [-title name] [-benchtime d] [artifacts-path]
//
// The report is written to <artifacts-path>/results/<title>-report-full.json.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/kadirahq/testbench/bench"
	"github.com/kadirahq/testbench/logger"
)

var (
	filter    = flag.String("filter", "", "run only benchmarks matching the regexp")
	title     = flag.String("title", bench.DefaultTitle, "report title")
	benchtime = flag.String("benchtime", "", "run each benchmark for duration d or N times with Nx (default 1s)")
)

func main() {
	testing.Init()
	flag.Usage = usage
	flag.Parse()

	logger.SetName("testbench")

	if err := run(flag.Args()); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func run(args []string) (err error) {
	if len(args) > 1 {
		flag.Usage()
		return fmt.Errorf("expected at most one artifacts path, got %d", len(args))
	}

	if *benchtime != "" {
		if err := flag.Set("test.benchtime", *benchtime); err != nil {
			return fmt.Errorf("invalid benchtime %q: %w", *benchtime, err)
		}
	}

	opts := bench.Options{Filter: *filter, Title: *title}
	if len(args) == 1 {
		opts.ArtifactsPath = args[0]
	}

	r, err := bench.NewRunner(bench.Default(), opts)
	if err != nil {
		return err
	}

	// failed runs are exported too
	rep, runErr := r.Run()
	if _, err := r.Export(rep); err != nil {
		return err
	}

	return runErr
}

// usage lists the command's own flags, testing.Init registers test.* flags too
func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "usage: %s [flags] [artifacts-path]\n", os.Args[0])

	flag.VisitAll(func(f *flag.Flag) {
		if strings.HasPrefix(f.Name, "test.") {
			return
		}

		fmt.Fprintf(w, "  -%s\n    \t%s", f.Name, f.Usage)
		if f.DefValue != "" {
			fmt.Fprintf(w, " (default %q)", f.DefValue)
		}
		fmt.Fprintln(w)
	})
}
