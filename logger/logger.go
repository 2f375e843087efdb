// Package logger prints levelled log lines in the form "(level) name: [args]".
// Levels are plain strings which can be enabled or disabled at runtime.
// The "trace" level is enabled when the trace env variable is set.
package logger

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	goerr "github.com/go-errors/errors"
)

var (
	output = log.New(os.Stdout, "", log.LstdFlags)

	mtx    sync.RWMutex
	name   = "app"
	levels = map[string]bool{
		"info":  true,
		"error": true,
		"debug": true,
		"time":  true,
	}
)

func init() {
	if os.Getenv("trace") != "" {
		levels["trace"] = true
	}
}

// SetName changes the name printed after the level
func SetName(n string) {
	mtx.Lock()
	name = n
	mtx.Unlock()
}

// Enable starts printing logs with given level
func Enable(level string) {
	mtx.Lock()
	levels[level] = true
	mtx.Unlock()
}

// Disable stops printing logs with given level
func Disable(level string) {
	mtx.Lock()
	delete(levels, level)
	mtx.Unlock()
}

// Enabled reports whether logs with given level are printed
func Enabled(level string) (ok bool) {
	mtx.RLock()
	ok = levels[level]
	mtx.RUnlock()
	return ok
}

// Print prints a log line if the level is enabled.
func Print(level string, args ...interface{}) {
	if Enabled(level) {
		output.Print(head(level) + ": " + list(args...))
	}
}

// Info prints important information.
func Info(args ...interface{}) {
	if Enabled("info") {
		output.Print(colblu(head("info")) + ": " + list(args...))
	}
}

// Debug prints debug messages.
func Debug(args ...interface{}) {
	if Enabled("debug") {
		output.Print(colyel(head("debug")) + ": " + list(args...))
	}
}

// Trace prints verbose debug messages.
func Trace(args ...interface{}) {
	Print("trace", args...)
}

// Error prints the error after args.
// Errors created with go-errors are printed with their stack.
func Error(err error, args ...interface{}) {
	if !Enabled("error") {
		return
	}

	output.Print(colred(head("error")) + ": " + list(args...))

	var stacked *goerr.Error
	if errors.As(err, &stacked) {
		output.Print(stacked.ErrorStack())
	} else if err != nil {
		output.Print(err.Error())
	}
}

// Time prints time elapsed since start if it took at least min.
func Time(start time.Time, min time.Duration, args ...interface{}) {
	if !Enabled("time") {
		return
	}

	d := time.Since(start)
	if d < min {
		return
	}

	ms := float64(d) / float64(time.Millisecond)
	output.Print(colcya(head("time")) + ": " + fmt.Sprintf("%.3fms ", ms) + list(args...))
}

// list formats args as "[a b c]"
func list(args ...interface{}) string {
	return "[" + strings.TrimSuffix(fmt.Sprintln(args...), "\n") + "]"
}

func head(level string) string {
	mtx.RLock()
	n := name
	mtx.RUnlock()
	return "(" + level + ") " + n
}

func colred(s string) string { return "\033[31m" + s + "\033[0m" }
func colyel(s string) string { return "\033[33m" + s + "\033[0m" }
func colblu(s string) string { return "\033[34m" + s + "\033[0m" }
func colcya(s string) string { return "\033[36m" + s + "\033[0m" }
