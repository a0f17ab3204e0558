// Package logger is skimma's diagnostics channel. Extracted text goes to
// stdout; everything here goes to stderr and stays silent unless verbose
// mode is on, so piped output never picks up pipeline chatter.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose toggles diagnostic output for the whole process.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether diagnostics are being emitted.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects diagnostics away from stderr, primarily for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// logf prints one tagged line when verbose mode is on.
func logf(tag, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, "["+tag+"] "+format+"\n", args...)
}

// Debug records pipeline detail: backend attempts, cache population,
// watcher events.
func Debug(format string, args ...any) {
	logf("DEBUG", format, args...)
}

// Info records notable outcomes, such as which backend won a ladder.
func Info(format string, args ...any) {
	logf("INFO", format, args...)
}

// Warn records recoverable trouble, such as a backend failing over.
func Warn(format string, args ...any) {
	logf("WARN", format, args...)
}
