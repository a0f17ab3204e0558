// Package command runs external extraction tools behind a spawn throttle.
package command

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
	"github.com/custodia-labs/skimma-cli/internal/logger"
)

// Ensure Runner implements the interface.
var _ driven.CommandRunner = (*Runner)(nil)

// DefaultSpawnRate is the default child processes per second.
const DefaultSpawnRate = 4.0

// Runner executes external tools behind a token bucket so a burst of
// uncached extraction requests cannot fork-bomb the host.
type Runner struct {
	bucket *rate.Limiter
}

// New creates a runner spawning at most perSecond processes per second
// with the given burst. Non-positive values fall back to DefaultSpawnRate
// and a burst of GOMAXPROCS.
func New(perSecond float64, burst int) *Runner {
	if perSecond <= 0 {
		perSecond = DefaultSpawnRate
	}
	if burst <= 0 {
		burst = runtime.GOMAXPROCS(0)
	}
	return &Runner{bucket: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Run executes a command and returns its stdout. A non-zero exit is an
// error carrying the tool's stderr.
func (r *Runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if err := r.bucket.Wait(ctx); err != nil {
		return nil, err
	}

	logger.Debug("running %s %s", name, strings.Join(args, " "))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %s: %w", name, msg, err)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return stdout.Bytes(), nil
}

// LookPath reports the full path of an executable, or an error when it is
// not installed.
func (r *Runner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
