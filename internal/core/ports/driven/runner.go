package driven

import "context"

// CommandRunner executes external extraction tools.
// The production implementation throttles child-process spawns so a burst
// of uncached requests cannot fork-bomb the host.
type CommandRunner interface {
	// Run executes a command and returns its stdout. A non-zero exit is
	// an error carrying the tool's stderr.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)

	// LookPath reports the full path of an executable, or an error when
	// it is not installed.
	LookPath(name string) (string, error)
}
