// Package paths resolves request paths to canonical on-disk files.
package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
)

// Ensure Resolver implements the interface.
var _ driven.PathResolver = (*Resolver)(nil)

// Resolver canonicalises request paths against a root directory. The
// canonical absolute path doubles as the extraction cache key, so two
// spellings of the same file share one cache entry.
type Resolver struct {
	root string
}

// New creates a resolver. Relative paths resolve against root; an empty
// root means the process working directory.
func New(root string) *Resolver {
	return &Resolver{root: root}
}

// Resolve returns the file identity for path, or domain.ErrFileNotFound
// when the path does not exist or names a directory.
func (r *Resolver) Resolve(path string) (driven.ResolvedFile, error) {
	abs := path
	if !filepath.IsAbs(abs) && r.root != "" {
		abs = filepath.Join(r.root, abs)
	}
	abs, err := filepath.Abs(abs)
	if err != nil {
		return driven.ResolvedFile{}, fmt.Errorf("resolving %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return driven.ResolvedFile{}, fmt.Errorf("%w: %s", domain.ErrFileNotFound, abs)
	}
	if err != nil {
		return driven.ResolvedFile{}, fmt.Errorf("stat %s: %w", abs, err)
	}
	if info.IsDir() {
		return driven.ResolvedFile{}, fmt.Errorf("%w: %s is a directory", domain.ErrFileNotFound, abs)
	}

	return driven.ResolvedFile{
		AbsPath:   abs,
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}
