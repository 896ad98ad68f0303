// Package fs provides file-based storage for located samples.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/locdata"
)

// Ensure Store implements locdata.SampleStore at compile time.
var _ locdata.SampleStore = (*Store)(nil)

// Store writes sample fragments as HTML files to a directory.
type Store struct {
	baseDir string
}

// NewStore creates a new Store that writes to the given base directory.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// SampleName converts a sample name to a safe file name.
// Example: "my data/0" → my_data_0.html
func SampleName(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '.':
			return r
		default:
			return '_'
		}
	}, name)
	return mapped + ".html"
}

// SaveSample writes a sample fragment to disk and returns its path.
// An unchanged fragment is not rewritten, so file modification times track
// real changes across repeated location attempts.
func (s *Store) SaveSample(ctx context.Context, name, fragment string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" {
		return "", locdata.Errorf(locdata.EINVALID, "sample name required")
	}
	if fragment == "" {
		return "", locdata.Errorf(locdata.EINVALID, "sample fragment required")
	}

	fullPath := filepath.Join(s.baseDir, SampleName(name))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	if existing, err := os.ReadFile(fullPath); err == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64String(fragment) {
			return fullPath, nil
		}
	}

	if err := os.WriteFile(fullPath, []byte(fragment), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
