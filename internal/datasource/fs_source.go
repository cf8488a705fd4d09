package datasource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// FSSource reads documents from disk.
type FSSource struct {
	basePath string
}

// NewFSSource constructs a filesystem source rooted at basePath.
func NewFSSource(basePath string) *FSSource {
	return &FSSource{basePath: basePath}
}

// Fetch reads {basePath}/{name}.
func (s *FSSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// Exists stats {basePath}/{name}.
func (s *FSSource) Exists(ctx context.Context, name string) bool {
	path, err := s.resolve(name)
	if err != nil || ctx.Err() != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (s *FSSource) resolve(name string) (string, error) {
	if s == nil {
		return "", errors.New("data source not configured")
	}
	if name == "" {
		return "", errors.New("document name required")
	}
	return filepath.Join(s.basePath, filepath.FromSlash(name)), nil
}
