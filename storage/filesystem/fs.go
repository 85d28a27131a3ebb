package filesystem

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gear6io/tablediff/pkg/errors"
	"github.com/viant/afs"
)

// Package-specific error codes for filesystem access
var (
	ErrReadFailed = errors.MustNewCode("filesystem.read_failed")
	ErrListFailed = errors.MustNewCode("filesystem.list_failed")
)

// StorageType constant for this storage backend
const Type = "FILESYSTEM"

// Store reads files and enumerates directory trees through an afs service.
// Every file is opened, fully read and released within a single call.
type Store struct {
	fs afs.Service
}

// NewStore creates a filesystem store
func NewStore() *Store {
	return &Store{fs: afs.New()}
}

// StorageType returns the storage backend identifier
func (s *Store) StorageType() string {
	return Type
}

// ReadLines reads a whole file and returns its content as lines. CRLF line
// endings are tolerated; an empty file yields an empty slice.
func (s *Store) ReadLines(ctx context.Context, path string) ([]string, error) {
	data, err := s.fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, errors.New(ErrReadFailed, "failed to read file", err).AddContext("path", path)
	}
	return SplitLines(string(data)), nil
}

// ListFiles enumerates the files under root. Non-recursive listing keeps only
// direct children; ignore patterns are matched against basenames.
func (s *Store) ListFiles(ctx context.Context, root string, recursive bool, ignorePatterns []string) ([]string, error) {
	var paths []string
	visitor := func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		if !recursive && parent != "" {
			return true, nil
		}
		if ignored(info.Name(), ignorePatterns) {
			return true, nil
		}
		paths = append(paths, filepath.Join(root, parent, info.Name()))
		return true, nil
	}
	if err := s.fs.Walk(ctx, root, visitor); err != nil {
		return nil, errors.New(ErrListFailed, "failed to list directory", err).AddContext("dir", root)
	}
	return paths, nil
}

// RelativePath returns path relative to root, falling back to path itself
// when it cannot be made relative
func (s *Store) RelativePath(path, root string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

// FileSize returns the on-disk size of a file, 0 when it cannot be sized
func (s *Store) FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// SplitLines splits file content into lines without trailing terminators
func SplitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	normalized = strings.TrimSuffix(normalized, "\n")
	return strings.Split(normalized, "\n")
}

func ignored(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}
