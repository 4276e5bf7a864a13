package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// BlobStore holds the physical bytes of uploaded files, keyed by stored
// filename. Delete is idempotent on a missing key.
type BlobStore interface {
	Save(storedName string, data io.Reader) (int64, error)
	Delete(storedName string) error
}

// FileSystemStore keeps blobs as flat files under a base directory.
type FileSystemStore struct {
	baseDir string
}

func NewFileSystemStore(baseDir string) (*FileSystemStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create uploads directory %s: %w", baseDir, err)
	}
	return &FileSystemStore{baseDir: baseDir}, nil
}

// Save writes data to a file named storedName and returns the byte count.
// A partial file left by a failed write is removed.
func (fs *FileSystemStore) Save(storedName string, data io.Reader) (int64, error) {
	path := fs.path(storedName)

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create blob %s: %w", path, err)
	}
	defer f.Close()

	n, err := io.Copy(f, data)
	if err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("write blob %s: %w", path, err)
	}
	return n, nil
}

// Delete removes the blob. A missing file is not an error — the blob may
// already have been cleaned up by an earlier partial failure.
func (fs *FileSystemStore) Delete(storedName string) error {
	path := fs.path(storedName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob %s: %w", path, err)
	}
	return nil
}

func (fs *FileSystemStore) path(storedName string) string {
	// Stored names are generated server-side, but never trust them as paths.
	return filepath.Join(fs.baseDir, filepath.Base(storedName))
}
