// Package blob stores uploaded file bytes on the local filesystem.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/parchment-labs/parchment-cli/internal/core/domain"
	"github.com/parchment-labs/parchment-cli/internal/core/ports/driven"
)

// Store writes blobs under a single directory, one file per blob.
// References are the blob's filename relative to the directory.
type Store struct {
	dir string
}

var _ driven.BlobStore = (*Store)(nil)

// NewStore creates a blob store rooted at dir. If dir is empty,
// defaults to ~/.parchment/blobs.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".parchment", "blobs")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating blob directory: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Save writes the blob and returns its reference. The original name only
// contributes its extension; the reference itself is a fresh UUID so two
// uploads of "notes.txt" never collide.
func (s *Store) Save(_ context.Context, name string, data []byte) (string, error) {
	ref := uuid.NewString() + filepath.Ext(name)

	path, err := s.resolve(ref)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("writing blob: %w", err)
	}

	return ref, nil
}

// Read returns the bytes for a reference.
func (s *Store) Read(_ context.Context, ref string) ([]byte, error) {
	path, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading blob: %w", err)
	}

	return data, nil
}

// Delete removes the blob. Unknown references are ignored.
func (s *Store) Delete(_ context.Context, ref string) error {
	path, err := s.resolve(ref)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("deleting blob: %w", err)
	}
	return nil
}

// resolve maps a reference to an on-disk path, rejecting anything that
// would escape the blob directory.
func (s *Store) resolve(ref string) (string, error) {
	if ref == "" || strings.ContainsAny(ref, `/\`) || ref != filepath.Base(ref) {
		return "", fmt.Errorf("%w: invalid blob reference %q", domain.ErrInvalidInput, ref)
	}
	return filepath.Join(s.dir, ref), nil
}
