// Package photostore stores job photo payloads and hands back opaque
// URLs. Job records keep only the URL plus metadata; callers never
// interpret its shape.
package photostore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store saves and removes photo payloads.
type Store interface {
	// Save persists data under the given job and returns the URL to
	// record on the job.
	Save(ctx context.Context, jobID, filename string, data []byte) (string, error)
	// Remove deletes the payload a previous Save returned the URL for.
	Remove(ctx context.Context, url string) error
}

// FSStore keeps photos on the local filesystem, one subdirectory per
// job. URLs are file:// paths rooted at the store directory.
type FSStore struct {
	root string
}

// NewFSStore creates the store directory if needed.
func NewFSStore(root string) (*FSStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving photo dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("creating photo dir: %w", err)
	}
	return &FSStore{root: abs}, nil
}

func (s *FSStore) Save(_ context.Context, jobID, filename string, data []byte) (string, error) {
	dir := filepath.Join(s.root, jobID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating job photo dir: %w", err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing photo: %w", err)
	}
	return "file://" + path, nil
}

func (s *FSStore) Remove(_ context.Context, url string) error {
	path := strings.TrimPrefix(url, "file://")

	// Refuse anything outside the store root.
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("removing photo: url %q is not in the store", url)
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing photo: %w", err)
	}
	return nil
}
