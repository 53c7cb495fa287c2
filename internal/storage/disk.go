package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/careerbridge/job-portal-api/internal/apperrors"
)

// DiskStore writes uploads under a local directory and serves them from a
// base URL (the router mounts the directory as static).
type DiskStore struct {
	Dir     string
	BaseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &DiskStore{Dir: dir, BaseURL: baseURL}, nil
}

// Save stores data under folder with a random name, keeping the original
// extension, and returns the URL to persist.
func (s *DiskStore) Save(folder, filename string, data []byte) (string, error) {
	name := uuid.NewString() + filepath.Ext(filename)
	dir := filepath.Join(s.Dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUpload, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUpload, err)
	}
	return path.Join(s.BaseURL, folder, name), nil
}
