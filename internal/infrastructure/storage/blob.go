package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

// BlobStore is a content-addressed file store. Blobs live under
// <base>/<h[0:2]>/<h[2:4]>/<h[4:]> where h is the hex sha256 of the
// content, so storing the same bytes twice yields the same path.
type BlobStore struct {
	base string
}

func NewBlobStore(base string) *BlobStore {
	return &BlobStore{base: base}
}

func (s *BlobStore) Put(ctx context.Context, data []byte) (string, error) {
	sum := sha256.Sum256(data)
	digest := hex.EncodeToString(sum[:])
	rel := filepath.Join(digest[0:2], digest[2:4], digest[4:])
	full := filepath.Join(s.base, rel)

	if _, err := os.Stat(full); err == nil {
		return rel, nil
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create blob directory")
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write blob")
	}
	return rel, nil
}

func (s *BlobStore) Get(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.base, path))
	if os.IsNotExist(err) {
		return nil, domain.NotFoundError{Resource: "blob " + path}
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read blob")
	}
	return data, nil
}
