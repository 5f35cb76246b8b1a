package storage

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

func TestBlobStoreRoundTrip(t *testing.T) {
	store := NewBlobStore(t.TempDir())

	path, err := store.Put(context.Background(), []byte("name;quantity\nWall;2500\n"))
	if err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if strings.Count(path, string(filepath.Separator)) != 2 {
		t.Fatalf("expected a fanned-out path, got %q", path)
	}

	data, err := store.Get(context.Background(), path)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(data) != "name;quantity\nWall;2500\n" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestBlobStorePutIsIdempotent(t *testing.T) {
	store := NewBlobStore(t.TempDir())

	first, err := store.Put(context.Background(), []byte("payload"))
	if err != nil {
		t.Fatalf("put failed: %v", err)
	}
	second, err := store.Put(context.Background(), []byte("payload"))
	if err != nil {
		t.Fatalf("second put failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical paths, got %q and %q", first, second)
	}
}

func TestBlobStoreGetUnknown(t *testing.T) {
	store := NewBlobStore(t.TempDir())

	if _, err := store.Get(context.Background(), "ab/cd/efgh"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
