package disk

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Thilina-Shamika/property-stable-sub000/pkg/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(context.Background(), config.UploadsConfig{Dir: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestSaveReturnsServableURLPath(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	urlPath, err := store.Save(context.Background(), "villa front.jpg", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !strings.HasPrefix(urlPath, "/uploads/property/") {
		t.Fatalf("unexpected url path %s", urlPath)
	}
	if strings.Contains(urlPath, " ") {
		t.Fatalf("url path not sanitized: %s", urlPath)
	}

	onDisk := filepath.Join(store.Root(), "property", filepath.Base(urlPath))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Fatalf("stored content mismatch: %q", data)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	urlPath, err := store.Save(context.Background(), "plan.pdf", strings.NewReader("pdf"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Delete(context.Background(), urlPath); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// second pass hits a missing file and still succeeds
	if err := store.Delete(context.Background(), urlPath); err != nil {
		t.Fatalf("repeat Delete: %v", err)
	}
}

func TestDeleteRejectsForeignPaths(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	cases := []string{
		"https://cdn.example.com/banner.png",
		"/uploads/../etc/passwd",
		"/static/logo.svg",
		"",
	}
	for _, urlPath := range cases {
		if err := store.Delete(context.Background(), urlPath); err == nil {
			t.Errorf("expected error for %q", urlPath)
		}
	}
}

func TestExists(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	urlPath, err := store.Save(context.Background(), "tower.jpg", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	ok, err := store.Exists(context.Background(), urlPath)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !ok {
		t.Fatalf("expected stored path to exist")
	}

	for _, foreign := range []string{
		"/uploads/property/never-stored.jpg",
		"https://cdn.example.com/a.jpg",
		"/uploads/../etc/passwd",
		"",
	} {
		ok, err := store.Exists(context.Background(), foreign)
		if err != nil {
			t.Fatalf("Exists(%q): %v", foreign, err)
		}
		if ok {
			t.Fatalf("expected %q to be absent", foreign)
		}
	}
}

func TestPing(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	if err := os.RemoveAll(store.Root()); err != nil {
		t.Fatalf("remove root: %v", err)
	}
	if err := store.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping failure after root removal")
	}
}
