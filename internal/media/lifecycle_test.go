package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	pkgerrors "github.com/Thilina-Shamika/property-stable-sub000/pkg/errors"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/logger"
	"github.com/rs/zerolog"
)

type stubStore struct {
	saved     []string
	deleted   []string
	saveErr   error
	deleteErr map[string]error
	missing   map[string]bool
	existsErr error
	seq       int
}

func (s *stubStore) Save(ctx context.Context, fileName string, src io.Reader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	if _, err := io.ReadAll(src); err != nil {
		return "", err
	}
	s.seq++
	path := fmt.Sprintf("/uploads/property/%d-%s", s.seq, fileName)
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *stubStore) Delete(ctx context.Context, path string) error {
	if err, ok := s.deleteErr[path]; ok {
		return err
	}
	s.deleted = append(s.deleted, path)
	return nil
}

func (s *stubStore) Exists(ctx context.Context, path string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	return !s.missing[path], nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
}

func newTestLifecycle(t *testing.T, store *stubStore) *Lifecycle {
	t.Helper()
	lc, err := NewLifecycle(store, testLogger())
	if err != nil {
		t.Fatalf("NewLifecycle: %v", err)
	}
	return lc
}

func upload(name, content string) Upload {
	return Upload{
		FileName: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func TestStageRequiresAtLeastOneImage(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	lc := newTestLifecycle(t, store)

	_, err := lc.Stage(context.Background(), nil, nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatalf("store was reached before validation: %v", store.saved)
	}
}

func TestStageSavesImagesInOrderWithQR(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	lc := newTestLifecycle(t, store)

	qr := upload("qr.png", "qr-bytes")
	set, err := lc.Stage(context.Background(), []Upload{upload("a.jpg", "a"), upload("b.jpg", "b")}, &qr)
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if len(set.Images) != 2 {
		t.Fatalf("expected 2 images, got %v", set.Images)
	}
	if !strings.HasSuffix(set.Images[0], "a.jpg") || !strings.HasSuffix(set.Images[1], "b.jpg") {
		t.Fatalf("submission order not preserved: %v", set.Images)
	}
	if set.QRCode == "" || !strings.HasSuffix(set.QRCode, "qr.png") {
		t.Fatalf("qr not saved: %q", set.QRCode)
	}
}

func TestStageAbortsOnStoreFailure(t *testing.T) {
	t.Parallel()

	store := &stubStore{saveErr: errors.New("disk full")}
	lc := newTestLifecycle(t, store)

	_, err := lc.Stage(context.Background(), []Upload{upload("a.jpg", "a")}, nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestMergeAppendsNewAfterRetained(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	lc := newTestLifecycle(t, store)

	set, err := lc.Merge(context.Background(), []string{"/uploads/property/1-A.jpg", "/uploads/property/3-C.jpg"}, []Upload{upload("D.jpg", "d")}, nil, "")
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if len(set.Images) != 3 {
		t.Fatalf("expected 3 images, got %v", set.Images)
	}
	if set.Images[0] != "/uploads/property/1-A.jpg" || set.Images[1] != "/uploads/property/3-C.jpg" {
		t.Fatalf("retained order changed: %v", set.Images)
	}
	if !strings.HasSuffix(set.Images[2], "D.jpg") {
		t.Fatalf("new upload not appended: %v", set.Images)
	}
}

func TestMergeQRResolution(t *testing.T) {
	t.Parallel()

	retainedImages := []string{"/uploads/property/1-a.jpg"}

	t.Run("new blob wins", func(t *testing.T) {
		t.Parallel()
		lc := newTestLifecycle(t, &stubStore{})
		qr := upload("new-qr.png", "qr")
		set, err := lc.Merge(context.Background(), retainedImages, nil, &qr, "/uploads/property/9-old-qr.png")
		if err != nil {
			t.Fatalf("Merge: %v", err)
		}
		if !strings.HasSuffix(set.QRCode, "new-qr.png") {
			t.Fatalf("expected new qr, got %q", set.QRCode)
		}
	})

	t.Run("retained path kept", func(t *testing.T) {
		t.Parallel()
		lc := newTestLifecycle(t, &stubStore{})
		set, err := lc.Merge(context.Background(), retainedImages, nil, nil, "/uploads/property/9-old-qr.png")
		if err != nil {
			t.Fatalf("Merge: %v", err)
		}
		if set.QRCode != "/uploads/property/9-old-qr.png" {
			t.Fatalf("expected retained qr, got %q", set.QRCode)
		}
	})

	t.Run("neither clears", func(t *testing.T) {
		t.Parallel()
		lc := newTestLifecycle(t, &stubStore{})
		set, err := lc.Merge(context.Background(), retainedImages, nil, nil, "")
		if err != nil {
			t.Fatalf("Merge: %v", err)
		}
		if set.QRCode != "" {
			t.Fatalf("expected cleared qr, got %q", set.QRCode)
		}
	})
}

func TestMergeRejectsUnknownRetainedPath(t *testing.T) {
	t.Parallel()

	store := &stubStore{missing: map[string]bool{"/uploads/property/ghost.jpg": true}}
	lc := newTestLifecycle(t, store)

	_, err := lc.Merge(context.Background(),
		[]string{"/uploads/property/1-a.jpg", "/uploads/property/ghost.jpg"},
		[]Upload{upload("b.jpg", "b")}, nil, "")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatalf("new uploads written despite bad retained path: %v", store.saved)
	}
}

func TestMergeRejectsUnknownRetainedQR(t *testing.T) {
	t.Parallel()

	store := &stubStore{missing: map[string]bool{"/uploads/property/ghost-qr.png": true}}
	lc := newTestLifecycle(t, store)

	_, err := lc.Merge(context.Background(),
		[]string{"/uploads/property/1-a.jpg"}, nil, nil, "/uploads/property/ghost-qr.png")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMergeSurfacesExistsFailure(t *testing.T) {
	t.Parallel()

	store := &stubStore{existsErr: errors.New("stat failed")}
	lc := newTestLifecycle(t, store)

	_, err := lc.Merge(context.Background(), []string{"/uploads/property/1-a.jpg"}, nil, nil, "")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestMergeEnforcesImageFloor(t *testing.T) {
	t.Parallel()

	lc := newTestLifecycle(t, &stubStore{})
	_, err := lc.Merge(context.Background(), nil, nil, nil, "")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCleanupDeletesOnlyTheDiff(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	lc := newTestLifecycle(t, store)

	before := Set{Images: []string{"a", "b", "c"}, QRCode: "old-qr"}
	after := Set{Images: []string{"a", "c", "d"}, QRCode: "new-qr"}

	lc.Cleanup(context.Background(), before, after)

	want := map[string]bool{"b": true, "old-qr": true}
	if len(store.deleted) != len(want) {
		t.Fatalf("unexpected deletions %v", store.deleted)
	}
	for _, path := range store.deleted {
		if !want[path] {
			t.Fatalf("deleted retained path %q", path)
		}
	}
}

func TestCleanupSwallowsDeleteFailures(t *testing.T) {
	t.Parallel()

	store := &stubStore{deleteErr: map[string]error{"b": errors.New("locked")}}
	lc := newTestLifecycle(t, store)

	lc.Cleanup(context.Background(), Set{Images: []string{"a", "b"}}, Set{Images: []string{"a"}})
}

func TestDestroyBestEffort(t *testing.T) {
	t.Parallel()

	store := &stubStore{deleteErr: map[string]error{"b": errors.New("locked")}}
	lc := newTestLifecycle(t, store)

	err := lc.Destroy(context.Background(), Set{Images: []string{"a", "b", "c"}, QRCode: "qr"})
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
	// every removable path was still attempted
	want := []string{"a", "c", "qr"}
	if len(store.deleted) != len(want) {
		t.Fatalf("unexpected deletions %v", store.deleted)
	}
	for i, path := range want {
		if store.deleted[i] != path {
			t.Fatalf("expected %q deleted, got %v", path, store.deleted)
		}
	}
}
