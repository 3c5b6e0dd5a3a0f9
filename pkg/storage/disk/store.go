package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/Thilina-Shamika/property-stable-sub000/pkg/config"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/logger"
)

const propertyFolder = "property"

var fileNameSanitizeRe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Store persists uploaded media under a local uploads directory and hands
// back the public URL path each file is served from.
type Store struct {
	root string
	now  func() time.Time
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// NewStore prepares the uploads directory tree and returns a store rooted at it.
func NewStore(ctx context.Context, cfg config.UploadsConfig, logg *logger.Logger) (*Store, error) {
	if cfg.Dir == "" {
		return nil, errors.New("uploads dir is required")
	}

	root := filepath.Clean(cfg.Dir)
	if err := os.MkdirAll(filepath.Join(root, propertyFolder), 0o755); err != nil {
		return nil, fmt.Errorf("preparing uploads dir: %w", err)
	}

	if logg != nil {
		logg.Info(logg.WithField(ctx, "uploads_dir", root), "media store initialized")
	}

	return &Store{root: root, now: time.Now}, nil
}

// Save streams the reader to disk and returns the URL path the file is served from.
func (s *Store) Save(ctx context.Context, fileName string, src io.Reader) (string, error) {
	if s == nil {
		return "", errors.New("media store not initialized")
	}
	if src == nil {
		return "", errors.New("file content is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", s.now().UnixNano(), sanitizeFileName(fileName))
	fullPath := filepath.Join(s.root, propertyFolder, name)

	dst, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("creating media file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("writing media file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("closing media file: %w", err)
	}

	return path.Join("/uploads", propertyFolder, name), nil
}

// Delete removes the file backing a stored URL path. Missing files are not
// an error so repeated cleanup passes stay idempotent.
func (s *Store) Delete(ctx context.Context, urlPath string) error {
	if s == nil {
		return errors.New("media store not initialized")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	rel, ok := s.relativePath(urlPath)
	if !ok {
		return fmt.Errorf("url path %q is not managed by this store", urlPath)
	}

	if err := os.Remove(filepath.Join(s.root, rel)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("removing media file: %w", err)
	}
	return nil
}

// Exists reports whether the URL path resolves to a file in this store.
// Foreign or traversal paths are simply absent, not an error.
func (s *Store) Exists(ctx context.Context, urlPath string) (bool, error) {
	if s == nil {
		return false, errors.New("media store not initialized")
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	rel, ok := s.relativePath(urlPath)
	if !ok {
		return false, nil
	}

	info, err := os.Stat(filepath.Join(s.root, rel))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking media file: %w", err)
	}
	return info.Mode().IsRegular(), nil
}

// Root returns the on-disk directory backing the store.
func (s *Store) Root() string {
	return s.root
}

// Ping verifies the uploads directory is still writable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil {
		return errors.New("media store not initialized")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(filepath.Join(s.root, propertyFolder))
	if err != nil {
		return fmt.Errorf("uploads dir unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("uploads path %q is not a directory", s.root)
	}
	return nil
}

func (s *Store) relativePath(urlPath string) (string, bool) {
	trimmed := strings.TrimPrefix(urlPath, "/uploads/")
	if trimmed == urlPath || trimmed == "" {
		return "", false
	}
	cleaned := path.Clean(trimmed)
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || path.IsAbs(cleaned) {
		return "", false
	}
	return filepath.FromSlash(cleaned), true
}

func sanitizeFileName(name string) string {
	base := path.Base(strings.TrimSpace(name))
	base = fileNameSanitizeRe.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		return "file"
	}
	return base
}
