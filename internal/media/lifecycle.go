package media

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/multierr"

	pkgerrors "github.com/Thilina-Shamika/property-stable-sub000/pkg/errors"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/logger"
)

// Store is the blob boundary the lifecycle manager drives. Save returns a
// stable path string; Delete of a missing path must not be an error;
// Exists reports whether a path resolves to a stored file.
type Store interface {
	Save(ctx context.Context, fileName string, src io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
}

// Upload is a single inbound file part. Open is called at most once, when
// the blob is actually streamed to the store.
type Upload struct {
	FileName string
	Open     func() (io.ReadCloser, error)
}

// Set is the resolved media state of one listing: the ordered image paths
// plus an optional QR artifact path.
type Set struct {
	Images []string
	QRCode string
}

// Paths returns every stored path in the set, QR last.
func (s Set) Paths() []string {
	paths := make([]string, 0, len(s.Images)+1)
	paths = append(paths, s.Images...)
	if s.QRCode != "" {
		paths = append(paths, s.QRCode)
	}
	return paths
}

// Lifecycle owns every write to a listing's images/qrCode fields. No other
// component touches the store.
type Lifecycle struct {
	store Store
	logg  *logger.Logger
}

// NewLifecycle constructs the media lifecycle manager.
func NewLifecycle(store Store, logg *logger.Logger) (*Lifecycle, error) {
	if store == nil {
		return nil, fmt.Errorf("media store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Lifecycle{store: store, logg: logg}, nil
}

// Stage resolves the media set for a create: every upload is saved in
// submission order and the QR blob, if present, is saved last. Zero image
// uploads fail validation before any store write happens.
func (l *Lifecycle) Stage(ctx context.Context, images []Upload, qr *Upload) (Set, error) {
	if len(images) == 0 {
		return Set{}, pkgerrors.New(pkgerrors.CodeValidation, "at least one image is required").
			WithDetails(map[string]string{"field": "images"})
	}

	paths, err := l.saveAll(ctx, images)
	if err != nil {
		return Set{}, err
	}

	set := Set{Images: paths}
	if qr != nil {
		qrPath, err := l.saveOne(ctx, *qr)
		if err != nil {
			return Set{}, err
		}
		set.QRCode = qrPath
	}
	return set, nil
}

// Merge resolves the media set for an update: retained paths keep their
// relative order and newly saved uploads are appended after them. The QR
// resolution is newQR > retainedQR > cleared. The image floor still holds.
// Every retained path must resolve to a file already in the store; the
// check runs before any new upload is written.
func (l *Lifecycle) Merge(ctx context.Context, retained []string, images []Upload, newQR *Upload, retainedQR string) (Set, error) {
	if len(retained)+len(images) == 0 {
		return Set{}, pkgerrors.New(pkgerrors.CodeValidation, "update may not leave the listing without images").
			WithDetails(map[string]string{"field": "images"})
	}

	for _, path := range retained {
		if err := l.requireStored(ctx, path, "existingImages"); err != nil {
			return Set{}, err
		}
	}
	if newQR == nil && retainedQR != "" {
		if err := l.requireStored(ctx, retainedQR, "existingQrCode"); err != nil {
			return Set{}, err
		}
	}

	final := make([]string, 0, len(retained)+len(images))
	final = append(final, retained...)

	saved, err := l.saveAll(ctx, images)
	if err != nil {
		return Set{}, err
	}
	final = append(final, saved...)

	set := Set{Images: final}
	switch {
	case newQR != nil:
		qrPath, err := l.saveOne(ctx, *newQR)
		if err != nil {
			return Set{}, err
		}
		set.QRCode = qrPath
	case retainedQR != "":
		set.QRCode = retainedQR
	}
	return set, nil
}

// Cleanup deletes every path referenced by the pre-image but absent from
// the post-image. It runs after the database write succeeds so a persistence
// failure never leaves the record pointing at deleted files. Failures are
// logged and swallowed.
func (l *Lifecycle) Cleanup(ctx context.Context, before, after Set) {
	kept := make(map[string]struct{}, len(after.Images)+1)
	for _, path := range after.Paths() {
		kept[path] = struct{}{}
	}

	for _, path := range before.Paths() {
		if _, ok := kept[path]; ok {
			continue
		}
		if err := l.store.Delete(ctx, path); err != nil {
			l.logg.Warn(l.logg.WithField(ctx, "media_path", path), "orphaned media cleanup failed")
		}
	}
}

// Destroy removes every path the record references. Deletion is
// best-effort: individual failures are aggregated and returned for logging
// but must never block removal of the catalog record.
func (l *Lifecycle) Destroy(ctx context.Context, set Set) error {
	var errs error
	for _, path := range set.Paths() {
		if err := l.store.Delete(ctx, path); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("delete %s: %w", path, err))
		}
	}
	return errs
}

func (l *Lifecycle) requireStored(ctx context.Context, path, field string) error {
	ok, err := l.store.Exists(ctx, path)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking media file")
	}
	if !ok {
		return pkgerrors.New(pkgerrors.CodeValidation, "retained media path is not in the store").
			WithDetails(map[string]string{"field": field, "path": path})
	}
	return nil
}

func (l *Lifecycle) saveAll(ctx context.Context, uploads []Upload) ([]string, error) {
	paths := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		path, err := l.saveOne(ctx, upload)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (l *Lifecycle) saveOne(ctx context.Context, upload Upload) (string, error) {
	if upload.Open == nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "file content is required").
			WithDetails(map[string]string{"field": "images"})
	}
	src, err := upload.Open()
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "opening uploaded file")
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			l.logg.Warn(ctx, "closing uploaded file failed")
		}
	}()

	path, err := l.store.Save(ctx, upload.FileName, src)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving media file")
	}
	return path, nil
}
