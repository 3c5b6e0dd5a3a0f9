package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Thilina-Shamika/property-stable-sub000/internal/media"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/enums"
	pkgerrors "github.com/Thilina-Shamika/property-stable-sub000/pkg/errors"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/logger"
)

// Service exposes the catalog operations for one listing kind.
type Service interface {
	Create(ctx context.Context, input WriteInput) (Record, error)
	Update(ctx context.Context, id uuid.UUID, input WriteInput) (Record, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (Record, error)
	List(ctx context.Context, scope Scope, query Query) ([]Record, error)
	Kind() enums.ListingKind
}

// WriteInput is one admin submission: scalar fields, new file parts, and
// on update the client's view of what to retain. IfUnmodifiedSince is the
// optional optimistic-concurrency token.
type WriteInput struct {
	Fields            Fields
	Images            []media.Upload
	QRCode            *media.Upload
	RetainedImages    []string
	RetainedQRCode    string
	IfUnmodifiedSince *time.Time
}

type lifecycle interface {
	Stage(ctx context.Context, images []media.Upload, qr *media.Upload) (media.Set, error)
	Merge(ctx context.Context, retained []string, images []media.Upload, newQR *media.Upload, retainedQR string) (media.Set, error)
	Cleanup(ctx context.Context, before, after media.Set)
	Destroy(ctx context.Context, set media.Set) error
}

type service struct {
	schema    *Schema
	repo      Repository
	lifecycle lifecycle
	logg      *logger.Logger
}

// NewService constructs the catalog service for one kind.
func NewService(schema *Schema, repo Repository, lc lifecycle, logg *logger.Logger) (Service, error) {
	if schema == nil {
		return nil, fmt.Errorf("schema required")
	}
	if repo == nil {
		return nil, fmt.Errorf("repository required")
	}
	if lc == nil {
		return nil, fmt.Errorf("media lifecycle required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{schema: schema, repo: repo, lifecycle: lc, logg: logg}, nil
}

func (s *service) Kind() enums.ListingKind {
	return s.schema.Kind
}

// Create validates the submission, stages its media, and persists a fresh
// draft record. Media writes happen before the insert; a failed insert can
// leave staged files behind but never a record pointing at missing media.
func (s *service) Create(ctx context.Context, input WriteInput) (Record, error) {
	if err := s.schema.Validate(input.Fields); err != nil {
		return nil, err
	}

	staged, err := s.lifecycle.Stage(ctx, input.Images, input.QRCode)
	if err != nil {
		return nil, err
	}

	rec := s.schema.New()
	if err := s.schema.Apply(rec, input.Fields); err != nil {
		return nil, err
	}

	core := rec.Core()
	core.Status = enums.ListingStatusDraft
	core.Images = staged.Images
	core.QRCode = staged.QRCode
	s.finalize(rec)

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persisting listing")
	}

	s.logg.Info(s.recCtx(ctx, rec), "listing created")
	return rec, nil
}

// Update merges the submission against the stored record. Status is
// preserved unless the caller explicitly sends one. Orphaned media is
// cleaned up only after the row write succeeds.
func (s *service) Update(ctx context.Context, id uuid.UUID, input WriteInput) (Record, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	core := rec.Core()

	if input.IfUnmodifiedSince != nil && core.UpdatedAt.Truncate(time.Second).After(*input.IfUnmodifiedSince) {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "listing was modified by another writer").
			WithDetails(map[string]string{"updatedAt": core.UpdatedAt.UTC().Format(time.RFC3339)})
	}

	if err := s.schema.Validate(input.Fields); err != nil {
		return nil, err
	}

	before := media.Set{Images: append([]string(nil), core.Images...), QRCode: core.QRCode}

	merged, err := s.lifecycle.Merge(ctx, input.RetainedImages, input.Images, input.QRCode, input.RetainedQRCode)
	if err != nil {
		return nil, err
	}

	if err := s.schema.Apply(rec, input.Fields); err != nil {
		return nil, err
	}

	status := core.Status
	if raw := input.Fields.Get("status"); raw != "" {
		parsed, parseErr := enums.ParseListingStatus(raw)
		if parseErr != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, parseErr, "invalid status").
				WithDetails(map[string]string{"field": "status"})
		}
		status = parsed
	}

	core.Status = status
	core.Images = merged.Images
	core.QRCode = merged.QRCode
	core.UpdatedAt = time.Now()
	s.finalize(rec)

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persisting listing")
	}

	s.lifecycle.Cleanup(ctx, before, merged)

	s.logg.Info(s.recCtx(ctx, rec), "listing updated")
	return rec, nil
}

// SetStatus is the narrow draft<->published toggle. No media or attribute
// change happens here.
func (s *service) SetStatus(ctx context.Context, id uuid.UUID, status string) (Record, error) {
	parsed, err := enums.ParseListingStatus(status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status").
			WithDetails(map[string]string{"field": "status"})
	}

	rec, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	core := rec.Core()
	core.Status = parsed
	core.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persisting listing")
	}

	s.logg.Info(s.recCtx(ctx, rec), "listing status changed")
	return rec, nil
}

// Delete cascades media removal before dropping the row. Media failures
// are logged and never block the record delete.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	rec, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	core := rec.Core()

	set := media.Set{Images: core.Images, QRCode: core.QRCode}
	if err := s.lifecycle.Destroy(ctx, set); err != nil {
		s.logg.Warn(s.recCtx(ctx, rec), "media cascade left files behind")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting listing")
	}

	s.logg.Info(s.recCtx(ctx, rec), "listing deleted")
	return nil
}

// GetByID fetches one record regardless of status. Scope gating applies to
// bulk listing only.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Record, error) {
	return s.load(ctx, id)
}

// List runs the scope-gated fetch and applies the query predicates
// in-memory, newest first.
func (s *service) List(ctx context.Context, scope Scope, query Query) ([]Record, error) {
	if !scope.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid scope")
	}

	recs, err := s.repo.List(ctx, scope)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing records")
	}

	return FilterRecords(s.schema, scope, recs, query), nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (Record, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "listing not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading listing")
	}
	return rec, nil
}

func (s *service) finalize(rec Record) {
	if s.schema.Finalize != nil {
		s.schema.Finalize(rec)
	}
}

func (s *service) recCtx(ctx context.Context, rec Record) context.Context {
	ctx = s.logg.WithListingKind(ctx, s.schema.Kind.String())
	return s.logg.WithListingID(ctx, rec.Core().ID.String())
}
