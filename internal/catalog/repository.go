package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Thilina-Shamika/property-stable-sub000/pkg/enums"
)

// Scope is the visibility gate on bulk reads. Public sees published
// records only; admin sees everything.
type Scope string

const (
	ScopePublic Scope = "public"
	ScopeAdmin  Scope = "admin"
)

// IsValid reports whether the value is a known Scope.
func (s Scope) IsValid() bool {
	return s == ScopePublic || s == ScopeAdmin
}

// Repository is the persistence surface one kind's service depends on.
type Repository interface {
	Create(ctx context.Context, rec Record) error
	Save(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (Record, error)
	List(ctx context.Context, scope Scope) ([]Record, error)
}

// Repo is a GORM-backed Repository generic over the concrete row type.
// *T must satisfy Record.
type Repo[T any] struct {
	db *gorm.DB
}

// NewRepo builds a repository tied to the provided GORM DB.
func NewRepo[T any](db *gorm.DB) *Repo[T] {
	return &Repo[T]{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repo[T]) WithTx(tx *gorm.DB) *Repo[T] {
	return &Repo[T]{db: tx}
}

// Create inserts a new listing row.
func (r *Repo[T]) Create(ctx context.Context, rec Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// Save writes the full listing row back.
func (r *Repo[T]) Save(ctx context.Context, rec Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// Delete removes a listing row by ID.
func (r *Repo[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error
}

// FindByID loads one listing row.
func (r *Repo[T]) FindByID(ctx context.Context, id uuid.UUID) (Record, error) {
	row := new(T)
	if err := r.db.WithContext(ctx).First(row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return asRecord(row)
}

// List fetches the scope-gated rows newest-first. Predicate filtering is
// the query engine's job, not the repository's.
func (r *Repo[T]) List(ctx context.Context, scope Scope) ([]Record, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if scope != ScopeAdmin {
		query = query.Where("status = ?", enums.ListingStatusPublished)
	}

	var rows []T
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	recs := make([]Record, 0, len(rows))
	for i := range rows {
		rec, err := asRecord(&rows[i])
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func asRecord(row any) (Record, error) {
	rec, ok := row.(Record)
	if !ok {
		return nil, fmt.Errorf("row type %T does not implement catalog.Record", row)
	}
	return rec, nil
}
