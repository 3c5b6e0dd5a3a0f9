package inquiries

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Thilina-Shamika/property-stable-sub000/pkg/db/models"
	pkgerrors "github.com/Thilina-Shamika/property-stable-sub000/pkg/errors"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/logger"
)

type stubRepo struct {
	created []*models.Inquiry
}

func (r *stubRepo) Create(ctx context.Context, inquiry *models.Inquiry) error {
	inquiry.ID = uuid.New()
	r.created = append(r.created, inquiry)
	return nil
}

func (r *stubRepo) List(ctx context.Context) ([]models.Inquiry, error) {
	out := make([]models.Inquiry, 0, len(r.created))
	for i := len(r.created) - 1; i >= 0; i-- {
		out = append(out, *r.created[i])
	}
	return out, nil
}

func newTestService(t *testing.T) (Service, *stubRepo) {
	t.Helper()
	repo := &stubRepo{}
	logg := logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
	svc, err := NewService(repo, logg)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, repo
}

func validInput() SubmitInput {
	return SubmitInput{
		Name:         "Jordan Lee",
		Email:        "jordan@example.com",
		Phone:        "+971500000000",
		Message:      "Is this still available?",
		PropertyID:   uuid.NewString(),
		PropertyType: "buy",
	}
}

func TestSubmitStoresTrimmedInquiry(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t)
	input := validInput()
	input.Name = "  Jordan Lee  "

	inquiry, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if inquiry.Name != "Jordan Lee" {
		t.Fatalf("name not trimmed: %q", inquiry.Name)
	}
	if len(repo.created) != 1 {
		t.Fatalf("inquiry not persisted")
	}
}

func TestSubmitNamesMissingField(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	input := validInput()
	input.Email = "   "

	_, err := svc.Submit(context.Background(), input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok || details["field"] != "email" {
		t.Fatalf("expected email named, got %v", typed.Details())
	}
}

func TestSubmitRejectsUnknownPropertyType(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	input := validInput()
	input.PropertyType = "rental"

	_, err := svc.Submit(context.Background(), input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmitAllowsDanglingListingReference(t *testing.T) {
	t.Parallel()

	// no referential check: any well-formed reference is accepted
	svc, _ := newTestService(t)
	input := validInput()
	input.PropertyID = uuid.NewString()

	if _, err := svc.Submit(context.Background(), input); err != nil {
		t.Fatalf("Submit: %v", err)
	}
}
