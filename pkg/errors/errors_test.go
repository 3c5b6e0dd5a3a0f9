package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNewCarriesCodeAndMessage(t *testing.T) {
	t.Parallel()

	err := New(CodeValidation, "price is required")
	if err.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", err.Code())
	}
	if err.Message() != "price is required" {
		t.Fatalf("unexpected message %q", err.Message())
	}
	if got := err.Error(); got != "VALIDATION_ERROR: price is required" {
		t.Fatalf("unexpected Error() %q", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	err := Wrap(CodeDependency, cause, "save image")
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to be reachable via errors.Is")
	}
}

func TestAsUnwrapsThroughChains(t *testing.T) {
	t.Parallel()

	inner := New(CodeNotFound, "listing not found")
	wrapped := fmt.Errorf("load listing: %w", inner)

	typed := As(wrapped)
	if typed == nil {
		t.Fatalf("expected typed error from chain")
	}
	if typed.Code() != CodeNotFound {
		t.Fatalf("expected not found code, got %s", typed.Code())
	}

	if As(errors.New("plain")) != nil {
		t.Fatalf("expected nil for untyped error")
	}
}

func TestMetadataForKnownAndUnknownCodes(t *testing.T) {
	t.Parallel()

	if meta := MetadataFor(CodeConflict); meta.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409 for conflict, got %d", meta.HTTPStatus)
	}
	if meta := MetadataFor(Code("BOGUS")); meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestWithDetails(t *testing.T) {
	t.Parallel()

	err := New(CodeValidation, "validation failed").WithDetails(map[string]string{"field": "beds"})
	details, ok := err.Details().(map[string]string)
	if !ok || details["field"] != "beds" {
		t.Fatalf("unexpected details %#v", err.Details())
	}
}
