package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	err := NewValidationError("title", "required")

	want := "validation: title: required"
	if err.Error() != want {
		t.Errorf("Error(): got %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError should unwrap to ErrValidation")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	err := NewValidationErrors([]FieldError{
		{Field: "title", Message: "required"},
		{Field: "category", Message: "max 100 characters"},
	})

	want := "validation: 2 errors"
	if err.Error() != want {
		t.Errorf("Error(): got %q, want %q", err.Error(), want)
	}
	if len(err.Errors) != 2 {
		t.Errorf("Errors: got %d entries, want 2", len(err.Errors))
	}
}

func TestValidationError_WrappedIsStillValidation(t *testing.T) {
	inner := NewValidationError("content", "required")
	wrapped := fmt.Errorf("create note: %w", inner)

	if !errors.Is(wrapped, ErrValidation) {
		t.Error("wrapped ValidationError should still match ErrValidation")
	}

	var ve *ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatal("errors.As should recover the ValidationError")
	}
	if ve.Errors[0].Field != "content" {
		t.Errorf("field: got %q, want %q", ve.Errors[0].Field, "content")
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrValidation, ErrUnauthorized, ErrConflict, ErrUnavailable}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v should not match %v", a, b)
			}
		}
	}
}
