package testutil

import (
	"errors"
	"testing"

	apperrors "ledgerbook/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertFieldError checks that err carries a field validation message for the
// given field.
func AssertFieldError(t *testing.T, err error, field, message string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected field error on %q, got nil", field)
	}

	var fieldErrs apperrors.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %T: %v", err, err)
	}

	got, ok := fieldErrs[field]
	if !ok {
		t.Fatalf("expected field error on %q, got %v", field, fieldErrs)
	}
	if got != message {
		t.Errorf("expected field error %q on %q, got %q", message, field, got)
	}
}
