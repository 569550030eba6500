package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorImplementsError(t *testing.T) {
	var _ error = (*AppError)(nil)
}

func TestAppErrorErrorFormat(t *testing.T) {
	appErr := &AppError{
		Code:    ErrCodeValidationInvalidPlan,
		Message: "Unknown plan name",
	}

	expected := "validation_invalid_plan: Unknown plan name"
	if appErr.Error() != expected {
		t.Errorf("Error() = %q, want %q", appErr.Error(), expected)
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	underlying := errors.New("database connection failed")
	appErr := NewAppError(ErrCodeInternalDB, "query failed", underlying)

	if !errors.Is(appErr, underlying) {
		t.Error("errors.Is should find the underlying error in the chain")
	}

	wrapped := fmt.Errorf("handling request: %w", appErr)
	var target *AppError
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As should find *AppError in the chain")
	}
	if target.Code != ErrCodeInternalDB {
		t.Errorf("unwrapped code = %q, want %q", target.Code, ErrCodeInternalDB)
	}
}

func TestErrorCodeHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeValidationInvalidPlan, http.StatusBadRequest},
		{ErrCodeValidationInvalidCycle, http.StatusBadRequest},
		{ErrCodeValidationInvalidCurrency, http.StatusBadRequest},
		{ErrCodeValidationMissingField, http.StatusBadRequest},
		{ErrCodeNotFoundSubscription, http.StatusNotFound},
		{ErrCodeNotFoundOrg, http.StatusNotFound},
		{ErrCodeUpstreamCheck, http.StatusBadGateway},
		{ErrCodeUpstreamRateLimited, http.StatusBadGateway},
		{ErrCodeInternalDB, http.StatusInternalServerError},
		{ErrCodeInternalUnexpected, http.StatusInternalServerError},
		{ErrorCode("something_else_entirely"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewAppErrorWithDetails(t *testing.T) {
	appErr := NewAppErrorWithDetails(
		ErrCodeValidationInvalidPlan,
		"Unknown plan name",
		nil,
		map[string]any{"plan": "GHOST_PLAN"},
	)

	if appErr.Details["plan"] != "GHOST_PLAN" {
		t.Errorf("Details[plan] = %v, want GHOST_PLAN", appErr.Details["plan"])
	}
	if appErr.HTTPStatus() != http.StatusBadRequest {
		t.Errorf("HTTPStatus() = %d, want 400", appErr.HTTPStatus())
	}
}
