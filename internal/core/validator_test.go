package core

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plancheck/internal/types"
)

type previewRequest struct {
	Plans    map[string]int `validate:"required"`
	Cycle    int            `validate:"cycle"`
	Currency string         `validate:"currency"`
}

func TestValidateStruct_Valid(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStruct(previewRequest{
		Plans:    map[string]int{"MAIL_PLUS": 1},
		Cycle:    12,
		Currency: "EUR",
	})
	require.NoError(t, err)
}

func TestValidateStruct_InvalidCycle(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStruct(previewRequest{
		Plans:    map[string]int{"MAIL_PLUS": 1},
		Cycle:    7,
		Currency: "EUR",
	})
	require.Error(t, err)

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus())
	assert.Equal(t, "cycle", appErr.Details["Cycle"])
}

func TestValidateStruct_InvalidCurrency(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStruct(previewRequest{
		Plans:    map[string]int{"MAIL_PLUS": 1},
		Cycle:    1,
		Currency: "GBP",
	})
	require.Error(t, err)

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "currency", appErr.Details["Currency"])
}

func TestValidateStruct_MissingRequired(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStruct(previewRequest{Cycle: 12, Currency: "USD"})
	require.Error(t, err)

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "required", appErr.Details["Plans"])
}
