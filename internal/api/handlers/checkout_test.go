package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plancheck/internal/catalog"
	"plancheck/internal/core"
	"plancheck/internal/external"
	"plancheck/internal/types"
)

// fakeOracle records the last request and returns the configured result.
type fakeOracle struct {
	result  *types.CheckResult
	err     error
	lastReq *external.CheckRequest
	calls   int
}

func (f *fakeOracle) Check(_ context.Context, req external.CheckRequest) (*types.CheckResult, error) {
	f.calls++
	f.lastReq = &req
	return f.result, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func checkoutRouter(t *testing.T, oracle PricingOracle) http.Handler {
	t.Helper()
	h := NewCheckoutHandler(catalog.NewDefault(), oracle, core.NewValidator(), discardLogger())
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Error.Code
}

func TestCheckoutPreview_VerifiedByOracle(t *testing.T) {
	renew := int64(30391)
	oracle := &fakeOracle{result: &types.CheckResult{
		Amount:           33768,
		CouponDiscount:   3377,
		Coupon:           "SAVE10",
		Cycle:            types.CycleYearly,
		Currency:         types.CurrencyEUR,
		RenewAmount:      &renew,
		SubscriptionMode: types.ModeRegular,
		Taxes:            []types.TaxLine{{Name: "GST", Amount: 5000, Rate: 8.1}},
	}}
	router := checkoutRouter(t, oracle)

	rec := postJSON(t, router, "/checkout/preview", `{
		"plans": {"MAIL_BUSINESS": 1, "MEMBER_MAIL_BUSINESS": 2, "MEMBER_SCRIBE_MAIL_BUSINESS": 3},
		"cycle": 12,
		"currency": "EUR",
		"coupon": "SAVE10"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeData[CheckoutPreviewResponse](t, rec)

	assert.True(t, out.Verified)
	assert.Equal(t, types.PlanMailBusiness, out.Checkout.PlanName)
	assert.Equal(t, int64(33768), out.Checkout.Amount)
	assert.Equal(t, int64(3377), out.Checkout.Discount)
	require.NotNil(t, out.Tax)
	assert.Equal(t, "GST", out.Tax.Name)
	assert.Equal(t, int64(5000), out.Tax.Amount)

	require.NotNil(t, oracle.lastReq)
	assert.Equal(t, "SAVE10", oracle.lastReq.Coupon)
	assert.Equal(t, types.CycleYearly, oracle.lastReq.Cycle)
}

func TestCheckoutPreview_DegradesWhenOracleFails(t *testing.T) {
	oracle := &fakeOracle{err: errors.New("connection refused")}
	router := checkoutRouter(t, oracle)

	rec := postJSON(t, router, "/checkout/preview", `{
		"plans": {"MAIL_BUSINESS": 1, "MEMBER_MAIL_BUSINESS": 2, "MEMBER_SCRIBE_MAIL_BUSINESS": 3},
		"cycle": 12,
		"currency": "EUR"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeData[CheckoutPreviewResponse](t, rec)

	assert.False(t, out.Verified)
	assert.Nil(t, out.Tax)
	// The optimistic catalog price stands in for the oracle's answer.
	assert.Equal(t, int64(33768), out.Checkout.Amount)
	assert.Equal(t, int64(33768), out.Checkout.Regular)
}

func TestCheckoutPreview_NilOracleServesCatalogPrice(t *testing.T) {
	router := checkoutRouter(t, nil)

	rec := postJSON(t, router, "/checkout/preview", `{
		"plans": {"MAIL_PLUS": 1},
		"cycle": 12,
		"currency": "EUR"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeData[CheckoutPreviewResponse](t, rec)
	assert.False(t, out.Verified)
	assert.Equal(t, int64(4788), out.Checkout.Amount)
}

func TestCheckoutPreview_CapRuleTrimsSeatAddons(t *testing.T) {
	oracle := &fakeOracle{result: &types.CheckResult{Amount: 1}}
	router := checkoutRouter(t, oracle)

	// 5 Scribe seats against 3 total users: the preview must price the
	// capped configuration, and send that configuration to the oracle.
	rec := postJSON(t, router, "/checkout/preview", `{
		"plans": {"MAIL_BUSINESS": 1, "MEMBER_MAIL_BUSINESS": 2, "MEMBER_SCRIBE_MAIL_BUSINESS": 5},
		"cycle": 12,
		"currency": "EUR"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeData[CheckoutPreviewResponse](t, rec)
	assert.Equal(t, 3, out.Plans[types.AddonScribeMailBusiness])

	require.NotNil(t, oracle.lastReq)
	assert.Equal(t, 3, oracle.lastReq.Plans[types.AddonScribeMailBusiness])
}

func TestCheckoutPreview_UnknownPlanRejected(t *testing.T) {
	oracle := &fakeOracle{}
	router := checkoutRouter(t, oracle)

	rec := postJSON(t, router, "/checkout/preview", `{
		"plans": {"GHOST_PLAN": 1},
		"cycle": 12,
		"currency": "EUR"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(types.ErrCodeValidationInvalidPlan), errorCode(t, rec))
	assert.Zero(t, oracle.calls)
}

func TestCheckoutPreview_ValidationFailures(t *testing.T) {
	router := checkoutRouter(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{"invalid cycle", `{"plans": {"MAIL_PLUS": 1}, "cycle": 7, "currency": "EUR"}`},
		{"invalid currency", `{"plans": {"MAIL_PLUS": 1}, "cycle": 12, "currency": "GBP"}`},
		{"missing plans", `{"cycle": 12, "currency": "EUR"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, router, "/checkout/preview", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, string(types.ErrCodeValidationMissingField), errorCode(t, rec))
		})
	}
}

func TestCheckoutPreview_MalformedBody(t *testing.T) {
	router := checkoutRouter(t, nil)

	rec := postJSON(t, router, "/checkout/preview", `{"plans": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_invalid_json", errorCode(t, rec))
}

func TestCheckoutPreview_OversizedBodyRejected(t *testing.T) {
	router := checkoutRouter(t, nil)

	// Pad past the 1 MiB request body limit.
	body := `{"plans": {"MAIL_PLUS": 1}, "cycle": 12, "currency": "EUR", "coupon": "` +
		strings.Repeat("A", 1<<20) + `"}`
	rec := postJSON(t, router, "/checkout/preview", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_invalid_json", errorCode(t, rec))
}
