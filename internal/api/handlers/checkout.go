package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"plancheck/internal/catalog"
	"plancheck/internal/core"
	"plancheck/internal/external"
	"plancheck/internal/pricing"
	"plancheck/internal/selection"
	"plancheck/internal/types"
)

// PricingOracle abstracts the payments backend's check endpoint. Defined
// locally so handler tests can substitute a fake without spinning up the
// HTTP client.
type PricingOracle interface {
	Check(ctx context.Context, req external.CheckRequest) (*types.CheckResult, error)
}

// CheckoutPreviewRequest is the request body for POST /v1/checkout/preview.
type CheckoutPreviewRequest struct {
	Plans    types.PlanIDs  `json:"plans" validate:"required"`
	Cycle    types.Cycle    `json:"cycle" validate:"required,cycle"`
	Currency types.Currency `json:"currency" validate:"required,currency"`
	Coupon   string         `json:"coupon,omitempty"`
}

// CheckoutPreviewResponse is the response for POST /v1/checkout/preview.
// Verified reports whether the breakdown incorporates a server-confirmed
// check result; false means the optimistic catalog price is shown.
type CheckoutPreviewResponse struct {
	Plans    types.PlanIDs       `json:"plans"`
	Checkout pricing.Checkout    `json:"checkout"`
	Tax      *pricing.TaxSummary `json:"tax,omitempty"`
	Verified bool                `json:"verified"`
}

// CheckoutHandler serves the checkout preview: it normalizes the submitted
// configuration, asks the pricing oracle to confirm the amount, and returns
// the breakdown the payment page renders.
type CheckoutHandler struct {
	cat       *catalog.Catalog
	oracle    PricingOracle
	validator *core.Validator
	logger    *slog.Logger
}

// NewCheckoutHandler creates a CheckoutHandler. The oracle may be nil, in
// which case every preview is served from the catalog alone.
func NewCheckoutHandler(cat *catalog.Catalog, oracle PricingOracle, v *core.Validator, l *slog.Logger) *CheckoutHandler {
	if l == nil {
		l = slog.Default()
	}
	return &CheckoutHandler{
		cat:       cat,
		oracle:    oracle,
		validator: v,
		logger:    l,
	}
}

// RegisterRoutes mounts the checkout routes on the given router.
func (h *CheckoutHandler) RegisterRoutes(r chi.Router) {
	r.Post("/checkout/preview", h.HandlePreview)
}

// HandlePreview computes the checkout breakdown for a submitted
// configuration.
// POST /v1/checkout/preview
//
// The oracle confirming the amount is best-effort: when it is down the
// preview degrades to the optimistic catalog price rather than failing the
// request. The oracle's amount wins when present.
func (h *CheckoutHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	var req CheckoutPreviewRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := validatePlanNames(h.cat, req.Plans); err != nil {
		core.Error(w, r, err)
		return
	}

	sel := selection.New(h.cat, req.Plans, req.Cycle, req.Currency).ApplyCapRules()

	check := verifyPrice(r.Context(), h.oracle, h.logger, sel, req.Coupon)

	resp := CheckoutPreviewResponse{
		Plans:    sel.PlanIDs(),
		Checkout: pricing.ComputeCheckout(h.cat, sel, check),
		Tax:      pricing.FormatTax(check),
		Verified: check != nil,
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: resp})
}

// verifyPrice asks the oracle to confirm the selection's price. Any failure
// is logged and reported as nil so the caller falls back to the catalog
// price.
func verifyPrice(ctx context.Context, oracle PricingOracle, logger *slog.Logger, sel selection.SelectedPlan, coupon string) *types.CheckResult {
	if oracle == nil {
		return nil
	}
	check, err := oracle.Check(ctx, external.CheckRequest{
		Plans:    sel.PlanIDs(),
		Cycle:    sel.Cycle(),
		Currency: sel.Currency(),
		Coupon:   coupon,
	})
	if err != nil {
		logger.WarnContext(ctx, "pricing check unavailable, serving optimistic price",
			slog.String("error", err.Error()),
		)
		return nil
	}
	return check
}

// validatePlanNames rejects configurations naming plans the catalog does
// not sell. The breakdown would silently price unknown entries at zero,
// which is the right degradation for internal callers but a confusing
// answer to an API client's typo.
func validatePlanNames(cat *catalog.Catalog, plans types.PlanIDs) error {
	for name := range plans {
		if _, ok := cat.Get(name); !ok {
			return types.NewAppErrorWithDetails(
				types.ErrCodeValidationInvalidPlan,
				"Unknown plan name",
				nil,
				map[string]any{"plan": string(name)},
			)
		}
	}
	return nil
}
