package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"plancheck/internal/catalog"
	"plancheck/internal/core"
	"plancheck/internal/pricing"
	"plancheck/internal/selection"
	"plancheck/internal/types"
)

// SubscriptionReader provides the current subscription record for a user.
type SubscriptionReader interface {
	GetCurrent(ctx context.Context, userID string) (*types.Subscription, error)
}

// UsageReader provides the organization's live consumption snapshot.
type UsageReader interface {
	GetSnapshot(ctx context.Context, orgID string) (*types.OrganizationUsage, error)
}

// SwitchPreviewRequest is the request body for
// POST /v1/subscription/switch-preview.
//
// OrganizationID is optional: a single-user account has no organization, and
// the transfer is then sized from the purchased quantities alone. Cycle and
// currency default to the current subscription's when omitted.
type SwitchPreviewRequest struct {
	UserID         string         `json:"user_id" validate:"required"`
	OrganizationID string         `json:"organization_id,omitempty"`
	TargetPlan     types.PlanName `json:"target_plan" validate:"required"`
	Cycle          types.Cycle    `json:"cycle,omitempty" validate:"omitempty,cycle"`
	Currency       types.Currency `json:"currency,omitempty" validate:"omitempty,currency"`
	Excluded       []string       `json:"excluded,omitempty"`
}

// SwitchPreviewResponse is the response for
// POST /v1/subscription/switch-preview.
//
// Verdict, when present, is a transition that needs special handling before
// checkout; the breakdown still prices the computed configuration so the
// console can render both at once.
type SwitchPreviewResponse struct {
	Plans    types.PlanIDs       `json:"plans"`
	Verdict  *selection.Verdict  `json:"verdict,omitempty"`
	Checkout pricing.Checkout    `json:"checkout"`
	Tax      *pricing.TaxSummary `json:"tax,omitempty"`
	Verified bool                `json:"verified"`
}

// SwitchHandler serves the plan-switch preview: it loads the user's current
// subscription and usage, computes the transferred configuration for the
// target plan, checks the transition rules, and prices the result.
type SwitchHandler struct {
	cat       *catalog.Catalog
	subs      SubscriptionReader
	usage     UsageReader
	oracle    PricingOracle
	validator *core.Validator
	logger    *slog.Logger
}

// NewSwitchHandler creates a SwitchHandler. The oracle may be nil; the
// preview then carries the optimistic catalog price only.
func NewSwitchHandler(cat *catalog.Catalog, subs SubscriptionReader, usage UsageReader, oracle PricingOracle, v *core.Validator, l *slog.Logger) *SwitchHandler {
	if l == nil {
		l = slog.Default()
	}
	return &SwitchHandler{
		cat:       cat,
		subs:      subs,
		usage:     usage,
		oracle:    oracle,
		validator: v,
		logger:    l,
	}
}

// RegisterRoutes mounts the switch-preview routes on the given router.
func (h *SwitchHandler) RegisterRoutes(r chi.Router) {
	r.Post("/subscription/switch-preview", h.HandlePreview)
}

// HandlePreview computes the configuration, verdict, and breakdown for
// moving the user onto the target plan.
// POST /v1/subscription/switch-preview
//
// A user with no active subscription switches from the free tier: the
// transfer starts empty and the transition rules see a nil subscription.
func (h *SwitchHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	var req SwitchPreviewRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		core.Error(w, r, err)
		return
	}
	if _, ok := h.cat.Get(req.TargetPlan); !ok || catalog.IsAddon(req.TargetPlan) {
		core.Error(w, r, types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidPlan,
			"Target must be a known plan",
			nil,
			map[string]any{"plan": string(req.TargetPlan)},
		))
		return
	}
	excluded, err := parseFamilies(req.Excluded)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	sub, usage, err := h.fetchState(r.Context(), req.UserID, req.OrganizationID)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	var current types.PlanIDs
	if sub != nil {
		current = sub.Plans
	}
	plans := selection.SwitchPlan(h.cat, current, req.TargetPlan, selection.SwitchOptions{
		Usage:        usage,
		Excluded:     excluded,
		Subscription: sub,
	})
	verdict := selection.CheckTransition(h.cat, sub, plans)

	cycle, currency, coupon := previewTerms(req, sub)
	sel := selection.New(h.cat, plans, cycle, currency).ApplyCapRules()

	check := verifyPrice(r.Context(), h.oracle, h.logger, sel, coupon)

	resp := SwitchPreviewResponse{
		Plans:    sel.PlanIDs(),
		Verdict:  verdict,
		Checkout: pricing.ComputeCheckout(h.cat, sel, check),
		Tax:      pricing.FormatTax(check),
		Verified: check != nil,
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: resp})
}

// fetchState loads the subscription and usage snapshot concurrently. A
// missing subscription is the free tier, not an error; a missing usage row
// is already the zero snapshot at the repository level.
func (h *SwitchHandler) fetchState(ctx context.Context, userID, orgID string) (*types.Subscription, *types.OrganizationUsage, error) {
	var (
		sub   *types.Subscription
		usage *types.OrganizationUsage
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := h.subs.GetCurrent(ctx, userID)
		if err != nil {
			var appErr *types.AppError
			if errors.As(err, &appErr) && appErr.Code == types.ErrCodeNotFoundSubscription {
				return nil
			}
			return err
		}
		sub = s
		return nil
	})
	g.Go(func() error {
		if orgID == "" {
			return nil
		}
		u, err := h.usage.GetSnapshot(ctx, orgID)
		if err != nil {
			return err
		}
		usage = u
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return sub, usage, nil
}

// previewTerms resolves the cycle, currency, and coupon the preview is
// priced under: explicit request values win, then the current
// subscription's, then the yearly EUR defaults.
func previewTerms(req SwitchPreviewRequest, sub *types.Subscription) (types.Cycle, types.Currency, string) {
	cycle := req.Cycle
	currency := req.Currency
	coupon := ""
	if sub != nil {
		if cycle == 0 {
			cycle = sub.Cycle
		}
		if currency == "" {
			currency = sub.Currency
		}
		coupon = sub.Coupon
	}
	if !cycle.IsValid() {
		cycle = types.CycleYearly
	}
	if !currency.IsValid() {
		currency = types.CurrencyEUR
	}
	return cycle, currency, coupon
}

// parseFamilies converts the request's excluded-family names into the
// catalog's family set.
func parseFamilies(names []string) (map[catalog.Family]bool, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make(map[catalog.Family]bool, len(names))
	for _, n := range names {
		f, ok := catalog.ParseFamily(n)
		if !ok {
			return nil, types.NewAppErrorWithDetails(
				types.ErrCodeValidationInvalidPlan,
				"Unknown addon family",
				nil,
				map[string]any{"family": n},
			)
		}
		out[f] = true
	}
	return out, nil
}
