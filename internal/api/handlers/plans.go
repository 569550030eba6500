// Package handlers contains the HTTP handlers for the plancheck API: the
// catalog listing and the checkout / plan-switch preview endpoints the
// account console drives its upgrade flows with.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"plancheck/internal/catalog"
	"plancheck/internal/core"
	"plancheck/internal/types"
)

// PlanDTO is a catalog entry shaped for the console.
type PlanDTO struct {
	Name             types.PlanName        `json:"name"`
	Type             types.PlanType        `json:"type"`
	Title            string                `json:"title"`
	Pricing          map[types.Cycle]int64 `json:"pricing"`
	PricingPerMember map[types.Cycle]int64 `json:"pricing_per_member,omitempty"`
	DefaultPricing   map[types.Cycle]int64 `json:"default_pricing,omitempty"`

	MaxMembers   int   `json:"max_members"`
	MaxDomains   int   `json:"max_domains"`
	MaxAddresses int   `json:"max_addresses"`
	MaxSpace     int64 `json:"max_space"`
	MaxVPN       int   `json:"max_vpn"`
	MaxIPs       int   `json:"max_ips"`
	MaxAISeats   int   `json:"max_ai_seats"`
	MaxLumoSeats int   `json:"max_lumo_seats"`
	MaxCalendars int   `json:"max_calendars"`

	// Addons sold for this plan, keyed by family.
	Addons map[catalog.Family]types.PlanName `json:"addons,omitempty"`
}

// PlansHandler serves the plan catalog.
type PlansHandler struct {
	cat *catalog.Catalog
}

// NewPlansHandler creates a PlansHandler over the given catalog.
func NewPlansHandler(cat *catalog.Catalog) *PlansHandler {
	return &PlansHandler{cat: cat}
}

// RegisterRoutes mounts the catalog routes on the given router.
func (h *PlansHandler) RegisterRoutes(r chi.Router) {
	r.Get("/plans", h.HandleList)
}

// HandleList returns every plan and addon definition, sorted by name.
// GET /v1/plans
func (h *PlansHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	plans := h.cat.Plans()

	out := make([]PlanDTO, 0, len(plans))
	for _, p := range plans {
		dto := PlanDTO{
			Name:             p.Name,
			Type:             p.Type,
			Title:            p.Title,
			Pricing:          p.Pricing,
			PricingPerMember: p.PricingPerMember,
			DefaultPricing:   p.DefaultPricing,
			MaxMembers:       p.MaxMembers,
			MaxDomains:       p.MaxDomains,
			MaxAddresses:     p.MaxAddresses,
			MaxSpace:         p.MaxSpace,
			MaxVPN:           p.MaxVPN,
			MaxIPs:           p.MaxIPs,
			MaxAISeats:       p.MaxAISeats,
			MaxLumoSeats:     p.MaxLumoSeats,
			MaxCalendars:     p.MaxCalendars,
		}

		if families := h.cat.SupportedFamilies(p.Name); len(families) > 0 {
			dto.Addons = make(map[catalog.Family]types.PlanName, len(families))
			for _, f := range families {
				if addon, ok := h.cat.AddonFor(p.Name, f); ok {
					dto.Addons[f] = addon
				}
			}
		}

		out = append(out, dto)
	}

	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: out})
}
