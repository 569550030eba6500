// Package types defines the domain records and enums shared across the
// plancheck engine: plan definitions, configurations, usage snapshots,
// subscription records, and oracle check results.
//
// Everything here is plain immutable data. The engine packages (catalog,
// selection, pricing) never mutate values they receive; transforms return
// fresh values.
package types

import "time"

// Plan is an immutable catalog record describing a plan or addon.
//
// Pricing maps cycle length to the recurring price in integer minor currency
// units. PricingPerMember, when present, is the direct per-member price table
// used by the pricing aggregator for member-addon-supporting plans.
// DefaultPricing, when present, is the non-promotional table used to derive
// renewal amounts for plans sold at an introductory price.
//
// Capacity fields are per unit quantity and default to zero when a catalog
// source omits them; zero is a real value, never "unknown".
type Plan struct {
	Name             PlanName        `json:"name"`
	Type             PlanType        `json:"type"`
	Title            string          `json:"title"`
	Pricing          map[Cycle]int64 `json:"pricing"`
	PricingPerMember map[Cycle]int64 `json:"pricing_per_member,omitempty"`
	DefaultPricing   map[Cycle]int64 `json:"default_pricing,omitempty"`

	MaxMembers   int   `json:"max_members"`
	MaxDomains   int   `json:"max_domains"`
	MaxAddresses int   `json:"max_addresses"`
	MaxSpace     int64 `json:"max_space"`
	MaxVPN       int   `json:"max_vpn"`
	MaxIPs       int   `json:"max_ips"`
	MaxAISeats   int   `json:"max_ai_seats"`
	MaxLumoSeats int   `json:"max_lumo_seats"`
	MaxCalendars int   `json:"max_calendars"`
}

// Price returns the price for the given cycle, or 0 when the table has no
// entry. Missing entries are a supported catalog state, not an error.
func (p *Plan) Price(c Cycle) int64 {
	if p == nil {
		return 0
	}
	return p.Pricing[c]
}

// PlanIDs is the name -> quantity mapping fully describing a selection.
// A valid configuration holds only strictly positive quantities and at most
// one entry of plan type; the empty map is the implicit free tier.
type PlanIDs map[PlanName]int

// Normalize returns a copy with every entry of quantity <= 0 removed.
// The receiver is never modified.
func (p PlanIDs) Normalize() PlanIDs {
	out := make(PlanIDs, len(p))
	for name, qty := range p {
		if qty > 0 {
			out[name] = qty
		}
	}
	return out
}

// Clone returns a shallow copy of the configuration.
func (p PlanIDs) Clone() PlanIDs {
	out := make(PlanIDs, len(p))
	for name, qty := range p {
		out[name] = qty
	}
	return out
}

// Equal reports whether two configurations hold identical entries.
func (p PlanIDs) Equal(other PlanIDs) bool {
	if len(p) != len(other) {
		return false
	}
	for name, qty := range p {
		if other[name] != qty {
			return false
		}
	}
	return true
}

// OrganizationUsage is a read-only snapshot of what an organization
// currently consumes, independent of what is nominally purchased. The engine
// uses it only as a floor when sizing addon transfers; it is never mutated.
type OrganizationUsage struct {
	UsedMembers   int   `json:"used_members"`
	UsedDomains   int   `json:"used_domains"`
	UsedAddresses int   `json:"used_addresses"`
	UsedSpace     int64 `json:"used_space"`
	AssignedSpace int64 `json:"assigned_space"`
	UsedVPN       int   `json:"used_vpn"`
	UsedAISeats   int   `json:"used_ai_seats"`
	UsedLumoSeats int   `json:"used_lumo_seats"`
	UsedCalendars int   `json:"used_calendars"`
}

// Subscription is the customer's current subscription record as stored by
// the billing backend.
type Subscription struct {
	ID        string             `json:"id"`
	Plans     PlanIDs            `json:"plans"`
	Cycle     Cycle              `json:"cycle"`
	Currency  Currency           `json:"currency"`
	Coupon    string             `json:"coupon,omitempty"`
	Status    SubscriptionStatus `json:"status"`
	Renew     bool               `json:"renew"`
	External  ExternalBilling    `json:"external"`
	PeriodEnd time.Time          `json:"period_end"`
}

// PrimaryPlan returns the single plan-type entry of the subscription, or
// PlanFree when the subscription holds only addons (or nothing at all).
// isAddon decides entry kinds; it is supplied by the catalog so this package
// stays free of classification tables.
func (s *Subscription) PrimaryPlan(isAddon func(PlanName) bool) PlanName {
	if s == nil {
		return PlanFree
	}
	for name, qty := range s.Plans {
		if qty > 0 && !isAddon(name) {
			return name
		}
	}
	return PlanFree
}

// TaxLine is one externally supplied tax entry on a check result. Rate is a
// percentage (20 means 20%); Amount is in minor currency units.
type TaxLine struct {
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
	Amount int64   `json:"amount"`
}

// CheckResult is the authoritative pricing verdict produced by the remote
// payments endpoint. The engine treats it as an opaque oracle: it reads the
// figures, it never second-guesses them (except in custom-billings mode,
// where the proration amount is not representative of the recurring price).
type CheckResult struct {
	Amount           int64            `json:"amount"`
	CouponDiscount   int64            `json:"coupon_discount"`
	Coupon           string           `json:"coupon,omitempty"`
	Cycle            Cycle            `json:"cycle"`
	Currency         Currency         `json:"currency"`
	RenewAmount      *int64           `json:"renew_amount,omitempty"`
	SubscriptionMode SubscriptionMode `json:"subscription_mode"`
	Taxes            []TaxLine        `json:"taxes,omitempty"`
	TaxInclusive     bool             `json:"tax_inclusive"`
}
