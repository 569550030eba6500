// Package pricing derives the checkout breakdown and tax summary shown on
// the payment page. Everything here is a pure computation: identical inputs
// produce identical output, because the console runs it optimistically
// before the pricing oracle answers and again after, and the two must agree
// whenever the inputs agree.
package pricing

import (
	"math"
	"sort"

	"plancheck/internal/catalog"
	"plancheck/internal/selection"
	"plancheck/internal/types"
)

// AddonLine is one addon row of the breakdown.
type AddonLine struct {
	Name     types.PlanName `json:"name"`
	Title    string         `json:"title"`
	Quantity int            `json:"quantity"`
	PerCycle int64          `json:"per_cycle"`
	PerMonth int64          `json:"per_month"`
}

// Checkout is the computed price summary for a selected configuration. All
// amounts are integer minor currency units; percentages are plain integers.
//
// A Checkout is derived fresh on every query and is never authoritative: it
// is the display fallback until a server-verified check result arrives. An
// all-zero breakdown is the sentinel for "pricing unavailable".
type Checkout struct {
	PlanName  types.PlanName `json:"plan_name"`
	PlanTitle string         `json:"plan_title"`
	Users     int            `json:"users"`
	Cycle     types.Cycle    `json:"cycle"`
	Currency  types.Currency `json:"currency"`
	Coupon    string         `json:"coupon,omitempty"`

	// Regular is the undiscounted catalog price for the full cycle.
	Regular int64 `json:"regular"`
	// Amount is the charged price for the full cycle before the coupon.
	Amount               int64 `json:"amount"`
	Discount             int64 `json:"discount"`
	WithDiscountPerCycle int64 `json:"with_discount_per_cycle"`
	WithDiscountPerMonth int64 `json:"with_discount_per_month"`
	DiscountPercent      int   `json:"discount_percent"`
	RenewPerCycle        int64 `json:"renew_per_cycle"`

	MembersPerMonth   int64       `json:"members_per_month"`
	AddonsPerMonth    int64       `json:"addons_per_month"`
	PerMemberPerMonth int64       `json:"per_member_per_month"`
	Addons            []AddonLine `json:"addons"`
}

// ComputeCheckout builds the breakdown for the selected configuration.
//
// The server-confirmed amount is preferred over the optimistic catalog
// price, with one exception: in custom-billings mode (a mid-cycle addon
// change billed separately) the oracle reports a proration, and showing
// that partial figure as the plan price would mislead the customer, so the
// optimistic full price is shown instead.
//
// Catalog lookups that fail contribute zero; the aggregator never errors.
func ComputeCheckout(cat *catalog.Catalog, sel selection.SelectedPlan, check *types.CheckResult) Checkout {
	cycle := sel.Cycle()
	months := cycle.Months()
	users := sel.TotalUsers()
	planName := sel.Plan()
	plan, _ := cat.Get(planName)

	out := Checkout{
		PlanName:  planName,
		PlanTitle: plan.Title,
		Users:     users,
		Cycle:     cycle,
		Currency:  sel.Currency(),
		Addons:    []AddonLine{},
	}

	// Optimistic full price and addon lines from the catalog. The
	// undiscounted monthly baseline is computed here, independently of the
	// discounted figure, to avoid compounding rounding error.
	ids := sel.PlanIDs()
	names := make([]types.PlanName, 0, len(ids))
	for name := range ids {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	var regular, addonsPerMonth int64
	for _, name := range names {
		qty := ids[name]
		def, ok := cat.Get(name)
		if !ok {
			continue
		}
		perCycle := def.Price(cycle) * int64(qty)
		regular += perCycle
		if catalog.IsAddon(name) {
			line := AddonLine{
				Name:     name,
				Title:    def.Title,
				Quantity: qty,
				PerCycle: perCycle,
				PerMonth: perCycle / months,
			}
			addonsPerMonth += line.PerMonth
			out.Addons = append(out.Addons, line)
		}
	}
	out.Regular = regular
	out.AddonsPerMonth = addonsPerMonth

	// Amount: server-confirmed when available and representative.
	amount := regular
	if check != nil && check.SubscriptionMode != types.ModeCustomBillings {
		amount = check.Amount
	}
	out.Amount = amount

	var discount int64
	if check != nil {
		discount = check.CouponDiscount
		if discount < 0 {
			discount = -discount
		}
		out.Coupon = check.Coupon
	}
	out.Discount = discount

	withDiscount := amount - discount
	if withDiscount < 0 {
		withDiscount = 0
	}
	out.WithDiscountPerCycle = withDiscount
	out.WithDiscountPerMonth = withDiscount / months

	if regular > 0 {
		out.DiscountPercent = int(math.Round(100 * float64(discount) / float64(regular)))
	}

	// The plan's own per-member contribution: from the direct per-member
	// price table when the plan defines one, otherwise backed into from the
	// totals.
	if pm := plan.PricingPerMember[cycle]; pm > 0 {
		out.MembersPerMonth = pm * int64(users) / months
	} else {
		out.MembersPerMonth = regular/months - addonsPerMonth
	}

	// Per-member view. Member-addon-supporting plans always show the full
	// (non-discounted) per-seat price; partial discounts divided across
	// seats produce confusing artifacts.
	if cat.SupportsMemberAddons(planName) {
		out.PerMemberPerMonth = out.MembersPerMonth / int64(users)
	} else {
		out.PerMemberPerMonth = out.WithDiscountPerMonth / int64(users)
	}

	// Renewal price: the oracle's override wins; otherwise the plan's
	// non-promotional table, falling back to the discounted cycle price.
	switch {
	case check != nil && check.RenewAmount != nil:
		out.RenewPerCycle = *check.RenewAmount
	case plan.DefaultPricing[cycle] > 0:
		out.RenewPerCycle = plan.DefaultPricing[cycle]
	default:
		out.RenewPerCycle = withDiscount
	}

	return out
}
