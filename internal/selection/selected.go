// Package selection implements the selected-configuration model: the
// immutable value type describing what a customer has picked, its derived
// capacity aggregates, and the transforms the console applies to it
// (seat counts, cap rules, plan changes, cross-subscription switches).
//
// Every transform is a pure function returning a new value. A no-op
// transform returns the receiver unchanged, which lets callers cheaply
// detect "nothing happened" by comparing configurations.
package selection

import (
	"plancheck/internal/catalog"
	"plancheck/internal/types"
)

// SelectedPlan is a customer's chosen plan plus addon quantities, bound to a
// billing cycle and currency. The catalog reference is borrowed for lookups;
// it is never mutated.
type SelectedPlan struct {
	planIDs  types.PlanIDs
	cycle    types.Cycle
	currency types.Currency
	cat      *catalog.Catalog
}

// New constructs a SelectedPlan from an explicit configuration. The
// configuration is normalized: entries with quantity <= 0 are dropped, and
// addon entries sold under a different plan's line are pruned (the seat
// transforms can only adjust the plan's own addons, so a foreign entry
// would evade the cap rules). An empty configuration is the implicit free
// tier.
func New(cat *catalog.Catalog, planIDs types.PlanIDs, cycle types.Cycle, currency types.Currency) SelectedPlan {
	return SelectedPlan{
		planIDs:  pruneForeignAddons(cat, planIDs.Normalize()),
		cycle:    cycle,
		currency: currency,
		cat:      cat,
	}
}

// pruneForeignAddons removes addon entries that the configuration's plan
// does not sell. An addon-only configuration has no plan line to judge
// against and is left untouched. ids must be a freshly built map.
func pruneForeignAddons(cat *catalog.Catalog, ids types.PlanIDs) types.PlanIDs {
	plan := types.PlanFree
	for name := range ids {
		if !catalog.IsAddon(name) {
			plan = name
			break
		}
	}
	if plan == types.PlanFree {
		return ids
	}
	for name := range ids {
		fam, ok := catalog.FamilyOf(name)
		if !ok {
			continue
		}
		if own, ok := cat.AddonFor(plan, fam); ok && own == name {
			continue
		}
		delete(ids, name)
	}
	return ids
}

// FromSubscription constructs a SelectedPlan mirroring an existing
// subscription record.
func FromSubscription(cat *catalog.Catalog, sub *types.Subscription) SelectedPlan {
	if sub == nil {
		return New(cat, nil, types.CycleYearly, types.CurrencyEUR)
	}
	cycle := sub.Cycle
	if !cycle.IsValid() {
		cycle = types.CycleYearly
	}
	currency := sub.Currency
	if !currency.IsValid() {
		currency = types.CurrencyEUR
	}
	return New(cat, sub.Plans, cycle, currency)
}

// PlanIDs returns a copy of the configuration. The copy keeps callers from
// reaching into the model's state.
func (s SelectedPlan) PlanIDs() types.PlanIDs {
	return s.planIDs.Clone()
}

// Cycle returns the selected billing cycle.
func (s SelectedPlan) Cycle() types.Cycle { return s.cycle }

// Currency returns the selected currency.
func (s SelectedPlan) Currency() types.Currency { return s.currency }

// Plan returns the single plan-type entry of the configuration, or PlanFree
// for an addon-only or empty configuration.
func (s SelectedPlan) Plan() types.PlanName {
	for name, qty := range s.planIDs {
		if qty > 0 && !catalog.IsAddon(name) {
			return name
		}
	}
	return types.PlanFree
}

// Total sums the resource grants of the plan entry and every addon entry,
// each multiplied by its quantity.
func (s SelectedPlan) Total(r types.Resource) int64 {
	var total int64
	for name, qty := range s.planIDs {
		total += s.cat.ResolveLimit(name, r) * int64(qty)
	}
	return total
}

// TotalMembers returns the member capacity of the configuration.
func (s SelectedPlan) TotalMembers() int { return int(s.Total(types.ResourceMembers)) }

// TotalDomains returns the custom-domain capacity of the configuration.
func (s SelectedPlan) TotalDomains() int { return int(s.Total(types.ResourceDomains)) }

// TotalIPs returns the dedicated-IP capacity of the configuration.
func (s SelectedPlan) TotalIPs() int { return int(s.Total(types.ResourceIPs)) }

// TotalScribes returns the AI-seat capacity of the configuration.
func (s SelectedPlan) TotalScribes() int { return int(s.Total(types.ResourceAISeats)) }

// TotalLumo returns the Lumo-seat capacity of the configuration.
func (s SelectedPlan) TotalLumo() int { return int(s.Total(types.ResourceLumoSeats)) }

// TotalUsers returns the number of users inhabiting the configuration for
// pricing purposes. A configuration with zero member capacity (a single-user
// storage-only plan, or the free tier) still has exactly one user.
func (s SelectedPlan) TotalUsers() int {
	if m := s.TotalMembers(); m > 1 {
		return m
	}
	return 1
}

// SetSeatCount adjusts the addon of the given family so that the
// configuration grants exactly newCount seats of that family's resource.
//
// When the current plan sells no addon for the family, the configuration is
// returned unchanged; that is a no-op, not an error. The addon entry is
// removed entirely when its quantity reaches zero, and quantities never go
// negative. Calling with the count already in effect returns the receiver.
func (s SelectedPlan) SetSeatCount(f catalog.Family, newCount int) SelectedPlan {
	addon, ok := s.cat.AddonFor(s.Plan(), f)
	if !ok {
		return s
	}

	existing := s.planIDs[addon]
	delta := newCount - int(s.Total(catalog.ResourceOf(f)))
	next := existing + delta
	if next < 0 {
		next = 0
	}
	if next == existing {
		return s
	}

	ids := s.planIDs.Clone()
	if next == 0 {
		delete(ids, addon)
	} else {
		ids[addon] = next
	}
	s.planIDs = ids
	return s
}

// SetScribeCount adjusts the AI-seat addon quantity.
func (s SelectedPlan) SetScribeCount(n int) SelectedPlan {
	return s.SetSeatCount(catalog.FamilyScribe, n)
}

// SetLumoCount adjusts the Lumo-seat addon quantity.
func (s SelectedPlan) SetLumoCount(n int) SelectedPlan {
	return s.SetSeatCount(catalog.FamilyLumo, n)
}

// cappedFamilies are the seat families whose totals may not exceed the
// configuration's total user count.
var cappedFamilies = []catalog.Family{catalog.FamilyScribe, catalog.FamilyLumo}

// ApplyCapRules brings every capped seat family down to its maximum.
// After this call, seat addons never exceed total members. Idempotent.
func (s SelectedPlan) ApplyCapRules() SelectedPlan {
	users := s.TotalUsers()
	for _, f := range cappedFamilies {
		if int(s.Total(catalog.ResourceOf(f))) > users {
			s = s.SetSeatCount(f, users)
		}
	}
	return s
}

// ChangePlan rebuilds the configuration around newPlan, carrying each addon
// family's quantity across to the structurally equivalent addon of the new
// plan. Families the new plan does not sell are dropped. Cap rules are
// applied last.
//
// ChangePlan deliberately ignores organization usage; sizing against usage
// when crossing subscription boundaries is SwitchPlan's job.
func (s SelectedPlan) ChangePlan(newPlan types.PlanName) SelectedPlan {
	ids := types.PlanIDs{newPlan: 1}
	for name, qty := range s.planIDs {
		if qty <= 0 {
			continue
		}
		fam, ok := catalog.FamilyOf(name)
		if !ok {
			continue
		}
		if addon, ok := s.cat.AddonFor(newPlan, fam); ok {
			ids[addon] += qty
		}
	}

	next := SelectedPlan{
		planIDs:  ids.Normalize(),
		cycle:    s.cycle,
		currency: s.currency,
		cat:      s.cat,
	}.ApplyCapRules()

	if next.planIDs.Equal(s.planIDs) {
		return s
	}
	return next
}
