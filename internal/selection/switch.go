package selection

import (
	"plancheck/internal/catalog"
	"plancheck/internal/types"
)

// SwitchOptions carries the optional inputs of SwitchPlan.
type SwitchOptions struct {
	// Usage is the organization's live consumption snapshot. When present it
	// floors each addon family so the new configuration covers what the
	// customer actually uses, not merely what was nominally purchased.
	Usage *types.OrganizationUsage

	// Excluded suppresses transfer for the named families entirely, for
	// callers that want a clean switch with no addon carry-over.
	Excluded map[catalog.Family]bool

	// Subscription is the customer's current subscription record, consulted
	// only for channel-specific rules (see Lumo mobile below).
	Subscription *types.Subscription
}

// SwitchPlan computes the addon quantities for moving the current
// configuration onto target. For each family the target plan sells:
//
//  1. Size the addon from organization usage: ceil(deficit / perUnitGrant)
//     where deficit is usage minus the target plan's built-in capacity.
//  2. Never shrink below the quantity already present in the source
//     configuration for that family.
//  3. Omit the family when the result is zero.
//
// Member addons are sized against five resources at once (members,
// addresses, space, VPN connections, calendars) because one member unit
// grants fixed increments of all of them; the binding constraint may be any
// one. IP addons are sized directly from the source configuration's IP total
// since IPs are plan-attached, not usage-attached.
//
// A subscription managed by the Lumo mobile plan never transfers its Lumo
// seats: a web-purchased plan must not silently inherit a platform-managed
// entitlement.
func SwitchPlan(cat *catalog.Catalog, current types.PlanIDs, target types.PlanName, opts SwitchOptions) types.PlanIDs {
	excluded := make(map[catalog.Family]bool, len(opts.Excluded)+1)
	for f, v := range opts.Excluded {
		if v {
			excluded[f] = true
		}
	}
	if opts.Subscription != nil &&
		opts.Subscription.PrimaryPlan(catalog.IsAddon) == types.PlanLumoMobile {
		excluded[catalog.FamilyLumo] = true
	}

	var usage types.OrganizationUsage
	if opts.Usage != nil {
		usage = *opts.Usage
	}

	cur := New(cat, current, types.CycleYearly, types.CurrencyEUR)

	out := types.PlanIDs{target: 1}
	for _, fam := range cat.SupportedFamilies(target) {
		if excluded[fam] {
			continue
		}
		addon, ok := cat.AddonFor(target, fam)
		if !ok {
			continue
		}

		var needed int
		switch fam {
		case catalog.FamilyMember:
			needed = memberUnitsNeeded(cat, target, addon, usage)
		case catalog.FamilyIP:
			needed = int(int64(cur.TotalIPs()) - cat.ResolveLimit(target, types.ResourceIPs))
		case catalog.FamilyDomain:
			needed = unitsNeeded(int64(usage.UsedDomains), cat.ResolveLimit(target, types.ResourceDomains), cat.ResolveLimit(addon, types.ResourceDomains))
		case catalog.FamilyScribe:
			needed = unitsNeeded(int64(usage.UsedAISeats), cat.ResolveLimit(target, types.ResourceAISeats), cat.ResolveLimit(addon, types.ResourceAISeats))
		case catalog.FamilyLumo:
			needed = unitsNeeded(int64(usage.UsedLumoSeats), cat.ResolveLimit(target, types.ResourceLumoSeats), cat.ResolveLimit(addon, types.ResourceLumoSeats))
		}

		if carried := familyQuantity(current, fam); carried > needed {
			needed = carried
		}
		if needed > 0 {
			out[addon] = needed
		}
	}

	return out.Normalize()
}

// memberUnitsNeeded sizes the member addon so the target configuration
// covers every member-granted resource the organization consumes. The
// requirement is the maximum across the five deficits, each divided by the
// addon's per-unit grant of that resource.
func memberUnitsNeeded(cat *catalog.Catalog, target, addon types.PlanName, usage types.OrganizationUsage) int {
	space := usage.UsedSpace
	if usage.AssignedSpace > space {
		space = usage.AssignedSpace
	}

	checks := []struct {
		resource types.Resource
		used     int64
	}{
		{types.ResourceMembers, int64(usage.UsedMembers)},
		{types.ResourceAddresses, int64(usage.UsedAddresses)},
		{types.ResourceSpace, space},
		{types.ResourceVPN, int64(usage.UsedVPN)},
		{types.ResourceCalendars, int64(usage.UsedCalendars)},
	}

	needed := 0
	for _, c := range checks {
		n := unitsNeeded(c.used, cat.ResolveLimit(target, c.resource), cat.ResolveLimit(addon, c.resource))
		if n > needed {
			needed = n
		}
	}
	return needed
}

// unitsNeeded returns ceil((used - builtin) / perUnit), floored at zero.
// A zero perUnit grant means the addon cannot help with this resource, so
// it imposes no requirement.
func unitsNeeded(used, builtin, perUnit int64) int {
	deficit := used - builtin
	if deficit <= 0 || perUnit <= 0 {
		return 0
	}
	return int((deficit + perUnit - 1) / perUnit)
}

// familyQuantity sums the quantities of every addon of the given family in
// the configuration.
func familyQuantity(ids types.PlanIDs, f catalog.Family) int {
	total := 0
	for name, qty := range ids {
		if qty <= 0 {
			continue
		}
		if fam, ok := catalog.FamilyOf(name); ok && fam == f {
			total += qty
		}
	}
	return total
}
