package selection

import (
	"plancheck/internal/catalog"
	"plancheck/internal/types"
)

// VerdictType classifies a disallowed or special-handling plan transition.
type VerdictType string

const (
	// VerdictLumoPlus flags a move onto the dedicated Lumo plan while
	// another paid plan is held; the verdict carries an alternative
	// configuration (current plan + one Lumo seat) the caller may apply
	// instead.
	VerdictLumoPlus VerdictType = "lumo-plus"
	// VerdictPlusToPlus flags a move between entry-tier plans of different
	// products, which is commercially disallowed.
	VerdictPlusToPlus VerdictType = "plus-to-plus"
	// VerdictVisionaryDowngrade flags leaving the all-inclusive top tier;
	// the caller must get explicit confirmation before proceeding.
	VerdictVisionaryDowngrade VerdictType = "visionary-downgrade"
)

// Verdict is a first-class return value, not an error: the caller branches
// on it. Alternative, when set, is a configuration the caller may offer in
// place of the requested one.
type Verdict struct {
	Type        VerdictType   `json:"type"`
	Alternative types.PlanIDs `json:"alternative,omitempty"`
}

// product identifies the single product an entry-tier plan covers.
type product string

const (
	productMail  product = "mail"
	productDrive product = "drive"
	productVPN   product = "vpn"
	productPass  product = "pass"
	productLumo  product = "lumo"
)

// plusProducts marks the entry-tier single-product plans and the products
// each covers. A plan absent from this table is not subject to the
// plus-to-plus rule. A pair of plus plans is a recognized upgrade when they
// share at least one product: legacy tier to current tier of the same
// product, and single product to a bundle containing it, both fall out of
// that rule.
var plusProducts = map[types.PlanName][]product{
	types.PlanMailPlus:       {productMail},
	types.PlanMailPlusLegacy: {productMail},
	types.PlanDrivePlus:      {productDrive},
	types.PlanVPNPlus:        {productVPN},
	types.PlanVPNPlusLegacy:  {productVPN},
	types.PlanPassPlus:       {productPass},
	types.PlanPassLifetime:   {productPass},
	types.PlanVPNPassBundle:  {productVPN, productPass},
	types.PlanLumoPlus:       {productLumo},
}

// CheckTransition decides whether moving the subscription onto the target
// configuration is allowed. nil means allowed. Rules are evaluated in
// priority order and only the first matching verdict is returned;
// simultaneous concerns are deliberately not both surfaced.
func CheckTransition(cat *catalog.Catalog, sub *types.Subscription, target types.PlanIDs) *Verdict {
	currentPlan := sub.PrimaryPlan(catalog.IsAddon)
	targetPlan := primaryPlan(target)

	// Rule 1: the dedicated Lumo plan conflicts with any other paid plan.
	// Rather than hard-failing, compute the configuration the customer
	// probably wants: keep the current plan and add one Lumo seat.
	if targetPlan == types.PlanLumoPlus && currentPlan != types.PlanFree && currentPlan != types.PlanLumoPlus {
		var alt types.PlanIDs
		if addon, ok := cat.AddonFor(currentPlan, catalog.FamilyLumo); ok {
			alt = sub.Plans.Normalize()
			alt[addon]++
		}
		return &Verdict{Type: VerdictLumoPlus, Alternative: alt}
	}

	// Rule 2: entry-tier plans of different products are mutually
	// exclusive. The lifetime one-time-purchase plan is reachable from
	// anything, and an externally managed subscription may always add an
	// independently billed plan on the primary channel.
	if _, ok := plusProducts[currentPlan]; ok {
		if _, ok := plusProducts[targetPlan]; ok {
			switch {
			case targetPlan == types.PlanPassLifetime:
				// allowed from anything
			case sub != nil && sub.External.IsManaged():
				// multi-subscription coexistence
			case !sharesProduct(currentPlan, targetPlan):
				return &Verdict{Type: VerdictPlusToPlus}
			}
		}
	}

	// Rule 3: leaving the top tier needs explicit confirmation.
	if currentPlan == types.PlanVisionary && targetPlan != types.PlanVisionary {
		return &Verdict{Type: VerdictVisionaryDowngrade}
	}

	return nil
}

// primaryPlan returns the plan-type entry of a configuration, or PlanFree.
func primaryPlan(ids types.PlanIDs) types.PlanName {
	for name, qty := range ids {
		if qty > 0 && !catalog.IsAddon(name) {
			return name
		}
	}
	return types.PlanFree
}

// sharesProduct reports whether two plus plans cover at least one common
// product.
func sharesProduct(a, b types.PlanName) bool {
	for _, pa := range plusProducts[a] {
		for _, pb := range plusProducts[b] {
			if pa == pb {
				return true
			}
		}
	}
	return false
}
