package catalog

import "plancheck/internal/types"

// Storage sizes in bytes.
const (
	gib = int64(1) << 30
	tib = int64(1) << 40
)

// defaultPlans is the production plan table. Prices are integer minor
// currency units per full cycle (a yearly entry is the price of the whole
// year, not twelve times the monthly entry).
//
// Capacity fields omitted here are zero, which is the resolved value for
// "not granted"; the engine never sees null.
var defaultPlans = []types.Plan{
	{
		Name:         types.PlanFree,
		Type:         types.TypePlan,
		Title:        "Free",
		Pricing:      map[types.Cycle]int64{},
		MaxMembers:   1,
		MaxAddresses: 1,
		MaxSpace:     1 * gib,
		MaxVPN:       1,
		MaxCalendars: 3,
	},
	{
		Name:  types.PlanMailPlus,
		Type:  types.TypePlan,
		Title: "Mail Plus",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 499,
			types.CycleYearly:  4788,
			types.CycleTwoYear: 8376,
		},
		MaxMembers:   1,
		MaxDomains:   1,
		MaxAddresses: 10,
		MaxSpace:     15 * gib,
		MaxVPN:       1,
		MaxCalendars: 25,
	},
	{
		Name:  types.PlanMailPlusLegacy,
		Type:  types.TypePlan,
		Title: "Mail Plus (legacy)",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 500,
			types.CycleYearly:  4800,
			types.CycleTwoYear: 7900,
		},
		MaxMembers:   1,
		MaxDomains:   1,
		MaxAddresses: 5,
		MaxSpace:     5 * gib,
		MaxVPN:       1,
		MaxCalendars: 25,
	},
	{
		Name:  types.PlanDrivePlus,
		Type:  types.TypePlan,
		Title: "Drive Plus",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 499,
			types.CycleYearly:  4788,
			types.CycleTwoYear: 8376,
		},
		MaxMembers:   1,
		MaxAddresses: 1,
		MaxSpace:     200 * gib,
		MaxVPN:       1,
		MaxCalendars: 3,
	},
	{
		Name:  types.PlanPassPlus,
		Type:  types.TypePlan,
		Title: "Pass Plus",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 499,
			types.CycleYearly:  2388,
			types.CycleTwoYear: 4776,
		},
		MaxMembers: 1,
		MaxSpace:   1 * gib,
	},
	{
		Name:  types.PlanPassLifetime,
		Type:  types.TypePlan,
		Title: "Pass + SimpleLogin Lifetime",
		Pricing: map[types.Cycle]int64{
			types.CycleYearly: 19900,
		},
		MaxMembers: 1,
		MaxSpace:   1 * gib,
	},
	{
		Name:  types.PlanVPNPlus,
		Type:  types.TypePlan,
		Title: "VPN Plus",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 999,
			types.CycleYearly:  7188,
			types.CycleTwoYear: 11976,
		},
		MaxMembers: 1,
		MaxVPN:     10,
	},
	{
		Name:  types.PlanVPNPlusLegacy,
		Type:  types.TypePlan,
		Title: "VPN Plus (legacy)",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 1000,
			types.CycleYearly:  9600,
			types.CycleTwoYear: 15900,
		},
		MaxMembers: 1,
		MaxVPN:     10,
	},
	{
		Name:  types.PlanVPNPassBundle,
		Type:  types.TypePlan,
		Title: "VPN and Pass Bundle",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 1099,
			types.CycleYearly:  8388,
			types.CycleTwoYear: 14376,
		},
		MaxMembers: 1,
		MaxVPN:     10,
		MaxSpace:   1 * gib,
	},
	{
		Name:  types.PlanBundle,
		Type:  types.TypePlan,
		Title: "Unlimited",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 1299,
			types.CycleYearly:  11988,
			types.CycleTwoYear: 19176,
		},
		MaxMembers:   1,
		MaxDomains:   3,
		MaxAddresses: 15,
		MaxSpace:     500 * gib,
		MaxVPN:       10,
		MaxCalendars: 25,
	},
	{
		Name:  types.PlanMailBusiness,
		Type:  types.TypePlan,
		Title: "Mail Business",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 799,
			types.CycleYearly:  8388,
			types.CycleTwoYear: 15576,
		},
		PricingPerMember: map[types.Cycle]int64{
			types.CycleMonthly: 799,
			types.CycleYearly:  8388,
			types.CycleTwoYear: 15576,
		},
		MaxMembers:   1,
		MaxDomains:   3,
		MaxAddresses: 10,
		MaxSpace:     50 * gib,
		MaxVPN:       1,
		MaxCalendars: 25,
	},
	{
		Name:  types.PlanVPNBusiness,
		Type:  types.TypePlan,
		Title: "VPN Business",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 3999,
			types.CycleYearly:  38388,
			types.CycleTwoYear: 71976,
		},
		PricingPerMember: map[types.Cycle]int64{
			types.CycleMonthly: 899,
			types.CycleYearly:  8628,
			types.CycleTwoYear: 16056,
		},
		// Two seats and one dedicated IP are included in the base price.
		MaxMembers: 2,
		MaxVPN:     20,
		MaxIPs:     1,
	},
	{
		Name:  types.PlanBundlePro,
		Type:  types.TypePlan,
		Title: "Business Suite",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 1299,
			types.CycleYearly:  13188,
			types.CycleTwoYear: 23976,
		},
		PricingPerMember: map[types.Cycle]int64{
			types.CycleMonthly: 1299,
			types.CycleYearly:  13188,
			types.CycleTwoYear: 23976,
		},
		MaxMembers:   1,
		MaxDomains:   3,
		MaxAddresses: 15,
		MaxSpace:     500 * gib,
		MaxVPN:       10,
		MaxCalendars: 25,
	},
	{
		Name:  types.PlanBundlePro2024,
		Type:  types.TypePlan,
		Title: "Business Suite 2024",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 1499,
			types.CycleYearly:  15588,
			types.CycleTwoYear: 28776,
		},
		PricingPerMember: map[types.Cycle]int64{
			types.CycleMonthly: 1499,
			types.CycleYearly:  15588,
			types.CycleTwoYear: 28776,
		},
		MaxMembers:   1,
		MaxDomains:   15,
		MaxAddresses: 15,
		MaxSpace:     1 * tib,
		MaxVPN:       10,
		MaxCalendars: 25,
	},
	{
		Name:  types.PlanVisionary,
		Type:  types.TypePlan,
		Title: "Visionary",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 2999,
			types.CycleYearly:  28788,
			types.CycleTwoYear: 47976,
		},
		MaxMembers:   6,
		MaxDomains:   10,
		MaxAddresses: 100,
		MaxSpace:     6 * tib,
		MaxVPN:       60,
		MaxCalendars: 25,
	},
	{
		Name:  types.PlanLumoPlus,
		Type:  types.TypePlan,
		Title: "Lumo Plus",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 1299,
			types.CycleYearly:  9588,
			types.CycleTwoYear: 19176,
		},
		MaxMembers: 1,
	},
	{
		Name:  types.PlanLumoMobile,
		Type:  types.TypePlan,
		Title: "Lumo Plus (mobile)",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 1299,
		},
		MaxMembers: 1,
	},

	// Addons. Seat addons (scribe, lumo, ip) are one-seat-per-unit via the
	// resolver; their raw fields are informational only.
	{
		Name:  types.AddonMemberMailBusiness,
		Type:  types.TypeAddon,
		Title: "Extra user",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 799,
			types.CycleYearly:  8388,
			types.CycleTwoYear: 15576,
		},
		MaxMembers:   1,
		MaxAddresses: 10,
		MaxSpace:     50 * gib,
		MaxVPN:       1,
		MaxCalendars: 25,
	},
	{
		Name:  types.AddonMemberVPNBusiness,
		Type:  types.TypeAddon,
		Title: "Extra user",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 899,
			types.CycleYearly:  8628,
			types.CycleTwoYear: 16056,
		},
		MaxMembers: 1,
		MaxVPN:     10,
	},
	{
		Name:  types.AddonMemberBundlePro,
		Type:  types.TypeAddon,
		Title: "Extra user",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 1299,
			types.CycleYearly:  13188,
			types.CycleTwoYear: 23976,
		},
		MaxMembers:   1,
		MaxAddresses: 15,
		MaxSpace:     500 * gib,
		MaxVPN:       10,
		MaxCalendars: 25,
	},
	{
		Name:  types.AddonMemberBundlePro2024,
		Type:  types.TypeAddon,
		Title: "Extra user",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 1499,
			types.CycleYearly:  15588,
			types.CycleTwoYear: 28776,
		},
		MaxMembers:   1,
		MaxAddresses: 15,
		MaxSpace:     1 * tib,
		MaxVPN:       10,
		MaxCalendars: 25,
	},
	{
		Name:  types.AddonDomainMailBusiness,
		Type:  types.TypeAddon,
		Title: "Extra domain",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 150,
			types.CycleYearly:  1680,
			types.CycleTwoYear: 3120,
		},
		MaxDomains: 1,
	},
	{
		Name:  types.AddonDomainBundlePro,
		Type:  types.TypeAddon,
		Title: "Extra domain",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 150,
			types.CycleYearly:  1680,
			types.CycleTwoYear: 3120,
		},
		MaxDomains: 1,
	},
	{
		Name:  types.AddonDomainBundlePro2024,
		Type:  types.TypeAddon,
		Title: "Extra domain",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 150,
			types.CycleYearly:  1680,
			types.CycleTwoYear: 3120,
		},
		MaxDomains: 1,
	},
	{
		Name:  types.AddonIPVPNBusiness,
		Type:  types.TypeAddon,
		Title: "Dedicated server",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 4999,
			types.CycleYearly:  47990,
			types.CycleTwoYear: 89980,
		},
		MaxIPs: 1,
	},
	{
		Name:  types.AddonIPBundlePro,
		Type:  types.TypeAddon,
		Title: "Dedicated server",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 4999,
			types.CycleYearly:  47990,
			types.CycleTwoYear: 89980,
		},
		MaxIPs: 1,
	},
	{
		Name:  types.AddonIPBundlePro2024,
		Type:  types.TypeAddon,
		Title: "Dedicated server",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 4999,
			types.CycleYearly:  47990,
			types.CycleTwoYear: 89980,
		},
		MaxIPs: 1,
	},
	{
		Name:  types.AddonScribeMailBusiness,
		Type:  types.TypeAddon,
		Title: "Writing assistant seat",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 299,
			types.CycleYearly:  2868,
			types.CycleTwoYear: 5376,
		},
		MaxAISeats: 1,
	},
	{
		Name:  types.AddonScribeBundlePro,
		Type:  types.TypeAddon,
		Title: "Writing assistant seat",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 299,
			types.CycleYearly:  2868,
			types.CycleTwoYear: 5376,
		},
		MaxAISeats: 1,
	},
	{
		Name:  types.AddonScribeBundlePro2024,
		Type:  types.TypeAddon,
		Title: "Writing assistant seat",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 299,
			types.CycleYearly:  2868,
			types.CycleTwoYear: 5376,
		},
		MaxAISeats: 1,
	},
	{
		Name:  types.AddonLumoMailPlus,
		Type:  types.TypeAddon,
		Title: "Lumo seat",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 999,
			types.CycleYearly:  7188,
			types.CycleTwoYear: 11976,
		},
		MaxLumoSeats: 1,
	},
	{
		Name:  types.AddonLumoMailBusiness,
		Type:  types.TypeAddon,
		Title: "Lumo seat",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 999,
			types.CycleYearly:  7188,
			types.CycleTwoYear: 11976,
		},
		MaxLumoSeats: 1,
	},
	{
		Name:  types.AddonLumoDrivePlus,
		Type:  types.TypeAddon,
		Title: "Lumo seat",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 999,
			types.CycleYearly:  7188,
			types.CycleTwoYear: 11976,
		},
		MaxLumoSeats: 1,
	},
	{
		Name:  types.AddonLumoVPNPlus,
		Type:  types.TypeAddon,
		Title: "Lumo seat",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 999,
			types.CycleYearly:  7188,
			types.CycleTwoYear: 11976,
		},
		MaxLumoSeats: 1,
	},
	{
		Name:  types.AddonLumoPassPlus,
		Type:  types.TypeAddon,
		Title: "Lumo seat",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 999,
			types.CycleYearly:  7188,
			types.CycleTwoYear: 11976,
		},
		MaxLumoSeats: 1,
	},
	{
		Name:  types.AddonLumoVPNPassBundle,
		Type:  types.TypeAddon,
		Title: "Lumo seat",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 999,
			types.CycleYearly:  7188,
			types.CycleTwoYear: 11976,
		},
		MaxLumoSeats: 1,
	},
	{
		Name:  types.AddonLumoBundle,
		Type:  types.TypeAddon,
		Title: "Lumo seat",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 999,
			types.CycleYearly:  7188,
			types.CycleTwoYear: 11976,
		},
		MaxLumoSeats: 1,
	},
	{
		Name:  types.AddonLumoBundlePro,
		Type:  types.TypeAddon,
		Title: "Lumo seat",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 999,
			types.CycleYearly:  7188,
			types.CycleTwoYear: 11976,
		},
		MaxLumoSeats: 1,
	},
	{
		Name:  types.AddonLumoBundlePro2024,
		Type:  types.TypeAddon,
		Title: "Lumo seat",
		Pricing: map[types.Cycle]int64{
			types.CycleMonthly: 999,
			types.CycleYearly:  7188,
			types.CycleTwoYear: 11976,
		},
		MaxLumoSeats: 1,
	},
}

// defaultAddonsByPlan maps each plan to the addon sold for each family it
// supports. Plans absent from this table sell no addons.
var defaultAddonsByPlan = map[types.PlanName]map[Family]types.PlanName{
	types.PlanMailBusiness: {
		FamilyMember: types.AddonMemberMailBusiness,
		FamilyDomain: types.AddonDomainMailBusiness,
		FamilyScribe: types.AddonScribeMailBusiness,
		FamilyLumo:   types.AddonLumoMailBusiness,
	},
	types.PlanVPNBusiness: {
		FamilyMember: types.AddonMemberVPNBusiness,
		FamilyIP:     types.AddonIPVPNBusiness,
	},
	types.PlanBundlePro: {
		FamilyMember: types.AddonMemberBundlePro,
		FamilyDomain: types.AddonDomainBundlePro,
		FamilyIP:     types.AddonIPBundlePro,
		FamilyScribe: types.AddonScribeBundlePro,
		FamilyLumo:   types.AddonLumoBundlePro,
	},
	types.PlanBundlePro2024: {
		FamilyMember: types.AddonMemberBundlePro2024,
		FamilyDomain: types.AddonDomainBundlePro2024,
		FamilyIP:     types.AddonIPBundlePro2024,
		FamilyScribe: types.AddonScribeBundlePro2024,
		FamilyLumo:   types.AddonLumoBundlePro2024,
	},
	types.PlanMailPlus:      {FamilyLumo: types.AddonLumoMailPlus},
	types.PlanDrivePlus:     {FamilyLumo: types.AddonLumoDrivePlus},
	types.PlanVPNPlus:       {FamilyLumo: types.AddonLumoVPNPlus},
	types.PlanPassPlus:      {FamilyLumo: types.AddonLumoPassPlus},
	types.PlanVPNPassBundle: {FamilyLumo: types.AddonLumoVPNPassBundle},
	types.PlanBundle:        {FamilyLumo: types.AddonLumoBundle},
}
