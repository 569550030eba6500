package types

// Cycle is a billing period length in months.
type Cycle int

const (
	CycleMonthly Cycle = 1
	CycleYearly  Cycle = 12
	CycleTwoYear Cycle = 24
)

// Cycles lists every cycle a price table may define, in ascending order.
var Cycles = []Cycle{CycleMonthly, CycleYearly, CycleTwoYear}

// IsValid reports whether the cycle is one of the supported period lengths.
func (c Cycle) IsValid() bool {
	for _, v := range Cycles {
		if c == v {
			return true
		}
	}
	return false
}

// Months returns the cycle length in months, never less than 1 so that
// per-month derivations cannot divide by zero.
func (c Cycle) Months() int64 {
	if c < 1 {
		return 1
	}
	return int64(c)
}

// Currency identifies the currency a price is denominated in.
// Amounts are always integer minor units of this currency; the engine
// never converts between currencies.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyCHF Currency = "CHF"
)

// IsValid reports whether the currency is one of the supported selections.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyEUR, CurrencyUSD, CurrencyCHF:
		return true
	}
	return false
}

// PlanName identifies a plan or addon in the catalog.
type PlanName string

// Plans. PlanFree is the implicit zero-entry configuration and carries no
// price table.
const (
	PlanFree           PlanName = "FREE"
	PlanMailPlus       PlanName = "MAIL_PLUS"
	PlanMailPlusLegacy PlanName = "MAIL_PLUS_LEGACY"
	PlanMailBusiness   PlanName = "MAIL_BUSINESS"
	PlanDrivePlus      PlanName = "DRIVE_PLUS"
	PlanVPNPlus        PlanName = "VPN_PLUS"
	PlanVPNPlusLegacy  PlanName = "VPN_PLUS_LEGACY"
	PlanVPNBusiness    PlanName = "VPN_BUSINESS"
	PlanPassPlus       PlanName = "PASS_PLUS"
	PlanPassLifetime   PlanName = "PASS_LIFETIME"
	PlanVPNPassBundle  PlanName = "VPN_PASS_BUNDLE"
	PlanBundle         PlanName = "BUNDLE"
	PlanBundlePro      PlanName = "BUNDLE_PRO"
	PlanBundlePro2024  PlanName = "BUNDLE_PRO_2024"
	PlanVisionary      PlanName = "VISIONARY"
	PlanLumoPlus       PlanName = "LUMO_PLUS"
	PlanLumoMobile     PlanName = "LUMO_MOBILE"
)

// Addons. Naming follows the FAMILY_PLAN convention; the family prefix is
// what the catalog classifier keys on.
const (
	AddonMemberMailBusiness  PlanName = "MEMBER_MAIL_BUSINESS"
	AddonMemberVPNBusiness   PlanName = "MEMBER_VPN_BUSINESS"
	AddonMemberBundlePro     PlanName = "MEMBER_BUNDLE_PRO"
	AddonMemberBundlePro2024 PlanName = "MEMBER_BUNDLE_PRO_2024"
	AddonDomainMailBusiness  PlanName = "DOMAIN_MAIL_BUSINESS"
	AddonDomainBundlePro     PlanName = "DOMAIN_BUNDLE_PRO"
	AddonDomainBundlePro2024 PlanName = "DOMAIN_BUNDLE_PRO_2024"
	AddonIPVPNBusiness       PlanName = "IP_VPN_BUSINESS"
	AddonIPBundlePro         PlanName = "IP_BUNDLE_PRO"
	AddonIPBundlePro2024     PlanName = "IP_BUNDLE_PRO_2024"
	AddonScribeMailBusiness  PlanName = "MEMBER_SCRIBE_MAIL_BUSINESS"
	AddonScribeBundlePro     PlanName = "MEMBER_SCRIBE_BUNDLE_PRO"
	AddonScribeBundlePro2024 PlanName = "MEMBER_SCRIBE_BUNDLE_PRO_2024"
	AddonLumoMailPlus        PlanName = "MEMBER_LUMO_MAIL_PLUS"
	AddonLumoMailBusiness    PlanName = "MEMBER_LUMO_MAIL_BUSINESS"
	AddonLumoDrivePlus       PlanName = "MEMBER_LUMO_DRIVE_PLUS"
	AddonLumoVPNPlus         PlanName = "MEMBER_LUMO_VPN_PLUS"
	AddonLumoPassPlus        PlanName = "MEMBER_LUMO_PASS_PLUS"
	AddonLumoVPNPassBundle   PlanName = "MEMBER_LUMO_VPN_PASS_BUNDLE"
	AddonLumoBundle          PlanName = "MEMBER_LUMO_BUNDLE"
	AddonLumoBundlePro       PlanName = "MEMBER_LUMO_BUNDLE_PRO"
	AddonLumoBundlePro2024   PlanName = "MEMBER_LUMO_BUNDLE_PRO_2024"
)

// PlanType distinguishes top-level plans from supplementary addons.
type PlanType string

const (
	TypePlan  PlanType = "plan"
	TypeAddon PlanType = "addon"
)

// Resource names a per-definition capacity counter.
type Resource string

const (
	ResourceMembers   Resource = "members"
	ResourceDomains   Resource = "domains"
	ResourceAddresses Resource = "addresses"
	ResourceSpace     Resource = "space"
	ResourceVPN       Resource = "vpn_connections"
	ResourceIPs       Resource = "ips"
	ResourceAISeats   Resource = "ai_seats"
	ResourceLumoSeats Resource = "lumo_seats"
	ResourceCalendars Resource = "calendars"
)

// SubscriptionStatus represents the state of a billing subscription.
type SubscriptionStatus string

const (
	SubStatusActive   SubscriptionStatus = "active"
	SubStatusPastDue  SubscriptionStatus = "past_due"
	SubStatusCanceled SubscriptionStatus = "canceled"
	SubStatusTrialing SubscriptionStatus = "trialing"
)

// ExternalBilling identifies which channel manages a subscription's billing.
// Web-purchased subscriptions are ExternalNone; mobile-platform purchases are
// managed by the respective store and cannot be modified on the web channel.
type ExternalBilling string

const (
	ExternalNone    ExternalBilling = "none"
	ExternalAndroid ExternalBilling = "android"
	ExternalIOS     ExternalBilling = "ios"
)

// IsManaged reports whether the subscription is billed by an external
// platform rather than the primary (web) channel.
func (e ExternalBilling) IsManaged() bool {
	return e == ExternalAndroid || e == ExternalIOS
}

// SubscriptionMode describes how the pricing oracle computed a check result.
type SubscriptionMode string

const (
	// ModeRegular is a full-cycle charge for the requested configuration.
	ModeRegular SubscriptionMode = "regular"
	// ModeCustomBillings is a mid-cycle addon change billed separately; the
	// oracle amount is a proration, not the recurring price.
	ModeCustomBillings SubscriptionMode = "custom_billings"
)
