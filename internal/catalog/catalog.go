// Package catalog provides the immutable plan/addon lookup and the
// feature-limit resolution rules. It is the single source of truth for what
// each plan and addon grants.
package catalog

import (
	"sort"
	"strings"

	"plancheck/internal/types"
)

// Family is the resource category an addon augments. The set is closed:
// every addon name carries exactly one family prefix, and the classifier
// checks prefixes in a fixed order so that the seat families (which reuse
// the MEMBER_ prefix) win over the plain member family.
type Family string

const (
	FamilyMember Family = "member"
	FamilyDomain Family = "domain"
	FamilyIP     Family = "ip"
	FamilyScribe Family = "scribe"
	FamilyLumo   Family = "lumo"
)

// Families lists every addon family.
var Families = []Family{FamilyMember, FamilyDomain, FamilyIP, FamilyScribe, FamilyLumo}

// ParseFamily converts a wire string into a Family.
func ParseFamily(s string) (Family, bool) {
	switch Family(strings.ToLower(s)) {
	case FamilyMember:
		return FamilyMember, true
	case FamilyDomain:
		return FamilyDomain, true
	case FamilyIP:
		return FamilyIP, true
	case FamilyScribe:
		return FamilyScribe, true
	case FamilyLumo:
		return FamilyLumo, true
	}
	return "", false
}

// familySpec ties a family to its name prefix and, for seat-per-unit
// families, the resource of which each addon unit grants exactly one.
// Seat families are billed one-seat-per-unit regardless of how the catalog
// record happens to encode capacity elsewhere.
type familySpec struct {
	family       Family
	prefix       string
	seatResource types.Resource // empty when the family has no seat exception
}

// familySpecs is checked in order; the longer MEMBER_SCRIBE_ and MEMBER_LUMO_
// prefixes must come before the bare MEMBER_ prefix.
var familySpecs = []familySpec{
	{FamilyScribe, "MEMBER_SCRIBE_", types.ResourceAISeats},
	{FamilyLumo, "MEMBER_LUMO_", types.ResourceLumoSeats},
	{FamilyMember, "MEMBER_", ""},
	{FamilyDomain, "DOMAIN_", ""},
	{FamilyIP, "IP_", types.ResourceIPs},
}

// FamilyOf classifies an addon name by its family prefix.
// Plan names carry no family prefix and return false.
func FamilyOf(name types.PlanName) (Family, bool) {
	for _, spec := range familySpecs {
		if strings.HasPrefix(string(name), spec.prefix) {
			return spec.family, true
		}
	}
	return "", false
}

// IsAddon reports whether the name belongs to an addon family.
func IsAddon(name types.PlanName) bool {
	_, ok := FamilyOf(name)
	return ok
}

// SeatResource returns the seat resource of a family, or false when the
// family has no one-seat-per-unit exception.
func SeatResource(f Family) (types.Resource, bool) {
	for _, spec := range familySpecs {
		if spec.family == f && spec.seatResource != "" {
			return spec.seatResource, true
		}
	}
	return "", false
}

// ResourceOf returns the resource a family's addons primarily grant.
func ResourceOf(f Family) types.Resource {
	switch f {
	case FamilyMember:
		return types.ResourceMembers
	case FamilyDomain:
		return types.ResourceDomains
	case FamilyIP:
		return types.ResourceIPs
	case FamilyScribe:
		return types.ResourceAISeats
	case FamilyLumo:
		return types.ResourceLumoSeats
	}
	return ""
}

// Catalog is an immutable lookup of plan/addon definitions plus the static
// plan -> family -> addon mapping. Constructed once, then only read; the
// engine never mutates it.
type Catalog struct {
	plans  map[types.PlanName]types.Plan
	addons map[types.PlanName]map[Family]types.PlanName
}

// New builds a catalog from explicit definitions and a plan->family->addon
// mapping. Both inputs are copied so later mutation by the caller cannot
// leak into the catalog.
func New(plans []types.Plan, addonsByPlan map[types.PlanName]map[Family]types.PlanName) *Catalog {
	pm := make(map[types.PlanName]types.Plan, len(plans))
	for _, p := range plans {
		pm[p.Name] = p
	}
	am := make(map[types.PlanName]map[Family]types.PlanName, len(addonsByPlan))
	for plan, byFamily := range addonsByPlan {
		m := make(map[Family]types.PlanName, len(byFamily))
		for f, addon := range byFamily {
			m[f] = addon
		}
		am[plan] = m
	}
	return &Catalog{plans: pm, addons: am}
}

// NewDefault returns a catalog loaded with the production plan table.
func NewDefault() *Catalog {
	return New(defaultPlans, defaultAddonsByPlan)
}

// Get returns the definition for the given name. Unknown names return false;
// callers treat the absence as zero capacity and zero price, never as an
// error, because staging catalogs are allowed to lack obscure entries.
func (c *Catalog) Get(name types.PlanName) (types.Plan, bool) {
	p, ok := c.plans[name]
	return p, ok
}

// Plans returns all definitions sorted by name, for stable listing output.
func (c *Catalog) Plans() []types.Plan {
	out := make([]types.Plan, 0, len(c.plans))
	for _, p := range c.plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AddonFor returns the addon name representing the given family under the
// given plan, or false when the plan sells no such family.
func (c *Catalog) AddonFor(plan types.PlanName, f Family) (types.PlanName, bool) {
	byFamily, ok := c.addons[plan]
	if !ok {
		return "", false
	}
	addon, ok := byFamily[f]
	return addon, ok
}

// SupportedFamilies returns the families the given plan sells addons for,
// in the canonical Families order.
func (c *Catalog) SupportedFamilies(plan types.PlanName) []Family {
	byFamily, ok := c.addons[plan]
	if !ok {
		return nil
	}
	out := make([]Family, 0, len(byFamily))
	for _, f := range Families {
		if _, ok := byFamily[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// SupportsMemberAddons reports whether the plan sells per-member addons.
// The pricing aggregator uses this to pick the per-member price view.
func (c *Catalog) SupportsMemberAddons(plan types.PlanName) bool {
	_, ok := c.AddonFor(plan, FamilyMember)
	return ok
}

// ResolveLimit returns how many units of the resource the named definition
// grants per unit quantity. Always >= 0; unknown names resolve to 0.
//
// Three resources have resolution rules layered over the raw capacity
// fields:
//   - IPs: the dedicated gateway plan and any IP-family addon grant exactly
//     1; everything else grants 0.
//   - AI seats: any Scribe-family addon grants exactly 1; everything else 0.
//   - Lumo seats: any Lumo-family addon grants exactly 1; everything else 0.
func (c *Catalog) ResolveLimit(name types.PlanName, r types.Resource) int64 {
	fam, isAddon := FamilyOf(name)

	switch r {
	case types.ResourceIPs:
		if name == types.PlanVPNBusiness {
			return 1
		}
		if isAddon && fam == FamilyIP {
			return 1
		}
		return 0
	case types.ResourceAISeats:
		if isAddon && fam == FamilyScribe {
			return 1
		}
		return 0
	case types.ResourceLumoSeats:
		if isAddon && fam == FamilyLumo {
			return 1
		}
		return 0
	}

	p, ok := c.Get(name)
	if !ok {
		return 0
	}
	switch r {
	case types.ResourceMembers:
		return int64(p.MaxMembers)
	case types.ResourceDomains:
		return int64(p.MaxDomains)
	case types.ResourceAddresses:
		return int64(p.MaxAddresses)
	case types.ResourceSpace:
		return p.MaxSpace
	case types.ResourceVPN:
		return int64(p.MaxVPN)
	case types.ResourceCalendars:
		return int64(p.MaxCalendars)
	default:
		return 0
	}
}
