package selection

import (
	"testing"

	"plancheck/internal/catalog"
	"plancheck/internal/types"
)

func newTestSelection(ids types.PlanIDs) SelectedPlan {
	return New(catalog.NewDefault(), ids, types.CycleYearly, types.CurrencyEUR)
}

func TestTotals_VPNBusinessWithAddons(t *testing.T) {
	sel := newTestSelection(types.PlanIDs{
		types.PlanVPNBusiness:        1,
		types.AddonMemberVPNBusiness: 2,
		types.AddonIPVPNBusiness:     4,
	})

	if got := sel.TotalMembers(); got != 4 {
		t.Errorf("TotalMembers = %d, want 4", got)
	}
	// 1 included with the plan + 4 addon units.
	if got := sel.TotalIPs(); got != 5 {
		t.Errorf("TotalIPs = %d, want 5", got)
	}
	if got := sel.TotalUsers(); got != 4 {
		t.Errorf("TotalUsers = %d, want 4", got)
	}
}

func TestTotalUsers_FloorsAtOne(t *testing.T) {
	free := newTestSelection(nil)
	if got := free.TotalUsers(); got != 1 {
		t.Errorf("free tier TotalUsers = %d, want 1", got)
	}

	// A single-user storage-only plan has zero member capacity in some
	// legacy catalog data; it is still inhabited by one user.
	storage := New(catalog.New([]types.Plan{
		{Name: types.PlanDrivePlus, Type: types.TypePlan},
	}, nil), types.PlanIDs{types.PlanDrivePlus: 1}, types.CycleYearly, types.CurrencyEUR)
	if got := storage.TotalUsers(); got != 1 {
		t.Errorf("zero-member plan TotalUsers = %d, want 1", got)
	}
}

func TestNew_NormalizesConfiguration(t *testing.T) {
	sel := newTestSelection(types.PlanIDs{
		types.PlanMailBusiness:        1,
		types.AddonMemberMailBusiness: 0,
		types.AddonScribeMailBusiness: -3,
	})

	want := types.PlanIDs{types.PlanMailBusiness: 1}
	if !sel.PlanIDs().Equal(want) {
		t.Errorf("PlanIDs = %v, want %v", sel.PlanIDs(), want)
	}
}

func TestNew_PrunesForeignFamilyAddons(t *testing.T) {
	// MEMBER_LUMO_VPN_PLUS is sold under VPN_PLUS, not MAIL_BUSINESS. The
	// seat transforms can only adjust MAIL_BUSINESS's own Lumo addon, so a
	// foreign entry would sit outside the cap rules; it is dropped on
	// construction.
	sel := newTestSelection(types.PlanIDs{
		types.PlanMailBusiness:  1,
		types.AddonLumoVPNPlus:  2,
		types.AddonLumoMailPlus: 1,
	})

	want := types.PlanIDs{types.PlanMailBusiness: 1}
	if !sel.PlanIDs().Equal(want) {
		t.Errorf("PlanIDs = %v, want %v", sel.PlanIDs(), want)
	}

	capped := sel.ApplyCapRules()
	if got, users := capped.TotalLumo(), capped.TotalUsers(); got > users {
		t.Errorf("TotalLumo = %d exceeds TotalUsers = %d after cap", got, users)
	}
}

func TestNew_KeepsAddonOnlyConfiguration(t *testing.T) {
	// With no plan entry there is no line to judge foreignness against;
	// addon-only configurations pass through unchanged.
	ids := types.PlanIDs{types.AddonMemberMailBusiness: 2}
	sel := newTestSelection(ids)

	if !sel.PlanIDs().Equal(ids) {
		t.Errorf("PlanIDs = %v, want %v", sel.PlanIDs(), ids)
	}
}

func TestSetScribeCount_AddAndRemove(t *testing.T) {
	sel := newTestSelection(types.PlanIDs{
		types.PlanMailBusiness:        1,
		types.AddonMemberMailBusiness: 3,
	})

	withScribes := sel.SetScribeCount(3)
	want := types.PlanIDs{
		types.PlanMailBusiness:        1,
		types.AddonMemberMailBusiness: 3,
		types.AddonScribeMailBusiness: 3,
	}
	if !withScribes.PlanIDs().Equal(want) {
		t.Errorf("after SetScribeCount(3): %v, want %v", withScribes.PlanIDs(), want)
	}

	// Setting back to zero removes the entry entirely, it does not leave a
	// zero-quantity key behind.
	without := withScribes.SetScribeCount(0)
	if _, ok := without.PlanIDs()[types.AddonScribeMailBusiness]; ok {
		t.Errorf("scribe key not removed: %v", without.PlanIDs())
	}
}

func TestSetSeatCount_Idempotent(t *testing.T) {
	sel := newTestSelection(types.PlanIDs{
		types.PlanMailBusiness:        1,
		types.AddonScribeMailBusiness: 2,
	})

	same := sel.SetScribeCount(2)
	if !same.PlanIDs().Equal(sel.PlanIDs()) {
		t.Errorf("SetScribeCount with the value in effect changed the configuration: %v", same.PlanIDs())
	}

	once := sel.SetScribeCount(5)
	twice := once.SetScribeCount(5)
	if !twice.PlanIDs().Equal(once.PlanIDs()) {
		t.Errorf("SetScribeCount not idempotent: %v vs %v", once.PlanIDs(), twice.PlanIDs())
	}
}

func TestSetSeatCount_NoAddonFamilyIsNoop(t *testing.T) {
	// VPN_BUSINESS sells no scribe addon; the call is a no-op, not an error.
	sel := newTestSelection(types.PlanIDs{types.PlanVPNBusiness: 1})

	got := sel.SetScribeCount(4)
	if !got.PlanIDs().Equal(sel.PlanIDs()) {
		t.Errorf("no-family SetScribeCount changed configuration: %v", got.PlanIDs())
	}
}

func TestSetSeatCount_FloorsAtZero(t *testing.T) {
	sel := newTestSelection(types.PlanIDs{
		types.PlanMailBusiness:        1,
		types.AddonScribeMailBusiness: 1,
	})

	got := sel.SetScribeCount(-10)
	for name, qty := range got.PlanIDs() {
		if qty <= 0 {
			t.Errorf("entry %s has non-positive quantity %d", name, qty)
		}
	}
	if _, ok := got.PlanIDs()[types.AddonScribeMailBusiness]; ok {
		t.Errorf("scribe entry should be removed: %v", got.PlanIDs())
	}
}

func TestApplyCapRules_CapsSeatsAtTotalUsers(t *testing.T) {
	// 1 plan member + 2 addon members = 3 users; 7 scribe seats exceed that.
	sel := newTestSelection(types.PlanIDs{
		types.PlanMailBusiness:        1,
		types.AddonMemberMailBusiness: 2,
		types.AddonScribeMailBusiness: 7,
	})

	capped := sel.ApplyCapRules()
	if got := capped.TotalScribes(); got != 3 {
		t.Errorf("TotalScribes after cap = %d, want 3", got)
	}
	if got := capped.TotalUsers(); got != 3 {
		t.Errorf("TotalUsers = %d, want 3", got)
	}
}

func TestApplyCapRules_Idempotent(t *testing.T) {
	sel := newTestSelection(types.PlanIDs{
		types.PlanBundlePro:        1,
		types.AddonMemberBundlePro: 1,
		types.AddonScribeBundlePro: 9,
		types.AddonLumoBundlePro:   5,
	})

	once := sel.ApplyCapRules()
	twice := once.ApplyCapRules()
	if !twice.PlanIDs().Equal(once.PlanIDs()) {
		t.Errorf("ApplyCapRules not idempotent: %v vs %v", once.PlanIDs(), twice.PlanIDs())
	}
}

func TestApplyCapRules_BelowCapUnchanged(t *testing.T) {
	sel := newTestSelection(types.PlanIDs{
		types.PlanMailBusiness:        1,
		types.AddonMemberMailBusiness: 4,
		types.AddonScribeMailBusiness: 2,
	})

	got := sel.ApplyCapRules()
	if !got.PlanIDs().Equal(sel.PlanIDs()) {
		t.Errorf("below-cap ApplyCapRules changed configuration: %v", got.PlanIDs())
	}
}

func TestChangePlan_RemapsAddonFamilies(t *testing.T) {
	sel := newTestSelection(types.PlanIDs{
		types.PlanBundlePro:        1,
		types.AddonMemberBundlePro: 4,
		types.AddonDomainBundlePro: 2,
		types.AddonIPBundlePro:     1,
		types.AddonScribeBundlePro: 3,
	})

	got := sel.ChangePlan(types.PlanBundlePro2024)
	want := types.PlanIDs{
		types.PlanBundlePro2024:        1,
		types.AddonMemberBundlePro2024: 4,
		types.AddonDomainBundlePro2024: 2,
		types.AddonIPBundlePro2024:     1,
		types.AddonScribeBundlePro2024: 3,
	}
	if !got.PlanIDs().Equal(want) {
		t.Errorf("ChangePlan = %v, want %v", got.PlanIDs(), want)
	}
}

func TestChangePlan_DropsUnsupportedFamilies(t *testing.T) {
	// MAIL_BUSINESS sells no IP addon; the IP family is dropped.
	sel := newTestSelection(types.PlanIDs{
		types.PlanBundlePro:        1,
		types.AddonMemberBundlePro: 2,
		types.AddonIPBundlePro:     3,
	})

	got := sel.ChangePlan(types.PlanMailBusiness)
	want := types.PlanIDs{
		types.PlanMailBusiness:        1,
		types.AddonMemberMailBusiness: 2,
	}
	if !got.PlanIDs().Equal(want) {
		t.Errorf("ChangePlan = %v, want %v", got.PlanIDs(), want)
	}
}

func TestChangePlan_AppliesCapRules(t *testing.T) {
	// 5 scribe seats carried onto a plan where only 1 user remains (the
	// member family is not sold by MAIL_PLUS, so members drop to 1).
	sel := newTestSelection(types.PlanIDs{
		types.PlanBundlePro:        1,
		types.AddonScribeBundlePro: 5,
		types.AddonLumoBundlePro:   5,
	})

	got := sel.ChangePlan(types.PlanMailPlus)
	if scribes := got.TotalScribes(); scribes != 0 {
		// MAIL_PLUS sells no scribe addon at all; the family is dropped.
		t.Errorf("TotalScribes = %d, want 0", scribes)
	}
	if lumo := got.TotalLumo(); lumo != 1 {
		t.Errorf("TotalLumo = %d, want 1 (capped at total users)", lumo)
	}
}

func TestFromSubscription(t *testing.T) {
	cat := catalog.NewDefault()
	sub := &types.Subscription{
		ID:       "sub_1",
		Plans:    types.PlanIDs{types.PlanBundle: 1},
		Cycle:    types.CycleTwoYear,
		Currency: types.CurrencyCHF,
	}

	sel := FromSubscription(cat, sub)
	if sel.Plan() != types.PlanBundle {
		t.Errorf("Plan = %s, want BUNDLE", sel.Plan())
	}
	if sel.Cycle() != types.CycleTwoYear || sel.Currency() != types.CurrencyCHF {
		t.Errorf("cycle/currency = %v/%v", sel.Cycle(), sel.Currency())
	}

	// Nil subscription is the free tier with defaults, not a panic.
	free := FromSubscription(cat, nil)
	if free.Plan() != types.PlanFree {
		t.Errorf("nil subscription Plan = %s, want FREE", free.Plan())
	}
}

func TestPlanIDs_ReturnsCopy(t *testing.T) {
	sel := newTestSelection(types.PlanIDs{types.PlanMailPlus: 1})

	ids := sel.PlanIDs()
	ids[types.PlanMailPlus] = 99

	if got := sel.PlanIDs()[types.PlanMailPlus]; got != 1 {
		t.Errorf("internal state mutated through PlanIDs copy: %d", got)
	}
}
