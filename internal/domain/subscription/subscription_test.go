package subscription

import "testing"

func TestCanAccess(t *testing.T) {
	for _, info := range Tabs() {
		if !CanAccess(PlanPro, info.ID) {
			t.Fatalf("pro must open %s", info.ID)
		}
		if got := CanAccess(PlanFree, info.ID); got == info.IsPro {
			t.Fatalf("free access to %s = %v", info.ID, got)
		}
	}

	if CanAccess("", TabHealth) || CanAccess("enterprise", TabWork) {
		t.Fatalf("unknown plans must not open pro tabs")
	}
	if !CanAccess("", TabHome) {
		t.Fatalf("free tabs are open to every plan")
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		plan Plan
		tab  Tab
		want Decision
	}{
		{PlanFree, TabFinances, Decision{Redirect: RedirectPricing}},
		{PlanFree, TabStudies, Decision{Allowed: true}},
		{PlanPro, TabHealth, Decision{Allowed: true}},
	}
	for _, tc := range tests {
		if got := Decide(tc.plan, tc.tab); got != tc.want {
			t.Fatalf("Decide(%s, %s) = %+v, want %+v", tc.plan, tc.tab, got, tc.want)
		}
	}
}

func TestUpgradeNeverReverts(t *testing.T) {
	if Upgrade(PlanFree) != PlanPro || Upgrade(PlanPro) != PlanPro {
		t.Fatalf("upgrade must always land on pro")
	}
}
