// Package subscription decides which sections a plan may open.
package subscription

import "errors"

type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

func (p Plan) Valid() bool {
	return p == PlanFree || p == PlanPro
}

type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabHabits    Tab = "habits"
	TabNutrition Tab = "nutrition"
	TabWorkout   Tab = "workout"
	TabHome      Tab = "home"
	TabStudies   Tab = "studies"
	TabFinances  Tab = "finances"
	TabWork      Tab = "work"
	TabHealth    Tab = "health"
)

// RedirectPricing is where a blocked request is sent.
const RedirectPricing = "pricing"

var ErrUpgradeRequired = errors.New("upgrade required")

type TabInfo struct {
	ID    Tab    `json:"id"`
	Label string `json:"label"`
	IsPro bool   `json:"isPro"`
}

var tabs = []TabInfo{
	{ID: TabDashboard, Label: "Dashboard"},
	{ID: TabHabits, Label: "Hábitos"},
	{ID: TabNutrition, Label: "Nutrição"},
	{ID: TabWorkout, Label: "Treino"},
	{ID: TabHome, Label: "Casa"},
	{ID: TabStudies, Label: "Estudos"},
	{ID: TabFinances, Label: "Finanças", IsPro: true},
	{ID: TabWork, Label: "Trabalho", IsPro: true},
	{ID: TabHealth, Label: "Saúde", IsPro: true},
}

func Tabs() []TabInfo {
	out := make([]TabInfo, len(tabs))
	copy(out, tabs)
	return out
}

func (t Tab) IsPro() bool {
	for _, info := range tabs {
		if info.ID == t {
			return info.IsPro
		}
	}
	return false
}

// CanAccess reports whether plan may open tab. Pro tabs require exactly
// PlanPro; anything else, including an unknown plan, is treated as free.
func CanAccess(plan Plan, tab Tab) bool {
	if !tab.IsPro() {
		return true
	}
	return plan == PlanPro
}

type Decision struct {
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
}

func Decide(plan Plan, tab Tab) Decision {
	if CanAccess(plan, tab) {
		return Decision{Allowed: true}
	}
	return Decision{Redirect: RedirectPricing}
}

// Upgrade returns the plan after an upgrade. Plans never move back to free.
func Upgrade(Plan) Plan {
	return PlanPro
}
