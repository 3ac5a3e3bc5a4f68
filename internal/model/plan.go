package model

import "strings"

// Plan is a subscription tier controlling which dashboard panels are unlocked
type Plan string

const (
	PlanFree        Plan = "free"
	PlanPremium     Plan = "premium"
	PlanPremiumPlus Plan = "premium_plus"
)

// AllPlans lists the plans in ascending order
var AllPlans = []Plan{PlanFree, PlanPremium, PlanPremiumPlus}

// ParsePlan maps a raw plan tag to a Plan. Unknown or empty tags are free.
func ParsePlan(s string) Plan {
	switch Plan(strings.ToLower(strings.TrimSpace(s))) {
	case PlanPremium:
		return PlanPremium
	case PlanPremiumPlus:
		return PlanPremiumPlus
	default:
		return PlanFree
	}
}

// Label returns the human readable plan name
func (p Plan) Label() string {
	switch p {
	case PlanPremium:
		return "Premium"
	case PlanPremiumPlus:
		return "Premium Plus"
	default:
		return "Free"
	}
}
