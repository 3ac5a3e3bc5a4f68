package dashboard

import (
	"strings"

	"github.com/mcoot/mcmonitor/internal/model"
)

// Mode is the top-level dashboard view state
type Mode int

const (
	ModeList Mode = iota
	ModeManaging
)

// Tab is a panel within the managing view
type Tab string

const (
	TabOverview Tab = "overview"
	TabConsole  Tab = "console"
	TabSettings Tab = "settings"
)

// Tabs lists the managing view tabs in display order
var Tabs = []Tab{TabOverview, TabConsole, TabSettings}

// ParseTab maps a raw tab name to a Tab, falling back to the overview
func ParseTab(s string) Tab {
	switch Tab(s) {
	case TabConsole:
		return TabConsole
	case TabSettings:
		return TabSettings
	default:
		return TabOverview
	}
}

// Label returns the tab's display name
func (t Tab) Label() string {
	switch t {
	case TabConsole:
		return "Console"
	case TabSettings:
		return "Settings"
	default:
		return "Overview"
	}
}

// View is the dashboard state: the guild list, or one guild being managed.
// Only the selection is tracked; the tab resets on every selection.
type View struct {
	mode     Mode
	selected model.Guild
	tab      Tab
}

// NewView returns a view in list mode
func NewView() View {
	return View{mode: ModeList, tab: TabOverview}
}

// Select moves to managing the given guild, starting on the overview tab
func (v View) Select(g model.Guild) View {
	return View{mode: ModeManaging, selected: g, tab: TabOverview}
}

// Back returns to the guild list
func (v View) Back() View {
	return NewView()
}

// WithTab switches tabs; it has no effect in list mode
func (v View) WithTab(t Tab) View {
	if v.mode != ModeManaging {
		return v
	}
	v.tab = t
	return v
}

// Mode returns the current view mode
func (v View) Mode() Mode {
	return v.mode
}

// Selected returns the managed guild and whether one is selected
func (v View) Selected() (model.Guild, bool) {
	return v.selected, v.mode == ModeManaging
}

// Tab returns the active tab
func (v View) Tab() Tab {
	return v.tab
}

// Filter returns the guilds whose name contains term, ignoring case.
// The result keeps the input order and never contains anything not in guilds.
func Filter(guilds []model.Guild, term string) []model.Guild {
	term = strings.ToLower(term)
	out := make([]model.Guild, 0, len(guilds))
	for _, g := range guilds {
		if term == "" || strings.Contains(strings.ToLower(g.Name), term) {
			out = append(out, g)
		}
	}
	return out
}

// Features are the dashboard panels a plan unlocks
type Features struct {
	Metrics bool
	Console bool
	History bool
}

// Gate returns the unlocked features for a plan.
// The result is presentation only; nothing here enforces entitlements.
func Gate(plan model.Plan) Features {
	switch plan {
	case model.PlanPremiumPlus:
		return Features{Metrics: true, Console: true, History: true}
	case model.PlanPremium:
		return Features{Metrics: true, Console: true}
	default:
		return Features{}
	}
}

// PlanInfo describes a plan for the pricing cards
type PlanInfo struct {
	Plan     model.Plan
	Price    string
	Features []string
	Featured bool
}

// Pricing lists the plans shown on the landing page
func Pricing() []PlanInfo {
	return []PlanInfo{
		{
			Plan:     model.PlanFree,
			Price:    "$0",
			Features: []string{"Server status in Discord", "Player count", "Public directory listing"},
		},
		{
			Plan:     model.PlanPremium,
			Price:    "$4.99",
			Features: []string{"Everything in Free", "Live TPS & RAM metrics", "Remote console"},
			Featured: true,
		},
		{
			Plan:     model.PlanPremiumPlus,
			Price:    "$9.99",
			Features: []string{"Everything in Premium", "Performance history graphs", "Priority support"},
		},
	}
}
