package model

import (
	"fmt"
	"strings"
)

// Category groups stakeholders by their relation to the business.
type Category int

// Stakeholder categories.
const (
	CategoryInternal Category = iota
	CategoryExternal
)

// String returns the category key.
func (c Category) String() string {
	if c == CategoryExternal {
		return "external"
	}
	return "internal"
}

// Profile is a stakeholder who reads the simulated financials.
type Profile int

// Stakeholder profiles. Internal profiles come first.
const (
	ProfileManager Profile = iota
	ProfileEmployee
	ProfilePartner
	ProfileInvestor
	ProfileBank
	ProfileGovernment
	ProfileClient
	ProfileSupplier
	ProfileSociety
	profileCount // sentinel
)

type profileInfo struct {
	key      string
	name     string
	icon     string
	category Category
}

var profiles = [profileCount]profileInfo{
	ProfileManager:    {"manager", "Manager", "🧭", CategoryInternal},
	ProfileEmployee:   {"employee", "Employee", "👩‍💼", CategoryInternal},
	ProfilePartner:    {"partner", "Partner", "🤝", CategoryInternal},
	ProfileInvestor:   {"investor", "Investor", "💹", CategoryExternal},
	ProfileBank:       {"bank", "Bank", "🏦", CategoryExternal},
	ProfileGovernment: {"government", "Government", "🏛️", CategoryExternal},
	ProfileClient:     {"client", "Client", "🧑‍🎓", CategoryExternal},
	ProfileSupplier:   {"supplier", "Supplier", "🚚", CategoryExternal},
	ProfileSociety:    {"society", "Society", "🌱", CategoryExternal},
}

// Valid reports whether p is one of the nine known profiles.
func (p Profile) Valid() bool {
	return p >= 0 && p < profileCount
}

// String returns the canonical key (e.g. "manager").
func (p Profile) String() string {
	if !p.Valid() {
		return fmt.Sprintf("profile(%d)", int(p))
	}
	return profiles[p].key
}

// Name returns the display name.
func (p Profile) Name() string {
	if !p.Valid() {
		return ""
	}
	return profiles[p].name
}

// Icon returns the emoji shown on the profile card.
func (p Profile) Icon() string {
	if !p.Valid() {
		return ""
	}
	return profiles[p].icon
}

// Category returns whether the profile is internal or external.
func (p Profile) Category() Category {
	if !p.Valid() {
		return CategoryInternal
	}
	return profiles[p].category
}

// AllProfiles returns every profile in display order.
func AllProfiles() []Profile {
	all := make([]Profile, 0, profileCount)
	for p := Profile(0); p < profileCount; p++ {
		all = append(all, p)
	}
	return all
}

// ProfilesIn returns the profiles of one category in display order.
func ProfilesIn(c Category) []Profile {
	var out []Profile
	for _, p := range AllProfiles() {
		if p.Category() == c {
			out = append(out, p)
		}
	}
	return out
}

// ParseProfile resolves a profile key, case-insensitively.
func ParseProfile(s string) (Profile, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, p := range AllProfiles() {
		if profiles[p].key == key {
			return p, nil
		}
	}
	keys := make([]string, 0, profileCount)
	for _, p := range AllProfiles() {
		keys = append(keys, p.String())
	}
	return 0, fmt.Errorf("unknown profile %q (valid: %s)", s, strings.Join(keys, ", "))
}

// ChartKind selects how the KPI chart is drawn.
type ChartKind int

// Chart kinds.
const (
	ChartPie ChartKind = iota
	ChartBar
)

// String returns the chart key.
func (k ChartKind) String() string {
	if k == ChartBar {
		return "bar"
	}
	return "pie"
}

// Toggle switches between pie and bar.
func (k ChartKind) Toggle() ChartKind {
	if k == ChartBar {
		return ChartPie
	}
	return ChartBar
}

// ParseChartKind resolves "pie" or "bar".
func ParseChartKind(s string) (ChartKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pie":
		return ChartPie, nil
	case "bar":
		return ChartBar, nil
	}
	return ChartPie, fmt.Errorf("unknown chart %q (valid: pie, bar)", s)
}
