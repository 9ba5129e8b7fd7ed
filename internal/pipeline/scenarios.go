package pipeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/finsim/internal/model"
)

// Scenario is a preset that moves the sliders before re-evaluating.
type Scenario int

// Scenario presets in display order.
const (
	ScenarioHighDemand Scenario = iota
	ScenarioCampaign
	ScenarioCostCut
	ScenarioPremiumCourse
	ScenarioCrisis
	scenarioCount // sentinel
)

// Fixed amounts used by the presets.
const (
	campaignInvestment      = 10000
	premiumCourseRevenue    = 15000
	premiumCourseInvestment = 5000
)

var scenarioKeys = [scenarioCount]string{
	ScenarioHighDemand:    "high-demand",
	ScenarioCampaign:      "campaign",
	ScenarioCostCut:       "cost-cut",
	ScenarioPremiumCourse: "premium-course",
	ScenarioCrisis:        "crisis",
}

// AllScenarios returns every preset in display order.
func AllScenarios() []Scenario {
	all := make([]Scenario, 0, scenarioCount)
	for s := Scenario(0); s < scenarioCount; s++ {
		all = append(all, s)
	}
	return all
}

// String returns the scenario key (e.g. "cost-cut").
func (s Scenario) String() string {
	if s < 0 || s >= scenarioCount {
		return fmt.Sprintf("scenario(%d)", int(s))
	}
	return scenarioKeys[s]
}

// Label returns the short display name.
func (s Scenario) Label() string {
	switch s {
	case ScenarioHighDemand:
		return "High demand"
	case ScenarioCampaign:
		return "Campaign"
	case ScenarioCostCut:
		return "Cost cut"
	case ScenarioPremiumCourse:
		return "Premium course"
	case ScenarioCrisis:
		return "Crisis"
	}
	return s.String()
}

// Describe explains what the preset does to the sliders.
func (s Scenario) Describe() string {
	switch s {
	case ScenarioHighDemand:
		return "Students +20%"
	case ScenarioCampaign:
		return "Investment +R$ 10.000"
	case ScenarioCostCut:
		return "Expenses -10%"
	case ScenarioPremiumCourse:
		return "Revenue +R$ 15.000, investment +R$ 5.000"
	case ScenarioCrisis:
		return "Revenue -15%, students -10%"
	}
	return ""
}

// ParseScenario resolves a scenario key, case-insensitively.
func ParseScenario(str string) (Scenario, error) {
	key := strings.ToLower(strings.TrimSpace(str))
	for _, s := range AllScenarios() {
		if scenarioKeys[s] == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown scenario %q (valid: %s)", str, strings.Join(scenarioKeys[:], ", "))
}

// ApplyScenario returns in moved by the preset and clamped to ranges.
// Multiplicative presets round half up to whole units before clamping.
func ApplyScenario(in model.Inputs, s Scenario, ranges model.Ranges) model.Inputs {
	switch s {
	case ScenarioHighDemand:
		in.Students = ranges.Students.Clamp(roundHalfUp(in.Students * 1.2))
	case ScenarioCampaign:
		in.Investment = ranges.Investment.Clamp(in.Investment + campaignInvestment)
	case ScenarioCostCut:
		in.Expenses = ranges.Expenses.Clamp(roundHalfUp(in.Expenses * 0.9))
	case ScenarioPremiumCourse:
		in.Revenue = ranges.Revenue.Clamp(in.Revenue + premiumCourseRevenue)
		in.Investment = ranges.Investment.Clamp(in.Investment + premiumCourseInvestment)
	case ScenarioCrisis:
		in.Revenue = ranges.Revenue.Clamp(roundHalfUp(in.Revenue * 0.85))
		in.Students = ranges.Students.Clamp(roundHalfUp(in.Students * 0.9))
	}
	return in
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
