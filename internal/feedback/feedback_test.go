package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theirongolddev/finsim/internal/model"
	"github.com/theirongolddev/finsim/internal/pipeline"
)

func raw(revenue, expenses, students, investment float64) model.Raw {
	return pipeline.ComputeRaw(model.Inputs{
		Revenue:    revenue,
		Expenses:   expenses,
		Students:   students,
		Investment: investment,
	})
}

func TestBuild_EveryProfileHasNarrative(t *testing.T) {
	r := raw(100000, 70000, 50, 0)
	for _, p := range model.AllProfiles() {
		got := Build(p, r)
		assert.NotEqual(t, Fallback, got, p.String())
		assert.Contains(t, got, "Revenue of R$ 100.000,00, expenses of R$ 70.000,00 and a positive profit of R$ 30.000,00 (margin 30%).", p.String())
		assert.NotEmpty(t, Usage(p), p.String())
	}
}

func TestBuild_InvalidProfileFallsBack(t *testing.T) {
	assert.Equal(t, Fallback, Build(model.Profile(-1), raw(1, 1, 1, 1)))
	assert.Equal(t, Fallback, Build(model.Profile(99), raw(1, 1, 1, 1)))
	assert.Empty(t, Usage(model.Profile(99)))
}

func TestBuild_NegativeProfitReadsAsLoss(t *testing.T) {
	got := Build(model.ProfileSupplier, raw(40000, 90000, 50, 0))
	assert.Contains(t, got, "negative profit of -R$ 50.000,00 (margin -125%)")
	assert.Contains(t, got, "Risk of delays")
}

func TestBuild_ManagerThreshold(t *testing.T) {
	assert.Contains(t, Build(model.ProfileManager, raw(100000, 80000, 50, 0)), "expanding the course offering is viable")
	assert.Contains(t, Build(model.ProfileManager, raw(100000, 81000, 50, 0)), "optimize costs before expanding")
}

func TestBuild_InvestmentNote(t *testing.T) {
	with := Build(model.ProfileEmployee, raw(100000, 70000, 50, 10000))
	assert.Contains(t, with, "There is R$ 10.000,00 planned for new courses")

	without := Build(model.ProfileEmployee, raw(100000, 70000, 50, 0))
	assert.NotContains(t, without, "planned for new courses")

	assert.NotContains(t, Build(model.ProfileInvestor, raw(100000, 70000, 50, 10000)), "planned for new courses")
}

func TestBuild_BankCreditProfile(t *testing.T) {
	cases := []struct {
		expenses float64
		want     string
	}{
		{70000, "Good credit profile"},
		{85000, "Moderate profile"},
		{95000, "High risk profile"},
		{120000, "does not support"},
	}
	for _, c := range cases {
		assert.Contains(t, Build(model.ProfileBank, raw(100000, c.expenses, 50, 0)), c.want)
	}
}

func TestBuild_PartnerAndInvestorUseReturnThreshold(t *testing.T) {
	assert.Contains(t, Build(model.ProfilePartner, raw(100000, 85000, 50, 0)), "Return in line")
	assert.Contains(t, Build(model.ProfilePartner, raw(100000, 86000, 50, 0)), "Return below target")
	assert.Contains(t, Build(model.ProfileInvestor, raw(100000, 86000, 50, 0)), "(14%)")
}

func TestBuild_SocietyMentionsRegion(t *testing.T) {
	assert.Contains(t, Build(model.ProfileSociety, raw(100000, 70000, 120, 0)), "(120)")
	assert.Contains(t, Build(model.ProfileSociety, raw(100000, 70000, 120, 0)), "Unaí/MG")
}
