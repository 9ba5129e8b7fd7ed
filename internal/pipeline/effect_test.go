package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/finsim/internal/model"
)

var schoolBase = model.Baseline{Revenue: 100000, Expenses: 70000, Students: 50, Investment: 0}

func TestCompute_InputEqualsBaseline(t *testing.T) {
	eff := Compute(schoolBase, schoolBase.Inputs())

	assert.Zero(t, eff.Details.RevenueFromStudents)
	assert.Zero(t, eff.Details.RevenueFromInvestment)
	assert.Equal(t, 100000.0, eff.Revenue)
	assert.Equal(t, 70000.0, eff.Expenses)
	assert.Equal(t, 30000.0, eff.Profit)
	assert.InDelta(t, 0.3, eff.Margin, 1e-12)
}

func TestCompute_StudentGrowth(t *testing.T) {
	in := schoolBase.Inputs()
	in.Students = 60

	eff := Compute(schoolBase, in)

	assert.Equal(t, 2000.0, eff.Details.RevenuePerStudent)
	assert.Equal(t, 20000.0, eff.Details.RevenueFromStudents)
	assert.Equal(t, 1400.0, eff.Details.CostPerStudent)
	assert.Equal(t, 14000.0, eff.Details.ExpenseFromStudents)
	assert.Equal(t, 120000.0, eff.Revenue)
	assert.Equal(t, 84000.0, eff.Expenses)
}

func TestCompute_InvestmentGrowth(t *testing.T) {
	in := schoolBase.Inputs()
	in.Investment = 10000

	eff := Compute(schoolBase, in)

	assert.InDelta(t, 3000.0, eff.Details.RevenueFromInvestment, 1e-9)
	assert.InDelta(t, 5000.0, eff.Details.ExpenseFromInvestment, 1e-9)
	assert.InDelta(t, 103000.0, eff.Revenue, 1e-9)
	assert.InDelta(t, 75000.0, eff.Expenses, 1e-9)
}

func TestCompute_ZeroRevenueHasZeroMargin(t *testing.T) {
	in := schoolBase.Inputs()
	in.Revenue = 0

	eff := Compute(schoolBase, in)
	assert.Zero(t, eff.Margin)

	zero := Compute(model.Baseline{}, model.Inputs{})
	assert.Zero(t, zero.Revenue)
	assert.Zero(t, zero.Margin)
}

func TestCompute_ZeroStudentBaselineUsesUnitDivisor(t *testing.T) {
	base := model.Baseline{Revenue: 80000, Expenses: 60000, Students: 0}
	in := base.Inputs()
	in.Students = 3

	eff := Compute(base, in)

	assert.Equal(t, 80000.0, eff.Details.RevenuePerStudent)
	assert.Equal(t, 60000.0, eff.Details.CostPerStudent)
	assert.Equal(t, 240000.0, eff.Details.RevenueFromStudents)
	for _, v := range []float64{eff.Revenue, eff.Expenses, eff.Profit, eff.Margin} {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite output %v", v)
	}
}

func TestCompute_DecreasesContributeNothing(t *testing.T) {
	base := model.Baseline{Revenue: 100000, Expenses: 70000, Students: 50, Investment: 20000}
	in := model.Inputs{Revenue: 90000, Expenses: 65000, Students: 30, Investment: 5000}

	eff := Compute(base, in)

	assert.Zero(t, eff.Details.RevenueFromStudents)
	assert.Zero(t, eff.Details.ExpenseFromStudents)
	assert.Zero(t, eff.Details.RevenueFromInvestment)
	assert.Zero(t, eff.Details.ExpenseFromInvestment)
	assert.Equal(t, 90000.0, eff.Revenue)
	assert.Equal(t, 65000.0, eff.Expenses)
}

func TestCompute_ProfitClampedWhenExpensesExceedRevenue(t *testing.T) {
	in := model.Inputs{Revenue: 40000, Expenses: 90000, Students: 50}

	eff := Compute(schoolBase, in)
	raw := ComputeRaw(in)

	assert.Zero(t, eff.Profit)
	assert.Zero(t, eff.Margin)
	assert.Equal(t, -50000.0, raw.Profit)
	assert.InDelta(t, -1.25, raw.Margin, 1e-12)
}

func TestCompute_OutputsStayInRange(t *testing.T) {
	bases := []model.Baseline{
		{},
		schoolBase,
		{Revenue: 500000, Expenses: 10000, Students: 1, Investment: 100000},
		{Revenue: 0, Expenses: 500000, Students: 500, Investment: 0},
	}
	values := []float64{0, 1, 50, 999, 70000, 500000}

	for _, base := range bases {
		for _, r := range values {
			for _, e := range values {
				for _, s := range []float64{0, 10, 50, 500} {
					for _, inv := range []float64{0, 5000, 100000} {
						in := model.Inputs{Revenue: r, Expenses: e, Students: s, Investment: inv}
						eff := Compute(base, in)

						require.GreaterOrEqual(t, eff.Revenue, 0.0)
						require.GreaterOrEqual(t, eff.Expenses, 0.0)
						require.GreaterOrEqual(t, eff.Profit, 0.0)
						if eff.Revenue == 0 {
							require.Zero(t, eff.Margin)
							continue
						}
						require.Equal(t, eff.Profit/eff.Revenue, eff.Margin)
						require.GreaterOrEqual(t, eff.Margin, 0.0)
						require.LessOrEqual(t, eff.Margin, 1.0)
					}
				}
			}
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	in := model.Inputs{Revenue: 123456, Expenses: 98765, Students: 77, Investment: 33000}
	first := Compute(schoolBase, in)
	second := Compute(schoolBase, in)
	assert.Equal(t, first, second)
}

func TestComputeRaw(t *testing.T) {
	raw := ComputeRaw(model.Inputs{Revenue: 100000, Expenses: 70000, Students: 50, Investment: 2000})
	assert.Equal(t, 30000.0, raw.Profit)
	assert.InDelta(t, 0.3, raw.Margin, 1e-12)
	assert.Equal(t, 2000.0, raw.Investment)

	zero := ComputeRaw(model.Inputs{Expenses: 5000})
	assert.Equal(t, -5000.0, zero.Profit)
	assert.Zero(t, zero.Margin)
}
