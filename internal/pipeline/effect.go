// Package pipeline turns slider inputs into the financial figures shown to
// the user: the effect model, the raw calculation, scenario presets, the
// per-session context, and concurrent batch evaluation.
package pipeline

import (
	"math"

	"github.com/theirongolddev/finsim/internal/model"
)

// Share of additional investment modeled within the current period.
const (
	InvestmentRevenueRate = 0.30 // becomes potential revenue
	InvestmentCostRate    = 0.50 // is an immediate cost
)

// Compute applies the effect model: growth in students above the baseline adds
// revenue and cost at the baseline per-student rates, and investment above the
// baseline adds 30% of itself as revenue and 50% as cost. Decreases below the
// baseline contribute nothing beyond the raw slider values.
//
// Compute is pure and total: it never fails and never mutates its arguments.
func Compute(base model.Baseline, in model.Inputs) model.Effective {
	studentsBase := math.Max(base.Students, 1)
	revenuePerStudent := base.Revenue / studentsBase
	costPerStudent := base.Expenses / studentsBase

	studentGrowth := math.Max(in.Students-base.Students, 0)
	revenueFromStudents := studentGrowth * revenuePerStudent
	expenseFromStudents := studentGrowth * costPerStudent

	investmentGrowth := math.Max(in.Investment-base.Investment, 0)
	revenueFromInvestment := investmentGrowth * InvestmentRevenueRate
	expenseFromInvestment := investmentGrowth * InvestmentCostRate

	revenue := math.Max(0, in.Revenue+revenueFromStudents+revenueFromInvestment)
	expenses := math.Max(0, in.Expenses+expenseFromStudents+expenseFromInvestment)
	profit := math.Max(0, revenue-expenses)

	margin := 0.0
	if revenue > 0 {
		margin = profit / revenue
	}

	return model.Effective{
		Revenue:  revenue,
		Expenses: expenses,
		Profit:   profit,
		Margin:   margin,
		Details: model.EffectDetails{
			RevenuePerStudent:     revenuePerStudent,
			CostPerStudent:        costPerStudent,
			RevenueFromStudents:   revenueFromStudents,
			ExpenseFromStudents:   expenseFromStudents,
			RevenueFromInvestment: revenueFromInvestment,
			ExpenseFromInvestment: expenseFromInvestment,
		},
	}
}

// ComputeRaw is the simple calculation behind the narrative feedback.
// Profit is revenue minus expenses and is not clamped.
func ComputeRaw(in model.Inputs) model.Raw {
	profit := in.Revenue - in.Expenses
	margin := 0.0
	if in.Revenue > 0 {
		margin = profit / in.Revenue
	}
	return model.Raw{
		Revenue:    in.Revenue,
		Expenses:   in.Expenses,
		Students:   in.Students,
		Investment: in.Investment,
		Profit:     profit,
		Margin:     margin,
	}
}
