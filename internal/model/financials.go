// Package model defines domain types for the finsim financial simulator.
package model

// Inputs is the current slider tuple. Values are already clamped to their
// slider ranges by the time they reach the effect model.
type Inputs struct {
	Revenue    float64
	Expenses   float64
	Students   float64
	Investment float64
}

// Baseline is the snapshot captured once at session start from the initial
// inputs. Growth in students and investment is measured against it.
type Baseline struct {
	Revenue    float64
	Expenses   float64
	Students   float64
	Investment float64
}

// BaselineOf converts an input tuple into a baseline snapshot.
func BaselineOf(in Inputs) Baseline {
	return Baseline(in)
}

// Inputs returns the baseline as an input tuple (used by reset).
func (b Baseline) Inputs() Inputs {
	return Inputs(b)
}

// EffectDetails holds the intermediate quantities of the effect model.
type EffectDetails struct {
	RevenuePerStudent     float64
	CostPerStudent        float64
	RevenueFromStudents   float64
	ExpenseFromStudents   float64
	RevenueFromInvestment float64
	ExpenseFromInvestment float64
}

// Effective holds the KPI view: revenue, expenses and profit after modeling
// student and investment growth. Profit is clamped at zero.
type Effective struct {
	Revenue  float64
	Expenses float64
	Profit   float64
	Margin   float64 // 0-1
	Details  EffectDetails
}

// Raw holds the simple calculation used by the narrative feedback.
// Profit is not clamped and may be negative.
type Raw struct {
	Revenue    float64
	Expenses   float64
	Students   float64
	Investment float64
	Profit     float64
	Margin     float64
}
