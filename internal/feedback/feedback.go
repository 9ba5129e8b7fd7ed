// Package feedback turns a raw calculation into the narrative a given
// stakeholder would read from it.
package feedback

import (
	"fmt"

	"github.com/theirongolddev/finsim/internal/cli"
	"github.com/theirongolddev/finsim/internal/model"
)

// Fallback is shown when no valid profile is selected.
const Fallback = "Adjust the values and pick a profile to see the interpretation."

// Margin thresholds used by the narratives.
const (
	marginExpand   = 0.20
	marginReturn   = 0.15
	marginCredit   = 0.20
	marginModerate = 0.10
)

// Build returns the narrative for profile p over the raw calculation r.
// The raw view is used so losses read as losses.
func Build(p model.Profile, r model.Raw) string {
	base := summary(r)
	students := cli.FormatCount(r.Students)

	switch p {
	case model.ProfileManager:
		return fmt.Sprintf("As a manager, the focus is efficiency and growth. %s With this level of profit, %s. Current students: %s.%s",
			base,
			pick(r.Margin >= marginExpand, "expanding the course offering is viable", "it is prudent to optimize costs before expanding"),
			students, investmentNote(r))
	case model.ProfileEmployee:
		return fmt.Sprintf("As an employee, stability depends on financial health. %s %s. With more students (%s) there is room for bonuses and training.%s",
			base,
			pick(r.Profit >= 0, "Favorable scenario", "Attention: spending cuts may happen"),
			students, investmentNote(r))
	case model.ProfilePartner:
		return fmt.Sprintf("As a partner, I weigh return and sustainability. %s %s. Distributions must account for the planned investment (%s).",
			base,
			pick(r.Margin >= marginReturn, "Return in line with expectations", "Return below target; review prices and expenses"),
			cli.FormatBRL(r.Investment))
	case model.ProfileInvestor:
		return fmt.Sprintf("As an investor, I watch the margin (%s) and scalability. %s %s.",
			cli.FormatPercent(r.Margin), base,
			pick(r.Margin >= marginReturn, "A sign of good potential return", "Higher risk; a margin improvement plan is needed"))
	case model.ProfileBank:
		return fmt.Sprintf("As a bank, I assess repayment capacity. %s Cash generation %s new debt at the moment. %s.",
			base,
			pick(r.Profit >= 0, "supports", "does not support"),
			creditProfile(r.Margin))
	case model.ProfileGovernment:
		return fmt.Sprintf("As government, results affect tax collection. %s Higher profits widen the tax base; a loss reduces the contribution. Investment in education also brings social benefits.", base)
	case model.ProfileClient:
		return fmt.Sprintf("As a client, I look for quality and trust. %s %s. More students (%s) strengthen the learning community.",
			base,
			pick(r.Profit >= 0, "A solid business tends to keep and improve its courses", "Weak results may affect the offering and its quality"),
			students)
	case model.ProfileSupplier:
		return fmt.Sprintf("As a supplier, I look at the risk of getting paid. %s %s.",
			base,
			pick(r.Profit >= 0, "Good capacity to meet payment terms", "Risk of delays; negotiate terms"))
	case model.ProfileSociety:
		return fmt.Sprintf("As society, I assess the local impact. %s More qualified students (%s) strengthen the job market of Unaí/MG and regional development.", base, students)
	}
	return Fallback
}

// Usage returns how the stakeholder uses accounting information.
func Usage(p model.Profile) string {
	switch p {
	case model.ProfileManager:
		return "Plans prices, costs and course expansion."
	case model.ProfileEmployee:
		return "Follows stability, goals and opportunities."
	case model.ProfilePartner:
		return "Weighs return on capital and reinvestment decisions."
	case model.ProfileInvestor:
		return "Looks at profitability and risk before investing."
	case model.ProfileBank:
		return "Analyzes repayment capacity before granting credit."
	case model.ProfileGovernment:
		return "Calculates taxes and checks compliance."
	case model.ProfileClient:
		return "Gauges trust in the continuity of the courses."
	case model.ProfileSupplier:
		return "Assesses the risk of getting paid and payment terms."
	case model.ProfileSociety:
		return "Watches economic impact and workforce training."
	}
	return ""
}

func summary(r model.Raw) string {
	return fmt.Sprintf("Revenue of %s, expenses of %s and a %s profit of %s (margin %s).",
		cli.FormatBRL(r.Revenue),
		cli.FormatBRL(r.Expenses),
		pick(r.Profit >= 0, "positive", "negative"),
		cli.FormatBRL(r.Profit),
		cli.FormatPercent(r.Margin))
}

func investmentNote(r model.Raw) string {
	if r.Investment <= 0 {
		return ""
	}
	return fmt.Sprintf(" There is %s planned for new courses, which can grow the student base and future revenue.", cli.FormatBRL(r.Investment))
}

func creditProfile(margin float64) string {
	switch {
	case margin >= marginCredit:
		return "Good credit profile"
	case margin >= marginModerate:
		return "Moderate profile"
	default:
		return "High risk profile"
	}
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
