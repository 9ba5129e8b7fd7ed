package model

import "math"

// Range bounds a single slider.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// Clamp bounds v to [Min, Max] and snaps it to the nearest step counted
// from Min, the way a range input sanitizes assigned values.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	if v < r.Min {
		v = r.Min
	}
	if v > r.Max {
		v = r.Max
	}
	if r.Step > 0 {
		steps := math.Round((v - r.Min) / r.Step)
		v = r.Min + steps*r.Step
		// Snapping up can overshoot Max when the span is not a multiple of Step.
		if v > r.Max {
			v -= r.Step
		}
	}
	return v
}

// Fraction returns where v sits within the range, 0-1.
func (r Range) Fraction(v float64) float64 {
	span := r.Max - r.Min
	if span <= 0 {
		return 0
	}
	f := (v - r.Min) / span
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Ranges groups the four slider ranges.
type Ranges struct {
	Revenue    Range
	Expenses   Range
	Students   Range
	Investment Range
}

// Clamp clamps every field of in to its range.
func (rs Ranges) Clamp(in Inputs) Inputs {
	return Inputs{
		Revenue:    rs.Revenue.Clamp(in.Revenue),
		Expenses:   rs.Expenses.Clamp(in.Expenses),
		Students:   rs.Students.Clamp(in.Students),
		Investment: rs.Investment.Clamp(in.Investment),
	}
}

// Field identifies one of the four sliders.
type Field int

// Slider fields in display order.
const (
	FieldRevenue Field = iota
	FieldExpenses
	FieldStudents
	FieldInvestment
	FieldCount // sentinel
)

// Label returns the display name of the field.
func (f Field) Label() string {
	switch f {
	case FieldRevenue:
		return "Revenue"
	case FieldExpenses:
		return "Expenses"
	case FieldStudents:
		return "Students"
	case FieldInvestment:
		return "Investment"
	}
	return "?"
}

// IsCurrency reports whether the field holds a money amount.
func (f Field) IsCurrency() bool {
	return f != FieldStudents
}

// Get returns the value of field f.
func (in Inputs) Get(f Field) float64 {
	switch f {
	case FieldRevenue:
		return in.Revenue
	case FieldExpenses:
		return in.Expenses
	case FieldStudents:
		return in.Students
	case FieldInvestment:
		return in.Investment
	}
	return 0
}

// With returns a copy of in with field f set to v.
func (in Inputs) With(f Field, v float64) Inputs {
	switch f {
	case FieldRevenue:
		in.Revenue = v
	case FieldExpenses:
		in.Expenses = v
	case FieldStudents:
		in.Students = v
	case FieldInvestment:
		in.Investment = v
	}
	return in
}

// Of returns the range for field f.
func (rs Ranges) Of(f Field) Range {
	switch f {
	case FieldRevenue:
		return rs.Revenue
	case FieldExpenses:
		return rs.Expenses
	case FieldStudents:
		return rs.Students
	case FieldInvestment:
		return rs.Investment
	}
	return Range{}
}
