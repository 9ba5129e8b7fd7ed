package model

import (
	"math"
	"testing"
)

func TestRangeClamp(t *testing.T) {
	r := Range{Min: 0, Max: 500000, Step: 1000}

	cases := []struct {
		in   float64
		want float64
	}{
		{-5, 0},
		{0, 0},
		{1499, 1000},
		{1500, 2000},
		{499999, 500000},
		{900000, 500000},
		{math.NaN(), 0},
	}
	for _, c := range cases {
		if got := r.Clamp(c.in); got != c.want {
			t.Fatalf("Clamp(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRangeClampDoesNotOvershootMax(t *testing.T) {
	r := Range{Min: 0, Max: 10, Step: 4}
	if got := r.Clamp(10); got != 8 {
		t.Fatalf("Clamp(10) = %v, want 8", got)
	}
}

func TestRangeFraction(t *testing.T) {
	r := Range{Min: 0, Max: 200}
	if got := r.Fraction(50); got != 0.25 {
		t.Fatalf("Fraction(50) = %v, want 0.25", got)
	}
	if got := (Range{Min: 5, Max: 5}).Fraction(5); got != 0 {
		t.Fatalf("degenerate Fraction = %v, want 0", got)
	}
}

func TestInputsFieldAccess(t *testing.T) {
	in := Inputs{Revenue: 1, Expenses: 2, Students: 3, Investment: 4}
	for f := Field(0); f < FieldCount; f++ {
		if got := in.With(f, 9).Get(f); got != 9 {
			t.Fatalf("%s: With/Get = %v, want 9", f.Label(), got)
		}
	}
	if in.Revenue != 1 {
		t.Fatal("With mutated the receiver")
	}
	if FieldStudents.IsCurrency() || !FieldRevenue.IsCurrency() {
		t.Fatal("IsCurrency misclassified fields")
	}
}
