package pipeline

import "github.com/theirongolddev/finsim/internal/model"

// Result is one evaluation of the current inputs: the effective view for KPIs
// and charts, and the raw view for the narrative.
type Result struct {
	Inputs    model.Inputs
	Raw       model.Raw
	Effective model.Effective
}

// Evaluate runs both calculations for in against base.
func Evaluate(base model.Baseline, in model.Inputs) Result {
	return Result{
		Inputs:    in,
		Raw:       ComputeRaw(in),
		Effective: Compute(base, in),
	}
}

// Session carries the simulator state explicitly: the baseline captured at
// start, the slider ranges, and the current inputs. It is a value type, so
// copies evolve independently.
type Session struct {
	baseline model.Baseline
	ranges   model.Ranges
	current  model.Inputs
}

// NewSession clamps initial to ranges and captures it as the baseline.
func NewSession(initial model.Inputs, ranges model.Ranges) Session {
	in := ranges.Clamp(initial)
	return Session{
		baseline: model.BaselineOf(in),
		ranges:   ranges,
		current:  in,
	}
}

// Baseline returns the snapshot captured at session start.
func (s Session) Baseline() model.Baseline { return s.baseline }

// Ranges returns the slider ranges.
func (s Session) Ranges() model.Ranges { return s.ranges }

// Inputs returns the current inputs.
func (s Session) Inputs() model.Inputs { return s.current }

// Set replaces the current inputs, clamped to the ranges.
func (s *Session) Set(in model.Inputs) {
	s.current = s.ranges.Clamp(in)
}

// SetField sets one slider, clamped to its range.
func (s *Session) SetField(f model.Field, v float64) {
	s.Set(s.current.With(f, v))
}

// Nudge moves one slider by n steps.
func (s *Session) Nudge(f model.Field, n int) {
	r := s.ranges.Of(f)
	step := r.Step
	if step <= 0 {
		step = 1
	}
	s.SetField(f, s.current.Get(f)+float64(n)*step)
}

// Apply moves the current inputs with a scenario preset.
func (s *Session) Apply(sc Scenario) {
	s.current = ApplyScenario(s.current, sc, s.ranges)
}

// Reset returns the sliders to the baseline.
func (s *Session) Reset() {
	s.current = s.baseline.Inputs()
}

// Evaluate computes the result for the current inputs.
func (s Session) Evaluate() Result {
	return Evaluate(s.baseline, s.current)
}
