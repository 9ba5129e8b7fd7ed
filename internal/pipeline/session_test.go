package pipeline

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/finsim/internal/model"
)

var testRanges = model.Ranges{
	Revenue:    model.Range{Min: 0, Max: 500000, Step: 1000},
	Expenses:   model.Range{Min: 0, Max: 500000, Step: 1000},
	Students:   model.Range{Min: 0, Max: 500, Step: 1},
	Investment: model.Range{Min: 0, Max: 100000, Step: 1000},
}

func TestApplyScenario(t *testing.T) {
	start := model.Inputs{Revenue: 100000, Expenses: 70000, Students: 50, Investment: 0}

	cases := []struct {
		sc   Scenario
		want model.Inputs
	}{
		{ScenarioHighDemand, model.Inputs{Revenue: 100000, Expenses: 70000, Students: 60, Investment: 0}},
		{ScenarioCampaign, model.Inputs{Revenue: 100000, Expenses: 70000, Students: 50, Investment: 10000}},
		{ScenarioCostCut, model.Inputs{Revenue: 100000, Expenses: 63000, Students: 50, Investment: 0}},
		{ScenarioPremiumCourse, model.Inputs{Revenue: 115000, Expenses: 70000, Students: 50, Investment: 5000}},
		{ScenarioCrisis, model.Inputs{Revenue: 85000, Expenses: 70000, Students: 45, Investment: 0}},
	}
	for _, c := range cases {
		t.Run(c.sc.String(), func(t *testing.T) {
			assert.Equal(t, c.want, ApplyScenario(start, c.sc, testRanges))
		})
	}
}

func TestApplyScenario_ClampsToRange(t *testing.T) {
	in := model.Inputs{Revenue: 495000, Expenses: 0, Students: 450, Investment: 95000}

	got := ApplyScenario(in, ScenarioHighDemand, testRanges)
	assert.Equal(t, 500.0, got.Students)

	got = ApplyScenario(in, ScenarioPremiumCourse, testRanges)
	assert.Equal(t, 500000.0, got.Revenue)
	assert.Equal(t, 100000.0, got.Investment)
}

func TestApplyScenario_RoundsHalfUp(t *testing.T) {
	// 5 * 0.9 = 4.5 students rounds to 5, 15 * 1.2 = 18 stays.
	in := model.Inputs{Revenue: 100000, Students: 5}
	assert.Equal(t, 5.0, ApplyScenario(in, ScenarioCrisis, testRanges).Students)
	in.Students = 15
	assert.Equal(t, 18.0, ApplyScenario(in, ScenarioHighDemand, testRanges).Students)
}

func TestParseScenario(t *testing.T) {
	for _, sc := range AllScenarios() {
		got, err := ParseScenario(sc.String())
		require.NoError(t, err)
		assert.Equal(t, sc, got)
		assert.NotEmpty(t, sc.Label())
		assert.NotEmpty(t, sc.Describe())
	}
	_, err := ParseScenario("boom")
	assert.Error(t, err)
}

func TestSession_BaselineIsCapturedOnce(t *testing.T) {
	s := NewSession(model.Inputs{Revenue: 100000, Expenses: 70000, Students: 50}, testRanges)
	base := s.Baseline()

	s.Set(model.Inputs{Revenue: 200000, Expenses: 10000, Students: 80, Investment: 3000})
	s.Apply(ScenarioCampaign)
	s.Nudge(model.FieldStudents, 5)

	assert.Equal(t, base, s.Baseline())
	assert.Equal(t, 85.0, s.Inputs().Students)
	assert.Equal(t, 13000.0, s.Inputs().Investment)

	s.Reset()
	assert.Equal(t, base.Inputs(), s.Inputs())
}

func TestSession_ClampsInitialAndUpdates(t *testing.T) {
	s := NewSession(model.Inputs{Revenue: 999999, Expenses: -10, Students: 50.4}, testRanges)
	assert.Equal(t, model.Baseline{Revenue: 500000, Expenses: 0, Students: 50}, s.Baseline())

	s.SetField(model.FieldRevenue, 1234)
	assert.Equal(t, 1000.0, s.Inputs().Revenue)

	s.Nudge(model.FieldExpenses, -3)
	assert.Equal(t, 0.0, s.Inputs().Expenses)
}

func TestSession_CopiesAreIndependent(t *testing.T) {
	a := NewSession(model.Inputs{Revenue: 100000, Expenses: 70000, Students: 50}, testRanges)
	b := a
	b.Nudge(model.FieldStudents, 10)

	assert.Equal(t, 50.0, a.Inputs().Students)
	assert.Equal(t, 60.0, b.Inputs().Students)
}

func TestSession_EvaluateKeepsViewsSeparate(t *testing.T) {
	s := NewSession(model.Inputs{Revenue: 100000, Expenses: 70000, Students: 50}, testRanges)
	s.SetField(model.FieldExpenses, 150000)

	res := s.Evaluate()
	assert.Equal(t, -50000.0, res.Raw.Profit)
	assert.Zero(t, res.Effective.Profit)
	assert.Equal(t, s.Inputs(), res.Inputs)
}

func TestEvaluateAll_MatchesSequential(t *testing.T) {
	var cases []Case
	for i := 0; i < 200; i++ {
		cases = append(cases, Case{
			Label: "case",
			Inputs: model.Inputs{
				Revenue:    float64(i * 1000),
				Expenses:   float64((200 - i) * 700),
				Students:   float64(i % 90),
				Investment: float64(i * 250),
			},
		})
	}

	var (
		mu           sync.Mutex
		lastProgress int
		total        int
	)
	results := EvaluateAll(schoolBase, cases, func(current, n int) {
		mu.Lock()
		defer mu.Unlock()
		if current > lastProgress {
			lastProgress = current
		}
		total = n
	})

	require.Len(t, results, len(cases))
	for i, r := range results {
		assert.Equal(t, Evaluate(schoolBase, cases[i].Inputs), r.Result, "case %d", i)
	}
	assert.Equal(t, len(cases), total)
	assert.Equal(t, len(cases), lastProgress)
}

func TestEvaluateAll_Empty(t *testing.T) {
	assert.Nil(t, EvaluateAll(schoolBase, nil, nil))
}
