package source

import "github.com/theirongolddev/finsim/internal/pipeline"

// RawCase represents a single line in a scenario JSONL file. Missing money or
// count fields fall back to the caller's defaults.
type RawCase struct {
	Label      string   `json:"label,omitempty"`
	Revenue    *float64 `json:"revenue,omitempty"`
	Expenses   *float64 `json:"expenses,omitempty"`
	Students   *float64 `json:"students,omitempty"`
	Investment *float64 `json:"investment,omitempty"`
	Scenarios  []string `json:"scenarios,omitempty"`
}

// Case is one parsed line: the input tuple plus any presets to apply to it.
type Case struct {
	pipeline.Case
	Scenarios []pipeline.Scenario
	Line      int
}

// DiscoveredFile represents a JSONL file found during scanning.
type DiscoveredFile struct {
	Path string
	Name string // file name without extension, used in default labels
}
