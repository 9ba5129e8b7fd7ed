// Package source discovers and parses JSONL scenario files for batch runs.
package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/theirongolddev/finsim/internal/model"
	"github.com/theirongolddev/finsim/internal/pipeline"
)

// ParseResult holds the output of parsing a single JSONL file.
type ParseResult struct {
	File        DiscoveredFile
	Cases       []Case
	ParseErrors int
	Err         error
}

// ParseFile reads a scenario file. Blank lines are skipped; lines that are
// not valid JSON objects or that name an unknown scenario are counted in
// ParseErrors and dropped. Fields absent from a line take their value from
// defaults.
func ParseFile(df DiscoveredFile, defaults model.Inputs) ParseResult {
	res := ParseResult{File: df}

	f, err := os.Open(df.Path)
	if err != nil {
		res.Err = err
		return res
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		c, ok := parseLine(line, defaults)
		if !ok {
			res.ParseErrors++
			continue
		}
		c.Line = lineNo
		if c.Label == "" {
			c.Label = fmt.Sprintf("%s:%d", df.Name, lineNo)
		}
		res.Cases = append(res.Cases, c)
	}
	if err := scanner.Err(); err != nil {
		res.Err = fmt.Errorf("reading %s: %w", df.Path, err)
	}
	return res
}

func parseLine(line []byte, defaults model.Inputs) (Case, bool) {
	if line[0] != '{' {
		return Case{}, false
	}
	var raw RawCase
	if err := json.Unmarshal(line, &raw); err != nil {
		return Case{}, false
	}

	in := defaults
	setIf(&in.Revenue, raw.Revenue)
	setIf(&in.Expenses, raw.Expenses)
	setIf(&in.Students, raw.Students)
	setIf(&in.Investment, raw.Investment)

	c := Case{Case: pipeline.Case{Label: raw.Label, Inputs: in}}
	for _, key := range raw.Scenarios {
		sc, err := pipeline.ParseScenario(key)
		if err != nil {
			return Case{}, false
		}
		c.Scenarios = append(c.Scenarios, sc)
	}
	return c, true
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// Resolve applies each case's presets and clamps it to ranges, producing the
// tuples handed to batch evaluation.
func Resolve(cases []Case, ranges model.Ranges) []pipeline.Case {
	out := make([]pipeline.Case, len(cases))
	for i, c := range cases {
		in := ranges.Clamp(c.Inputs)
		for _, sc := range c.Scenarios {
			in = pipeline.ApplyScenario(in, sc, ranges)
		}
		out[i] = pipeline.Case{Label: c.Label, Inputs: in}
	}
	return out
}
