package check

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Status represents the outcome of a single check.
type Status int

const (
	Pass Status = iota
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Fail:
		return "FAIL"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a single check.
type Result struct {
	Name     string
	Status   Status
	Expected any
	Actual   any
}

// Passed reports whether the result matched its expectation.
func (r Result) Passed() bool {
	return r.Status == Pass
}

// Run compares expected and actual and records the outcome under name.
func Run(name string, expected, actual any) Result {
	status := Fail
	if reflect.DeepEqual(expected, actual) {
		status = Pass
	}
	return Result{Name: name, Status: status, Expected: expected, Actual: actual}
}

// Report aggregates all check results.
type Report struct {
	Results []Result
}

// Summary holds the result tallies.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Summary tallies the report.
func (r Report) Summary() Summary {
	s := Summary{Total: len(r.Results)}
	for _, res := range r.Results {
		if res.Passed() {
			s.Passed++
		}
	}
	s.Failed = s.Total - s.Passed
	return s
}

// HasFailures returns true if any result has Fail status.
func (r Report) HasFailures() bool {
	for _, res := range r.Results {
		if res.Status == Fail {
			return true
		}
	}
	return false
}

// Format returns the human-readable report string.
func (r Report) Format() string {
	if len(r.Results) == 0 {
		return "qv validate\n\n  no checks ran\n"
	}

	var b strings.Builder
	b.WriteString("qv validate\n\n")

	for _, res := range r.Results {
		fmt.Fprintf(&b, "  %-4s  %s\n", res.Status, res.Name)
		if res.Status == Fail {
			fmt.Fprintf(&b, "        expected: %v\n", res.Expected)
			fmt.Fprintf(&b, "        actual:   %v\n", res.Actual)
		}
	}

	s := r.Summary()
	fmt.Fprintf(&b, "\n%d/%d passed, %d failed\n", s.Passed, s.Total, s.Failed)
	if s.Failed == 0 {
		b.WriteString("all checks passed\n")
	}
	return b.String()
}

type jsonTest struct {
	Name     string `json:"name"`
	Passed   bool   `json:"passed"`
	Expected any    `json:"expected"`
	Actual   any    `json:"actual"`
}

type jsonReport struct {
	Summary Summary    `json:"summary"`
	Tests   []jsonTest `json:"tests"`
}

// JSON renders the report as {"summary": {...}, "tests": [...]}.
// indent <= 0 produces compact output.
func (r Report) JSON(indent int) ([]byte, error) {
	out := jsonReport{Summary: r.Summary(), Tests: make([]jsonTest, 0, len(r.Results))}
	for _, res := range r.Results {
		out.Tests = append(out.Tests, jsonTest{
			Name:     res.Name,
			Passed:   res.Passed(),
			Expected: res.Expected,
			Actual:   res.Actual,
		})
	}

	var (
		data []byte
		err  error
	)
	if indent > 0 {
		data, err = json.MarshalIndent(out, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return data, nil
}

// RunAll executes every case group in order and returns a report.
func RunAll() Report {
	var results []Result

	results = append(results, Normalization()...)
	results = append(results, ReverseScoring()...)
	results = append(results, AttachmentCases()...)
	results = append(results, CommunicationCases()...)
	results = append(results, ConfidenceCases()...)
	results = append(results, EmotionalCases()...)
	results = append(results, IntimacyCases()...)
	results = append(results, LoveLanguageCases()...)
	results = append(results, ArchetypeCases()...)
	results = append(results, Integration()...)

	return Report{Results: results}
}
