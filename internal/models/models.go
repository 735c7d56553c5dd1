// Package models defines data types for column predictions, suite runs, and
// live verification reports.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Outcome classifies the result of comparing predicted columns against an
// expectation or a live result set.
// The ordering is MATCH < MISMATCH < ERROR (by numeric value).
type Outcome int

const (
	OutcomeMatch Outcome = iota
	OutcomeMismatch
	OutcomeError
)

var outcomeNames = map[Outcome]string{
	OutcomeMatch:    "MATCH",
	OutcomeMismatch: "MISMATCH",
	OutcomeError:    "ERROR",
}

var outcomeFromName = map[string]Outcome{
	"MATCH":    OutcomeMatch,
	"MISMATCH": OutcomeMismatch,
	"ERROR":    OutcomeError,
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *Outcome) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	out, ok := outcomeFromName[name]
	if !ok {
		return fmt.Errorf("unknown outcome: %s", name)
	}
	*o = out
	return nil
}

// ParseOutcome converts a string to an Outcome value.
func ParseOutcome(s string) (Outcome, error) {
	out, ok := outcomeFromName[s]
	if !ok {
		return 0, fmt.Errorf("unknown outcome: %s", s)
	}
	return out, nil
}

// ColumnPrediction is one predicted result-set column.
type ColumnPrediction struct {
	Position   int    `json:"position"`
	Name       string `json:"name"`
	Expression string `json:"expression"`
	Rule       string `json:"rule"`
}

// QueryReport is the result of analyzing a single query.
type QueryReport struct {
	Query     string             `json:"query"`
	Columns   []ColumnPrediction `json:"columns"`
	Timestamp time.Time          `json:"timestamp"`
}

// NewQueryReport creates a QueryReport stamped with the current time.
func NewQueryReport(query string) *QueryReport {
	return &QueryReport{
		Query:     query,
		Timestamp: time.Now().UTC(),
	}
}

// Names returns the predicted column names in result-set order.
func (r *QueryReport) Names() []string {
	names := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		names[i] = c.Name
	}
	return names
}

// SuiteResult holds the outcome of one expectation-suite case.
type SuiteResult struct {
	Name     string   `json:"name"`
	Query    string   `json:"query"`
	Outcome  Outcome  `json:"outcome"`
	Expected []string `json:"expected,omitempty"`
	Actual   []string `json:"actual,omitempty"`
	Detail   string   `json:"detail,omitempty"`
}

// SuiteReport is the top-level result of running an expectation suite.
type SuiteReport struct {
	File      string        `json:"file"`
	Timestamp time.Time     `json:"timestamp"`
	Results   []SuiteResult `json:"results"`
}

// MatchCount returns the number of MATCH results.
func (r *SuiteReport) MatchCount() int { return r.countByOutcome(OutcomeMatch) }

// MismatchCount returns the number of MISMATCH results.
func (r *SuiteReport) MismatchCount() int { return r.countByOutcome(OutcomeMismatch) }

// ErrorCount returns the number of ERROR results.
func (r *SuiteReport) ErrorCount() int { return r.countByOutcome(OutcomeError) }

// AllMatched reports whether every case in the suite matched.
func (r *SuiteReport) AllMatched() bool {
	return r.MatchCount() == len(r.Results)
}

func (r *SuiteReport) countByOutcome(out Outcome) int {
	count := 0
	for _, res := range r.Results {
		if res.Outcome == out {
			count++
		}
	}
	return count
}

// ColumnDiff aligns one predicted name with the name the server reported at
// the same position. An empty side means the lists differ in length there.
type ColumnDiff struct {
	Position  int    `json:"position"`
	Predicted string `json:"predicted"`
	Actual    string `json:"actual"`
	Match     bool   `json:"match"`
}

// VerifyReport is the result of checking predictions against a live database.
type VerifyReport struct {
	Query     string       `json:"query"`
	Database  string       `json:"database"`
	ServerVer string       `json:"server_version,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
	Outcome   Outcome      `json:"outcome"`
	Predicted []string     `json:"predicted"`
	Actual    []string     `json:"actual"`
	Diff      []ColumnDiff `json:"diff"`
}

// MatchCount returns the number of positions where prediction and server agree.
func (r *VerifyReport) MatchCount() int {
	count := 0
	for _, d := range r.Diff {
		if d.Match {
			count++
		}
	}
	return count
}
