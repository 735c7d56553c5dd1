// Package suite loads YAML expectation suites and runs them against the
// column-prediction engine.
package suite

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sqlpeek/sqlpeek/internal/models"
	"github.com/sqlpeek/sqlpeek/internal/parser"
)

// Case is one expectation: a query plus either the column names it should
// yield or the exact error message it should raise.
type Case struct {
	Name    string   `yaml:"name"`
	Query   string   `yaml:"query"`
	Columns []string `yaml:"columns"`
	Error   string   `yaml:"error"`
}

type suiteFile struct {
	Cases []Case `yaml:"cases"`
}

// Load reads and validates a suite file.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f suiteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse suite file: %w", err)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("suite file %s contains no cases", path)
	}

	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("case %d", i+1)
		}
		if c.Error == "" && c.Query == "" {
			return nil, fmt.Errorf("case %q has no query", c.Name)
		}
		if c.Error != "" && len(c.Columns) > 0 {
			return nil, fmt.Errorf("case %q expects both columns and an error", c.Name)
		}
	}
	return f.Cases, nil
}

// Run executes every case through the engine and collects the outcomes.
func Run(cases []Case, file string) *models.SuiteReport {
	report := &models.SuiteReport{
		File:      file,
		Timestamp: time.Now().UTC(),
	}
	for _, c := range cases {
		report.Results = append(report.Results, runCase(c))
	}
	return report
}

func runCase(c Case) models.SuiteResult {
	result := models.SuiteResult{
		Name:     c.Name,
		Query:    c.Query,
		Expected: c.Columns,
	}

	names, err := parser.ExtractColumns(c.Query)

	if c.Error != "" {
		switch {
		case err == nil:
			result.Outcome = models.OutcomeMismatch
			result.Actual = names
			result.Detail = fmt.Sprintf("expected error %q, got none", c.Error)
		case err.Error() != c.Error:
			result.Outcome = models.OutcomeMismatch
			result.Detail = fmt.Sprintf("expected error %q, got %q", c.Error, err.Error())
		default:
			result.Outcome = models.OutcomeMatch
		}
		return result
	}

	if err != nil {
		result.Outcome = models.OutcomeError
		result.Detail = err.Error()
		return result
	}

	result.Actual = names
	if detail, ok := compareNames(c.Columns, names); !ok {
		result.Outcome = models.OutcomeMismatch
		result.Detail = detail
		return result
	}
	result.Outcome = models.OutcomeMatch
	return result
}

// compareNames reports the first difference between expected and actual.
func compareNames(expected, actual []string) (string, bool) {
	if len(expected) != len(actual) {
		return fmt.Sprintf("expected %d column(s), got %d", len(expected), len(actual)), false
	}
	for i := range expected {
		if expected[i] != actual[i] {
			return fmt.Sprintf("position %d: expected %q, got %q", i+1, expected[i], actual[i]), false
		}
	}
	return "", true
}
