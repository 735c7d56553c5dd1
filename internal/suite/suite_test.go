package suite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sqlpeek/sqlpeek/internal/models"
)

// -- Load ---------------------------------------------------------------------

func TestLoadScenarios(t *testing.T) {
	cases, err := Load(filepath.Join("testdata", "scenarios.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cases) != 9 {
		t.Fatalf("got %d cases, want 9", len(cases))
	}
	if cases[0].Name != "plain columns" {
		t.Errorf("cases[0].Name = %q", cases[0].Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeTemp(t, "cases: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadEmptySuite(t *testing.T) {
	path := writeTemp(t, "cases: []")
	if _, err := Load(path); err == nil {
		t.Error("expected error for empty suite")
	}
}

func TestLoadDefaultsCaseNames(t *testing.T) {
	path := writeTemp(t, "cases:\n  - query: SELECT a FROM t\n    columns: [a]\n")
	cases, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cases[0].Name != "case 1" {
		t.Errorf("default name = %q", cases[0].Name)
	}
}

func TestLoadRejectsColumnsAndError(t *testing.T) {
	path := writeTemp(t, `cases:
  - name: both
    query: SELECT a FROM t
    columns: [a]
    error: boom
`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "both") {
		t.Errorf("expected validation error naming the case, got %v", err)
	}
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// -- Run ----------------------------------------------------------------------

func TestRunScenariosAllMatch(t *testing.T) {
	cases, err := Load(filepath.Join("testdata", "scenarios.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	report := Run(cases, "scenarios.yaml")
	if !report.AllMatched() {
		for _, res := range report.Results {
			if res.Outcome != models.OutcomeMatch {
				t.Errorf("[%s] %s: %s", res.Outcome, res.Name, res.Detail)
			}
		}
	}
}

func TestRunDetectsNameMismatch(t *testing.T) {
	report := Run([]Case{{
		Name:    "drift",
		Query:   "SELECT a FROM t",
		Columns: []string{"b"},
	}}, "inline")
	res := report.Results[0]
	if res.Outcome != models.OutcomeMismatch {
		t.Fatalf("outcome = %s, want MISMATCH", res.Outcome)
	}
	if !strings.Contains(res.Detail, "position 1") {
		t.Errorf("detail = %q", res.Detail)
	}
}

func TestRunDetectsCountMismatch(t *testing.T) {
	report := Run([]Case{{
		Name:    "short",
		Query:   "SELECT a, b FROM t",
		Columns: []string{"a"},
	}}, "inline")
	res := report.Results[0]
	if res.Outcome != models.OutcomeMismatch {
		t.Fatalf("outcome = %s, want MISMATCH", res.Outcome)
	}
	if !strings.Contains(res.Detail, "expected 1 column(s), got 2") {
		t.Errorf("detail = %q", res.Detail)
	}
}

func TestRunUnexpectedError(t *testing.T) {
	report := Run([]Case{{
		Name:    "bad",
		Query:   "DROP TABLE t",
		Columns: []string{"a"},
	}}, "inline")
	res := report.Results[0]
	if res.Outcome != models.OutcomeError {
		t.Fatalf("outcome = %s, want ERROR", res.Outcome)
	}
	if res.Detail != "Only SELECT queries are supported" {
		t.Errorf("detail = %q", res.Detail)
	}
}

func TestRunExpectedErrorMatches(t *testing.T) {
	report := Run([]Case{{
		Name:  "rejects update",
		Query: "UPDATE t SET a = 1",
		Error: "Only SELECT queries are supported",
	}}, "inline")
	if report.Results[0].Outcome != models.OutcomeMatch {
		t.Errorf("outcome = %s, want MATCH", report.Results[0].Outcome)
	}
}

func TestRunExpectedErrorAbsent(t *testing.T) {
	report := Run([]Case{{
		Name:  "should fail",
		Query: "SELECT a FROM t",
		Error: "Only SELECT queries are supported",
	}}, "inline")
	res := report.Results[0]
	if res.Outcome != models.OutcomeMismatch {
		t.Fatalf("outcome = %s, want MISMATCH", res.Outcome)
	}
	if !strings.Contains(res.Detail, "got none") {
		t.Errorf("detail = %q", res.Detail)
	}
}

func TestRunExpectedErrorWrongMessage(t *testing.T) {
	report := Run([]Case{{
		Name:  "wrong message",
		Query: "",
		Error: "Only SELECT queries are supported",
	}}, "inline")
	res := report.Results[0]
	if res.Outcome != models.OutcomeMismatch {
		t.Fatalf("outcome = %s, want MISMATCH", res.Outcome)
	}
}
