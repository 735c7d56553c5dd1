package reporter

import (
	"fmt"
	"strings"

	"github.com/sqlpeek/sqlpeek/internal/models"
)

func renderQueryText(report *models.QueryReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Query: %s\n", report.Query)
	if len(report.Columns) == 0 {
		b.WriteString("No columns.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Columns (%d):\n", len(report.Columns))
	nameWidth := 0
	for _, c := range report.Columns {
		if len(c.Name) > nameWidth {
			nameWidth = len(c.Name)
		}
	}
	for _, c := range report.Columns {
		fmt.Fprintf(&b, "  %2d  %-*s  %-16s %s\n",
			c.Position, nameWidth, c.Name, c.Rule, c.Expression)
	}
	return b.String()
}

func renderSuiteText(report *models.SuiteReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suite: %s\n", report.File)
	for _, res := range report.Results {
		fmt.Fprintf(&b, "  [%s] %s\n", res.Outcome, res.Name)
		if res.Outcome != models.OutcomeMatch {
			fmt.Fprintf(&b, "        query:    %s\n", res.Query)
			if len(res.Expected) > 0 {
				fmt.Fprintf(&b, "        expected: %s\n", strings.Join(res.Expected, ", "))
			}
			if len(res.Actual) > 0 {
				fmt.Fprintf(&b, "        actual:   %s\n", strings.Join(res.Actual, ", "))
			}
			if res.Detail != "" {
				fmt.Fprintf(&b, "        detail:   %s\n", res.Detail)
			}
		}
	}
	fmt.Fprintf(&b, "%d case(s): %d matched, %d mismatched, %d errored\n",
		len(report.Results), report.MatchCount(), report.MismatchCount(), report.ErrorCount())
	return b.String()
}

func renderVerifyText(report *models.VerifyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Query:    %s\n", report.Query)
	if report.Database != "" {
		fmt.Fprintf(&b, "Database: %s\n", report.Database)
	}
	if report.ServerVer != "" {
		fmt.Fprintf(&b, "Server:   %s\n", report.ServerVer)
	}
	fmt.Fprintf(&b, "Outcome:  %s (%d/%d positions agree)\n",
		report.Outcome, report.MatchCount(), len(report.Diff))
	for _, d := range report.Diff {
		marker := "ok"
		if !d.Match {
			marker = "!!"
		}
		fmt.Fprintf(&b, "  %2d %s predicted=%-24s actual=%s\n",
			d.Position, marker, d.Predicted, d.Actual)
	}
	return b.String()
}
